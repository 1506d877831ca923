package errors

import "net/http"

var ErrStorageUnavailable = &Exception{
	Message:    "storage is unavailable",
	StatusCode: http.StatusServiceUnavailable,
}
