package errors

import "net/http"

var ErrForbidden = &Exception{
	Message:    "caller does not own this resource",
	StatusCode: http.StatusForbidden,
}
