package errors

import "net/http"

var ErrApplicationResolved = &Exception{
	Message:    "application has already been resolved",
	StatusCode: http.StatusConflict,
}
