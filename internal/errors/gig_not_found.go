package errors

import "net/http"

var ErrGigNotFound = &Exception{
	Message:    "gig not found",
	StatusCode: http.StatusNotFound,
}
