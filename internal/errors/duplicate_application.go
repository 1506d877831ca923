package errors

import "net/http"

var ErrDuplicateApplication = &Exception{
	Message:    "worker has already applied to this gig",
	StatusCode: http.StatusConflict,
}
