package errors

import "net/http"

var ErrApplicationLimitReached = &Exception{
	Message:    "gig has reached its application limit",
	StatusCode: http.StatusConflict,
}
