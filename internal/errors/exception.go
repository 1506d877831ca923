package errors

import (
	"errors"
	"net/http"
)

// Exception is a business-rule violation carrying the HTTP status the
// routing layer should answer with. None of these are retried by the core.
type Exception struct {
	Message    string
	StatusCode int
}

func (e *Exception) Error() string {
	return e.Message
}

// StatusCode resolves the HTTP status for any error; non-domain errors map
// to 500.
func StatusCode(err error) int {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}
