package errors

import "net/http"

// Validation builds a 400 for malformed or out-of-range input.
func Validation(message string) *Exception {
	return &Exception{
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

var ErrGigIDRequired = &Exception{
	Message:    "gig id is required",
	StatusCode: http.StatusBadRequest,
}

var ErrInvalidLimit = &Exception{
	Message:    "limit must be positive",
	StatusCode: http.StatusBadRequest,
}
