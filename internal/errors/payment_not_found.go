package errors

import "net/http"

var ErrPaymentNotFound = &Exception{
	Message:    "payment not found",
	StatusCode: http.StatusNotFound,
}
