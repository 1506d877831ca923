package errors

import "net/http"

var ErrPaymentNotPending = &Exception{
	Message:    "payment is not pending",
	StatusCode: http.StatusConflict,
}
