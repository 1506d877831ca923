package errors

import "net/http"

// ErrOptimisticLock signals that a concurrent writer committed first; the
// version guard rejected this write.
var ErrOptimisticLock = &Exception{
	Message:    "gig was modified concurrently",
	StatusCode: http.StatusConflict,
}
