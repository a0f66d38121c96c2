package utils

import (
	"fmt"
	"net/http"
)

// APIError is the structured {status, message} signal every validation
// predicate and orchestrator failure resolves to. Status doubles as the
// HTTP response code.
type APIError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return e.Message
}

// BadRequestf builds a 400 validation failure.
func BadRequestf(format string, args ...interface{}) *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: fmt.Sprintf(format, args...)}
}

// NotFoundf builds a 404 for an id that does not resolve.
func NotFoundf(format string, args ...interface{}) *APIError {
	return &APIError{Status: http.StatusNotFound, Message: fmt.Sprintf(format, args...)}
}

// Conflictf builds a 409 for a state conflict, e.g. seating an occupied
// table.
func Conflictf(format string, args ...interface{}) *APIError {
	return &APIError{Status: http.StatusConflict, Message: fmt.Sprintf(format, args...)}
}
