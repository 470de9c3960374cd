// Package server provides the HTTP API for the career coach ML service.
package server

import (
	"fmt"
	"net/http"
)

// ErrMalformedBody indicates the request body could not be decoded
type ErrMalformedBody struct {
	Reason string
}

func (e *ErrMalformedBody) Error() string {
	return fmt.Sprintf("malformed request body: %s", e.Reason)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrMalformedBody:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
