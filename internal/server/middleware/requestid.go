// Package middleware provides HTTP middleware shared by the ML service endpoints.
package middleware

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ContextKey is a typed key for context values to avoid collisions.
type ContextKey string

// requestIDKey is the context key for storing the request ID.
const requestIDKey ContextKey = "requestID"

// RequestIDHeader is the header used to carry request IDs.
const RequestIDHeader = "X-Request-ID"

// RequestID creates middleware that tags every request with a UUID for log
// correlation. A caller-supplied X-Request-ID is kept if it parses as a UUID;
// anything else is replaced with a fresh one. The ID is stored in the request
// context and echoed on the response.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if _, err := uuid.Parse(id); err != nil {
				id = uuid.New().String()
			}

			w.Header().Set(RequestIDHeader, id)

			// Add request ID to request context
			ctx := context.WithValue(r.Context(), requestIDKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetRequestID extracts the request ID from the request context.
func GetRequestID(r *http.Request) (string, error) {
	id, ok := r.Context().Value(requestIDKey).(string)
	if !ok || id == "" {
		return "", fmt.Errorf("request ID not found in request context")
	}
	return id, nil
}

// RequestIDKey returns the context key for request IDs (for testing purposes).
func RequestIDKey() ContextKey {
	return requestIDKey
}
