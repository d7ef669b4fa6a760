// Package middleware provides HTTP middleware shared by the site's handlers.
package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/databonnd/site/internal/viewport"
)

// ContextKey is a typed key for context values to avoid collisions.
type ContextKey string

const (
	modeKey      ContextKey = "viewportMode"
	requestIDKey ContextKey = "requestID"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

// RequestID tags every request with an id. A valid UUID supplied by the
// client is kept; anything else is replaced.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		ctx := context.WithValue(r.Context(), requestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestID returns the id set by RequestID, or "" outside it.
func GetRequestID(r *http.Request) string {
	id, _ := r.Context().Value(requestIDKey).(string)
	return id
}

// ClientHints asks the browser for its viewport width on subsequent
// requests and resolves the initial viewport mode of this one.
func ClientHints(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Accept-CH", viewport.HintHeader)
		w.Header().Add("Vary", viewport.HintHeader)

		ctx := context.WithValue(r.Context(), modeKey, viewport.ModeForRequest(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetMode returns the mode resolved by ClientHints. Requests that did not
// pass through it are classified directly.
func GetMode(r *http.Request) viewport.Mode {
	if mode, ok := r.Context().Value(modeKey).(viewport.Mode); ok {
		return mode
	}
	return viewport.ModeForRequest(r)
}
