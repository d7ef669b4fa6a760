// Package server serves the Databonnd site over HTTP.
package server

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrInvalidMode indicates a mode query parameter that is neither
// "mobile" nor "desktop".
type ErrInvalidMode struct {
	Value string
}

func (e *ErrInvalidMode) Error() string {
	return fmt.Sprintf("invalid mode: %q (want mobile or desktop)", e.Value)
}

// ErrInvalidSeed indicates a seed query parameter that is not an integer.
type ErrInvalidSeed struct {
	Value string
	Cause error
}

func (e *ErrInvalidSeed) Error() string {
	return fmt.Sprintf("invalid seed: %q", e.Value)
}

func (e *ErrInvalidSeed) Unwrap() error {
	return e.Cause
}

// ErrNotFound indicates a static asset that does not exist.
type ErrNotFound struct {
	Path string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("not found: %s", e.Path)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		invalidMode *ErrInvalidMode
		invalidSeed *ErrInvalidSeed
		notFound    *ErrNotFound
	)
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &invalidMode), errors.As(err, &invalidSeed):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
