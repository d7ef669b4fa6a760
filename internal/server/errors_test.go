package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	_, parseErr := strconv.ParseInt("x", 10, 64)

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"invalid mode", &ErrInvalidMode{Value: "tablet"}, http.StatusBadRequest},
		{"invalid seed", &ErrInvalidSeed{Value: "x", Cause: parseErr}, http.StatusBadRequest},
		{"wrapped invalid mode", fmt.Errorf("background: %w", &ErrInvalidMode{Value: "tv"}), http.StatusBadRequest},
		{"not found", &ErrNotFound{Path: "/static/missing.js"}, http.StatusNotFound},
		{"other", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestErrInvalidSeed_Unwrap(t *testing.T) {
	_, parseErr := strconv.ParseInt("x", 10, 64)
	err := &ErrInvalidSeed{Value: "x", Cause: parseErr}

	assert.ErrorIs(t, err, strconv.ErrSyntax)
	assert.Contains(t, err.Error(), `"x"`)
}

func TestErrInvalidMode_Message(t *testing.T) {
	err := &ErrInvalidMode{Value: "tablet"}
	assert.Equal(t, `invalid mode: "tablet" (want mobile or desktop)`, err.Error())
}
