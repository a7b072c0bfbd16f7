// Package server provides the HTTP REST API for the site generator.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/site-generator/internal/pipeline"
	"github.com/jonathan/site-generator/internal/store"
)

// ErrInvalidCredentials indicates invalid login credentials
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid password"
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		invalidCredentials *ErrInvalidCredentials
		validation         *ErrValidation
		malformed          *pipeline.MalformedProfileError
	)
	switch {
	case errors.As(err, &invalidCredentials):
		return http.StatusUnauthorized
	case errors.As(err, &validation), errors.As(err, &malformed):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
