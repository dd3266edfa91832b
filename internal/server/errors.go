// Package server provides the HTTP REST binding for the match engine.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/jobmatch/internal/engine"
)

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
// IncompleteProfile is a data-completeness problem on the caller's side,
// not a missing resource, so it maps to 422 rather than 404.
func HTTPStatus(err error) int {
	var incomplete *engine.IncompleteProfileError
	var notFound *engine.NotFoundError
	var validation *ErrValidation

	switch {
	case errors.As(err, &incomplete):
		return http.StatusUnprocessableEntity
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &validation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
