package server

import (
	"errors"
	"net/http"

	"github.com/daniel/program-coach/internal/types"
)

// ErrProfileNotFound is returned when no intake profile exists for a user.
var ErrProfileNotFound = errors.New("user profile not found")

// HTTPStatus maps an error from the engine or store to an HTTP status code.
func HTTPStatus(err error) int {
	var (
		incomplete  *types.ProfileIncompleteError
		generation  *types.GenerationFailure
		validation  *types.ValidationFailure
		persistence *types.PersistenceFailure
	)

	switch {
	case errors.Is(err, ErrProfileNotFound):
		return http.StatusNotFound
	case errors.As(err, &incomplete):
		return http.StatusBadRequest
	case errors.As(err, &validation):
		return http.StatusUnprocessableEntity
	case errors.As(err, &generation):
		// Exhausted retries against the generative backend.
		return http.StatusBadGateway
	case errors.As(err, &persistence):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
