package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrCandidateNotFound indicates the candidate does not exist.
type ErrCandidateNotFound struct {
	ID uuid.UUID
}

func (e *ErrCandidateNotFound) Error() string {
	return fmt.Sprintf("candidate not found: %s", e.ID)
}

// ErrJobRequirementNotFound indicates the job requirement does not exist.
type ErrJobRequirementNotFound struct {
	ID uuid.UUID
}

func (e *ErrJobRequirementNotFound) Error() string {
	return fmt.Sprintf("job requirement not found: %s", e.ID)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrValidation:
		return http.StatusBadRequest
	case *ErrCandidateNotFound, *ErrJobRequirementNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
