package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/resume-matcher/internal/extraction"
	"github.com/jonathan/resume-matcher/internal/scoring"
)

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus maps pipeline errors onto HTTP status codes so clients can tell
// "could not fetch/read the document" (upstream problem) apart from a bad
// request or an internal fault.
func HTTPStatus(err error) int {
	var (
		fetchErr      *extraction.FetchError
		emptyErr      *extraction.EmptyDocumentError
		parseErr      *extraction.ParseError
		weightsErr    *scoring.InvalidWeightsError
		validationErr *ErrValidation
	)
	switch {
	case errors.As(err, &validationErr), errors.As(err, &weightsErr):
		return http.StatusBadRequest
	case errors.As(err, &fetchErr):
		return http.StatusBadGateway
	case errors.As(err, &emptyErr), errors.As(err, &parseErr):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
