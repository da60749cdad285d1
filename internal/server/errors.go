package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/portfolio-cv/internal/db"
	"github.com/jonathan/portfolio-cv/internal/fetch"
	"github.com/jonathan/portfolio-cv/internal/schemas"
)

// ErrNoSource indicates the server was started without a document source.
var ErrNoSource = errors.New("no document source configured")

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
		reqErr      *ErrValidation
		schemaErr   *schemas.ValidationError
		structErr   validator.ValidationErrors
		syntaxErr   *json.SyntaxError
		typeErr     *json.UnmarshalTypeError
		tooLargeErr *http.MaxBytesError
		fetchErr    *fetch.Error
	)
	switch {
	case errors.As(err, &tooLargeErr):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &reqErr), errors.As(err, &schemaErr), errors.As(err, &structErr),
		errors.As(err, &syntaxErr), errors.As(err, &typeErr):
		return http.StatusBadRequest
	case errors.As(err, &fetchErr):
		return http.StatusBadGateway
	case errors.Is(err, db.ErrProfileNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrNoSource):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
