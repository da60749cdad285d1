package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/portfolio-cv/internal/db"
	"github.com/jonathan/portfolio-cv/internal/fetch"
	"github.com/jonathan/portfolio-cv/internal/ingestion"
	"github.com/jonathan/portfolio-cv/internal/schemas"
)

func TestErrValidation(t *testing.T) {
	err := &ErrValidation{Field: "body", Message: "request body is empty"}
	assert.Equal(t, "validation error: body - request body is empty", err.Error())
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestHTTPStatus(t *testing.T) {
	var syntaxErr *json.SyntaxError
	jsonErr := json.Unmarshal([]byte("{"), &struct{}{})
	assert.True(t, errors.As(jsonErr, &syntaxErr))

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"request validation", &ErrValidation{Field: "body", Message: "empty"}, http.StatusBadRequest},
		{"schema", &ingestion.LoadError{Source: "request", Message: "schema validation failed", Cause: &schemas.ValidationError{}}, http.StatusBadRequest},
		{"json syntax", fmt.Errorf("decode: %w", jsonErr), http.StatusBadRequest},
		{"too large", &http.MaxBytesError{Limit: maxDocumentBytes}, http.StatusRequestEntityTooLarge},
		{"upstream", fmt.Errorf("load: %w", &fetch.Error{URL: "https://x", Message: "timeout"}), http.StatusBadGateway},
		{"profile missing", fmt.Errorf("load: %w", db.ErrProfileNotFound), http.StatusNotFound},
		{"no source", ErrNoSource, http.StatusServiceUnavailable},
		{"generic", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}
