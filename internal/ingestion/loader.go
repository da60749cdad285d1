package ingestion

import (
	"context"
	"encoding/json"
	"os"

	"github.com/google/uuid"

	"github.com/jonathan/portfolio-cv/internal/fetch"
	"github.com/jonathan/portfolio-cv/internal/schemas"
	"github.com/jonathan/portfolio-cv/internal/types"
)

// Loader produces a normalised, validated resume document.
type Loader interface {
	Load(ctx context.Context) (*types.ResumeDocument, error)
	Source() string
}

// FileLoader reads the document from a JSON file.
type FileLoader struct {
	Path string
}

// Source implements Loader.
func (l *FileLoader) Source() string { return "file:" + l.Path }

// Load implements Loader.
func (l *FileLoader) Load(ctx context.Context) (*types.ResumeDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(l.Path)
	if err != nil {
		msg := "failed to read file"
		if os.IsNotExist(err) {
			msg = "file not found"
		}
		return nil, &LoadError{Source: l.Source(), Message: msg, Cause: err}
	}
	return Decode(raw, l.Source())
}

// HTTPLoader fetches the document from the portfolio's resume endpoint.
type HTTPLoader struct {
	URL     string
	Options *fetch.Options
}

// Source implements Loader.
func (l *HTTPLoader) Source() string { return l.URL }

// Load implements Loader. Upstream failures are returned as *fetch.Error.
func (l *HTTPLoader) Load(ctx context.Context) (*types.ResumeDocument, error) {
	raw, err := fetch.JSON(ctx, l.URL, l.Options)
	if err != nil {
		return nil, err
	}
	return Decode(raw, l.Source())
}

// DocumentStore is the read side of the portfolio database.
type DocumentStore interface {
	GetResumeDocument(ctx context.Context, profileID uuid.UUID) (*types.ResumeDocument, error)
}

// DBLoader reads the document for one profile from the portfolio database.
type DBLoader struct {
	Store     DocumentStore
	ProfileID uuid.UUID
}

// Source implements Loader.
func (l *DBLoader) Source() string { return "db:" + l.ProfileID.String() }

// Load implements Loader. Store errors are returned unwrapped so callers can match them.
func (l *DBLoader) Load(ctx context.Context) (*types.ResumeDocument, error) {
	doc, err := l.Store.GetResumeDocument(ctx, l.ProfileID)
	if err != nil {
		return nil, err
	}
	if err := Normalize(doc); err != nil {
		return nil, &LoadError{Source: l.Source(), Message: "failed to normalise document", Cause: err}
	}
	if err := doc.Validate(); err != nil {
		return nil, &LoadError{Source: l.Source(), Message: "document failed validation", Cause: err}
	}
	return doc, nil
}

// Decode validates raw JSON against the document schema, then decodes, normalises
// and validates it.
func Decode(raw []byte, source string) (*types.ResumeDocument, error) {
	if err := schemas.ValidateDocument(raw); err != nil {
		return nil, &LoadError{Source: source, Message: "document does not match schema", Cause: err}
	}

	var doc types.ResumeDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &LoadError{Source: source, Message: "failed to decode document", Cause: err}
	}
	if err := Normalize(&doc); err != nil {
		return nil, &LoadError{Source: source, Message: "failed to normalise document", Cause: err}
	}
	if err := doc.Validate(); err != nil {
		return nil, &LoadError{Source: source, Message: "document failed validation", Cause: err}
	}
	return &doc, nil
}
