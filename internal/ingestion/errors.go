// Package ingestion loads the resume document from a file, the portfolio API or the
// portfolio database, and normalises it for rendering.
package ingestion

import "fmt"

// LoadError represents a failure to obtain or decode the resume document.
type LoadError struct {
	Source  string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("load error from %s: %s: %v", e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("load error from %s: %s", e.Source, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
