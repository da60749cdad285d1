// Package rendering turns a resume document into PDF bytes.
package rendering

import "fmt"

// RenderError represents a failure while laying out the document
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// SerializeError represents a failure reported by the PDF writer
type SerializeError struct {
	Message string
	Cause   error
}

func (e *SerializeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("serialize error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("serialize error: %s", e.Message)
}

func (e *SerializeError) Unwrap() error {
	return e.Cause
}
