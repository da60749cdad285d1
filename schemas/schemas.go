// Package schemas embeds the JSON Schemas for the documents this module reads and writes.
package schemas

import "embed"

// FS holds every *.schema.json file in this directory.
//
//go:embed *.schema.json
var FS embed.FS

// Schema file names.
const (
	ResumeDocument = "resume_document.schema.json"
	Violations     = "violations.schema.json"
)
