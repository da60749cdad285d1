package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jonathan/portfolio-cv/internal/types"
)

// Metadata describes a loaded document.
type Metadata struct {
	Source    string         `json:"source"`
	Timestamp string         `json:"timestamp"` // RFC3339 format
	Hash      string         `json:"hash"`      // SHA256 hex digest of the normalised document
	Sections  map[string]int `json:"sections"`
}

// NewMetadata fingerprints doc and counts its section entries.
func NewMetadata(doc *types.ResumeDocument, source string) (*Metadata, error) {
	canonical, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}
	return &Metadata{
		Source:    source,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Hash:      computeHash(canonical),
		Sections: map[string]int{
			"highlights": len(doc.Highlights()),
			"experience": len(doc.Experience),
			"education":  len(doc.Education),
			"skills":     len(doc.Skills.Frontend) + len(doc.Skills.Tools) + len(doc.Skills.Backend),
			"languages":  len(doc.Languages),
			"projects":   len(doc.Projects),
		},
	}, nil
}

func computeHash(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// ToJSON marshals Metadata to pretty-printed JSON
func (m *Metadata) ToJSON() ([]byte, error) {
	jsonBytes, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata to JSON: %w", err)
	}
	return jsonBytes, nil
}
