package types

// Violation is one way a generated PDF differs from what the layout intended.
type Violation struct {
	Type     string  `json:"type"`
	Severity string  `json:"severity"`
	Details  string  `json:"details"`
	Page     *int    `json:"page,omitempty"`
	URI      *string `json:"uri,omitempty"`
}

// Violations represents a collection of validation failures
type Violations struct {
	Violations []Violation `json:"violations"`
}

// Add appends a violation.
func (v *Violations) Add(violation Violation) {
	v.Violations = append(v.Violations, violation)
}

// HasErrors reports whether any violation has error severity.
func (v *Violations) HasErrors() bool {
	for _, violation := range v.Violations {
		if violation.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Severities.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)
