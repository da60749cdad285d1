// Package types provides type definitions for the resume document consumed by the CV generator.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// ResumeDocument is the read-only snapshot of the portfolio data rendered into a CV.
type ResumeDocument struct {
	PersonalInfo PersonalInfo `json:"personalInfo"`
	About        string       `json:"about,omitempty"`
	Experience   []Experience `json:"experience,omitempty" validate:"dive"`
	Education    []Education  `json:"education,omitempty" validate:"dive"`
	Skills       Skills       `json:"skills"`
	Languages    []Language   `json:"languages,omitempty" validate:"dive"`
	Projects     []Project    `json:"projects,omitempty" validate:"dive"`
}

// PersonalInfo holds the header and contact data.
type PersonalInfo struct {
	Name     string `json:"name" validate:"required"`
	Title    string `json:"title" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	Website  string `json:"website,omitempty" validate:"omitempty,url"`
	GitHub   string `json:"github,omitempty" validate:"omitempty,url"`
	LinkedIn string `json:"linkedin,omitempty" validate:"omitempty,url"`
}

// Experience is a single position.
type Experience struct {
	Title       string `json:"title" validate:"required"`
	Company     string `json:"company"` // may embed " - " separators
	Period      string `json:"period"`
	Description string `json:"description,omitempty"`
	IsCurrent   bool   `json:"isCurrent,omitempty"`
}

// Education is a single degree or course.
type Education struct {
	Degree      string `json:"degree" validate:"required"`
	Institution string `json:"institution"`
	Period      string `json:"period"`
	Description string `json:"description,omitempty"` // may embed a bare URL
}

// Skills groups the three independent skill lists.
type Skills struct {
	Frontend []string `json:"frontend,omitempty"` // "Technologies"
	Tools    []string `json:"tools,omitempty"`
	Backend  []string `json:"backend,omitempty"` // "Methodologies & Practices"
}

// Language is a spoken language and proficiency.
type Language struct {
	Language string `json:"language" validate:"required"`
	Level    string `json:"level"`
}

// ProjectStatus is the lifecycle state of a project.
type ProjectStatus string

const (
	StatusCompleted  ProjectStatus = "completed"
	StatusInProgress ProjectStatus = "in-progress"
	StatusArchived   ProjectStatus = "archived"
)

// Label returns the display label for the status. Unknown values are returned verbatim.
func (s ProjectStatus) Label() string {
	switch s {
	case StatusCompleted:
		return "Completed"
	case StatusInProgress:
		return "In Progress"
	case StatusArchived:
		return "Archived"
	default:
		return string(s)
	}
}

// Project is a showcase entry.
type Project struct {
	Title            string        `json:"title" validate:"required"`
	ShortDescription string        `json:"shortDescription,omitempty"`
	Description      string        `json:"description,omitempty"`
	Year             string        `json:"year,omitempty"`
	Status           ProjectStatus `json:"status,omitempty"`
	GitHubURL        string        `json:"githubUrl,omitempty" validate:"omitempty,url"`
	DemoURL          string        `json:"demoUrl,omitempty" validate:"omitempty,url"`
}

// Summary returns the short description, falling back to the full description.
func (p Project) Summary() string {
	if s := strings.TrimSpace(p.ShortDescription); s != "" {
		return s
	}
	return strings.TrimSpace(p.Description)
}

// Highlights returns the bulleted lines of About with their marker stripped.
// Lines without a leading "•" or "-" are not highlights.
func (d *ResumeDocument) Highlights() []string {
	var out []string
	for _, line := range strings.Split(d.About, "\n") {
		line = strings.TrimSpace(line)
		var rest string
		switch {
		case strings.HasPrefix(line, "•"):
			rest = strings.TrimPrefix(line, "•")
		case strings.HasPrefix(line, "-"):
			rest = strings.TrimPrefix(line, "-")
		default:
			continue
		}
		if rest = strings.TrimSpace(rest); rest != "" {
			out = append(out, rest)
		}
	}
	return out
}

// PhoneIsURL reports whether the phone field is a link rather than a number.
func (p PersonalInfo) PhoneIsURL() bool {
	return IsHTTPURL(p.Phone)
}

// IsHTTPURL reports whether s starts with an http or https scheme.
func IsHTTPURL(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// Validate validates the document using the validator.
func (d *ResumeDocument) Validate() error {
	validate := validator.New()
	return validate.Struct(d)
}
