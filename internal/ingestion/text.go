package ingestion

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/portfolio-cv/internal/fetch"
	"github.com/jonathan/portfolio-cv/internal/types"
)

var multiSpace = regexp.MustCompile(`[ \t]+`)

// CleanText normalises a description field: line endings become LF, runs of spaces
// collapse, blank lines are dropped and "* " list markers become "• ".
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = cleanLine(line); line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}

func cleanLine(line string) string {
	line = strings.TrimSpace(multiSpace.ReplaceAllString(line, " "))
	if rest, ok := strings.CutPrefix(line, "* "); ok {
		return "• " + rest
	}
	if rest, ok := strings.CutPrefix(line, "· "); ok {
		return "• " + rest
	}
	return line
}

// RichText converts editor HTML to plain lines when present, then cleans the result.
func RichText(content string) (string, error) {
	if fetch.LooksLikeHTML(content) {
		text, err := fetch.HTMLToText(content)
		if err != nil {
			return "", err
		}
		content = text
	}
	return CleanText(content), nil
}

// Normalize rewrites every free-text field of doc in place.
func Normalize(doc *types.ResumeDocument) error {
	var err error
	if doc.About, err = RichText(doc.About); err != nil {
		return fmt.Errorf("about: %w", err)
	}
	for i := range doc.Experience {
		if doc.Experience[i].Description, err = RichText(doc.Experience[i].Description); err != nil {
			return fmt.Errorf("experience %d: %w", i, err)
		}
	}
	for i := range doc.Education {
		if doc.Education[i].Description, err = RichText(doc.Education[i].Description); err != nil {
			return fmt.Errorf("education %d: %w", i, err)
		}
	}
	for i := range doc.Projects {
		p := &doc.Projects[i]
		if p.ShortDescription, err = RichText(p.ShortDescription); err != nil {
			return fmt.Errorf("project %d: %w", i, err)
		}
		if p.Description, err = RichText(p.Description); err != nil {
			return fmt.Errorf("project %d: %w", i, err)
		}
	}
	trimFields(&doc.PersonalInfo.Name, &doc.PersonalInfo.Title, &doc.PersonalInfo.Email,
		&doc.PersonalInfo.Phone, &doc.PersonalInfo.Location, &doc.PersonalInfo.Website,
		&doc.PersonalInfo.GitHub, &doc.PersonalInfo.LinkedIn)
	return nil
}

func trimFields(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}
