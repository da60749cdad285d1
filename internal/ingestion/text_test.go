package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/portfolio-cv/internal/types"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{"empty", "", ""},
		{"whitespace only", "  \n\t\n ", ""},
		{"line endings", "Line 1\r\nLine 2\rLine 3", "Line 1\nLine 2\nLine 3"},
		{"spaces", "Line    with \t multiple    spaces  ", "Line with multiple spaces"},
		{"blank lines", "Line 1\n\n\n\nLine 2", "Line 1\nLine 2"},
		{"star bullets", "* Item 1\n  * Item 2", "• Item 1\n• Item 2"},
		{"dash bullets kept", "- Item", "- Item"},
		{"middle dot bullets", "· Item", "• Item"},
		{"special characters", "Café – R&D • €5", "Café – R&D • €5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.in))
		})
	}
}

func TestCleanText_Deterministic(t *testing.T) {
	input := "Test content   with   spaces\n\n\nMultiple   blank   lines"
	assert.Equal(t, CleanText(input), CleanText(input))
	assert.Equal(t, CleanText(input), CleanText(CleanText(input)))
}

func TestRichText(t *testing.T) {
	got, err := RichText("<p>Built the   stack.</p><ul><li>Cut render time</li><li>Owned <b>on-call</b></li></ul>")
	require.NoError(t, err)
	assert.Equal(t, "Built the stack.\n• Cut render time\n• Owned on-call", got)

	got, err = RichText("Thesis: https://example.edu/thesis (distinction)")
	require.NoError(t, err)
	assert.Equal(t, "Thesis: https://example.edu/thesis (distinction)", got)
}

func TestNormalize(t *testing.T) {
	doc := &types.ResumeDocument{
		PersonalInfo: types.PersonalInfo{Name: "  Jane Doe ", Title: "Engineer", Email: " jane@example.com"},
		About:        "Intro\r\n* One\r\n* Two",
		Experience:   []types.Experience{{Title: "Dev", Description: "<ul><li>Shipped</li></ul>"}},
		Education:    []types.Education{{Degree: "BSc", Description: "a  b"}},
		Projects:     []types.Project{{Title: "P", ShortDescription: "<p>Short</p>", Description: "Long\n\nform"}},
	}

	require.NoError(t, Normalize(doc))

	assert.Equal(t, "Jane Doe", doc.PersonalInfo.Name)
	assert.Equal(t, "jane@example.com", doc.PersonalInfo.Email)
	assert.Equal(t, "Intro\n• One\n• Two", doc.About)
	assert.Equal(t, []string{"One", "Two"}, doc.Highlights())
	assert.Equal(t, "• Shipped", doc.Experience[0].Description)
	assert.Equal(t, "a b", doc.Education[0].Description)
	assert.Equal(t, "Short", doc.Projects[0].ShortDescription)
	assert.Equal(t, "Long\nform", doc.Projects[0].Description)
}
