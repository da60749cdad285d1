package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/portfolio-cv/internal/layout"
)

func TestSanitizeText(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{"empty", "", ""},
		{"plain", "Senior Engineer", "Senior Engineer"},
		{"cp1252 kept", "Café – “quoted” • €5…", "Café – “quoted” • €5…"},
		{"spaces", "a\tb\u00a0c\u2009d", "a b c d"},
		{"zero width", "soft\u00adhy\u200bphen\ufeff", "softhyphen"},
		{"dashes", "non\u2011breaking \u2212 minus", "non-breaking - minus"},
		{"arrows", "A → B ← C", "A -> B <- C"},
		{"bullets", "\u25cf one \u25aa two", "\u2022 one \u2022 two"},
		{"ligatures", "\ufb01le \ufb02ow", "file flow"},
		{"control", "line\nbreak\x07", "linebreak"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeText(tt.in))
		})
	}
}

func TestPDFSurface_Measure(t *testing.T) {
	s := newPDFSurface()

	// Helvetica: space 278/1000, bold "W" 944/1000.
	assert.InDelta(t, 2.78, s.Measure(" ", layout.Regular, 10), 1e-9)
	assert.InDelta(t, 9.44, s.Measure("W", layout.Bold, 10), 1e-9)
	assert.InDelta(t, 2*s.Measure("ab", layout.Regular, 10), s.Measure("ab", layout.Regular, 20), 1e-9)
	assert.Equal(t, s.Measure("a-b", layout.Regular, 10), s.Measure("a\u2011b", layout.Regular, 10))
	assert.NoError(t, s.pdf.Error())
}
