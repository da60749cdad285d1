package layout

import (
	"strings"
	"unicode"
)

// Measurer reports the advance width of text in points.
type Measurer interface {
	Measure(text string, font Font, size float64) float64
}

// WrapText greedily fills lines word by word so that no line is wider than
// maxWidth. A single word wider than maxWidth is emitted alone, unbroken.
func WrapText(m Measurer, text string, maxWidth float64, font Font, size float64) []string {
	var lines []string
	line := ""
	for _, word := range strings.Fields(text) {
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if line != "" && m.Measure(candidate, font, size) > maxWidth {
			lines = append(lines, line)
			line = word
			continue
		}
		line = candidate
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

// BulletJoint is the horizontal space taken between two items joined by a
// bullet: pad spaces, the glyph, pad spaces.
func BulletJoint(m Measurer, font Font, size float64, pad int) float64 {
	space := m.Measure(" ", font, size)
	return 2*float64(pad)*space + 2*BulletRadiusFor(size)
}

// WrapItems distributes items over lines as if joined by bullets. The joint
// cost is the rendered one (see BulletJoint), not the width of " • ".
// Every returned line holds at least one item; an item wider than maxWidth
// sits alone on its line.
func WrapItems(m Measurer, items []string, maxWidth float64, font Font, size float64, pad int) [][]string {
	widths := make([]float64, len(items))
	for i, item := range items {
		widths[i] = m.Measure(item, font, size)
	}

	var lines [][]string
	for _, r := range wrapRanges(widths, maxWidth, BulletJoint(m, font, size, pad)) {
		lines = append(lines, items[r[0]:r[1]])
	}
	return lines
}

// wrapRanges returns half-open index ranges of items per line.
func wrapRanges(widths []float64, maxWidth, joint float64) [][2]int {
	var ranges [][2]int
	start := 0
	lineWidth := 0.0
	for i, w := range widths {
		if i == start {
			lineWidth = w
			continue
		}
		if lineWidth+joint+w > maxWidth {
			ranges = append(ranges, [2]int{start, i})
			start = i
			lineWidth = w
			continue
		}
		lineWidth += joint + w
	}
	if start < len(widths) {
		ranges = append(ranges, [2]int{start, len(widths)})
	}
	return ranges
}

const ellipsis = "..."

// FitText shortens text until it fits maxWidth, marking the cut with an
// ellipsis. Text that already fits is returned unchanged.
func FitText(m Measurer, text string, maxWidth float64, font Font, size float64) string {
	if m.Measure(text, font, size) <= maxWidth {
		return text
	}
	runes := []rune(text)
	for n := len(runes) - 1; n > 0; n-- {
		s := strings.TrimRightFunc(string(runes[:n]), unicode.IsSpace) + ellipsis
		if m.Measure(s, font, size) <= maxWidth {
			return s
		}
	}
	return ellipsis
}

type runToken struct {
	seg   Segment
	space bool // separated from the previous token by whitespace
}

func runTokens(segs []Segment) []runToken {
	var toks []runToken
	space := false
	for _, s := range segs {
		if s.Kind != SegmentText {
			toks = append(toks, runToken{seg: s, space: space})
			space = false
			continue
		}
		text := s.Text
		for text != "" {
			word := strings.TrimLeftFunc(text, unicode.IsSpace)
			if len(word) < len(text) {
				space = true
			}
			if word == "" {
				break
			}
			end := strings.IndexFunc(word, unicode.IsSpace)
			if end < 0 {
				end = len(word)
			}
			toks = append(toks, runToken{seg: Plain(word[:end]), space: space})
			space = false
			text = word[end:]
		}
	}
	return toks
}

// WrapSegments breaks a run of text and link segments into lines no wider
// than maxWidth. Text breaks at whitespace, links stay whole, and a token
// wider than maxWidth on its own is shortened with FitText.
func WrapSegments(m Measurer, segs []Segment, maxWidth float64, font Font, size float64) [][]Segment {
	spaceW := m.Measure(" ", font, size)
	var lines [][]Segment
	var line []Segment
	width := 0.0
	for _, t := range runTokens(segs) {
		w := m.Measure(t.seg.Text, font, size)
		if len(line) > 0 && t.space && width+spaceW+w > maxWidth {
			lines = append(lines, line)
			line, width = nil, 0
		}
		if len(line) == 0 && w > maxWidth {
			t.seg.Text = FitText(m, t.seg.Text, maxWidth, font, size)
			w = m.Measure(t.seg.Text, font, size)
		}
		if len(line) > 0 && t.space {
			line = appendSegment(line, Plain(" "))
			width += spaceW
		}
		line = appendSegment(line, t.seg)
		width += w
	}
	if len(line) > 0 {
		lines = append(lines, line)
	}
	return lines
}

// appendSegment merges adjacent text segments.
func appendSegment(line []Segment, s Segment) []Segment {
	if n := len(line); n > 0 && s.Kind == SegmentText && line[n-1].Kind == SegmentText {
		line[n-1].Text += s.Text
		return line
	}
	return append(line, s)
}
