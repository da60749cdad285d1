package layout

import (
	"regexp"
	"strings"
)

// SegmentKind tags a Segment.
type SegmentKind int

const (
	SegmentText SegmentKind = iota
	SegmentBullet
	SegmentLink
)

// Segment is one drawable piece of a single-line run.
type Segment struct {
	Kind SegmentKind
	Text string // SegmentText, SegmentLink
	URL  string // SegmentLink
	Pad  int    // SegmentBullet: spaces on each side of the glyph
}

// Plain returns a text segment.
func Plain(text string) Segment {
	return Segment{Kind: SegmentText, Text: text}
}

// Bullet returns a bullet glyph segment padded by pad spaces on each side.
func Bullet(pad int) Segment {
	return Segment{Kind: SegmentBullet, Pad: pad}
}

// LinkTo returns a clickable text segment.
func LinkTo(text, url string) Segment {
	return Segment{Kind: SegmentLink, Text: text, URL: url}
}

const bulletChar = "•"

// BulletSegments splits metadata text on " - " and on literal bullets,
// interleaving single-padded bullet glyphs between the trimmed parts.
// "Acme - Remote" becomes [Acme, •, Remote].
func BulletSegments(text string) []Segment {
	return JoinSegments(BulletItems(text), 1)
}

// BulletItems returns the trimmed parts BulletSegments would join.
func BulletItems(text string) []Segment {
	text = strings.ReplaceAll(text, " - ", bulletChar)
	var items []Segment
	for _, p := range strings.Split(text, bulletChar) {
		if p = strings.TrimSpace(p); p != "" {
			items = append(items, Plain(p))
		}
	}
	return items
}

// JoinSegments interleaves bullets of the given padding between items.
func JoinSegments(items []Segment, pad int) []Segment {
	if len(items) == 0 {
		return nil
	}
	out := make([]Segment, 0, 2*len(items)-1)
	for i, item := range items {
		if i > 0 {
			out = append(out, Bullet(pad))
		}
		out = append(out, item)
	}
	return out
}

var urlPattern = regexp.MustCompile(`https?://\S+`)

// LinkSegments splits text into plain and link segments around bare URLs.
// Trailing sentence punctuation is kept out of the link target.
func LinkSegments(text string) []Segment {
	var segs []Segment
	last := 0
	for _, loc := range urlPattern.FindAllStringIndex(text, -1) {
		start, end := loc[0], loc[1]
		for end > start && strings.ContainsRune(".,;:!?)]'\"", rune(text[end-1])) {
			end--
		}
		if start > last {
			segs = append(segs, Plain(text[last:start]))
		}
		url := text[start:end]
		segs = append(segs, LinkTo(url, url))
		last = end
	}
	if last < len(text) {
		segs = append(segs, Plain(text[last:]))
	}
	return segs
}

// HasLink reports whether any segment is a link.
func HasLink(segs []Segment) bool {
	for _, s := range segs {
		if s.Kind == SegmentLink {
			return true
		}
	}
	return false
}

// SegmentsWidth measures a run as DrawSegments would lay it out.
func SegmentsWidth(m Measurer, segs []Segment, font Font, size float64) float64 {
	w := 0.0
	for _, s := range segs {
		switch s.Kind {
		case SegmentBullet:
			w += BulletJoint(m, font, size, s.Pad)
		default:
			w += m.Measure(s.Text, font, size)
		}
	}
	return w
}

// DisplayURL shortens a URL for printing: scheme, "www." and trailing slash dropped.
func DisplayURL(raw string) string {
	s := strings.TrimSpace(raw)
	for _, prefix := range []string{"https://", "http://"} {
		if len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix) {
			s = s[len(prefix):]
			break
		}
	}
	s = strings.TrimPrefix(s, "www.")
	return strings.TrimSuffix(s, "/")
}
