// Package layout implements the CV page layout: text measurement and wrapping,
// page flow, section rendering, bullet glyphs and link annotation bookkeeping.
//
// Coordinates use a bottom-left origin in points (1/72 inch), the same convention
// as the PDF page space. The cursor y is the baseline of the next line.
package layout

// Page geometry (A4 in points).
const (
	PageWidth    = 595.0
	PageHeight   = 842.0
	Margin       = 60.0
	ContentWidth = PageWidth - 2*Margin
)

// Font sizes.
const (
	NameSize    = 20.0
	TitleSize   = 12.0
	ContactSize = 10.0
	HeadingSize = 11.0
	BodySize    = 10.0
	MetaSize    = 8.0
)

// Bullet glyph tuning. These were set by eye for Helvetica at 8–10pt and will
// need re-tuning for other families or sizes.
const (
	// BulletRiseRatio lifts the glyph centre above the baseline so it sits on
	// the lowercase x-height.
	BulletRiseRatio = 0.3
	// BulletRadius is used at body size and above.
	BulletRadius = 2.0
	// InlineBulletRadius is used for smaller metadata text.
	InlineBulletRadius = 1.5
)

// Vertical rhythm.
const (
	LineSpacing   = 1.4
	SectionGap    = 14.0
	ItemGap       = 10.0
	ParagraphGap  = 2.0
	HeadingRule   = 6.0  // baseline to separator rule
	HeadingGap    = 16.0 // separator rule to first item
	RuleWidth     = 0.75
	ListIndent    = 12.0
	ColumnGap     = 20.0
	ColumnWidth   = (ContentWidth - ColumnGap) / 2
	linkDescender = 0.25
)

// LineHeight returns the advance between baselines for a font size.
func LineHeight(size float64) float64 {
	return size * LineSpacing
}

// BulletRadiusFor picks the bullet radius matching the visual weight of size.
func BulletRadiusFor(size float64) float64 {
	if size >= BodySize {
		return BulletRadius
	}
	return InlineBulletRadius
}

// Color is an 8-bit RGB colour.
type Color struct {
	R, G, B uint8
}

// Palette.
var (
	TextColor     = Color{R: 33, G: 37, B: 41}
	MutedColor    = Color{R: 107, G: 114, B: 128}
	RuleColor     = Color{R: 209, G: 213, B: 219}
	DefaultAccent = Color{R: 37, G: 99, B: 235}
)

// Font selects a face of the document's font family.
type Font int

const (
	Regular Font = iota
	Bold
)

// TextStyle describes how a run of text is drawn.
type TextStyle struct {
	Font  Font
	Size  float64
	Color Color
}
