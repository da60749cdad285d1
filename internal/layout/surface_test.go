package layout

import (
	"unicode/utf8"
)

// fixedMeasurer advances every rune by half the font size.
type fixedMeasurer struct{}

func (fixedMeasurer) Measure(text string, _ Font, size float64) float64 {
	return float64(utf8.RuneCountInString(text)) * size * 0.5
}

type drawnText struct {
	page  int
	text  string
	x, y  float64
	style TextStyle
}

type drawnCircle struct {
	page    int
	x, y, r float64
}

// recorder is a Surface that keeps every draw call per page.
type recorder struct {
	fixedMeasurer
	page    int
	texts   []drawnText
	circles []drawnCircle
	lines   int
	links   map[int][]Link
}

func newRecorder() *recorder {
	return &recorder{links: make(map[int][]Link)}
}

func (r *recorder) AddPage() { r.page++ }

func (r *recorder) DrawText(text string, x, y float64, style TextStyle) {
	r.texts = append(r.texts, drawnText{page: r.page, text: text, x: x, y: y, style: style})
}

func (r *recorder) DrawCircle(x, y, rad float64, _ Color) {
	r.circles = append(r.circles, drawnCircle{page: r.page, x: x, y: y, r: rad})
}

func (r *recorder) DrawLine(_, _, _, _, _ float64, _ Color) { r.lines++ }

func (r *recorder) AttachLinks(links []Link) {
	r.links[r.page] = append(r.links[r.page], links...)
}

func (r *recorder) find(text string) (drawnText, bool) {
	for _, t := range r.texts {
		if t.text == text {
			return t, true
		}
	}
	return drawnText{}, false
}

func (r *recorder) findAll(text string) []drawnText {
	var out []drawnText
	for _, t := range r.texts {
		if t.text == text {
			out = append(out, t)
		}
	}
	return out
}

func (r *recorder) firstTextOn(page int) (drawnText, bool) {
	for _, t := range r.texts {
		if t.page == page {
			return t, true
		}
	}
	return drawnText{}, false
}

func (r *recorder) totalLinks() int {
	n := 0
	for _, l := range r.links {
		n += len(l)
	}
	return n
}

// labelAt reports whether text starting exactly at the link's left edge was
// drawn on page, on a baseline inside the link rectangle.
func (r *recorder) labelAt(page int, l Link) bool {
	for _, t := range r.texts {
		if t.page == page && t.x == l.Rect.X0 && t.y > l.Rect.Y0 && t.y < l.Rect.Y1 {
			return true
		}
	}
	return false
}
