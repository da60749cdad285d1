package layout

// Rect is an annotation rectangle [X0, Y0, X1, Y1] in page space.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// Link is a clickable URI region on a page.
type Link struct {
	Rect Rect
	URI  string
}

// Surface is the drawing target. Implementations keep a notion of the
// current page: AddPage makes a new page current and AttachLinks adds
// annotations to the current page.
type Surface interface {
	Measurer
	AddPage()
	DrawText(text string, x, y float64, style TextStyle)
	DrawCircle(x, y, r float64, c Color)
	DrawLine(x1, y1, x2, y2, width float64, c Color)
	AttachLinks(links []Link)
}

// Stats summarises a finished render.
type Stats struct {
	Pages        int
	LinksPerPage []int
}

// Links returns the total number of attached link annotations.
func (s Stats) Links() int {
	n := 0
	for _, c := range s.LinksPerPage {
		n += c
	}
	return n
}

// RenderContext is the mutable state of one render pass. It is created per
// document and never shared.
//
// Link annotations are buffered per page and attached when the page is left;
// NewPage is the only way to leave a page, so no pending link is dropped.
type RenderContext struct {
	surface Surface
	opts    Options
	y       float64
	page    int
	drawn   bool
	pending []Link
	cols    columns
	stats   Stats
}

// NewRenderContext opens the first page of s.
func NewRenderContext(s Surface, opts Options) *RenderContext {
	c := &RenderContext{surface: s, opts: opts}
	c.openPage()
	return c
}

func (c *RenderContext) openPage() {
	c.surface.AddPage()
	c.page++
	c.y = PageHeight - Margin
	c.drawn = false
	c.stats.Pages = c.page
	c.stats.LinksPerPage = append(c.stats.LinksPerPage, 0)
}

// Y returns the cursor baseline.
func (c *RenderContext) Y() float64 { return c.y }

// Page returns the 1-based index of the current page.
func (c *RenderContext) Page() int { return c.page }

// Pending returns the links not yet attached to the current page.
func (c *RenderContext) Pending() []Link { return c.pending }

// Advance moves the cursor down by dy.
func (c *RenderContext) Advance(dy float64) { c.y -= dy }

// EnsureSpace starts a new page when h does not fit above the bottom margin.
// It reports whether the page changed. A page with nothing drawn on it is
// never abandoned; callers drawing content taller than a page ask for one
// line at a time (see Lines and Row), so it still breaks across pages.
func (c *RenderContext) EnsureSpace(h float64) bool {
	if c.y-h >= Margin || !c.drawn {
		return false
	}
	c.NewPage()
	return true
}

// NewPage attaches pending links to the current page and moves to a new one.
func (c *RenderContext) NewPage() {
	c.flush()
	c.openPage()
}

// ForceNewPage starts the next content at the top of a fresh page. It is a
// no-op when the current page is still empty.
func (c *RenderContext) ForceNewPage() bool {
	if !c.drawn {
		return false
	}
	c.NewPage()
	return true
}

// Finish attaches the last page's links. The context must not be drawn on afterwards.
func (c *RenderContext) Finish() Stats {
	c.flush()
	return c.stats
}

func (c *RenderContext) flush() {
	if len(c.pending) == 0 {
		return
	}
	c.surface.AttachLinks(c.pending)
	c.stats.LinksPerPage[c.page-1] += len(c.pending)
	c.pending = nil
}

func (c *RenderContext) addLink(r Rect, uri string) {
	c.pending = append(c.pending, Link{Rect: r, URI: uri})
}

// Text draws text at (x, y).
func (c *RenderContext) Text(text string, x, y float64, style TextStyle) {
	if text == "" {
		return
	}
	c.surface.DrawText(text, x, y, style)
	c.drawn = true
}

// Rule draws a horizontal separator across the content width at y.
func (c *RenderContext) Rule(y float64) {
	c.surface.DrawLine(Margin, y, PageWidth-Margin, y, RuleWidth, RuleColor)
	c.drawn = true
}

// Glyph draws a bullet circle for text whose baseline is y, starting at x.
func (c *RenderContext) Glyph(x, y, size, r float64, col Color) {
	c.surface.DrawCircle(x+r, y+BulletRiseRatio*size, r, col)
	c.drawn = true
}

// DrawSegments draws a single-line run starting at x on baseline y and
// returns the x after the last segment. Link segments take the accent colour
// and register an annotation spanning exactly their measured width.
func (c *RenderContext) DrawSegments(segs []Segment, x, y float64, style TextStyle) float64 {
	for _, s := range segs {
		switch s.Kind {
		case SegmentText:
			c.Text(s.Text, x, y, style)
			x += c.surface.Measure(s.Text, style.Font, style.Size)
		case SegmentBullet:
			space := c.surface.Measure(" ", style.Font, style.Size) * float64(s.Pad)
			r := BulletRadiusFor(style.Size)
			x += space
			c.Glyph(x, y, style.Size, r, style.Color)
			x += 2*r + space
		case SegmentLink:
			ls := style
			ls.Color = c.opts.Accent
			c.Text(s.Text, x, y, ls)
			w := c.surface.Measure(s.Text, style.Font, style.Size)
			c.addLink(Rect{
				X0: x,
				Y0: y - linkDescender*style.Size,
				X1: x + w,
				Y1: y + style.Size,
			}, s.URL)
			x += w
		}
	}
	return x
}

// ItemRun draws items joined by bullets, wrapped to maxWidth, one line per
// baseline starting at the cursor. Items may be plain or link segments.
func (c *RenderContext) ItemRun(items []Segment, x, maxWidth float64, style TextStyle, pad int) {
	for _, line := range c.itemLines(items, maxWidth, style, pad) {
		c.Row(line, x, style)
	}
}

// itemLines wraps items as ItemRun draws them and returns each line joined
// with bullets. An item wider than maxWidth sits alone on its line, shortened
// with FitText.
func (c *RenderContext) itemLines(items []Segment, maxWidth float64, style TextStyle, pad int) [][]Segment {
	widths := make([]float64, len(items))
	for i, it := range items {
		widths[i] = c.surface.Measure(it.Text, style.Font, style.Size)
	}
	joint := BulletJoint(c.surface, style.Font, style.Size, pad)
	var lines [][]Segment
	for _, r := range wrapRanges(widths, maxWidth, joint) {
		line := items[r[0]:r[1]]
		if len(line) == 1 && widths[r[0]] > maxWidth {
			fitted := line[0]
			fitted.Text = FitText(c.surface, fitted.Text, maxWidth, style.Font, style.Size)
			line = []Segment{fitted}
		}
		lines = append(lines, JoinSegments(line, pad))
	}
	return lines
}

// Row draws one single-line run at the cursor, on a new page if the line
// does not fit, and advances the cursor.
func (c *RenderContext) Row(segs []Segment, x float64, style TextStyle) {
	lh := LineHeight(style.Size)
	c.EnsureSpace(lh)
	c.DrawSegments(segs, x, c.y, style)
	c.y -= lh
}

// Lines draws pre-wrapped lines at x, advancing the cursor per line and
// starting a new page whenever the next line would cross the bottom margin.
func (c *RenderContext) Lines(lines []string, x float64, style TextStyle) {
	lh := LineHeight(style.Size)
	for _, l := range lines {
		c.EnsureSpace(lh)
		c.Text(l, x, c.y, style)
		c.y -= lh
	}
}
