package layout

import (
	"strings"

	"github.com/jonathan/portfolio-cv/internal/types"
)

// columns tracks the two project column cursors. Projects alternate between
// columns; a project that does not fit its turn goes to the other column if
// that one has room, otherwise a new page resets both.
type columns struct {
	y    [2]float64
	top  float64
	next int
}

func (k *columns) reset(top float64) {
	k.y = [2]float64{top, top}
	k.top = top
	k.next = 0
}

func (k *columns) fits(col int, h float64) bool {
	return k.y[col]-h >= Margin
}

func (k *columns) bottom() float64 {
	return min(k.y[0], k.y[1])
}

// columnX returns the left edge of a column.
func columnX(col int) float64 {
	return Margin + float64(col)*(ColumnWidth+ColumnGap)
}

// placeColumn reserves h points in a column and returns the column and the
// baseline to start drawing at.
func (c *RenderContext) placeColumn(h float64) (int, float64) {
	col := c.cols.next
	if !c.cols.fits(col, h) {
		switch other := 1 - col; {
		case c.cols.fits(other, h):
			col = other
		case !c.drawn || h > PageHeight-2*Margin:
			// Taller than a page: start here, drawProject breaks it.
		default:
			c.NewPage()
			c.cols.reset(c.y)
			col = 0
		}
	}
	y := c.cols.y[col]
	c.cols.y[col] -= h
	c.cols.next = 1 - col
	return col, y
}

// fitColumnLine returns the column the next line of height lh goes in. A
// project reaching the bottom margin continues at the top of the right
// column while that is still empty, otherwise at the top of a new page.
func (c *RenderContext) fitColumnLine(col int, lh float64) int {
	if c.y-lh >= Margin {
		return col
	}
	c.cols.y[col] = c.y
	if col == 0 && c.cols.y[1] == c.cols.top {
		c.y = c.cols.top
		return 1
	}
	c.NewPage()
	c.cols.reset(c.y)
	return 0
}

// projectRow is one line of a project card.
type projectRow struct {
	segs  []Segment
	style TextStyle
}

type projectBlock struct {
	rows   []projectRow
	height float64
}

func (b *projectBlock) add(style TextStyle, lines ...[]Segment) {
	for _, l := range lines {
		b.rows = append(b.rows, projectRow{segs: l, style: style})
		b.height += LineHeight(style.Size)
	}
}

func textRows(lines []string) [][]Segment {
	rows := make([][]Segment, len(lines))
	for i, l := range lines {
		rows[i] = []Segment{Plain(l)}
	}
	return rows
}

func (c *RenderContext) layoutProject(p types.Project) projectBlock {
	title, body, meta := c.titleStyle(), c.bodyStyle(), c.metaStyle()

	var b projectBlock
	b.add(title, textRows(WrapText(c.surface, p.Title, ColumnWidth, title.Font, title.Size))...)
	b.add(body, textRows(WrapText(c.surface, p.Summary(), ColumnWidth, body.Font, body.Size))...)
	b.add(meta, c.itemLines(plainSegments(nonEmpty(p.Year, p.Status.Label())), ColumnWidth, meta, 1)...)

	var links []Segment
	if u := strings.TrimSpace(p.GitHubURL); u != "" {
		links = append(links, LinkTo("GitHub", u))
	}
	if u := strings.TrimSpace(p.DemoURL); u != "" {
		links = append(links, LinkTo("Demo", u))
	}
	b.add(meta, c.itemLines(links, ColumnWidth, meta, 1)...)

	b.height += ItemGap
	return b
}

// drawProject draws b from baseline y of col, breaking line by line when
// it reaches the bottom margin, and leaves the column cursors below it.
func (c *RenderContext) drawProject(b projectBlock, col int, y float64) {
	c.y = y
	for _, r := range b.rows {
		col = c.fitColumnLine(col, LineHeight(r.style.Size))
		c.DrawSegments(r.segs, columnX(col), c.y, r.style)
		c.y -= LineHeight(r.style.Size)
	}
	c.cols.y[col] = c.y - ItemGap
	c.cols.next = 1 - col
}

func renderProjects(c *RenderContext, doc *types.ResumeDocument) {
	blocks := make([]projectBlock, len(doc.Projects))
	for i, p := range doc.Projects {
		blocks[i] = c.layoutProject(p)
	}

	c.heading("Projects", blockSpace(blocks[0].height, LineHeight(BodySize)))
	c.cols.reset(c.y)
	for _, b := range blocks {
		col, y := c.placeColumn(b.height)
		c.drawProject(b, col, y)
	}
	c.y = c.cols.bottom()
}
