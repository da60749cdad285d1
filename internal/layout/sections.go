package layout

import (
	"strings"

	"github.com/jonathan/portfolio-cv/internal/types"
)

func (c *RenderContext) bodyStyle() TextStyle {
	return TextStyle{Font: Regular, Size: BodySize, Color: TextColor}
}

func (c *RenderContext) titleStyle() TextStyle {
	return TextStyle{Font: Bold, Size: BodySize, Color: c.opts.Accent}
}

func (c *RenderContext) metaStyle() TextStyle {
	return TextStyle{Font: Regular, Size: MetaSize, Color: MutedColor}
}

// heading draws a section title and its rule, keeping at least next points
// of content on the same page.
func (c *RenderContext) heading(title string, next float64) {
	c.EnsureSpace(HeadingRule + HeadingGap + next)
	c.Text(title, Margin, c.y, TextStyle{Font: Bold, Size: HeadingSize, Color: c.opts.Accent})
	c.y -= HeadingRule
	c.Rule(c.y)
	c.y -= HeadingGap
}

// paragraph is a wrapped block of description text. Bulleted paragraphs are
// drawn with a glyph and indented.
type paragraph struct {
	bullet bool
	lines  []string
}

func (c *RenderContext) layoutParagraphs(text string, width float64, style TextStyle) []paragraph {
	var out []paragraph
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		p := paragraph{}
		if rest, ok := cutBulletMarker(line); ok {
			p.bullet = true
			line = rest
		}
		w := width
		if p.bullet {
			w -= ListIndent
		}
		p.lines = WrapText(c.surface, line, w, style.Font, style.Size)
		if len(p.lines) > 0 {
			out = append(out, p)
		}
	}
	return out
}

func cutBulletMarker(line string) (string, bool) {
	for _, marker := range []string{bulletChar, "-"} {
		if rest, ok := strings.CutPrefix(line, marker); ok {
			return strings.TrimSpace(rest), true
		}
	}
	return line, false
}

func paragraphsHeight(ps []paragraph, size float64) float64 {
	n := 0
	for _, p := range ps {
		n += len(p.lines)
	}
	return float64(n) * LineHeight(size)
}

func (c *RenderContext) drawParagraphs(ps []paragraph, x float64, style TextStyle) {
	for _, p := range ps {
		if !p.bullet {
			c.Lines(p.lines, x, style)
			continue
		}
		c.EnsureSpace(LineHeight(style.Size))
		c.Glyph(x, c.y, style.Size, BulletRadiusFor(style.Size), style.Color)
		c.Lines(p.lines, x+ListIndent, style)
	}
}

func nonEmpty(values ...string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func plainSegments(values []string) []Segment {
	segs := make([]Segment, 0, len(values))
	for _, v := range values {
		segs = append(segs, Plain(v))
	}
	return segs
}

func rowsHeight(rows [][]Segment, size float64) float64 {
	return float64(len(rows)) * LineHeight(size)
}

// keepTogether is the tallest block that fits below a heading on a fresh page.
const keepTogether = PageHeight - 2*Margin - HeadingRule - HeadingGap

// blockSpace is the room to ask for before a block of height h whose first
// line needs first points. Blocks that fit on a page are kept together;
// taller ones start where they are and break line by line.
func blockSpace(h, first float64) float64 {
	if h > keepTogether {
		return first
	}
	return h
}

func renderHeader(c *RenderContext, doc *types.ResumeDocument) {
	pi := doc.PersonalInfo

	c.Text(pi.Name, Margin, c.y, TextStyle{Font: Bold, Size: NameSize, Color: TextColor})
	c.y -= NameSize + 6
	c.Text(pi.Title, Margin, c.y, TextStyle{Font: Regular, Size: TitleSize, Color: c.opts.Accent})
	c.y -= TitleSize + 8

	contactStyle := TextStyle{Font: Regular, Size: ContactSize, Color: MutedColor}

	var contact []Segment
	if pi.Email != "" {
		contact = append(contact, LinkTo(pi.Email, "mailto:"+pi.Email))
	}
	if pi.Phone != "" {
		if pi.PhoneIsURL() {
			contact = append(contact, LinkTo(DisplayURL(pi.Phone), pi.Phone))
		} else {
			contact = append(contact, Plain(pi.Phone))
		}
	}
	if pi.Location != "" {
		contact = append(contact, Plain(pi.Location))
	}
	c.ItemRun(contact, Margin, ContentWidth, contactStyle, 2)

	var web []Segment
	for _, u := range []string{pi.Website, pi.GitHub, pi.LinkedIn} {
		if u = strings.TrimSpace(u); u != "" {
			web = append(web, LinkTo(DisplayURL(u), u))
		}
	}
	c.ItemRun(web, Margin, ContentWidth, contactStyle, 2)
}

func renderHighlights(c *RenderContext, doc *types.ResumeDocument) {
	style := c.bodyStyle()
	items := doc.Highlights()
	blocks := make([]paragraph, len(items))
	for i, h := range items {
		blocks[i] = paragraph{bullet: true, lines: WrapText(c.surface, h, ContentWidth-ListIndent, style.Font, style.Size)}
	}

	lh := LineHeight(style.Size)
	c.heading("Highlights", blockSpace(paragraphsHeight(blocks[:1], style.Size), lh))
	for _, b := range blocks {
		c.EnsureSpace(blockSpace(paragraphsHeight([]paragraph{b}, style.Size), lh))
		c.drawParagraphs([]paragraph{b}, Margin, style)
		c.y -= ParagraphGap
	}
}

func experienceMeta(e types.Experience) string {
	parts := nonEmpty(e.Company, e.Period)
	period := strings.ToLower(e.Period)
	if e.IsCurrent && !strings.Contains(period, "present") && !strings.Contains(period, "current") {
		parts = append(parts, "Current")
	}
	return strings.Join(parts, " - ")
}

func renderExperience(c *RenderContext, doc *types.ResumeDocument) {
	body := c.bodyStyle()
	title := c.titleStyle()
	meta := c.metaStyle()

	type block struct {
		title  []string
		meta   [][]Segment
		body   []paragraph
		height float64
	}
	blocks := make([]block, len(doc.Experience))
	for i, e := range doc.Experience {
		b := block{
			title: WrapText(c.surface, e.Title, ContentWidth, title.Font, title.Size),
			meta:  c.itemLines(BulletItems(experienceMeta(e)), ContentWidth, meta, 1),
			body:  c.layoutParagraphs(e.Description, ContentWidth, body),
		}
		b.height = float64(len(b.title))*LineHeight(title.Size) + rowsHeight(b.meta, meta.Size) +
			paragraphsHeight(b.body, body.Size) + ItemGap
		blocks[i] = b
	}

	first := LineHeight(title.Size)
	c.heading("Professional Experience", blockSpace(blocks[0].height, first))
	for _, b := range blocks {
		c.EnsureSpace(blockSpace(b.height, first))
		c.Lines(b.title, Margin, title)
		for _, row := range b.meta {
			c.Row(row, Margin, meta)
		}
		c.drawParagraphs(b.body, Margin, body)
		c.y -= ItemGap
	}
}

// SkillGroups returns the labelled skill lists in render order, empty ones dropped.
func SkillGroups(s types.Skills) []SkillGroup {
	var groups []SkillGroup
	for _, g := range []SkillGroup{
		{Label: "Technologies", Items: s.Frontend},
		{Label: "Tools", Items: s.Tools},
		{Label: "Methodologies & Practices", Items: s.Backend},
	} {
		if g.Items = nonEmpty(g.Items...); len(g.Items) > 0 {
			groups = append(groups, g)
		}
	}
	return groups
}

// SkillGroup is one labelled skill list.
type SkillGroup struct {
	Label string
	Items []string
}

func renderSkills(c *RenderContext, doc *types.ResumeDocument) {
	body := c.bodyStyle()
	label := TextStyle{Font: Bold, Size: BodySize, Color: TextColor}
	lh := LineHeight(BodySize)

	c.heading("Technical Skills", 2*lh)
	for _, g := range SkillGroups(doc.Skills) {
		c.EnsureSpace(2 * lh)
		c.Text(g.Label, Margin, c.y, label)
		c.y -= lh
		c.ItemRun(plainSegments(g.Items), Margin, ContentWidth, body, 2)
		c.y -= 3 * ParagraphGap
	}
}

func renderEducation(c *RenderContext, doc *types.ResumeDocument) {
	body := c.bodyStyle()
	title := c.titleStyle()
	meta := c.metaStyle()

	type block struct {
		title  []string
		meta   [][]Segment
		inline [][]Segment
		body   []paragraph
		height float64
	}
	blocks := make([]block, len(doc.Education))
	for i, ed := range doc.Education {
		b := block{
			title: WrapText(c.surface, ed.Degree, ContentWidth, title.Font, title.Size),
			meta:  c.itemLines(BulletItems(strings.Join(nonEmpty(ed.Institution, ed.Period), " - ")), ContentWidth, meta, 1),
		}
		desc := strings.Join(strings.Fields(ed.Description), " ")
		var descHeight float64
		if segs := LinkSegments(desc); HasLink(segs) {
			// URL descriptions keep the link inline; the run wraps only when
			// it is wider than the page.
			b.inline = WrapSegments(c.surface, segs, ContentWidth, body.Font, body.Size)
			descHeight = rowsHeight(b.inline, body.Size)
		} else {
			b.body = c.layoutParagraphs(ed.Description, ContentWidth, body)
			descHeight = paragraphsHeight(b.body, body.Size)
		}
		b.height = float64(len(b.title))*LineHeight(title.Size) + rowsHeight(b.meta, meta.Size) + descHeight + ItemGap
		blocks[i] = b
	}

	first := LineHeight(title.Size)
	c.heading("Education", blockSpace(blocks[0].height, first))
	for _, b := range blocks {
		c.EnsureSpace(blockSpace(b.height, first))
		c.Lines(b.title, Margin, title)
		for _, row := range b.meta {
			c.Row(row, Margin, meta)
		}
		if len(b.inline) > 0 {
			for _, row := range b.inline {
				c.Row(row, Margin, body)
			}
		} else {
			c.drawParagraphs(b.body, Margin, body)
		}
		c.y -= ItemGap
	}
}

func renderLanguages(c *RenderContext, doc *types.ResumeDocument) {
	body := c.bodyStyle()
	lh := LineHeight(body.Size)

	c.heading("Languages", lh)
	for _, l := range doc.Languages {
		c.Row(JoinSegments(plainSegments(nonEmpty(l.Language, l.Level)), 1), Margin, body)
	}
}
