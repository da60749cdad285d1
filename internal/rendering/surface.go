package rendering

import (
	"github.com/go-pdf/fpdf"

	"github.com/jonathan/portfolio-cv/internal/layout"
)

const fontFamily = "Helvetica"

// pdfSurface draws layout output onto an fpdf document. fpdf measures y from
// the top of the page, layout from the bottom.
type pdfSurface struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

func newPDFSurface() *pdfSurface {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: layout.PageWidth, Ht: layout.PageHeight},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	return &pdfSurface{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
}

func flipY(y float64) float64 {
	return layout.PageHeight - y
}

func (s *pdfSurface) encode(text string) string {
	return s.tr(SanitizeText(text))
}

func (s *pdfSurface) setFont(font layout.Font, size float64) {
	style := ""
	if font == layout.Bold {
		style = "B"
	}
	s.pdf.SetFont(fontFamily, style, size)
}

func (s *pdfSurface) Measure(text string, font layout.Font, size float64) float64 {
	s.setFont(font, size)
	return s.pdf.GetStringWidth(s.encode(text))
}

func (s *pdfSurface) AddPage() {
	s.pdf.AddPage()
}

func (s *pdfSurface) DrawText(text string, x, y float64, style layout.TextStyle) {
	s.setFont(style.Font, style.Size)
	s.pdf.SetTextColor(int(style.Color.R), int(style.Color.G), int(style.Color.B))
	s.pdf.Text(x, flipY(y), s.encode(text))
}

func (s *pdfSurface) DrawCircle(x, y, r float64, c layout.Color) {
	s.pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
	s.pdf.Circle(x, flipY(y), r, "F")
}

func (s *pdfSurface) DrawLine(x1, y1, x2, y2, width float64, c layout.Color) {
	s.pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
	s.pdf.SetLineWidth(width)
	s.pdf.Line(x1, flipY(y1), x2, flipY(y2))
}

// AttachLinks adds URI annotations to the current page.
func (s *pdfSurface) AttachLinks(links []layout.Link) {
	for _, l := range links {
		r := l.Rect
		s.pdf.LinkString(r.X0, flipY(r.Y1), r.X1-r.X0, r.Y1-r.Y0, l.URI)
	}
}
