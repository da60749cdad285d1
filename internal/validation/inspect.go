package validation

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Link is a URI annotation found on a page. Rect is normalised so that
// X0 <= X1 and Y0 <= Y1, in PDF points with a bottom-left origin.
type Link struct {
	URI  string     `json:"uri"`
	Rect [4]float64 `json:"rect"`
}

// PageReport describes one page of an inspected PDF.
type PageReport struct {
	Number int     `json:"number"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Links  []Link  `json:"links,omitempty"`
	Text   string  `json:"text,omitempty"`
}

// Report is the result of Inspect.
type Report struct {
	Pages []PageReport `json:"pages"`
}

// PageCount returns the number of pages.
func (r *Report) PageCount() int {
	return len(r.Pages)
}

// LinksPerPage returns the number of link annotations on each page.
func (r *Report) LinksPerPage() []int {
	out := make([]int, len(r.Pages))
	for i, p := range r.Pages {
		out[i] = len(p.Links)
	}
	return out
}

// LinkCount returns the total number of link annotations.
func (r *Report) LinkCount() int {
	n := 0
	for _, p := range r.Pages {
		n += len(p.Links)
	}
	return n
}

// FindText returns the 1-based number of the first page whose text contains
// s, or 0 when no page does.
func (r *Report) FindText(s string) int {
	for _, p := range r.Pages {
		if strings.Contains(p.Text, s) {
			return p.Number
		}
	}
	return 0
}

// Inspect parses a PDF and reports its pages, link annotations and text.
func Inspect(data []byte) (report *Report, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			report = nil
			err = &Error{Message: "malformed PDF", Cause: fmt.Errorf("%v", rec)}
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &Error{Message: "failed to parse PDF", Cause: err}
	}

	n := r.NumPage()
	report = &Report{Pages: make([]PageReport, 0, n)}
	for i := 1; i <= n; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			return nil, &Error{Message: fmt.Sprintf("page %d missing", i)}
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			return nil, &Error{Message: fmt.Sprintf("failed to extract text of page %d", i), Cause: err}
		}
		box := mediaBox(p)
		report.Pages = append(report.Pages, PageReport{
			Number: i,
			Width:  box.Index(2).Float64() - box.Index(0).Float64(),
			Height: box.Index(3).Float64() - box.Index(1).Float64(),
			Links:  pageLinks(p),
			Text:   text,
		})
	}
	return report, nil
}

// InspectFile reads and inspects the PDF at path.
func InspectFile(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileReadError{Message: fmt.Sprintf("failed to read %s", path), Cause: err}
	}
	return Inspect(data)
}

// mediaBox returns the page's MediaBox, inherited from the page tree when the
// page itself has none.
func mediaBox(p pdf.Page) pdf.Value {
	for v := p.V; !v.IsNull(); v = v.Key("Parent") {
		if box := v.Key("MediaBox"); !box.IsNull() {
			return box
		}
	}
	return pdf.Value{}
}

func pageLinks(p pdf.Page) []Link {
	annots := p.V.Key("Annots")
	var links []Link
	for j := 0; j < annots.Len(); j++ {
		a := annots.Index(j)
		if a.Key("Subtype").Name() != "Link" {
			continue
		}
		uri := a.Key("A").Key("URI").Text()
		if uri == "" {
			continue
		}
		rect := a.Key("Rect")
		x0, y0 := rect.Index(0).Float64(), rect.Index(1).Float64()
		x1, y1 := rect.Index(2).Float64(), rect.Index(3).Float64()
		links = append(links, Link{
			URI:  uri,
			Rect: [4]float64{min(x0, x1), min(y0, y1), max(x0, x1), max(y0, y1)},
		})
	}
	return links
}
