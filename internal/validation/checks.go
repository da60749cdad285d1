package validation

import (
	"fmt"
	"math"

	"github.com/jonathan/portfolio-cv/internal/types"
)

// Expectations describe a generated CV. Zero values skip a check.
type Expectations struct {
	// LinksPerPage is the annotation count the layout attached to each page.
	LinksPerPage []int
	MaxPages     int
	PageWidth    float64
	PageHeight   float64
}

const sizeTolerance = 0.5

// Check compares an inspected PDF with expectations. Every link rectangle
// must also have a positive area and lie inside its page.
func Check(r *Report, e Expectations) *types.Violations {
	vs := &types.Violations{}

	if e.MaxPages > 0 && r.PageCount() > e.MaxPages {
		vs.Add(types.Violation{
			Type:     "page_count",
			Severity: types.SeverityWarning,
			Details:  fmt.Sprintf("document has %d pages, at most %d expected", r.PageCount(), e.MaxPages),
		})
	}

	if e.LinksPerPage != nil {
		if len(e.LinksPerPage) != r.PageCount() {
			vs.Add(types.Violation{
				Type:     "page_count",
				Severity: types.SeverityError,
				Details:  fmt.Sprintf("layout produced %d pages, PDF has %d", len(e.LinksPerPage), r.PageCount()),
			})
		}
		for i, want := range e.LinksPerPage {
			if i >= r.PageCount() {
				break
			}
			if got := len(r.Pages[i].Links); got != want {
				vs.Add(types.Violation{
					Type:     "link_count",
					Severity: types.SeverityError,
					Details:  fmt.Sprintf("expected %d links, found %d", want, got),
					Page:     intPtr(i + 1),
				})
			}
		}
	}

	for _, p := range r.Pages {
		if e.PageWidth > 0 && (math.Abs(p.Width-e.PageWidth) > sizeTolerance || math.Abs(p.Height-e.PageHeight) > sizeTolerance) {
			vs.Add(types.Violation{
				Type:     "page_size",
				Severity: types.SeverityError,
				Details:  fmt.Sprintf("page is %.2fx%.2f, expected %.2fx%.2f", p.Width, p.Height, e.PageWidth, e.PageHeight),
				Page:     intPtr(p.Number),
			})
		}
		for _, l := range p.Links {
			if v, ok := checkLinkRect(p, l); !ok {
				vs.Add(v)
			}
		}
	}

	return vs
}

func checkLinkRect(p PageReport, l Link) (types.Violation, bool) {
	x0, y0, x1, y1 := l.Rect[0], l.Rect[1], l.Rect[2], l.Rect[3]
	uri := l.URI
	switch {
	case x1-x0 <= 0 || y1-y0 <= 0:
		return types.Violation{
			Type:     "link_empty",
			Severity: types.SeverityError,
			Details:  "link rectangle has no area",
			Page:     intPtr(p.Number),
			URI:      &uri,
		}, false
	case p.Width > 0 && (x0 < 0 || y0 < 0 || x1 > p.Width || y1 > p.Height):
		return types.Violation{
			Type:     "link_off_page",
			Severity: types.SeverityWarning,
			Details:  fmt.Sprintf("link rectangle [%.2f %.2f %.2f %.2f] leaves the page", x0, y0, x1, y1),
			Page:     intPtr(p.Number),
			URI:      &uri,
		}, false
	}
	return types.Violation{}, true
}

func intPtr(i int) *int {
	return &i
}
