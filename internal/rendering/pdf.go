package rendering

import (
	"bytes"
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/jonathan/portfolio-cv/internal/layout"
	"github.com/jonathan/portfolio-cv/internal/logger"
	"github.com/jonathan/portfolio-cv/internal/types"
)

// Options configures PDF generation.
type Options struct {
	Layout layout.Options
	// CreationDate pins the document dates. Zero means the time of generation.
	CreationDate time.Time
	Creator      string
}

// DefaultOptions returns the standard layout with dates left to generation time.
func DefaultOptions() Options {
	return Options{Layout: layout.DefaultOptions(), Creator: "portfolio-cv"}
}

// Result is a generated CV.
type Result struct {
	PDF      []byte
	Filename string
	Stats    layout.Stats
}

// Generate lays out doc and serializes it. Generation is all or nothing: on
// error no bytes are returned.
func Generate(ctx context.Context, doc *types.ResumeDocument, opts Options) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, &RenderError{Message: "no resume document"}
	}

	s := newPDFSurface()
	s.pdf.SetCatalogSort(true)
	if !opts.CreationDate.IsZero() {
		s.pdf.SetCreationDate(opts.CreationDate)
		s.pdf.SetModificationDate(opts.CreationDate)
	}
	name := strings.TrimSpace(doc.PersonalInfo.Name)
	s.pdf.SetTitle(name+" - CV", true)
	s.pdf.SetAuthor(name, true)
	if opts.Creator != "" {
		s.pdf.SetCreator(opts.Creator, true)
	}

	stats, err := layout.Render(s, doc, opts.Layout)
	if err != nil {
		return nil, &RenderError{Message: "failed to lay out document", Cause: err}
	}
	if err := s.pdf.Error(); err != nil {
		return nil, &SerializeError{Message: "pdf writer failed", Cause: err}
	}

	var buf bytes.Buffer
	if err := s.pdf.Output(&buf); err != nil {
		return nil, &SerializeError{Message: "failed to write pdf", Cause: err}
	}

	logger.Ctx(ctx).Debug().
		Int("pages", stats.Pages).
		Ints("links_per_page", stats.LinksPerPage).
		Int("bytes", buf.Len()).
		Msg("generated CV")

	return &Result{PDF: buf.Bytes(), Filename: Filename(name), Stats: stats}, nil
}

// GeneratePDF returns just the PDF bytes of Generate.
func GeneratePDF(ctx context.Context, doc *types.ResumeDocument, opts Options) ([]byte, error) {
	res, err := Generate(ctx, doc, opts)
	if err != nil {
		return nil, err
	}
	return res.PDF, nil
}

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	unsafeInName  = regexp.MustCompile(`[/\\:*?"<>|]`)
)

// Filename derives the download name from the subject's name:
// "Jane Doe" becomes "Jane_Doe_CV.pdf".
func Filename(name string) string {
	name = strings.TrimSpace(unsafeInName.ReplaceAllString(name, ""))
	if name == "" {
		return "CV.pdf"
	}
	return whitespaceRun.ReplaceAllString(name, "_") + "_CV.pdf"
}
