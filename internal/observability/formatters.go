// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/portfolio-cv/internal/layout"
	"github.com/jonathan/portfolio-cv/internal/types"
	"github.com/jonathan/portfolio-cv/internal/validation"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(strings.TrimRight(content, "\n"), "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintDocument outputs a summary of the loaded resume document.
func (p *Printer) PrintDocument(doc *types.ResumeDocument) {
	if doc == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:     %s\n", doc.PersonalInfo.Name))
	sb.WriteString(fmt.Sprintf("Title:    %s\n", doc.PersonalInfo.Title))
	sb.WriteString("\n")

	counts := []struct {
		label string
		n     int
	}{
		{"Highlights", len(doc.Highlights())},
		{"Experience", len(doc.Experience)},
		{"Education", len(doc.Education)},
		{"Skills", len(doc.Skills.Frontend) + len(doc.Skills.Tools) + len(doc.Skills.Backend)},
		{"Languages", len(doc.Languages)},
		{"Projects", len(doc.Projects)},
	}
	for _, c := range counts {
		sb.WriteString(fmt.Sprintf("%-11s %d\n", c.label+":", c.n))
	}

	if len(doc.Experience) > 0 {
		sb.WriteString("\nRecent roles:\n")
		count := min(len(doc.Experience), maxItemsToShow)
		for i := 0; i < count; i++ {
			e := doc.Experience[i]
			sb.WriteString(fmt.Sprintf("  • %s", e.Title))
			if e.Period != "" {
				sb.WriteString(fmt.Sprintf(" (%s)", e.Period))
			}
			sb.WriteString("\n")
		}
		if len(doc.Experience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(doc.Experience)-maxItemsToShow))
		}
	}

	p.printBox("RESUME DOCUMENT", sb.String())
}

// PrintStats outputs the pagination summary of a render.
func (p *Printer) PrintStats(filename string, stats layout.Stats) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("File:     %s\n", filename))
	sb.WriteString(fmt.Sprintf("Pages:    %d\n", stats.Pages))
	total := 0
	for i, n := range stats.LinksPerPage {
		sb.WriteString(fmt.Sprintf("  page %d: %d links\n", i+1, n))
		total += n
	}
	sb.WriteString(fmt.Sprintf("Links:    %d\n", total))
	p.printBox("GENERATED PDF", sb.String())
}

// PrintReport outputs what was read back from a PDF.
func (p *Printer) PrintReport(report *validation.Report) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Pages:    %d\n", report.PageCount()))
	sb.WriteString(fmt.Sprintf("Links:    %d\n", report.LinkCount()))
	for _, page := range report.Pages {
		sb.WriteString(fmt.Sprintf("\nPage %d (%.0fx%.0f pt)\n", page.Number, page.Width, page.Height))
		count := min(len(page.Links), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  ↗ %s\n", page.Links[i].URI))
		}
		if len(page.Links) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(page.Links)-maxItemsToShow))
		}
	}

	p.printBox("PDF INSPECTION", sb.String())
}

// PrintViolations outputs any problems found in a generated PDF.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintViolations(violations *types.Violations) {
	if violations == nil || len(violations.Violations) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "NO VIOLATIONS FOUND")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d violations:\n\n", len(violations.Violations)))

	for i, v := range violations.Violations {
		marker := "⚠"
		if v.Severity == types.SeverityError {
			marker = "✗"
		}
		header := fmt.Sprintf("%s %s", marker, v.Type)
		if v.Page != nil {
			header += fmt.Sprintf(" (page %d)", *v.Page)
		}
		sb.WriteString(header + "\n")
		sb.WriteString(fmt.Sprintf("  %s\n", v.Details))
		if i < len(violations.Violations)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("PDF VIOLATIONS", sb.String())
}
