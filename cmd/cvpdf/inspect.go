package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/portfolio-cv/internal/layout"
	"github.com/jonathan/portfolio-cv/internal/observability"
	"github.com/jonathan/portfolio-cv/internal/validation"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.pdf>",
	Short: "Report the pages, links and size of a PDF",
	Long:  `Parses a PDF (use "-" for standard input) and reports its pages and link annotations. With --max-pages, also checks the page count.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

var (
	inspectJSON     bool
	inspectMaxPages int
)

func init() {
	inspectCmd.Flags().BoolVar(&inspectJSON, "json", false, "Print the report as JSON")
	inspectCmd.Flags().IntVar(&inspectMaxPages, "max-pages", 0, "Warn when the PDF has more pages (0 disables)")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	data, err := readInput(args[0], cmd.InOrStdin())
	if err != nil {
		return &validation.FileReadError{Message: fmt.Sprintf("failed to read %s", args[0]), Cause: err}
	}
	return inspectPDF(data, inspectJSON, inspectMaxPages, cmd.OutOrStdout())
}

// inspectPDF writes a report for data, as JSON or as boxed text.
func inspectPDF(data []byte, asJSON bool, maxPages int, w io.Writer) error {
	report, err := validation.Inspect(data)
	if err != nil {
		return err
	}
	violations := validation.Check(report, validation.Expectations{
		MaxPages:   maxPages,
		PageWidth:  layout.PageWidth,
		PageHeight: layout.PageHeight,
	})

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			*validation.Report
			Violations any `json:"violations"`
		}{report, violations.Violations})
	}

	printer := observability.NewPrinter(w)
	printer.PrintReport(report)
	printer.PrintViolations(violations)
	return nil
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}
