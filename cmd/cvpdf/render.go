package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jonathan/portfolio-cv/internal/config"
	"github.com/jonathan/portfolio-cv/internal/layout"
	"github.com/jonathan/portfolio-cv/internal/logger"
	"github.com/jonathan/portfolio-cv/internal/observability"
	"github.com/jonathan/portfolio-cv/internal/rendering"
	"github.com/jonathan/portfolio-cv/internal/validation"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a resume document to a PDF CV",
	Long: `Loads the resume document from a file, a portfolio endpoint or the portfolio
database, lays it out on A4 pages and stores the PDF locally or in a MinIO bucket.`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

var (
	renderSource       sourceFlags
	renderOut          string
	renderOutputDir    string
	renderStorage      string
	renderVerify       bool
	renderAccent       string
	renderPageBreaks   []string
	renderCreationDate string
)

func init() {
	renderSource.register(renderCmd)
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "Output file name (defaults to <Name>_CV.pdf)")
	renderCmd.Flags().StringVar(&renderOutputDir, "out-dir", "", "Output directory for local storage")
	renderCmd.Flags().StringVar(&renderStorage, "storage", "", "Where to store the PDF: local or minio")
	renderCmd.Flags().BoolVar(&renderVerify, "verify", false, "Read the generated PDF back and check pages and links")
	renderCmd.Flags().StringVar(&renderAccent, "accent", "", "Accent colour as #rrggbb")
	renderCmd.Flags().StringSliceVar(&renderPageBreaks, "page-break", nil, "Sections that start on a new page (empty value disables)")
	renderCmd.Flags().StringVar(&renderCreationDate, "creation-date", "", "RFC3339 timestamp written as the PDF creation date")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(configPath, func(c *config.Config) {
		renderSource.apply(c)
		if renderOutputDir != "" {
			c.OutputDir = renderOutputDir
		}
		if renderStorage != "" {
			c.Storage = renderStorage
		}
		if renderAccent != "" {
			c.AccentColor = renderAccent
		}
		if cmd.Flags().Changed("page-break") {
			c.ForcedPageBreaks = nonEmpty(renderPageBreaks)
		}
		if renderCreationDate != "" {
			c.CreationDate = renderCreationDate
		}
	})
	if err != nil {
		return err
	}

	location, err := renderCV(cmd.Context(), cfg, renderOut, renderVerify, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Successfully rendered CV\nOutput: %s\n", location)
	return nil
}

// renderCV loads, renders, optionally verifies and stores the CV, returning
// where it was stored.
func renderCV(ctx context.Context, cfg *config.Config, out string, verify bool, w io.Writer) (string, error) {
	printer := observability.NewPrinter(w)

	loader, closeLoader, err := newLoader(ctx, cfg)
	if err != nil {
		return "", err
	}
	defer closeLoader()

	doc, err := loader.Load(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load resume document: %w", err)
	}
	if cfg.Verbose {
		printer.PrintDocument(doc)
	}

	opts, err := renderOptions(cfg)
	if err != nil {
		return "", err
	}
	res, err := rendering.Generate(ctx, doc, opts)
	if err != nil {
		return "", fmt.Errorf("failed to generate PDF: %w", err)
	}
	if cfg.Verbose {
		printer.PrintStats(res.Filename, res.Stats)
	}

	if verify {
		if err := verifyPDF(res, printer); err != nil {
			return "", err
		}
	}

	name := out
	if name == "" {
		name = res.Filename
	}
	store, err := newStore(ctx, cfg)
	if err != nil {
		return "", err
	}
	location, err := store.Put(ctx, name, res.PDF)
	if err != nil {
		return "", fmt.Errorf("failed to store PDF: %w", err)
	}

	logger.Ctx(ctx).Info().
		Str("source", loader.Source()).
		Str("location", location).
		Int("pages", res.Stats.Pages).
		Msg("CV rendered")
	return location, nil
}

// verifyPDF parses the generated bytes and compares them with the layout stats.
func verifyPDF(res *rendering.Result, printer *observability.Printer) error {
	report, err := validation.Inspect(res.PDF)
	if err != nil {
		return err
	}
	violations := validation.Check(report, validation.Expectations{
		LinksPerPage: res.Stats.LinksPerPage,
		PageWidth:    layout.PageWidth,
		PageHeight:   layout.PageHeight,
	})
	printer.PrintViolations(violations)
	if violations.HasErrors() {
		return fmt.Errorf("generated PDF failed verification with %d violations", len(violations.Violations))
	}
	return nil
}

func nonEmpty(values []string) []string {
	out := []string{}
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
