package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jonathan/portfolio-cv/internal/config"
	"github.com/jonathan/portfolio-cv/internal/ingestion"
	"github.com/jonathan/portfolio-cv/internal/observability"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a resume document without rendering it",
	Long:  "Loads the resume document, checks it against the document schema and prints its metadata as JSON.",
	Args:  cobra.NoArgs,
	RunE:  runValidate,
}

var validateSource sourceFlags

func init() {
	validateSource.register(validateCmd)
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(configPath, validateSource.apply)
	if err != nil {
		return err
	}
	return validateDocument(cmd.Context(), cfg, cmd.OutOrStdout())
}

// validateDocument loads the configured document and writes its metadata to w.
func validateDocument(ctx context.Context, cfg *config.Config, w io.Writer) error {
	loader, closeLoader, err := newLoader(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeLoader()

	doc, err := loader.Load(ctx)
	if err != nil {
		return fmt.Errorf("document is invalid: %w", err)
	}
	if cfg.Verbose {
		observability.NewPrinter(w).PrintDocument(doc)
	}

	meta, err := ingestion.NewMetadata(doc, loader.Source())
	if err != nil {
		return err
	}
	out, err := meta.ToJSON()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
