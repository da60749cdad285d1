// Package main provides the cvpdf command: it renders a portfolio resume
// document to a PDF CV, checks generated PDFs and serves CVs over HTTP.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/portfolio-cv/internal/config"
	"github.com/jonathan/portfolio-cv/internal/logger"
)

var (
	configPath string
	verbose    bool
	logLevel   string
	logFormat  string
)

var rootCmd = &cobra.Command{
	Use:   "cvpdf",
	Short: "Portfolio CV PDF generator",
	Long:  "cvpdf turns a portfolio resume document into a paginated A4 PDF CV with clickable links.",
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.Init(logger.Config{Level: logLevel, Format: logFormat})
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a JSON or YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print summaries of the document and the generated PDF")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format: json or pretty")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// sourceFlags are the document source flags shared by render, validate and serve.
type sourceFlags struct {
	document    string
	sourceURL   string
	profileID   string
	databaseURL string
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.document, "document", "d", "", "Path to a resume document JSON file")
	cmd.Flags().StringVar(&f.sourceURL, "url", "", "Portfolio endpoint returning the resume document")
	cmd.Flags().StringVar(&f.profileID, "profile-id", "", "Profile UUID to load from the portfolio database")
	cmd.Flags().StringVar(&f.databaseURL, "db-url", "", "Database URL (defaults to DATABASE_URL)")
}

// apply lets a source given on the command line replace the configured one.
func (f *sourceFlags) apply(cfg *config.Config) {
	if f.document != "" || f.sourceURL != "" || f.profileID != "" {
		cfg.Document, cfg.SourceURL, cfg.ProfileID = f.document, f.sourceURL, f.profileID
	}
	if f.databaseURL != "" {
		cfg.DatabaseURL = f.databaseURL
	}
}

// loadConfig resolves the effective configuration. Precedence, highest first:
// flags, config file, environment, built-in defaults.
func loadConfig(path string, override func(*config.Config)) (*config.Config, error) {
	var cfg config.Config
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = *loaded
	}
	if override != nil {
		override(&cfg)
	}
	cfg.ApplyEnv()

	merged := cfg.MergeWithDefaults(config.Default())
	if logLevel != "" {
		merged.Log.Level = logLevel
	}
	if logFormat != "" {
		merged.Log.Format = logFormat
	}
	merged.Verbose = merged.Verbose || verbose

	if err := merged.Validate(); err != nil {
		return nil, err
	}
	logger.Init(merged.Log)
	return &merged, nil
}
