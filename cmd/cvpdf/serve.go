package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/portfolio-cv/internal/config"
	"github.com/jonathan/portfolio-cv/internal/ingestion"
	"github.com/jonathan/portfolio-cv/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Start an HTTP server that renders CVs on request.

GET /cv.pdf renders the configured document source; POST /render renders the
resume document in the request body.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

var (
	serveSource sourceFlags
	servePort   int
)

func init() {
	serveSource.register(serveCmd)
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (defaults to PORT or 8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(configPath, func(c *config.Config) {
		serveSource.apply(c)
		if servePort != 0 {
			c.Port = servePort
		}
	})
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	var loader ingestion.Loader
	if cfg.Source() != "" {
		l, closeLoader, err := newLoader(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeLoader()
		loader = l
	}

	opts, err := renderOptions(cfg)
	if err != nil {
		return err
	}

	srv := server.New(server.Config{Port: cfg.Port, Loader: loader, Render: opts})
	if err := srv.Start(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}
