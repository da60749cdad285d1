package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/portfolio-cv/internal/config"
	"github.com/jonathan/portfolio-cv/internal/db"
	"github.com/jonathan/portfolio-cv/internal/fetch"
	"github.com/jonathan/portfolio-cv/internal/ingestion"
	"github.com/jonathan/portfolio-cv/internal/rendering"
	"github.com/jonathan/portfolio-cv/internal/storage"
)

// newLoader builds the loader for the configured source. The returned close
// function releases the database pool when one was opened.
func newLoader(ctx context.Context, cfg *config.Config) (ingestion.Loader, func(), error) {
	noop := func() {}

	switch cfg.Source() {
	case config.SourceFile:
		return &ingestion.FileLoader{Path: cfg.Document}, noop, nil
	case config.SourceURL:
		return &ingestion.HTTPLoader{URL: cfg.SourceURL, Options: fetch.DefaultOptions()}, noop, nil
	case config.SourceDB:
		profileID, err := uuid.Parse(cfg.ProfileID)
		if err != nil {
			return nil, noop, fmt.Errorf("invalid profile-id: %w", err)
		}
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, noop, err
		}
		return &ingestion.DBLoader{Store: database, ProfileID: profileID}, database.Close, nil
	default:
		return nil, noop, fmt.Errorf("no document source: use --document, --url or --profile-id")
	}
}

// newStore builds the configured artifact store.
func newStore(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	switch cfg.Storage {
	case config.StorageMinIO:
		return storage.NewMinIOStore(ctx, cfg.MinIO)
	default:
		return storage.NewLocalStore(cfg.OutputDir)
	}
}

// renderOptions translates the configuration into generation options.
func renderOptions(cfg *config.Config) (rendering.Options, error) {
	opts := rendering.DefaultOptions()
	layoutOpts, err := cfg.LayoutOptions()
	if err != nil {
		return opts, err
	}
	opts.Layout = layoutOpts
	opts.CreationDate = cfg.CreationTime()
	return opts, nil
}
