// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/jonathan/portfolio-cv/internal/layout"
	"github.com/jonathan/portfolio-cv/internal/logger"
	"github.com/jonathan/portfolio-cv/internal/storage"
)

// Document sources.
const (
	SourceFile = "file"
	SourceURL  = "url"
	SourceDB   = "db"
)

// Storage backends.
const (
	StorageLocal = "local"
	StorageMinIO = "minio"
)

// Config represents the configuration that can be loaded from a JSON or YAML file.
// All fields are optional; missing values use defaults, environment variables or CLI flags.
type Config struct {
	// Document source: exactly one of Document, SourceURL or ProfileID.
	Document    string `json:"document,omitempty" yaml:"document,omitempty"`         // Path to document JSON
	SourceURL   string `json:"source_url,omitempty" yaml:"source_url,omitempty"`     // Portfolio resume endpoint
	ProfileID   string `json:"profile_id,omitempty" yaml:"profile_id,omitempty"`     // Profile UUID in the portfolio DB
	DatabaseURL string `json:"database_url,omitempty" yaml:"database_url,omitempty"` // PostgreSQL connection URL

	// Output
	OutputDir string              `json:"output_dir,omitempty" yaml:"output_dir,omitempty"`
	Storage   string              `json:"storage,omitempty" yaml:"storage,omitempty"` // local or minio
	MinIO     storage.MinIOConfig `json:"minio,omitempty" yaml:"minio,omitempty"`

	// Layout
	ForcedPageBreaks []string `json:"forced_page_breaks,omitempty" yaml:"forced_page_breaks,omitempty"`
	AccentColor      string   `json:"accent_color,omitempty" yaml:"accent_color,omitempty"`   // #rrggbb
	CreationDate     string   `json:"creation_date,omitempty" yaml:"creation_date,omitempty"` // RFC3339, pins output bytes

	// Server
	Port int `json:"port,omitempty" yaml:"port,omitempty"`

	Log     logger.Config `json:"log,omitempty" yaml:"log,omitempty"`
	Verbose bool          `json:"verbose,omitempty" yaml:"verbose,omitempty"`
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		OutputDir:        ".",
		Storage:          StorageLocal,
		ForcedPageBreaks: []string{string(layout.SectionSkills)},
		Port:             8080,
		Log:              logger.Config{Level: "info", Format: "json"},
	}
}

// LoadConfig loads configuration from a JSON file, or YAML when the extension is .yaml or .yml.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

// ApplyEnv fills empty fields from the environment. The document source is
// only taken from the environment when none is configured.
func (c *Config) ApplyEnv() {
	setIfEmpty := func(field *string, key string) {
		if *field == "" {
			*field = os.Getenv(key)
		}
	}
	setIfEmpty(&c.DatabaseURL, "DATABASE_URL")
	if c.Source() == "" {
		setIfEmpty(&c.SourceURL, "CV_SOURCE_URL")
		setIfEmpty(&c.ProfileID, "CV_PROFILE_ID")
	}
	setIfEmpty(&c.MinIO.Endpoint, "MINIO_ENDPOINT")
	setIfEmpty(&c.MinIO.AccessKeyID, "MINIO_ACCESS_KEY")
	setIfEmpty(&c.MinIO.SecretAccessKey, "MINIO_SECRET_KEY")
	setIfEmpty(&c.MinIO.Bucket, "MINIO_BUCKET")
	setIfEmpty(&c.Log.Level, "LOG_LEVEL")
	setIfEmpty(&c.Log.Format, "LOG_FORMAT")

	if !c.MinIO.UseSSL {
		c.MinIO.UseSSL, _ = strconv.ParseBool(os.Getenv("MINIO_USE_SSL"))
	}
	if c.Port == 0 {
		if port, err := strconv.Atoi(os.Getenv("PORT")); err == nil {
			c.Port = port
		}
	}
}

// Validate checks that the configuration has valid values.
// Required fields are not checked here since those depend on the command being run.
func (c *Config) Validate() error {
	sources := 0
	for _, s := range []string{c.Document, c.SourceURL, c.ProfileID} {
		if s != "" {
			sources++
		}
	}
	if sources > 1 {
		return fmt.Errorf("config error: 'document', 'source_url' and 'profile_id' are mutually exclusive")
	}

	if c.ProfileID != "" {
		if _, err := uuid.Parse(c.ProfileID); err != nil {
			return fmt.Errorf("config error: 'profile_id' must be a UUID: %w", err)
		}
		if c.DatabaseURL == "" {
			return fmt.Errorf("config error: 'profile_id' requires 'database_url'")
		}
	}

	if c.Document != "" {
		if _, err := os.Stat(c.Document); os.IsNotExist(err) {
			return fmt.Errorf("config error: document file not found: %s", c.Document)
		}
	}

	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	for _, name := range c.ForcedPageBreaks {
		if _, err := layout.ParseSectionID(name); err != nil {
			return fmt.Errorf("config error: 'forced_page_breaks': %w", err)
		}
	}

	if c.AccentColor != "" {
		if _, err := ParseColor(c.AccentColor); err != nil {
			return fmt.Errorf("config error: 'accent_color': %w", err)
		}
	}

	if c.CreationDate != "" {
		if _, err := time.Parse(time.RFC3339, c.CreationDate); err != nil {
			return fmt.Errorf("config error: 'creation_date' must be RFC3339: %w", err)
		}
	}

	switch c.Storage {
	case "", StorageLocal:
	case StorageMinIO:
		if c.MinIO.Endpoint == "" || c.MinIO.Bucket == "" {
			return fmt.Errorf("config error: minio storage requires 'minio.endpoint' and 'minio.bucket'")
		}
	default:
		return fmt.Errorf("config error: unknown storage %q", c.Storage)
	}

	return nil
}

// Source reports which document source is configured, or "" when none is.
func (c *Config) Source() string {
	switch {
	case c.Document != "":
		return SourceFile
	case c.SourceURL != "":
		return SourceURL
	case c.ProfileID != "":
		return SourceDB
	default:
		return ""
	}
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Document == "" && result.SourceURL == "" && result.ProfileID == "" {
		result.Document = defaults.Document
		result.SourceURL = defaults.SourceURL
		result.ProfileID = defaults.ProfileID
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.Storage == "" {
		result.Storage = defaults.Storage
	}
	if result.MinIO.Endpoint == "" {
		result.MinIO = defaults.MinIO
	}
	if result.ForcedPageBreaks == nil {
		result.ForcedPageBreaks = defaults.ForcedPageBreaks
	}
	if result.AccentColor == "" {
		result.AccentColor = defaults.AccentColor
	}
	if result.CreationDate == "" {
		result.CreationDate = defaults.CreationDate
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.Log.Level == "" {
		result.Log.Level = defaults.Log.Level
	}
	if result.Log.Format == "" {
		result.Log.Format = defaults.Log.Format
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// LayoutOptions builds the layout options. Call Validate first.
func (c *Config) LayoutOptions() (layout.Options, error) {
	opts := layout.DefaultOptions()
	if c.ForcedPageBreaks != nil {
		opts.ForcedBreaks = make(map[layout.SectionID]bool, len(c.ForcedPageBreaks))
		for _, name := range c.ForcedPageBreaks {
			id, err := layout.ParseSectionID(name)
			if err != nil {
				return opts, err
			}
			opts.ForcedBreaks[id] = true
		}
	}
	if c.AccentColor != "" {
		accent, err := ParseColor(c.AccentColor)
		if err != nil {
			return opts, err
		}
		opts.Accent = accent
	}
	return opts, nil
}

// CreationTime returns the pinned creation date, or the zero time when unset.
func (c *Config) CreationTime() time.Time {
	t, err := time.Parse(time.RFC3339, c.CreationDate)
	if err != nil {
		return time.Time{}
	}
	return t
}

// ParseColor parses "#rrggbb" (the leading # is optional).
func ParseColor(s string) (layout.Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return layout.Color{}, fmt.Errorf("invalid colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return layout.Color{}, fmt.Errorf("invalid colour %q", s)
	}
	return layout.Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}
