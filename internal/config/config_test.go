package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/portfolio-cv/internal/layout"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_ValidJSON(t *testing.T) {
	path := writeFile(t, "config.json", `{
		"profile_id": "550e8400-e29b-41d4-a716-446655440000",
		"database_url": "postgres://localhost/portfolio",
		"forced_page_breaks": ["skills", "projects"],
		"port": 9090,
		"log": {"level": "debug", "format": "pretty"},
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", cfg.ProfileID)
	assert.Equal(t, []string{"skills", "projects"}, cfg.ForcedPageBreaks)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "pretty", cfg.Log.Format)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, SourceDB, cfg.Source())
}

func TestLoadConfig_ValidYAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `
source_url: https://jane.dev/api/resume
storage: minio
minio:
  endpoint: localhost:9000
  bucket: cvs
  use_ssl: true
forced_page_breaks: []
accent_color: "#112233"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "https://jane.dev/api/resume", cfg.SourceURL)
	assert.Equal(t, StorageMinIO, cfg.Storage)
	assert.Equal(t, "localhost:9000", cfg.MinIO.Endpoint)
	assert.Equal(t, "cvs", cfg.MinIO.Bucket)
	assert.True(t, cfg.MinIO.UseSSL)
	assert.NotNil(t, cfg.ForcedPageBreaks)
	assert.Empty(t, cfg.ForcedPageBreaks)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeFile(t, "config.json", `{ invalid json }`)

	cfg, err := LoadConfig(path)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := writeFile(t, "config.yml", "port: [not, a, number]\n")

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config YAML")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate(t *testing.T) {
	doc := writeFile(t, "cv.json", `{}`)

	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"empty", Config{}, ""},
		{"defaults", Default(), ""},
		{"file source", Config{Document: doc}, ""},
		{"mutually exclusive", Config{Document: doc, SourceURL: "https://x"}, "mutually exclusive"},
		{"missing document", Config{Document: "/nonexistent/cv.json"}, "document file not found"},
		{"bad profile id", Config{ProfileID: "jane", DatabaseURL: "postgres://x"}, "must be a UUID"},
		{"profile without db", Config{ProfileID: "550e8400-e29b-41d4-a716-446655440000"}, "requires 'database_url'"},
		{"negative port", Config{Port: -1}, "port"},
		{"unknown section", Config{ForcedPageBreaks: []string{"skills", "hobbies"}}, "forced_page_breaks"},
		{"bad accent", Config{AccentColor: "blue"}, "accent_color"},
		{"bad date", Config{CreationDate: "yesterday"}, "creation_date"},
		{"unknown storage", Config{Storage: "ftp"}, "unknown storage"},
		{"minio without bucket", Config{Storage: StorageMinIO}, "minio.bucket"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env/portfolio")
	t.Setenv("CV_SOURCE_URL", "https://env.example/resume")
	t.Setenv("MINIO_ENDPOINT", "minio:9000")
	t.Setenv("MINIO_SECRET_KEY", "s3cret")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("PORT", "7070")

	cfg := Config{SourceURL: "https://file.example/resume"}
	cfg.ApplyEnv()

	assert.Equal(t, "postgres://env/portfolio", cfg.DatabaseURL)
	assert.Equal(t, "https://file.example/resume", cfg.SourceURL, "file values win over env")
	assert.Equal(t, "minio:9000", cfg.MinIO.Endpoint)
	assert.Equal(t, "s3cret", cfg.MinIO.SecretAccessKey)
	assert.True(t, cfg.MinIO.UseSSL)
	assert.Equal(t, 7070, cfg.Port)
}

func TestApplyEnv_SourceOnlyWhenUnset(t *testing.T) {
	t.Setenv("CV_SOURCE_URL", "https://env.example/resume")
	t.Setenv("CV_PROFILE_ID", "")

	withDoc := Config{Document: "cv.json"}
	withDoc.ApplyEnv()
	assert.Empty(t, withDoc.SourceURL)
	assert.Equal(t, SourceFile, withDoc.Source())

	empty := Config{}
	empty.ApplyEnv()
	assert.Equal(t, "https://env.example/resume", empty.SourceURL)
	assert.Equal(t, SourceURL, empty.Source())
}

func TestMergeWithDefaults(t *testing.T) {
	partial := Config{
		SourceURL: "https://jane.dev/api/resume",
		Port:      9000,
	}
	defaults := Default()
	defaults.Document = "cv.json"

	merged := partial.MergeWithDefaults(defaults)

	assert.Equal(t, "https://jane.dev/api/resume", merged.SourceURL)
	assert.Empty(t, merged.Document, "a configured source is not joined by the default one")
	assert.Equal(t, 9000, merged.Port)
	assert.Equal(t, ".", merged.OutputDir)
	assert.Equal(t, StorageLocal, merged.Storage)
	assert.Equal(t, []string{"skills"}, merged.ForcedPageBreaks)
	assert.Equal(t, "info", merged.Log.Level)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{Document: "cv.json", Port: 1}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "cv.json", merged.Document)
	assert.Equal(t, 1, merged.Port)
	assert.Nil(t, merged.ForcedPageBreaks)
}

func TestLayoutOptions(t *testing.T) {
	cfg := Config{ForcedPageBreaks: []string{"Projects"}, AccentColor: "#ff8000"}

	opts, err := cfg.LayoutOptions()
	require.NoError(t, err)
	assert.Equal(t, map[layout.SectionID]bool{layout.SectionProjects: true}, opts.ForcedBreaks)
	assert.Equal(t, layout.Color{R: 255, G: 128, B: 0}, opts.Accent)

	opts, err = (&Config{}).LayoutOptions()
	require.NoError(t, err)
	assert.Equal(t, layout.DefaultOptions(), opts)

	opts, err = (&Config{ForcedPageBreaks: []string{}}).LayoutOptions()
	require.NoError(t, err)
	assert.Empty(t, opts.ForcedBreaks, "an explicit empty list disables forced breaks")
}

func TestCreationTime(t *testing.T) {
	assert.True(t, (&Config{}).CreationTime().IsZero())
	cfg := Config{CreationDate: "2024-01-02T03:04:05Z"}
	assert.Equal(t, time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), cfg.CreationTime())
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("2563eb")
	require.NoError(t, err)
	assert.Equal(t, layout.DefaultAccent, c)

	for _, bad := range []string{"", "#12345", "#gggggg", "#1234567"} {
		_, err := ParseColor(bad)
		assert.Error(t, err, bad)
	}
}
