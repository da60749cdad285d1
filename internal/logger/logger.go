// Package logger configures the process-wide zerolog logger.
package logger

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	// Logger is the global logger. Replaced by Init.
	Logger = log.Logger
)

// Config selects the level and output format.
type Config struct {
	Level        string `json:"level" yaml:"level"`   // debug, info, warn, error
	Format       string `json:"format" yaml:"format"` // json or pretty
	TimeFormat   string `json:"time_format,omitempty" yaml:"time_format,omitempty"`
	ReportCaller bool   `json:"report_caller,omitempty" yaml:"report_caller,omitempty"`

	// Output defaults to stderr; stdout may carry PDF bytes.
	Output io.Writer `json:"-" yaml:"-"`
}

// Init builds the global logger from config and installs it as zerolog's
// global logger too. An unknown level falls back to info.
func Init(config Config) {
	level, err := zerolog.ParseLevel(config.Level)
	if err != nil || config.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	out := config.Output
	if out == nil {
		out = os.Stderr
	}
	if config.Format == "pretty" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: config.TimeFormat}
	}

	if config.TimeFormat == "" {
		zerolog.TimeFieldFormat = time.RFC3339
	} else {
		zerolog.TimeFieldFormat = config.TimeFormat
	}

	ctxLogger := zerolog.New(out).Level(level).With().Timestamp()
	if config.ReportCaller {
		ctxLogger = ctxLogger.Caller()
	}

	Logger = ctxLogger.Logger()
	log.Logger = Logger
}

// Debug starts a debug event on the global logger.
func Debug() *zerolog.Event {
	return Logger.Debug()
}

// Info starts an info event on the global logger.
func Info() *zerolog.Event {
	return Logger.Info()
}

// Warn starts a warn event on the global logger.
func Warn() *zerolog.Event {
	return Logger.Warn()
}

// Error starts an error event on the global logger.
func Error() *zerolog.Event {
	return Logger.Error()
}

// Ctx returns the logger carried by ctx, or the global logger when ctx has none.
func Ctx(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &Logger
}

// WithContext attaches the global logger to ctx.
func WithContext(ctx context.Context) context.Context {
	return Logger.WithContext(ctx)
}

// WithRequestID attaches a logger tagged with a request id to ctx.
func WithRequestID(ctx context.Context, id string) context.Context {
	l := Ctx(ctx).With().Str("request_id", id).Logger()
	return l.WithContext(ctx)
}
