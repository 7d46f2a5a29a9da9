// Menupick - Menu Recommendation API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menupick

package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Category names a logging area that can be switched on or off independently.
type Category string

const (
	CategoryAPI         Category = "api"
	CategoryAuth        Category = "auth"
	CategoryInteraction Category = "interaction"
	CategoryPlaces      Category = "places"
	CategoryState       Category = "state"
	CategoryStorage     Category = "storage"
	CategorySupervisor  Category = "supervisor"
)

// AllCategories lists every category known to the client.
var AllCategories = []Category{
	CategoryAPI,
	CategoryAuth,
	CategoryInteraction,
	CategoryPlaces,
	CategoryState,
	CategoryStorage,
	CategorySupervisor,
}

// Config holds logging configuration.
type Config struct {
	// Level is the minimum log level: trace, debug, info, warn, error, fatal, panic.
	// Default: info
	Level string

	// Format is the output format: json or console.
	// Default: json
	Format string

	// Caller includes caller file and line number in logs.
	Caller bool

	// Timestamp enables timestamps in log output.
	Timestamp bool

	// Output is the writer for log output.
	// Default: os.Stderr
	Output io.Writer

	// Categories lists the enabled categories. Empty enables all.
	Categories []string
}

// DefaultConfig returns the default logging configuration.
func DefaultConfig() Config {
	return Config{
		Level:     "info",
		Format:    "json",
		Caller:    false,
		Timestamp: true,
		Output:    os.Stderr,
	}
}

// Logger is the explicitly constructed logging component shared by the client.
// A nil *Logger is valid and discards everything.
type Logger struct {
	base    zerolog.Logger
	enabled map[Category]bool
}

// New builds a Logger from cfg.
func New(cfg Config) *Logger {
	if cfg.Level == "" {
		cfg.Level = "info"
	}
	if cfg.Format == "" {
		cfg.Format = "json"
	}
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}

	output := cfg.Output
	if cfg.Format == "console" {
		output = zerolog.ConsoleWriter{
			Out:        cfg.Output,
			TimeFormat: "15:04:05",
		}
	}

	zl := zerolog.New(output).Level(parseLevel(cfg.Level))
	if cfg.Timestamp {
		zl = zl.With().Timestamp().Logger()
	}
	if cfg.Caller {
		zl = zl.With().Caller().Logger()
	}

	return &Logger{
		base:    zl,
		enabled: parseCategories(cfg.Categories),
	}
}

// Nop returns a Logger that discards all output.
func Nop() *Logger {
	return &Logger{base: zerolog.Nop()}
}

// NewTestLogger creates a debug-level JSON logger writing to w with every
// category enabled.
//
//	var buf bytes.Buffer
//	logger := logging.NewTestLogger(&buf)
//	output := buf.String()
func NewTestLogger(w io.Writer) *Logger {
	return &Logger{
		base: zerolog.New(w).Level(zerolog.DebugLevel).With().Timestamp().Logger(),
	}
}

// parseCategories converts configured names into a lookup set.
// A nil result means all categories are enabled.
func parseCategories(names []string) map[Category]bool {
	if len(names) == 0 {
		return nil
	}
	set := make(map[Category]bool, len(names))
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		if name == "all" || name == "*" {
			return nil
		}
		set[Category(name)] = true
	}
	return set
}

// Enabled reports whether cat produces output.
func (l *Logger) Enabled(cat Category) bool {
	if l == nil {
		return false
	}
	if l.enabled == nil {
		return true
	}
	return l.enabled[cat]
}

// For returns the logger for a category, tagged with component=<cat>.
// Disabled categories get a no-op logger.
func (l *Logger) For(cat Category) zerolog.Logger {
	if !l.Enabled(cat) {
		return zerolog.Nop()
	}
	return l.base.With().Str("component", string(cat)).Logger()
}

// Base returns the underlying zerolog.Logger without a component tag.
func (l *Logger) Base() zerolog.Logger {
	if l == nil {
		return zerolog.Nop()
	}
	return l.base
}

// Level returns the configured minimum level.
func (l *Logger) Level() zerolog.Level {
	if l == nil {
		return zerolog.Disabled
	}
	return l.base.GetLevel()
}

// parseLevel converts a string level to zerolog.Level.
func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	case "panic":
		return zerolog.PanicLevel
	case "disabled":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}
