// Menupick - Menu Recommendation API Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menupick

package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestSlogHandler_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		level slog.Level
		want  string
	}{
		{"debug", slog.LevelDebug, `"level":"debug"`},
		{"info", slog.LevelInfo, `"level":"info"`},
		{"warn", slog.LevelWarn, `"level":"warn"`},
		{"error", slog.LevelError, `"level":"error"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := slog.New(NewSlogHandler(zerolog.New(&buf).Level(zerolog.TraceLevel)))
			logger.Log(context.Background(), tt.level, "message")

			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("expected %s in output: %s", tt.want, buf.String())
			}
		})
	}
}

func TestSlogHandler_AttrsAndGroups(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewSlogHandler(zerolog.New(&buf)))

	logger.With("service", "interaction-pipeline").
		WithGroup("restart").
		Info("service restarted", "count", 3, "backoff", time.Second)

	output := buf.String()
	for _, want := range []string{
		`"service":"interaction-pipeline"`,
		`"restart.count":3`,
		`"message":"service restarted"`,
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %s in output: %s", want, output)
		}
	}
}

func TestSlogHandler_Enabled(t *testing.T) {
	t.Parallel()

	h := NewSlogHandler(zerolog.New(&bytes.Buffer{}).Level(zerolog.WarnLevel))

	if h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info should be disabled at warn level")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Error("error should be enabled at warn level")
	}
}

func TestNewSlogLogger_UsesSupervisorCategory(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewTestLogger(&buf)

	NewSlogLogger(logger).Info("tree started")

	if !strings.Contains(buf.String(), `"component":"supervisor"`) {
		t.Errorf("expected supervisor component: %s", buf.String())
	}
}

func TestNewSlogLoggerFor_DisabledCategory(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New(Config{Level: "debug", Format: "json", Output: &buf, Categories: []string{"api"}})

	NewSlogLoggerFor(logger, CategoryInteraction).Info("dropped")
	NewSlogLoggerFor(logger, CategoryAPI).Info("kept")

	if strings.Contains(buf.String(), "dropped") || !strings.Contains(buf.String(), "kept") {
		t.Errorf("unexpected output: %s", buf.String())
	}
}
