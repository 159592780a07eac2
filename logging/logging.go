// SPDX-FileCopyrightText: Copyright 2026 Socket Security, Inc.
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/socketsecurity/socketlib/env"
)

// Format represents the log output format.
type Format int

const (
	// FormatJSON produces JSON-formatted log output using [log/slog.JSONHandler].
	// This is the default format, suitable for machine consumption.
	FormatJSON Format = iota

	// FormatText produces human-readable text output using [log/slog.TextHandler].
	// This is suitable for local development.
	FormatText
)

// Environment variables consulted by [FromEnv].
const (
	// EnvLogFormat selects the output format: "text" or "json".
	EnvLogFormat = "SOCKET_LOG_FORMAT"

	// EnvLogLevel selects the minimum level: "debug", "info", "warn" or "error".
	EnvLogLevel = "SOCKET_LOG_LEVEL"
)

// config holds the resolved configuration for creating a logger.
type config struct {
	format Format
	level  slog.Leveler
	output io.Writer
}

// Option configures the logger created by [New].
type Option func(*config)

// WithFormat sets the output format (JSON or Text).
// The default is [FormatJSON].
func WithFormat(f Format) Option {
	return func(c *config) {
		c.format = f
	}
}

// WithLevel sets the minimum log level.
// The default is [log/slog.LevelInfo].
//
// Accepts any [log/slog.Leveler], including [*log/slog.LevelVar] for
// dynamic level changes.
func WithLevel(l slog.Leveler) Option {
	return func(c *config) {
		c.level = l
	}
}

// WithOutput sets the destination writer for log output.
// The default is [os.Stderr].
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		c.output = w
	}
}

// FromEnv resolves format and level from SOCKET_LOG_FORMAT and
// SOCKET_LOG_LEVEL through the override-aware environment reader, so tests
// can steer logger construction via env overrides. Unset or unrecognized
// values leave the defaults in place. Options applied after FromEnv win.
func FromEnv() Option {
	return FromReader(env.DefaultReader())
}

// FromReader is FromEnv with an explicit environment reader.
func FromReader(reader env.Reader) Option {
	return func(c *config) {
		switch strings.ToLower(reader.Getenv(EnvLogFormat)) {
		case "text":
			c.format = FormatText
		case "json":
			c.format = FormatJSON
		}

		switch strings.ToLower(reader.Getenv(EnvLogLevel)) {
		case "debug":
			c.level = slog.LevelDebug
		case "info":
			c.level = slog.LevelInfo
		case "warn":
			c.level = slog.LevelWarn
		case "error":
			c.level = slog.LevelError
		}
	}
}

// New creates a pre-configured [*log/slog.Logger] with consistent defaults
// used across Socket tooling.
//
// Defaults:
//   - Format: JSON ([FormatJSON])
//   - Level: INFO ([log/slog.LevelInfo])
//   - Output: [os.Stderr]
//   - Timestamps: [time.RFC3339]
func New(opts ...Option) *slog.Logger {
	return slog.New(NewHandler(opts...))
}

// NewHandler creates the [log/slog.Handler] that [New] wraps. Use it when the
// handler needs to be composed with middleware before constructing a logger.
func NewHandler(opts ...Option) slog.Handler {
	cfg := &config{
		format: FormatJSON,
		level:  slog.LevelInfo,
		output: os.Stderr,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	handlerOpts := &slog.HandlerOptions{
		Level:       cfg.level,
		ReplaceAttr: replaceAttr,
	}

	var handler slog.Handler
	switch cfg.format {
	case FormatText:
		handler = slog.NewTextHandler(cfg.output, handlerOpts)
	case FormatJSON:
		handler = slog.NewJSONHandler(cfg.output, handlerOpts)
	}

	return handler
}

// replaceAttr formats the time attribute to RFC3339.
// All other attributes are passed through unchanged.
func replaceAttr(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey {
		if t, ok := a.Value.Any().(time.Time); ok {
			a.Value = slog.StringValue(t.Format(time.RFC3339))
		}
	}
	return a
}
