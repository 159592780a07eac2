// SPDX-FileCopyrightText: Copyright 2026 Socket Security, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package logging provides a pre-configured [log/slog.Logger] factory with
consistent defaults for Socket tooling.

All Socket projects share the same timestamp format, output destination, and
handler configuration. This package encapsulates those choices so that each
project does not need to replicate them.

# Defaults

  - Format: JSON ([FormatJSON]) via [log/slog.JSONHandler]
  - Level: INFO ([log/slog.LevelInfo])
  - Output: [os.Stderr]
  - Timestamps: [time.RFC3339]

# Basic Usage

Create a logger with default settings:

	logger := logging.New()
	logger.Info("scan complete", "packages", 42)

# Configuration

Use functional options to customize the logger:

	logger := logging.New(
		logging.WithFormat(logging.FormatText),
		logging.WithLevel(slog.LevelDebug),
	)

# Environment

FromEnv resolves format and level from SOCKET_LOG_FORMAT and SOCKET_LOG_LEVEL
through the env package's override-aware reader, so tests can steer logger
construction with env overrides:

	logger := logging.New(logging.FromEnv())

# Testing

Inject a buffer to capture log output in tests:

	var buf bytes.Buffer
	logger := logging.New(logging.WithOutput(&buf))
	logger.Info("test message")
	// inspect buf.String()

# Handler Access

Use [NewHandler] when you need to wrap the handler with middleware:

	base := logging.NewHandler(logging.WithLevel(slog.LevelDebug))
	wrapped := &myMiddleware{Handler: base}
	logger := slog.New(wrapped)
*/
package logging
