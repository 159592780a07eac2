// SPDX-FileCopyrightText: Copyright 2025 Socket Security, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package logger provides the singleton logger Socket CLI tooling writes through.
package logger

import (
	"strconv"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/socketsecurity/socketlib/env"
)

// Debug logs a message at debug level using the singleton logger.
func Debug(msg string) {
	zap.S().Debug(msg)
}

// Debugf logs a formatted message at debug level using the singleton logger.
func Debugf(msg string, args ...any) {
	zap.S().Debugf(msg, args...)
}

// Debugw logs a message at debug level with additional key-value pairs.
func Debugw(msg string, keysAndValues ...any) {
	zap.S().Debugw(msg, keysAndValues...)
}

// Info logs a message at info level using the singleton logger.
func Info(msg string) {
	zap.S().Info(msg)
}

// Infof logs a formatted message at info level using the singleton logger.
func Infof(msg string, args ...any) {
	zap.S().Infof(msg, args...)
}

// Infow logs a message at info level with additional key-value pairs.
func Infow(msg string, keysAndValues ...any) {
	zap.S().Infow(msg, keysAndValues...)
}

// Warn logs a message at warning level using the singleton logger.
func Warn(msg string) {
	zap.S().Warn(msg)
}

// Warnf logs a formatted message at warning level using the singleton logger.
func Warnf(msg string, args ...any) {
	zap.S().Warnf(msg, args...)
}

// Warnw logs a message at warning level with additional key-value pairs.
func Warnw(msg string, keysAndValues ...any) {
	zap.S().Warnw(msg, keysAndValues...)
}

// Error logs a message at error level using the singleton logger.
func Error(msg string) {
	zap.S().Error(msg)
}

// Errorf logs a formatted message at error level using the singleton logger.
func Errorf(msg string, args ...any) {
	zap.S().Errorf(msg, args...)
}

// Errorw logs a message at error level with additional key-value pairs.
func Errorw(msg string, keysAndValues ...any) {
	zap.S().Errorw(msg, keysAndValues...)
}

// Fatal logs a message at error level using the singleton logger and exits the program.
func Fatal(msg string) {
	zap.S().Fatal(msg)
}

// Fatalf logs a formatted message at error level using the singleton logger and exits the program.
func Fatalf(msg string, args ...any) {
	zap.S().Fatalf(msg, args...)
}

// NewLogr returns a logr.Logger backed by the singleton zap logger, for
// libraries that take logr as their logging interface.
func NewLogr() logr.Logger {
	return zapr.NewLogger(zap.L())
}

// Initialize creates and configures the singleton logger, reading its
// configuration through the override-aware environment reader. If
// SOCKET_UNSTRUCTURED_LOGS is unset or true, output is plain colored text on
// stderr with a kitchen-clock timestamp, suitable for a terminal. Setting it
// to false switches to structured JSON on stdout. Debug level is enabled when
// env.Debug() reports true.
func Initialize() {
	InitializeWithReader(env.DefaultReader())
}

// InitializeWithReader creates and configures the singleton logger with a
// custom environment reader. Tests inject a mock reader here.
func InitializeWithReader(reader env.Reader) {
	var config zap.Config
	if unstructuredLogs(reader) {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		config.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.Kitchen)
		config.OutputPaths = []string{"stderr"}
		config.DisableStacktrace = true
		config.DisableCaller = true
	} else {
		config = zap.NewProductionConfig()
		config.OutputPaths = []string{"stdout"}
	}

	if debugEnabled(reader) {
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	zap.ReplaceGlobals(zap.Must(config.Build()))
}

func unstructuredLogs(reader env.Reader) bool {
	unstructured, err := strconv.ParseBool(reader.Getenv("SOCKET_UNSTRUCTURED_LOGS"))
	if err != nil {
		// The variable wasn't set, or holds something unparsable; default to
		// unstructured output since this library mostly runs inside a CLI.
		return true
	}
	return unstructured
}

func debugEnabled(reader env.Reader) bool {
	// Same presence semantics as env.Debug, but resolved through the
	// injected reader so tests control it.
	if _, ok := reader.LookupEnv(env.EnvSocketDebug); ok {
		return true
	}
	_, ok := reader.LookupEnv(env.EnvDebug)
	return ok
}
