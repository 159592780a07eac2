// SPDX-FileCopyrightText: Copyright 2025 Socket Security, Inc.
// SPDX-License-Identifier: Apache-2.0

package spawn

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/socketsecurity/socketlib/env"
)

// Result holds the outcome of a spawned process.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// options holds per-invocation configuration.
type options struct {
	dir      string
	stdin    io.Reader
	extraEnv []string
}

// Option configures a single Run or Output invocation.
type Option func(*options)

// WithDir sets the working directory of the spawned process.
func WithDir(dir string) Option {
	return func(o *options) {
		o.dir = dir
	}
}

// WithStdin supplies the spawned process's standard input.
func WithStdin(r io.Reader) Option {
	return func(o *options) {
		o.stdin = r
	}
}

// WithExtraEnv appends "key=value" entries on top of the override-aware
// environment. Later entries win over earlier ones with the same key.
func WithExtraEnv(entries ...string) Option {
	return func(o *options) {
		o.extraEnv = append(o.extraEnv, entries...)
	}
}

// Run executes name with args, capturing stdout and stderr. The child's
// environment is env.Environ(), the process environment with test overrides
// applied. A non-zero exit status is returned in Result.ExitCode with a nil
// error; an error means the process could not be started (or the context was
// canceled before completion).
func Run(ctx context.Context, name string, args []string, opts ...Option) (*Result, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = o.dir
	cmd.Stdin = o.stdin
	cmd.Env = append(env.Environ(), o.extraEnv...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := &Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// Context cancellation surfaces as a killed process; report it as
			// an error rather than an exit code the command chose.
			if ctx.Err() != nil {
				return nil, fmt.Errorf("command %s canceled: %w", name, ctx.Err())
			}
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return nil, fmt.Errorf("failed to run %s: %w", name, err)
	}
	return result, nil
}

// Output runs name with args and returns its trimmed standard output. Unlike
// Run, a non-zero exit is an error, carrying the process's stderr.
func Output(ctx context.Context, name string, args []string, opts ...Option) (string, error) {
	result, err := Run(ctx, name, args, opts...)
	if err != nil {
		return "", err
	}
	if result.ExitCode != 0 {
		return "", fmt.Errorf("command %s exited with code %d: %s",
			name, result.ExitCode, strings.TrimSpace(result.Stderr))
	}
	return strings.TrimSpace(result.Stdout), nil
}
