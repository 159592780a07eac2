// SPDX-FileCopyrightText: Copyright 2025 Socket Security, Inc.
// SPDX-License-Identifier: Apache-2.0

//go:build unix

package spawn

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/socketsecurity/socketlib/env"
)

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("captures stdout and stderr", func(t *testing.T) {
		t.Parallel()
		result, err := Run(context.Background(), "sh", []string{"-c", "echo out; echo err >&2"})
		require.NoError(t, err)
		assert.Equal(t, "out\n", result.Stdout)
		assert.Equal(t, "err\n", result.Stderr)
		assert.Equal(t, 0, result.ExitCode)
	})

	t.Run("non-zero exit is not an error", func(t *testing.T) {
		t.Parallel()
		result, err := Run(context.Background(), "sh", []string{"-c", "exit 3"})
		require.NoError(t, err)
		assert.Equal(t, 3, result.ExitCode)
	})

	t.Run("missing binary is an error", func(t *testing.T) {
		t.Parallel()
		_, err := Run(context.Background(), "socketlib-no-such-binary-xyz", nil)
		assert.Error(t, err)
	})

	t.Run("context cancellation is an error", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		_, err := Run(ctx, "sh", []string{"-c", "sleep 10"})
		require.Error(t, err)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("respects working directory", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		resolved, err := filepath.EvalSymlinks(dir)
		require.NoError(t, err)

		result, err := Run(context.Background(), "pwd", nil, WithDir(dir))
		require.NoError(t, err)
		assert.Equal(t, resolved, strings.TrimSpace(result.Stdout))
	})

	t.Run("reads stdin", func(t *testing.T) {
		t.Parallel()
		result, err := Run(context.Background(), "cat", nil, WithStdin(strings.NewReader("piped")))
		require.NoError(t, err)
		assert.Equal(t, "piped", result.Stdout)
	})
}

func TestRun_EnvironmentOverrides(t *testing.T) { //nolint:paralleltest // Uses the shared override table
	t.Cleanup(env.ResetOverrides)
	t.Setenv("SOCKETLIB_SPAWN_REMOVED", "present")

	env.SetOverrideValue("SOCKETLIB_SPAWN_SET", "from-override")
	env.SetOverrideUnset("SOCKETLIB_SPAWN_REMOVED")

	result, err := Run(context.Background(), "sh",
		[]string{"-c", `echo "set=${SOCKETLIB_SPAWN_SET},removed=${SOCKETLIB_SPAWN_REMOVED-absent}"`})
	require.NoError(t, err)
	assert.Equal(t, "set=from-override,removed=absent\n", result.Stdout)
}

func TestRun_WithExtraEnv(t *testing.T) {
	t.Parallel()

	result, err := Run(context.Background(), "sh",
		[]string{"-c", `echo "$SOCKETLIB_SPAWN_EXTRA"`},
		WithExtraEnv("SOCKETLIB_SPAWN_EXTRA=extra-value"))
	require.NoError(t, err)
	assert.Equal(t, "extra-value\n", result.Stdout)
}

func TestOutput(t *testing.T) {
	t.Parallel()

	t.Run("returns trimmed stdout", func(t *testing.T) {
		t.Parallel()
		out, err := Output(context.Background(), "sh", []string{"-c", "echo '  spaced  '"})
		require.NoError(t, err)
		assert.Equal(t, "spaced", out)
	})

	t.Run("non-zero exit is an error carrying stderr", func(t *testing.T) {
		t.Parallel()
		_, err := Output(context.Background(), "sh", []string{"-c", "echo broken >&2; exit 2"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "code 2")
		assert.Contains(t, err.Error(), "broken")
	})
}
