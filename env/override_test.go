// SPDX-FileCopyrightText: Copyright 2025 Socket Security, Inc.
// SPDX-License-Identifier: Apache-2.0

package env

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Override tests manipulate process-wide state (the override table and, for
// fall-through cases, real environment variables), so none of them run in
// parallel. Every test resets the table in cleanup.

func TestGetValue_FallsThroughToRealEnvironment(t *testing.T) { //nolint:paralleltest // Modifies environment variables
	t.Cleanup(ResetOverrides)
	t.Setenv("SOCKETLIB_TEST_REAL", "from-real-env")

	value, ok := GetValue("SOCKETLIB_TEST_REAL")
	require.True(t, ok)
	assert.Equal(t, "from-real-env", value)

	_, ok = GetValue("SOCKETLIB_TEST_NEVER_SET_12345")
	assert.False(t, ok)
}

func TestGetValue_RealEnvironmentReadIsLive(t *testing.T) { //nolint:paralleltest // Modifies environment variables
	t.Cleanup(ResetOverrides)

	t.Setenv("SOCKETLIB_TEST_LIVE", "first")
	value, _ := GetValue("SOCKETLIB_TEST_LIVE")
	assert.Equal(t, "first", value)

	// A change to the real environment between two calls must be observable
	// when no override is present.
	require.NoError(t, os.Setenv("SOCKETLIB_TEST_LIVE", "second"))
	value, _ = GetValue("SOCKETLIB_TEST_LIVE")
	assert.Equal(t, "second", value)
}

func TestSetOverride_ValueShadowsRealEnvironment(t *testing.T) { //nolint:paralleltest // Modifies environment variables
	t.Cleanup(ResetOverrides)
	t.Setenv("SOCKETLIB_TEST_SHADOW", "real")

	SetOverrideValue("SOCKETLIB_TEST_SHADOW", "overridden")

	value, ok := GetValue("SOCKETLIB_TEST_SHADOW")
	require.True(t, ok)
	assert.Equal(t, "overridden", value)
	assert.True(t, HasOverride("SOCKETLIB_TEST_SHADOW"))
}

func TestSetOverride_ExplicitUnsetShadowsRealEnvironment(t *testing.T) { //nolint:paralleltest // Modifies environment variables
	t.Cleanup(ResetOverrides)
	t.Setenv("SOCKETLIB_TEST_UNSET", "real")

	SetOverrideUnset("SOCKETLIB_TEST_UNSET")

	value, ok := GetValue("SOCKETLIB_TEST_UNSET")
	assert.False(t, ok, "explicitly-unset key must read as absent")
	assert.Equal(t, "", value)
	assert.True(t, HasOverride("SOCKETLIB_TEST_UNSET"),
		"explicit-unset is distinguishable from never-set")
}

func TestSetOverride_ReplacesPriorOverride(t *testing.T) { //nolint:paralleltest // Uses the shared override table
	t.Cleanup(ResetOverrides)

	SetOverrideValue("SOCKETLIB_TEST_REPLACE", "one")
	SetOverrideValue("SOCKETLIB_TEST_REPLACE", "two")

	value, ok := GetValue("SOCKETLIB_TEST_REPLACE")
	require.True(t, ok)
	assert.Equal(t, "two", value)

	SetOverrideUnset("SOCKETLIB_TEST_REPLACE")
	_, ok = GetValue("SOCKETLIB_TEST_REPLACE")
	assert.False(t, ok)
}

func TestSetOverride_EmptyStringValueIsPresent(t *testing.T) { //nolint:paralleltest // Uses the shared override table
	t.Cleanup(ResetOverrides)

	SetOverrideValue("SOCKETLIB_TEST_EMPTY_OVERRIDE", "")

	value, ok := GetValue("SOCKETLIB_TEST_EMPTY_OVERRIDE")
	assert.True(t, ok, "empty value override is present, not unset")
	assert.Equal(t, "", value)
}

func TestClearOverride(t *testing.T) { //nolint:paralleltest // Modifies environment variables
	t.Cleanup(ResetOverrides)
	t.Setenv("SOCKETLIB_TEST_CLEAR", "real")

	SetOverrideValue("SOCKETLIB_TEST_CLEAR", "overridden")
	ClearOverride("SOCKETLIB_TEST_CLEAR")

	assert.False(t, HasOverride("SOCKETLIB_TEST_CLEAR"))
	value, ok := GetValue("SOCKETLIB_TEST_CLEAR")
	require.True(t, ok, "cleared key falls through to the real environment")
	assert.Equal(t, "real", value)

	// Clearing a key with no override is a no-op, not an error.
	ClearOverride("SOCKETLIB_TEST_NEVER_SET_12345")
}

func TestResetOverrides(t *testing.T) { //nolint:paralleltest // Uses the shared override table
	t.Cleanup(ResetOverrides)

	SetOverrideValue("SOCKETLIB_TEST_RESET_A", "a")
	SetOverrideUnset("SOCKETLIB_TEST_RESET_B")
	SetOverrideValue("SOCKETLIB_TEST_RESET_C", "c")

	ResetOverrides()

	for _, key := range []string{
		"SOCKETLIB_TEST_RESET_A",
		"SOCKETLIB_TEST_RESET_B",
		"SOCKETLIB_TEST_RESET_C",
	} {
		assert.False(t, HasOverride(key), "no override survives a reset: %s", key)
	}

	// Resetting an empty table is a no-op.
	ResetOverrides()
}

// TestOverrideIsolationAcrossCases simulates the afterEach pattern: each case
// resets in cleanup, and a key set in one case must not leak into a later one
// even when an intermediate case never touched it.
func TestOverrideIsolationAcrossCases(t *testing.T) { //nolint:paralleltest // Uses the shared override table
	t.Run("first case sets a key", func(t *testing.T) {
		t.Cleanup(ResetOverrides)
		SetOverrideValue("SOCKETLIB_TEST_LEAK", "true")
		assert.True(t, HasOverride("SOCKETLIB_TEST_LEAK"))
	})

	t.Run("second case does not touch it", func(t *testing.T) {
		t.Cleanup(ResetOverrides)
		SetOverrideValue("SOCKETLIB_TEST_OTHER", "x")
	})

	t.Run("third case observes no leakage", func(t *testing.T) {
		t.Cleanup(ResetOverrides)
		assert.False(t, HasOverride("SOCKETLIB_TEST_LEAK"))
		_, ok := GetValue("SOCKETLIB_TEST_LEAK")
		assert.False(t, ok)
	})
}

func TestEnviron_AppliesOverrides(t *testing.T) { //nolint:paralleltest // Modifies environment variables
	t.Cleanup(ResetOverrides)
	t.Setenv("SOCKETLIB_TEST_ENVIRON_KEEP", "keep")
	t.Setenv("SOCKETLIB_TEST_ENVIRON_REPLACE", "old")
	t.Setenv("SOCKETLIB_TEST_ENVIRON_REMOVE", "gone")

	SetOverrideValue("SOCKETLIB_TEST_ENVIRON_REPLACE", "new")
	SetOverrideUnset("SOCKETLIB_TEST_ENVIRON_REMOVE")
	SetOverrideValue("SOCKETLIB_TEST_ENVIRON_ADD", "added")

	environ := Environ()
	assert.Contains(t, environ, "SOCKETLIB_TEST_ENVIRON_KEEP=keep")
	assert.Contains(t, environ, "SOCKETLIB_TEST_ENVIRON_REPLACE=new")
	assert.Contains(t, environ, "SOCKETLIB_TEST_ENVIRON_ADD=added")
	assert.NotContains(t, environ, "SOCKETLIB_TEST_ENVIRON_REPLACE=old")
	assert.NotContains(t, environ, "SOCKETLIB_TEST_ENVIRON_REMOVE=gone")
}

func TestOverrideReader(t *testing.T) { //nolint:paralleltest // Modifies environment variables
	t.Cleanup(ResetOverrides)
	t.Setenv("SOCKETLIB_TEST_READER", "real")

	reader := &OverrideReader{}

	assert.Equal(t, "real", reader.Getenv("SOCKETLIB_TEST_READER"))

	SetOverrideValue("SOCKETLIB_TEST_READER", "overridden")
	assert.Equal(t, "overridden", reader.Getenv("SOCKETLIB_TEST_READER"))

	SetOverrideUnset("SOCKETLIB_TEST_READER")
	value, ok := reader.LookupEnv("SOCKETLIB_TEST_READER")
	assert.False(t, ok)
	assert.Equal(t, "", value)
}

func TestDefaultReader_IsOverrideAware(t *testing.T) { //nolint:paralleltest // Uses the shared override table
	t.Cleanup(ResetOverrides)

	SetOverrideValue("SOCKETLIB_TEST_DEFAULT_READER", "via-override")
	assert.Equal(t, "via-override", DefaultReader().Getenv("SOCKETLIB_TEST_DEFAULT_READER"))
}
