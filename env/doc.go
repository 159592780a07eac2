// SPDX-FileCopyrightText: Copyright 2025 Socket Security, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package env provides environment variable access for Socket tooling, with a
process-wide override layer for testing isolation.

Every environment variable read in socketlib goes through this package instead
of touching the os package directly. Tests can substitute values without
mutating the real process environment, and without cross-test leakage when the
override table is reset between cases.

# Basic Usage

Read a variable through the override-aware accessor:

	value, ok := env.GetValue("CI")

Or use a typed getter:

	if env.CI() {
		// running under a CI provider
	}

# Overrides

An override puts a key into one of two recorded states: overridden to a value,
or explicitly unset. A key with no override falls through to a live read of
the real process environment.

	env.SetOverrideValue("HOME", "/custom") // reads return "/custom"
	env.SetOverrideUnset("HOME")            // reads see HOME as absent, even if the real env defines it
	env.ClearOverride("HOME")               // back to the real environment

Tests reset the whole table in cleanup to guarantee isolation:

	t.Cleanup(env.ResetOverrides)

# Readers

The Reader interface allows injecting environment access as a dependency.
OSReader reads the real environment; OverrideReader resolves through the
override table first. A generated mock is available in the mocks sub-package:

	ctrl := gomock.NewController(t)
	mock := mocks.NewMockReader(ctrl)
	mock.EXPECT().LookupEnv("MY_VAR").Return("test-value", true)

# Coercions

AsBool, AsInt and AsString convert a (value, ok) pair from GetValue or
LookupEnv. Note that AsBool has presence semantics: any defined string,
including "false", "0" and "", coerces to true. Only an absent variable is
false. Downstream code relies on this; do not change it to parse the string.
*/
package env
