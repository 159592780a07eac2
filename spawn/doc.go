// SPDX-FileCopyrightText: Copyright 2025 Socket Security, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package spawn wraps os/exec for Socket tooling. Spawned processes inherit the
override-aware environment from the env package, so a test that overrides a
variable sees the override reflected in child processes too, and an
explicitly-unset override removes the variable from the child entirely.

A non-zero exit is reported in Result.ExitCode, not as an error; errors are
reserved for failures to start the process at all.
*/
package spawn
