// SPDX-FileCopyrightText: Copyright 2025 Socket Security, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package fsutil provides small filesystem helpers shared by Socket tooling:
// existence checks, atomic file writes, capped reads, and upward searches for
// marker files such as package.json or .git.
package fsutil
