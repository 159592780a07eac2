// SPDX-FileCopyrightText: Copyright 2025 Socket Security, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package gitutil provides read-only git helpers for Socket tooling: locating
the repository a path belongs to, reporting the current branch and HEAD
commit, checking worktree cleanliness, and matching paths against .gitignore
patterns.

All helpers are built on go-git and never shell out to a git binary, so they
work in environments where git is not installed.
*/
package gitutil
