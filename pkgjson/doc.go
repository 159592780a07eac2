// SPDX-FileCopyrightText: Copyright 2025 Socket Security, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package pkgjson reads, normalizes, and writes package.json manifests.

Parsing normalizes the shapes npm tolerates into one canonical form: the
string form of "bin" becomes a map keyed by the unscoped package name, and
absent dependency blocks become empty maps. Fields this package does not
model are preserved verbatim across a parse/serialize round trip.

Validate checks a raw manifest against a JSON schema covering the fields
Socket tooling relies on. LoadPnpmWorkspace reads pnpm-workspace.yaml package
globs for monorepo traversal.
*/
package pkgjson
