// SPDX-FileCopyrightText: Copyright 2025 Socket Security, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package npmname provides validation for npm package names, following the
// rules the npm registry enforces for newly published packages.
package npmname
