// SPDX-FileCopyrightText: Copyright 2025 Socket Security, Inc.
// SPDX-License-Identifier: Apache-2.0

package gitutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// Matcher answers whether a path is excluded by a repository's .gitignore.
type Matcher struct {
	matcher gitignore.Matcher
}

// NewMatcher loads .gitignore from root and builds a Matcher from its
// patterns. A missing .gitignore yields a matcher that never ignores; a
// present but unreadable one is an error.
func NewMatcher(root string) (*Matcher, error) {
	path := filepath.Join(root, ".gitignore")
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Matcher{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var patterns []gitignore.Pattern
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, gitignore.ParsePattern(line, nil))
	}
	if len(patterns) == 0 {
		return &Matcher{}, nil
	}
	return &Matcher{matcher: gitignore.NewMatcher(patterns)}, nil
}

// Ignored reports whether the slash-separated path, relative to the matcher's
// root, is excluded. isDir must reflect whether the path names a directory,
// since patterns like "build/" only match directories.
func (m *Matcher) Ignored(relPath string, isDir bool) bool {
	if m.matcher == nil {
		return false
	}
	return m.matcher.Match(strings.Split(relPath, "/"), isDir)
}
