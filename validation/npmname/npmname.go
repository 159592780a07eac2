// SPDX-FileCopyrightText: Copyright 2025 Socket Security, Inc.
// SPDX-License-Identifier: Apache-2.0

package npmname

import (
	"fmt"
	"regexp"
	"strings"
)

// maxLength is the registry's limit on package name length, scope included.
const maxLength = 214

var validSegmentRegex = regexp.MustCompile(`^[a-z0-9~-][_a-z0-9.~-]*$`)

// ValidateName validates an npm package name, scoped ("@scope/name") or
// unscoped, against the rules for newly published packages: lowercase only,
// URL-safe characters, no leading dot or underscore, at most 214 characters.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("package name cannot be empty")
	}
	if len(name) > maxLength {
		return fmt.Errorf("package name cannot exceed %d characters", maxLength)
	}
	if strings.TrimSpace(name) != name {
		return fmt.Errorf("package name cannot have leading or trailing whitespace: %q", name)
	}
	if name != strings.ToLower(name) {
		return fmt.Errorf("package name must be lowercase: %q", name)
	}

	if strings.HasPrefix(name, "@") {
		scope, bare, ok := strings.Cut(name[1:], "/")
		if !ok || scope == "" || bare == "" {
			return fmt.Errorf("scoped package name must have the form @scope/name: %q", name)
		}
		if err := validateSegment(scope, "scope"); err != nil {
			return err
		}
		return validateSegment(bare, "name")
	}
	return validateSegment(name, "name")
}

func validateSegment(segment, what string) error {
	if strings.HasPrefix(segment, ".") || strings.HasPrefix(segment, "_") {
		return fmt.Errorf("package %s cannot start with a dot or underscore: %q", what, segment)
	}
	if !validSegmentRegex.MatchString(segment) {
		return fmt.Errorf("package %s can only contain URL-safe characters: %q", what, segment)
	}
	return nil
}
