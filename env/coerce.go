// SPDX-FileCopyrightText: Copyright 2025 Socket Security, Inc.
// SPDX-License-Identifier: Apache-2.0

package env

import "strconv"

// AsBool coerces a (value, ok) pair to a boolean with presence semantics:
// true whenever the variable is defined, no matter the string, including
// "false", "0" and "". Only an absent variable coerces to false. This mirrors
// how CI providers signal themselves by defining a variable at all, and
// downstream code depends on it; it is deliberately not a ParseBool.
func AsBool(_ string, ok bool) bool {
	return ok
}

// AsInt coerces a (value, ok) pair to an integer. An absent or unparsable
// value coerces to 0.
func AsInt(value string, ok bool) int {
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return n
}

// AsString coerces a (value, ok) pair to a string, mapping absence to the
// empty string. Unlike GetValue, the result cannot distinguish an empty value
// from an absent one.
func AsString(value string, ok bool) string {
	if !ok {
		return ""
	}
	return value
}
