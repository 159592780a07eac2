// SPDX-FileCopyrightText: Copyright 2025 Socket Security, Inc.
// SPDX-License-Identifier: Apache-2.0

package env

//go:generate mockgen -source=env.go -destination=mocks/mock_reader.go -package=mocks Reader

import "os"

// Reader defines an interface for environment variable access.
type Reader interface {
	// Getenv returns the value of the environment variable named by the key,
	// or the empty string if the variable is not present.
	Getenv(key string) string

	// LookupEnv returns the value of the environment variable named by the
	// key and whether the variable is present. Presence distinguishes an
	// empty value from an absent one.
	LookupEnv(key string) (string, bool)
}

// OSReader implements Reader using the standard os package.
type OSReader struct{}

// Getenv returns the value of the environment variable named by the key.
func (*OSReader) Getenv(key string) string {
	return os.Getenv(key)
}

// LookupEnv reports the value and presence of the environment variable named by the key.
func (*OSReader) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}
