// SPDX-FileCopyrightText: Copyright 2025 Socket Security, Inc.
// SPDX-License-Identifier: Apache-2.0

package env

import (
	"os"

	"github.com/adrg/xdg"
)

// Environment variable names read by Socket tooling.
const (
	// EnvCI is defined (with any value) by virtually every CI provider.
	EnvCI = "CI"

	// EnvNodeEnv mirrors the Node ecosystem convention ("production", "test", ...).
	EnvNodeEnv = "NODE_ENV"

	EnvGitHubActions    = "GITHUB_ACTIONS"
	EnvGitHubAPIURL     = "GITHUB_API_URL"
	EnvGitHubRef        = "GITHUB_REF"
	EnvGitHubRepository = "GITHUB_REPOSITORY"
	EnvGitHubToken      = "GITHUB_TOKEN" //nolint:gosec // variable name, not a credential

	EnvNpmUserAgent = "npm_config_user_agent"

	EnvXDGCacheHome  = "XDG_CACHE_HOME"
	EnvXDGConfigHome = "XDG_CONFIG_HOME"
	EnvXDGDataHome   = "XDG_DATA_HOME"

	EnvHome = "HOME"

	EnvDebug       = "DEBUG"
	EnvSocketDebug = "SOCKET_DEBUG"

	EnvSocketAPIBaseURL = "SOCKET_CLI_API_BASE_URL"
	EnvSocketAPIToken   = "SOCKET_CLI_API_TOKEN" //nolint:gosec // variable name, not a credential
	EnvSocketConfig     = "SOCKET_CLI_CONFIG"
)

// DefaultAPIBaseURL is returned by APIBaseURL when SOCKET_CLI_API_BASE_URL is absent.
const DefaultAPIBaseURL = "https://api.socket.dev/v0"

// CI reports whether a CI provider defines the CI variable. Presence
// semantics apply: CI=false still reports true.
func CI() bool {
	return AsBool(GetValue(EnvCI))
}

// NodeEnv returns NODE_ENV, or the empty string when absent.
func NodeEnv() string {
	return AsString(GetValue(EnvNodeEnv))
}

// InGitHubActions reports whether the process runs inside a GitHub Actions job.
func InGitHubActions() bool {
	return AsBool(GetValue(EnvGitHubActions))
}

// GitHubAPIURL returns GITHUB_API_URL, or the empty string when absent.
func GitHubAPIURL() string {
	return AsString(GetValue(EnvGitHubAPIURL))
}

// GitHubRef returns GITHUB_REF, or the empty string when absent.
func GitHubRef() string {
	return AsString(GetValue(EnvGitHubRef))
}

// GitHubRepository returns GITHUB_REPOSITORY ("owner/repo"), or the empty string when absent.
func GitHubRepository() string {
	return AsString(GetValue(EnvGitHubRepository))
}

// GitHubToken returns GITHUB_TOKEN, or the empty string when absent.
func GitHubToken() string {
	return AsString(GetValue(EnvGitHubToken))
}

// NpmUserAgent returns npm_config_user_agent, which package managers set when
// they spawn lifecycle scripts. Empty when absent.
func NpmUserAgent() string {
	return AsString(GetValue(EnvNpmUserAgent))
}

// XDGCacheHome returns XDG_CACHE_HOME, falling back to the platform default
// from the xdg package when the variable is absent or overridden as unset.
func XDGCacheHome() string {
	if value, ok := GetValue(EnvXDGCacheHome); ok && value != "" {
		return value
	}
	return xdg.CacheHome
}

// XDGConfigHome returns XDG_CONFIG_HOME, falling back to the platform default.
func XDGConfigHome() string {
	if value, ok := GetValue(EnvXDGConfigHome); ok && value != "" {
		return value
	}
	return xdg.ConfigHome
}

// XDGDataHome returns XDG_DATA_HOME, falling back to the platform default.
func XDGDataHome() string {
	if value, ok := GetValue(EnvXDGDataHome); ok && value != "" {
		return value
	}
	return xdg.DataHome
}

// Home returns the user's home directory: the HOME variable when present,
// otherwise the OS account database via os.UserHomeDir. Empty only when both
// are unavailable.
func Home() string {
	if value, ok := GetValue(EnvHome); ok {
		return value
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home
}

// Debug reports whether debug output is requested via SOCKET_DEBUG or DEBUG.
// Presence semantics apply to both.
func Debug() bool {
	return AsBool(GetValue(EnvSocketDebug)) || AsBool(GetValue(EnvDebug))
}

// APIBaseURL returns the Socket API base URL, defaulting to DefaultAPIBaseURL
// when SOCKET_CLI_API_BASE_URL is absent or empty.
func APIBaseURL() string {
	if value, ok := GetValue(EnvSocketAPIBaseURL); ok && value != "" {
		return value
	}
	return DefaultAPIBaseURL
}

// APIToken returns SOCKET_CLI_API_TOKEN, or the empty string when absent.
func APIToken() string {
	return AsString(GetValue(EnvSocketAPIToken))
}

// ConfigPath returns SOCKET_CLI_CONFIG, or the empty string when absent.
func ConfigPath() string {
	return AsString(GetValue(EnvSocketConfig))
}
