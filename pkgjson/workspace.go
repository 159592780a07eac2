// SPDX-FileCopyrightText: Copyright 2025 Socket Security, Inc.
// SPDX-License-Identifier: Apache-2.0

package pkgjson

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// PnpmWorkspaceFile is the manifest name pnpm uses for workspace definitions.
const PnpmWorkspaceFile = "pnpm-workspace.yaml"

// PnpmWorkspace holds the package globs from a pnpm-workspace.yaml.
type PnpmWorkspace struct {
	Packages []string `yaml:"packages"`
}

// LoadPnpmWorkspace reads pnpm-workspace.yaml from dir. A missing file
// returns (nil, nil): the directory is simply not a pnpm workspace root.
func LoadPnpmWorkspace(dir string) (*PnpmWorkspace, error) {
	path := filepath.Join(dir, PnpmWorkspaceFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var ws PnpmWorkspace
	if err := yaml.Unmarshal(data, &ws); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &ws, nil
}
