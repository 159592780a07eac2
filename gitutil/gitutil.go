// SPDX-FileCopyrightText: Copyright 2025 Socket Security, Inc.
// SPDX-License-Identifier: Apache-2.0

package gitutil

import (
	"fmt"

	git "github.com/go-git/go-git/v5"
)

// RepoRoot returns the root directory of the git worktree containing path,
// searching parent directories for a .git the way the git binary does.
func RepoRoot(path string) (string, error) {
	repo, err := openRepo(path)
	if err != nil {
		return "", err
	}
	worktree, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("failed to get worktree for %s: %w", path, err)
	}
	return worktree.Filesystem.Root(), nil
}

// CurrentBranch returns the short name of the branch HEAD points at, or the
// empty string when HEAD is detached.
func CurrentBranch(path string) (string, error) {
	repo, err := openRepo(path)
	if err != nil {
		return "", err
	}
	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("failed to resolve HEAD in %s: %w", path, err)
	}
	if !head.Name().IsBranch() {
		return "", nil
	}
	return head.Name().Short(), nil
}

// HeadCommit returns the full hex hash of the commit HEAD points at.
func HeadCommit(path string) (string, error) {
	repo, err := openRepo(path)
	if err != nil {
		return "", err
	}
	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("failed to resolve HEAD in %s: %w", path, err)
	}
	return head.Hash().String(), nil
}

// IsDirty reports whether the worktree containing path has uncommitted
// changes, including untracked files.
func IsDirty(path string) (bool, error) {
	repo, err := openRepo(path)
	if err != nil {
		return false, err
	}
	worktree, err := repo.Worktree()
	if err != nil {
		return false, fmt.Errorf("failed to get worktree for %s: %w", path, err)
	}
	status, err := worktree.Status()
	if err != nil {
		return false, fmt.Errorf("failed to get worktree status for %s: %w", path, err)
	}
	return !status.IsClean(), nil
}

func openRepo(path string) (*git.Repository, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open git repository at %s: %w", path, err)
	}
	return repo, nil
}
