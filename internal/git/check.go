package git

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// ErrGitNotFound indicates git is not installed or not in PATH
var ErrGitNotFound = fmt.Errorf("git not found: please install git (https://git-scm.com)")

// ErrNotRepo indicates the directory is not inside a git repository.
var ErrNotRepo = errors.New("not a git repository")

// CheckGit verifies that git is available in PATH
func CheckGit() error {
	_, err := exec.LookPath("git")
	if err != nil {
		return ErrGitNotFound
	}
	return nil
}

// IsInsideRepo returns true if dir (or the working directory when empty) is inside a git repository
func IsInsideRepo(ctx context.Context, dir string) bool {
	return AssertRepo(ctx, dir) == nil
}

// AssertRepo returns an error wrapping ErrNotRepo, with git's message, when
// dir is not inside a git repository.
func AssertRepo(ctx context.Context, dir string) error {
	if err := runGit(ctx, dir, "rev-parse"); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: %v", ErrNotRepo, err)
	}
	return nil
}
