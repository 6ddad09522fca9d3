package git

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
)

// TopLevel returns the absolute path of the working tree root.
func TopLevel(ctx context.Context, dir string) (string, error) {
	top, err := outputGitLine(ctx, dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("not in a git repository: %v", err)
	}
	return top, nil
}

// CommonDir returns the absolute path of the repository's common git
// directory. For linked worktrees this is the main repository's .git, which
// is where hooks live.
func CommonDir(ctx context.Context, dir string) (string, error) {
	common, err := outputGitLine(ctx, dir, "rev-parse", "--git-common-dir")
	if err != nil {
		return "", err
	}
	if !filepath.IsAbs(common) {
		base := dir
		if base == "" {
			base = "."
		}
		common, err = filepath.Abs(filepath.Join(base, common))
		if err != nil {
			return "", err
		}
	}
	return common, nil
}

// CoreHooksPath returns the configured core.hooksPath with a leading ~
// expanded by git. It fails when the key is not set, since git config exits
// non-zero for missing keys.
func CoreHooksPath(ctx context.Context, dir string) (string, error) {
	p, err := outputGitLine(ctx, dir, "config", "--path", "core.hooksPath")
	if err != nil {
		return "", err
	}
	if p == "" {
		return "", fmt.Errorf("core.hooksPath is empty")
	}
	return p, nil
}

// CurrentBranch returns the short name of the checked-out branch, or "HEAD"
// when detached.
func CurrentBranch(ctx context.Context, dir string) (string, error) {
	return outputGitLine(ctx, dir, "rev-parse", "--abbrev-ref", "HEAD")
}

var issueKeyPattern = regexp.MustCompile(`([A-Z]+-\d+)$`)

// IssueKeyFromBranch extracts a trailing tracker key such as "PROJ-123"
// from a branch name like "feature/PROJ-123". Returns "" when there is none.
func IssueKeyFromBranch(branch string) string {
	m := issueKeyPattern.FindStringSubmatch(branch)
	if m == nil {
		return ""
	}
	return m[1]
}
