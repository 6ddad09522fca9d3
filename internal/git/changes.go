package git

import (
	"context"
	"fmt"
	"slices"
	"strings"
)

// StagedFiles returns the files staged for the next commit, relative to dir,
// sorted.
func StagedFiles(ctx context.Context, dir string) ([]string, error) {
	top, err := TopLevel(ctx, dir)
	if err != nil {
		return nil, err
	}
	out, err := outputGit(ctx, dir, "diff", "--name-only", "--cached", "--relative", top)
	if err != nil {
		return nil, fmt.Errorf("list staged files: %w", err)
	}
	files := splitLines(string(out))
	slices.Sort(files)
	return files, nil
}

// ChangedFiles returns modified tracked files and untracked files that are
// not ignored, sorted.
func ChangedFiles(ctx context.Context, dir string) ([]string, error) {
	modified, err := outputGit(ctx, dir, "ls-files", "--modified")
	if err != nil {
		return nil, fmt.Errorf("list modified files: %w", err)
	}
	others, err := outputGit(ctx, dir, "ls-files", "--others", "--exclude-standard")
	if err != nil {
		return nil, fmt.Errorf("list untracked files: %w", err)
	}

	files := append(splitLines(string(modified)), splitLines(string(others))...)
	slices.Sort(files)
	return slices.Compact(files), nil
}

// Add stages the given files.
func Add(ctx context.Context, dir string, files []string) error {
	if len(files) == 0 {
		return nil
	}
	args := append([]string{"add", "--"}, files...)
	if err := runGit(ctx, dir, args...); err != nil {
		return fmt.Errorf("git add: %w", err)
	}
	return nil
}

// Commit records the staged changes with message.
func Commit(ctx context.Context, dir, message string) error {
	if err := runGit(ctx, dir, "commit", "-m", message); err != nil {
		return fmt.Errorf("git commit: %w", err)
	}
	return nil
}

// lockFileMarkers identify dependency lock files, whose diffs are noise for a
// commit message.
var lockFileMarkers = []string{".lock", "-lock."}

// binaryFileMarkers identify image files; git shows no textual diff for them.
var binaryFileMarkers = []string{".svg", ".png", ".jpg", ".jpeg", ".webp", ".gif"}

// IsLockFile reports whether name looks like a dependency lock file.
func IsLockFile(name string) bool {
	return containsAny(name, lockFileMarkers)
}

// ExcludedFromDiff returns the files that get no commit message content:
// lock files and images.
func ExcludedFromDiff(files []string) []string {
	var excluded []string
	for _, f := range files {
		if IsLockFile(f) || containsAny(f, binaryFileMarkers) {
			excluded = append(excluded, f)
		}
	}
	return excluded
}

// StagedDiff returns the staged diff of files, leaving out lock files.
func StagedDiff(ctx context.Context, dir string, files []string) (string, error) {
	var keep []string
	for _, f := range files {
		if !IsLockFile(f) {
			keep = append(keep, f)
		}
	}
	if len(keep) == 0 {
		return "", nil
	}

	args := append([]string{"diff", "--staged", "--"}, keep...)
	out, err := outputGit(ctx, dir, args...)
	if err != nil {
		return "", fmt.Errorf("git diff: %w", err)
	}
	return string(out), nil
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func splitLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
