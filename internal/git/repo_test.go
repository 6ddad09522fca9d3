package git

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// setupTestRepo creates a git repo with an initial commit and returns its
// path with symlinks resolved.
func setupTestRepo(t *testing.T) string {
	t.Helper()
	tmpDir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("failed to resolve temp dir: %v", err)
	}
	repoPath := filepath.Join(tmpDir, "test-repo")

	ctx := context.Background()
	if err := runGit(ctx, "", "init", "-b", "main", repoPath); err != nil {
		t.Fatalf("failed to init repo: %v", err)
	}

	cmds := [][]string{
		{"config", "user.email", "test@test.com"},
		{"config", "user.name", "Test User"},
		{"config", "commit.gpgsign", "false"},
	}
	for _, args := range cmds {
		cmd := exec.Command("git", args...)
		cmd.Dir = repoPath
		if out, err := cmd.CombinedOutput(); err != nil {
			t.Fatalf("failed to run git %v: %v\n%s", args, err, out)
		}
	}

	writeFile(t, repoPath, "README.md", "# test\n")
	if err := runGit(ctx, repoPath, "add", "README.md"); err != nil {
		t.Fatalf("failed to add file: %v", err)
	}
	if err := runGit(ctx, repoPath, "commit", "-m", "Initial commit"); err != nil {
		t.Fatalf("failed to commit: %v", err)
	}
	return repoPath
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
}

func TestTopLevelAndCommonDir(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := setupTestRepo(t)

	sub := filepath.Join(repo, "sub")
	if err := os.MkdirAll(sub, 0755); err != nil {
		t.Fatal(err)
	}

	top, err := TopLevel(ctx, sub)
	if err != nil {
		t.Fatalf("TopLevel() error = %v", err)
	}
	if top != repo {
		t.Errorf("TopLevel() = %q, want %q", top, repo)
	}

	common, err := CommonDir(ctx, sub)
	if err != nil {
		t.Fatalf("CommonDir() error = %v", err)
	}
	if want := filepath.Join(repo, ".git"); common != want {
		t.Errorf("CommonDir() = %q, want %q", common, want)
	}
}

func TestCoreHooksPath(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := setupTestRepo(t)

	if _, err := CoreHooksPath(ctx, repo); err == nil {
		t.Error("CoreHooksPath() without config should fail")
	}

	if err := runGit(ctx, repo, "config", "core.hooksPath", ".githooks"); err != nil {
		t.Fatal(err)
	}
	got, err := CoreHooksPath(ctx, repo)
	if err != nil {
		t.Fatalf("CoreHooksPath() error = %v", err)
	}
	if got != ".githooks" {
		t.Errorf("CoreHooksPath() = %q, want %q", got, ".githooks")
	}
}

func TestCurrentBranch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := setupTestRepo(t)

	if err := runGit(ctx, repo, "checkout", "-b", "feature/PROJ-42"); err != nil {
		t.Fatal(err)
	}
	got, err := CurrentBranch(ctx, repo)
	if err != nil {
		t.Fatalf("CurrentBranch() error = %v", err)
	}
	if got != "feature/PROJ-42" {
		t.Errorf("CurrentBranch() = %q, want %q", got, "feature/PROJ-42")
	}
}

func TestIssueKeyFromBranch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		branch string
		want   string
	}{
		{"feature/PROJ-123", "PROJ-123"},
		{"ABC-1", "ABC-1"},
		{"bugfix/ABC-12-login", ""},
		{"main", ""},
		{"feature/proj-123", ""},
		{"HEAD", ""},
	}

	for _, tt := range tests {
		if got := IssueKeyFromBranch(tt.branch); got != tt.want {
			t.Errorf("IssueKeyFromBranch(%q) = %q, want %q", tt.branch, got, tt.want)
		}
	}
}
