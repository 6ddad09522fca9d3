package commitmsg

import (
	"os"
	"path/filepath"
	"testing"
)

func TestApplyTemplate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		template    string
		placeholder string
		want        string
	}{
		{"no template", "", "$msg", "✨ feat: x"},
		{"placeholder replaced", "$msg #205", "$msg", "✨ feat: x #205"},
		{"only first occurrence", "[$msg] $msg", "$msg", "[✨ feat: x] $msg"},
		{"template without placeholder", "fixes #205", "$msg", "✨ feat: x"},
		{"custom placeholder", "WIP: $m", "$m", "WIP: ✨ feat: x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ApplyTemplate(tt.template, tt.placeholder, "✨ feat: x"); got != tt.want {
				t.Errorf("ApplyTemplate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAddIssueKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		message string
		key     string
		want    string
	}{
		{"no key", "✨ feat: x", "", "✨ feat: x"},
		{"appends trailer", "✨ feat: x\n", "PROJ-1", "✨ feat: x\n\nRefs: PROJ-1"},
		{"already mentioned", "✨ feat(PROJ-1): x", "PROJ-1", "✨ feat(PROJ-1): x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := AddIssueKey(tt.message, tt.key); got != tt.want {
				t.Errorf("AddIssueKey() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrependToFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "COMMIT_EDITMSG")
	if err := os.WriteFile(path, []byte("# Please enter the commit message\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := PrependToFile(path, "✨ feat: add hook"); err != nil {
		t.Fatalf("PrependToFile() error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "✨ feat: add hook\n# Please enter the commit message\n"
	if string(got) != want {
		t.Errorf("file = %q, want %q", got, want)
	}

	if err := PrependToFile(filepath.Join(t.TempDir(), "missing"), "x"); err == nil {
		t.Error("PrependToFile() on a missing file should fail")
	}
}
