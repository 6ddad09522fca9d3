package ignore

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestParse_Filter(t *testing.T) {
	t.Parallel()

	rules := `# generated
dist/
*.min.js
!keep.min.js
docs/**/*.md
`
	tests := []struct {
		name string
		path string
		want bool
	}{
		{"directory pattern", "dist/app.js", true},
		{"glob", "web/app.min.js", true},
		{"negation", "keep.min.js", false},
		{"double star", "docs/guide/intro.md", true},
		{"unrelated", "main.go", false},
		{"comment is not a pattern", "generated", false},
	}

	m, err := Parse(strings.NewReader(rules))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := m.Ignored(tt.path); got != tt.want {
				t.Errorf("Ignored(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestFilter_PreservesOrder(t *testing.T) {
	t.Parallel()

	m, err := Parse(strings.NewReader("*.snap\n"))
	if err != nil {
		t.Fatal(err)
	}
	files := []string{"b.go", "a.snap", "a.go", "c/d.snap"}
	got := m.Filter(files)
	want := []string{"b.go", "a.go"}
	if !slices.Equal(got, want) {
		t.Errorf("Filter() = %v, want %v", got, want)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	m, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if m.Ignored("anything.go") {
		t.Error("empty matcher should ignore nothing")
	}
	files := []string{"x", "y"}
	if got := m.Filter(files); !slices.Equal(got, files) {
		t.Errorf("Filter() = %v, want %v", got, files)
	}
}

func TestLoad_ReadsFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte("vendor/\r\n\r\n"), 0644); err != nil {
		t.Fatal(err)
	}
	m, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !m.Ignored("vendor/lib/a.go") {
		t.Error("vendor/lib/a.go should be ignored")
	}
}

func TestNilMatcher(t *testing.T) {
	t.Parallel()
	var m *Matcher
	if m.Ignored("a") {
		t.Error("nil matcher should ignore nothing")
	}
}
