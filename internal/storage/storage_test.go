package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
)

func TestSaveTOML(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "test.toml")

	original := map[string]any{
		"MOJI_MODEL":             "gpt-4",
		"MOJI_DESCRIPTION":       true,
		"MOJI_OPENAI_MAX_TOKENS": int64(500),
	}

	if err := SaveTOML(path, original); err != nil {
		t.Fatalf("SaveTOML failed: %v", err)
	}

	var loaded map[string]any
	if _, err := toml.DecodeFile(path, &loaded); err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	for k, want := range original {
		if loaded[k] != want {
			t.Errorf("loaded[%q] = %#v, want %#v", k, loaded[k], want)
		}
	}
}

func TestSaveTOML_PrivatePermissions(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config")
	if err := SaveTOML(path, map[string]any{"MOJI_OPENAI_API_KEY": "sk-test"}); err != nil {
		t.Fatalf("SaveTOML failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("permissions = %o, want 600", perm)
	}
}

func TestWriteFileAtomic_CreatesDirectory(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "a", "b", "c", "data")

	if err := WriteFileAtomic(path, []byte("KEY = \"value\"\n"), 0o600); err != nil {
		t.Fatalf("WriteFileAtomic failed to create directories: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read written file: %v", err)
	}
	if string(content) != "KEY = \"value\"\n" {
		t.Errorf("content = %q, want %q", content, "KEY = \"value\"\n")
	}
}

func TestWriteFileAtomic_Overwrites(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "data")
	if err := os.WriteFile(path, []byte("old contents that are longer"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := WriteFileAtomic(path, []byte("new"), 0o600); err != nil {
		t.Fatalf("WriteFileAtomic failed: %v", err)
	}

	content, _ := os.ReadFile(path)
	if string(content) != "new" {
		t.Errorf("content = %q, want %q (full overwrite)", content, "new")
	}

	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("temp file should not remain after write, stat err = %v", err)
	}
}
