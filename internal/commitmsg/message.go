package commitmsg

import (
	"fmt"
	"os"
	"strings"

	"github.com/nyxb/conmitmoji/internal/storage"
)

// ApplyTemplate substitutes message for the first occurrence of placeholder
// in template. A template without the placeholder is ignored and message is
// returned unchanged.
func ApplyTemplate(template, placeholder, message string) string {
	if template == "" || placeholder == "" || !strings.Contains(template, placeholder) {
		return message
	}
	return strings.Replace(template, placeholder, message, 1)
}

// AddIssueKey appends a "Refs: <key>" trailer unless key is empty or the
// message already mentions it.
func AddIssueKey(message, key string) string {
	if key == "" || strings.Contains(message, key) {
		return message
	}
	return strings.TrimRight(message, "\n") + "\n\nRefs: " + key
}

// PrependToFile writes message followed by a newline in front of the
// existing content of the commit message file at path.
func PrependToFile(path, message string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("read commit message file: %w", err)
	}
	existing, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read commit message file: %w", err)
	}

	content := message + "\n" + string(existing)
	if err := storage.WriteFileAtomic(path, []byte(content), info.Mode().Perm()); err != nil {
		return fmt.Errorf("write commit message file: %w", err)
	}
	return nil
}
