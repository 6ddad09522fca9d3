// Package ignore filters staged files through a .conmitmojiignore file.
//
// The file uses .gitignore syntax. Matching is delegated to go-git's
// gitignore implementation so negations, directory patterns and ** behave
// the way users expect from git.
package ignore

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// FileName is the ignore file looked up in the directory moji runs from.
// Its patterns match paths relative to that directory.
const FileName = ".conmitmojiignore"

// Matcher decides which files are left out of commit message generation.
// The zero value ignores nothing.
type Matcher struct {
	m gitignore.Matcher
}

// Load reads FileName from dir. A missing file yields a Matcher that
// ignores nothing.
func Load(dir string) (*Matcher, error) {
	f, err := os.Open(filepath.Join(dir, FileName))
	if errors.Is(err, os.ErrNotExist) {
		return &Matcher{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", FileName, err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse builds a Matcher from gitignore-formatted patterns.
func Parse(r io.Reader) (*Matcher, error) {
	var patterns []gitignore.Pattern
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, gitignore.ParsePattern(line, nil))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", FileName, err)
	}
	if len(patterns) == 0 {
		return &Matcher{}, nil
	}
	return &Matcher{m: gitignore.NewMatcher(patterns)}, nil
}

// Ignored reports whether the slash-separated path matches the ignore rules.
func (m *Matcher) Ignored(path string) bool {
	if m == nil || m.m == nil {
		return false
	}
	return m.m.Match(strings.Split(filepath.ToSlash(path), "/"), false)
}

// Filter returns the files that are not ignored, preserving order.
func (m *Matcher) Filter(files []string) []string {
	kept := make([]string, 0, len(files))
	for _, f := range files {
		if !m.Ignored(f) {
			kept = append(kept, f)
		}
	}
	return kept
}
