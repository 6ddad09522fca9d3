package commitmsg

import (
	"strings"
	"unicode/utf8"
)

const (
	fileHeader = "diff --git "
	hunkHeader = "@@ "
)

// SplitDiff breaks diff into chunks of at most budget tokens. Whole files
// are packed together while they fit. A file larger than the budget is split
// into hunks, each carrying the file header so the model knows the path. A
// single hunk larger than the budget is truncated at a line boundary.
func SplitDiff(diff string, budget int) []string {
	var chunks []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			chunks = append(chunks, current.String())
			current.Reset()
		}
	}
	add := func(part string) {
		if current.Len() > 0 && EstimateTokens(current.String()+part) > budget {
			flush()
		}
		current.WriteString(part)
	}

	for _, file := range splitFiles(diff) {
		if EstimateTokens(file) <= budget {
			add(file)
			continue
		}
		header, hunks := splitHunks(file)
		for _, hunk := range hunks {
			part := header + hunk
			if EstimateTokens(part) > budget {
				part = truncateLines(part, budget)
			}
			add(part)
		}
	}
	flush()
	return chunks
}

// splitFiles splits a unified diff at each "diff --git" header.
func splitFiles(diff string) []string {
	var files []string
	var file strings.Builder
	for _, line := range strings.SplitAfter(diff, "\n") {
		if strings.HasPrefix(line, fileHeader) && file.Len() > 0 {
			files = append(files, file.String())
			file.Reset()
		}
		file.WriteString(line)
	}
	if file.Len() > 0 {
		files = append(files, file.String())
	}
	return files
}

// splitHunks separates a single-file diff into its header (everything before
// the first hunk) and its hunks.
func splitHunks(file string) (string, []string) {
	lines := strings.SplitAfter(file, "\n")

	var header strings.Builder
	var hunks []string
	var hunk strings.Builder
	for _, line := range lines {
		if strings.HasPrefix(line, hunkHeader) {
			if hunk.Len() > 0 {
				hunks = append(hunks, hunk.String())
				hunk.Reset()
			}
			hunk.WriteString(line)
			continue
		}
		if hunk.Len() == 0 && len(hunks) == 0 {
			header.WriteString(line)
			continue
		}
		hunk.WriteString(line)
	}
	if hunk.Len() > 0 {
		hunks = append(hunks, hunk.String())
	}
	if len(hunks) == 0 {
		return "", []string{header.String()}
	}
	return header.String(), hunks
}

// truncateLines keeps whole lines of s while they fit in budget tokens. At
// least the first line is kept, cut to the budget if needed.
func truncateLines(s string, budget int) string {
	limit := budget * 4
	if len(s) <= limit {
		return s
	}
	cut := strings.LastIndexByte(s[:limit], '\n')
	if cut <= 0 {
		for limit > 0 && !utf8.RuneStart(s[limit]) {
			limit--
		}
		return s[:limit]
	}
	return s[:cut+1]
}
