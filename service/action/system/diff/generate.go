package diff

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	sgdiff "github.com/sourcegraph/go-diff/diff"
)

// DefaultContextLines is used when a non-positive context is requested
const DefaultContextLines = 3

// Stats captures basic statistics about a unified-diff output.
type Stats struct {
	Insertions int
	Deletions  int
	Hunks      int
}

// Generate produces a unified diff between old and new contents labelled
// fromFile and toFile. Identical inputs yield an empty diff.
func Generate(old, new []byte, fromFile, toFile string, contextLines int) (string, Stats, error) {
	if bytes.Equal(old, new) {
		return "", Stats{}, nil
	}
	if contextLines <= 0 {
		contextLines = DefaultContextLines
	}
	ud := difflib.UnifiedDiff{
		A:        splitLines(string(old)),
		B:        splitLines(string(new)),
		FromFile: fromFile,
		ToFile:   toFile,
		Context:  contextLines,
	}
	patch, err := difflib.GetUnifiedDiffString(ud)
	if err != nil {
		return "", Stats{}, fmt.Errorf("diff generation: %w", err)
	}
	stats, err := computeStats(patch)
	if err != nil {
		return "", Stats{}, err
	}
	return patch, stats, nil
}

// splitLines keeps line terminators; an unterminated last line gets one so hunks stay parseable.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.SplitAfter(s, "\n")
	if last := len(lines) - 1; lines[last] == "" {
		lines = lines[:last]
	} else {
		lines[last] += "\n"
	}
	return lines
}

func computeStats(patch string) (Stats, error) {
	fileDiff, err := sgdiff.ParseFileDiff([]byte(patch))
	if err != nil {
		return Stats{}, fmt.Errorf("failed to parse generated diff: %w", err)
	}
	stats := Stats{Hunks: len(fileDiff.Hunks)}
	for _, hunk := range fileDiff.Hunks {
		for _, line := range strings.Split(string(hunk.Body), "\n") {
			switch {
			case strings.HasPrefix(line, "+"):
				stats.Insertions++
			case strings.HasPrefix(line, "-"):
				stats.Deletions++
			}
		}
	}
	return stats, nil
}
