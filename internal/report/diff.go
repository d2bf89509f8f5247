package report

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// diffContextLines is the number of unchanged lines shown around each hunk.
const diffContextLines = 3

// UnifiedDiff produces a classic unified patch (---/+++ headers, @@ hunks)
// of the manifest before and after the pending edits.
func UnifiedDiff(manifestPath string, before, after []byte) (string, error) {
	u := difflib.UnifiedDiff{
		A:        splitLinesKeepNL(string(before)),
		B:        splitLinesKeepNL(string(after)),
		FromFile: "a/" + manifestPath,
		ToFile:   "b/" + manifestPath,
		Context:  diffContextLines,
	}
	text, err := difflib.GetUnifiedDiffString(u)
	if err != nil {
		return "", fmt.Errorf("failed to build unified diff: %w", err)
	}
	return text, nil
}

// splitLinesKeepNL splits into lines and keeps the newline characters,
// which produces better unified hunks. A final line without a newline is
// kept as-is.
func splitLinesKeepNL(s string) []string {
	if s == "" {
		return []string{}
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
