package mapping

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"github.com/vvka-141/pbxsync/pkg/pbxsync"
)

// ParseMapFile parses map file content holding one OLD=NEW mapping per line.
// It returns the mappings in file order.
//
// Format rules:
// - Lines starting with # are comments
// - Empty lines are ignored
// - Format: OLD=NEW
// - Whitespace around = is trimmed
// - Either side can be quoted with single or double quotes
// - Unquoted sides are trimmed
//
// Quoting matters when a recorded path carries leading or trailing spaces;
// the quotes are stripped and the inner text is kept verbatim.
func ParseMapFile(content []byte) ([]pbxsync.PathMapping, error) {
	var result []pbxsync.PathMapping
	scanner := bufio.NewScanner(bytes.NewReader(content))
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Find the first = character
		eqIndex := strings.Index(line, "=")
		if eqIndex == -1 {
			return nil, fmt.Errorf("line %d: invalid format, expected OLD=NEW", lineNum)
		}

		oldPath := unquote(strings.TrimSpace(line[:eqIndex]))
		newPath := unquote(strings.TrimSpace(line[eqIndex+1:]))

		if oldPath == "" {
			return nil, fmt.Errorf("line %d: empty old path", lineNum)
		}
		if newPath == "" {
			return nil, fmt.Errorf("line %d: empty new path", lineNum)
		}

		result = append(result, pbxsync.PathMapping{OldPath: oldPath, NewPath: newPath})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading content: %w", err)
	}

	return result, nil
}

func unquote(value string) string {
	if len(value) >= 2 {
		if (strings.HasPrefix(value, "\"") && strings.HasSuffix(value, "\"")) ||
			(strings.HasPrefix(value, "'") && strings.HasSuffix(value, "'")) {
			return value[1 : len(value)-1]
		}
	}
	return value
}
