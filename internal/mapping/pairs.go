package mapping

import (
	"fmt"
	"strings"

	"github.com/vvka-141/pbxsync/pkg/pbxsync"
)

// ParsePairs converts a slice of "OLD=NEW" strings into an ordered list of
// path mappings. Uses strings.Cut() (Go 1.18+) for cleaner parsing.
//
// Example:
//
//	mappings, err := ParsePairs([]string{"Old/View.swift=New/View.swift"})
//	// Returns: []pbxsync.PathMapping{{OldPath: "Old/View.swift", NewPath: "New/View.swift"}}
func ParsePairs(pairs []string) ([]pbxsync.PathMapping, error) {
	result := make([]pbxsync.PathMapping, 0, len(pairs))

	for _, pair := range pairs {
		oldPath, newPath, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("mapping %q is not in OLD=NEW format (example: --rewrite Sources/Old.swift=Sources/New.swift)", pair)
		}

		if oldPath == "" {
			return nil, fmt.Errorf("mapping has empty old path: %q", pair)
		}
		if newPath == "" {
			return nil, fmt.Errorf("mapping has empty new path: %q", pair)
		}

		result = append(result, pbxsync.PathMapping{OldPath: oldPath, NewPath: newPath})
	}

	return result, nil
}
