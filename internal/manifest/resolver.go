package manifest

import (
	"path"
	"sort"
)

// ResolveUntracked returns the source files with no corresponding file
// reference in the manifest, sorted by relative path.
//
// A file counts as tracked when its base name or its full relative path
// appears in the tracked set. Matching by base name alone is deliberately
// loose: older tools record references by short name only, and a moved file
// that keeps its base name stays tracked under its stale path. Comparison
// is case-sensitive and exact.
func ResolveUntracked(fsFiles []string, tracked map[string]struct{}) []string {
	var untracked []string
	for _, f := range fsFiles {
		if _, ok := tracked[path.Base(f)]; ok {
			continue
		}
		if _, ok := tracked[f]; ok {
			continue
		}
		untracked = append(untracked, f)
	}

	sort.Strings(untracked)
	return untracked
}
