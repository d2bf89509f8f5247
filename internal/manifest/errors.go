package manifest

import (
	"fmt"

	"github.com/vvka-141/pbxsync/pkg/pbxsync"
)

// FormatIssue is a structured parse error with context and a helpful hint.
// It records which marker the parser was looking for, where the search gave
// up, and how to repair the manifest. It matches pbxsync.ErrManifestFormat
// under errors.Is.
type FormatIssue struct {
	Marker  string // marker text involved, verbatim (empty if not about one marker)
	Offset  int    // byte offset where the problem was detected (-1 if unknown)
	Message string // primary error message
	Hint    string // actionable suggestion for fixing
}

// Error implements the error interface with rich formatting.
func (e *FormatIssue) Error() string {
	msg := fmt.Sprintf("manifest format error: %s", e.Message)
	if e.Marker != "" {
		msg = fmt.Sprintf("manifest format error [marker: %s]: %s", e.Marker, e.Message)
	}

	if e.Offset >= 0 {
		msg += fmt.Sprintf(" (near byte %d)", e.Offset)
	}

	if e.Hint != "" {
		msg += "\n\nHint: " + e.Hint
	}

	return msg
}

// Unwrap lets errors.Is callers match the ErrManifestFormat sentinel.
func (e *FormatIssue) Unwrap() error {
	return pbxsync.ErrManifestFormat
}
