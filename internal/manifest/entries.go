package manifest

import (
	"fmt"
	"path"
	"strings"

	"github.com/vvka-141/pbxsync/pkg/pbxsync"
)

// FileTypeForPath returns the descriptor file type token recorded on new
// file references, derived from the file extension.
func FileTypeForPath(p string) string {
	switch strings.ToLower(path.Ext(p)) {
	case ".swift":
		return "sourcecode.swift"
	case ".m":
		return "sourcecode.c.objc"
	case ".mm":
		return "sourcecode.cpp.objcpp"
	case ".h":
		return "sourcecode.c.h"
	case ".c":
		return "sourcecode.c.c"
	case ".cpp", ".cc":
		return "sourcecode.cpp.cpp"
	case ".metal":
		return "sourcecode.metal"
	default:
		return "text"
	}
}

// ValidatePath rejects paths that would require the quoted entry form.
// The entry builders emit bare values only, so every character must come
// from the unquoted-safe set.
func ValidatePath(relPath string) error {
	if pbxsync.NeedsQuoting(relPath) {
		return fmt.Errorf("%w: %q contains characters outside [A-Za-z0-9_./]", pbxsync.ErrUnsupportedPath, relPath)
	}
	return nil
}

// BuildFileLine renders one build file entry linking refID into the
// compiled sources.
func BuildFileLine(buildID, refID, displayName string) string {
	return fmt.Sprintf("\t\t%s /* %s in Sources */ = {isa = PBXBuildFile; fileRef = %s /* %s */; };\n", buildID, displayName, refID, displayName)
}

// FileReferenceLine renders one file reference entry with a bare path value.
func FileReferenceLine(refID, displayName, relPath string) string {
	return fmt.Sprintf("\t\t%s /* %s */ = {isa = PBXFileReference; lastKnownFileType = %s; path = %s; sourceTree = \"<group>\"; };\n", refID, displayName, FileTypeForPath(relPath), relPath)
}

// MembershipLine renders one entry of the sources phase files list.
func MembershipLine(buildID, displayName string) string {
	return fmt.Sprintf("\t\t\t\t%s /* %s in Sources */,\n", buildID, displayName)
}

// EncodePathValue renders a path field value, using the quoted form when
// the record previously used it or the value itself requires quoting.
func EncodePathValue(p string, quoted bool) string {
	if quoted || pbxsync.NeedsQuoting(p) {
		return fmt.Sprintf("%q", p)
	}
	return p
}
