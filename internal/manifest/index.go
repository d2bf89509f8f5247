package manifest

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/vvka-141/pbxsync/pkg/pbxsync"
)

// FileRecord is one parsed file reference entry. Path offsets cover the raw
// value including quotes and are relative to the entry's line; ParseIndex
// converts them to document offsets.
type FileRecord struct {
	ID          string
	DisplayName string
	Path        string // decoded path value, empty when the field is absent
	PathQuoted  bool
	PathStart   int // -1 when the entry has no path field
	PathEnd     int
}

// BuildRecord links a file reference into the compiled sources.
type BuildRecord struct {
	ID          string
	FileRefID   string
	DisplayName string
}

// MembershipRecord is one entry of the sources phase files list.
type MembershipRecord struct {
	ID          string
	DisplayName string
}

var (
	fileRefEntryPattern    = regexp.MustCompile(`^[ \t]*([0-9A-Fa-f]{6,})\s+/\*\s*(.+?)\s*\*/\s*=\s*\{isa = PBXFileReference;`)
	buildFileEntryPattern  = regexp.MustCompile(`^[ \t]*([0-9A-Fa-f]{6,})\s+/\*\s*(.+?)\s+in\s+[^*]+\*/\s*=\s*\{isa = PBXBuildFile;`)
	fileRefFieldPattern    = regexp.MustCompile(`fileRef\s*=\s*([0-9A-Fa-f]{6,})`)
	pathFieldPattern       = regexp.MustCompile(`path\s*=\s*("(?:[^"\\]|\\.)*"|[^;"]+);`)
	membershipEntryPattern = regexp.MustCompile(`^[ \t]*([0-9A-Fa-f]{6,})\s+/\*\s*(.+?)\s+in\s+[^*]+\*/,`)
	identifierRunPattern   = regexp.MustCompile(`[0-9A-Fa-f]+`)
)

// ParseFileRefEntry parses one file reference entry line. It reports false
// for lines that are not entries (markers, blanks, unrelated records).
func ParseFileRefEntry(line []byte) (FileRecord, bool) {
	m := fileRefEntryPattern.FindSubmatch(line)
	if m == nil {
		return FileRecord{}, false
	}

	rec := FileRecord{
		ID:          string(m[1]),
		DisplayName: string(m[2]),
		PathStart:   -1,
		PathEnd:     -1,
	}
	if loc := pathFieldPattern.FindSubmatchIndex(line); loc != nil {
		raw := string(line[loc[2]:loc[3]])
		rec.PathStart = loc[2]
		rec.PathEnd = loc[3]
		rec.PathQuoted = strings.HasPrefix(raw, `"`)
		rec.Path = decodePathValue(raw)
	}
	return rec, true
}

// ParseBuildFileEntry parses one build file entry line.
func ParseBuildFileEntry(line []byte) (BuildRecord, bool) {
	m := buildFileEntryPattern.FindSubmatch(line)
	if m == nil {
		return BuildRecord{}, false
	}

	rec := BuildRecord{ID: string(m[1]), DisplayName: string(m[2])}
	if fm := fileRefFieldPattern.FindSubmatch(line); fm != nil {
		rec.FileRefID = string(fm[1])
	}
	return rec, true
}

// ParseMembershipEntry parses one line of the sources phase files list.
func ParseMembershipEntry(line []byte) (MembershipRecord, bool) {
	m := membershipEntryPattern.FindSubmatch(line)
	if m == nil {
		return MembershipRecord{}, false
	}
	return MembershipRecord{ID: string(m[1]), DisplayName: string(m[2])}, true
}

// HarvestIdentifiers adds every token with the standard identifier shape
// found in text to set. Uniqueness must hold against the whole manifest,
// not only the sections the synchronizer edits.
func HarvestIdentifiers(text []byte, set map[string]struct{}) {
	for _, loc := range identifierRunPattern.FindAllIndex(text, -1) {
		if loc[1]-loc[0] == pbxsync.IdentifierLength {
			set[string(text[loc[0]:loc[1]])] = struct{}{}
		}
	}
}

// Index is the in-memory view of every record the synchronizer can see:
// parsed entries of the three editable sections plus the set of all
// identifiers present anywhere in the text.
type Index struct {
	FileRefs    []FileRecord
	BuildFiles  []BuildRecord
	Memberships []MembershipRecord

	identifiers map[string]struct{}
}

// ParseIndex extracts records from a parsed document. FileRecord path
// offsets are converted to document coordinates.
func ParseIndex(doc *Document) *Index {
	ix := &Index{identifiers: make(map[string]struct{})}

	refBase := doc.SectionBodyStart(SectionFileReference)
	forEachLine(doc.SectionBody(SectionFileReference), func(offset int, line []byte) {
		rec, ok := ParseFileRefEntry(line)
		if !ok {
			return
		}

		if rec.PathStart >= 0 {
			rec.PathStart += refBase + offset
			rec.PathEnd += refBase + offset
		}

		ix.FileRefs = append(ix.FileRefs, rec)
		ix.identifiers[rec.ID] = struct{}{}
	})

	forEachLine(doc.SectionBody(SectionBuildFile), func(offset int, line []byte) {
		rec, ok := ParseBuildFileEntry(line)
		if !ok {
			return
		}

		ix.BuildFiles = append(ix.BuildFiles, rec)
		ix.identifiers[rec.ID] = struct{}{}
		if rec.FileRefID != "" {
			ix.identifiers[rec.FileRefID] = struct{}{}
		}
	})

	forEachLine(doc.SectionBody(SectionMembership), func(offset int, line []byte) {
		rec, ok := ParseMembershipEntry(line)
		if !ok {
			return
		}

		ix.Memberships = append(ix.Memberships, rec)
		ix.identifiers[rec.ID] = struct{}{}
	})

	HarvestIdentifiers(doc.Content(), ix.identifiers)

	return ix
}

// Identifiers returns every identifier present in the manifest. The map is
// shared; callers treat it as read-only.
func (ix *Index) Identifiers() map[string]struct{} {
	return ix.identifiers
}

// AddIdentifier records an identifier issued during the current run so later
// lookups see it as taken.
func (ix *Index) AddIdentifier(id string) {
	ix.identifiers[id] = struct{}{}
}

// TrackedNames returns the union of every file reference's display name and
// path value, the set the tracked-file check matches against.
func (ix *Index) TrackedNames() map[string]struct{} {
	names := make(map[string]struct{}, len(ix.FileRefs)*2)
	for _, rec := range ix.FileRefs {
		if rec.DisplayName != "" {
			names[rec.DisplayName] = struct{}{}
		}
		if rec.Path != "" {
			names[rec.Path] = struct{}{}
		}
	}
	return names
}

// FileRefByPath returns the first file reference whose current path value
// exactly matches p.
func (ix *Index) FileRefByPath(p string) (*FileRecord, bool) {
	for i := range ix.FileRefs {
		if ix.FileRefs[i].Path == p {
			return &ix.FileRefs[i], true
		}
	}
	return nil, false
}

// forEachLine invokes fn for every line of body with the line's offset
// relative to the body start. Lines exclude their terminating newline.
func forEachLine(body []byte, fn func(offset int, line []byte)) {
	off := 0
	for off < len(body) {
		nl := bytes.IndexByte(body[off:], '\n')
		if nl < 0 {
			fn(off, body[off:])
			return
		}
		fn(off, body[off:off+nl])
		off += nl + 1
	}
}

// decodePathValue strips the quoted form down to the recorded path.
func decodePathValue(raw string) string {
	if !strings.HasPrefix(raw, `"`) {
		return strings.TrimSpace(raw)
	}

	s := strings.TrimPrefix(raw, `"`)
	s = strings.TrimSuffix(s, `"`)
	s = strings.ReplaceAll(s, `\"`, `"`)
	s = strings.ReplaceAll(s, `\\`, `\`)
	return s
}
