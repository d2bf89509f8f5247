package records

import (
	"bytes"
	"fmt"
	"path"

	"github.com/vvka-141/pbxsync/internal/manifest"
	"github.com/vvka-141/pbxsync/pkg/pbxsync"
)

// fileRef couples a parsed file reference record with the section line it
// lives on. Path offsets are relative to that line.
type fileRef struct {
	manifest.FileRecord
	lineIdx int
}

// Synchronizer edits the manifest through a structured line model. Load
// decomposes the text into immutable interstitial chunks and one line slice
// per editable section; insertions append rendered entry lines to a section
// and rewrites replace single lines, so serialization is plain concatenation
// with no offset arithmetic over the original text.
type Synchronizer struct {
	allocator pbxsync.IdentifierAllocator

	head []byte // start of text through the build file begin marker line
	mid  []byte // build file end marker line through the file reference begin marker line
	mid2 []byte // file reference end marker line through the membership open line
	tail []byte // membership close line through end of text

	builds  [][]byte
	refs    [][]byte
	members [][]byte

	fileRefs    []fileRef
	identifiers map[string]struct{}
	modified    bool
}

var _ pbxsync.ManifestSynchronizer = (*Synchronizer)(nil)

// New creates a record-model synchronizer.
func New(allocator pbxsync.IdentifierAllocator) *Synchronizer {
	if allocator == nil {
		panic("allocator cannot be nil")
	}
	return &Synchronizer{allocator: allocator}
}

// Load parses the manifest text into the line model. It must be called
// before any other method and discards all previous state.
func (s *Synchronizer) Load(content []byte) error {
	doc, err := manifest.Parse(content)
	if err != nil {
		return err
	}

	buildBody := doc.SectionBodyStart(manifest.SectionBuildFile)
	buildEnd := doc.InsertionPoint(manifest.SectionBuildFile)
	refBody := doc.SectionBodyStart(manifest.SectionFileReference)
	refEnd := doc.InsertionPoint(manifest.SectionFileReference)
	memberBody := doc.SectionBodyStart(manifest.SectionMembership)
	memberEnd := doc.InsertionPoint(manifest.SectionMembership)

	// The line model slices the text into consecutive chunks, which is
	// only sound when the sections appear in their conventional order.
	if buildEnd > refBody || refEnd > memberBody {
		return &manifest.FormatIssue{
			Offset:  -1,
			Message: "sections appear out of their conventional order",
			Hint:    "pbxsync expects PBXBuildFile, then PBXFileReference, then PBXSourcesBuildPhase. Re-saving the project from Xcode restores the standard layout.",
		}
	}

	s.head = content[:buildBody]
	s.mid = content[buildEnd:refBody]
	s.mid2 = content[refEnd:memberBody]
	s.tail = content[memberEnd:]

	s.builds = splitLines(content[buildBody:buildEnd])
	s.refs = splitLines(content[refBody:refEnd])
	s.members = splitLines(content[memberBody:memberEnd])

	s.fileRefs = nil
	s.identifiers = make(map[string]struct{})
	s.modified = false

	for i, line := range s.refs {
		rec, ok := manifest.ParseFileRefEntry(line)
		if !ok {
			continue
		}
		s.fileRefs = append(s.fileRefs, fileRef{FileRecord: rec, lineIdx: i})
		s.identifiers[rec.ID] = struct{}{}
	}
	for _, line := range s.builds {
		rec, ok := manifest.ParseBuildFileEntry(line)
		if !ok {
			continue
		}
		s.identifiers[rec.ID] = struct{}{}
		if rec.FileRefID != "" {
			s.identifiers[rec.FileRefID] = struct{}{}
		}
	}
	for _, line := range s.members {
		rec, ok := manifest.ParseMembershipEntry(line)
		if !ok {
			continue
		}
		s.identifiers[rec.ID] = struct{}{}
	}
	manifest.HarvestIdentifiers(content, s.identifiers)

	return nil
}

// TrackedNames returns the union of display names and path values of every
// file reference, including ones inserted during this run.
func (s *Synchronizer) TrackedNames() map[string]struct{} {
	if s.identifiers == nil {
		return nil
	}

	names := make(map[string]struct{}, len(s.fileRefs)*2)
	for _, rec := range s.fileRefs {
		if rec.DisplayName != "" {
			names[rec.DisplayName] = struct{}{}
		}
		if rec.Path != "" {
			names[rec.Path] = struct{}{}
		}
	}
	return names
}

// InsertFile appends one rendered entry line to each of the three sections.
// All validation and identifier allocation happens before the first append,
// so a failure leaves the model untouched.
func (s *Synchronizer) InsertFile(relPath string) (*pbxsync.FileInsertion, error) {
	if s.identifiers == nil {
		return nil, fmt.Errorf("manifest not loaded")
	}

	if err := manifest.ValidatePath(relPath); err != nil {
		return nil, err
	}
	displayName := path.Base(relPath)

	refID, err := s.allocator.Allocate(s.identifiers)
	if err != nil {
		return nil, err
	}
	buildID, err := s.allocator.Allocate(s.identifiers)
	if err != nil {
		return nil, err
	}

	refLine := []byte(manifest.FileReferenceLine(refID, displayName, relPath))
	rec, ok := manifest.ParseFileRefEntry(refLine)
	if !ok {
		return nil, fmt.Errorf("rendered file reference entry for %q is not parseable", relPath)
	}

	s.refs = append(s.refs, refLine)
	s.fileRefs = append(s.fileRefs, fileRef{FileRecord: rec, lineIdx: len(s.refs) - 1})
	s.builds = append(s.builds, []byte(manifest.BuildFileLine(buildID, refID, displayName)))
	s.members = append(s.members, []byte(manifest.MembershipLine(buildID, displayName)))

	s.identifiers[refID] = struct{}{}
	s.identifiers[buildID] = struct{}{}
	s.modified = true

	return &pbxsync.FileInsertion{
		SourcePath: relPath,
		Reference: pbxsync.FileReference{
			ID:          refID,
			DisplayName: displayName,
			Path:        relPath,
		},
		BuildFile: pbxsync.BuildFileEntry{
			ID:          buildID,
			FileRefID:   refID,
			DisplayName: displayName,
		},
	}, nil
}

// RewritePath replaces the path value on the line of the file reference
// whose current path exactly matches oldPath. The rest of the line and all
// other records are untouched.
func (s *Synchronizer) RewritePath(oldPath, newPath string) error {
	if s.identifiers == nil {
		return fmt.Errorf("manifest not loaded")
	}
	if err := manifest.ValidatePath(newPath); err != nil {
		return err
	}

	for i := range s.fileRefs {
		rec := &s.fileRefs[i]
		if rec.Path != oldPath || rec.PathStart < 0 {
			continue
		}

		line := s.refs[rec.lineIdx]
		value := manifest.EncodePathValue(newPath, rec.PathQuoted)

		edited := make([]byte, 0, len(line)-(rec.PathEnd-rec.PathStart)+len(value))
		edited = append(edited, line[:rec.PathStart]...)
		edited = append(edited, value...)
		edited = append(edited, line[rec.PathEnd:]...)

		s.refs[rec.lineIdx] = edited
		rec.PathEnd = rec.PathStart + len(value)
		rec.Path = newPath
		s.modified = true
		return nil
	}

	return fmt.Errorf("%w: no file reference with path %q", pbxsync.ErrReferenceNotFound, oldPath)
}

// Modified reports whether any mutation has been applied since Load.
func (s *Synchronizer) Modified() bool {
	return s.modified
}

// Serialize reassembles the manifest text from the chunks and section lines.
func (s *Synchronizer) Serialize() []byte {
	var buf bytes.Buffer
	buf.Grow(s.byteLen())

	buf.Write(s.head)
	for _, line := range s.builds {
		buf.Write(line)
	}
	buf.Write(s.mid)
	for _, line := range s.refs {
		buf.Write(line)
	}
	buf.Write(s.mid2)
	for _, line := range s.members {
		buf.Write(line)
	}
	buf.Write(s.tail)

	return buf.Bytes()
}

func (s *Synchronizer) byteLen() int {
	n := len(s.head) + len(s.mid) + len(s.mid2) + len(s.tail)
	for _, line := range s.builds {
		n += len(line)
	}
	for _, line := range s.refs {
		n += len(line)
	}
	for _, line := range s.members {
		n += len(line)
	}
	return n
}

// splitLines cuts body into lines, each keeping its terminating newline.
// A final unterminated line is kept as-is.
func splitLines(body []byte) [][]byte {
	var lines [][]byte
	for off := 0; off < len(body); {
		nl := bytes.IndexByte(body[off:], '\n')
		if nl < 0 {
			lines = append(lines, body[off:])
			break
		}
		lines = append(lines, body[off:off+nl+1])
		off += nl + 1
	}
	return lines
}
