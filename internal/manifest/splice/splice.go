package splice

import (
	"bytes"
	"fmt"
	"path"
	"sort"

	"github.com/vvka-141/pbxsync/internal/manifest"
	"github.com/vvka-141/pbxsync/pkg/pbxsync"
)

// edit is one staged mutation of the original text: replace the byte range
// [at, at+deleteLen) with insert. Pure insertions have deleteLen 0.
type edit struct {
	at        int
	deleteLen int
	insert    string
}

// Synchronizer edits the manifest through byte-offset bookkeeping over the
// original text. Mutations are staged as an ordered edit list and applied in
// a single pass at Serialize time, so marker positions are located exactly
// once and never re-discovered after a splice.
type Synchronizer struct {
	allocator pbxsync.IdentifierAllocator

	doc   *manifest.Document
	index *manifest.Index
	edits []edit

	// pathEdits maps a file record (by index slice position) to its staged
	// path edit so repeated rewrites of one record replace the staged value
	// instead of stacking overlapping edits.
	pathEdits map[int]int
	// refLineEdits maps records inserted this run to their staged file
	// reference line, which a rewrite must regenerate in place.
	refLineEdits map[int]int
}

var _ pbxsync.ManifestSynchronizer = (*Synchronizer)(nil)

// New creates a text-splice synchronizer.
func New(allocator pbxsync.IdentifierAllocator) *Synchronizer {
	if allocator == nil {
		panic("allocator cannot be nil")
	}
	return &Synchronizer{allocator: allocator}
}

// Load parses the manifest text and indexes its records. It must be called
// before any other method and resets all staged edits.
func (s *Synchronizer) Load(content []byte) error {
	doc, err := manifest.Parse(content)
	if err != nil {
		return err
	}

	s.doc = doc
	s.index = manifest.ParseIndex(doc)
	s.edits = nil
	s.pathEdits = make(map[int]int)
	s.refLineEdits = make(map[int]int)
	return nil
}

// TrackedNames returns the union of display names and path values of every
// file reference, including ones inserted during this run.
func (s *Synchronizer) TrackedNames() map[string]struct{} {
	if s.index == nil {
		return nil
	}
	return s.index.TrackedNames()
}

// InsertFile stages one new file: a file reference, a build file entry, and
// a membership entry, each at its section's insertion point. The three edits
// are constructed in full before any of them is staged, so a validation
// failure leaves the model untouched.
func (s *Synchronizer) InsertFile(relPath string) (*pbxsync.FileInsertion, error) {
	if s.doc == nil {
		return nil, fmt.Errorf("manifest not loaded")
	}

	if err := manifest.ValidatePath(relPath); err != nil {
		return nil, err
	}
	displayName := path.Base(relPath)

	refID, err := s.allocator.Allocate(s.index.Identifiers())
	if err != nil {
		return nil, err
	}
	buildID, err := s.allocator.Allocate(s.index.Identifiers())
	if err != nil {
		return nil, err
	}

	refLine := manifest.FileReferenceLine(refID, displayName, relPath)
	buildLine := manifest.BuildFileLine(buildID, refID, displayName)
	memberLine := manifest.MembershipLine(buildID, displayName)

	s.edits = append(s.edits, edit{at: s.doc.InsertionPoint(manifest.SectionFileReference), insert: refLine})
	s.refLineEdits[len(s.index.FileRefs)] = len(s.edits) - 1
	s.edits = append(s.edits,
		edit{at: s.doc.InsertionPoint(manifest.SectionBuildFile), insert: buildLine},
		edit{at: s.doc.InsertionPoint(manifest.SectionMembership), insert: memberLine},
	)

	s.index.FileRefs = append(s.index.FileRefs, manifest.FileRecord{
		ID:          refID,
		DisplayName: displayName,
		Path:        relPath,
		PathStart:   -1,
		PathEnd:     -1,
	})
	s.index.BuildFiles = append(s.index.BuildFiles, manifest.BuildRecord{
		ID:          buildID,
		FileRefID:   refID,
		DisplayName: displayName,
	})
	s.index.Memberships = append(s.index.Memberships, manifest.MembershipRecord{
		ID:          buildID,
		DisplayName: displayName,
	})
	s.index.AddIdentifier(refID)
	s.index.AddIdentifier(buildID)

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

// RewritePath replaces the path value of the file reference whose current
// path exactly matches oldPath. Only that one field changes: the record's
// identifier, its build file entry, and its membership entry are untouched.
func (s *Synchronizer) RewritePath(oldPath, newPath string) error {
	if s.doc == nil {
		return fmt.Errorf("manifest not loaded")
	}
	if err := manifest.ValidatePath(newPath); err != nil {
		return err
	}

	for i := range s.index.FileRefs {
		rec := &s.index.FileRefs[i]
		if rec.Path != oldPath {
			continue
		}

		if rec.PathStart >= 0 {
			value := manifest.EncodePathValue(newPath, rec.PathQuoted)
			if ei, ok := s.pathEdits[i]; ok {
				s.edits[ei].insert = value
			} else {
				s.edits = append(s.edits, edit{
					at:        rec.PathStart,
					deleteLen: rec.PathEnd - rec.PathStart,
					insert:    value,
				})
				s.pathEdits[i] = len(s.edits) - 1
			}
		} else {
			// Record was inserted this run; regenerate its staged line.
			ei, ok := s.refLineEdits[i]
			if !ok {
				return fmt.Errorf("no staged entry for inserted file reference %s", rec.ID)
			}
			s.edits[ei].insert = manifest.FileReferenceLine(rec.ID, rec.DisplayName, newPath)
		}

		rec.Path = newPath
		return nil
	}

	return fmt.Errorf("%w: no file reference with path %q", pbxsync.ErrReferenceNotFound, oldPath)
}

// Modified reports whether any edit has been staged since Load.
func (s *Synchronizer) Modified() bool {
	return len(s.edits) > 0
}

// Serialize applies the staged edits to the original text in one pass.
// Bytes outside the edited ranges are reproduced exactly. Insertions at the
// same offset keep their staging order.
func (s *Synchronizer) Serialize() []byte {
	content := s.doc.Content()
	if len(s.edits) == 0 {
		out := make([]byte, len(content))
		copy(out, content)
		return out
	}

	ordered := make([]edit, len(s.edits))
	copy(ordered, s.edits)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].at < ordered[j].at
	})

	var buf bytes.Buffer
	buf.Grow(len(content) + totalInsertLen(ordered))
	prev := 0
	for _, e := range ordered {
		buf.Write(content[prev:e.at])
		buf.WriteString(e.insert)
		prev = e.at + e.deleteLen
	}
	buf.Write(content[prev:])
	return buf.Bytes()
}

func totalInsertLen(edits []edit) int {
	n := 0
	for _, e := range edits {
		n += len(e.insert)
	}
	return n
}
