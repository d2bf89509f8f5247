package manifest

import (
	"bytes"
	"fmt"
)

// SectionKind identifies one of the record groups the synchronizer edits.
type SectionKind int

const (
	// SectionBuildFile holds entries linking file references into build phases.
	SectionBuildFile SectionKind = iota
	// SectionFileReference holds one record per source file known to the manifest.
	SectionFileReference
	// SectionSourcesPhase is the build phase block containing the membership list.
	SectionSourcesPhase
	// SectionMembership is the files list inside the first sources build phase.
	SectionMembership
)

func (k SectionKind) String() string {
	switch k {
	case SectionBuildFile:
		return "PBXBuildFile"
	case SectionFileReference:
		return "PBXFileReference"
	case SectionSourcesPhase:
		return "PBXSourcesBuildPhase"
	case SectionMembership:
		return "sources files list"
	default:
		return fmt.Sprintf("SectionKind(%d)", int(k))
	}
}

// Section markers as they appear verbatim in the manifest text.
const (
	beginBuildFileMarker     = "/* Begin PBXBuildFile section */"
	endBuildFileMarker       = "/* End PBXBuildFile section */"
	beginFileReferenceMarker = "/* Begin PBXFileReference section */"
	endFileReferenceMarker   = "/* End PBXFileReference section */"
	beginSourcesPhaseMarker  = "/* Begin PBXSourcesBuildPhase section */"
	endSourcesPhaseMarker    = "/* End PBXSourcesBuildPhase section */"
	membershipOpenMarker     = "files = ("
	membershipCloseMarker    = ");"
)

// span records the byte range of one section body within the manifest text.
type span struct {
	bodyStart int // first byte after the begin marker's line
	insertAt  int // start of the line holding the end marker
}

// Document is a parsed manifest: the raw text plus byte offsets of every
// section the synchronizer touches. Offsets always refer to the original
// text; the document itself is never mutated.
type Document struct {
	content []byte
	spans   map[SectionKind]span
}

// Parse locates the required section markers and records their byte offsets.
// It fails if any marker is missing or a begin marker has no matching end
// marker after it in the text.
func Parse(content []byte) (*Document, error) {
	doc := &Document{
		content: content,
		spans:   make(map[SectionKind]span),
	}

	pairs := []struct {
		kind  SectionKind
		begin string
		end   string
	}{
		{SectionBuildFile, beginBuildFileMarker, endBuildFileMarker},
		{SectionFileReference, beginFileReferenceMarker, endFileReferenceMarker},
		{SectionSourcesPhase, beginSourcesPhaseMarker, endSourcesPhaseMarker},
	}

	for _, p := range pairs {
		begin := bytes.Index(content, []byte(p.begin))
		if begin < 0 {
			return nil, &FormatIssue{
				Marker:  p.begin,
				Offset:  -1,
				Message: "marker not found",
				Hint:    "The manifest may be truncated or not a project.pbxproj file. Re-saving the project from Xcode restores the standard section comments.",
			}
		}

		afterBegin := begin + len(p.begin)
		endRel := bytes.Index(content[afterBegin:], []byte(p.end))
		if endRel < 0 {
			return nil, &FormatIssue{
				Marker:  p.end,
				Offset:  begin,
				Message: fmt.Sprintf("no occurrence after %s", p.begin),
				Hint:    "Every section needs a matching end comment after its begin comment. Check for a truncated or hand-edited section.",
			}
		}
		end := afterBegin + endRel

		doc.spans[p.kind] = span{
			bodyStart: lineEnd(content, afterBegin),
			insertAt:  lineStart(content, end),
		}
	}

	// The membership list lives inside the first sources build phase.
	phase := doc.spans[SectionSourcesPhase]
	body := content[phase.bodyStart:phase.insertAt]

	open := bytes.Index(body, []byte(membershipOpenMarker))
	if open < 0 {
		return nil, &FormatIssue{
			Marker:  membershipOpenMarker,
			Offset:  phase.bodyStart,
			Message: "sources build phase has no files list",
			Hint:    "The first PBXSourcesBuildPhase block must contain a \"files = (\" list, even when empty.",
		}
	}
	afterOpen := phase.bodyStart + open + len(membershipOpenMarker)

	closeRel := bytes.Index(content[afterOpen:phase.insertAt], []byte(membershipCloseMarker))
	if closeRel < 0 {
		return nil, &FormatIssue{
			Marker:  membershipCloseMarker,
			Offset:  afterOpen,
			Message: "files list is not terminated before the end of the build phase",
			Hint:    "The files list must close with \");\" inside the PBXSourcesBuildPhase section.",
		}
	}

	doc.spans[SectionMembership] = span{
		bodyStart: lineEnd(content, afterOpen),
		insertAt:  lineStart(content, afterOpen+closeRel),
	}

	return doc, nil
}

// Content returns the raw manifest text the document was parsed from.
// Callers must not mutate it.
func (d *Document) Content() []byte {
	return d.content
}

// InsertionPoint returns the canonical insertion offset for the section:
// the start of the line holding its end marker. Entry lines inserted there
// stay inside the section and leave the marker line intact.
func (d *Document) InsertionPoint(kind SectionKind) int {
	return d.spans[kind].insertAt
}

// SectionBodyStart returns the offset of the section's first body byte.
func (d *Document) SectionBodyStart(kind SectionKind) int {
	return d.spans[kind].bodyStart
}

// SectionBody returns the bytes between the section's markers, excluding
// the marker lines themselves.
func (d *Document) SectionBody(kind SectionKind) []byte {
	s := d.spans[kind]
	return d.content[s.bodyStart:s.insertAt]
}

// lineStart returns the offset of the first byte of the line containing pos.
func lineStart(content []byte, pos int) int {
	return bytes.LastIndexByte(content[:pos], '\n') + 1
}

// lineEnd returns the offset just past the newline terminating the line
// containing pos, or len(content) when the final line is unterminated.
func lineEnd(content []byte, pos int) int {
	i := bytes.IndexByte(content[pos:], '\n')
	if i < 0 {
		return len(content)
	}
	return pos + i + 1
}
