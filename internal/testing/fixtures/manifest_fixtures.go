package fixtures

import (
	"fmt"
	"strings"

	"github.com/vvka-141/pbxsync/internal/files/filesystem"
)

// ManifestBuilder provides a fluent API for generating project manifest text
// used in parser, mutator, and synchronizer tests. The generated text follows
// the real descriptor layout: a UTF-8 header, the three marker-delimited
// sections the synchronizer edits, a group section it must leave untouched,
// and a sources build phase holding the membership list.
//
// Example usage:
//
//	text := NewManifestBuilder().
//	    AddTrackedFile("HomeView.swift", "Features/Home/HomeView.swift").
//	    Build()
type ManifestBuilder struct {
	refs    []refEntry
	builds  []buildEntry
	members []memberEntry
	nextID  int
}

type refEntry struct {
	id      string
	display string
	path    string
	quoted  bool
}

type buildEntry struct {
	id      string
	refID   string
	display string
}

type memberEntry struct {
	id      string
	display string
}

// NewManifestBuilder creates an empty manifest builder.
func NewManifestBuilder() *ManifestBuilder {
	return &ManifestBuilder{nextID: 1}
}

// ID returns the deterministic fixture identifier for the given ordinal,
// a 24-character uppercase hex token like real record identifiers.
func ID(n int) string {
	return fmt.Sprintf("%024X", n)
}

func (b *ManifestBuilder) allocID() string {
	id := ID(b.nextID)
	b.nextID++
	return id
}

// AddTrackedFile adds a fully tracked file: one file reference, one build
// file entry referencing it, and one membership entry. The display name is
// the base name of path.
func (b *ManifestBuilder) AddTrackedFile(display, path string) *ManifestBuilder {
	refID := b.allocID()
	buildID := b.allocID()
	b.refs = append(b.refs, refEntry{id: refID, display: display, path: path})
	b.builds = append(b.builds, buildEntry{id: buildID, refID: refID, display: display})
	b.members = append(b.members, memberEntry{id: buildID, display: display})
	return b
}

// AddFileReference adds only a file reference record, with a bare path value.
// Useful for manifests where a file is referenced but not compiled.
func (b *ManifestBuilder) AddFileReference(display, path string) *ManifestBuilder {
	b.refs = append(b.refs, refEntry{id: b.allocID(), display: display, path: path})
	return b
}

// AddQuotedFileReference adds a file reference whose path value is written
// in the quoted form, as produced for paths with spaces or other special
// characters.
func (b *ManifestBuilder) AddQuotedFileReference(display, path string) *ManifestBuilder {
	b.refs = append(b.refs, refEntry{id: b.allocID(), display: display, path: path, quoted: true})
	return b
}

// Build renders the manifest text.
func (b *ManifestBuilder) Build() string {
	var sb strings.Builder

	sb.WriteString("// !$*UTF8*$!\n")
	sb.WriteString("{\n")
	sb.WriteString("\tarchiveVersion = 1;\n")
	sb.WriteString("\tclasses = {\n")
	sb.WriteString("\t};\n")
	sb.WriteString("\tobjectVersion = 56;\n")
	sb.WriteString("\tobjects = {\n")
	sb.WriteString("\n")

	sb.WriteString("/* Begin PBXBuildFile section */\n")
	for _, e := range b.builds {
		fmt.Fprintf(&sb, "\t\t%s /* %s in Sources */ = {isa = PBXBuildFile; fileRef = %s /* %s */; };\n", e.id, e.display, e.refID, e.display)
	}
	sb.WriteString("/* End PBXBuildFile section */\n")
	sb.WriteString("\n")

	sb.WriteString("/* Begin PBXFileReference section */\n")
	for _, e := range b.refs {
		pathValue := e.path
		if e.quoted {
			pathValue = fmt.Sprintf("%q", e.path)
		}
		fmt.Fprintf(&sb, "\t\t%s /* %s */ = {isa = PBXFileReference; lastKnownFileType = sourcecode.swift; path = %s; sourceTree = \"<group>\"; };\n", e.id, e.display, pathValue)
	}
	sb.WriteString("/* End PBXFileReference section */\n")
	sb.WriteString("\n")

	sb.WriteString("/* Begin PBXGroup section */\n")
	sb.WriteString("\t\tFDFD00000000000000000001 /* MainGroup */ = {\n")
	sb.WriteString("\t\t\tisa = PBXGroup;\n")
	sb.WriteString("\t\t\tchildren = (\n")
	sb.WriteString("\t\t\t);\n")
	sb.WriteString("\t\t\tsourceTree = \"<group>\";\n")
	sb.WriteString("\t\t};\n")
	sb.WriteString("/* End PBXGroup section */\n")
	sb.WriteString("\n")

	sb.WriteString("/* Begin PBXSourcesBuildPhase section */\n")
	sb.WriteString("\t\tFDFD00000000000000000002 /* Sources */ = {\n")
	sb.WriteString("\t\t\tisa = PBXSourcesBuildPhase;\n")
	sb.WriteString("\t\t\tbuildActionMask = 2147483647;\n")
	sb.WriteString("\t\t\tfiles = (\n")
	for _, e := range b.members {
		fmt.Fprintf(&sb, "\t\t\t\t%s /* %s in Sources */,\n", e.id, e.display)
	}
	sb.WriteString("\t\t\t);\n")
	sb.WriteString("\t\t\trunOnlyForDeploymentPostprocessing = 0;\n")
	sb.WriteString("\t\t};\n")
	sb.WriteString("/* End PBXSourcesBuildPhase section */\n")
	sb.WriteString("\n")

	sb.WriteString("\t};\n")
	sb.WriteString("\trootObject = FDFD00000000000000000003 /* Project object */;\n")
	sb.WriteString("}\n")

	return sb.String()
}

// ============================================================================
// Pre-built Fixtures
// ============================================================================

// EmptyManifest returns a well-formed manifest whose editable sections hold
// no entries.
func EmptyManifest() string {
	return NewManifestBuilder().Build()
}

// SingleFileManifest returns a manifest tracking exactly one file recorded
// with its full relative path.
func SingleFileManifest() string {
	return NewManifestBuilder().
		AddTrackedFile("HomeView.swift", "Features/Home/HomeView.swift").
		Build()
}

// BaseNameManifest returns a manifest tracking one file recorded by base
// name only, the loose form older tools write.
func BaseNameManifest() string {
	return NewManifestBuilder().
		AddTrackedFile("AppDelegate.swift", "AppDelegate.swift").
		Build()
}

// ProjectFixtureBuilder builds an in-memory project checkout: a manifest
// inside the project bundle plus source files on disk.
//
// Example usage:
//
//	fs := NewProjectFixtureBuilder("App").
//	    WithManifest(EmptyManifest()).
//	    AddSource("App/AppDelegate.swift", "import UIKit").
//	    Build()
type ProjectFixtureBuilder struct {
	appName  string
	manifest string
	files    map[string]string
}

// NewProjectFixtureBuilder creates a project fixture builder. The manifest
// path is "<appName>.xcodeproj/project.pbxproj" under the project root.
func NewProjectFixtureBuilder(appName string) *ProjectFixtureBuilder {
	return &ProjectFixtureBuilder{
		appName:  appName,
		manifest: EmptyManifest(),
		files:    make(map[string]string),
	}
}

// WithManifest replaces the default empty manifest text.
func (b *ProjectFixtureBuilder) WithManifest(text string) *ProjectFixtureBuilder {
	b.manifest = text
	return b
}

// AddSource adds a source file at the given project-relative path.
func (b *ProjectFixtureBuilder) AddSource(path, content string) *ProjectFixtureBuilder {
	b.files[path] = content
	return b
}

// ManifestPath returns the project-relative manifest location.
func (b *ProjectFixtureBuilder) ManifestPath() string {
	return fmt.Sprintf("%s.xcodeproj/project.pbxproj", b.appName)
}

// Build generates the filesystem.FileSystemProvider from the accumulated files.
func (b *ProjectFixtureBuilder) Build() filesystem.FileSystemProvider {
	fs := filesystem.NewMemoryFileSystem("/project")

	fs.AddFile(b.ManifestPath(), b.manifest)
	for path, content := range b.files {
		fs.AddFile(path, content)
	}

	return fs
}
