package fixtures

import (
	"strings"
	"testing"

	"github.com/vvka-141/pbxsync/internal/files/filesystem"
)

// TestManifestBuilder_Sections validates the generated text contains every
// marker the parser requires.
func TestManifestBuilder_Sections(t *testing.T) {
	text := EmptyManifest()

	markers := []string{
		"/* Begin PBXBuildFile section */",
		"/* End PBXBuildFile section */",
		"/* Begin PBXFileReference section */",
		"/* End PBXFileReference section */",
		"/* Begin PBXSourcesBuildPhase section */",
		"/* End PBXSourcesBuildPhase section */",
		"files = (",
		");",
	}

	for _, marker := range markers {
		if !strings.Contains(text, marker) {
			t.Errorf("manifest missing marker %q", marker)
		}
	}
}

// TestManifestBuilder_TrackedFile validates a tracked file appears in all
// three editable sections with cross-referenced identifiers.
func TestManifestBuilder_TrackedFile(t *testing.T) {
	text := NewManifestBuilder().
		AddTrackedFile("HomeView.swift", "Features/Home/HomeView.swift").
		Build()

	refID := ID(1)
	buildID := ID(2)

	if !strings.Contains(text, refID+" /* HomeView.swift */ = {isa = PBXFileReference;") {
		t.Error("file reference entry missing or malformed")
	}
	if !strings.Contains(text, "path = Features/Home/HomeView.swift;") {
		t.Error("file reference path missing")
	}
	if !strings.Contains(text, buildID+" /* HomeView.swift in Sources */ = {isa = PBXBuildFile; fileRef = "+refID) {
		t.Error("build file entry missing or not cross-referenced")
	}
	if !strings.Contains(text, "\t\t\t\t"+buildID+" /* HomeView.swift in Sources */,") {
		t.Error("membership entry missing")
	}
}

// TestManifestBuilder_QuotedReference validates the quoted path form.
func TestManifestBuilder_QuotedReference(t *testing.T) {
	text := NewManifestBuilder().
		AddQuotedFileReference("My File.swift", "Sources/My File.swift").
		Build()

	if !strings.Contains(text, `path = "Sources/My File.swift";`) {
		t.Error("quoted path value missing")
	}
}

// TestSamplePBXProj_Markers validates the embedded sample carries every
// marker the parser requires plus the surrounding objects the builder
// fixtures leave out.
func TestSamplePBXProj_Markers(t *testing.T) {
	text := SamplePBXProj()

	markers := []string{
		"/* Begin PBXBuildFile section */",
		"/* End PBXBuildFile section */",
		"/* Begin PBXFileReference section */",
		"/* End PBXFileReference section */",
		"/* Begin PBXSourcesBuildPhase section */",
		"/* End PBXSourcesBuildPhase section */",
		"isa = PBXFrameworksBuildPhase;",
		"isa = PBXNativeTarget;",
		"isa = PBXProject;",
		"isa = XCBuildConfiguration;",
		`path = "App/Legacy Parser.swift";`,
	}

	for _, marker := range markers {
		if !strings.Contains(text, marker) {
			t.Errorf("sample manifest missing %q", marker)
		}
	}
}

// TestID_Deterministic validates fixture identifiers are stable and have the
// real record identifier shape.
func TestID_Deterministic(t *testing.T) {
	if ID(1) != ID(1) {
		t.Error("ID() is not deterministic")
	}
	if len(ID(7)) != 24 {
		t.Errorf("ID() length = %d, want 24", len(ID(7)))
	}
	if ID(1) == ID(2) {
		t.Error("distinct ordinals should produce distinct identifiers")
	}
}

// TestProjectFixtureBuilder validates the in-memory project checkout layout.
func TestProjectFixtureBuilder(t *testing.T) {
	b := NewProjectFixtureBuilder("App").
		AddSource("App/AppDelegate.swift", "import UIKit").
		AddSource("App/Views/HomeView.swift", "import SwiftUI")
	fs := b.Build()

	assertFileExists(t, fs, "App.xcodeproj/project.pbxproj")
	assertFileExists(t, fs, "App/AppDelegate.swift")
	assertFileExists(t, fs, "App/Views/HomeView.swift")

	if b.ManifestPath() != "App.xcodeproj/project.pbxproj" {
		t.Errorf("ManifestPath() = %q", b.ManifestPath())
	}
}

// Helper function to assert a file exists
func assertFileExists(t *testing.T, fs filesystem.FileSystemProvider, path string) {
	t.Helper()
	content, err := fs.ReadFile(path)
	if err != nil {
		t.Errorf("Expected file %q not found: %v", path, err)
		return
	}
	if len(content) == 0 {
		t.Errorf("File %q has empty content", path)
	}
}
