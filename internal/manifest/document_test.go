package manifest

import (
	"errors"
	"strings"
	"testing"

	"github.com/vvka-141/pbxsync/internal/testing/fixtures"
	"github.com/vvka-141/pbxsync/pkg/pbxsync"
)

func TestParse_ValidManifest(t *testing.T) {
	doc, err := Parse([]byte(fixtures.SingleFileManifest()))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	content := doc.Content()
	tests := []struct {
		kind      SectionKind
		endMarker string
	}{
		{SectionBuildFile, endBuildFileMarker},
		{SectionFileReference, endFileReferenceMarker},
		{SectionSourcesPhase, endSourcesPhaseMarker},
		{SectionMembership, membershipCloseMarker},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			ip := doc.InsertionPoint(tt.kind)
			if ip <= 0 || ip >= len(content) {
				t.Fatalf("InsertionPoint(%v) = %d, out of range", tt.kind, ip)
			}

			// The insertion point is the start of the end marker's line.
			rest := string(content[ip:])
			if !strings.Contains(firstLine(rest), tt.endMarker) {
				t.Errorf("line at insertion point %d = %q, want it to hold %q", ip, firstLine(rest), tt.endMarker)
			}
			if ip > 0 && content[ip-1] != '\n' {
				t.Errorf("insertion point %d is not at a line start", ip)
			}
		})
	}
}

func TestParse_SectionBody(t *testing.T) {
	doc, err := Parse([]byte(fixtures.SingleFileManifest()))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	body := string(doc.SectionBody(SectionFileReference))
	if !strings.Contains(body, "HomeView.swift") {
		t.Errorf("file reference body does not contain the tracked entry: %q", body)
	}
	if strings.Contains(body, beginFileReferenceMarker) || strings.Contains(body, endFileReferenceMarker) {
		t.Error("section body must exclude the marker lines")
	}

	membership := string(doc.SectionBody(SectionMembership))
	if !strings.Contains(membership, "HomeView.swift in Sources") {
		t.Errorf("membership body does not contain the tracked entry: %q", membership)
	}
	if strings.Contains(membership, membershipOpenMarker) {
		t.Error("membership body must start after the opening line")
	}
}

func TestParse_MissingMarkers(t *testing.T) {
	tests := []struct {
		name   string
		marker string
	}{
		{"missing build file begin", beginBuildFileMarker},
		{"missing build file end", endBuildFileMarker},
		{"missing file reference begin", beginFileReferenceMarker},
		{"missing file reference end", endFileReferenceMarker},
		{"missing sources phase begin", beginSourcesPhaseMarker},
		{"missing sources phase end", endSourcesPhaseMarker},
		{"missing files list", membershipOpenMarker},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := strings.Replace(fixtures.EmptyManifest(), tt.marker, "", 1)

			_, err := Parse([]byte(text))
			if err == nil {
				t.Fatal("Parse() expected error, got nil")
			}
			if !errors.Is(err, pbxsync.ErrManifestFormat) {
				t.Errorf("error = %v, want ErrManifestFormat", err)
			}

			var issue *FormatIssue
			if !errors.As(err, &issue) {
				t.Fatalf("error = %T, want *FormatIssue", err)
			}
			if issue.Marker != tt.marker {
				t.Errorf("issue.Marker = %q, want %q", issue.Marker, tt.marker)
			}
			if issue.Hint == "" {
				t.Error("issue.Hint is empty, want a repair suggestion")
			}
		})
	}
}

func TestParse_UnterminatedFilesList(t *testing.T) {
	// The group section also closes a list with ");", so anchor the removal
	// to the line that only the sources phase contains.
	text := strings.Replace(fixtures.EmptyManifest(),
		"\t\t\t);\n\t\t\trunOnlyForDeploymentPostprocessing",
		"\t\t\trunOnlyForDeploymentPostprocessing", 1)

	_, err := Parse([]byte(text))
	if err == nil {
		t.Fatal("Parse() expected error, got nil")
	}
	if !errors.Is(err, pbxsync.ErrManifestFormat) {
		t.Errorf("error = %v, want ErrManifestFormat", err)
	}

	var issue *FormatIssue
	if !errors.As(err, &issue) {
		t.Fatalf("error = %T, want *FormatIssue", err)
	}
	if issue.Marker != membershipCloseMarker {
		t.Errorf("issue.Marker = %q, want %q", issue.Marker, membershipCloseMarker)
	}
	if issue.Offset < 0 {
		t.Errorf("issue.Offset = %d, want the search position", issue.Offset)
	}
}

func TestParse_EndMarkerBeforeBegin(t *testing.T) {
	// An end marker appearing only before its begin marker means the begin
	// marker has no matching end after it.
	text := fixtures.EmptyManifest()
	text = strings.Replace(text, endBuildFileMarker+"\n", "", 1)
	text = strings.Replace(text, beginBuildFileMarker, endBuildFileMarker+"\n"+beginBuildFileMarker, 1)

	_, err := Parse([]byte(text))
	if err == nil {
		t.Fatal("Parse() expected error, got nil")
	}
	if !errors.Is(err, pbxsync.ErrManifestFormat) {
		t.Errorf("error = %v, want ErrManifestFormat", err)
	}
}

func TestParse_RealWorldSample(t *testing.T) {
	doc, err := Parse([]byte(fixtures.SamplePBXProj()))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	// The frameworks phase carries its own files list; the membership span
	// must resolve to the one inside the sources phase.
	body := string(doc.SectionBody(SectionMembership))
	if !strings.Contains(body, "AppDelegate.swift in Sources") {
		t.Errorf("membership body = %q, want the sources phase entries", body)
	}
	if strings.Contains(body, "Frameworks") {
		t.Error("membership body leaked into the frameworks phase")
	}

	if doc.SectionBodyStart(SectionMembership) <= doc.SectionBodyStart(SectionSourcesPhase) {
		t.Error("membership body must start inside the sources phase")
	}
	if doc.InsertionPoint(SectionMembership) >= doc.InsertionPoint(SectionSourcesPhase) {
		t.Error("membership must close before the sources phase end marker")
	}
}

func TestParse_MembershipInsertionPreservesIndent(t *testing.T) {
	doc, err := Parse([]byte(fixtures.EmptyManifest()))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	ip := doc.InsertionPoint(SectionMembership)
	line := firstLine(string(doc.Content()[ip:]))
	if line != "\t\t\t);" {
		t.Errorf("membership closing line = %q, want %q", line, "\t\t\t);")
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
