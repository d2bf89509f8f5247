package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/vvka-141/pbxsync/internal/backup"
	"github.com/vvka-141/pbxsync/internal/files/filesystem"
	"github.com/vvka-141/pbxsync/internal/files/loader"
	"github.com/vvka-141/pbxsync/internal/logging"
	"github.com/vvka-141/pbxsync/internal/testing/fixtures"
	"github.com/vvka-141/pbxsync/pkg/pbxsync"
)

func newTestRewriteService(fs filesystem.FileSystemProvider) *RewriteService {
	svc := NewRewriteService(loader.NewLoaderWithFS(fs), logging.NewNullLogger())
	svc.backups = func(suffix string) pbxsync.BackupManager {
		return backup.NewManagerWithFS(suffix, fs)
	}
	return svc
}

func singleFileProject() filesystem.FileSystemProvider {
	return fixtures.NewProjectFixtureBuilder("App").
		WithManifest(fixtures.SingleFileManifest()).
		Build()
}

func TestNewRewriteService_NilDependencies(t *testing.T) {
	fs := filesystem.NewMemoryFileSystem("/project")
	store := loader.NewLoaderWithFS(fs)

	tests := []struct {
		name string
		fn   func()
	}{
		{"nil store", func() { NewRewriteService(nil, logging.NewNullLogger()) }},
		{"nil logger", func() { NewRewriteService(store, nil) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Error("Expected panic for nil dependency")
				}
			}()
			tt.fn()
		})
	}
}

func TestRewrite_InvalidConfig(t *testing.T) {
	svc := newTestRewriteService(singleFileProject())

	tests := []struct {
		name   string
		config pbxsync.RewriteConfig
	}{
		{"no paths at all", pbxsync.RewriteConfig{Mappings: []pbxsync.PathMapping{{OldPath: "a", NewPath: "b"}}}},
		{"no mappings", pbxsync.RewriteConfig{ProjectPath: "/project"}},
		{"empty mapping sides", pbxsync.RewriteConfig{
			ProjectPath: "/project",
			Mappings:    []pbxsync.PathMapping{{OldPath: "", NewPath: "b"}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Rewrite(context.Background(), tt.config)
			if !errors.Is(err, pbxsync.ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestRewrite_AppliesMapping(t *testing.T) {
	fs := singleFileProject()
	svc := newTestRewriteService(fs)

	rep, err := svc.Rewrite(context.Background(), pbxsync.RewriteConfig{
		ProjectPath: "/project",
		Mappings: []pbxsync.PathMapping{
			{OldPath: "Features/Home/HomeView.swift", NewPath: "Views/HomeView.swift"},
		},
	})
	if err != nil {
		t.Fatalf("Rewrite failed: %v", err)
	}

	if len(rep.Rewritten) != 1 || len(rep.Failed) != 0 {
		t.Fatalf("Report = %+v, want 1 rewritten / 0 failed", rep)
	}

	written, _ := fs.ReadFile(testManifestPath)
	if !strings.Contains(string(written), "path = Views/HomeView.swift;") {
		t.Error("New path value missing from the manifest")
	}
	if strings.Contains(string(written), "Features/Home/HomeView.swift") {
		t.Error("Old path value still present")
	}

	backupContent, err := fs.ReadFile(testManifestPath + ".backup")
	if err != nil {
		t.Fatalf("Backup not created: %v", err)
	}
	if string(backupContent) != fixtures.SingleFileManifest() {
		t.Error("Backup should hold the pre-mutation manifest bytes")
	}
}

func TestRewrite_OnlyPathFieldChanges(t *testing.T) {
	fs := singleFileProject()
	svc := newTestRewriteService(fs)

	_, err := svc.Rewrite(context.Background(), pbxsync.RewriteConfig{
		ProjectPath: "/project",
		Mappings: []pbxsync.PathMapping{
			{OldPath: "Features/Home/HomeView.swift", NewPath: "Views/HomeView.swift"},
		},
	})
	if err != nil {
		t.Fatalf("Rewrite failed: %v", err)
	}

	written, _ := fs.ReadFile(testManifestPath)
	want := strings.Replace(fixtures.SingleFileManifest(),
		"path = Features/Home/HomeView.swift;", "path = Views/HomeView.swift;", 1)
	if string(written) != want {
		t.Error("Rewrite must change only the matching path value")
	}
}

func TestRewrite_NotFoundContinuesBatch(t *testing.T) {
	fs := singleFileProject()
	svc := newTestRewriteService(fs)

	rep, err := svc.Rewrite(context.Background(), pbxsync.RewriteConfig{
		ProjectPath: "/project",
		Mappings: []pbxsync.PathMapping{
			{OldPath: "DoesNotExist.swift", NewPath: "Elsewhere.swift"},
			{OldPath: "Features/Home/HomeView.swift", NewPath: "Views/HomeView.swift"},
		},
	})

	if !errors.Is(err, pbxsync.ErrReferenceNotFound) {
		t.Errorf("Expected the first failure as run error, got %v", err)
	}
	if pbxsync.ExitCodeForError(err) != pbxsync.ExitReferenceNotFound {
		t.Errorf("Exit code = %d, want %d", pbxsync.ExitCodeForError(err), pbxsync.ExitReferenceNotFound)
	}
	if len(rep.Rewritten) != 1 || len(rep.Failed) != 1 {
		t.Fatalf("Report = %+v, want 1 rewritten / 1 failed", rep)
	}

	written, _ := fs.ReadFile(testManifestPath)
	if !strings.Contains(string(written), "path = Views/HomeView.swift;") {
		t.Error("Successful mapping must be persisted despite the failed one")
	}
}

func TestRewrite_NothingMatchedLeavesManifestUntouched(t *testing.T) {
	fs := singleFileProject()
	svc := newTestRewriteService(fs)

	rep, err := svc.Rewrite(context.Background(), pbxsync.RewriteConfig{
		ProjectPath: "/project",
		Mappings: []pbxsync.PathMapping{
			{OldPath: "DoesNotExist.swift", NewPath: "Elsewhere.swift"},
		},
	})

	if !errors.Is(err, pbxsync.ErrReferenceNotFound) {
		t.Errorf("Expected ErrReferenceNotFound, got %v", err)
	}
	if !rep.NothingToDo {
		t.Error("Expected a nothing-to-do report")
	}

	if content, _ := fs.ReadFile(testManifestPath); string(content) != fixtures.SingleFileManifest() {
		t.Error("Manifest must stay untouched when no mapping matches")
	}
	if _, err := fs.ReadFile(testManifestPath + ".backup"); err == nil {
		t.Error("No backup when nothing is written")
	}
}

func TestRewrite_DryRunWritesNothing(t *testing.T) {
	fs := singleFileProject()
	svc := newTestRewriteService(fs)

	rep, err := svc.Rewrite(context.Background(), pbxsync.RewriteConfig{
		ProjectPath: "/project",
		DryRun:      true,
		Mappings: []pbxsync.PathMapping{
			{OldPath: "Features/Home/HomeView.swift", NewPath: "Views/HomeView.swift"},
		},
	})
	if err != nil {
		t.Fatalf("Rewrite failed: %v", err)
	}

	if !rep.DryRun || len(rep.Rewritten) != 1 {
		t.Errorf("Dry-run report = %+v, want 1 staged rewrite", rep)
	}
	if content, _ := fs.ReadFile(testManifestPath); string(content) != fixtures.SingleFileManifest() {
		t.Error("Dry run must not write the manifest")
	}
}

func TestRewrite_ExplicitManifestPath(t *testing.T) {
	fs := singleFileProject()
	svc := newTestRewriteService(fs)

	rep, err := svc.Rewrite(context.Background(), pbxsync.RewriteConfig{
		ManifestPath: testManifestPath,
		Mappings: []pbxsync.PathMapping{
			{OldPath: "Features/Home/HomeView.swift", NewPath: "Views/HomeView.swift"},
		},
	})
	if err != nil {
		t.Fatalf("Rewrite failed: %v", err)
	}
	if rep.ManifestPath != testManifestPath {
		t.Errorf("ManifestPath = %q", rep.ManifestPath)
	}
}

func TestRewrite_UnsupportedNewPath(t *testing.T) {
	fs := singleFileProject()
	svc := newTestRewriteService(fs)

	rep, err := svc.Rewrite(context.Background(), pbxsync.RewriteConfig{
		ProjectPath: "/project",
		Mappings: []pbxsync.PathMapping{
			{OldPath: "Features/Home/HomeView.swift", NewPath: "Views With Spaces/HomeView.swift"},
		},
	})

	if !errors.Is(err, pbxsync.ErrUnsupportedPath) {
		t.Errorf("Expected ErrUnsupportedPath, got %v", err)
	}
	if len(rep.Failed) != 1 {
		t.Errorf("Failed = %+v, want the unsupported mapping recorded", rep.Failed)
	}
	if content, _ := fs.ReadFile(testManifestPath); string(content) != fixtures.SingleFileManifest() {
		t.Error("Manifest must stay untouched")
	}
}

func TestRewrite_FormatError(t *testing.T) {
	broken := strings.Replace(fixtures.SingleFileManifest(),
		"/* End PBXBuildFile section */", "", 1)
	fs := filesystem.NewMemoryFileSystem("/project")
	fs.AddFile("App.xcodeproj/project.pbxproj", broken)
	svc := newTestRewriteService(fs)

	_, err := svc.Rewrite(context.Background(), pbxsync.RewriteConfig{
		ProjectPath: "/project",
		Mappings: []pbxsync.PathMapping{
			{OldPath: "Features/Home/HomeView.swift", NewPath: "Views/HomeView.swift"},
		},
	})
	if !errors.Is(err, pbxsync.ErrManifestFormat) {
		t.Errorf("Expected ErrManifestFormat, got %v", err)
	}
}
