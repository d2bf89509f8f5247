package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vvka-141/pbxsync/internal/config"
	"github.com/vvka-141/pbxsync/pkg/pbxsync"
)

func writeConfigFile(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, config.ConfigFileName), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", config.ConfigFileName, err)
	}
}

func TestResolveRunSettings_Defaults(t *testing.T) {
	blankEnv(t)

	settings, err := resolveRunSettings(t.TempDir(), &manifestFlags{}, false)
	if err != nil {
		t.Fatalf("resolveRunSettings() error = %v", err)
	}

	if settings.Manifest != "" {
		t.Errorf("Manifest = %q, want empty (discovery)", settings.Manifest)
	}
	if settings.Extensions != nil {
		t.Errorf("Extensions = %v, want nil (built-in default)", settings.Extensions)
	}
	if settings.Backend != "" {
		t.Errorf("Backend = %q, want empty", settings.Backend)
	}
	if settings.BackupSuffix != "" {
		t.Errorf("BackupSuffix = %q, want empty", settings.BackupSuffix)
	}
}

func TestResolveRunSettings_ConfigFile(t *testing.T) {
	blankEnv(t)

	dir := t.TempDir()
	writeConfigFile(t, dir, `manifest: App.xcodeproj
extensions:
  - .swift
  - .m
exclude:
  - Vendor
backend: splice
backup_suffix: .bak
`)

	settings, err := resolveRunSettings(dir, &manifestFlags{}, false)
	if err != nil {
		t.Fatalf("resolveRunSettings() error = %v", err)
	}

	if settings.Manifest != "App.xcodeproj" {
		t.Errorf("Manifest = %q", settings.Manifest)
	}
	if len(settings.Extensions) != 2 || settings.Extensions[1] != ".m" {
		t.Errorf("Extensions = %v", settings.Extensions)
	}
	if len(settings.ExcludeDirs) != 1 || settings.ExcludeDirs[0] != "Vendor" {
		t.Errorf("ExcludeDirs = %v", settings.ExcludeDirs)
	}
	if settings.Backend != "splice" {
		t.Errorf("Backend = %q", settings.Backend)
	}
	if settings.BackupSuffix != ".bak" {
		t.Errorf("BackupSuffix = %q", settings.BackupSuffix)
	}
}

func TestResolveRunSettings_EnvBeatsConfigFile(t *testing.T) {
	blankEnv(t)

	dir := t.TempDir()
	writeConfigFile(t, dir, "backend: splice\nmanifest: FromFile.xcodeproj\n")

	t.Setenv("PBXSYNC_BACKEND", "records")
	t.Setenv("PBXSYNC_EXTENSIONS", ".swift, .mm")

	settings, err := resolveRunSettings(dir, &manifestFlags{}, false)
	if err != nil {
		t.Fatalf("resolveRunSettings() error = %v", err)
	}

	if settings.Backend != "records" {
		t.Errorf("Backend = %q, want env value %q", settings.Backend, "records")
	}
	if len(settings.Extensions) != 2 || settings.Extensions[1] != ".mm" {
		t.Errorf("Extensions = %v, want comma-split env value", settings.Extensions)
	}
	// Untouched by env, so the file value survives.
	if settings.Manifest != "FromFile.xcodeproj" {
		t.Errorf("Manifest = %q, want config file value", settings.Manifest)
	}
}

func TestResolveRunSettings_FlagBeatsEnvironment(t *testing.T) {
	blankEnv(t)

	dir := t.TempDir()
	writeConfigFile(t, dir, "manifest: FromFile.xcodeproj\n")
	t.Setenv("PBXSYNC_MANIFEST", "FromEnv.xcodeproj")

	flags := &manifestFlags{manifest: "FromFlag.xcodeproj"}
	settings, err := resolveRunSettings(dir, flags, false)
	if err != nil {
		t.Fatalf("resolveRunSettings() error = %v", err)
	}

	if settings.Manifest != "FromFlag.xcodeproj" {
		t.Errorf("Manifest = %q, want flag value", settings.Manifest)
	}
}

func TestResolveRunSettings_UnknownBackend(t *testing.T) {
	blankEnv(t)

	_, err := resolveRunSettings(t.TempDir(), &manifestFlags{backend: "sqlite"}, false)
	if err == nil {
		t.Fatal("expected error for unknown backend")
	}
	if !errors.Is(err, pbxsync.ErrInvalidConfig) {
		t.Errorf("error = %v, want ErrInvalidConfig", err)
	}
}

func TestResolveRunSettings_MalformedConfigFile(t *testing.T) {
	blankEnv(t)

	dir := t.TempDir()
	writeConfigFile(t, dir, "backend: [this is not\n")

	_, err := resolveRunSettings(dir, &manifestFlags{}, false)
	if err == nil {
		t.Fatal("expected error for malformed config file")
	}
}

func TestResolveRunSettings_MissingConfigFileIsFine(t *testing.T) {
	blankEnv(t)

	if _, err := resolveRunSettings(t.TempDir(), &manifestFlags{}, false); err != nil {
		t.Fatalf("resolveRunSettings() error = %v, want nil when pbxsync.yaml is absent", err)
	}
}

func TestFirstNonEmpty(t *testing.T) {
	if got := firstNonEmpty("", "b", "c"); got != "b" {
		t.Errorf("firstNonEmpty = %q, want %q", got, "b")
	}
	if got := firstNonEmpty("", ""); got != "" {
		t.Errorf("firstNonEmpty = %q, want empty", got)
	}
}

func TestFirstNonEmptyList(t *testing.T) {
	if got := firstNonEmptyList(nil, []string{"x"}); len(got) != 1 || got[0] != "x" {
		t.Errorf("firstNonEmptyList = %v", got)
	}
	if got := firstNonEmptyList(nil, nil); got != nil {
		t.Errorf("firstNonEmptyList = %v, want nil", got)
	}
}

func TestOrDefault(t *testing.T) {
	fallback := []string{".swift"}
	if got := orDefault(nil, fallback); len(got) != 1 || got[0] != ".swift" {
		t.Errorf("orDefault = %v", got)
	}
	if got := orDefault([]string{".m"}, fallback); len(got) != 1 || got[0] != ".m" {
		t.Errorf("orDefault = %v", got)
	}
}
