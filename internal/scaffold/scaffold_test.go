package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateConfig_WritesDefaultTemplate(t *testing.T) {
	targetDir := t.TempDir()

	scaffolder := NewScaffolder(false)
	written, err := scaffolder.CreateConfig("default", targetDir, false)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if written != filepath.Join(targetDir, "pbxsync.yaml") {
		t.Errorf("Unexpected written path: %s", written)
	}

	content, err := os.ReadFile(written)
	if err != nil {
		t.Fatalf("Failed to read written config: %v", err)
	}
	if !strings.Contains(string(content), "extensions:") {
		t.Errorf("Expected config to list extensions, got:\n%s", content)
	}
}

func TestCreateConfig_RefusesExistingConfig(t *testing.T) {
	targetDir := t.TempDir()
	existing := filepath.Join(targetDir, "pbxsync.yaml")
	if err := os.WriteFile(existing, []byte("backend: records\n"), 0644); err != nil {
		t.Fatalf("Failed to create existing config: %v", err)
	}

	scaffolder := NewScaffolder(false)
	_, err := scaffolder.CreateConfig("default", targetDir, false)

	if err == nil {
		t.Fatal("Expected error when a configuration already exists, got nil")
	}
	if !strings.Contains(err.Error(), "already exists") {
		t.Errorf("Error message should mention 'already exists', got: %s", err)
	}

	// The existing file must be untouched
	content, readErr := os.ReadFile(existing)
	if readErr != nil {
		t.Fatalf("Failed to re-read existing config: %v", readErr)
	}
	if string(content) != "backend: records\n" {
		t.Errorf("Existing config was modified: %s", content)
	}
}

func TestCreateConfig_ForceOverwrites(t *testing.T) {
	targetDir := t.TempDir()
	existing := filepath.Join(targetDir, "pbxsync.yaml")
	if err := os.WriteFile(existing, []byte("backend: records\n"), 0644); err != nil {
		t.Fatalf("Failed to create existing config: %v", err)
	}

	scaffolder := NewScaffolder(false)
	written, err := scaffolder.CreateConfig("full", targetDir, true)
	if err != nil {
		t.Fatalf("Unexpected error with force: %v", err)
	}

	content, err := os.ReadFile(written)
	if err != nil {
		t.Fatalf("Failed to read written config: %v", err)
	}
	if !strings.Contains(string(content), "backup_suffix:") {
		t.Errorf("Expected full template content, got:\n%s", content)
	}
}

func TestCreateConfig_CreatesTargetDirectory(t *testing.T) {
	targetDir := filepath.Join(t.TempDir(), "nested", "project")

	scaffolder := NewScaffolder(false)
	written, err := scaffolder.CreateConfig("default", targetDir, false)
	if err != nil {
		t.Fatalf("Expected no error for nonexistent directory, got: %v", err)
	}

	if _, err := os.Stat(written); os.IsNotExist(err) {
		t.Error("Expected configuration file to be created")
	}
}

func TestCreateConfig_UnknownTemplate(t *testing.T) {
	scaffolder := NewScaffolder(false)
	_, err := scaffolder.CreateConfig("enterprise", t.TempDir(), false)

	if err == nil {
		t.Fatal("Expected error for unknown template, got nil")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("Error message should mention 'not found', got: %s", err)
	}
}

func TestListTemplates(t *testing.T) {
	templates, err := ListTemplates()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	want := map[string]bool{"default": false, "full": false}
	for _, name := range templates {
		if _, ok := want[name]; !ok {
			t.Errorf("Unexpected template: %s", name)
			continue
		}
		want[name] = true
	}
	for name, seen := range want {
		if !seen {
			t.Errorf("Missing template: %s", name)
		}
	}
}

func TestIsValidTemplate(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
	}{
		{"default", true},
		{"full", true},
		{"enterprise", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsValidTemplate(tt.name); got != tt.valid {
			t.Errorf("IsValidTemplate(%q) = %v, want %v", tt.name, got, tt.valid)
		}
	}
}
