package wizards

import (
	"testing"

	"github.com/vvka-141/pbxsync/internal/scaffold"
	"github.com/vvka-141/pbxsync/pkg/pbxsync"
)

func TestDefaultTemplates_MatchScaffold(t *testing.T) {
	for _, info := range DefaultTemplates() {
		if !scaffold.IsValidTemplate(info.Name) {
			t.Errorf("template %q is listed but not embedded", info.Name)
		}
		if info.Description == "" {
			t.Errorf("template %q has no description", info.Name)
		}
	}
}

func TestSeedFromTemplate_Default(t *testing.T) {
	seed, err := seedFromTemplate("default")
	if err != nil {
		t.Fatalf("seedFromTemplate(default) error: %v", err)
	}

	if seed.Manifest != "" {
		t.Errorf("default template manifest = %q, want empty for discovery", seed.Manifest)
	}
	if len(seed.Extensions) != len(pbxsync.DefaultExtensions) {
		t.Errorf("default template extensions = %v, want %v", seed.Extensions, pbxsync.DefaultExtensions)
	}
}

func TestSeedFromTemplate_Full(t *testing.T) {
	seed, err := seedFromTemplate("full")
	if err != nil {
		t.Fatalf("seedFromTemplate(full) error: %v", err)
	}

	if seed.Manifest == "" {
		t.Error("full template should set a manifest path")
	}
	if !pbxsync.IsValidBackend(seed.Backend) {
		t.Errorf("full template backend = %q, not a valid backend", seed.Backend)
	}
	if seed.BackupSuffix == "" {
		t.Error("full template should set a backup suffix")
	}
}

func TestSeedFromTemplate_Unknown(t *testing.T) {
	if _, err := seedFromTemplate("enterprise"); err == nil {
		t.Fatal("expected error for unknown template")
	}
}
