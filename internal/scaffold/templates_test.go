package scaffold_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vvka-141/pbxsync/internal/config"
	"github.com/vvka-141/pbxsync/internal/files/filesystem"
	"github.com/vvka-141/pbxsync/internal/scaffold"
	"github.com/vvka-141/pbxsync/pkg/pbxsync"
)

// TestTemplateStructure validates all embedded templates without requiring
// filesystem I/O. The templates are read directly from the embedded FS.
func TestTemplateStructure(t *testing.T) {
	templates := []string{"default", "full"}

	for _, templateName := range templates {
		t.Run(templateName, func(t *testing.T) {
			testTemplateStructure(t, templateName)
		})
	}
}

func testTemplateStructure(t *testing.T, templateName string) {
	t.Helper()

	// Create EmbedFileSystem from embedded templates
	templateRoot := "templates/" + templateName
	efs := filesystem.NewEmbedFileSystem(scaffold.GetTemplatesFS(), templateRoot)

	t.Run("pbxsync.yaml exists", func(t *testing.T) {
		content, err := efs.ReadFile(config.ConfigFileName)
		require.NoError(t, err, "pbxsync.yaml should exist in template")
		require.NotEmpty(t, content, "pbxsync.yaml should not be empty")

		// Every template carries guidance comments for hand editing
		require.Contains(t, string(content), "#", "template should contain comments")
	})

	t.Run("content matches TemplateContent", func(t *testing.T) {
		fromFS, err := efs.ReadFile(config.ConfigFileName)
		require.NoError(t, err)

		fromAPI, err := scaffold.TemplateContent(templateName)
		require.NoError(t, err)
		require.Equal(t, fromFS, fromAPI)
	})
}

// TestTemplateConfigsLoad round-trips each template through the scaffolder
// and the configuration loader, proving init output is immediately usable.
func TestTemplateConfigsLoad(t *testing.T) {
	templates, err := scaffold.ListTemplates()
	require.NoError(t, err)
	require.NotEmpty(t, templates)

	for _, templateName := range templates {
		t.Run(templateName, func(t *testing.T) {
			targetDir := t.TempDir()

			scaffolder := scaffold.NewScaffolder(false)
			_, err := scaffolder.CreateConfig(templateName, targetDir, false)
			require.NoError(t, err)

			cfg, err := config.Load(targetDir)
			require.NoError(t, err, "template %s should parse as valid configuration", templateName)

			if cfg.Backend != "" {
				require.True(t, pbxsync.IsValidBackend(cfg.Backend),
					"template %s names unknown backend %q", templateName, cfg.Backend)
			}
			for _, ext := range cfg.Extensions {
				require.True(t, strings.HasPrefix(ext, "."),
					"template %s extension %q should start with a dot", templateName, ext)
			}
			if cfg.BackupSuffix != "" {
				require.True(t, strings.HasPrefix(cfg.BackupSuffix, "."),
					"template %s backup suffix %q should start with a dot", templateName, cfg.BackupSuffix)
			}
		})
	}
}

// TestTemplateExpectations pins the fields each template is meant to set.
func TestTemplateExpectations(t *testing.T) {
	t.Run("default leaves manifest to discovery", func(t *testing.T) {
		targetDir := t.TempDir()
		scaffolder := scaffold.NewScaffolder(false)
		_, err := scaffolder.CreateConfig("default", targetDir, false)
		require.NoError(t, err)

		cfg, err := config.Load(targetDir)
		require.NoError(t, err)
		require.Empty(t, cfg.Manifest)
		require.Equal(t, pbxsync.DefaultExtensions, cfg.Extensions)
	})

	t.Run("full sets every field", func(t *testing.T) {
		targetDir := t.TempDir()
		scaffolder := scaffold.NewScaffolder(false)
		_, err := scaffolder.CreateConfig("full", targetDir, false)
		require.NoError(t, err)

		cfg, err := config.Load(targetDir)
		require.NoError(t, err)
		require.NotEmpty(t, cfg.Manifest)
		require.NotEmpty(t, cfg.Extensions)
		require.NotEmpty(t, cfg.Exclude)
		require.NotEmpty(t, cfg.Backend)
		require.NotEmpty(t, cfg.BackupSuffix)
	})
}
