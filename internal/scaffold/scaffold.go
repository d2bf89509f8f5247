package scaffold

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vvka-141/pbxsync/internal/config"
)

//go:embed all:templates
var templatesFS embed.FS

// GetTemplatesFS returns the embedded templates filesystem for testing purposes.
// This allows tests to access embedded templates without filesystem I/O.
func GetTemplatesFS() embed.FS {
	return templatesFS
}

// Scaffolder writes project configuration files from embedded templates
type Scaffolder struct {
	verbose bool
}

// NewScaffolder creates a new Scaffolder instance
func NewScaffolder(verbose bool) *Scaffolder {
	return &Scaffolder{
		verbose: verbose,
	}
}

// CreateConfig writes the named template's configuration file into targetDir
// and returns the path of the written file. An existing configuration is
// never overwritten unless force is set.
func (s *Scaffolder) CreateConfig(templateName, targetDir string, force bool) (string, error) {
	content, err := TemplateContent(templateName)
	if err != nil {
		return "", err
	}

	targetPath := filepath.Join(targetDir, config.ConfigFileName)
	if !force {
		if _, err := os.Stat(targetPath); err == nil {
			return "", fmt.Errorf("'%s' already exists\n\npbxsync init refuses to overwrite an existing configuration.\n\nOptions:\n• Re-run with --force to replace it\n• Edit the file directly\n• Run 'pbxsync config' to change it interactively", targetPath)
		}
	}

	// Create target directory if it doesn't exist
	if err := os.MkdirAll(targetDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create target directory: %w", err)
	}

	s.logVerbose("Writing template '%s' to %s", templateName, targetPath)

	if err := os.WriteFile(targetPath, content, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", targetPath, err)
	}

	s.logVerbose("Configuration created successfully")
	return targetPath, nil
}

// TemplateContent returns the raw configuration file for the named template.
func TemplateContent(templateName string) ([]byte, error) {
	content, err := templatesFS.ReadFile(templatePath(templateName))
	if err != nil {
		return nil, fmt.Errorf("template '%s' not found: %w", templateName, err)
	}
	return content, nil
}

func templatePath(templateName string) string {
	return fmt.Sprintf("templates/%s/%s", templateName, config.ConfigFileName)
}

func (s *Scaffolder) logVerbose(format string, args ...interface{}) {
	if s.verbose {
		fmt.Fprintf(os.Stderr, "[VERBOSE] "+format+"\n", args...)
	}
}

// ListTemplates returns available template names
func ListTemplates() ([]string, error) {
	entries, err := templatesFS.ReadDir("templates")
	if err != nil {
		return nil, err
	}

	var templates []string
	for _, entry := range entries {
		if entry.IsDir() {
			templates = append(templates, entry.Name())
		}
	}

	return templates, nil
}

// IsValidTemplate reports whether the named template exists.
func IsValidTemplate(templateName string) bool {
	_, err := templatesFS.ReadFile(templatePath(templateName))
	return err == nil
}
