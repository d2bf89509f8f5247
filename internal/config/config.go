package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ProjectConfig holds the per-project settings read from pbxsync.yaml.
// Every field is optional; the zero value means "use the default".
// Precedence when a value is set in several places: flag > environment >
// config file > built-in default.
type ProjectConfig struct {
	// Manifest is the manifest path, relative to the project root or
	// absolute. Empty means discover the *.xcodeproj bundle.
	Manifest string `yaml:"manifest,omitempty"`

	// Extensions is the source file extension allowlist.
	Extensions []string `yaml:"extensions,omitempty"`

	// Exclude lists directory names skipped during scanning, in addition
	// to the built-in exclusions.
	Exclude []string `yaml:"exclude,omitempty"`

	// Backend selects the synchronizer implementation.
	Backend string `yaml:"backend,omitempty"`

	// BackupSuffix overrides the default ".backup" suffix.
	BackupSuffix string `yaml:"backup_suffix,omitempty"`
}

const ConfigFileName = "pbxsync.yaml"

// Path returns the config file location for a project root.
func Path(projectPath string) string {
	return filepath.Join(projectPath, ConfigFileName)
}

// Load reads pbxsync.yaml from the project root.
func Load(projectPath string) (*ProjectConfig, error) {
	data, err := os.ReadFile(Path(projectPath))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes cfg to pbxsync.yaml in the project root, replacing any
// existing file.
func Save(projectPath string, cfg *ProjectConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(Path(projectPath), data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", Path(projectPath), err)
	}
	return nil
}

// ApplyEnvOverrides overlays PBXSYNC_* environment variables onto cfg.
// List-valued variables are comma-separated.
func ApplyEnvOverrides(cfg *ProjectConfig) {
	if v := os.Getenv("PBXSYNC_MANIFEST"); v != "" {
		cfg.Manifest = v
	}
	if v := os.Getenv("PBXSYNC_BACKEND"); v != "" {
		cfg.Backend = v
	}
	if v := os.Getenv("PBXSYNC_BACKUP_SUFFIX"); v != "" {
		cfg.BackupSuffix = v
	}
	if v := os.Getenv("PBXSYNC_EXTENSIONS"); v != "" {
		cfg.Extensions = splitList(v)
	}
	if v := os.Getenv("PBXSYNC_EXCLUDE"); v != "" {
		cfg.Exclude = splitList(v)
	}
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
