package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/pbxsync/internal/config"
	"github.com/vvka-141/pbxsync/pkg/pbxsync"
)

// manifestFlags holds the flag values shared by the commands that open a
// manifest (sync, check, rewrite).
type manifestFlags struct {
	manifest     string
	extensions   []string
	exclude      []string
	backend      string
	backupSuffix string
}

// registerManifestFlags registers the shared manifest flags on cmd.
// Not every command uses every flag; pass false to skip the scan flags
// for commands that do not walk the source tree.
func registerManifestFlags(cmd *cobra.Command, flags *manifestFlags, withScanFlags bool) {
	cmd.Flags().StringVarP(&flags.manifest, "manifest", "m", "",
		"Path to project.pbxproj or the .xcodeproj bundle\n"+
			"Precedence: --manifest > $PBXSYNC_MANIFEST > pbxsync.yaml > discovery\n"+
			"(discovery requires exactly one *.xcodeproj bundle under the project path)")

	if withScanFlags {
		cmd.Flags().StringSliceVarP(&flags.extensions, "ext", "e", nil,
			"Source file extensions to track (can be specified multiple times)\n"+
				"Precedence: --ext > $PBXSYNC_EXTENSIONS > pbxsync.yaml > .swift\n"+
				"Example: --ext .swift --ext .m")
		cmd.Flags().StringSliceVar(&flags.exclude, "exclude", nil,
			"Directory names to skip while scanning, matched at any depth\n"+
				"Hidden directories, 'build' and 'DerivedData' are always skipped")
	}

	cmd.Flags().StringVar(&flags.backend, "backend", "",
		"Manifest edit backend: splice|records\n"+
			"splice keeps untouched lines byte-identical (default)\n"+
			"records re-serializes the parsed record model")
	cmd.Flags().StringVar(&flags.backupSuffix, "backup-suffix", "",
		"Suffix appended to the manifest path for the first-run backup\n"+
			"(default: "+pbxsync.DefaultBackupSuffix+")")

	_ = cmd.RegisterFlagCompletionFunc("backend", completeBackendNames)
}

// runSettings is the fully resolved configuration shared by the manifest
// commands. Precedence per value: flag > environment > pbxsync.yaml >
// built-in default.
type runSettings struct {
	Manifest     string
	Extensions   []string
	ExcludeDirs  []string
	Backend      string
	BackupSuffix string
}

// resolveRunSettings merges CLI flags, PBXSYNC_* environment variables and
// pbxsync.yaml into the effective settings for one run.
func resolveRunSettings(projectPath string, flags *manifestFlags, verbose bool) (runSettings, error) {
	_ = godotenv.Load()

	projectCfg, err := loadProjectConfig(projectPath)
	if err != nil {
		return runSettings{}, err
	}
	if projectCfg == nil {
		projectCfg = &config.ProjectConfig{}
	}

	// Environment beats the config file.
	config.ApplyEnvOverrides(projectCfg)

	// Flags beat everything.
	settings := runSettings{
		Manifest:     firstNonEmpty(flags.manifest, projectCfg.Manifest),
		Extensions:   firstNonEmptyList(flags.extensions, projectCfg.Extensions),
		ExcludeDirs:  firstNonEmptyList(flags.exclude, projectCfg.Exclude),
		Backend:      firstNonEmpty(flags.backend, projectCfg.Backend),
		BackupSuffix: firstNonEmpty(flags.backupSuffix, projectCfg.BackupSuffix),
	}

	if settings.Backend != "" && !pbxsync.IsValidBackend(settings.Backend) {
		return runSettings{}, fmt.Errorf("unknown backend %q (valid: splice, records): %w",
			settings.Backend, pbxsync.ErrInvalidConfig)
	}

	if verbose {
		logSettingsVerbose(projectPath, settings)
	}

	return settings, nil
}

// loadProjectConfig loads godotenv and project configuration.
// Returns nil config if pbxsync.yaml does not exist (not an error).
func loadProjectConfig(projectPath string) (*config.ProjectConfig, error) {
	projectCfg, err := config.Load(projectPath)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, nil // Config file not found is not an error
		}
		return nil, fmt.Errorf("failed to load %s: %w", config.ConfigFileName, err)
	}
	return projectCfg, nil
}

// logSettingsVerbose logs the resolved settings when verbose mode is enabled.
func logSettingsVerbose(projectPath string, settings runSettings) {
	fmt.Fprintf(os.Stderr, "[VERBOSE] Settings resolved:\n")
	fmt.Fprintf(os.Stderr, "  Project: %s\n", projectPath)
	if settings.Manifest != "" {
		fmt.Fprintf(os.Stderr, "  Manifest: %s\n", settings.Manifest)
	} else {
		fmt.Fprintf(os.Stderr, "  Manifest: (discovered)\n")
	}
	fmt.Fprintf(os.Stderr, "  Extensions: %v\n", orDefault(settings.Extensions, pbxsync.DefaultExtensions))
	fmt.Fprintf(os.Stderr, "  Exclude: %v\n", append(append([]string{}, pbxsync.DefaultExcludedDirs...), settings.ExcludeDirs...))
	fmt.Fprintf(os.Stderr, "  Backend: %s\n", firstNonEmpty(settings.Backend, pbxsync.DefaultBackend))
	fmt.Fprintf(os.Stderr, "  Backup suffix: %s\n", firstNonEmpty(settings.BackupSuffix, pbxsync.DefaultBackupSuffix))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstNonEmptyList(lists ...[]string) []string {
	for _, l := range lists {
		if len(l) > 0 {
			return l
		}
	}
	return nil
}

func orDefault(list, fallback []string) []string {
	if len(list) > 0 {
		return list
	}
	return fallback
}
