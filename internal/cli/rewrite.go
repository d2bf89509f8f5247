package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/pbxsync/internal/files/loader"
	"github.com/vvka-141/pbxsync/internal/logging"
	"github.com/vvka-141/pbxsync/internal/mapping"
	"github.com/vvka-141/pbxsync/internal/report"
	"github.com/vvka-141/pbxsync/internal/services"
	"github.com/vvka-141/pbxsync/pkg/pbxsync"
)

var rewriteCmd = &cobra.Command{
	Use:   "rewrite <project_path>",
	Short: "Rewrite file reference paths in the build manifest",
	Long: `Rewrite replaces path values on existing file references, used when
source files move between directories.

Each mapping replaces the path of exactly the references whose current
path matches OLD. Only the path field changes; identifiers, display
names and build entries stay untouched. Mappings that match nothing are
reported and the rest of the batch still applies.

Mappings come from two sources, applied in order:
1. --map-file files, in the order given (lines of OLD=NEW, # comments
   and blank lines ignored, values may be quoted)
2. --rewrite pairs, in the order given

Arguments:
  project_path    Used to discover the manifest unless --manifest is set

Examples:
  # One file moved
  pbxsync rewrite . --rewrite Sources/Old.swift=Sources/New.swift

  # Several moves, previewed first
  pbxsync rewrite . \
    --rewrite App/A.swift=Core/A.swift \
    --rewrite App/B.swift=Core/B.swift \
    --dry-run

  # Bulk moves from a file
  pbxsync rewrite . --map-file moves.env`,
	Args:              RequireProjectPath,
	ValidArgsFunction: completeDirectories,
	RunE:              runRewrite,
}

type rewriteFlagValues struct {
	manifestFlags
	pairs    []string
	mapFiles []string
	dryRun   bool
}

var rewriteFlags rewriteFlagValues

func init() {
	rootCmd.AddCommand(rewriteCmd)

	registerManifestFlags(rewriteCmd, &rewriteFlags.manifestFlags, false)

	rewriteCmd.Flags().StringArrayVar(&rewriteFlags.pairs, "rewrite", nil,
		"Path mapping as OLD=NEW (can be specified multiple times)\n"+
			"OLD must match the reference's current path value exactly\n"+
			"Example: --rewrite Sources/Old.swift=Sources/New.swift")
	rewriteCmd.Flags().StringArrayVar(&rewriteFlags.mapFiles, "map-file", nil,
		"Load path mappings from a file of OLD=NEW lines (can be specified multiple times)\n"+
			"Earlier files apply first, --rewrite pairs apply last")
	rewriteCmd.Flags().BoolVar(&rewriteFlags.dryRun, "dry-run", false,
		"Report what would change without writing the manifest or a backup")
}

// buildRewriteConfig builds a RewriteConfig from CLI flags, environment and
// pbxsync.yaml. Extracted for testability.
func buildRewriteConfig(projectPath string, flags *rewriteFlagValues, verbose bool) (pbxsync.RewriteConfig, error) {
	settings, err := resolveRunSettings(projectPath, &flags.manifestFlags, verbose)
	if err != nil {
		return pbxsync.RewriteConfig{}, err
	}

	mappings, err := collectMappings(flags.mapFiles, flags.pairs, verbose)
	if err != nil {
		return pbxsync.RewriteConfig{}, err
	}
	if len(mappings) == 0 {
		return pbxsync.RewriteConfig{}, fmt.Errorf(
			"no path mappings given: %w\n\nProvide at least one mapping:\n  pbxsync rewrite . --rewrite OLD=NEW\n  pbxsync rewrite . --map-file moves.env",
			pbxsync.ErrInvalidConfig)
	}

	return pbxsync.RewriteConfig{
		ProjectPath:  projectPath,
		ManifestPath: settings.Manifest,
		Mappings:     mappings,
		Backend:      settings.Backend,
		DryRun:       flags.dryRun,
		BackupSuffix: settings.BackupSuffix,
		Verbose:      verbose,
	}, nil
}

// collectMappings gathers mappings from map files (in order) and then from
// CLI pairs, preserving application order.
func collectMappings(mapFiles, pairs []string, verbose bool) ([]pbxsync.PathMapping, error) {
	var mappings []pbxsync.PathMapping

	for _, mapFile := range mapFiles {
		if verbose {
			fmt.Fprintf(os.Stderr, "[VERBOSE] Loading path mappings from file: %s\n", mapFile)
		}

		content, err := os.ReadFile(mapFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read map file '%s': %w\n\nTip: Verify the path or use --rewrite to set mappings directly:\n  pbxsync rewrite . --rewrite OLD=NEW", mapFile, err)
		}

		fileMappings, err := mapping.ParseMapFile(content)
		if err != nil {
			return nil, fmt.Errorf("failed to parse map file '%s': %w\n\nTip: Verify the file format (OLD=NEW per line)", mapFile, err)
		}
		mappings = append(mappings, fileMappings...)

		if verbose {
			fmt.Fprintf(os.Stderr, "[VERBOSE] Loaded %d mapping(s) from file (total: %d)\n", len(fileMappings), len(mappings))
		}
	}

	cliMappings, err := mapping.ParsePairs(pairs)
	if err != nil {
		return nil, fmt.Errorf("invalid --rewrite mapping: %w", err)
	}
	mappings = append(mappings, cliMappings...)

	return mappings, nil
}

func runRewrite(cmd *cobra.Command, args []string) error {
	projectPath := args[0]
	verbose := getVerboseFlag(cmd)

	config, err := buildRewriteConfig(projectPath, &rewriteFlags, verbose)
	if err != nil {
		return err
	}

	logger := logging.NewConsoleLogger(verbose)
	rewriter := services.NewRewriteService(loader.NewLoader(), logger)

	rep, err := rewriter.Rewrite(context.Background(), config)
	if rep != nil && rep.ManifestPath != "" {
		report.RenderRewrite(cmd.OutOrStdout(), rep)
	}
	if err != nil {
		return fmt.Errorf("rewrite failed: %w", err)
	}

	return nil
}
