package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/pbxsync/internal/files/loader"
	"github.com/vvka-141/pbxsync/internal/logging"
	"github.com/vvka-141/pbxsync/internal/report"
	"github.com/vvka-141/pbxsync/internal/services"
	"github.com/vvka-141/pbxsync/internal/ui"
	"github.com/vvka-141/pbxsync/pkg/pbxsync"
)

var checkCmd = &cobra.Command{
	Use:   "check <project_path>",
	Short: "Report untracked source files without modifying anything",
	Long: `Check scans the project tree and reports which source files the build
manifest does not track. Nothing is written: no manifest edit, no backup.

Files whose paths would need quoting are listed with the reason they
cannot be added automatically.

Arguments:
  project_path    Root directory scanned for source files

Examples:
  # What would 'pbxsync sync' add?
  pbxsync check .

  # CI gate: fail the build when untracked files exist
  pbxsync check . --strict

  # Check Objective-C sources too
  pbxsync check . --ext .swift --ext .m`,
	Args:              RequireProjectPath,
	ValidArgsFunction: completeDirectories,
	RunE:              runCheck,
}

type checkFlagValues struct {
	manifestFlags
	strict bool
}

var checkFlags checkFlagValues

func init() {
	rootCmd.AddCommand(checkCmd)

	registerManifestFlags(checkCmd, &checkFlags.manifestFlags, true)

	checkCmd.Flags().BoolVar(&checkFlags.strict, "strict", false,
		"Exit non-zero when untracked files exist (CI gate)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	projectPath := args[0]
	verbose := getVerboseFlag(cmd)

	settings, err := resolveRunSettings(projectPath, &checkFlags.manifestFlags, verbose)
	if err != nil {
		return err
	}

	config := pbxsync.SyncConfig{
		ProjectPath:  projectPath,
		ManifestPath: settings.Manifest,
		Extensions:   settings.Extensions,
		ExcludeDirs:  settings.ExcludeDirs,
		Backend:      settings.Backend,
		DryRun:       true,
		Verbose:      verbose,
	}

	// The rendered report is the command's output; service progress chatter
	// would only duplicate it. Verbose mode brings the full log back.
	var logger pbxsync.Logger = logging.NewNullLogger()
	if verbose {
		logger = logging.NewConsoleLogger(true)
	}
	syncer := services.NewSyncService(loader.NewLoader(), ui.NewAutoApprover(verbose), logger)

	rep, err := syncer.Sync(context.Background(), config)
	// Unsupported paths are part of the check report, not a failure of
	// the check itself.
	if err != nil && !errors.Is(err, pbxsync.ErrUnsupportedPath) {
		return fmt.Errorf("check failed: %w", err)
	}

	report.RenderCheck(cmd.OutOrStdout(), rep)

	if untracked := len(rep.Added) + len(rep.Skipped); checkFlags.strict && untracked > 0 {
		return fmt.Errorf("strict mode: %d untracked source file(s) under %s", untracked, projectPath)
	}

	return nil
}
