package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vvka-141/pbxsync/internal/files/loader"
	"github.com/vvka-141/pbxsync/internal/logging"
	"github.com/vvka-141/pbxsync/internal/report"
	"github.com/vvka-141/pbxsync/internal/services"
	"github.com/vvka-141/pbxsync/internal/tui"
	"github.com/vvka-141/pbxsync/internal/ui"
	"github.com/vvka-141/pbxsync/pkg/pbxsync"
)

var syncCmd = &cobra.Command{
	Use:   "sync <project_path>",
	Short: "Add untracked source files to the build manifest",
	Long: `Sync scans the project tree and records every untracked source file
in the Xcode build manifest.

The sync command:
1. Locates the manifest (explicit --manifest, or the single *.xcodeproj
   bundle under the project path)
2. Scans the tree for source files matching the extension allowlist
3. Resolves which files the manifest does not track yet
4. Stages one file reference, one build file, and one compile-phase
   membership entry per untracked file
5. Writes a one-time sibling backup, then persists the manifest

Files whose paths need quoting (spaces, unicode) are skipped and reported;
they never block the rest of the batch. Already-tracked files are left
byte-identical.

Arguments:
  project_path    Root directory scanned for source files.
                  The manifest is discovered under it unless --manifest is set.

Examples:
  # Sync the current directory
  pbxsync sync .

  # Preview without writing, with a unified diff of the pending records
  pbxsync sync . --dry-run --diff

  # Track Objective-C sources too
  pbxsync sync . --ext .swift --ext .m --ext .h

  # Skip vendored trees
  pbxsync sync . --exclude Pods --exclude Carthage

  # CI pipeline: no prompt
  pbxsync sync . --force

  # Explicit manifest path (bundle directory or the file itself)
  pbxsync sync . --manifest App.xcodeproj`,
	Args:              RequireProjectPath,
	ValidArgsFunction: completeDirectories,
	RunE:              runSync,
}

type syncFlagValues struct {
	manifestFlags
	dryRun   bool
	showDiff bool
	force    bool
}

var syncFlags syncFlagValues

func init() {
	rootCmd.AddCommand(syncCmd)

	registerManifestFlags(syncCmd, &syncFlags.manifestFlags, true)

	syncCmd.Flags().BoolVar(&syncFlags.dryRun, "dry-run", false,
		"Report what would change without writing the manifest or a backup")
	syncCmd.Flags().BoolVar(&syncFlags.showDiff, "diff", false,
		"Print a unified diff of the pending manifest changes\n"+
			"Most useful together with --dry-run")
	syncCmd.Flags().BoolVar(&syncFlags.force, "force", false,
		"Skip the interactive write approval\n"+
			"Use for CI/CD pipelines; the first-run backup still protects the manifest")
}

// buildSyncConfig builds a SyncConfig from CLI flags, environment and
// pbxsync.yaml. Extracted for testability.
func buildSyncConfig(projectPath string, flags *syncFlagValues, verbose bool) (pbxsync.SyncConfig, error) {
	settings, err := resolveRunSettings(projectPath, &flags.manifestFlags, verbose)
	if err != nil {
		return pbxsync.SyncConfig{}, err
	}

	return pbxsync.SyncConfig{
		ProjectPath:  projectPath,
		ManifestPath: settings.Manifest,
		Extensions:   settings.Extensions,
		ExcludeDirs:  settings.ExcludeDirs,
		Backend:      settings.Backend,
		DryRun:       flags.dryRun,
		ShowDiff:     flags.showDiff,
		Force:        flags.force,
		BackupSuffix: settings.BackupSuffix,
		Verbose:      verbose,
	}, nil
}

func runSync(cmd *cobra.Command, args []string) error {
	projectPath := args[0]
	verbose := getVerboseFlag(cmd)

	config, err := buildSyncConfig(projectPath, &syncFlags, verbose)
	if err != nil {
		return err
	}

	// Select approver implementation: prompt on a terminal, auto-approve
	// everywhere else (pipelines have no one to ask).
	var approver pbxsync.Approver
	if !config.Force && tui.IsInteractive() {
		approver = ui.NewInteractiveApprover(verbose)
	} else {
		approver = ui.NewAutoApprover(verbose)
	}
	logger := logging.NewConsoleLogger(verbose)

	syncer := services.NewSyncService(loader.NewLoader(), approver, logger)

	// Handle interrupt signals (Ctrl+C, SIGTERM) so a pending approval
	// prompt unblocks instead of leaving the terminal hanging.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr, "\n[INTERRUPT] Received interrupt signal, cancelling...")
		cancel()
	}()

	rep, err := syncer.Sync(ctx, config)
	if rep != nil && rep.ManifestPath != "" {
		report.RenderSync(cmd.OutOrStdout(), rep)
	}
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	return nil
}
