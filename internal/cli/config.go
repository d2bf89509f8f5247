package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/pbxsync/internal/config"
	"github.com/vvka-141/pbxsync/internal/tui"
	"github.com/vvka-141/pbxsync/internal/tui/wizards"
)

var configCmd = &cobra.Command{
	Use:   "config [path]",
	Short: "Interactively create or edit pbxsync.yaml",
	Long: `Launches an interactive wizard to create or edit pbxsync.yaml.

The wizard guides you through:
  1. Manifest path (tab completion, empty means discovery)
  2. Tracked source extensions
  3. Excluded directory names
  4. Edit backend (splice or records)
  5. Backup suffix

An existing pbxsync.yaml pre-fills the wizard, so this is also the way
to adjust a single setting without touching the file by hand.

This command requires an interactive terminal. For non-interactive use,
edit pbxsync.yaml directly or use PBXSYNC_* environment variables.

Examples:
  # Edit config in the current directory
  pbxsync config

  # Edit config in a specific project directory
  pbxsync config ./MyApp`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeDirectories,
	RunE:              runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	targetDir := "."
	if len(args) > 0 {
		targetDir = args[0]
	}

	// Require interactive terminal
	if !tui.IsInteractive() {
		return fmt.Errorf("config command requires an interactive terminal\n"+
			"For non-interactive use, edit %s directly or use PBXSYNC_* environment variables", config.ConfigFileName)
	}

	// Seed the wizard from the existing config, if any.
	var seed config.ProjectConfig
	existingCfg, err := loadProjectConfig(targetDir)
	if err != nil {
		return err
	}
	if existingCfg != nil {
		fmt.Printf("Found existing %s\n", config.ConfigFileName)
		if !tui.PromptContinue("Overwrite existing configuration?") {
			fmt.Println("Cancelled.")
			return nil
		}
		seed = *existingCfg
	}

	result, err := wizards.RunConfigWizard(targetDir, seed)
	if err != nil {
		return fmt.Errorf("config wizard failed: %w", err)
	}
	if result.Cancelled {
		fmt.Println("Cancelled.")
		return nil
	}

	if err := config.Save(targetDir, &result.Config); err != nil {
		return err
	}

	fmt.Printf("\n%s Configuration saved to %s\n", tui.SymbolCheck, result.SavePath)
	return nil
}
