package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/pbxsync/internal/config"
	"github.com/vvka-141/pbxsync/internal/scaffold"
	"github.com/vvka-141/pbxsync/internal/tui"
	"github.com/vvka-141/pbxsync/internal/tui/wizards"
)

var initCmd = &cobra.Command{
	Use:   "init [target_path]",
	Short: "Create a pbxsync.yaml configuration",
	Long: `Init writes a pbxsync.yaml configuration into the target directory
(default: the current directory).

On an interactive terminal, init opens a wizard: pick a template, then
optionally customize it (manifest path with tab completion, extensions,
excluded directories, backend). Everywhere else the chosen template is
written as-is.

The target should be the project root, next to the *.xcodeproj bundle.

Examples:
  pbxsync init                     # Current directory, wizard on a terminal
  pbxsync init ./MyApp             # Specific project directory
  pbxsync init --template full     # Every setting spelled out
  pbxsync init --list              # Show available templates

Use 'pbxsync templates list' to see all templates with descriptions.`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeDirectories,
	RunE:              runInit,
}

var (
	initTemplate string
	initList     bool
	initForce    bool
)

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringVarP(&initTemplate, "template", "t", "default", "Template to use (default, full)")
	initCmd.Flags().BoolVar(&initList, "list", false, "List available templates")
	initCmd.Flags().BoolVar(&initForce, "force", false, "Replace an existing pbxsync.yaml")

	_ = initCmd.RegisterFlagCompletionFunc("template", completeTemplateNames)
}

func runInit(cmd *cobra.Command, args []string) error {
	// Handle --list flag
	if initList {
		return runTemplatesList(cmd, args)
	}

	targetDir := "."
	if len(args) > 0 {
		targetDir = args[0]
	}
	verbose := getVerboseFlag(cmd)

	// Refuse to clobber an existing configuration before any wizard runs.
	if !initForce {
		if _, err := os.Stat(config.Path(targetDir)); err == nil {
			return fmt.Errorf("'%s' already exists\n\npbxsync init refuses to overwrite an existing configuration.\n\nOptions:\n• Re-run with --force to replace it\n• Edit the file directly\n• Run 'pbxsync config' to change it interactively", config.Path(targetDir))
		}
	}

	if !scaffold.IsValidTemplate(initTemplate) {
		templates, _ := scaffold.ListTemplates()
		return fmt.Errorf("invalid template '%s'. Available templates: %v\n\nUse 'pbxsync templates list' for detailed descriptions", initTemplate, templates)
	}

	// The wizard takes over on a terminal unless a template was picked
	// explicitly on the command line.
	if tui.IsInteractive() && !cmd.Flags().Changed("template") {
		return runInitWizard(targetDir, verbose)
	}

	scaffolder := scaffold.NewScaffolder(verbose)
	configPath, err := scaffolder.CreateConfig(initTemplate, targetDir, initForce)
	if err != nil {
		return err
	}

	wizards.ShowInitComplete(targetDir, configPath)
	return nil
}

// runInitWizard drives the interactive init flow: template selection plus
// an optional customization pass.
func runInitWizard(targetDir string, verbose bool) error {
	result, err := wizards.RunInitWizard(targetDir)
	if err != nil {
		return fmt.Errorf("init wizard failed: %w", err)
	}
	if result.Cancelled {
		fmt.Println("Cancelled.")
		return nil
	}

	var configPath string
	if result.Customized {
		if err := config.Save(targetDir, &result.ConfigResult.Config); err != nil {
			return err
		}
		configPath = result.ConfigResult.SavePath
	} else {
		scaffolder := scaffold.NewScaffolder(verbose)
		configPath, err = scaffolder.CreateConfig(result.Template, targetDir, initForce)
		if err != nil {
			return err
		}
	}

	wizards.ShowInitComplete(targetDir, configPath)
	return nil
}
