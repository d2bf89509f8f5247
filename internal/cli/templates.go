package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/pbxsync/internal/scaffold"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Manage configuration templates",
	Long: `List and describe the available pbxsync.yaml templates.

Templates provide different starting points for your project
configuration, from minimal defaults to a fully spelled-out file.`,
}

var templatesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available templates",
	Long:  `List all available configuration templates with descriptions.`,
	RunE:  runTemplatesList,
}

var templatesDescribeCmd = &cobra.Command{
	Use:               "describe <template_name>",
	Short:             "Show detailed information about a template",
	Long:              `Show detailed information about a specific template including the settings it writes.`,
	Args:              RequireTemplateName,
	ValidArgsFunction: completeTemplateNames,
	RunE:              runTemplatesDescribe,
}

func init() {
	rootCmd.AddCommand(templatesCmd)
	templatesCmd.AddCommand(templatesListCmd)
	templatesCmd.AddCommand(templatesDescribeCmd)
}

func runTemplatesList(cmd *cobra.Command, args []string) error {
	templates, err := scaffold.ListTemplates()
	if err != nil {
		return fmt.Errorf("failed to list templates: %w", err)
	}

	fmt.Fprintln(os.Stderr, "Available templates:")
	fmt.Fprintln(os.Stderr)

	// Template descriptions
	descriptions := getTemplateDescriptions()

	for _, t := range templates {
		desc, ok := descriptions[t]
		if !ok {
			desc = TemplateDescription{
				Short: "No description available",
				Long:  "",
			}
		}

		fmt.Fprintf(os.Stderr, "  %-12s %s\n", t, desc.Short)
		if desc.Long != "" {
			fmt.Fprintf(os.Stderr, "               %s\n", desc.Long)
		}
		if desc.BestFor != "" {
			fmt.Fprintf(os.Stderr, "               Best for: %s\n", desc.BestFor)
		}
		fmt.Fprintln(os.Stderr)
	}

	fmt.Fprintln(os.Stderr, "Use: pbxsync init --template <template_name>")
	return nil
}

func runTemplatesDescribe(cmd *cobra.Command, args []string) error {
	templateName := args[0]

	if !scaffold.IsValidTemplate(templateName) {
		templates, _ := scaffold.ListTemplates()
		return fmt.Errorf("template '%s' not found. Available templates: %v\n\nUse 'pbxsync templates list' to see all templates", templateName, templates)
	}

	// Get template description
	descriptions := getTemplateDescriptions()
	desc, ok := descriptions[templateName]
	if !ok {
		return fmt.Errorf("no description available for template '%s'", templateName)
	}

	// Print detailed description
	fmt.Fprintf(os.Stderr, "Template: %s\n", templateName)
	fmt.Fprintf(os.Stderr, "Description: %s\n", desc.Short)
	if desc.Long != "" {
		fmt.Fprintf(os.Stderr, "\n%s\n", desc.Long)
	}

	if len(desc.Settings) > 0 {
		fmt.Fprintln(os.Stderr, "\nSettings:")
		for _, item := range desc.Settings {
			fmt.Fprintf(os.Stderr, "  %s\n", item)
		}
	}

	if desc.BestFor != "" {
		fmt.Fprintf(os.Stderr, "\nBest for: %s\n", desc.BestFor)
	}

	fmt.Fprintf(os.Stderr, "\nUsage:\n  pbxsync init --template %s\n", templateName)

	return nil
}

// TemplateDescription contains metadata about a template
type TemplateDescription struct {
	Short    string
	Long     string
	Settings []string
	BestFor  string
}

// getTemplateDescriptions returns descriptions for all templates
func getTemplateDescriptions() map[string]TemplateDescription {
	return map[string]TemplateDescription{
		"default": {
			Short: "Minimal config with sensible defaults",
			Long:  "Tracks .swift files and discovers the manifest from the project root. Every other setting is a commented-out hint.",
			Settings: []string{
				"extensions: [.swift]",
				"exclude: [build, DerivedData]",
				"manifest: (discovered)",
			},
			BestFor: "Single-target Swift projects, quick starts",
		},
		"full": {
			Short: "Every setting spelled out",
			Long:  "A complete configuration with all fields set explicitly, ready to be edited by hand.",
			Settings: []string{
				"manifest: App.xcodeproj/project.pbxproj",
				"extensions: [.swift, .m, .h]",
				"exclude: [build, DerivedData, Pods, Carthage]",
				"backend: splice",
				"backup_suffix: .backup",
			},
			BestFor: "Mixed Swift/Objective-C projects, hand tuning",
		},
	}
}
