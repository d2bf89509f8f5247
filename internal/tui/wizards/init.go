package wizards

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/pbxsync/internal/config"
	"github.com/vvka-141/pbxsync/internal/scaffold"
	"github.com/vvka-141/pbxsync/internal/tui"
	"github.com/vvka-141/pbxsync/internal/tui/components"
)

// TemplateInfo holds template metadata for display.
type TemplateInfo struct {
	Name        string
	Description string
}

// DefaultTemplates returns the available template information.
func DefaultTemplates() []TemplateInfo {
	return []TemplateInfo{
		{Name: "default", Description: "Tracks .swift files, manifest discovered automatically"},
		{Name: "full", Description: "Every setting spelled out for hand tuning"},
	}
}

// InitResult holds the result of the init wizard.
type InitResult struct {
	Cancelled    bool
	TargetDir    string
	Template     string
	Customized   bool
	ConfigResult ConfigResult
}

// RunInitWizard guides the user through project setup: pick a template,
// then optionally walk the configuration wizard seeded with the template's
// values.
func RunInitWizard(targetDir string) (InitResult, error) {
	if targetDir == "" {
		targetDir = "."
	}

	templates := DefaultTemplates()
	options := make([]components.Option, len(templates))
	for i, t := range templates {
		options[i] = components.Option{
			Label:       t.Name,
			Description: t.Description,
			Value:       t.Name,
		}
	}

	selector := components.NewSelector("pbxsync init - Choose a template", options)
	p := tea.NewProgram(selector, tea.WithAltScreen())

	model, err := p.Run()
	if err != nil {
		return InitResult{Cancelled: true}, err
	}

	sel := model.(components.Selector)
	if sel.Cancelled() || !sel.Submitted() {
		return InitResult{Cancelled: true}, nil
	}

	result := InitResult{
		TargetDir: targetDir,
		Template:  sel.Value(),
	}

	if tui.PromptContinue("Customize the configuration now?") {
		seed, err := seedFromTemplate(result.Template)
		if err != nil {
			return result, err
		}

		cfgResult, err := RunConfigWizard(targetDir, seed)
		if err != nil {
			return result, err
		}
		result.ConfigResult = cfgResult
		result.Customized = !cfgResult.Cancelled
	}

	return result, nil
}

// seedFromTemplate parses a template's configuration so the config wizard
// starts from the template's values instead of blanks.
func seedFromTemplate(templateName string) (config.ProjectConfig, error) {
	content, err := scaffold.TemplateContent(templateName)
	if err != nil {
		return config.ProjectConfig{}, err
	}

	var seed config.ProjectConfig
	if err := yaml.Unmarshal(content, &seed); err != nil {
		return config.ProjectConfig{}, fmt.Errorf("failed to parse template '%s': %w", templateName, err)
	}
	return seed, nil
}

// ShowInitComplete displays the completion message after the configuration
// file is written.
func ShowInitComplete(targetDir, configPath string) {
	absPath, err := filepath.Abs(configPath)
	if err != nil {
		absPath = configPath
	}

	fmt.Println()
	fmt.Printf("%s Project configuration created!\n", tui.SymbolCheck)
	fmt.Println()
	fmt.Printf("  %s\n", absPath)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Printf("  1. Review %s\n", config.ConfigFileName)
	fmt.Printf("  2. Run: pbxsync check %s\n", targetDir)
	fmt.Printf("  3. Run: pbxsync sync %s\n", targetDir)
	fmt.Println()
}
