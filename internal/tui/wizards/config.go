package wizards

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/pbxsync/internal/config"
	"github.com/vvka-141/pbxsync/internal/tui"
	"github.com/vvka-141/pbxsync/internal/tui/components"
	"github.com/vvka-141/pbxsync/pkg/pbxsync"
)

// ConfigResult holds the result of the config wizard.
type ConfigResult struct {
	Cancelled bool
	Config    config.ProjectConfig
	SavePath  string
}

// ConfigWizard guides users through creating or editing pbxsync.yaml.
type ConfigWizard struct {
	step       configStep
	projectDir string

	// Text steps
	manifest   components.TextField
	extensions components.TextField
	exclude    components.TextField
	suffix     components.TextField

	// Backend choice
	backends   []string
	backendIdx int

	// Result
	result ConfigResult

	// Dimensions
	width  int
	height int

	keys tui.KeyMap
}

type configStep int

const (
	configStepManifest configStep = iota
	configStepExtensions
	configStepExclude
	configStepBackend
	configStepSuffix
	configStepReview
	configStepDone
)

// NewConfigWizard creates a config wizard seeded from an existing
// configuration. Zero-value fields fall back to placeholder hints.
func NewConfigWizard(projectDir string, seed config.ProjectConfig) ConfigWizard {
	manifest := components.NewTextField("Manifest path", "discovered from the project root when empty").
		WithWidth(72).
		WithValue(seed.Manifest).
		WithCompleter(components.NewPathCompleter(false))

	extensions := components.NewTextField("Tracked extensions (comma separated)", strings.Join(pbxsync.DefaultExtensions, ", ")).
		WithWidth(72).
		WithValue(strings.Join(seed.Extensions, ", ")).
		WithValidator(validateExtensionList)

	exclude := components.NewTextField("Excluded directories (comma separated)", strings.Join(pbxsync.DefaultExcludedDirs, ", ")).
		WithWidth(72).
		WithValue(strings.Join(seed.Exclude, ", "))

	suffix := components.NewTextField("Backup suffix", pbxsync.DefaultBackupSuffix).
		WithWidth(72).
		WithValue(seed.BackupSuffix).
		WithValidator(validateBackupSuffix)

	backends := pbxsync.ValidBackends()
	backendIdx := 0
	for i, name := range backends {
		if name == seed.Backend {
			backendIdx = i
		}
	}

	// The first step starts focused; later transitions focus via advance
	// and retreat. The blink command is re-issued from Init.
	manifest.Focus()

	return ConfigWizard{
		step:       configStepManifest,
		projectDir: projectDir,
		manifest:   manifest,
		extensions: extensions,
		exclude:    exclude,
		suffix:     suffix,
		backends:   backends,
		backendIdx: backendIdx,
		width:      80,
		height:     24,
		keys:       tui.DefaultKeyMap(),
	}
}

// Init implements tea.Model.
func (w ConfigWizard) Init() tea.Cmd {
	return w.manifest.Init()
}

// Update implements tea.Model.
func (w ConfigWizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.width = msg.Width
		w.height = msg.Height
		return w, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			w.result.Cancelled = true
			return w, tea.Quit
		}

		switch w.step {
		case configStepBackend:
			return w.updateBackend(msg)
		case configStepReview:
			return w.updateReview(msg)
		default:
			return w.updateTextStep(msg)
		}
	}

	return w, nil
}

func (w ConfigWizard) updateTextStep(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	field := w.currentField()

	switch {
	case key.Matches(msg, w.keys.Select):
		if err := field.Validate(); err != nil {
			return w, nil
		}
		return w.advance()
	case key.Matches(msg, w.keys.Back):
		return w.retreat()
	default:
		var cmd tea.Cmd
		*field, cmd = field.Update(msg)
		return w, cmd
	}
}

func (w ConfigWizard) updateBackend(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, w.keys.Up):
		if w.backendIdx > 0 {
			w.backendIdx--
		}
	case key.Matches(msg, w.keys.Down):
		if w.backendIdx < len(w.backends)-1 {
			w.backendIdx++
		}
	case key.Matches(msg, w.keys.Select):
		return w.advance()
	case key.Matches(msg, w.keys.Back):
		return w.retreat()
	}
	return w, nil
}

func (w ConfigWizard) updateReview(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, w.keys.Select):
		w.buildConfig()
		w.step = configStepDone
		return w, tea.Quit
	case key.Matches(msg, w.keys.Back):
		return w.retreat()
	}
	return w, nil
}

func (w ConfigWizard) advance() (tea.Model, tea.Cmd) {
	if field := w.currentField(); field != nil {
		field.Blur()
	}
	w.step++
	if field := w.currentField(); field != nil {
		return w, field.Focus()
	}
	return w, nil
}

func (w ConfigWizard) retreat() (tea.Model, tea.Cmd) {
	if w.step == configStepManifest {
		w.result.Cancelled = true
		return w, tea.Quit
	}

	if field := w.currentField(); field != nil {
		field.Blur()
	}
	w.step--
	if field := w.currentField(); field != nil {
		return w, field.Focus()
	}
	return w, nil
}

// currentField returns the text field owned by the current step, or nil
// when the step has no free-text input.
func (w *ConfigWizard) currentField() *components.TextField {
	switch w.step {
	case configStepManifest:
		return &w.manifest
	case configStepExtensions:
		return &w.extensions
	case configStepExclude:
		return &w.exclude
	case configStepSuffix:
		return &w.suffix
	}
	return nil
}

func (w *ConfigWizard) buildConfig() {
	cfg := config.ProjectConfig{
		Manifest:     strings.TrimSpace(w.manifest.Value()),
		Extensions:   splitCSV(w.extensions.Value()),
		Exclude:      splitCSV(w.exclude.Value()),
		Backend:      w.backends[w.backendIdx],
		BackupSuffix: strings.TrimSpace(w.suffix.Value()),
	}

	w.result.Config = cfg
	w.result.SavePath = config.Path(w.projectDir)
}

// View implements tea.Model.
func (w ConfigWizard) View() string {
	var b strings.Builder

	b.WriteString(tui.TitleStyle.Render("pbxsync - Configuration Builder"))
	b.WriteString("\n")

	switch w.step {
	case configStepManifest:
		b.WriteString(w.viewTextStep(
			"Manifest",
			"Path to the project.pbxproj or .xcodeproj bundle (tab completes)",
			w.manifest))
	case configStepExtensions:
		b.WriteString(w.viewTextStep(
			"Extensions",
			"Source file extensions to track, leave empty for "+strings.Join(pbxsync.DefaultExtensions, ", "),
			w.extensions))
	case configStepExclude:
		b.WriteString(w.viewTextStep(
			"Excluded directories",
			"Directory names skipped while scanning, matched at any depth",
			w.exclude))
	case configStepBackend:
		b.WriteString(w.viewBackend())
	case configStepSuffix:
		b.WriteString(w.viewTextStep(
			"Backup suffix",
			"Appended to the manifest path for the first-run backup",
			w.suffix))
	case configStepReview:
		b.WriteString(w.viewReview())
	}

	return b.String()
}

func (w ConfigWizard) viewTextStep(subtitle, description string, field components.TextField) string {
	var b strings.Builder

	b.WriteString(tui.SubtitleStyle.Render(subtitle))
	b.WriteString("\n")
	b.WriteString(tui.DescriptionStyle.Render(description))
	b.WriteString("\n\n")
	b.WriteString(field.View())
	b.WriteString("\n")
	b.WriteString(tui.HelpStyle.Render("enter continue • esc back"))

	return b.String()
}

func (w ConfigWizard) viewBackend() string {
	var b strings.Builder

	b.WriteString(tui.SubtitleStyle.Render("Backend"))
	b.WriteString("\n")
	b.WriteString(tui.DescriptionStyle.Render("How the manifest is edited"))
	b.WriteString("\n\n")

	descriptions := map[string]string{
		pbxsync.BackendSplice:  "Targeted byte splices, untouched lines stay byte-identical",
		pbxsync.BackendRecords: "Parsed record model with canonical serialization",
	}

	for i, name := range w.backends {
		cursor := "  "
		style := tui.UnselectedStyle
		symbol := tui.SymbolUnselected

		if i == w.backendIdx {
			cursor = ""
			style = tui.SelectedStyle
			symbol = tui.SymbolSelected
		}

		b.WriteString(cursor)
		b.WriteString(style.Render(symbol + " " + name))
		b.WriteString("\n")
		if desc := descriptions[name]; desc != "" {
			b.WriteString(tui.DescriptionStyle.Render(desc))
			b.WriteString("\n")
		}
	}

	b.WriteString(tui.HelpStyle.Render("\n↑/↓ navigate • enter select • esc back"))

	return b.String()
}

func (w ConfigWizard) viewReview() string {
	var b strings.Builder

	b.WriteString(tui.SubtitleStyle.Render("Review Configuration"))
	b.WriteString("\n\n")

	cfg := config.ProjectConfig{
		Manifest:     strings.TrimSpace(w.manifest.Value()),
		Extensions:   splitCSV(w.extensions.Value()),
		Exclude:      splitCSV(w.exclude.Value()),
		Backend:      w.backends[w.backendIdx],
		BackupSuffix: strings.TrimSpace(w.suffix.Value()),
	}

	yamlBytes, _ := yaml.Marshal(cfg)
	lines := strings.Split(string(yamlBytes), "\n")
	for _, line := range lines {
		b.WriteString(tui.DescriptionStyle.Render("  " + line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(tui.HelpStyle.Render(fmt.Sprintf("enter save to %s • esc go back", config.ConfigFileName)))

	return b.String()
}

// Result returns the wizard result.
func (w ConfigWizard) Result() ConfigResult {
	return w.result
}

// RunConfigWizard executes the config wizard.
func RunConfigWizard(projectDir string, seed config.ProjectConfig) (ConfigResult, error) {
	wizard := NewConfigWizard(projectDir, seed)
	p := tea.NewProgram(wizard, tea.WithAltScreen())

	model, err := p.Run()
	if err != nil {
		return ConfigResult{Cancelled: true}, err
	}

	return model.(ConfigWizard).Result(), nil
}

func validateExtensionList(value string) error {
	for _, ext := range splitCSV(value) {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("extension %q must start with a dot", ext)
		}
	}
	return nil
}

func validateBackupSuffix(value string) error {
	if strings.ContainsAny(value, `/\`) {
		return fmt.Errorf("suffix cannot contain path separators")
	}
	return nil
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	var out []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
