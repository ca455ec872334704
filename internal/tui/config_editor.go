package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/quantmind-br/repoextract/internal/config"
	"github.com/quantmind-br/repoextract/internal/git"
)

type editorState int

const (
	editorMenu editorState = iota
	editorForm
	editorConfirm
	editorSaved
	editorError
)

// ConfigOptions contains options for the configuration editor
type ConfigOptions struct {
	Config     *config.Config
	Path       string // where SaveFunc writes, shown after saving
	SaveFunc   func(*config.Config) error
	Accessible bool
	// Resolve reports the effective clone backend; git.Resolve when nil
	Resolve func(config.GitConfig) git.Resolution
}

// ConfigModel edits the configuration file through huh forms. The menu
// shows a summary of every section and the clone backend the current
// values resolve to.
type ConfigModel struct {
	opts    ConfigOptions
	state   editorState
	loaded  ConfigValues
	values  *ConfigValues
	backend git.Resolution
	cursor  int
	form    *huh.Form
	notice  string
	err     error
}

// NewConfigModel creates the configuration editor
func NewConfigModel(opts ConfigOptions) ConfigModel {
	if opts.Resolve == nil {
		opts.Resolve = git.Resolve
	}
	values := FromConfig(opts.Config)
	m := ConfigModel{
		opts:   opts,
		state:  editorMenu,
		loaded: *values,
		values: values,
	}
	m.refreshBackend()
	return m
}

func (m ConfigModel) Init() tea.Cmd {
	return nil
}

// dirty reports whether the values differ from the loaded configuration
func (m ConfigModel) dirty() bool {
	return *m.values != m.loaded
}

func (m *ConfigModel) refreshBackend() {
	m.backend = m.opts.Resolve(config.GitConfig{
		Backend: strings.ToLower(strings.TrimSpace(m.values.GitBackend)),
		Binary:  strings.TrimSpace(m.values.GitBinary),
	})
}

func (m ConfigModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch m.state {
		case editorMenu:
			return m.updateMenu(key)
		case editorConfirm:
			return m.updateConfirm(key)
		case editorSaved, editorError:
			return m, tea.Quit
		case editorForm:
			if key.String() == "esc" {
				m.state = editorMenu
				m.refreshBackend()
				return m, nil
			}
		}
	}
	if m.state == editorForm {
		return m.stepForm(msg)
	}
	return m, nil
}

// stepForm forwards msg to the open form and returns to the menu once it completes
func (m ConfigModel) stepForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.form == nil {
		m.state = editorMenu
		return m, nil
	}
	next, cmd := m.form.Update(msg)
	if f, ok := next.(*huh.Form); ok {
		m.form = f
	}
	if m.form.State == huh.StateCompleted {
		m.state = editorMenu
		m.form = nil
		m.refreshBackend()
		return m, nil
	}
	return m, cmd
}

func (m ConfigModel) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		if m.dirty() {
			m.state = editorConfirm
			return m, nil
		}
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(Categories) {
			m.cursor++
		}

	case "r":
		*m.values = m.loaded
		m.refreshBackend()

	case "s":
		return m.save()

	case "enter":
		if m.cursor == len(Categories) {
			return m.save()
		}
		m.form = GetFormForCategory(Categories[m.cursor].ID, m.values)
		if m.opts.Accessible {
			m.form = m.form.WithTheme(GetAccessibleTheme()).WithAccessible(true)
		}
		m.state = editorForm
		return m, m.form.Init()
	}
	return m, nil
}

func (m ConfigModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		return m.save()
	case "n", "N":
		return m, tea.Quit
	case "c", "esc":
		m.state = editorMenu
	}
	return m, nil
}

// save writes the values. Invalid values keep the editor open with the
// problem shown under the menu.
func (m ConfigModel) save() (tea.Model, tea.Cmd) {
	cfg, err := m.values.ToConfig()
	if err != nil {
		m.state = editorMenu
		m.notice = err.Error()
		return m, nil
	}
	if m.opts.SaveFunc != nil {
		if err := m.opts.SaveFunc(cfg); err != nil {
			m.state = editorError
			m.err = err
			return m, nil
		}
	}
	m.loaded = *m.values
	m.state = editorSaved
	return m, nil
}

func (m ConfigModel) View() string {
	var s strings.Builder
	s.WriteString(TitleStyle.Render("repoextract configuration"))
	s.WriteString("\n\n")

	switch m.state {
	case editorMenu:
		s.WriteString(m.renderMenu())
	case editorForm:
		if m.form != nil {
			s.WriteString(m.form.View())
		}
	case editorConfirm:
		s.WriteString(DialogStyle.BorderForeground(warnColor).
			Render("You have unsaved changes.\n\nSave before quitting?\n\n[y] Yes  [n] No  [c] Cancel"))
	case editorSaved:
		msg := "Configuration saved."
		if m.opts.Path != "" {
			msg = "Configuration saved to " + m.opts.Path
		}
		s.WriteString(SuccessStyle.Render(msg))
		s.WriteString("\n\nPress any key to exit.")
	case editorError:
		s.WriteString(ErrorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		s.WriteString("\n\nPress any key to exit.")
	}
	return s.String()
}

func (m ConfigModel) renderMenu() string {
	rows := make([]string, 0, len(Categories)+1)
	for i, cat := range Categories {
		rows = append(rows, m.menuRow(i, fmt.Sprintf("%-10s %s", cat.Name, DescriptionStyle.Render(cat.Summary(m.values)))))
	}
	save := "Save"
	if m.dirty() {
		save += " *"
	}
	rows = append(rows, "", m.menuRow(len(Categories), save))

	var s strings.Builder
	s.WriteString(lipgloss.JoinVertical(lipgloss.Left, rows...))
	s.WriteString("\n\n")
	s.WriteString(m.renderBackend())
	if m.notice != "" {
		s.WriteString("\n")
		s.WriteString(ErrorStyle.Render(m.notice))
	}
	s.WriteString("\n\n")
	s.WriteString(HelpStyle.Render("↑/↓ navigate • enter edit • s save • r revert • q quit"))
	return s.String()
}

func (m ConfigModel) menuRow(i int, text string) string {
	if i == m.cursor {
		return SelectedStyle.Render("> " + text)
	}
	return UnselectedStyle.Render("  " + text)
}

// renderBackend describes the backend clones will use with the current values
func (m ConfigModel) renderBackend() string {
	r := m.backend
	switch {
	case r.Backend == config.BackendExec && r.BinaryErr != nil:
		return ErrorStyle.Render(fmt.Sprintf("Clone backend: exec, %s not found on PATH; clones will fail", r.Binary))
	case r.Backend == config.BackendExec:
		return SuccessStyle.Render(fmt.Sprintf("Clone backend: exec (%s)", r.BinaryPath))
	case r.Backend == config.BackendGoGit:
		return SuccessStyle.Render("Clone backend: go-git (in-process)")
	default:
		return WarnStyle.Render(fmt.Sprintf("Clone backend: %q is not a known backend", r.Backend))
	}
}

// RunConfig runs the configuration editor until the user quits
func RunConfig(opts ConfigOptions) error {
	p := tea.NewProgram(NewConfigModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
