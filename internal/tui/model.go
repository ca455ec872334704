package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/quantmind-br/repoextract/internal/domain"
	"github.com/quantmind-br/repoextract/internal/extract"
	"github.com/quantmind-br/repoextract/internal/utils"
)

// Texts shown by the extractor panel
const (
	AppTitle       = "GitHub Repository Extractor"
	AppDescription = "Enter the URL of a GitHub repository below to extract and format its contents.\n" +
		"The file tree and file contents can be pasted directly into an LLM prompt."
	URLPlaceholder = "https://github.com/username/repository.git"
	MsgProcessing  = "Processing repository. Please wait...\n"
	MsgCancelled   = "Extraction cancelled."
	MsgCopied      = "Text has been copied to the clipboard!"
)

// errPanic reports a panic recovered from the extraction goroutine
var errPanic = errors.New("unexpected failure")

// Runner performs one extraction
type Runner interface {
	Run(ctx context.Context, url string, progress extract.ProgressFunc) (*domain.Document, error)
}

type state int

const (
	stateIdle state = iota
	stateProcessing
	stateDone
	stateFailed
)

func (s state) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case stateProcessing:
		return "processing"
	case stateDone:
		return "done"
	case stateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

type focus int

const (
	focusInput focus = iota
	focusOutput
)

// dialog is a modal message box
type dialog struct {
	title string
	body  string
	isErr bool
}

// progressMsg carries one extraction event to the UI loop
type progressMsg struct {
	event  extract.Event
	events <-chan tea.Msg
}

// resultMsg ends an extraction
type resultMsg struct {
	doc *domain.Document
	err error
}

// Options contains options for the extractor panel
type Options struct {
	Runner     Runner
	Clipboard  Clipboard // system clipboard when nil
	Logger     *utils.Logger
	InitialURL string
}

// Model is the state of the extractor panel
type Model struct {
	state  state
	focus  focus
	dialog *dialog

	input   textinput.Model
	output  viewport.Model
	spinner spinner.Model

	text   string
	status string

	runner    Runner
	clipboard Clipboard
	logger    *utils.Logger
	cancel    context.CancelFunc

	width  int
	height int
}

// NewModel creates the extractor panel in the Idle state
func NewModel(opts Options) Model {
	input := textinput.New()
	input.Placeholder = URLPlaceholder
	input.Prompt = "URL: "
	input.CharLimit = 2048
	input.Width = 80
	input.SetValue(strings.TrimSpace(opts.InitialURL))
	input.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(primaryColor)

	clip := opts.Clipboard
	if clip == nil {
		clip = SystemClipboard{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = utils.NewNopLogger()
	}

	return Model{
		state:     stateIdle,
		focus:     focusInput,
		input:     input,
		output:    viewport.New(80, 20),
		spinner:   sp,
		runner:    opts.Runner,
		clipboard: clip,
		logger:    logger.WithComponent("tui"),
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)

	case spinner.TickMsg:
		if m.state != stateProcessing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case progressMsg:
		m.status = describe(msg.event)
		return m, waitForEvent(msg.events)

	case resultMsg:
		return m.finish(msg), nil
	}

	return m.updateFocused(msg)
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == keyQuit {
		if m.cancel != nil {
			m.cancel()
		}
		return m, tea.Quit
	}

	// modal: only dismissal keys reach an open dialog
	if m.dialog != nil {
		switch msg.String() {
		case keySubmit, keyCancel:
			m.dialog = nil
		}
		return m, nil
	}

	switch msg.String() {
	case keyCancel:
		if m.state == stateProcessing {
			if m.cancel != nil {
				m.cancel()
			}
			m.status = "Cancelling..."
			return m, nil
		}
		if m.focus == focusOutput {
			m.setFocus(focusInput)
		}
		return m, nil

	case keyFocus, keyFocusBack:
		if m.focus == focusInput {
			m.setFocus(focusOutput)
		} else {
			m.setFocus(focusInput)
		}
		return m, nil

	case keyExtract:
		return m.startExtract()

	case keySubmit:
		if m.focus == focusInput {
			return m.startExtract()
		}
		return m, nil

	case keyCopy:
		return m.copyOutput(), nil

	case keyClear:
		return m.clearOutput(), nil
	}

	return m.updateFocused(msg)
}

func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.focus == focusInput {
		m.input, cmd = m.input.Update(msg)
	} else {
		m.output, cmd = m.output.Update(msg)
	}
	return m, cmd
}

func (m *Model) setFocus(f focus) {
	m.focus = f
	if f == focusInput {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

// startExtract validates the URL and launches the extraction off the UI loop
func (m Model) startExtract() (tea.Model, tea.Cmd) {
	if m.state == stateProcessing {
		return m, nil
	}

	url := strings.TrimSpace(m.input.Value())
	if url == "" {
		m.dialog = &dialog{title: "Error", body: domain.MsgEmptyURL, isErr: true}
		return m, nil
	}
	if m.runner == nil {
		m.dialog = &dialog{title: "Error", body: "An error occurred: no extractor configured", isErr: true}
		return m, nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.state = stateProcessing
	m.status = "Starting..."
	m.setOutput(MsgProcessing)

	m.logger.Debug().Str("url", url).Msg("Extraction requested")

	events := runExtraction(ctx, m.runner, url)
	return m, tea.Batch(waitForEvent(events), m.spinner.Tick)
}

// runExtraction runs the extraction on its own goroutine. Progress events and
// the final result are delivered on the returned channel, which is closed
// after the result.
func runExtraction(ctx context.Context, runner Runner, url string) <-chan tea.Msg {
	events := make(chan tea.Msg, 16)

	go func() {
		defer close(events)

		var res resultMsg
		func() {
			defer func() {
				if r := recover(); r != nil {
					res = resultMsg{err: fmt.Errorf("%w: %v", errPanic, r)}
				}
			}()
			res.doc, res.err = runner.Run(ctx, url, func(ev extract.Event) {
				select {
				case events <- progressMsg{event: ev, events: events}:
				case <-ctx.Done():
				}
			})
		}()

		events <- res
	}()

	return events
}

// waitForEvent reads the next message of an extraction
func waitForEvent(events <-chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-events
		if !ok {
			return nil
		}
		return msg
	}
}

func (m Model) finish(res resultMsg) Model {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}

	switch {
	case res.err == nil:
		m.state = stateDone
		m.status = fmt.Sprintf("Extracted %d files", res.doc.FileCount())
		m.setOutput(res.doc.String())
		m.logger.Info().Int("files", res.doc.FileCount()).Msg("Extraction shown")

	case errors.Is(res.err, context.Canceled):
		m.state = stateIdle
		m.status = ""
		m.setOutput(MsgCancelled)

	default:
		msg := domain.UserMessage(res.err)
		m.state = stateFailed
		m.status = ""
		m.setOutput("An error occurred:\n" + msg)
		m.dialog = &dialog{title: "Error", body: "An error occurred: " + msg, isErr: true}
		m.logger.Error().Err(res.err).Msg("Extraction failed")
	}

	return m
}

func (m Model) copyOutput() Model {
	if err := m.clipboard.WriteAll(m.text); err != nil {
		m.dialog = &dialog{title: "Error", body: "An error occurred: " + err.Error(), isErr: true}
		return m
	}
	m.dialog = &dialog{title: "Copied", body: MsgCopied}
	return m
}

func (m Model) clearOutput() Model {
	if m.state == stateProcessing {
		return m
	}
	m.state = stateIdle
	m.status = ""
	m.setOutput("")
	return m
}

func (m *Model) setOutput(text string) {
	m.text = text
	m.output.SetContent(text)
	m.output.GotoTop()
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	m.input.Width = max(width-len(m.input.Prompt)-2, 10)

	// title, description, input, status, help and panel border
	chrome := lipgloss.Height(m.header()) + 6
	m.output.Width = max(width-2, 10)
	m.output.Height = max(height-chrome, 3)
}

func describe(ev extract.Event) string {
	switch ev.Stage {
	case extract.StageCloning:
		return "Cloning repository..."
	case extract.StageTree:
		return "Building file tree..."
	case extract.StageReading:
		return fmt.Sprintf("Reading files %d/%d", ev.Done, ev.Total)
	case extract.StageDone:
		return "Formatting output..."
	default:
		return ""
	}
}

func (m Model) header() string {
	return TitleStyle.Render(AppTitle) + "\n" + DescriptionStyle.Render(AppDescription)
}

func (m Model) View() string {
	if m.dialog != nil {
		return m.renderDialog()
	}

	var s strings.Builder

	s.WriteString(m.header())
	s.WriteString("\n\n")
	s.WriteString(m.input.View())
	s.WriteString("\n")

	switch {
	case m.state == stateProcessing:
		s.WriteString(m.spinner.View() + " " + m.status)
	case m.state == stateFailed:
		s.WriteString(ErrorStyle.Render("Extraction failed"))
	case m.status != "":
		s.WriteString(SuccessStyle.Render(m.status))
	}
	s.WriteString("\n")

	panel := PanelStyle
	if m.focus == focusOutput {
		panel = FocusedPanelStyle
	}
	s.WriteString(panel.Render(m.output.View()))
	s.WriteString("\n")
	s.WriteString(HelpStyle.Render(helpExtractor))

	return s.String()
}

func (m Model) renderDialog() string {
	style := DialogStyle
	title := SuccessStyle.Bold(true).Render(m.dialog.title)
	if m.dialog.isErr {
		style = ErrorDialogStyle
		title = ErrorStyle.Bold(true).Render(m.dialog.title)
	}

	box := style.Render(title + "\n\n" + m.dialog.body + "\n\n" + HelpStyle.Render("enter/esc to dismiss"))
	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// Run opens the extractor panel and blocks until the user quits
func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
