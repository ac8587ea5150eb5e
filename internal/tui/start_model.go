package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"designtrack/internal/models"
	"designtrack/internal/tracker"
)

// startStep is the current step in the start wizard
type startStep int

const (
	stepNS startStep = iota
	stepClient
	stepCode
	stepType
	stepImplement
	stepFlooring
	stepNotes
	stepComplete
)

// StartModel is the interactive form that collects a new session's fields.
// Text steps use a textinput; the type, implement and flooring steps are
// arrow-key selectors.
type StartModel struct {
	step   startStep
	width  int
	height int

	nsInput     textinput.Model
	clientInput textinput.Model
	codeInput   textinput.Model
	notesInput  textinput.Model

	typeCursor      int
	implementCursor int
	flooringCursor  int

	validationErr string
	cancelled     bool
}

// NewStartModel creates the wizard.
func NewStartModel() StartModel {
	newInput := func(placeholder string) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.Width = 50
		in.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		in.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
		in.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
		return in
	}

	m := StartModel{
		nsInput:     newInput("e.g. 123456"),
		clientInput: newInput("client name"),
		codeInput:   newInput("e.g. PRJ-001"),
		notesInput:  newInput("optional notes"),
	}
	m.nsInput.Focus()
	return m
}

// Init implements tea.Model
func (m StartModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *StartModel) currentInput() *textinput.Model {
	switch m.step {
	case stepNS:
		return &m.nsInput
	case stepClient:
		return &m.clientInput
	case stepCode:
		return &m.codeInput
	case stepNotes:
		return &m.notesInput
	}
	return nil
}

func (m *StartModel) selectedImplement() models.ImplementType {
	return models.ImplementTypes[m.implementCursor]
}

// flooringOptions prepends a "none" choice to the catalog.
func flooringOptions() []string {
	return append([]string{"(none)"}, models.FlooringTypes...)
}

// Update handles messages
func (m StartModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit
		case "enter":
			return m.advance()
		case "up", "down":
			m.moveCursor(msg.String() == "down")
			return m, nil
		}
	}

	if in := m.currentInput(); in != nil {
		var cmd tea.Cmd
		*in, cmd = in.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *StartModel) moveCursor(down bool) {
	move := func(cursor *int, size int) {
		if down {
			*cursor = (*cursor + 1) % size
		} else {
			*cursor = (*cursor - 1 + size) % size
		}
	}
	switch m.step {
	case stepType:
		move(&m.typeCursor, len(models.ProjectTypes))
	case stepImplement:
		move(&m.implementCursor, len(models.ImplementTypes))
	case stepFlooring:
		move(&m.flooringCursor, len(flooringOptions()))
	}
}

func (m StartModel) advance() (tea.Model, tea.Cmd) {
	m.validationErr = ""

	if m.step == stepNS && strings.TrimSpace(m.nsInput.Value()) == "" {
		m.validationErr = "the work-order number is required"
		return m, nil
	}

	if in := m.currentInput(); in != nil {
		in.Blur()
	}

	switch m.step {
	case stepImplement:
		if m.selectedImplement().HasFlooring() {
			m.step = stepFlooring
		} else {
			m.step = stepNotes
		}
	case stepNotes:
		m.step = stepComplete
		return m, tea.Quit
	default:
		m.step++
	}

	if in := m.currentInput(); in != nil {
		in.Focus()
		return m, textinput.Blink
	}
	return m, nil
}

// View renders the wizard
func (m StartModel) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true)
	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Bold(true)
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true)
	errStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorError))

	var b strings.Builder
	b.WriteString(titleStyle.Render("⏱  Start a new project session"))
	b.WriteString("\n\n")

	switch m.step {
	case stepNS:
		b.WriteString(labelStyle.Render("Work-order number (NS)") + "\n")
		b.WriteString(m.nsInput.View() + "\n")
	case stepClient:
		b.WriteString(labelStyle.Render("Client") + "\n")
		b.WriteString(m.clientInput.View() + "\n")
	case stepCode:
		b.WriteString(labelStyle.Render("Project code") + "\n")
		b.WriteString(m.codeInput.View() + "\n")
	case stepType:
		b.WriteString(labelStyle.Render("Project type") + "\n")
		b.WriteString(m.renderChoices(projectTypeLabels(), m.typeCursor))
	case stepImplement:
		b.WriteString(labelStyle.Render("Implement") + "\n")
		b.WriteString(m.renderChoices(implementLabels(), m.implementCursor))
	case stepFlooring:
		b.WriteString(labelStyle.Render("Flooring") + "\n")
		b.WriteString(m.renderChoices(flooringOptions(), m.flooringCursor))
	case stepNotes:
		b.WriteString(labelStyle.Render("Notes") + "\n")
		b.WriteString(m.notesInput.View() + "\n")
	}

	if m.validationErr != "" {
		b.WriteString("\n" + errStyle.Render("✗ "+m.validationErr) + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("enter next · ↑/↓ choose · esc cancel"))
	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (m StartModel) renderChoices(options []string, cursor int) string {
	selected := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true)
	normal := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText))

	var b strings.Builder
	for i, opt := range options {
		if i == cursor {
			b.WriteString(selected.Render("› "+opt) + "\n")
		} else {
			b.WriteString(normal.Render("  "+opt) + "\n")
		}
	}
	return b.String()
}

func projectTypeLabels() []string {
	labels := make([]string, len(models.ProjectTypes))
	for i, t := range models.ProjectTypes {
		labels[i] = string(t)
	}
	return labels
}

func implementLabels() []string {
	labels := make([]string, len(models.ImplementTypes))
	for i, t := range models.ImplementTypes {
		labels[i] = string(t)
	}
	return labels
}

// input collects the wizard's answers into a StartInput.
func (m StartModel) input() tracker.StartInput {
	flooring := ""
	if m.selectedImplement().HasFlooring() && m.flooringCursor > 0 {
		flooring = flooringOptions()[m.flooringCursor]
	}
	return tracker.StartInput{
		NS:            strings.TrimSpace(m.nsInput.Value()),
		ClientName:    m.clientInput.Value(),
		ProjectCode:   m.codeInput.Value(),
		Type:          models.ProjectTypes[m.typeCursor],
		ImplementType: m.selectedImplement(),
		FlooringType:  flooring,
		Notes:         m.notesInput.Value(),
	}
}

// RunStartWizard collects session fields interactively. The second return
// is false when the user cancelled.
func RunStartWizard() (tracker.StartInput, bool, error) {
	p := tea.NewProgram(NewStartModel())
	finalModel, err := p.Run()
	if err != nil {
		return tracker.StartInput{}, false, err
	}

	final := finalModel.(StartModel)
	if final.cancelled {
		return tracker.StartInput{}, false, nil
	}
	return final.input(), true, nil
}
