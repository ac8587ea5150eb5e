package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"designtrack/internal/timer"
	"designtrack/internal/tracker"
)

// TimerOutcome says how the user left the timer screen.
type TimerOutcome int

const (
	// OutcomeDetached means the session keeps running in the background.
	OutcomeDetached TimerOutcome = iota
	// OutcomePause means the user confirmed a pause with a reason.
	OutcomePause
	// OutcomeFinish means the user asked to complete the session.
	OutcomeFinish
)

// TimerModel is the live session screen. The displayed elapsed time is
// re-derived from the session's start instant and closed pauses on every
// tick; the tick is presentation only and never mutates persisted state.
type TimerModel struct {
	width  int
	height int

	trk     *tracker.Tracker
	elapsed time.Duration

	// Pause modal state. While the modal is open the tick is not
	// rescheduled: the clock is conceptually off.
	showPauseModal bool
	reasonInput    textinput.Model

	outcome     TimerOutcome
	pauseReason string
	done        bool
}

// timerTickMsg is sent every second to refresh the derived clock
type timerTickMsg struct{}

// NewTimerModel creates the live session screen for an attached tracker.
func NewTimerModel(trk *tracker.Tracker) TimerModel {
	reason := textinput.New()
	reason.Placeholder = "e.g. lunch break..."
	reason.Width = 40
	reason.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
	reason.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
	reason.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))

	return TimerModel{
		trk:         trk,
		elapsed:     trk.Elapsed(time.Now()),
		reasonInput: reason,
	}
}

// Init starts the display tick
func (m TimerModel) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg{}
	})
}

// Update handles messages
func (m TimerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		if m.done || m.showPauseModal {
			// Tear the ticker down; it restarts when the modal closes
			return m, nil
		}
		m.elapsed = m.trk.Elapsed(time.Now())
		return m, tick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.showPauseModal {
			return m.updatePauseModal(msg)
		}

		switch msg.String() {
		case "p", "P":
			m.showPauseModal = true
			m.reasonInput.Focus()
			return m, textinput.Blink
		case "f", "F":
			m.outcome = OutcomeFinish
			m.done = true
			return m, tea.Quit
		case "ctrl+c", "esc", "q":
			// Detach without pausing: time keeps accruing silently
			m.outcome = OutcomeDetached
			m.done = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m TimerModel) updatePauseModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.outcome = OutcomePause
		m.pauseReason = m.reasonInput.Value()
		m.done = true
		return m, tea.Quit
	case "esc":
		m.showPauseModal = false
		m.reasonInput.Blur()
		m.reasonInput.SetValue("")
		m.elapsed = m.trk.Elapsed(time.Now())
		return m, tick()
	}

	var cmd tea.Cmd
	m.reasonInput, cmd = m.reasonInput.Update(msg)
	return m, cmd
}

// View renders the timer screen
func (m TimerModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	if m.showPauseModal {
		return m.renderPauseModal()
	}

	helpBar := m.renderHelpBar()
	contentHeight := m.height - 2

	if m.width < 90 {
		// Narrow view: just the timer panel, full width
		return lipgloss.JoinVertical(
			lipgloss.Left,
			m.renderTimerPanel(m.width, contentHeight),
			helpBar,
		)
	}

	leftWidth := m.width / 2
	rightWidth := m.width - leftWidth - 2

	content := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderTimerPanel(leftWidth, contentHeight),
		"  ",
		m.renderSessionPanel(rightWidth, contentHeight),
	)

	return lipgloss.JoinVertical(lipgloss.Left, content, helpBar)
}

// renderTimerPanel renders the left panel with the derived clock
func (m TimerModel) renderTimerPanel(width, height int) string {
	session := m.trk.Active()
	var components []string

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSuccess)).
		Bold(true).
		Align(lipgloss.Center).
		Width(width)
	components = append(components, headerStyle.Render("● TRACKING"))

	nsStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true).
		Align(lipgloss.Center).
		Width(width)
	components = append(components, nsStyle.Render("NS "+session.NS))

	if session.ClientName != "" {
		clientStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorPrimaryText)).
			Align(lipgloss.Center).
			Width(width)
		components = append(components, clientStyle.Render(session.ClientName))
	}

	components = append(components, m.renderBigClock(width))

	startedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(width)
	info := fmt.Sprintf("Started at %s", session.StartTime.Format("15:04:05"))
	if n := len(session.Pauses); n > 0 {
		info += fmt.Sprintf(" · %d pause(s)", n)
	}
	components = append(components, startedStyle.Render(info))

	panelStyle := lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center)

	return panelStyle.Render(strings.Join(components, "\n\n"))
}

// digit art, 5 rows per glyph
var clockDigits = map[rune][]string{
	'0': {" ███ ", "█   █", "█   █", "█   █", " ███ "},
	'1': {"  █  ", " ██  ", "  █  ", "  █  ", "█████"},
	'2': {" ███ ", "█   █", "   █ ", "  █  ", "█████"},
	'3': {" ███ ", "█   █", "  ██ ", "█   █", " ███ "},
	'4': {"█   █", "█   █", "█████", "    █", "    █"},
	'5': {"█████", "█    ", "████ ", "    █", "████ "},
	'6': {" ███ ", "█    ", "████ ", "█   █", " ███ "},
	'7': {"█████", "    █", "   █ ", "  █  ", " █   "},
	'8': {" ███ ", "█   █", " ███ ", "█   █", " ███ "},
	'9': {" ███ ", "█   █", " ████", "    █", " ███ "},
	':': {"     ", "  █  ", "     ", "  █  ", "     "},
}

// renderBigClock renders the ASCII art clock from the derived elapsed time
func (m TimerModel) renderBigClock(width int) string {
	timeStr := timer.FormatSeconds(int(m.elapsed / time.Second))

	var lines [5]strings.Builder
	for _, char := range timeStr {
		art, ok := clockDigits[char]
		if !ok {
			continue
		}
		for i := 0; i < 5; i++ {
			lines[i].WriteString(art[i])
			lines[i].WriteString(" ")
		}
	}

	clockStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true)
	centered := lipgloss.NewStyle().Align(lipgloss.Center).Width(width)

	var rows []string
	for i := 0; i < 5; i++ {
		rows = append(rows, centered.Render(clockStyle.Render(lines[i].String())))
	}
	return strings.Join(rows, "\n")
}

// renderSessionPanel renders the right panel with session details and the
// variation list
func (m TimerModel) renderSessionPanel(width, height int) string {
	session := m.trk.Active()
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccentMain)).
		Width(width - 8).
		Padding(0, 1)
	b.WriteString(titleStyle.Render("NS " + session.NS))
	b.WriteString("\n\n")

	label := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	value := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))

	line := func(name, val string) {
		if val == "" {
			val = "-"
		}
		b.WriteString("  " + label.Render(name+": ") + value.Render(val) + "\n")
	}

	line("Type", string(session.Type))
	line("Implement", string(session.ImplementType))
	if session.FlooringType != "" {
		line("Flooring", session.FlooringType)
	}
	line("Project code", session.ProjectCode)
	line("Notes", session.Notes)

	b.WriteString("\n")
	varHeader := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccentBright))
	b.WriteString("  " + varHeader.Render(fmt.Sprintf("Variations (%d)", len(session.Variations))) + "\n")

	if len(session.Variations) == 0 {
		empty := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText)).Italic(true)
		b.WriteString("  " + empty.Render("none recorded yet · use 'designtrack variation add'") + "\n")
	}
	for _, v := range session.Variations {
		mark := "○"
		markStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText))
		if v.FilesGenerated {
			mark = "✓"
			markStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess))
		}
		code := v.NewCode
		if code == "" {
			code = v.OldCode
		}
		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			markStyle.Render(mark),
			value.Render(code),
			label.Render(v.Description)))
	}

	panelStyle := lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Left, lipgloss.Center)
	return panelStyle.Render(b.String())
}

// renderPauseModal renders the pause confirmation in place of the timer
func (m TimerModel) renderPauseModal() string {
	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWarning)).
		Bold(true).
		Render("⏸  Pause project")

	hint := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Render("The clock stops. The session stays in the pending list\nuntil you resume it.")

	label := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Render("Pause reason")

	help := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Render("enter confirm · esc cancel")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorWarning)).
		Padding(1, 2).
		Render(strings.Join([]string{title, "", hint, "", label, m.reasonInput.View(), "", help}, "\n"))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// renderHelpBar renders the help bar at the bottom
func (m TimerModel) renderHelpBar() string {
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width)

	return helpStyle.Render("p pause · f finish · esc/q detach (keep running) · ctrl+c force quit")
}

// RunTimerTUI shows the live timer for the attached session and applies the
// transition the user picked when the screen closed.
func RunTimerTUI(trk *tracker.Tracker) (TimerOutcome, string, error) {
	model := NewTimerModel(trk)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return OutcomeDetached, "", err
	}

	final := finalModel.(TimerModel)
	return final.outcome, final.pauseReason, nil
}
