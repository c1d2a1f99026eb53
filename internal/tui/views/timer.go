package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/solvang/stint/internal/timeutil"
	"github.com/solvang/stint/internal/tracker"
	"github.com/solvang/stint/internal/tui/ui"
)

// TimerModel is the model for the timer view: the project list and the
// active session card
type TimerModel struct {
	tracker *tracker.Tracker
	styles  ui.Styles
	keys    ui.KeyMap

	// UI state
	width  int
	height int
	cursor int
	err    error

	// Input state for adding a project
	inputMode bool
	input     textinput.Model
}

// NewTimerModel creates a new timer view model
func NewTimerModel(tr *tracker.Tracker, styles ui.Styles, keys ui.KeyMap) TimerModel {
	ti := textinput.New()
	ti.Placeholder = "Project name..."
	ti.CharLimit = 60
	ti.Width = 40

	return TimerModel{
		tracker: tr,
		styles:  styles,
		keys:    keys,
		input:   ti,
	}
}

// elapsedTickMsg is sent every second to refresh the running session card
type elapsedTickMsg time.Time

// Init implements tea.Model
func (m TimerModel) Init() tea.Cmd {
	return m.tickElapsed()
}

// Update implements tea.Model
func (m TimerModel) Update(msg tea.Msg) (TimerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.inputMode {
			return m.handleInputMode(msg)
		}

		projects := m.tracker.Projects()

		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(projects)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, m.keys.Select), key.Matches(msg, m.keys.Start):
			if m.cursor < len(projects) {
				m.err = m.tracker.Start(projects[m.cursor])
			}
			return m, nil

		case key.Matches(msg, m.keys.Stop):
			m.tracker.Stop()
			return m, nil

		case key.Matches(msg, m.keys.New):
			m.inputMode = true
			m.err = nil
			m.input.Focus()
			m.input.SetValue("")
			return m, textinput.Blink

		case key.Matches(msg, m.keys.Delete):
			if m.cursor < len(projects) {
				m.tracker.RemoveProject(projects[m.cursor])
				if m.cursor > 0 {
					m.cursor--
				}
			}
			return m, nil
		}

	case elapsedTickMsg:
		// The session card reads the tracker directly; the tick only
		// forces a redraw
		return m, m.tickElapsed()

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil
	}

	if m.inputMode {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleInputMode handles key events while the add-project input is open
func (m TimerModel) handleInputMode(msg tea.KeyMsg) (TimerModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select): // Enter
		name := strings.TrimSpace(m.input.Value())
		if name != "" {
			if err := m.tracker.AddProject(name); err != nil {
				m.err = err
				return m, nil
			}
			m.inputMode = false
			m.input.Blur()
		}
		return m, nil
	case key.Matches(msg, m.keys.Back): // Escape
		m.inputMode = false
		m.err = nil
		m.input.Blur()
		m.input.SetValue("")
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m TimerModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Timer"))
	b.WriteString("\n\n")

	// Active session card
	if project, ok := m.tracker.Active(); ok {
		b.WriteString(m.styles.TimerRunning.Render("● Tracking " + project))
		b.WriteString("\n")
		b.WriteString(m.styles.StatLabel.Render("Elapsed:"))
		b.WriteString(" ")
		b.WriteString(m.styles.TimerElapsed.Render(timeutil.FormatSeconds(m.tracker.CurrentElapsed())))
		b.WriteString("\n")
		b.WriteString(m.styles.StatLabel.Render("Today:"))
		b.WriteString(" ")
		b.WriteString(m.styles.StatValue.Render(timeutil.FormatSeconds(m.tracker.TodayTotal(project))))
		b.WriteString("\n\n")
	} else {
		b.WriteString(m.styles.TimerStopped.Render("No timer running"))
		b.WriteString("\n\n")
	}

	// Add-project input
	if m.inputMode {
		b.WriteString(m.styles.StatLabel.Render("New project:"))
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
		if m.err != nil {
			b.WriteString(m.styles.Error.Render(m.err.Error()))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(m.styles.StatLabel.Render("Enter to add, Esc to cancel"))
		return b.String()
	}

	// Project list
	projects := m.tracker.Projects()
	if len(projects) == 0 {
		b.WriteString(m.styles.StatLabel.Render("No projects yet. Press 'n' to add one."))
		return b.String()
	}

	active, running := m.tracker.Active()
	for i, name := range projects {
		marker := "  "
		if running && name == active {
			marker = m.styles.TimerRunning.Render("● ")
		}
		line := fmt.Sprintf("%s%-24s %s", marker,
			name, timeutil.FormatSeconds(m.tracker.TodayTotal(name)))
		if i == m.cursor {
			line = m.styles.ListSelected.Render("▸ " + line)
		} else {
			line = m.styles.ListNormal.Render("  " + line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render(m.err.Error()))
	}

	return b.String()
}

// SetSize sets the view dimensions
func (m *TimerModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// tickElapsed returns a command that sends a redraw tick every second
func (m TimerModel) tickElapsed() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return elapsedTickMsg(t)
	})
}

// IsInputMode returns true when the view is capturing keyboard input
func (m TimerModel) IsInputMode() bool {
	return m.inputMode
}
