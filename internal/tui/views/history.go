package views

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/solvang/stint/internal/store"
	"github.com/solvang/stint/internal/timeutil"
	"github.com/solvang/stint/internal/tracker"
	"github.com/solvang/stint/internal/tui/ui"
)

// HistoryModel is the model for the history view: the day list and the
// per-day breakdown
type HistoryModel struct {
	tracker *tracker.Tracker
	styles  ui.Styles
	keys    ui.KeyMap

	// UI state
	width  int
	height int
	days   []string
	cursor int

	// Day detail state
	detailDay    string
	detailNames  []string
	detailCursor int

	// Description edit state
	editMode bool
	input    textinput.Model
}

// NewHistoryModel creates a new history view model
func NewHistoryModel(tr *tracker.Tracker, styles ui.Styles, keys ui.KeyMap) HistoryModel {
	ti := textinput.New()
	ti.Placeholder = "What did you work on?"
	ti.CharLimit = 200
	ti.Width = 50

	return HistoryModel{
		tracker: tr,
		styles:  styles,
		keys:    keys,
		input:   ti,
	}
}

// Init implements tea.Model
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m HistoryModel) Update(msg tea.Msg) (HistoryModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.editMode {
			return m.handleEditMode(msg)
		}
		if m.detailDay != "" {
			return m.handleDetail(msg)
		}
		return m.handleDayList(msg)

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil
	}

	if m.editMode {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleDayList handles keys while the day list is showing
func (m HistoryModel) handleDayList(msg tea.KeyMsg) (HistoryModel, tea.Cmd) {
	m.days = m.tracker.Days()

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.days)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		if m.cursor < len(m.days) {
			m.openDetail(m.days[m.cursor])
		}
	}
	return m, nil
}

// handleDetail handles keys while a day breakdown is showing
func (m HistoryModel) handleDetail(msg tea.KeyMsg) (HistoryModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.detailCursor > 0 {
			m.detailCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.detailCursor < len(m.detailNames)-1 {
			m.detailCursor++
		}
	case key.Matches(msg, m.keys.Edit), key.Matches(msg, m.keys.Select):
		if m.detailCursor < len(m.detailNames) {
			entry := m.tracker.DayLog(m.detailDay)[m.detailNames[m.detailCursor]]
			m.editMode = true
			m.input.SetValue(entry.Description)
			m.input.Focus()
			return m, textinput.Blink
		}
	case key.Matches(msg, m.keys.Back):
		m.detailDay = ""
		m.detailNames = nil
		m.detailCursor = 0
	}
	return m, nil
}

// handleEditMode handles keys while the description input is open
func (m HistoryModel) handleEditMode(msg tea.KeyMsg) (HistoryModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select): // Enter
		project := m.detailNames[m.detailCursor]
		m.tracker.SetDescription(m.detailDay, project, m.input.Value())
		m.editMode = false
		m.input.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Back): // Escape
		m.editMode = false
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// openDetail switches to the breakdown of one day
func (m *HistoryModel) openDetail(day string) {
	m.detailDay = day
	m.detailCursor = 0
	m.detailNames = entryNames(m.tracker.DayLog(day))
}

// View implements tea.Model
func (m HistoryModel) View() string {
	if m.detailDay != "" {
		return m.viewDetail()
	}
	return m.viewDayList()
}

// viewDayList renders the per-day summary list, most recent first
func (m HistoryModel) viewDayList() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("History"))
	b.WriteString("\n\n")

	days := m.tracker.Days()
	if len(days) == 0 {
		b.WriteString(m.styles.StatLabel.Render("No time logged yet."))
		return b.String()
	}

	for i, day := range days {
		log := m.tracker.DayLog(day)
		line := fmt.Sprintf("%-18s %-10s %d %s",
			timeutil.FormatDayLabel(day),
			timeutil.FormatSeconds(m.tracker.DayTotal(day)),
			len(log), pluralize("project", len(log)))
		if i == m.cursor {
			line = m.styles.ListSelected.Render("▸ " + line)
		} else {
			line = m.styles.ListNormal.Render("  " + line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.StatLabel.Render("Enter to open a day"))

	return b.String()
}

// viewDetail renders the breakdown of the selected day
func (m HistoryModel) viewDetail() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render(timeutil.FormatDayLabel(m.detailDay)))
	b.WriteString("\n\n")

	log := m.tracker.DayLog(m.detailDay)

	for i, name := range m.detailNames {
		entry := log[name]
		line := fmt.Sprintf("%-24s %s", name, timeutil.FormatSeconds(entry.Seconds))
		if i == m.detailCursor {
			line = m.styles.ListSelected.Render("▸ " + line)
		} else {
			line = m.styles.ListNormal.Render("  " + line)
		}
		b.WriteString(line)
		b.WriteString("\n")

		if m.editMode && i == m.detailCursor {
			b.WriteString("  ")
			b.WriteString(m.input.View())
			b.WriteString("\n")
		} else if entry.Description != "" {
			b.WriteString(m.styles.Description.Render("      " + entry.Description))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.styles.StatLabel.Render(fmt.Sprintf("Total: %s",
		timeutil.FormatSeconds(m.tracker.DayTotal(m.detailDay)))))
	b.WriteString("\n\n")
	if m.editMode {
		b.WriteString(m.styles.StatLabel.Render("Enter to save, Esc to cancel"))
	} else {
		b.WriteString(m.styles.StatLabel.Render("e to edit description, Esc to go back"))
	}

	return b.String()
}

// SetSize sets the view dimensions
func (m *HistoryModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// IsInputMode returns true when the view is capturing keyboard input
func (m HistoryModel) IsInputMode() bool {
	return m.editMode
}

// entryNames returns a day log's project names in a stable order
func entryNames(log map[string]store.DayEntry) []string {
	names := make([]string, 0, len(log))
	for name := range log {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	return word + "s"
}
