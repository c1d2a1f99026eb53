package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/solvang/stint/internal/store"
	"github.com/solvang/stint/internal/tracker"
	"github.com/solvang/stint/internal/tui/ui"
)

// SettingsModel is the model for the settings view: the check-in interval
// picker and the clear-history action
type SettingsModel struct {
	tracker *tracker.Tracker
	styles  ui.Styles
	keys    ui.KeyMap

	// UI state
	width  int
	height int
	cursor int

	// Clear-history confirmation state
	confirmClear bool
	cleared      bool
}

// NewSettingsModel creates a new settings view model
func NewSettingsModel(tr *tracker.Tracker, styles ui.Styles, keys ui.KeyMap) SettingsModel {
	cursor := 0
	for i, minutes := range store.ValidIntervals {
		if minutes == tr.Interval() {
			cursor = i
			break
		}
	}

	return SettingsModel{
		tracker: tr,
		styles:  styles,
		keys:    keys,
		cursor:  cursor,
	}
}

// Init implements tea.Model
func (m SettingsModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m SettingsModel) Update(msg tea.Msg) (SettingsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.confirmClear {
			return m.handleConfirmClear(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(store.ValidIntervals)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Select):
			_ = m.tracker.SetInterval(store.ValidIntervals[m.cursor])
		case key.Matches(msg, m.keys.Clear):
			m.confirmClear = true
			m.cleared = false
		}
		return m, nil

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil
	}

	return m, nil
}

// handleConfirmClear handles keys while the clear confirmation is showing
func (m SettingsModel) handleConfirmClear(msg tea.KeyMsg) (SettingsModel, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.tracker.ClearHistory()
		m.confirmClear = false
		m.cleared = true
	case "n", "N", "esc":
		m.confirmClear = false
	}
	return m, nil
}

// View implements tea.Model
func (m SettingsModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Settings"))
	b.WriteString("\n\n")

	b.WriteString(m.styles.StatLabel.Render("Check-in interval"))
	b.WriteString("\n\n")

	current := m.tracker.Interval()
	for i, minutes := range store.ValidIntervals {
		label := fmt.Sprintf("%d minutes", minutes)
		if minutes == current {
			label += " (current)"
		}
		if i == m.cursor {
			b.WriteString(m.styles.ListSelected.Render("▸ " + label))
		} else {
			b.WriteString(m.styles.ListNormal.Render("  " + label))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")

	if m.confirmClear {
		b.WriteString(m.styles.Warning.Render("Delete all logged history? This cannot be undone. [y/N]"))
		return b.String()
	}

	if m.cleared {
		b.WriteString(m.styles.Success.Render("History cleared."))
		b.WriteString("\n\n")
	}

	b.WriteString(m.styles.StatLabel.Render("Enter to apply interval, c to clear history"))

	return b.String()
}

// SetSize sets the view dimensions
func (m *SettingsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// IsInputMode returns true when the view is capturing keyboard input
func (m SettingsModel) IsInputMode() bool {
	return m.confirmClear
}
