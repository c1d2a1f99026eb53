// Package tui provides the full-screen interactive tracker for the stint
// application.
package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/solvang/stint/internal/service"
	"github.com/solvang/stint/internal/timeutil"
	"github.com/solvang/stint/internal/tracker"
	"github.com/solvang/stint/internal/tui/ui"
	"github.com/solvang/stint/internal/tui/views"
)

// Tab represents a view tab
type Tab int

const (
	TabTimer Tab = iota
	TabHistory
	TabSettings
	TabConfig
)

var tabNames = []string{"Timer", "History", "Settings", "Config"}

// Poll cadences for the prompt schedulers. Each prompt runs on its own
// tick stream so one cannot starve or delay the other.
const (
	checkInPoll = 5 * time.Second
	summaryPoll = 30 * time.Second
)

// checkInTickMsg drives the periodic check-in scheduler
type checkInTickMsg time.Time

// summaryTickMsg drives the end-of-day summary gate
type summaryTickMsg time.Time

// Model is the root TUI model
type Model struct {
	// Services and live state
	services *service.Services
	tracker  *tracker.Tracker
	flush    func() error

	// UI state
	activeTab Tab
	width     int
	height    int
	showHelp  bool
	flushErr  error

	// Check-in prompt state
	checkInOpen    bool
	checkInProject string

	// End-of-day summary prompt state
	summaryOpen     bool
	summaryProjects []string
	summaryIndex    int
	summaryInput    textinput.Model
	summaryAnswers  map[string]string

	// View models
	timerView    views.TimerModel
	historyView  views.HistoryModel
	settingsView views.SettingsModel
	configView   views.ConfigModel

	// Theme and styles
	themeProvider *ui.ThemeProvider
	styles        ui.Styles
	keys          ui.KeyMap
}

// New creates a new TUI model over a live tracker resumed from disk
func New(services *service.Services) (Model, error) {
	tr, flush, err := services.Tracker.Live()
	if err != nil {
		return Model{}, err
	}

	themeName := services.Config.Get().Theme
	themeProvider := ui.NewThemeProvider(themeName)
	styles := themeProvider.Styles()
	keys := ui.DefaultKeyMap()

	si := textinput.New()
	si.Placeholder = "What did you work on?"
	si.CharLimit = 200
	si.Width = 44

	return Model{
		services:      services,
		tracker:       tr,
		flush:         flush,
		activeTab:     TabTimer,
		themeProvider: themeProvider,
		styles:        styles,
		keys:          keys,
		summaryInput:  si,
		timerView:     views.NewTimerModel(tr, styles, keys),
		historyView:   views.NewHistoryModel(tr, styles, keys),
		settingsView:  views.NewSettingsModel(tr, styles, keys),
		configView:    views.NewConfigModel(services, themeProvider, styles, keys),
	}, nil
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.timerView.Init(),
		m.configView.Init(),
		m.tickCheckIn(),
		m.tickSummary(),
	)
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Prompt overlays swallow all keys while open
		if m.checkInOpen {
			return m.flushAfter(m.handleCheckIn(msg))
		}
		if m.summaryOpen {
			return m.flushAfter(m.handleSummary(msg))
		}

		// modalInput blocks global keys while a view is capturing text
		modalInput := m.isInputMode()

		switch {
		case key.Matches(msg, m.keys.Quit) && !modalInput:
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help) && !modalInput:
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, m.keys.NextTab) && !modalInput:
			m.activeTab = Tab((int(m.activeTab) + 1) % len(tabNames))
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.PrevTab) && !modalInput:
			m.activeTab = Tab((int(m.activeTab) - 1 + len(tabNames)) % len(tabNames))
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.Tab1) && !modalInput:
			m.activeTab = TabTimer
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.Tab2) && !modalInput:
			m.activeTab = TabHistory
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.Tab3) && !modalInput:
			m.activeTab = TabSettings
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.Tab4) && !modalInput:
			m.activeTab = TabConfig
			return m, m.initCurrentView()

		case key.Matches(msg, m.keys.Summary) && !modalInput && m.activeTab == TabTimer:
			m.openSummary()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		contentHeight := m.height - 4 // Account for tabs and status bar
		m.timerView.SetSize(m.width, contentHeight)
		m.historyView.SetSize(m.width, contentHeight)
		m.settingsView.SetSize(m.width, contentHeight)
		m.configView.SetSize(m.width, contentHeight)
		return m, nil

	case checkInTickMsg:
		if !m.checkInOpen && !m.summaryOpen && m.tracker.CheckInDue() {
			if project, ok := m.tracker.Active(); ok {
				m.checkInOpen = true
				m.checkInProject = project
			}
		}
		return m, m.tickCheckIn()

	case summaryTickMsg:
		if !m.checkInOpen && !m.summaryOpen && m.tracker.SummaryDue() {
			m.openSummary()
		}
		return m, m.tickSummary()

	case ui.ThemeChangeRequestMsg:
		m.themeProvider.SetTheme(msg.ThemeName)
		newTheme := m.themeProvider.CurrentName()
		m.styles = m.themeProvider.Styles()

		themeMsg := ui.ThemeChangedMsg{
			ThemeName: newTheme,
			Styles:    m.styles,
		}
		m.timerView, _ = m.timerView.Update(themeMsg)
		m.historyView, _ = m.historyView.Update(themeMsg)
		m.settingsView, _ = m.settingsView.Update(themeMsg)
		m.configView, _ = m.configView.Update(themeMsg)

		return m, m.saveThemeConfig(newTheme)
	}

	// Summary input needs non-key messages (e.g. cursor blink). The timer
	// view still gets them too, or its redraw tick would never re-arm.
	if m.summaryOpen {
		m.summaryInput, cmd = m.summaryInput.Update(msg)
		cmds = append(cmds, cmd)
		m.timerView, cmd = m.timerView.Update(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)
	}

	// Update the active view
	switch m.activeTab {
	case TabTimer:
		m.timerView, cmd = m.timerView.Update(msg)
	case TabHistory:
		m.historyView, cmd = m.historyView.Update(msg)
	case TabSettings:
		m.settingsView, cmd = m.settingsView.Update(msg)
	case TabConfig:
		m.configView, cmd = m.configView.Update(msg)
	}

	cmds = append(cmds, cmd)
	return m.flushAfter(m, tea.Batch(cmds...))
}

// flushAfter persists tracker changes made during an update
func (m Model) flushAfter(next Model, cmd tea.Cmd) (tea.Model, tea.Cmd) {
	if next.tracker.TakeDirty() {
		next.flushErr = next.flush()
	}
	return next, cmd
}

// handleCheckIn handles keys while the check-in prompt is open
func (m Model) handleCheckIn(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter", "esc":
		m.tracker.ConfirmCheckIn()
		m.checkInOpen = false
	case "n", "N":
		m.tracker.DeclineCheckIn()
		m.checkInOpen = false
	}
	return m, nil
}

// openSummary opens the end-of-day prompt over all of today's entries,
// with existing descriptions prefilled for editing. No-op when nothing
// was logged today.
func (m *Model) openSummary() {
	log := m.tracker.DayLog(m.tracker.Today())

	projects := make([]string, 0, len(log))
	for name := range log {
		projects = append(projects, name)
	}
	if len(projects) == 0 {
		return
	}
	sort.Strings(projects)

	m.summaryOpen = true
	m.summaryProjects = projects
	m.summaryIndex = 0
	m.summaryAnswers = map[string]string{}
	m.prefillSummaryInput()
	m.summaryInput.Focus()
}

// prefillSummaryInput loads the current project's saved description into
// the prompt input.
func (m *Model) prefillSummaryInput() {
	entry := m.tracker.DayLog(m.tracker.Today())[m.summaryProjects[m.summaryIndex]]
	m.summaryInput.SetValue(entry.Description)
	m.summaryInput.CursorEnd()
}

// handleSummary handles keys while the end-of-day prompt is open
func (m Model) handleSummary(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select): // Enter
		m.summaryAnswers[m.summaryProjects[m.summaryIndex]] = strings.TrimSpace(m.summaryInput.Value())
		m.summaryIndex++
		if m.summaryIndex >= len(m.summaryProjects) {
			m.tracker.SubmitSummary(m.summaryAnswers)
			m.closeSummary()
		} else {
			m.prefillSummaryInput()
		}
		return m, nil

	case key.Matches(msg, m.keys.Back): // Escape
		m.tracker.DeferSummary()
		m.closeSummary()
		return m, nil
	}

	var cmd tea.Cmd
	m.summaryInput, cmd = m.summaryInput.Update(msg)
	return m, cmd
}

func (m *Model) closeSummary() {
	m.summaryOpen = false
	m.summaryProjects = nil
	m.summaryAnswers = nil
	m.summaryInput.Blur()
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.checkInOpen {
		return m.renderCheckInPrompt()
	}
	if m.summaryOpen {
		return m.renderSummaryPrompt()
	}

	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	switch m.activeTab {
	case TabTimer:
		b.WriteString(m.timerView.View())
	case TabHistory:
		b.WriteString(m.historyView.View())
	case TabSettings:
		b.WriteString(m.settingsView.View())
	case TabConfig:
		b.WriteString(m.configView.View())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())

	if m.showHelp {
		return m.renderHelpOverlay()
	}

	return m.styles.App.Render(b.String())
}

// renderCheckInPrompt renders the periodic check-in dialog
func (m Model) renderCheckInPrompt() string {
	var b strings.Builder

	b.WriteString(m.styles.DialogTitle.Render("Check-in"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Still working on %s?\n",
		m.styles.ProjectName.Render(m.checkInProject)))
	b.WriteString(m.styles.StatLabel.Render(fmt.Sprintf("Elapsed: %s",
		timeutil.FormatSeconds(m.tracker.CurrentElapsed()))))
	b.WriteString("\n\n")
	b.WriteString(m.styles.StatusKey.Render("y"))
	b.WriteString(m.styles.StatusHelp.Render(" keep going  "))
	b.WriteString(m.styles.StatusKey.Render("n"))
	b.WriteString(m.styles.StatusHelp.Render(" stop the timer"))

	return m.styles.App.Render(m.styles.Dialog.Render(b.String()))
}

// renderSummaryPrompt renders the end-of-day summary dialog
func (m Model) renderSummaryPrompt() string {
	var b strings.Builder

	b.WriteString(m.styles.DialogTitle.Render("End of day"))
	b.WriteString("\n\n")

	project := m.summaryProjects[m.summaryIndex]
	seconds := m.tracker.DayLog(m.tracker.Today())[project].Seconds
	b.WriteString(fmt.Sprintf("What did you do on %s? (%s logged)\n\n",
		m.styles.ProjectName.Render(project), timeutil.FormatSeconds(seconds)))
	b.WriteString(m.summaryInput.View())
	b.WriteString("\n\n")
	b.WriteString(m.styles.StatLabel.Render(fmt.Sprintf("%d of %d",
		m.summaryIndex+1, len(m.summaryProjects))))
	b.WriteString("\n")
	b.WriteString(m.styles.StatusKey.Render("Enter"))
	b.WriteString(m.styles.StatusHelp.Render(" next  "))
	b.WriteString(m.styles.StatusKey.Render("Esc"))
	b.WriteString(m.styles.StatusHelp.Render(" later"))

	return m.styles.App.Render(m.styles.Dialog.Render(b.String()))
}

// renderTabs renders the tab bar
func (m Model) renderTabs() string {
	var tabs []string
	for i, name := range tabNames {
		if Tab(i) == m.activeTab {
			tabs = append(tabs, m.styles.TabActive.Render(name))
		} else {
			tabs = append(tabs, m.styles.TabInactive.Render(name))
		}
	}
	return m.styles.TabBar.Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

// renderStatusBar renders the status bar at the bottom
func (m Model) renderStatusBar() string {
	var parts []string

	if m.isInputMode() {
		parts = append(parts, m.renderKeyHelp("Enter", "save"))
		parts = append(parts, m.renderKeyHelp("Esc", "cancel"))
	} else {
		switch m.activeTab {
		case TabTimer:
			parts = append(parts, m.renderKeyHelp("s/Enter", "start"))
			parts = append(parts, m.renderKeyHelp("x", "stop"))
			parts = append(parts, m.renderKeyHelp("n", "new"))
			parts = append(parts, m.renderKeyHelp("d", "delete"))
			parts = append(parts, m.renderKeyHelp("w", "summary"))
		case TabHistory:
			parts = append(parts, m.renderKeyHelp("Enter", "open"))
			parts = append(parts, m.renderKeyHelp("e", "describe"))
		case TabSettings:
			parts = append(parts, m.renderKeyHelp("Enter", "apply"))
			parts = append(parts, m.renderKeyHelp("c", "clear"))
		case TabConfig:
			parts = append(parts, m.renderKeyHelp("t", "themes"))
		}

		parts = append(parts, m.renderKeyHelp("1-4", "views"))
		parts = append(parts, m.renderKeyHelp("?", "help"))
		parts = append(parts, m.renderKeyHelp("q", "quit"))
	}

	content := strings.Join(parts, "  ")

	if m.flushErr != nil {
		content += "  " + m.styles.Error.Render("save failed: "+m.flushErr.Error())
	}

	// Fill to width
	padding := m.width - lipgloss.Width(content)
	if padding > 0 {
		content += strings.Repeat(" ", padding)
	}

	return m.styles.StatusBar.Render(content)
}

// renderKeyHelp renders a single key help item
func (m Model) renderKeyHelp(key, desc string) string {
	return fmt.Sprintf("%s %s",
		m.styles.StatusKey.Render(key),
		m.styles.StatusHelp.Render(desc))
}

// isInputMode checks if the current view is capturing keyboard input
func (m Model) isInputMode() bool {
	switch m.activeTab {
	case TabTimer:
		return m.timerView.IsInputMode()
	case TabHistory:
		return m.historyView.IsInputMode()
	case TabSettings:
		return m.settingsView.IsInputMode()
	}
	return false
}

// initCurrentView initializes the current view when switching tabs
func (m Model) initCurrentView() tea.Cmd {
	switch m.activeTab {
	case TabTimer:
		return m.timerView.Init()
	case TabHistory:
		return m.historyView.Init()
	case TabSettings:
		return m.settingsView.Init()
	case TabConfig:
		return m.configView.Init()
	}
	return nil
}

// tickCheckIn returns the check-in scheduler's poll tick
func (m Model) tickCheckIn() tea.Cmd {
	return tea.Tick(checkInPoll, func(t time.Time) tea.Msg {
		return checkInTickMsg(t)
	})
}

// tickSummary returns the end-of-day gate's poll tick
func (m Model) tickSummary() tea.Cmd {
	return tea.Tick(summaryPoll, func(t time.Time) tea.Msg {
		return summaryTickMsg(t)
	})
}

// saveThemeConfig saves the theme to the config file
func (m Model) saveThemeConfig(themeName string) tea.Cmd {
	return func() tea.Msg {
		cfg := m.services.Config.Get()
		cfg.Theme = themeName
		_ = m.services.Config.Update(cfg)
		return nil
	}
}

// renderHelpOverlay renders a help overlay on top of the current view
func (m Model) renderHelpOverlay() string {
	var help strings.Builder

	help.WriteString(m.styles.ViewTitle.Render("Keyboard Shortcuts"))
	help.WriteString("\n\n")

	help.WriteString(m.styles.StatLabel.Render("Global:"))
	help.WriteString("\n")
	help.WriteString("  Tab/1-4    Switch views\n")
	help.WriteString("  ?          Toggle help\n")
	help.WriteString("  q          Quit\n")
	help.WriteString("\n")

	switch m.activeTab {
	case TabTimer:
		help.WriteString(m.styles.StatLabel.Render("Timer:"))
		help.WriteString("\n")
		help.WriteString("  j/k        Navigate projects\n")
		help.WriteString("  s/Enter    Start timer on project\n")
		help.WriteString("  x          Stop timer\n")
		help.WriteString("  n          New project\n")
		help.WriteString("  d          Delete project\n")
		help.WriteString("  w          Write end-of-day summary now\n")
	case TabHistory:
		help.WriteString(m.styles.StatLabel.Render("History:"))
		help.WriteString("\n")
		help.WriteString("  j/k        Navigate days\n")
		help.WriteString("  Enter      Open day breakdown\n")
		help.WriteString("  e          Edit description\n")
		help.WriteString("  Esc        Back to day list\n")
	case TabSettings:
		help.WriteString(m.styles.StatLabel.Render("Settings:"))
		help.WriteString("\n")
		help.WriteString("  j/k        Navigate intervals\n")
		help.WriteString("  Enter      Apply interval\n")
		help.WriteString("  c          Clear history\n")
	case TabConfig:
		help.WriteString(m.styles.StatLabel.Render("Config:"))
		help.WriteString("\n")
		help.WriteString("  t/Enter    Open theme selector\n")
		help.WriteString("  j/k        Navigate themes\n")
		help.WriteString("  Enter      Select theme\n")
		help.WriteString("  Esc        Cancel\n")
	}

	help.WriteString("\n")
	help.WriteString(m.styles.StatLabel.Render("Press ? to close"))

	helpBox := m.styles.Dialog.Render(help.String())
	return m.styles.App.Render(helpBox)
}

// Run starts the TUI application
func Run(services *service.Services) error {
	model, err := New(services)
	if err != nil {
		return err
	}
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return model.flush()
}
