package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func newSearchInput(theme Theme) textinput.Model {
	ti := textinput.New()
	ti.Prompt = "/"
	ti.Placeholder = "name"
	ti.CharLimit = 0 // unlimited
	ti.Width = 30
	return restyleSearchInput(ti, theme)
}

func restyleSearchInput(ti textinput.Model, theme Theme) textinput.Model {
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent))
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Text))
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Faint))
	return ti
}

// startSearch focuses the filter input, prefilled with the active query.
func (m Model) startSearch() (tea.Model, tea.Cmd) {
	if !m.dir.Loaded() {
		return m, nil
	}
	m.searching = true
	m.search.SetValue(m.dir.Query())
	m.search.CursorEnd()
	return m, m.search.Focus()
}

// handleSearchKey edits the query. Nothing is filtered until it is submitted.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit
	case key.Matches(msg, m.keys.Submit):
		m.searching = false
		m.search.Blur()
		m.applyFilter(m.search.Value())
		return m, nil
	case key.Matches(msg, m.keys.Cancel):
		m.searching = false
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

// applyFilter runs the directory filter on the query exactly as typed and
// resets the cursor to the first match. The modal selection is left alone.
func (m *Model) applyFilter(query string) {
	visible := m.dir.Filter(query)
	m.cursor = 0
	m.scroll = 0
	m.log.Debug("filter applied", "query", query, "visible", visible)
}
