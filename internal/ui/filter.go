package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleFilterKey handles keyboard input while the filter input has focus.
// Every edit re-derives the window immediately; the page index is left alone.
func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	case key.Matches(msg, m.keys.FilterDone), key.Matches(msg, m.keys.FilterAbort):
		m.filtering = false
		m.filterInput.Blur()
		return m, nil
	}

	before := m.filterInput.Value()
	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	if m.filterInput.Value() != before {
		m.selected = 0
		m.syncCards()
		m.cards.GotoTop()
	}
	return m, cmd
}

// renderFilter renders the filter input line.
func (m Model) renderFilter() string {
	line := m.filterInput.View()
	if !m.filtering && m.filterInput.Value() == "" {
		line = m.theme.Styles().FaintText.Render("/ Search by name or region")
	}
	return fitLine(line, m.width)
}
