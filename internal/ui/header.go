package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the title bar with load state and counts.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)
	sep := "  "

	parts := []string{bg.Render("SpaceX Launchpads", styles.Logo)}

	if !m.snapshot.Loaded {
		parts = append(parts,
			lipgloss.NewStyle().Background(lipgloss.Color(m.theme.Surface)).Render(m.spinner.View())+
				bg.Render("Fetching launchpads...", styles.WarningText))
	} else {
		w := m.window()
		label := "Showing:"
		if m.width < LayoutCompactWidth {
			label = "Match:"
		}
		parts = append(parts,
			bg.Render(label, styles.MutedText)+bg.Spaces(1)+
				bg.Render(fmt.Sprintf("%d/%d", w.Filtered, w.Total), styles.Text))
		if q := m.filterInput.Value(); q != "" {
			parts = append(parts, bg.Render("filter: "+truncate(q, 30), styles.AccentText))
		}
	}

	if m.notice != "" {
		parts = append(parts, bg.Render(truncate(m.notice, 60), styles.InfoText))
	}

	return styles.Header.Width(m.width).Render(fitLine(bg.Join(parts, sep), m.width-2))
}

// renderFooter renders the short key help.
func (m Model) renderFooter() string {
	return fitLine(m.help.View(m.keys), m.width)
}
