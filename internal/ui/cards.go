package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/padview/internal/browse"
	"github.com/five82/padview/internal/spacex"
)

// renderCards renders the window as stacked cards and returns the line
// offset at which each card starts.
func (m Model) renderCards(w browse.Window) (string, []int) {
	styles := m.theme.Styles()

	if !m.snapshot.Loaded {
		return m.placeCentered(styles.MutedText.Render(m.spinner.View() + " Fetching launchpads...")), nil
	}
	if len(w.Items) == 0 {
		return m.placeCentered(styles.MutedText.Render(emptyMessage(w))), nil
	}

	cards := make([]string, 0, len(w.Items))
	offsets := make([]int, 0, len(w.Items))
	line := 0
	for i, pad := range w.Items {
		card := m.renderCard(pad, i == m.selected)
		offsets = append(offsets, line)
		line += lipgloss.Height(card)
		cards = append(cards, card)
	}
	return strings.Join(cards, "\n"), offsets
}

// emptyMessage explains an empty window.
func emptyMessage(w browse.Window) string {
	switch {
	case w.Total == 0:
		return "No launchpads"
	case w.Filtered == 0:
		return "No launchpads match the filter"
	default:
		return fmt.Sprintf("Nothing on page %d", w.Page)
	}
}

// renderCard renders one launchpad: name, region, first image, launches and
// the Wikipedia link.
func (m Model) renderCard(pad spacex.Launchpad, selected bool) string {
	styles := m.theme.Styles()
	box := styles.Card
	if selected {
		box = styles.SelectedCard
	}

	// Border plus one column of padding on each side.
	outer := max(m.width, 20)
	inner := outer - 4

	var lines []string

	title := styles.AccentText.Bold(true).Render(pad.DisplayName())
	if full := strings.TrimSpace(pad.FullName); full != "" && full != pad.Name {
		title += styles.FaintText.Render("  " + full)
	}
	lines = append(lines, title)

	region := styles.MutedText.Render("Region: ") + styles.Text.Render(pad.Region)
	if loc := strings.TrimSpace(pad.Locality); loc != "" {
		region += styles.FaintText.Render(" · " + loc)
	}
	lines = append(lines, region)

	if status := strings.TrimSpace(pad.Status); status != "" {
		line := styles.MutedText.Render("Status: ") + styles.StatusStyle(status).Render(titleCase(status))
		if pad.LaunchAttempts > 0 {
			line += styles.FaintText.Render(fmt.Sprintf(" · %d/%d %s succeeded",
				pad.LaunchSuccesses, pad.LaunchAttempts, pluralize(pad.LaunchAttempts, "launch")))
		}
		lines = append(lines, line)
	}

	if img, ok := pad.FirstImage(); ok {
		lines = append(lines, styles.MutedText.Render("Image: ")+styles.InfoText.Render(img))
	}

	lines = append(lines, "", styles.Text.Bold(true).Render("Launches"))
	if len(pad.Launches) == 0 {
		lines = append(lines, styles.FaintText.Render("  none"))
	}
	width := len(fmt.Sprint(len(pad.Launches)))
	for i, launch := range pad.Launches {
		lines = append(lines, styles.FaintText.Render(fmt.Sprintf("  %*d. ", width, i+1))+styles.Text.Render(launch))
	}

	lines = append(lines, "", styles.MutedText.Render("Wikipedia: ")+styles.AccentText.Underline(true).Render(spacex.WikipediaLink(pad.Name)))

	for i, l := range lines {
		lines[i] = fitLine(l, inner)
	}

	return box.Width(outer - 2).Render(strings.Join(lines, "\n"))
}

// placeCentered centers a message in the card area.
func (m Model) placeCentered(msg string) string {
	return lipgloss.Place(m.width, m.cardsHeight(), lipgloss.Center, lipgloss.Center, msg)
}

// titleCase upper-cases the first letter of each word.
func titleCase(value string) string {
	words := strings.Fields(strings.ReplaceAll(value, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
