package ui

import (
	"fmt"
	"strings"

	"github.com/five82/padview/internal/browse"
)

const (
	prevLabel = "< Prev"
	nextLabel = "Next >"
)

// renderPager renders the two pagination rows: navigation and page size.
func (m Model) renderPager(w browse.Window) string {
	styles := m.theme.Styles()

	nav := func(label string, enabled bool) string {
		if enabled {
			return styles.AccentText.Bold(true).Render(label)
		}
		return styles.FaintText.Render(label)
	}

	row := []string{
		nav(prevLabel, w.CanPrev),
		styles.Text.Render(w.Label()),
	}
	if dots := m.pagerDots(w); dots != "" {
		row = append(row, dots)
	}
	row = append(row, nav(nextLabel, w.CanNext))

	sizes := make([]string, 0, len(browse.PageSizes))
	for _, size := range browse.PageSizes {
		if size == w.PageSize {
			sizes = append(sizes, styles.WarningText.Bold(true).Render(fmt.Sprintf("[%d]", size)))
		} else {
			sizes = append(sizes, styles.MutedText.Render(fmt.Sprintf(" %d ", size)))
		}
	}
	sizeRow := styles.MutedText.Render("Per page: ") + strings.Join(sizes, " ")

	return fitLine(strings.Join(row, "  "), m.width) + "\n" + fitLine(sizeRow, m.width)
}

// pagerDots renders the page dots, or nothing when there are too many pages.
func (m Model) pagerDots(w browse.Window) string {
	if w.TotalPages < 2 || w.TotalPages > maxDots {
		return ""
	}
	p := m.pager
	p.PerPage = w.PageSize
	p.TotalPages = w.TotalPages
	p.Page = w.Page - 1
	return p.View()
}
