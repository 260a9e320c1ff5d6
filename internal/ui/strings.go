package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// truncate shortens a plain string to limit cells, adding an ellipsis.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	if ansi.StringWidth(value) <= limit {
		return value
	}
	if limit <= 3 {
		return ansi.Truncate(value, limit, "")
	}
	return ansi.Truncate(value, limit, "...")
}

// fitLine clips an already styled line to width cells without breaking
// escape sequences.
func fitLine(line string, width int) string {
	if width <= 0 || ansi.StringWidth(line) <= width {
		return line
	}
	return ansi.Truncate(line, width, "…")
}

// pluralize returns the English plural of word unless n is 1.
func pluralize(n int, word string) string {
	if n == 1 {
		return word
	}
	for _, suffix := range []string{"s", "x", "ch", "sh"} {
		if strings.HasSuffix(word, suffix) {
			return word + "es"
		}
	}
	return word + "s"
}
