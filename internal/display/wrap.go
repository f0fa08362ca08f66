package display

import (
	"strings"

	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
)

const DefaultWidth = 80

// Wrap word-wraps text to width columns. A non-positive width uses
// DefaultWidth.
func Wrap(text string, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	return wordwrap.String(text, width)
}

// Truncate cuts text to at most width printable columns, marking the cut
// with an ellipsis.
func Truncate(text string, width int) string {
	return truncate.StringWithTail(text, uint(width), "…")
}

// Capitalize returns s with its first character uppercased.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Humanize turns an identifier like "set_lock" into "Set lock".
func Humanize(id string) string {
	return Capitalize(strings.ReplaceAll(id, "_", " "))
}
