package render

import (
	"strings"
	"unicode/utf8"

	"calcpad/internal/models"
)

// Panel draws a snapshot as a boxed two line panel: the display right aligned, then a
// status line with the label on the left and the pending operator glyph on the right.
//
//	+----------------------+
//	|                   20 |
//	| Calculator         × |
//	+----------------------+
func Panel(s models.Snapshot, label string, width int) string {
	inner := width - 4
	if inner < 1 {
		inner = 1
	}

	var b strings.Builder
	border := "+" + strings.Repeat("-", inner+2) + "+\n"

	b.WriteString(border)
	b.WriteString("| " + padLeft(s.Display, inner) + " |\n")
	b.WriteString("| " + statusLine(label, s.Operator, inner) + " |\n")
	b.WriteString(border)
	return b.String()
}

func statusLine(label, glyph string, width int) string {
	gw := utf8.RuneCountInString(glyph)
	label = truncate(label, width-gw-1)
	gap := width - utf8.RuneCountInString(label) - gw
	if gap < 0 {
		gap = 0
	}
	return label + strings.Repeat(" ", gap) + glyph
}

func padLeft(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return strings.Repeat(" ", width-n) + s
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	return string([]rune(s)[:width])
}
