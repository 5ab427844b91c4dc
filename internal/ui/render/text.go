// Package render provides width-aware text helpers for the viewer. Hymn
// text is mostly CJK, so every width is measured in terminal cells.
package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Sanitize drops control characters (except tab) and invalid UTF-8, and
// turns no-break and ideographic spaces into plain spaces.
func Sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size
		switch {
		case r == utf8.RuneError && size <= 1:
		case r == '\t':
			b.WriteRune(r)
		case unicode.IsControl(r):
		case r == '\u00a0' || r == '\u3000':
			b.WriteByte(' ')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Truncate shortens s to maxWidth cells, ending with "..." when cut.
func Truncate(s string, maxWidth int) string {
	return runewidth.Truncate(Sanitize(s), maxWidth, "...")
}

// TruncateEllipsis shortens s to maxWidth cells, ending with "…" when cut.
func TruncateEllipsis(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return runewidth.Truncate(s, maxWidth, "…")
}

// Pad fills s with spaces up to width cells. s may contain styling.
func Pad(s string, width int) string {
	return s + strings.Repeat(" ", max(width-lipgloss.Width(s), 0))
}

// Row joins left and right with at least one space so the result spans
// width cells.
func Row(left, right string, width int) string {
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

// Center left-pads s so that it sits in the middle of width cells.
func Center(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return strings.Repeat(" ", (width-w)/2) + s
}

// Wrap breaks s into lines of at most width cells. Breaks prefer the last
// space on the line; CJK text, which has no spaces, breaks between runes.
func Wrap(s string, width int) []string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return []string{s}
	}

	var lines []string
	var line []rune
	lineWidth := 0
	lastSpace := -1

	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if lineWidth+rw > width && len(line) > 0 {
			if lastSpace > 0 {
				lines = append(lines, strings.TrimRight(string(line[:lastSpace]), " "))
				line = append([]rune(nil), line[lastSpace+1:]...)
			} else {
				lines = append(lines, string(line))
				line = line[:0]
			}
			lineWidth = runewidth.StringWidth(string(line))
			lastSpace = -1
		}
		if r == ' ' {
			lastSpace = len(line)
		}
		line = append(line, r)
		lineWidth += rw
	}
	if len(line) > 0 {
		lines = append(lines, string(line))
	}
	return lines
}

// Separator returns a horizontal rule of width cells.
func Separator(width int) string {
	return strings.Repeat("─", max(width, 0))
}
