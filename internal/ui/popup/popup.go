package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/hymnchtv/internal/ui/styles"
)

// chrome is the width and height taken by the border and padding.
const (
	chromeW = 6
	chromeH = 4
)

// InnerSize returns the content area left for a popup of at most
// maxWidth columns on a screen of screenW x screenH.
func InnerSize(screenW, screenH, maxWidth int) (int, int) {
	w := min(screenW-4, maxWidth) - chromeW
	h := screenH - 4 - chromeH
	return max(w, 1), max(h, 1)
}

// RenderBordered wraps content in a rounded border and centers the box on
// a screenW x screenH canvas.
func RenderBordered(content string, screenW, screenH int) string {
	width := min(maxLineWidth(content)+chromeW, screenW-4)
	height := min(strings.Count(content, "\n")+1+chromeH, screenH-2)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().BorderFocus).
		Width(max(width-2, 1)).
		MaxHeight(max(height, 1)).
		Padding(1, 2).
		Render(content)
	return Center(box, screenW, screenH)
}

// Center pads box so it sits in the middle of the screen.
func Center(box string, screenW, screenH int) string {
	lines := strings.Split(box, "\n")
	top := max((screenH-len(lines))/2, 0)
	left := max((screenW-maxLineWidth(box))/2, 0)

	var b strings.Builder
	for range top {
		b.WriteString("\n")
	}
	pad := strings.Repeat(" ", left)
	for i, line := range lines {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(pad + line)
	}
	return b.String()
}

// Compose draws overlay on top of base. Leading and trailing blanks of each
// overlay line are transparent. Both strings may contain styling.
func Compose(base, overlay string, width int) string {
	baseLines := strings.Split(base, "\n")
	for i, line := range strings.Split(overlay, "\n") {
		if i >= len(baseLines) {
			break
		}
		plain := ansi.Strip(line)
		if strings.TrimSpace(plain) == "" {
			continue
		}
		start := len(plain) - len(strings.TrimLeft(plain, " "))
		end := ansi.StringWidth(strings.TrimRight(plain, " "))

		under := baseLines[i]
		if w := ansi.StringWidth(under); w < width {
			under += strings.Repeat(" ", width-w)
		}

		prefix := ansi.Cut(under, 0, start)
		if w := ansi.StringWidth(prefix); w < start {
			prefix += strings.Repeat(" ", start-w)
		}
		result := prefix + ansi.Cut(line, start, end)
		if end < width {
			suffix := ansi.Cut(under, end, width)
			if w := ansi.StringWidth(suffix); w < width-end {
				suffix += strings.Repeat(" ", width-end-w)
			}
			result += suffix
		}
		baseLines[i] = result
	}
	return strings.Join(baseLines, "\n")
}

func maxLineWidth(s string) int {
	w := 0
	for line := range strings.SplitSeq(s, "\n") {
		w = max(w, lipgloss.Width(line))
	}
	return w
}
