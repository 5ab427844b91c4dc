package styles

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"

	"github.com/llehouerou/hymnchtv/internal/hymnal"
)

// HymnalTitle renders a hymnal heading in that hymnal's gradient.
func HymnalTitle(h hymnal.Type, text string) string {
	from, to := T().HymnalColors(h)
	return Gradient(text, from, to, true)
}

// Gradient renders text with a horizontal color gradient across its
// grapheme clusters, so CJK and combined characters keep one color each.
func Gradient(text string, from, to lipgloss.Color, bold bool) string {
	clusters := graphemes(text)
	if len(clusters) == 0 {
		return ""
	}

	base := lipgloss.NewStyle().Bold(bold)
	if len(clusters) == 1 {
		return base.Foreground(from).Render(text)
	}

	colors := blend(len(clusters), from, to)
	var b strings.Builder
	for i, cluster := range clusters {
		b.WriteString(base.Foreground(lipgloss.Color(colors[i].Hex())).Render(cluster))
	}
	return b.String()
}

func graphemes(text string) []string {
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}
	return clusters
}

// blend returns size colors from `from` to `to`, interpolated in HCL space.
func blend(size int, from, to lipgloss.Color) []colorful.Color {
	c1 := toColorful(from)
	c2 := toColorful(to)

	colors := make([]colorful.Color, size)
	for i := range size {
		colors[i] = c1.BlendHcl(c2, float64(i)/float64(size-1)).Clamped()
	}
	return colors
}

// toColorful parses a #rrggbb color. ANSI palette indexes map to gray.
func toColorful(c lipgloss.Color) colorful.Color {
	if col, err := colorful.Hex(string(c)); err == nil {
		return col
	}
	gray, _ := colorful.MakeColor(color.Gray{Y: 128})
	return gray
}
