package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/hymnchtv/internal/hymnal"
)

// Theme defines the color palette and pre-built styles for the viewer.
type Theme struct {
	Primary   lipgloss.Color // focused items, active tab
	Secondary lipgloss.Color // supplement markers, highlights

	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	BgCursor lipgloss.Color

	Border      lipgloss.Color
	BorderFocus lipgloss.Color

	Success lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color

	// Per-hymnal header gradients.
	Hymnals map[hymnal.Type][2]lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles.
type Styles struct {
	Base    lipgloss.Style
	Muted   lipgloss.Style
	Subtle  lipgloss.Style
	Title   lipgloss.Style
	Active  lipgloss.Style
	Cursor  lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#a78bfa"),
	Secondary: lipgloss.Color("#f1a208"),

	FgBase:   lipgloss.Color("#d0d0d0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	BgCursor: lipgloss.Color("#303030"),

	Border:      lipgloss.Color("#585858"),
	BorderFocus: lipgloss.Color("#a78bfa"),

	Success: lipgloss.Color("#42b883"),
	Error:   lipgloss.Color("#ff5555"),
	Warning: lipgloss.Color("#f1a208"),

	Hymnals: map[hymnal.Type][2]lipgloss.Color{
		hymnal.DB: {"#a78bfa", "#60a5fa"},
		hymnal.BB: {"#f1a208", "#ef4444"},
		hymnal.XB: {"#34d399", "#22d3ee"},
		hymnal.ER: {"#f472b6", "#fb923c"},
	},
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

// HymnalColors returns the gradient endpoints for t, falling back to the
// primary color.
func (t *Theme) HymnalColors(h hymnal.Type) (lipgloss.Color, lipgloss.Color) {
	if c, ok := t.Hymnals[h]; ok {
		return c[0], c[1]
	}
	return t.Primary, t.Primary
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Active: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
		Cursor: lipgloss.NewStyle().
			Background(t.BgCursor).
			Foreground(t.FgBase),
		Success: lipgloss.NewStyle().Foreground(t.Success),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
	}
}
