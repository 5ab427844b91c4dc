// Package playerbar renders the local audio player line.
package playerbar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/hymnchtv/internal/player"
	"github.com/llehouerou/hymnchtv/internal/ui/render"
	"github.com/llehouerou/hymnchtv/internal/ui/styles"
)

// Height is the height of the bar including its border.
const Height = 3

// State holds everything needed to render the bar.
type State struct {
	Status   player.State
	Title    string
	Position time.Duration
	Duration time.Duration
	Volume   float64
	Muted    bool
}

// NewState snapshots p. A stopped player yields the zero State.
func NewState(p player.Interface) State {
	if p == nil || !p.State().IsActive() {
		return State{}
	}
	return State{
		Status:   p.State(),
		Title:    p.TrackInfo().Label(),
		Position: p.Position(),
		Duration: p.Duration(),
		Volume:   p.Volume(),
		Muted:    p.Muted(),
	}
}

// Visible reports whether the bar has something to show.
func (s State) Visible() bool {
	return s.Status.IsActive()
}

func barStyle() lipgloss.Style {
	return styles.PanelStyle(false).Padding(0, 1)
}

// Render returns the bar, or "" while stopped.
func Render(s State, width int) string {
	if !s.Visible() {
		return ""
	}
	inner := max(width-4, 0)

	title := s.Title
	if title == "" {
		title = "—"
	}
	timeStr := player.FormatDuration(s.Position) + " / " + player.FormatDuration(s.Duration)
	vol := Volume(s.Volume, s.Muted)

	fixed := lipgloss.Width(s.Status.Icon()) + 2 + lipgloss.Width(timeStr) + 3 + lipgloss.Width(vol) + 3
	titleWidth := min(lipgloss.Width(title), max(inner/3, 10))
	barWidth := max(inner-fixed-titleWidth-3, 5)

	var b strings.Builder
	b.WriteString(styles.T().S().Title.Render(render.TruncateEllipsis(title, titleWidth)))
	b.WriteString("   ")
	b.WriteString(styles.T().S().Active.Render(s.Status.Icon()))
	b.WriteString("  ")
	b.WriteString(Progress(s.Position, s.Duration, barWidth))
	b.WriteString("   ")
	b.WriteString(styles.T().S().Muted.Render(timeStr))
	b.WriteString("   ")
	b.WriteString(styles.T().S().Muted.Render(vol))

	return barStyle().Width(max(width-2, 0)).Render(b.String())
}

// Progress draws a bar of width cells filled by position/duration.
func Progress(position, duration time.Duration, width int) string {
	var ratio float64
	if duration > 0 {
		ratio = float64(position) / float64(duration)
	}
	filled := max(min(int(float64(width)*ratio), width), 0)
	return lipgloss.NewStyle().Foreground(styles.T().Primary).Render(strings.Repeat("━", filled)) +
		styles.T().S().Subtle.Render(strings.Repeat("─", width-filled))
}

// Volume renders the volume indicator, e.g. "vol 80%" or "muted".
func Volume(level float64, muted bool) string {
	if muted {
		return "muted"
	}
	return fmt.Sprintf("vol %3d%%", int(level*100+0.5))
}
