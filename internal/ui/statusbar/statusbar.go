// Package statusbar renders the bottom status line: the latest message and
// the update download progress.
package statusbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/hymnchtv/internal/ui/render"
	"github.com/llehouerou/hymnchtv/internal/ui/styles"
)

// Height is the single status line.
const Height = 1

// Level is the severity of a status message.
type Level int

const (
	LevelInfo Level = iota
	LevelWarning
	LevelError
)

// Job is a long-running task shown on the right, such as a download.
type Job struct {
	Label string
	Done  int64
	Total int64 // 0 if unknown
	Text  string
}

// State holds what the status line shows.
type State struct {
	Message string
	Level   Level
	Hint    string // key hint shown when there is no message
	Job     *Job
}

func messageStyle(l Level) lipgloss.Style {
	switch l {
	case LevelWarning:
		return styles.T().S().Warning
	case LevelError:
		return styles.T().S().Error
	default:
		return styles.T().S().Base
	}
}

// Render draws the status line exactly width cells wide.
func Render(s State, width int) string {
	if width <= 0 {
		return ""
	}

	right := ""
	if s.Job != nil {
		right = renderJob(*s.Job, min(width/2, 48))
	}
	leftWidth := max(width-lipgloss.Width(right)-1, 0)

	var left string
	switch {
	case s.Message != "":
		left = messageStyle(s.Level).Render(render.TruncateEllipsis(s.Message, leftWidth))
	case s.Hint != "":
		left = styles.T().S().Subtle.Render(render.TruncateEllipsis(s.Hint, leftWidth))
	}
	if right == "" {
		return render.Pad(left, width)
	}
	return render.Row(left, right, width)
}

// renderJob draws "Label [━━──] text" in at most width cells.
func renderJob(j Job, width int) string {
	text := j.Text
	label := styles.T().S().Title.Render(j.Label)
	if j.Total <= 0 {
		return label + " " + styles.T().S().Muted.Render(text)
	}

	barWidth := max(width-lipgloss.Width(j.Label)-lipgloss.Width(text)-4, 4)
	filled := max(min(int(float64(barWidth)*float64(j.Done)/float64(j.Total)), barWidth), 0)
	bar := lipgloss.NewStyle().Foreground(styles.T().Primary).Render(strings.Repeat("━", filled)) +
		styles.T().S().Subtle.Render(strings.Repeat("─", barWidth-filled))
	return label + " [" + bar + "] " + styles.T().S().Muted.Render(text)
}
