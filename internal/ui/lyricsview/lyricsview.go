// Package lyricsview shows hymn text centered in a scrollable viewport.
//
// A terminal cannot change its font size, so zooming changes the column the
// text is wrapped to and, at large scales, adds a blank line between lines.
package lyricsview

import (
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/hymnchtv/internal/ui"
	"github.com/llehouerou/hymnchtv/internal/ui/render"
	"github.com/llehouerou/hymnchtv/internal/ui/styles"
)

const (
	MinScale     = 0.6
	MaxScale     = 2.0
	ScaleStep    = 0.2
	DefaultScale = 1.0

	baseColumn    = 36
	minColumn     = 8
	spacedAtScale = 1.4
)

// Model is the lyrics text view.
type Model struct {
	ui.Base
	viewport viewport.Model
	text     string
	scale    float64
	empty    string
}

// New creates an empty view at the default scale.
func New() *Model {
	return &Model{
		viewport: viewport.New(0, 0),
		scale:    DefaultScale,
		empty:    "歌词不存在",
	}
}

// SetSize resizes the view and rewraps the text.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.viewport.Width = width
	m.viewport.Height = height
	m.relayout()
}

// SetText replaces the text and scrolls back to the top.
func (m *Model) SetText(text string) {
	m.text = text
	m.relayout()
	m.viewport.GotoTop()
}

// SetEmptyText sets what is shown when there is no text.
func (m *Model) SetEmptyText(s string) {
	m.empty = s
	m.relayout()
}

// Text returns the current text.
func (m *Model) Text() string {
	return m.text
}

// Scale returns the current zoom factor.
func (m *Model) Scale() float64 {
	return m.scale
}

// SetScale sets the zoom factor, clamped and snapped to ScaleStep.
func (m *Model) SetScale(s float64) {
	m.scale = ClampScale(s)
	m.relayout()
}

// ZoomIn increases the scale by one step. It reports whether it changed.
func (m *Model) ZoomIn() bool {
	return m.zoom(ScaleStep)
}

// ZoomOut decreases the scale by one step. It reports whether it changed.
func (m *Model) ZoomOut() bool {
	return m.zoom(-ScaleStep)
}

func (m *Model) zoom(delta float64) bool {
	next := ClampScale(m.scale + delta)
	if next == m.scale {
		return false
	}
	offset := m.viewport.ScrollPercent()
	m.scale = next
	m.relayout()
	m.restore(offset)
	return true
}

// restore keeps the reading position roughly in place after a rewrap.
func (m *Model) restore(percent float64) {
	maxOffset := max(m.viewport.TotalLineCount()-m.viewport.Height, 0)
	m.viewport.SetYOffset(int(math.Round(percent * float64(maxOffset))))
}

func (m *Model) ScrollDown(n int) { m.viewport.LineDown(n) }
func (m *Model) ScrollUp(n int)   { m.viewport.LineUp(n) }
func (m *Model) PageDown()        { m.viewport.HalfViewDown() }
func (m *Model) PageUp()          { m.viewport.HalfViewUp() }

// AtTop reports whether the first line is visible.
func (m *Model) AtTop() bool { return m.viewport.AtTop() }

// AtBottom reports whether the last line is visible.
func (m *Model) AtBottom() bool { return m.viewport.AtBottom() }

// Update forwards mouse wheel and scroll keys to the viewport.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return cmd
}

// View renders the visible part of the text.
func (m *Model) View() string {
	if m.Width() <= 0 || m.Height() <= 0 {
		return ""
	}
	return m.viewport.View()
}

func (m *Model) relayout() {
	if m.Width() <= 0 {
		return
	}
	if strings.TrimSpace(m.text) == "" {
		msg := styles.T().S().Muted.Render(m.empty)
		m.viewport.SetContent(render.Center(msg, m.Width()))
		return
	}
	lines := Layout(m.text, m.scale, m.Width())
	m.viewport.SetContent(strings.Join(lines, "\n"))
}

// ClampScale bounds s to [MinScale, MaxScale] and snaps it to ScaleStep.
func ClampScale(s float64) float64 {
	if s <= 0 || math.IsNaN(s) {
		return DefaultScale
	}
	steps := math.Round((s - MinScale) / ScaleStep)
	s = MinScale + steps*ScaleStep
	s = math.Round(s*10) / 10
	return min(max(s, MinScale), MaxScale)
}

// ColumnWidth returns the wrap column for scale inside width cells.
func ColumnWidth(scale float64, width int) int {
	col := int(math.Round(baseColumn * scale))
	col = max(col, minColumn)
	return max(min(col, width), 1)
}

// Layout wraps text to the scale's column and centers every line within
// width. Blank lines between stanzas are kept.
func Layout(text string, scale float64, width int) []string {
	col := ColumnWidth(scale, width)
	spaced := scale >= spacedAtScale

	text = strings.ReplaceAll(text, "\r\n", "\n")
	var out []string
	for raw := range strings.SplitSeq(text, "\n") {
		line := strings.TrimSpace(render.Sanitize(raw))
		if line == "" {
			out = append(out, "")
			continue
		}
		for _, w := range render.Wrap(line, col) {
			out = append(out, render.Center(w, width))
		}
		if spaced {
			out = append(out, "")
		}
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return out
}
