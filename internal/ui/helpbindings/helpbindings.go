// Package helpbindings provides a scrollable popup listing the key
// bindings and the numbering rules of the current hymnal.
package helpbindings

import (
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/hymnchtv/internal/hymnal"
	"github.com/llehouerou/hymnchtv/internal/keymap"
	"github.com/llehouerou/hymnchtv/internal/ui"
	"github.com/llehouerou/hymnchtv/internal/ui/popup"
	"github.com/llehouerou/hymnchtv/internal/ui/render"
	"github.com/llehouerou/hymnchtv/internal/ui/styles"
)

var _ popup.Popup = (*Model)(nil)

// Model holds the state for the help popup.
type Model struct {
	ui.Base
	hymnal       hymnal.Type
	bindings     []keymap.Binding
	scrollOffset int
}

// New creates a help popup for hymnal t showing every context.
func New(t hymnal.Type) *Model {
	m := &Model{hymnal: t}
	m.SetContexts(keymap.Contexts)
	return m
}

// SetContexts sets which binding contexts to display, in keymap order.
func (m *Model) SetContexts(contexts []string) {
	m.bindings = nil
	for _, ctx := range keymap.Contexts {
		if slices.Contains(contexts, ctx) {
			m.bindings = append(m.bindings, keymap.ByContext(ctx)...)
		}
	}
	m.scrollOffset = 0
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "?", "esc", "q":
		return m, func() tea.Msg { return ActionMsg(Close{}) }
	case "j", "down":
		m.scrollOffset = min(m.scrollOffset+1, m.maxScroll())
	case "k", "up":
		m.scrollOffset = max(m.scrollOffset-1, 0)
	case "g", "home":
		m.scrollOffset = 0
	case "G", "end":
		m.scrollOffset = m.maxScroll()
	}
	return m, nil
}

// View implements popup.Popup.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	s := styles.T().S()

	lines := m.lines()
	width := 0
	for _, l := range lines {
		width = max(width, lipgloss.Width(l))
	}

	end := min(m.scrollOffset+m.visibleHeight(), len(lines))
	visible := lines[min(m.scrollOffset, end):end]
	for i, l := range visible {
		visible[i] = render.Pad(l, width)
	}

	footer := "?/esc close"
	if len(lines) > m.visibleHeight() {
		footer = "j/k scroll · " + footer
	}

	return s.Title.Render("Help") + "\n\n" +
		strings.Join(visible, "\n") + "\n\n" +
		s.Subtle.Render(footer)
}

func (m *Model) lines() []string {
	t := styles.T()
	keyStyle := lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	headerStyle := lipgloss.NewStyle().Foreground(t.Secondary).Bold(true)

	keyWidth := 0
	for _, b := range m.bindings {
		keyWidth = max(keyWidth, lipgloss.Width(KeyLabel(b.Keys)))
	}
	rule := t.S().Subtle.Render(render.Separator(keyWidth + 16))

	var lines []string
	context := ""
	for _, b := range m.bindings {
		if b.Context != context {
			if context != "" {
				lines = append(lines, "")
			}
			label := keymap.ContextLabels[b.Context]
			if label == "" {
				label = b.Context
			}
			lines = append(lines, headerStyle.Render(label), rule)
			context = b.Context
		}
		lines = append(lines, keyStyle.Render(render.Pad(KeyLabel(b.Keys), keyWidth))+"  "+t.S().Base.Render(b.Description))
	}

	lines = append(lines, "", headerStyle.Render(m.hymnal.Title()), rule)
	for _, l := range NumberingRules(m.hymnal) {
		lines = append(lines, t.S().Muted.Render(l))
	}
	return lines
}

// KeyLabel joins keys for display, naming the space bar.
func KeyLabel(keys []string) string {
	out := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		out[i] = k
	}
	if len(out) > 4 {
		return out[0] + "…" + out[len(out)-1]
	}
	return strings.Join(out, ", ")
}

// NumberingRules describes the valid numbers of hymnal t.
func NumberingRules(t hymnal.Type) []string {
	if t == hymnal.DB {
		return []string{
			fmt.Sprintf("Numbers 1 to %d", hymnal.DBNoMax),
			fmt.Sprintf("Supplement 1 to %d (f in number entry)", hymnal.DBSNoMax),
		}
	}
	lines := []string{fmt.Sprintf("Numbers 1 to %d", t.Max())}
	ranges := hymnal.Ranges(t)
	if len(ranges) == 0 {
		return lines
	}
	lines = append(lines, "Unused numbers:")
	for chunk := range slices.Chunk(ranges, 4) {
		parts := make([]string, len(chunk))
		for i, r := range chunk {
			parts[i] = fmt.Sprintf("%d-%d", r.Lower, r.Upper)
		}
		lines = append(lines, "  "+strings.Join(parts, ", "))
	}
	return lines
}

func (m *Model) visibleHeight() int {
	return max(m.Height()-6, 5)
}

func (m *Model) maxScroll() int {
	return max(len(m.lines())-m.visibleHeight(), 0)
}
