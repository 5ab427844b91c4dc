// Package confirm provides a yes/no confirmation popup.
package confirm

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/hymnchtv/internal/ui"
	"github.com/llehouerou/hymnchtv/internal/ui/popup"
	"github.com/llehouerou/hymnchtv/internal/ui/render"
	"github.com/llehouerou/hymnchtv/internal/ui/styles"
)

var _ popup.Popup = (*Model)(nil)

// Model is a yes/no confirmation popup.
type Model struct {
	ui.Base
	title   string
	message string
	context any
	yes     bool
}

// New creates a confirmation. context is returned unchanged in Result.
func New(title, message string, context any) *Model {
	return &Model{title: title, message: message, context: context, yes: true}
}

// Context returns the value passed to New.
func (m *Model) Context() any { return m.context }

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
	case "y", "Y":
		return m, m.answer(true)
	case "n", "N", "esc", "q":
		return m, m.answer(false)
	case "left", "right", "h", "l", "tab":
		m.yes = !m.yes
	case "enter":
		return m, m.answer(m.yes)
	}
	return m, nil
}

func (m *Model) answer(yes bool) tea.Cmd {
	ctx := m.context
	return func() tea.Msg {
		return ActionMsg(Result{Confirmed: yes, Context: ctx})
	}
}

// View implements popup.Popup.
func (m *Model) View() string {
	s := styles.T().S()

	yes, no := s.Muted.Render("  Yes  "), s.Muted.Render("  No  ")
	if m.yes {
		yes = s.Cursor.Render("[ Yes ]")
	} else {
		no = s.Cursor.Render("[ No ]")
	}

	var lines []string
	lines = append(lines, s.Active.Render(m.title), "")
	width := max(m.Width(), 20)
	for l := range strings.SplitSeq(m.message, "\n") {
		lines = append(lines, render.Wrap(l, width)...)
	}
	lines = append(lines, "", yes+"   "+no, "", s.Subtle.Render("y/n · enter confirm · esc cancel"))
	return strings.Join(lines, "\n")
}
