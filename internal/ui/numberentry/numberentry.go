// Package numberentry is the popup used to jump to a hymn by number.
package numberentry

import (
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/hymnchtv/internal/errmsg"
	"github.com/llehouerou/hymnchtv/internal/hymnal"
	"github.com/llehouerou/hymnchtv/internal/ui"
	"github.com/llehouerou/hymnchtv/internal/ui/popup"
	"github.com/llehouerou/hymnchtv/internal/ui/styles"
)

var _ popup.Popup = (*Model)(nil)

var errEmpty = errors.New("enter a hymn number")

// Model is the number entry popup.
type Model struct {
	ui.Base
	input  textinput.Model
	hymnal hymnal.Type
	fu     bool
	err    string
}

// New creates a number entry for hymnal t, optionally pre-filled with the
// digit that opened it.
func New(t hymnal.Type, initial string) *Model {
	ti := textinput.New()
	ti.Prompt = "# "
	highest := t.Max()
	if t == hymnal.DB {
		highest = hymnal.DBNoMax
	}
	ti.Placeholder = "1-" + strconv.Itoa(highest)
	ti.CharLimit = 4
	ti.Width = 10
	if digitsOnly(initial) {
		ti.SetValue(initial)
		ti.CursorEnd()
	}
	return &Model{input: ti, hymnal: t}
}

// Init focuses the input.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.input.Focus(), textinput.Blink)
}

// Value returns the typed digits.
func (m *Model) Value() string { return m.input.Value() }

// Supplement reports whether the supplement toggle is on.
func (m *Model) Supplement() bool { return m.fu }

// Error returns the last validation message.
func (m *Model) Error() string { return m.err }

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch key.String() {
	case "esc":
		return m, func() tea.Msg { return ActionMsg(Cancel{}) }
	case "enter":
		return m, m.confirm()
	case "f":
		m.fu = !m.fu
		m.err = ""
		return m, nil
	case "backspace", "delete", "left", "right", "home", "end", "ctrl+a", "ctrl+e", "ctrl+u":
	default:
		if key.Type != tea.KeyRunes || !digitsOnly(string(key.Runes)) {
			return m, nil
		}
	}

	m.err = ""
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) confirm() tea.Cmd {
	ref, err := Parse(m.hymnal, m.input.Value(), m.fu)
	if err != nil {
		m.err = errmsg.Validation(err)
		text := m.err
		return func() tea.Msg { return ActionMsg(Invalid{Err: err, Message: text}) }
	}
	return func() tea.Msg { return ActionMsg(Confirm{Ref: ref}) }
}

// Parse validates a typed number against hymnal t.
func Parse(t hymnal.Type, text string, fu bool) (hymnal.Ref, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return hymnal.Ref{}, errEmpty
	}
	no, err := strconv.Atoi(text)
	if err != nil {
		return hymnal.Ref{}, errEmpty
	}
	abs, err := hymnal.Validate(t, no, fu)
	if err != nil {
		return hymnal.Ref{}, err
	}
	return hymnal.FromAbsolute(t, abs), nil
}

// View implements popup.Popup.
func (m *Model) View() string {
	s := styles.T().S()

	title := s.Active.Render("跳转 · " + m.hymnal.Title())
	fu := s.Muted.Render("[ ] 补充")
	if m.fu {
		fu = s.Warning.Render("[x] 补充")
	}

	lines := []string{title, "", m.input.View() + "  " + fu}
	if m.err != "" {
		lines = append(lines, "", s.Error.Render(m.err))
	}
	lines = append(lines, "", s.Subtle.Render("enter 跳转  f 补充  esc 取消"))
	return strings.Join(lines, "\n")
}

func digitsOnly(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
