package testutil

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/hymnchtv/internal/ui/action"
	"github.com/llehouerou/hymnchtv/internal/ui/popup"
)

// PopupHarness drives a popup.Popup the way the app does and records the
// commands it returns.
type PopupHarness struct {
	popup popup.Popup
	cmds  []tea.Cmd
}

// NewPopupHarness initializes p and captures its init command.
func NewPopupHarness(p popup.Popup) *PopupHarness {
	h := &PopupHarness{popup: p}
	if cmd := p.Init(); cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return h
}

// Popup returns the popup under test.
func (h *PopupHarness) Popup() popup.Popup { return h.popup }

// View returns the popup's rendered content.
func (h *PopupHarness) View() string { return h.popup.View() }

// SendMsg delivers msg and returns the resulting command.
func (h *PopupHarness) SendMsg(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.popup, cmd = h.popup.Update(msg)
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return cmd
}

// SendKey types the runes of key.
func (h *PopupHarness) SendKey(key string) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

// SendSpecialKey sends a non-rune key such as enter or escape.
func (h *PopupHarness) SendSpecialKey(keyType tea.KeyType) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: keyType})
}

func (h *PopupHarness) SendEnter() tea.Cmd     { return h.SendSpecialKey(tea.KeyEnter) }
func (h *PopupHarness) SendEscape() tea.Cmd    { return h.SendSpecialKey(tea.KeyEscape) }
func (h *PopupHarness) SendBackspace() tea.Cmd { return h.SendSpecialKey(tea.KeyBackspace) }

// LastCommand returns the most recent command, or nil.
func (h *PopupHarness) LastCommand() tea.Cmd {
	if len(h.cmds) == 0 {
		return nil
	}
	return h.cmds[len(h.cmds)-1]
}

// LastAction runs the most recent command and returns the action it
// carries, or nil when it did not produce an action.Msg.
func (h *PopupHarness) LastAction() action.Action {
	msg, ok := ExecuteCmd(h.LastCommand()).(action.Msg)
	if !ok {
		return nil
	}
	return msg.Action
}

// ExecuteCmd runs cmd and returns its message.
func ExecuteCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}
