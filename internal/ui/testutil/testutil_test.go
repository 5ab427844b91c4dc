package testutil

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/hymnchtv/internal/ui/action"
	"github.com/llehouerou/hymnchtv/internal/ui/popup"
)

func TestStripANSI(t *testing.T) {
	assert.Equal(t, "大本", StripANSI("\x1b[1;31m大本\x1b[0m"))
	assert.Equal(t, "x", StripANSI("\x1b_Ga=T,f=100;AAAA\x1b\\x"))
}

func TestMeasureWidth(t *testing.T) {
	assert.Equal(t, 4, MeasureWidth("\x1b[1m诗歌\x1b[0m"))
}

func TestLines(t *testing.T) {
	assert.Equal(t, []string{"a", "", "b"}, Lines("a\n\nb\n  \n"))
	assert.Equal(t, "b line", FindLine("a\nb line", "b"))
	assert.Empty(t, FindLine("a", "z"))
}

type done struct{}

func (done) ActionType() string { return "test.done" }

type stubPopup struct{ keys []string }

func (p *stubPopup) Init() tea.Cmd { return nil }

func (p *stubPopup) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}
	p.keys = append(p.keys, key.String())
	if key.Type == tea.KeyEnter {
		return p, func() tea.Msg { return action.Msg{Source: "stub", Action: done{}} }
	}
	return p, nil
}

func (p *stubPopup) View() string      { return "stub" }
func (p *stubPopup) SetSize(_, _ int) {}

func TestPopupHarness(t *testing.T) {
	p := &stubPopup{}
	h := NewPopupHarness(p)

	assert.Nil(t, h.LastCommand())
	assert.Nil(t, h.LastAction())

	h.SendKey("1")
	h.SendEscape()
	h.SendEnter()

	assert.Equal(t, []string{"1", "esc", "enter"}, p.keys)
	require.NotNil(t, h.LastCommand())
	assert.IsType(t, done{}, h.LastAction())
	assert.Equal(t, "stub", h.View())
}
