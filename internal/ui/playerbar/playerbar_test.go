package playerbar

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/hymnchtv/internal/player"
)

func TestNewState(t *testing.T) {
	m := player.NewMock()
	assert.False(t, NewState(m).Visible())
	assert.False(t, NewState(nil).Visible())

	m.SetPosition(30*time.Second, 2*time.Minute)
	require.NoError(t, m.Play("/music/db12.mp3"))
	m.SetVolume(0.8)

	s := NewState(m)
	assert.True(t, s.Visible())
	assert.Equal(t, player.Playing, s.Status)
	assert.Equal(t, "db12", s.Title)
	assert.Equal(t, 30*time.Second, s.Position)
	assert.InDelta(t, 0.8, s.Volume, 1e-9)
}

func TestRender(t *testing.T) {
	assert.Empty(t, Render(State{}, 80))

	out := Render(State{
		Status:   player.Paused,
		Title:    "大本诗歌 12",
		Position: 65 * time.Second,
		Duration: 130 * time.Second,
		Volume:   0.5,
	}, 80)

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, Height)
	assert.Contains(t, out, "1:05 / 2:10")
	assert.Contains(t, out, "vol  50%")
	for _, l := range lines {
		assert.LessOrEqual(t, lipgloss.Width(l), 80)
	}
}

func TestProgress(t *testing.T) {
	assert.Equal(t, "━━━━━─────", Progress(time.Minute, 2*time.Minute, 10))
	assert.Equal(t, "───", Progress(0, 0, 3))
	assert.Equal(t, "━━━", Progress(3*time.Minute, time.Minute, 3))
}

func TestVolume(t *testing.T) {
	assert.Equal(t, "vol 100%", Volume(1, false))
	assert.Equal(t, "muted", Volume(1, true))
}
