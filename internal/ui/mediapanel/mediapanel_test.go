package mediapanel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/hymnchtv/internal/hymnal"
	"github.com/llehouerou/hymnchtv/internal/media"
	"github.com/llehouerou/hymnchtv/internal/ui/action"
	"github.com/llehouerou/hymnchtv/internal/ui/testutil"
)

var bb5 = hymnal.Ref{Type: hymnal.BB, No: 5}

func newPanel() *Model {
	m := New()
	m.SetSize(Width, 12)
	m.SetHymn(bb5, map[media.Kind]media.Record{
		media.KindAccompaniment: {
			Key:      media.Key{Hymn: bb5, Kind: media.KindAccompaniment},
			FilePath: "/music/bb5.mp3",
		},
		media.KindLink: {
			Key: media.Key{Hymn: bb5, Kind: media.KindLink},
			URI: "https://youtu.be/abc",
		},
	})
	return m
}

func TestCursorWraps(t *testing.T) {
	m := newPanel()
	assert.Equal(t, media.KindAccompaniment, m.Selected())

	m.MoveUp()
	assert.Equal(t, media.KindLink, m.Selected())
	m.MoveDown()
	m.MoveDown()
	assert.Equal(t, media.KindTeaching, m.Selected())
}

func TestActivate_Stored(t *testing.T) {
	m := newPanel()
	cmd := m.Activate()
	require.NotNil(t, cmd)

	msg := testutil.ExecuteCmd(cmd).(action.Msg)
	play, ok := msg.Action.(Play)
	require.True(t, ok)
	assert.Equal(t, "/music/bb5.mp3", play.Record.FilePath)
}

func TestPlayKind_Missing(t *testing.T) {
	m := newPanel()
	msg := testutil.ExecuteCmd(m.PlayKind(media.KindSinging)).(action.Msg)

	missing, ok := msg.Action.(Missing)
	require.True(t, ok)
	assert.Equal(t, media.Key{Hymn: bb5, Kind: media.KindSinging}, missing.Key)
	assert.Equal(t, media.KindSinging, m.Selected(), "shortcut moves the cursor")
}

func TestSetHymn_KeepsCursorKind(t *testing.T) {
	m := newPanel()
	m.Select(media.KindMidi)
	m.SetHymn(hymnal.Ref{Type: hymnal.BB, No: 6}, nil)

	assert.Equal(t, media.KindMidi, m.Selected())
	assert.Equal(t, 0, m.Count())
}

func TestLocation(t *testing.T) {
	assert.Equal(t, "/a.mp3", Location(media.Record{FilePath: "/a.mp3", URI: "http://x"}))
	assert.Equal(t, "http://x", Location(media.Record{URI: "http://x"}))
}

func TestView(t *testing.T) {
	m := newPanel()
	view := testutil.StripANSI(m.View())

	assert.Contains(t, view, "伴奏")
	assert.Contains(t, view, "/music/bb5.mp3")
	assert.Contains(t, view, "youtu.be")
	assert.Contains(t, view, "未设置")
	assert.Contains(t, view, "> 伴奏")

	for _, line := range testutil.Lines(view) {
		assert.LessOrEqual(t, testutil.MeasureWidth(line), Width)
	}
}

func TestView_TooSmall(t *testing.T) {
	m := New()
	m.SetSize(3, 2)
	assert.Empty(t, m.View())
}
