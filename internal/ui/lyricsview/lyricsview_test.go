package lyricsview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/hymnchtv/internal/ui/testutil"
)

func TestClampScale(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{1.0, 1.0},
		{1.05, 1.0},
		{1.19, 1.2},
		{0.1, MinScale},
		{5, MaxScale},
		{0, DefaultScale},
		{-1, DefaultScale},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, ClampScale(tt.in), 1e-9, "ClampScale(%v)", tt.in)
	}
}

func TestColumnWidth(t *testing.T) {
	assert.Equal(t, 36, ColumnWidth(1.0, 80))
	assert.Equal(t, 72, ColumnWidth(2.0, 80))
	assert.Equal(t, 40, ColumnWidth(2.0, 40), "bounded by the view width")
	assert.Equal(t, 22, ColumnWidth(0.6, 80))
	assert.Equal(t, 1, ColumnWidth(1.0, 0))
}

func TestLayout_CentersAndKeepsStanzas(t *testing.T) {
	lines := Layout("一二三四\n\n五六\n\n", 1.0, 20)

	require.Len(t, lines, 3)
	assert.Equal(t, "      一二三四", lines[0])
	assert.Empty(t, lines[1])
	assert.Equal(t, "        五六", lines[2])
}

func TestLayout_WrapsLongLines(t *testing.T) {
	long := strings.Repeat("主", 30) // 60 cells
	lines := Layout(long, 1.0, 80)

	require.Len(t, lines, 2)
	for _, l := range lines {
		assert.LessOrEqual(t, testutil.MeasureWidth(strings.TrimSpace(l)), 36)
	}
}

func TestLayout_SpacedAtLargeScale(t *testing.T) {
	lines := Layout("一\n二", 1.6, 40)
	assert.Len(t, lines, 3)
	assert.Empty(t, lines[1])

	lines = Layout("一\n二", 1.0, 40)
	assert.Len(t, lines, 2)
}

func TestLayout_NormalizesLineEndings(t *testing.T) {
	lines := Layout("一\r\n二", 1.0, 10)
	require.Len(t, lines, 2)
	assert.NotContains(t, lines[0], "\r")
}

func TestModel_ViewShowsText(t *testing.T) {
	m := New()
	m.SetSize(40, 5)
	m.SetText("第一行\n第二行")

	view := testutil.StripANSI(m.View())
	assert.Contains(t, view, "第一行")
	assert.Contains(t, view, "第二行")
}

func TestModel_EmptyText(t *testing.T) {
	m := New()
	m.SetSize(40, 5)
	m.SetEmptyText("missing")
	m.SetText("  ")

	assert.Contains(t, testutil.StripANSI(m.View()), "missing")
}

func TestModel_ZeroSize(t *testing.T) {
	m := New()
	m.SetText("text")
	assert.Empty(t, m.View())
}

func TestModel_Zoom(t *testing.T) {
	m := New()
	m.SetSize(80, 10)

	assert.True(t, m.ZoomIn())
	assert.InDelta(t, 1.2, m.Scale(), 1e-9)
	assert.True(t, m.ZoomOut())
	assert.True(t, m.ZoomOut())
	assert.InDelta(t, 0.8, m.Scale(), 1e-9)

	m.SetScale(MaxScale)
	assert.False(t, m.ZoomIn(), "already at max")
	m.SetScale(MinScale)
	assert.False(t, m.ZoomOut(), "already at min")
}

func TestModel_Scroll(t *testing.T) {
	var b strings.Builder
	for range 20 {
		b.WriteString("行\n")
	}
	m := New()
	m.SetSize(20, 5)
	m.SetText(b.String())

	assert.True(t, m.AtTop())
	m.ScrollDown(3)
	assert.False(t, m.AtTop())
	m.ScrollUp(3)
	assert.True(t, m.AtTop())

	for range 10 {
		m.PageDown()
	}
	assert.True(t, m.AtBottom())

	m.SetText("新")
	assert.True(t, m.AtTop(), "new text starts at the top")
}
