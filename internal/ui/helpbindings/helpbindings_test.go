package helpbindings

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/hymnchtv/internal/hymnal"
	"github.com/llehouerou/hymnchtv/internal/ui/testutil"
)

func newHarness(t hymnal.Type, height int) (*Model, *testutil.PopupHarness) {
	m := New(t)
	m.SetSize(80, height)
	return m, testutil.NewPopupHarness(m)
}

func TestClose(t *testing.T) {
	for _, key := range []string{"?", "q"} {
		_, h := newHarness(hymnal.DB, 24)
		h.SendKey(key)
		assert.IsType(t, Close{}, h.LastAction(), key)
	}

	_, h := newHarness(hymnal.DB, 24)
	h.SendEscape()
	assert.IsType(t, Close{}, h.LastAction())
}

func TestScroll(t *testing.T) {
	m, h := newHarness(hymnal.ER, 12)
	require.Positive(t, m.maxScroll())

	h.SendKey("k")
	assert.Equal(t, 0, m.scrollOffset)
	h.SendKey("j")
	h.SendKey("j")
	assert.Equal(t, 2, m.scrollOffset)
	h.SendKey("G")
	assert.Equal(t, m.maxScroll(), m.scrollOffset)
	h.SendKey("j")
	assert.Equal(t, m.maxScroll(), m.scrollOffset)
	h.SendKey("g")
	assert.Equal(t, 0, m.scrollOffset)
}

func TestView_ShowsContextsAndRules(t *testing.T) {
	_, h := newHarness(hymnal.BB, 200)
	view := testutil.StripANSI(h.View())

	assert.Contains(t, view, "Global")
	assert.Contains(t, view, "Number Entry")
	assert.Contains(t, view, "space")
	assert.Contains(t, view, "Numbers 1 to 1005")
	assert.Contains(t, view, "38-100")
	assert.NotContains(t, view, "j/k scroll")
}

func TestView_ScrollFooter(t *testing.T) {
	_, h := newHarness(hymnal.DB, 12)
	assert.Contains(t, testutil.StripANSI(h.View()), "j/k scroll")
}

func TestSetContexts(t *testing.T) {
	m := New(hymnal.DB)
	m.SetContexts([]string{"playback"})
	m.SetSize(80, 200)
	view := testutil.StripANSI(m.View())

	assert.Contains(t, view, "Playback")
	assert.NotContains(t, view, "Global")
}

func TestKeyLabel(t *testing.T) {
	assert.Equal(t, "space", KeyLabel([]string{" "}))
	assert.Equal(t, "q, ctrl+c", KeyLabel([]string{"q", "ctrl+c"}))
	assert.Equal(t, "1…9", KeyLabel(strings.Split("1 2 3 4 5 6 7 8 9", " ")))
}

func TestNumberingRules(t *testing.T) {
	db := NumberingRules(hymnal.DB)
	assert.Equal(t, []string{"Numbers 1 to 780", "Supplement 1 to 6 (f in number entry)"}, db)

	assert.Equal(t, []string{"Numbers 1 to 169"}, NumberingRules(hymnal.XB))

	er := NumberingRules(hymnal.ER)
	assert.Equal(t, "  18-100, 125-200, 213-300, 324-400", er[2])
}

func TestView_ZeroSize(t *testing.T) {
	m := New(hymnal.DB)
	assert.Empty(t, m.View())
}
