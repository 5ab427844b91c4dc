package numberentry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/hymnchtv/internal/hymnal"
	"github.com/llehouerou/hymnchtv/internal/ui/testutil"
)

func newHarness(t hymnal.Type, initial string) (*Model, *testutil.PopupHarness) {
	m := New(t, initial)
	m.SetSize(40, 10)
	return m, testutil.NewPopupHarness(m)
}

func TestParse(t *testing.T) {
	ref, err := Parse(hymnal.DB, "12", false)
	require.NoError(t, err)
	assert.Equal(t, hymnal.Ref{Type: hymnal.DB, No: 12}, ref)

	ref, err = Parse(hymnal.DB, "3", true)
	require.NoError(t, err)
	assert.Equal(t, hymnal.Ref{Type: hymnal.DB, No: 3, Fu: true}, ref)

	_, err = Parse(hymnal.BB, "", false)
	assert.ErrorIs(t, err, errEmpty)

	_, err = Parse(hymnal.XB, "1", true)
	assert.ErrorIs(t, err, hymnal.ErrNoSupplement)

	_, err = Parse(hymnal.ER, "20", false)
	var gap *hymnal.GapError
	assert.ErrorAs(t, err, &gap)
}

func TestConfirm(t *testing.T) {
	_, h := newHarness(hymnal.BB, "1")
	h.SendKey("2")
	h.SendKey("3")
	h.SendEnter()

	act, ok := h.LastAction().(Confirm)
	require.True(t, ok)
	assert.Equal(t, hymnal.Ref{Type: hymnal.BB, No: 123}, act.Ref)
}

func TestRejectsNonDigits(t *testing.T) {
	m, h := newHarness(hymnal.DB, "")
	h.SendKey("a")
	h.SendKey("7")
	h.SendKey("x")

	assert.Equal(t, "7", m.Value())
}

func TestBackspace(t *testing.T) {
	m, h := newHarness(hymnal.DB, "45")
	h.SendBackspace()
	assert.Equal(t, "4", m.Value())
}

func TestInvalidKeepsPopupOpen(t *testing.T) {
	m, h := newHarness(hymnal.XB, "999")
	h.SendEnter()

	inv, ok := h.LastAction().(Invalid)
	require.True(t, ok)
	var rangeErr *hymnal.RangeError
	assert.ErrorAs(t, inv.Err, &rangeErr)
	assert.Contains(t, inv.Message, "169")
	assert.Equal(t, inv.Message, m.Error())
	assert.Contains(t, testutil.StripANSI(h.View()), "169")

	h.SendBackspace()
	assert.Empty(t, m.Error(), "editing clears the message")
}

func TestSupplementToggle(t *testing.T) {
	m, h := newHarness(hymnal.DB, "2")
	h.SendKey("f")
	assert.True(t, m.Supplement())
	assert.Contains(t, testutil.StripANSI(h.View()), "[x]")

	h.SendEnter()
	act, ok := h.LastAction().(Confirm)
	require.True(t, ok)
	assert.Equal(t, hymnal.Ref{Type: hymnal.DB, No: 2, Fu: true}, act.Ref)
}

func TestSupplementRejectedOutsideDB(t *testing.T) {
	_, h := newHarness(hymnal.ER, "5")
	h.SendKey("f")
	h.SendEnter()

	inv, ok := h.LastAction().(Invalid)
	require.True(t, ok)
	assert.ErrorIs(t, inv.Err, hymnal.ErrNoSupplement)
}

func TestCancel(t *testing.T) {
	_, h := newHarness(hymnal.DB, "")
	h.SendEscape()
	assert.IsType(t, Cancel{}, h.LastAction())
}

func TestInitialValueMustBeDigits(t *testing.T) {
	m := New(hymnal.DB, "x")
	assert.Empty(t, m.Value())
}
