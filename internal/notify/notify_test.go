package notify

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToaster_ReplacesPrevious(t *testing.T) {
	rec := &Recorder{}
	toaster := NewToaster(rec, nil)

	toaster.Info("Update available", "hymnchtv 2.1.0")
	toaster.Error("Playback failed", errors.New("no handler"))

	sent := rec.Sent()
	require.Len(t, sent, 2)
	assert.Equal(t, uint32(0), sent[0].ReplacesID)
	assert.Equal(t, UrgencyNormal, sent[0].Urgency)
	assert.Equal(t, uint32(1), sent[1].ReplacesID)
	assert.Equal(t, UrgencyCritical, sent[1].Urgency)
	assert.Equal(t, "no handler", sent[1].Body)
	assert.Equal(t, int32(toastTimeout), sent[1].Timeout)
}

func TestToaster_NilErrorIgnored(t *testing.T) {
	rec := &Recorder{}
	NewToaster(rec, nil).Error("Playback failed", nil)
	assert.Empty(t, rec.Sent())
}

func TestToaster_FailureKeepsLastID(t *testing.T) {
	rec := &Recorder{}
	toaster := NewToaster(rec, nil)

	toaster.Info("first", "")
	rec.SetError(errors.New("bus closed"))
	toaster.Info("second", "")
	rec.SetError(nil)
	toaster.Info("third", "")

	sent := rec.Sent()
	require.Len(t, sent, 2)
	assert.Equal(t, uint32(1), sent[1].ReplacesID)
}

func TestToaster_NilNotifier(t *testing.T) {
	assert.NotPanics(t, func() {
		NewToaster(nil, nil).Info("title", "body")
	})
}
