//go:build linux

package notify

import (
	"os"
	"testing"
)

func TestNotifySendsNotification(t *testing.T) {
	if os.Getenv("DBUS_SESSION_BUS_ADDRESS") == "" {
		t.Skip("no D-Bus session available")
	}

	notifier, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	id, err := notifier.Notify(Notification{
		Title:   "hymnchtv test",
		Body:    "Test notification from unit test",
		Timeout: 1000,
		Urgency: UrgencyLow,
	})
	if err != nil {
		t.Fatalf("Notify() error: %v", err)
	}
	if id == 0 {
		t.Error("Notify() returned id=0, expected non-zero")
	}
	if err := notifier.Close(id); err != nil {
		t.Errorf("Close() error: %v", err)
	}
}
