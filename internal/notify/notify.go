// Package notify provides desktop notifications via D-Bus.
package notify

import (
	"sync"

	"go.uber.org/zap"
)

// Urgency represents notification priority levels per freedesktop spec.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

const toastTimeout = 4000

// Notification contains data for a desktop notification.
type Notification struct {
	Title      string  // Summary text (required)
	Body       string  // Body text (optional, supports basic markup)
	Icon       string  // Path to image file or icon name (optional)
	Timeout    int32   // ms, -1 = server default, 0 = never expire
	ReplacesID uint32  // 0 = new notification, >0 = replace existing
	Urgency    Urgency // Low, Normal, Critical
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify sends a notification and returns its ID.
	// Returns 0 and nil error if notifications are disabled or unavailable.
	Notify(n Notification) (uint32, error)
	// Close closes a notification by ID.
	Close(id uint32) error
}

// nopNotifier is used when no notification service is reachable.
type nopNotifier struct{}

func (nopNotifier) Notify(_ Notification) (uint32, error) { return 0, nil }

func (nopNotifier) Close(_ uint32) error { return nil }

// Toaster shows short-lived messages. Each toast replaces the previous
// one so that only the latest message stays on screen.
type Toaster struct {
	notifier Notifier
	logger   *zap.Logger

	mu     sync.Mutex
	lastID uint32
}

// NewToaster wraps n. A nil notifier drops every toast.
func NewToaster(n Notifier, logger *zap.Logger) *Toaster {
	if n == nil {
		n = nopNotifier{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Toaster{notifier: n, logger: logger}
}

// Info shows an informational toast.
func (t *Toaster) Info(title, body string) {
	t.send(Notification{Title: title, Body: body, Urgency: UrgencyNormal})
}

// Error shows a failure toast.
func (t *Toaster) Error(title string, err error) {
	if err == nil {
		return
	}
	t.send(Notification{Title: title, Body: err.Error(), Urgency: UrgencyCritical})
}

func (t *Toaster) send(n Notification) {
	t.mu.Lock()
	defer t.mu.Unlock()

	n.ReplacesID = t.lastID
	n.Timeout = toastTimeout
	id, err := t.notifier.Notify(n)
	if err != nil {
		t.logger.Debug("notification failed", zap.String("title", n.Title), zap.Error(err))
		return
	}
	t.lastID = id
}
