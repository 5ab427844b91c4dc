//go:build linux

package notify

import (
	"github.com/godbus/dbus/v5"
)

const (
	dbusNotifyDest      = "org.freedesktop.Notifications"
	dbusNotifyPath      = "/org/freedesktop/Notifications"
	dbusNotifyInterface = "org.freedesktop.Notifications"

	appName = "hymnchtv"
)

// dbusNotifier sends notifications via D-Bus.
type dbusNotifier struct {
	obj dbus.BusObject
}

// New creates a Notifier that sends desktop notifications via D-Bus.
// Returns a no-op notifier if D-Bus is unavailable.
func New() (Notifier, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return nopNotifier{}, nil //nolint:nilerr // no session bus means no notifications
	}
	return &dbusNotifier{obj: conn.Object(dbusNotifyDest, dbusNotifyPath)}, nil
}

func (n *dbusNotifier) Notify(notif Notification) (uint32, error) {
	hints := map[string]dbus.Variant{
		"urgency":       dbus.MakeVariant(byte(notif.Urgency)),
		"desktop-entry": dbus.MakeVariant(appName),
	}

	// Notify(app_name, replaces_id, icon, summary, body, actions, hints, timeout) -> id
	call := n.obj.Call(
		dbusNotifyInterface+".Notify",
		0,
		appName,
		notif.ReplacesID,
		notif.Icon,
		notif.Title,
		notif.Body,
		[]string{},
		hints,
		notif.Timeout,
	)
	if call.Err != nil {
		return 0, call.Err
	}

	var id uint32
	if err := call.Store(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (n *dbusNotifier) Close(id uint32) error {
	return n.obj.Call(dbusNotifyInterface+".CloseNotification", 0, id).Err
}
