//go:build linux

package notify

import "github.com/godbus/dbus/v5"

// org.freedesktop.Notifications service coordinates.
const (
	notifyService = "org.freedesktop.Notifications"
	notifyPath    = "/org/freedesktop/Notifications"
)

// busNotifier sends messages to the session notification daemon.
type busNotifier struct {
	obj dbus.BusObject
}

// New connects to the session bus. Headless and sandboxed sessions have
// no bus; those get the no-op notifier instead of an error, so callers
// never branch on availability.
func New() (Notifier, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return noopNotifier{}, nil
	}
	return &busNotifier{obj: conn.Object(notifyService, notifyPath)}, nil
}

func (b *busNotifier) Send(m Message) (uint32, error) {
	// Transient: binding toasts are pure status, they must not pile up
	// in the notification history.
	hints := map[string]dbus.Variant{
		"urgency":   dbus.MakeVariant(byte(m.Level)),
		"transient": dbus.MakeVariant(true),
	}

	// Notify(app_name, replaces_id, app_icon, summary, body, actions,
	// hints, expire_timeout) -> id
	var id uint32
	err := b.obj.Call(notifyService+".Notify", 0,
		"crest", m.Replaces, m.Icon, m.Summary, m.Body,
		[]string{}, hints, m.ExpireMs,
	).Store(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (b *busNotifier) Dismiss(id uint32) error {
	return b.obj.Call(notifyService+".CloseNotification", 0, id).Err
}
