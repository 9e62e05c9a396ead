//go:build linux

package notify

import (
	"fmt"
	"sync"

	"github.com/godbus/dbus/v5"
)

const (
	serverName = "org.freedesktop.Notifications"
	serverPath = dbus.ObjectPath("/org/freedesktop/Notifications")
)

// Bus talks to the notification server on the session bus. A notification
// with a category replaces the last one sent with that category.
type Bus struct {
	app string
	obj dbus.BusObject

	mu   sync.Mutex
	last map[string]uint32
}

// New connects to the session bus. Without one it returns Nop.
func New(app string) (Notifier, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return Nop{}, nil //nolint:nilerr // headless sessions have no bus
	}
	return &Bus{
		app:  app,
		obj:  conn.Object(serverName, serverPath),
		last: make(map[string]uint32),
	}, nil
}

// Notify implements Notifier.
func (b *Bus) Notify(n Notification) (uint32, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	call := b.obj.Call(serverName+".Notify", 0, notifyArgs(b.app, n, b.last[n.Category])...)
	if call.Err != nil {
		return 0, fmt.Errorf("dbus notify: %w", call.Err)
	}
	var id uint32
	if err := call.Store(&id); err != nil {
		return 0, fmt.Errorf("dbus notify reply: %w", err)
	}
	if n.Category != "" {
		b.last[n.Category] = id
	}
	return id, nil
}

// notifyArgs lays out the Notify call: app_name, replaces_id, app_icon,
// summary, body, actions, hints, expire_timeout.
func notifyArgs(app string, n Notification, replaces uint32) []any {
	hints := map[string]dbus.Variant{
		"urgency":       dbus.MakeVariant(byte(n.Urgency)),
		"desktop-entry": dbus.MakeVariant(app),
	}
	if n.Category != "" {
		hints["category"] = dbus.MakeVariant(n.Category)
	}
	if n.SuppressSound {
		hints["suppress-sound"] = dbus.MakeVariant(true)
	}
	return []any{app, replaces, n.Icon, n.Summary, n.Body, []string{}, hints, expireMillis(n.Timeout)}
}
