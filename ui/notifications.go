// Package ui provides the graphical user interface for Tab Deck.
// This file contains the desktop notification system.
package ui

import (
	"os/exec"
	"runtime"

	"github.com/godbus/dbus/v5"

	"github.com/yllada/tabdeck/common"
)

// Notifier sends desktop notifications over the freedesktop D-Bus
// interface, falling back to notify-send when the session bus is not
// reachable.
type Notifier struct {
	enabled bool
	conn    *dbus.Conn
}

var _ common.Notifier = (*Notifier)(nil)

// NewNotifier connects to the session bus when possible. A failed
// connection is not an error; sends fall back to notify-send.
func NewNotifier(enabled bool) *Notifier {
	n := &Notifier{enabled: enabled}
	if runtime.GOOS != "linux" || !enabled {
		return n
	}

	conn, err := dbus.SessionBus()
	if err != nil {
		common.LogWarn("Session bus unavailable, notifications use notify-send: %v", err)
		return n
	}
	n.conn = conn
	return n
}

// Notify shows one notification. Disabled notifiers succeed silently.
func (n *Notifier) Notify(title, message string) error {
	if !n.enabled {
		return nil
	}

	if n.conn != nil {
		if err := n.notifyDBus(title, message); err == nil {
			return nil
		} else {
			common.LogWarn("D-Bus notification failed: %v", err)
		}
	}
	return n.notifySend(title, message)
}

func (n *Notifier) notifyDBus(title, message string) error {
	obj := n.conn.Object("org.freedesktop.Notifications", "/org/freedesktop/Notifications")
	call := obj.Call("org.freedesktop.Notifications.Notify", 0,
		common.AppName,        // app_name
		uint32(0),             // replaces_id
		"application-default", // app_icon
		title,
		message,
		[]string{},               // actions
		map[string]dbus.Variant{}, // hints
		int32(5000),              // timeout ms
	)
	return call.Err
}

func (n *Notifier) notifySend(title, message string) error {
	cmd := exec.Command("notify-send",
		"--app-name="+common.AppName,
		title,
		message,
	)
	if err := cmd.Run(); err != nil {
		return common.WrapError(err, "notify-send failed")
	}
	return nil
}

// Close releases the bus connection.
func (n *Notifier) Close() {
	if n.conn != nil {
		n.conn.Close()
	}
}
