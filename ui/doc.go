// Package ui provides the graphical user interface for Tab Deck.
//
// This package implements the GTK4-based user interface including:
//
//   - Main application window with the plugin tab notebook
//   - System tray indicator for quick access
//   - Plugin manager and theme dialogs
//   - Desktop notifications
//
// # Architecture
//
// The UI is built on GTK4 using the gotk4 bindings. Key components:
//
//   - Application: GTK application lifecycle, services, and discovery
//   - MainWindow: the notebook window; it implements shell.View so the
//     shell controller drives every tab mutation
//   - TrayIndicator: system tray integration for background operation
//   - Notifier: desktop notifications over D-Bus
//
// Plugin widgets are declarative content values rendered into GTK by
// render.go; a plugin may also hand back a gtk.Widgetter directly.
//
// # Thread Safety
//
// GTK operations must execute on the main thread. Discovery events
// arrive from a background worker and are pumped through glib.IdleAdd,
// as are tray menu clicks.
//
// # File Organization
//
//   - app.go: application lifecycle and service wiring
//   - main_window.go: main window layout, menu, and shell.View
//   - render.go: declarative plugin content rendering
//   - plugin_dialog.go: enable/disable plugin manager dialog
//   - theme_dialog.go: theme selection, import, and export
//   - tray.go: system tray indicator
//   - icons.go: icon generation for the tray
//   - styles.go: CSS styling and theme application
//   - notifications.go: desktop notification integration
package ui
