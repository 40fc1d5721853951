// Package ui provides the graphical user interface for Tab Deck.
// This file contains the system tray indicator functionality.
package ui

import (
	"fmt"
	"sync"

	"fyne.io/systray"
	"github.com/diamondburned/gotk4/pkg/glib/v2"

	"github.com/yllada/tabdeck/common"
)

// trayIcon is pre-generated once for performance.
var trayIcon = GenerateTrayIcon()

// TrayIndicator manages the system tray icon and menu. It provides
// quick access to plugin tabs without opening the main window.
type TrayIndicator struct {
	app *Application

	mu         sync.Mutex
	ready      bool
	statusItem *systray.MenuItem
	tabItems   map[string]*systray.MenuItem
}

// NewTrayIndicator creates a new system tray indicator.
func NewTrayIndicator(app *Application) *TrayIndicator {
	return &TrayIndicator{
		app:      app,
		tabItems: make(map[string]*systray.MenuItem),
	}
}

// Run starts the system tray indicator.
// This should be called from a goroutine as it blocks.
func (t *TrayIndicator) Run() {
	systray.Run(t.onReady, t.onExit)
}

// Stop removes the tray icon.
func (t *TrayIndicator) Stop() {
	systray.Quit()
}

// onReady is called when the systray is ready.
func (t *TrayIndicator) onReady() {
	systray.SetIcon(trayIcon)
	systray.SetTitle(common.AppName)
	systray.SetTooltip(common.AppName)

	t.mu.Lock()
	t.statusItem = systray.AddMenuItem("Loading plugins...", "Plugin status")
	t.statusItem.Disable()
	t.mu.Unlock()

	systray.AddSeparator()

	showItem := systray.AddMenuItem("Open "+common.AppName, "Show main window")
	go func() {
		for range showItem.ClickedCh {
			t.app.showWindow()
		}
	}()

	reloadItem := systray.AddMenuItem("Reload Plugins", "Rerun plugin discovery")
	go func() {
		for range reloadItem.ClickedCh {
			glib.IdleAdd(func() {
				t.app.reloadPlugins()
			})
		}
	}()

	systray.AddSeparator()

	tabsHeader := systray.AddMenuItem("── Tabs ──", "")
	tabsHeader.Disable()

	t.mu.Lock()
	t.ready = true
	t.mu.Unlock()
	t.RefreshTabs()

	systray.AddSeparator()

	quitItem := systray.AddMenuItem("Quit", "Close "+common.AppName)
	go func() {
		for range quitItem.ClickedCh {
			glib.IdleAdd(func() {
				t.app.Quit()
			})
			systray.Quit()
		}
	}()
}

// onExit is called when the systray is about to exit.
func (t *TrayIndicator) onExit() {
	common.LogInfo("Tray indicator stopped")
}

// RefreshTabs syncs the tray's tab menu with the registry. Safe to call
// from any goroutine; a no-op until the tray is ready.
func (t *TrayIndicator) RefreshTabs() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.ready {
		return
	}

	names := t.app.service.TabOrder()

	if t.statusItem != nil {
		t.statusItem.SetTitle(fmt.Sprintf("%d tabs loaded", len(names)))
	}

	for _, name := range names {
		if _, exists := t.tabItems[name]; exists {
			continue
		}

		item := systray.AddMenuItem(name, fmt.Sprintf("Open the %s tab", name))
		t.tabItems[name] = item

		go func(tabName string, menuItem *systray.MenuItem) {
			for range menuItem.ClickedCh {
				t.openTab(tabName)
			}
		}(name, item)
	}

	// Tabs that disappeared on reload stay in the menu but hidden;
	// systray has no item removal.
	for name, item := range t.tabItems {
		if common.StringInSlice(name, names) {
			item.Show()
		} else {
			item.Hide()
		}
	}
}

// openTab raises the window and focuses the named tab on the GTK
// main thread.
func (t *TrayIndicator) openTab(name string) {
	glib.IdleAdd(func() {
		if t.app.window == nil {
			return
		}
		t.app.window.Present()
		t.app.window.SelectTab(name)
	})
}
