// Package ui provides the graphical user interface for Tab Deck.
// This file contains the plugin manager dialog.
package ui

import (
	"fmt"
	"sort"

	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/yllada/tabdeck/common"
	"github.com/yllada/tabdeck/plugin"
)

// PluginDialog lists every registered plugin with a switch to enable or
// disable its tab.
type PluginDialog struct {
	window *gtk.Window
	app    *Application
}

// ShowPluginDialog opens the plugin manager dialog.
func ShowPluginDialog(app *Application) {
	pd := &PluginDialog{app: app}
	pd.build()
	pd.window.Show()
}

// build constructs the dialog UI.
func (pd *PluginDialog) build() {
	pd.window = gtk.NewWindow()
	pd.window.SetTitle("Plugins")
	pd.window.SetTransientFor(&pd.app.window.window.Window)
	pd.window.SetModal(true)
	pd.window.SetDefaultSize(520, 480)

	rootBox := gtk.NewBox(gtk.OrientationVertical, 0)

	scrolled := gtk.NewScrolledWindow()
	scrolled.SetVExpand(true)
	scrolled.SetPolicy(gtk.PolicyNever, gtk.PolicyAutomatic)

	mainBox := gtk.NewBox(gtk.OrientationVertical, 20)
	mainBox.SetMarginTop(common.DialogMargin)
	mainBox.SetMarginBottom(16)
	mainBox.SetMarginStart(common.DialogMargin)
	mainBox.SetMarginEnd(common.DialogMargin)

	reg := pd.app.service.Registry()

	coreSection := pd.createSection("Core", "applications-system-symbolic")
	coreCard := pd.createCard()
	pd.fillCard(coreCard, reg.Core())
	coreSection.Append(coreCard)
	mainBox.Append(coreSection)

	external := reg.External()
	if len(external) > 0 {
		extSection := pd.createSection("External", "application-x-addon-symbolic")
		extCard := pd.createCard()
		pd.fillCard(extCard, external)
		extSection.Append(extCard)
		mainBox.Append(extSection)
	}

	scrolled.SetChild(mainBox)
	rootBox.Append(scrolled)

	buttonBar := gtk.NewBox(gtk.OrientationHorizontal, 12)
	buttonBar.SetHAlign(gtk.AlignEnd)
	buttonBar.SetMarginTop(16)
	buttonBar.SetMarginBottom(20)
	buttonBar.SetMarginStart(common.DialogMargin)
	buttonBar.SetMarginEnd(common.DialogMargin)

	resetBtn := gtk.NewButtonWithLabel("Restore Defaults")
	resetBtn.ConnectClicked(func() {
		reg.ResetDefaults()
		pd.window.Close()
		pd.app.reloadPlugins()
	})
	buttonBar.Append(resetBtn)

	closeBtn := gtk.NewButtonWithLabel("Close")
	closeBtn.AddCSSClass("suggested-action")
	closeBtn.ConnectClicked(func() {
		pd.window.Close()
	})
	buttonBar.Append(closeBtn)

	rootBox.Append(buttonBar)
	pd.window.SetChild(rootBox)
}

// fillCard appends one row per plugin, sorted by name.
func (pd *PluginDialog) fillCard(card *gtk.Box, plugins map[string]plugin.Plugin) {
	names := make([]string, 0, len(plugins))
	for name := range plugins {
		names = append(names, name)
	}
	sort.Strings(names)

	if len(names) == 0 {
		empty := gtk.NewLabel("No plugins")
		empty.AddCSSClass("dim-label")
		empty.SetMarginTop(14)
		empty.SetMarginBottom(14)
		card.Append(empty)
		return
	}

	reg := pd.app.service.Registry()
	for i, name := range names {
		if i > 0 {
			card.Append(pd.createSeparator())
		}

		info := plugins[name].Info()

		sw := gtk.NewSwitch()
		sw.SetActive(reg.IsEnabled(name))
		sw.SetVAlign(gtk.AlignCenter)
		pluginName := name
		sw.ConnectStateSet(func(state bool) bool {
			pd.app.controller.SetEnabled(pluginName, state)
			sw.SetState(state)
			return true
		})

		card.Append(pd.createPluginRow(info, sw))
	}
}

// createPluginRow creates a row with plugin metadata and a toggle.
func (pd *PluginDialog) createPluginRow(info plugin.Info, widget gtk.Widgetter) *gtk.Box {
	row := gtk.NewBox(gtk.OrientationHorizontal, 12)
	row.SetMarginTop(14)
	row.SetMarginBottom(14)
	row.SetMarginStart(16)
	row.SetMarginEnd(16)

	textBox := gtk.NewBox(gtk.OrientationVertical, 4)
	textBox.SetHExpand(true)

	title := info.Name
	if info.Version != "" {
		title = fmt.Sprintf("%s  %s", info.Name, info.Version)
	}
	titleLabel := gtk.NewLabel(title)
	titleLabel.SetXAlign(0)
	titleLabel.AddCSSClass("settings-title")
	textBox.Append(titleLabel)

	desc := info.Description
	if desc == "" {
		desc = "By " + info.AuthorText()
	}
	if info.RequiresAdmin {
		desc += " (requires administrator)"
	}
	descLabel := gtk.NewLabel(desc)
	descLabel.SetXAlign(0)
	descLabel.AddCSSClass("dim-label")
	descLabel.AddCSSClass("caption")
	descLabel.SetWrap(true)
	textBox.Append(descLabel)

	row.Append(textBox)
	row.Append(widget)

	return row
}

// createSection creates a section with icon and title.
func (pd *PluginDialog) createSection(title string, iconName string) *gtk.Box {
	section := gtk.NewBox(gtk.OrientationVertical, 8)

	headerBox := gtk.NewBox(gtk.OrientationHorizontal, 8)

	icon := gtk.NewImage()
	icon.SetFromIconName(iconName)
	icon.SetPixelSize(18)
	icon.AddCSSClass("dim-label")
	headerBox.Append(icon)

	label := gtk.NewLabel(title)
	label.SetXAlign(0)
	label.AddCSSClass("heading")
	label.AddCSSClass("dim-label")
	headerBox.Append(label)

	section.Append(headerBox)
	return section
}

// createCard creates a styled card container for plugin rows.
func (pd *PluginDialog) createCard() *gtk.Box {
	card := gtk.NewBox(gtk.OrientationVertical, 0)
	card.AddCSSClass("card")
	return card
}

// createSeparator creates a styled separator for cards.
func (pd *PluginDialog) createSeparator() *gtk.Separator {
	sep := gtk.NewSeparator(gtk.OrientationHorizontal)
	sep.SetMarginStart(16)
	sep.SetMarginEnd(16)
	return sep
}
