// Package ui provides the graphical user interface for Tab Deck.
// This file contains the theme selection dialog.
package ui

import (
	"fmt"
	"strings"

	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/yllada/tabdeck/common"
)

// ThemeDialog lets the user pick, import, and export UI themes.
type ThemeDialog struct {
	window   *gtk.Window
	app      *Application
	dropDown *gtk.DropDown
	themeIDs []string
}

// ShowThemeDialog opens the theme selection dialog.
func ShowThemeDialog(app *Application) {
	td := &ThemeDialog{app: app}
	td.build()
	td.window.Show()
}

// build constructs the dialog UI.
func (td *ThemeDialog) build() {
	td.window = gtk.NewWindow()
	td.window.SetTitle("Themes")
	td.window.SetTransientFor(&td.app.window.window.Window)
	td.window.SetModal(true)
	td.window.SetDefaultSize(460, 0)
	td.window.SetResizable(false)

	rootBox := gtk.NewBox(gtk.OrientationVertical, 0)

	mainBox := gtk.NewBox(gtk.OrientationVertical, 16)
	mainBox.SetMarginTop(common.DialogMargin)
	mainBox.SetMarginBottom(16)
	mainBox.SetMarginStart(common.DialogMargin)
	mainBox.SetMarginEnd(common.DialogMargin)

	// "auto" tracks the desktop preference; the rest come from the
	// manager, builtins and custom files alike.
	td.themeIDs = append([]string{common.ThemeAuto}, td.app.themes.Names()...)
	labels := make([]string, len(td.themeIDs))
	labels[0] = "System Default"
	for i, id := range td.themeIDs[1:] {
		labels[i+1] = displayThemeName(id)
	}

	model := gtk.NewStringList(labels)
	td.dropDown = gtk.NewDropDown(model, nil)
	td.dropDown.SetSelected(td.findThemeIndex(td.app.config.Theme))
	td.dropDown.SetVAlign(gtk.AlignCenter)

	themeRow := gtk.NewBox(gtk.OrientationHorizontal, 12)
	themeLabel := gtk.NewLabel("Theme")
	themeLabel.SetXAlign(0)
	themeLabel.SetHExpand(true)
	themeRow.Append(themeLabel)
	themeRow.Append(td.dropDown)
	mainBox.Append(themeRow)

	hint := gtk.NewLabel("Custom themes are YAML files in " + customThemesHint())
	hint.SetXAlign(0)
	hint.AddCSSClass("dim-label")
	hint.AddCSSClass("caption")
	hint.SetWrap(true)
	mainBox.Append(hint)

	ioBox := gtk.NewBox(gtk.OrientationHorizontal, 12)

	importBtn := gtk.NewButtonWithLabel("Import...")
	importBtn.ConnectClicked(td.onImport)
	ioBox.Append(importBtn)

	exportBtn := gtk.NewButtonWithLabel("Export...")
	exportBtn.ConnectClicked(td.onExport)
	ioBox.Append(exportBtn)

	mainBox.Append(ioBox)
	rootBox.Append(mainBox)

	buttonBar := gtk.NewBox(gtk.OrientationHorizontal, 12)
	buttonBar.SetHAlign(gtk.AlignEnd)
	buttonBar.SetMarginTop(16)
	buttonBar.SetMarginBottom(20)
	buttonBar.SetMarginStart(common.DialogMargin)
	buttonBar.SetMarginEnd(common.DialogMargin)

	cancelBtn := gtk.NewButtonWithLabel("Cancel")
	cancelBtn.ConnectClicked(func() {
		td.window.Close()
	})
	buttonBar.Append(cancelBtn)

	applyBtn := gtk.NewButtonWithLabel("Apply")
	applyBtn.AddCSSClass("suggested-action")
	applyBtn.ConnectClicked(func() {
		td.applySelected()
		td.window.Close()
	})
	buttonBar.Append(applyBtn)

	rootBox.Append(buttonBar)
	td.window.SetChild(rootBox)
}

// applySelected installs and persists the chosen theme.
func (td *ThemeDialog) applySelected() {
	idx := td.dropDown.Selected()
	if int(idx) >= len(td.themeIDs) {
		return
	}
	key := td.themeIDs[idx]
	if err := td.app.ApplyTheme(key); err != nil {
		td.app.window.showError("Theme Error", err.Error())
		return
	}
	td.app.window.SetStatus("Theme applied: " + displayThemeName(key))
}

// onImport copies a theme file into the custom theme directory.
func (td *ThemeDialog) onImport() {
	dialog := gtk.NewFileChooserNative(
		"Import Theme",
		td.window,
		gtk.FileChooserActionOpen,
		"Import",
		"Cancel",
	)

	filter := gtk.NewFileFilter()
	filter.SetName("Theme files (*.yaml, *.yml)")
	filter.AddPattern("*.yaml")
	filter.AddPattern("*.yml")
	dialog.AddFilter(filter)

	dialog.ConnectResponse(func(responseID int) {
		if responseID == int(gtk.ResponseAccept) {
			if file := dialog.File(); file != nil {
				key, err := td.app.themes.Import(file.Path())
				if err != nil {
					td.app.window.showError("Import Failed", err.Error())
				} else {
					td.app.window.showInfo("Import Complete",
						fmt.Sprintf("Theme %q imported.", displayThemeName(key)))
				}
			}
		}
		dialog.Destroy()
	})

	dialog.Show()
}

// onExport writes the selected theme to a file of the user's choosing.
func (td *ThemeDialog) onExport() {
	idx := td.dropDown.Selected()
	if int(idx) >= len(td.themeIDs) {
		return
	}
	key := td.themeIDs[idx]
	if key == common.ThemeAuto {
		key = td.app.themes.Resolve(key)
	}

	dialog := gtk.NewFileChooserNative(
		"Export Theme",
		td.window,
		gtk.FileChooserActionSave,
		"Export",
		"Cancel",
	)
	dialog.SetCurrentName(key + ".yaml")

	filter := gtk.NewFileFilter()
	filter.SetName("Theme files (*.yaml)")
	filter.AddPattern("*.yaml")
	dialog.AddFilter(filter)

	dialog.ConnectResponse(func(responseID int) {
		if responseID == int(gtk.ResponseAccept) {
			if file := dialog.File(); file != nil {
				path := file.Path()
				if !strings.HasSuffix(path, ".yaml") && !strings.HasSuffix(path, ".yml") {
					path += ".yaml"
				}
				if err := td.app.themes.Export(key, path); err != nil {
					td.app.window.showError("Export Failed", err.Error())
				} else {
					td.app.window.showInfo("Export Complete", "Theme exported to:\n"+path)
				}
			}
		}
		dialog.Destroy()
	})

	dialog.Show()
}

// findThemeIndex returns the index of a theme ID, or 0 if not found.
func (td *ThemeDialog) findThemeIndex(themeID string) uint {
	for i, id := range td.themeIDs {
		if id == themeID {
			return uint(i)
		}
	}
	return 0
}

// displayThemeName turns a theme key like "ocean_blue" into "Ocean Blue".
func displayThemeName(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// customThemesHint is the path shown in the dialog, best effort.
func customThemesHint() string {
	dir, err := common.GetThemesDir()
	if err != nil {
		return "~/.config/" + common.ConfigDirName + "/" + common.ThemesDirName
	}
	return dir
}
