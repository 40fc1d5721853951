package ui

import (
	"fmt"

	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/yllada/tabdeck/common"
	"github.com/yllada/tabdeck/plugin"
	"github.com/yllada/tabdeck/shell"
)

// MainWindow is the application window: a notebook of plugin tabs plus
// a status bar. It implements shell.View; the controller drives all tab
// mutations.
type MainWindow struct {
	app         *Application
	window      *gtk.ApplicationWindow
	headerBar   *gtk.HeaderBar
	notebook    *gtk.Notebook
	statusBar   *gtk.Box
	statusLabel *gtk.Label

	// pages maps tab name to the container swapped between placeholder,
	// admin, error, and content states.
	pages map[string]*gtk.Box
	// switching suppresses ActivateTab during programmatic page changes.
	switching bool
}

var _ shell.View = (*MainWindow)(nil)

// NewMainWindow creates the main window.
func NewMainWindow(app *Application) *MainWindow {
	mw := &MainWindow{
		app:   app,
		pages: make(map[string]*gtk.Box),
	}

	mw.window = gtk.NewApplicationWindow(app.app)
	mw.window.SetTitle(common.AppName)
	mw.window.SetDefaultSize(common.DefaultWindowWidth, common.DefaultWindowHeight)
	mw.window.SetIconName("tabdeck")

	// Clicking X hides the window; the app lives in the tray.
	mw.window.SetHideOnClose(true)

	mw.createLayout()
	return mw
}

// createLayout creates the window layout.
func (mw *MainWindow) createLayout() {
	mw.headerBar = gtk.NewHeaderBar()

	reloadButton := gtk.NewButton()
	reloadButton.SetIconName("view-refresh-symbolic")
	reloadButton.SetTooltipText("Reload plugins")
	reloadButton.ConnectClicked(mw.app.reloadPlugins)
	mw.headerBar.PackStart(reloadButton)

	menuButton := gtk.NewMenuButton()
	menuButton.SetIconName("open-menu-symbolic")
	menuButton.SetTooltipText("Menu")
	mw.headerBar.PackEnd(menuButton)
	menuButton.SetMenuModel(mw.createMenu())

	mw.window.SetTitlebar(mw.headerBar)

	mainBox := gtk.NewBox(gtk.OrientationVertical, 0)

	mw.notebook = gtk.NewNotebook()
	mw.notebook.SetVExpand(true)
	mw.notebook.SetScrollable(true)
	mw.notebook.ConnectSwitchPage(mw.onSwitchPage)
	mainBox.Append(mw.notebook)

	mw.createStatusBar()
	mainBox.Append(mw.statusBar)

	mw.window.SetChild(mainBox)
}

// createMenu creates the application menu.
func (mw *MainWindow) createMenu() *gio.Menu {
	menu := gio.NewMenu()

	pluginsSection := gio.NewMenu()
	pluginsSection.Append("Plugins...", "app.plugins")
	pluginsSection.Append("Reload Plugins", "app.reload")
	menu.AppendSection("", &pluginsSection.MenuModel)

	settingsSection := gio.NewMenu()
	settingsSection.Append("Themes...", "app.themes")
	menu.AppendSection("", &settingsSection.MenuModel)

	appSection := gio.NewMenu()
	appSection.Append("About", "app.about")
	appSection.Append("Quit", "app.quit")
	menu.AppendSection("", &appSection.MenuModel)

	mw.setupActions()
	return menu
}

// setupActions configures menu actions.
func (mw *MainWindow) setupActions() {
	pluginsAction := gio.NewSimpleAction("plugins", nil)
	pluginsAction.ConnectActivate(func(_ *glib.Variant) {
		ShowPluginDialog(mw.app)
	})
	mw.app.app.AddAction(pluginsAction)

	reloadAction := gio.NewSimpleAction("reload", nil)
	reloadAction.ConnectActivate(func(_ *glib.Variant) {
		mw.app.reloadPlugins()
	})
	mw.app.app.AddAction(reloadAction)
	mw.app.app.SetAccelsForAction("app.reload", []string{"<Control>r"})

	themesAction := gio.NewSimpleAction("themes", nil)
	themesAction.ConnectActivate(func(_ *glib.Variant) {
		ShowThemeDialog(mw.app)
	})
	mw.app.app.AddAction(themesAction)

	aboutAction := gio.NewSimpleAction("about", nil)
	aboutAction.ConnectActivate(func(_ *glib.Variant) {
		mw.onAbout()
	})
	mw.app.app.AddAction(aboutAction)

	quitAction := gio.NewSimpleAction("quit", nil)
	quitAction.ConnectActivate(func(_ *glib.Variant) {
		mw.app.Quit()
	})
	mw.app.app.AddAction(quitAction)
	mw.app.app.SetAccelsForAction("app.quit", []string{"<Control>q"})
}

// createStatusBar creates the bottom status bar.
func (mw *MainWindow) createStatusBar() {
	mw.statusBar = gtk.NewBox(gtk.OrientationHorizontal, 6)
	mw.statusBar.AddCSSClass("status-bar")

	mw.statusLabel = gtk.NewLabel("Discovering plugins...")
	mw.statusLabel.SetXAlign(0)
	mw.statusLabel.SetHExpand(true)
	mw.statusBar.Append(mw.statusLabel)
}

// SetStatus updates the status bar text.
func (mw *MainWindow) SetStatus(text string) {
	mw.statusLabel.SetText(text)
}

// onSwitchPage fires when the user clicks a tab; it asks the controller
// to materialize the plugin behind it.
func (mw *MainWindow) onSwitchPage(page gtk.Widgetter, pageNum uint) {
	if mw.switching {
		return
	}
	name := gtk.BaseWidget(page).Name()
	mw.app.controller.ActivateTab(name)
}

// setPageContent replaces a tab container's children with one widget.
func setPageContent(box *gtk.Box, child gtk.Widgetter) {
	for c := box.FirstChild(); c != nil; c = box.FirstChild() {
		box.Remove(c)
	}
	box.Append(child)
}

// AddTab appends a placeholder tab for a discovered plugin.
func (mw *MainWindow) AddTab(name string) {
	box := gtk.NewBox(gtk.OrientationVertical, 0)
	box.SetName(name)
	box.SetVExpand(true)
	setPageContent(box, placeholderPage(name))

	mw.switching = true
	mw.notebook.AppendPage(box, gtk.NewLabel(name))
	mw.switching = false

	mw.pages[name] = box
}

// RemoveTab drops a tab entirely.
func (mw *MainWindow) RemoveTab(name string) {
	box, ok := mw.pages[name]
	if !ok {
		return
	}
	if idx := mw.notebook.PageNum(box); idx >= 0 {
		mw.switching = true
		mw.notebook.RemovePage(idx)
		mw.switching = false
	}
	delete(mw.pages, name)
}

// SelectTab brings a tab to the front; switch-page materializes it.
func (mw *MainWindow) SelectTab(name string) {
	box, ok := mw.pages[name]
	if !ok {
		return
	}
	if idx := mw.notebook.PageNum(box); idx >= 0 {
		mw.notebook.SetCurrentPage(idx)
	}
}

// ShowTabs reveals the result of a finished discovery run and, when the
// first tab exists, materializes it so the window never opens empty.
func (mw *MainWindow) ShowTabs() {
	count := mw.notebook.NPages()
	if count == 0 {
		mw.SetStatus("No plugins found")
		return
	}
	mw.SetStatus(fmt.Sprintf("%d tabs loaded", count))

	if page := mw.notebook.NthPage(0); page != nil {
		mw.app.controller.ActivateTab(gtk.BaseWidget(page).Name())
	}
}

// PresentContent mounts a ready plugin widget into its tab.
func (mw *MainWindow) PresentContent(name string, widget plugin.Widget) {
	box, ok := mw.pages[name]
	if !ok {
		return
	}
	setPageContent(box, renderWidget(widget))
}

// PresentAdminRequired shows the elevation placeholder.
func (mw *MainWindow) PresentAdminRequired(name string) {
	box, ok := mw.pages[name]
	if !ok {
		return
	}
	setPageContent(box, adminRequiredPage(name, mw.app.restartElevated))
}

// PresentError shows a tab's failure message.
func (mw *MainWindow) PresentError(name, message string) {
	box, ok := mw.pages[name]
	if !ok {
		return
	}
	setPageContent(box, errorPage(name, message))
}

// ShowFatal surfaces a discovery failure without killing the app.
func (mw *MainWindow) ShowFatal(message string) {
	mw.SetStatus("Plugin discovery failed")

	dialog := gtk.NewWindow()
	dialog.SetTitle("Plugin discovery failed")
	dialog.SetTransientFor(&mw.window.Window)
	dialog.SetModal(true)
	dialog.SetDefaultSize(420, 0)

	box := gtk.NewBox(gtk.OrientationVertical, 12)
	box.SetMarginTop(common.DialogMargin)
	box.SetMarginBottom(common.DialogMargin)
	box.SetMarginStart(common.DialogMargin)
	box.SetMarginEnd(common.DialogMargin)

	icon := gtk.NewImageFromIconName("dialog-error-symbolic")
	icon.SetPixelSize(48)
	box.Append(icon)

	label := gtk.NewLabel(message)
	label.SetWrap(true)
	box.Append(label)

	closeButton := gtk.NewButtonWithLabel("Close")
	closeButton.SetHAlign(gtk.AlignCenter)
	closeButton.ConnectClicked(dialog.Close)
	box.Append(closeButton)

	dialog.SetChild(box)
	dialog.Show()
}

// showError shows an error dialog.
func (mw *MainWindow) showError(title, message string) {
	mw.showMessage(title, message, "dialog-error-symbolic")
}

// showInfo shows an information dialog.
func (mw *MainWindow) showInfo(title, message string) {
	mw.showMessage(title, message, "dialog-information-symbolic")
}

func (mw *MainWindow) showMessage(title, message, iconName string) {
	window := gtk.NewWindow()
	window.SetTitle(title)
	window.SetTransientFor(&mw.window.Window)
	window.SetModal(true)
	window.SetDefaultSize(350, 150)
	window.SetResizable(false)

	mainBox := gtk.NewBox(gtk.OrientationVertical, 12)
	mainBox.SetMarginTop(common.DialogMargin)
	mainBox.SetMarginBottom(common.DialogMargin)
	mainBox.SetMarginStart(common.DialogMargin)
	mainBox.SetMarginEnd(common.DialogMargin)
	mainBox.SetHAlign(gtk.AlignCenter)

	icon := gtk.NewImage()
	icon.SetFromIconName(iconName)
	icon.SetPixelSize(48)
	mainBox.Append(icon)

	titleLabel := gtk.NewLabel(title)
	titleLabel.AddCSSClass("heading")
	mainBox.Append(titleLabel)

	msgLabel := gtk.NewLabel(message)
	msgLabel.SetWrap(true)
	msgLabel.SetMaxWidthChars(40)
	mainBox.Append(msgLabel)

	okBtn := gtk.NewButtonWithLabel("OK")
	okBtn.SetHAlign(gtk.AlignCenter)
	okBtn.SetMarginTop(12)
	okBtn.ConnectClicked(func() {
		window.Close()
	})
	mainBox.Append(okBtn)

	window.SetChild(mainBox)
	window.Show()
}

// Show presents the window.
func (mw *MainWindow) Show() {
	mw.window.Show()
}

// Present raises the window.
func (mw *MainWindow) Present() {
	mw.window.Present()
}

// onAbout shows the about dialog.
func (mw *MainWindow) onAbout() {
	about := gtk.NewAboutDialog()
	about.SetTransientFor(&mw.window.Window)
	about.SetProgramName(common.AppName)
	about.SetVersion(mw.app.version)
	about.SetComments("A tabbed plugin shell")
	about.SetLogoIconName("tabdeck")
	about.Show()
}
