package ui

import (
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/yllada/tabdeck/plugin"
)

// renderWidget turns a plugin's widget value into a GTK widget. Plugins
// may hand back a real GTK widget or one of the declarative content
// types.
func renderWidget(w plugin.Widget) gtk.Widgetter {
	switch v := w.(type) {
	case gtk.Widgetter:
		return v
	case plugin.TextContent:
		return renderText(v)
	case plugin.ListContent:
		return renderList(v)
	default:
		label := gtk.NewLabel("This plugin returned content the shell cannot display.")
		label.SetWrap(true)
		return label
	}
}

func renderText(content plugin.TextContent) gtk.Widgetter {
	box := gtk.NewBox(gtk.OrientationVertical, 12)
	box.SetMarginTop(24)
	box.SetMarginBottom(24)
	box.SetMarginStart(24)
	box.SetMarginEnd(24)

	if content.Title != "" {
		title := gtk.NewLabel(content.Title)
		title.SetXAlign(0)
		title.AddCSSClass("tab-title")
		box.Append(title)
	}

	body := gtk.NewLabel(content.Body)
	body.SetXAlign(0)
	body.SetYAlign(0)
	body.SetWrap(true)
	body.SetSelectable(true)
	body.SetVExpand(true)
	box.Append(body)

	scrolled := gtk.NewScrolledWindow()
	scrolled.SetVExpand(true)
	scrolled.SetChild(box)
	return scrolled
}

func renderList(content plugin.ListContent) gtk.Widgetter {
	box := gtk.NewBox(gtk.OrientationVertical, 12)
	box.SetMarginTop(24)
	box.SetMarginBottom(24)
	box.SetMarginStart(24)
	box.SetMarginEnd(24)

	if content.Title != "" {
		title := gtk.NewLabel(content.Title)
		title.SetXAlign(0)
		title.AddCSSClass("tab-title")
		box.Append(title)
	}

	grid := gtk.NewGrid()
	grid.SetColumnSpacing(24)
	grid.SetRowSpacing(6)
	for i, row := range content.Rows {
		label := gtk.NewLabel(row.Label)
		label.SetXAlign(0)
		label.AddCSSClass("row-label")
		value := gtk.NewLabel(row.Value)
		value.SetXAlign(0)
		value.SetSelectable(true)
		grid.Attach(label, 0, i, 1, 1)
		grid.Attach(value, 1, i, 1, 1)
	}
	box.Append(grid)

	scrolled := gtk.NewScrolledWindow()
	scrolled.SetVExpand(true)
	scrolled.SetChild(box)
	return scrolled
}

// placeholderPage is the content of a tab that has not loaded yet.
func placeholderPage(name string) gtk.Widgetter {
	box := centeredBox()

	spinner := gtk.NewSpinner()
	spinner.SetSizeRequest(32, 32)
	spinner.Start()
	box.Append(spinner)

	label := gtk.NewLabel("Loading " + name + "...")
	label.AddCSSClass("placeholder-label")
	box.Append(label)
	return box
}

// adminRequiredPage tells the user a tab needs elevation and offers a
// relaunch.
func adminRequiredPage(name string, onRestart func()) gtk.Widgetter {
	box := centeredBox()

	icon := gtk.NewImageFromIconName("dialog-password-symbolic")
	icon.SetPixelSize(48)
	box.Append(icon)

	label := gtk.NewLabel(name + " requires administrator privileges.")
	box.Append(label)

	button := gtk.NewButtonWithLabel("Restart as Administrator")
	button.AddCSSClass("suggested-action")
	button.SetHAlign(gtk.AlignCenter)
	button.ConnectClicked(onRestart)
	box.Append(button)
	return box
}

// errorPage shows a tab's load failure.
func errorPage(name, message string) gtk.Widgetter {
	box := centeredBox()

	icon := gtk.NewImageFromIconName("dialog-error-symbolic")
	icon.SetPixelSize(48)
	box.Append(icon)

	label := gtk.NewLabel(name + " failed to load")
	label.AddCSSClass("error-title")
	box.Append(label)

	detail := gtk.NewLabel(message)
	detail.SetWrap(true)
	detail.AddCSSClass("error-detail")
	box.Append(detail)
	return box
}

func centeredBox() *gtk.Box {
	box := gtk.NewBox(gtk.OrientationVertical, 12)
	box.SetVAlign(gtk.AlignCenter)
	box.SetHAlign(gtk.AlignCenter)
	box.SetVExpand(true)
	box.SetHExpand(true)
	return box
}
