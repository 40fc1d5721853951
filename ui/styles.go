// Package ui provides the graphical user interface for Tab Deck.
// This file contains the CSS baseline and per-theme style loading.
package ui

import (
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/yllada/tabdeck/theme"
)

// Baseline styles that apply on top of any selected theme.
const appCSS = `
/* Tab content */
.tab-title {
    font-size: 18px;
    font-weight: 700;
    margin-bottom: 6px;
}

.row-label {
    font-weight: 600;
    opacity: 0.8;
}

/* Placeholders */
.placeholder-label {
    opacity: 0.6;
}

.error-title {
    font-weight: 600;
    color: #e01b24;
}

.error-detail {
    opacity: 0.7;
    font-family: monospace;
}

/* Status bar */
.status-bar {
    border-top: 1px solid alpha(currentColor, 0.15);
    padding: 6px 12px;
    opacity: 0.8;
}
`

var themeProvider *gtk.CSSProvider

// LoadStyles installs the baseline CSS. Should be called during
// application startup.
func LoadStyles() {
	display := gdk.DisplayGetDefault()
	if display == nil {
		return
	}

	provider := gtk.NewCSSProvider()
	provider.LoadFromString(appCSS)

	gtk.StyleContextAddProviderForDisplay(
		display,
		provider,
		gtk.STYLE_PROVIDER_PRIORITY_APPLICATION,
	)
}

// ApplyThemeStyles swaps the active theme stylesheet. The previous
// theme's provider is removed first so themes never stack.
func ApplyThemeStyles(t theme.Theme) {
	display := gdk.DisplayGetDefault()
	if display == nil {
		return
	}

	if themeProvider != nil {
		gtk.StyleContextRemoveProviderForDisplay(display, themeProvider)
		themeProvider = nil
	}
	if t.Stylesheet == "" {
		return
	}

	provider := gtk.NewCSSProvider()
	provider.LoadFromString(t.Stylesheet)
	gtk.StyleContextAddProviderForDisplay(
		display,
		provider,
		gtk.STYLE_PROVIDER_PRIORITY_USER,
	)
	themeProvider = provider
}

// preferDarkChrome asks GTK to use dark window chrome for dark themes.
func preferDarkChrome(dark bool) {
	settings := gtk.SettingsGetDefault()
	if settings == nil {
		return
	}
	settings.SetObjectProperty("gtk-application-prefer-dark-theme", dark)
}
