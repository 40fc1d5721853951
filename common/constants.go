// Package common provides shared constants, types, and utilities
// used across the Tab Deck application.
package common

// Application metadata.
const (
	// AppID is the unique identifier for the application.
	AppID = "com.tabdeck.app"
	// AppName is the display name of the application.
	AppName = "Tab Deck"
	// AppVersion is the application version string.
	AppVersion = "1.0.0"
	// ConfigDirName is the name of the configuration directory.
	ConfigDirName = "tabdeck"
)

// File names used by the application.
const (
	ConfigFileName      = "config.yaml"
	PluginStateFileName = "plugins.db"
	CredentialsFileName = ".credentials"
	LogFileName         = "tabdeck.log"
)

// Directory names used by the application.
const (
	// PluginsDirName is the name of the external plugin manifest directory
	// under the config directory.
	PluginsDirName = "plugins"
	// BundledPluginsDirName is the name of the bundled plugin manifest
	// directory next to the executable.
	BundledPluginsDirName = "tabs"
	// ThemesDirName is the name of the theme directory under the config
	// directory.
	ThemesDirName = "themes"
)

// UI constants.
const (
	// DefaultWindowWidth is the default main window width.
	DefaultWindowWidth = 800
	// DefaultWindowHeight is the default main window height.
	DefaultWindowHeight = 600
	// DialogMargin is the standard margin for dialog content.
	DialogMargin = 24
	// TrayIconSize is the size of the system tray icon.
	TrayIconSize = 22
)

// Theme values.
const (
	ThemeAuto  = "auto"
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Platform names as used by plugin metadata.
const (
	PlatformWindows = "Windows"
	PlatformLinux   = "Linux"
)
