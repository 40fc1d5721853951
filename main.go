// Package main provides the entry point for the Tab Deck application.
// Tab Deck is a GTK4-based desktop shell that hosts tool tabs supplied
// by plugins, discovered lazily at startup.
//
// Features:
//   - Core and user-provided plugin tabs, loaded on first click
//   - Secure credential storage for plugins via the system keyring
//   - Color themes with custom theme import/export
//   - Privilege elevation for plugins that require it
//   - Command-line interface for scripting and automation
//
// Usage:
//
//	tabdeck [options]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/yllada/tabdeck/cli"
	"github.com/yllada/tabdeck/common"
	"github.com/yllada/tabdeck/config"
	"github.com/yllada/tabdeck/elevation"
	"github.com/yllada/tabdeck/ui"
)

// Build-time variables injected via ldflags (-X main.appVersion=x.y.z).
// Default values are used for local development builds.
var (
	appVersion = common.AppVersion
	buildTime  = "unknown"
	commitSHA  = "unknown"
)

var (
	// GUI/General flags
	showVersion = flag.Bool("version", false, "Show version and exit")
	verbose     = flag.Bool("verbose", false, "Enable verbose logging")
	showHelp    = flag.Bool("help", false, "Show help message")

	// CLI flags
	listPlugins = flag.Bool("list-plugins", false, "List all discovered plugins")
	pluginInfo  = flag.String("plugin-info", "", "Show detailed plugin metadata")
	listThemes  = flag.Bool("list-themes", false, "List all available themes")
	showStatus  = flag.Bool("status", false, "Show privilege and environment status")
)

func main() {
	flag.Parse()

	if *showHelp {
		cli.PrintHelp()
		os.Exit(0)
	}

	if *showVersion {
		fmt.Printf("%s v%s\n", common.AppName, appVersion)
		if buildTime != "unknown" {
			fmt.Printf("  Build:  %s\n", buildTime)
			fmt.Printf("  Commit: %s\n", commitSHA)
		}
		os.Exit(0)
	}

	logLevel := common.LevelInfo
	if *verbose {
		logLevel = common.LevelDebug
	}

	if err := common.InitLogger(common.LogConfig{
		Level:      logLevel,
		EnableFile: true,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not initialize file logging: %v\n", err)
	}
	defer common.CloseLogger()

	if *listPlugins || *pluginInfo != "" || *listThemes || *showStatus {
		runCLI()
		return
	}

	// GUI mode. Hide the console window on Windows unless configured
	// otherwise; a no-op elsewhere.
	if cfg, err := config.Load(); err == nil {
		elevation.SetConsoleVisible(cfg.ConsoleVisible)

		if cfg.RequireAdminByDefault && !elevation.IsAdmin() {
			common.LogInfo("Configuration requires elevation, relaunching")
			if err := elevation.RunAsAdmin(); err != nil {
				common.LogWarn("Elevation failed, continuing unprivileged: %v", err)
			}
		}
	}

	common.LogInfo("Starting %s v%s", common.AppName, appVersion)
	app := ui.NewApplication(common.AppID, appVersion)
	exitCode := app.Run(os.Args)

	if exitCode != 0 {
		common.LogWarn("Application exited with code %d", exitCode)
	}
	os.Exit(exitCode)
}

// runCLI handles command-line interface operations.
func runCLI() {
	cliApp, err := cli.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer cliApp.Close()

	var cliErr error

	switch {
	case *listPlugins:
		cliErr = cliApp.ListPlugins()
	case *pluginInfo != "":
		cliErr = cliApp.PluginInfo(*pluginInfo)
	case *listThemes:
		cliErr = cliApp.ListThemes()
	case *showStatus:
		cliErr = cliApp.Status()
	}

	if cliErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", cliErr)
		os.Exit(1)
	}
}
