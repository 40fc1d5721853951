// Package cli provides command-line interface functionality for Tab Deck.
// This allows users to inspect plugins and themes from the terminal
// without launching the GUI application.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/yllada/tabdeck/common"
	"github.com/yllada/tabdeck/config"
	"github.com/yllada/tabdeck/elevation"
	"github.com/yllada/tabdeck/keyring"
	"github.com/yllada/tabdeck/plugin"
	"github.com/yllada/tabdeck/store"
	"github.com/yllada/tabdeck/tabs"
	"github.com/yllada/tabdeck/theme"
)

// CLI represents the command-line interface.
type CLI struct {
	service *plugin.Service
	themes  *theme.Manager
	store   *store.SQLiteStore
	summary plugin.Summary
}

// New creates a new CLI instance. It runs a full discovery pass so the
// commands see the same plugins the GUI would.
func New() (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}

	c := &CLI{}

	var reg *plugin.Registry
	if dataDir, derr := common.GetDataDir(); derr == nil {
		if st, serr := store.Open(filepath.Join(dataDir, common.PluginStateFileName)); serr == nil {
			c.store = st
			reg, _ = plugin.NewRegistryWithStore(st)
		}
	}
	if reg == nil {
		reg = plugin.NewRegistry()
	}

	secrets := keyring.New()
	core := tabs.CorePlugins(tabs.Deps{
		KeyringBackend: secrets.Backend(),
		IsAdmin:        elevation.IsAdmin(),
		CanElevate:     elevation.CanElevate(),
		CurrentUser:    elevation.CurrentUser(),
	})

	externalDir, _ := cfg.ResolvePluginsDir()
	c.service = plugin.NewService(reg, core, common.GetBundledPluginsDir(), externalDir)
	c.summary = c.service.Load()

	themesDir, err := common.GetThemesDir()
	if err != nil {
		return nil, common.WrapError(err, "failed to locate themes directory")
	}
	c.themes = theme.NewManager(themesDir)

	return c, nil
}

// Close releases CLI resources.
func (c *CLI) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// ListPlugins lists all discovered plugins.
func (c *CLI) ListPlugins() error {
	reg := c.service.Registry()
	names := reg.Names()

	if len(names) == 0 {
		fmt.Println("No plugins found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tVERSION\tKIND\tENABLED\tADMIN")
	fmt.Fprintln(w, "----\t-------\t----\t-------\t-----")

	core := reg.Core()
	for _, name := range names {
		info, err := c.service.Describe(name)
		if err != nil {
			continue
		}

		kind := "external"
		if _, ok := core[name]; ok {
			kind = "core"
		}

		enabled := "No"
		if reg.IsEnabled(name) {
			enabled = "Yes"
		}

		admin := "No"
		if info.RequiresAdmin {
			admin = "Yes"
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			info.Name, info.Version, kind, enabled, admin)
	}

	w.Flush()
	fmt.Printf("\n%d discovered, %d registered, %d skipped, %d failed\n",
		c.summary.TotalDiscovered, c.summary.Registered,
		c.summary.Skipped, c.summary.Failed)
	return nil
}

// PluginInfo prints detailed metadata for one plugin by name
// (case-insensitive).
func (c *CLI) PluginInfo(name string) error {
	target := strings.ToLower(strings.TrimSpace(name))

	reg := c.service.Registry()
	for _, candidate := range reg.Names() {
		if strings.ToLower(candidate) != target {
			continue
		}

		info, err := c.service.Describe(candidate)
		if err != nil {
			return err
		}

		fmt.Printf("Name:        %s\n", info.Name)
		fmt.Printf("Version:     %s\n", info.Version)
		fmt.Printf("Author:      %s\n", info.AuthorText())
		fmt.Printf("Platforms:   %s\n", strings.Join(info.Platforms, ", "))
		fmt.Printf("Admin:       %v\n", info.RequiresAdmin)
		fmt.Printf("Enabled:     %v\n", reg.IsEnabled(candidate))
		if info.Description != "" {
			fmt.Printf("Description: %s\n", info.Description)
		}
		return nil
	}

	return fmt.Errorf("plugin not found: %s", name)
}

// ListThemes lists all available themes.
func (c *CLI) ListThemes() error {
	names := c.themes.Names()
	current := c.themes.Resolve(currentThemeChoice())

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tAPPEARANCE\tDESCRIPTION")
	fmt.Fprintln(w, "---\t----------\t-----------")

	for _, key := range names {
		t, err := c.themes.Get(key)
		if err != nil {
			continue
		}

		appearance := "light"
		if t.IsDark() {
			appearance = "dark"
		}

		marker := ""
		if key == current {
			marker = " (active)"
		}

		fmt.Fprintf(w, "%s%s\t%s\t%s\n", key, marker, appearance, t.Description)
	}

	w.Flush()
	return nil
}

// Status prints the privilege and environment status.
func (c *CLI) Status() error {
	st := elevation.Status()

	fmt.Printf("User:           %s\n", st.CurrentUser)
	fmt.Printf("Administrator:  %v\n", st.IsAdmin)
	fmt.Printf("Can elevate:    %v\n", st.CanElevate)
	fmt.Printf("Platform:       %s\n", plugin.CurrentPlatform())

	if logDir := common.GetLogDir(); logDir != "" {
		fmt.Printf("Log directory:  %s\n", logDir)
	}
	return nil
}

// currentThemeChoice reads the configured theme key, best effort.
func currentThemeChoice() string {
	cfg, err := config.Load()
	if err != nil {
		return common.ThemeAuto
	}
	return cfg.Theme
}

// PrintHelp prints CLI usage help.
func PrintHelp() {
	fmt.Println(`Tab Deck - Command Line Interface

Usage:
  tabdeck [OPTIONS]

Options:
  --version            Show version and exit
  --verbose            Enable verbose logging
  --list-plugins       List all discovered plugins
  --plugin-info NAME   Show detailed plugin metadata
  --list-themes        List all available themes
  --status             Show privilege and environment status
  --help               Show this help message

Examples:
  tabdeck --list-plugins
  tabdeck --plugin-info "System Info"
  tabdeck --list-themes
  tabdeck --status

Notes:
  - Run without options to launch the GUI
  - Enabling and disabling plugins is done in the GUI`)
}
