package config

import (
	"testing"

	"github.com/yllada/tabdeck/common"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Theme != common.ThemeAuto {
		t.Errorf("Theme = %q, want %q", cfg.Theme, common.ThemeAuto)
	}
	if !cfg.ShowNotifications {
		t.Error("ShowNotifications should be true by default")
	}
	if cfg.ConsoleVisible {
		t.Error("ConsoleVisible should be false by default")
	}
	if cfg.RequireAdminByDefault {
		t.Error("RequireAdminByDefault should be false by default")
	}
	if cfg.PluginsDir != "" {
		t.Errorf("PluginsDir should be empty by default, got %q", cfg.PluginsDir)
	}
}

func TestConfig_ApplyFallbacks(t *testing.T) {
	cfg := &Config{}
	cfg.applyFallbacks()

	if cfg.Theme != common.ThemeAuto {
		t.Errorf("empty theme should fall back to %q, got %q", common.ThemeAuto, cfg.Theme)
	}
}

func TestConfig_ResolvePluginsDir_Override(t *testing.T) {
	cfg := &Config{PluginsDir: "/opt/tabdeck/plugins"}

	dir, err := cfg.ResolvePluginsDir()
	if err != nil {
		t.Fatal(err)
	}
	if dir != "/opt/tabdeck/plugins" {
		t.Errorf("ResolvePluginsDir = %q, want override", dir)
	}
}
