// Package tabs ships the core tabs compiled into the binary. The simple
// tabs register themselves as builtin factories at init time; the tabs
// with runtime dependencies are constructed by CorePlugins and handed to
// the plugin service as an explicit core list.
package tabs

import (
	"github.com/yllada/tabdeck/common"
	"github.com/yllada/tabdeck/plugin"
)

func init() {
	plugin.RegisterFactory(plugin.BuiltinGroup, "welcome", func() (plugin.Plugin, error) {
		return &welcomePlugin{}, nil
	})
	plugin.RegisterFactory(plugin.BuiltinGroup, "logs", func() (plugin.Plugin, error) {
		return &logsPlugin{}, nil
	})
	plugin.RegisterFactory(plugin.BuiltinGroup, "services", func() (plugin.Plugin, error) {
		return &servicesPlugin{}, nil
	})
}

// Deps carries the runtime facts the dependency-bearing core tabs
// display.
type Deps struct {
	KeyringBackend string
	IsAdmin        bool
	CanElevate     bool
	CurrentUser    string
}

// CorePlugins builds the core tabs that need runtime dependencies.
func CorePlugins(deps Deps) []plugin.Plugin {
	return []plugin.Plugin{
		&systemInfoPlugin{deps: deps},
	}
}

func allPlatforms() []string {
	return []string{common.PlatformLinux, common.PlatformWindows}
}
