package ui

import (
	"context"
	"path/filepath"

	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/yllada/tabdeck/common"
	"github.com/yllada/tabdeck/config"
	"github.com/yllada/tabdeck/elevation"
	"github.com/yllada/tabdeck/keyring"
	"github.com/yllada/tabdeck/plugin"
	"github.com/yllada/tabdeck/shell"
	"github.com/yllada/tabdeck/store"
	"github.com/yllada/tabdeck/tabs"
	"github.com/yllada/tabdeck/theme"
)

// Application wires the GTK application to the plugin system.
type Application struct {
	app        *gtk.Application
	window     *MainWindow
	config     *config.Config
	service    *plugin.Service
	controller *shell.Controller
	themes     *theme.Manager
	secrets    *keyring.Keyring
	notifier   *Notifier
	stateStore *store.SQLiteStore
	tray       *TrayIndicator
	version    string

	// cancelDiscovery stops an in-flight discovery worker on shutdown.
	cancelDiscovery context.CancelFunc
	// discoveryDone closes once the worker's event channel is drained.
	discoveryDone chan struct{}
	// reloading guards against overlapping reload requests. UI thread only.
	reloading bool
}

// NewApplication creates the application and all its services.
func NewApplication(appID, version string) *Application {
	app := gtk.NewApplication(appID, gio.ApplicationFlagsNone)

	cfg, err := config.Load()
	if err != nil {
		common.LogWarn("Using default configuration: %v", err)
		cfg = config.DefaultConfig()
	}

	a := &Application{
		app:     app,
		config:  cfg,
		version: version,
	}

	a.secrets = keyring.New()
	a.notifier = NewNotifier(cfg.ShowNotifications)

	themesDir, err := common.GetThemesDir()
	if err != nil {
		common.LogWarn("Themes directory unavailable: %v", err)
	}
	a.themes = theme.NewManager(themesDir)

	a.service = a.buildPluginService()

	app.ConnectActivate(a.onActivate)
	app.ConnectShutdown(a.onShutdown)
	return a
}

// buildPluginService assembles the registry, persistence, and discovery
// passes.
func (a *Application) buildPluginService() *plugin.Service {
	var reg *plugin.Registry

	dataDir, err := common.GetDataDir()
	if err == nil {
		st, serr := store.Open(filepath.Join(dataDir, common.PluginStateFileName))
		if serr == nil {
			a.stateStore = st
			reg, err = plugin.NewRegistryWithStore(st)
		} else {
			err = serr
		}
	}
	if reg == nil {
		common.LogWarn("Plugin state persistence disabled: %v", err)
		reg = plugin.NewRegistry()
	}

	core := tabs.CorePlugins(tabs.Deps{
		KeyringBackend: a.secrets.Backend(),
		IsAdmin:        elevation.IsAdmin(),
		CanElevate:     elevation.CanElevate(),
		CurrentUser:    elevation.CurrentUser(),
	})

	externalDir, err := a.config.ResolvePluginsDir()
	if err != nil {
		common.LogWarn("External plugin directory unavailable: %v", err)
	}
	return plugin.NewService(reg, core, common.GetBundledPluginsDir(), externalDir)
}

// Run runs the application.
func (a *Application) Run(args []string) int {
	return a.app.Run(args)
}

// onActivate builds the UI and kicks off plugin discovery.
func (a *Application) onActivate() {
	LoadStyles()
	a.applyConfiguredTheme()

	a.window = NewMainWindow(a)

	a.controller = shell.NewController(
		a.window,
		a.service,
		a.hostFor,
		shell.PlatformOptions(elevation.IsAdmin),
	)

	a.window.Show()

	a.tray = NewTrayIndicator(a)
	go a.tray.Run()

	a.startDiscovery()
}

// startDiscovery launches the background worker and pumps its events
// onto the UI thread.
func (a *Application) startDiscovery() {
	ctx, cancel := context.WithCancel(context.Background())
	a.cancelDiscovery = cancel

	worker := shell.NewWorker(a.service)
	worker.Start(ctx)

	done := make(chan struct{})
	a.discoveryDone = done

	// controller is pinned so events buffered before a reload never
	// reach the controller of the next run.
	controller := a.controller
	go func() {
		defer close(done)
		for ev := range worker.Events() {
			ev := ev
			glib.IdleAdd(func() {
				controller.HandleEvent(ev)
			})
			if _, finished := ev.(shell.Finished); finished && a.tray != nil {
				a.tray.RefreshTabs()
			}
		}
	}()
}

// reloadPlugins cancels the running worker, waits for its event channel
// to drain, then wipes the tab strip and reruns discovery. The wait
// happens off the UI thread; the teardown comes back via IdleAdd so
// every event of the old run lands before the registry is cleared.
func (a *Application) reloadPlugins() {
	if a.reloading {
		return
	}
	a.reloading = true
	a.window.SetStatus("Reloading plugins...")

	if a.cancelDiscovery != nil {
		a.cancelDiscovery()
	}

	done := a.discoveryDone
	go func() {
		if done != nil {
			<-done
		}
		glib.IdleAdd(func() {
			a.finishReload()
		})
	}()
}

// finishReload rebuilds the tab strip once the old worker is fully
// drained. Runs on the UI thread.
func (a *Application) finishReload() {
	for _, name := range a.service.TabOrder() {
		a.window.RemoveTab(name)
	}
	a.controller = shell.NewController(
		a.window,
		a.service,
		a.hostFor,
		shell.PlatformOptions(elevation.IsAdmin),
	)
	a.service.Registry().Clear()
	a.reloading = false

	a.startDiscovery()
}

// hostFor builds the capability handle a plugin factory receives.
func (a *Application) hostFor(pluginName string) plugin.Host {
	return &pluginHost{
		logger:  common.GetLogger(),
		secrets: a.secrets.ForPlugin(pluginName),
		app:     a,
	}
}

// applyConfiguredTheme resolves and installs the configured theme.
func (a *Application) applyConfiguredTheme() {
	key := a.themes.Resolve(a.config.Theme)
	t, err := a.themes.Apply(key)
	if err != nil {
		common.LogWarn("Theme %q unavailable, using light: %v", key, err)
		t, _ = a.themes.Apply(theme.KeyLight)
	}
	ApplyThemeStyles(t)
	preferDarkChrome(t.IsDark())
}

// ApplyTheme switches the theme and persists the choice.
func (a *Application) ApplyTheme(key string) error {
	t, err := a.themes.Apply(key)
	if err != nil {
		return err
	}
	ApplyThemeStyles(t)
	preferDarkChrome(t.IsDark())

	a.config.Theme = key
	if err := a.config.Save(); err != nil {
		common.LogWarn("Failed to save theme choice: %v", err)
	}
	return nil
}

// restartElevated relaunches the app with admin rights (UAC on Windows,
// pkexec on Linux).
func (a *Application) restartElevated() {
	if err := elevation.RunAsAdmin(); err != nil {
		common.LogError("Elevation failed: %v", err)
		a.notifier.Notify(common.AppName, "Could not restart with administrator privileges")
	}
}

// showWindow raises the main window, for the tray.
func (a *Application) showWindow() {
	if a.window != nil {
		glib.IdleAdd(func() { a.window.Present() })
	}
}

// Quit closes the application.
func (a *Application) Quit() {
	a.app.Quit()
}

// onShutdown releases background resources.
func (a *Application) onShutdown() {
	if a.cancelDiscovery != nil {
		a.cancelDiscovery()
	}
	if a.tray != nil {
		a.tray.Stop()
	}
	if a.stateStore != nil {
		a.stateStore.Close()
	}
	a.notifier.Close()
	common.CloseLogger()
}

// pluginHost implements plugin.Host for one plugin.
type pluginHost struct {
	logger  common.Logger
	secrets common.SecretStore
	app     *Application
}

func (h *pluginHost) Logger() common.Logger       { return h.logger }
func (h *pluginHost) Secrets() common.SecretStore { return h.secrets }

func (h *pluginHost) Notify(title, message string) error {
	return h.app.notifier.Notify(title, message)
}
