package shell

import (
	"context"
	"errors"
	"runtime"

	"github.com/yllada/tabdeck/common"
	"github.com/yllada/tabdeck/elevation"
	"github.com/yllada/tabdeck/plugin"
)

// TabState is the lifecycle state of a single tab.
type TabState int

const (
	// StatePlaceholder is a discovered tab whose widget has not been built.
	StatePlaceholder TabState = iota
	// StateLoading means the tab's factory is running.
	StateLoading
	// StateReady means the widget is built and cached.
	StateReady
	// StateAdminBlocked means the tab needs elevation the process lacks.
	StateAdminBlocked
	// StateError means the factory failed; the tab shows the message.
	StateError
)

func (s TabState) String() string {
	switch s {
	case StatePlaceholder:
		return "placeholder"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateAdminBlocked:
		return "admin-blocked"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// View is the window surface the controller drives. The GTK main window
// implements it; tests use a fake.
type View interface {
	AddTab(name string)
	RemoveTab(name string)
	ShowTabs()
	PresentContent(name string, widget plugin.Widget)
	PresentAdminRequired(name string)
	PresentError(name string, message string)
	ShowFatal(message string)
}

// Options configure platform-dependent controller behavior. The zero
// value is filled with the real platform at construction; tests override.
type Options struct {
	IsWindows bool
	IsAdmin   bool
	set       bool
}

// PlatformOptions reports the running process's platform and elevation
// state using the supplied probe.
func PlatformOptions(isAdmin func() bool) Options {
	return Options{
		IsWindows: runtime.GOOS == "windows",
		IsAdmin:   isAdmin(),
		set:       true,
	}
}

// Controller owns tab lifecycle state. All methods must be called from
// the UI thread; the worker never touches the controller directly.
type Controller struct {
	view    View
	service *plugin.Service
	hostFor func(pluginName string) plugin.Host
	opts    Options

	states  map[string]TabState
	widgets map[string]plugin.Widget
	// loading holds the name of the tab whose factory runs right now.
	// At most one load is in flight.
	loading string
}

// NewController creates a controller. hostFor builds the host handed to
// a plugin's factory, letting each plugin get its own secret namespace;
// a nil hostFor passes a nil host through.
func NewController(view View, service *plugin.Service, hostFor func(pluginName string) plugin.Host, opts Options) *Controller {
	if !opts.set {
		opts.IsWindows = runtime.GOOS == "windows"
	}
	return &Controller{
		view:    view,
		service: service,
		hostFor: hostFor,
		opts:    opts,
		states:  make(map[string]TabState),
		widgets: make(map[string]plugin.Widget),
	}
}

// State returns a tab's current lifecycle state.
func (c *Controller) State(name string) (TabState, bool) {
	s, ok := c.states[name]
	return s, ok
}

// HandleEvent applies one worker event to the view. TabFound adds a
// placeholder tab (if the plugin is enabled); the terminal events reveal
// the tab strip, Failed additionally surfacing the error. Discovery
// failure never kills the application.
func (c *Controller) HandleEvent(ev Event) {
	switch e := ev.(type) {
	case TabFound:
		if !c.service.Registry().IsEnabled(e.Name) {
			return
		}
		if _, exists := c.states[e.Name]; exists {
			return
		}
		c.states[e.Name] = StatePlaceholder
		c.view.AddTab(e.Name)
	case Finished:
		common.LogInfo("Discovery finished: %d tabs available", len(e.Results))
		c.view.ShowTabs()
	case Failed:
		if errors.Is(e.Err, context.Canceled) {
			common.LogInfo("Discovery cancelled")
			return
		}
		common.LogError("Discovery failed: %v", e.Err)
		c.view.ShowTabs()
		c.view.ShowFatal(e.Err.Error())
	}
}

// ActivateTab materializes a tab when the user switches to it. Already
// materialized tabs and activations during another load are no-ops. The
// factory runs at most once per tab life.
func (c *Controller) ActivateTab(name string) {
	state, ok := c.states[name]
	if !ok || state != StatePlaceholder {
		return
	}
	if c.loading != "" {
		return
	}

	p, ok := c.service.Registry().Get(name)
	if !ok {
		common.LogWarn("Activated tab %q has no registered plugin", name)
		return
	}

	info := p.Info()
	if elevation.NeedsAdminForPlugin(c.opts.IsWindows, info.RequiresAdmin, c.opts.IsAdmin) {
		c.states[name] = StateAdminBlocked
		c.view.PresentAdminRequired(name)
		return
	}

	var host plugin.Host
	if c.hostFor != nil {
		host = c.hostFor(name)
	}

	c.loading = name
	c.states[name] = StateLoading
	widget, err := p.CreateWidget(host)
	c.loading = ""

	if err != nil {
		common.LogError("Plugin %q failed to build its tab: %v", name, err)
		c.states[name] = StateError
		c.view.PresentError(name, err.Error())
		return
	}

	c.widgets[name] = widget
	c.states[name] = StateReady
	c.view.PresentContent(name, widget)
}

// SetEnabled applies an enable/disable decision from the plugin dialog.
// Disabling removes the tab and forgets its widget; enabling re-adds it
// as a fresh placeholder.
func (c *Controller) SetEnabled(name string, enabled bool) {
	reg := c.service.Registry()
	if _, ok := reg.Get(name); !ok {
		return
	}

	if enabled {
		reg.Enable(name)
		if _, exists := c.states[name]; !exists {
			c.states[name] = StatePlaceholder
			c.view.AddTab(name)
		}
		return
	}

	reg.Disable(name)
	if _, exists := c.states[name]; exists {
		delete(c.states, name)
		delete(c.widgets, name)
		c.view.RemoveTab(name)
	}
}

// Widget returns the cached widget for a ready tab.
func (c *Controller) Widget(name string) (plugin.Widget, bool) {
	w, ok := c.widgets[name]
	return w, ok
}
