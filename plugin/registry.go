// Package plugin provides the tab plugin system for Tab Deck.
// This file contains the Registry, the single source of truth for
// registered plugins and their enabled/disabled state.
package plugin

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/yllada/tabdeck/common"
)

// Registry holds the discovered plugins for one application run.
// Construct one at startup and pass it explicitly to discovery and the
// shell; there is no global registry.
type Registry struct {
	mu       sync.RWMutex
	plugins  map[string]Plugin
	core     map[string]Plugin
	external map[string]Plugin
	disabled map[string]struct{}
	// seen tracks names registered in this session so the
	// disabled-by-default state is applied only once.
	seen  map[string]struct{}
	store common.PluginStateStore
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		plugins:  make(map[string]Plugin),
		core:     make(map[string]Plugin),
		external: make(map[string]Plugin),
		disabled: make(map[string]struct{}),
		seen:     make(map[string]struct{}),
	}
}

// NewRegistryWithStore creates a registry whose enabled/disabled state is
// loaded from and written through to the given store. Plugins the user
// disabled in a previous run start disabled (and count as seen, so a
// disabled-by-default plugin is not re-disabled behind the user's back).
func NewRegistryWithStore(store common.PluginStateStore) (*Registry, error) {
	r := NewRegistry()
	r.store = store

	names, err := store.DisabledNames()
	if err != nil {
		return nil, common.WrapError(err, "failed to load plugin state")
	}
	for _, name := range names {
		r.disabled[name] = struct{}{}
		r.seen[name] = struct{}{}
	}
	return r, nil
}

// Register adds a plugin to the registry.
//
// It returns an error wrapping common.ErrInvalidPlugin when the plugin's
// metadata fails validation; nothing is registered in that case. A plugin
// that does not support the current platform is skipped silently: that is
// not an error. Name conflicts are resolved in favor of core plugins
// regardless of registration order.
func (r *Registry) Register(p Plugin, isCore bool) error {
	info := p.Info()
	name := info.Name

	if errs := info.Validate(); len(errs) > 0 {
		return fmt.Errorf("%w %q: %s", common.ErrInvalidPlugin, name, strings.Join(errs, ", "))
	}

	if !info.Compatible() {
		common.LogDebug("Skipping plugin %q: unsupported on %s", name, CurrentPlatform())
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.plugins[name]; exists {
		_, existingIsCore := r.core[name]
		if existingIsCore && !isCore {
			// Core plugins keep their slot; the external arrival loses.
			common.LogWarn("Skipping external plugin %q: conflicts with existing core plugin", name)
			return nil
		}
		if !existingIsCore && isCore {
			common.LogInfo("Replacing external plugin %q with core plugin", name)
			delete(r.external, name)
		}
	}

	r.plugins[name] = p
	if isCore {
		r.core[name] = p
	} else {
		r.external[name] = p
	}

	// Apply the default-disabled state only on first sight in this session,
	// never overriding an explicit user enable.
	if _, seen := r.seen[name]; !seen {
		if info.DisabledByDefault {
			if _, alreadyDisabled := r.disabled[name]; !alreadyDisabled {
				r.disabled[name] = struct{}{}
			}
		}
	}
	r.seen[name] = struct{}{}

	return nil
}

// Get returns a plugin by name.
func (r *Registry) Get(name string) (Plugin, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.plugins[name]
	return p, ok
}

// All returns a copy of all registered plugins keyed by name.
func (r *Registry) All() map[string]Plugin {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return copyPlugins(r.plugins)
}

// Core returns a copy of the core plugins keyed by name.
func (r *Registry) Core() map[string]Plugin {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return copyPlugins(r.core)
}

// External returns a copy of the external plugins keyed by name.
func (r *Registry) External() map[string]Plugin {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return copyPlugins(r.external)
}

// Names returns all registered plugin names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.plugins))
	for name := range r.plugins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Enable marks a plugin as enabled. Idempotent.
func (r *Registry) Enable(name string) {
	r.mu.Lock()
	delete(r.disabled, name)
	store := r.store
	r.mu.Unlock()

	if store != nil {
		if err := store.SetEnabled(name, true); err != nil {
			common.LogWarn("Failed to persist enable for %q: %v", name, err)
		}
	}
}

// Disable marks a plugin as disabled. Idempotent.
func (r *Registry) Disable(name string) {
	r.mu.Lock()
	r.disabled[name] = struct{}{}
	store := r.store
	r.mu.Unlock()

	if store != nil {
		if err := store.SetEnabled(name, false); err != nil {
			common.LogWarn("Failed to persist disable for %q: %v", name, err)
		}
	}
}

// IsEnabled reports whether a plugin is enabled.
func (r *Registry) IsEnabled(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, disabled := r.disabled[name]
	return !disabled
}

// Enabled returns a copy of all enabled plugins keyed by name.
func (r *Registry) Enabled() map[string]Plugin {
	r.mu.RLock()
	defer r.mu.RUnlock()

	enabled := make(map[string]Plugin)
	for name, p := range r.plugins {
		if _, disabled := r.disabled[name]; !disabled {
			enabled[name] = p
		}
	}
	return enabled
}

// EnabledNames returns the names of all enabled plugins, sorted.
func (r *Registry) EnabledNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.plugins))
	for name := range r.plugins {
		if _, disabled := r.disabled[name]; !disabled {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Clear wipes all registered plugins so discovery can run fresh.
// User enable/disable decisions and the per-session seen set survive a
// clear: a reload must not clobber the user's explicit choices.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.plugins = make(map[string]Plugin)
	r.core = make(map[string]Plugin)
	r.external = make(map[string]Plugin)
}

// ResetDefaults forgets all enable/disable decisions and the seen set,
// so the next discovery re-applies every plugin's declared defaults.
func (r *Registry) ResetDefaults() {
	r.mu.Lock()
	disabled := make([]string, 0, len(r.disabled))
	for name := range r.disabled {
		disabled = append(disabled, name)
	}
	r.disabled = make(map[string]struct{})
	r.seen = make(map[string]struct{})
	store := r.store
	r.mu.Unlock()

	if store != nil {
		for _, name := range disabled {
			if err := store.SetEnabled(name, true); err != nil {
				common.LogWarn("Failed to reset state for %q: %v", name, err)
			}
		}
	}
}

func copyPlugins(src map[string]Plugin) map[string]Plugin {
	dst := make(map[string]Plugin, len(src))
	for name, p := range src {
		dst[name] = p
	}
	return dst
}
