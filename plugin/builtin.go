package plugin

import (
	"fmt"
	"sort"
	"sync"

	"github.com/yllada/tabdeck/common"
)

// BuiltinGroup is the extension-point group name builtin tab factories
// register under. Packages that ship tabs compiled into the binary call
// RegisterFactory from an init function.
const BuiltinGroup = "tabdeck.tabs"

// FactoryFunc constructs a plugin instance. Factories are invoked once
// per discovery pass; a failing factory is reported and skipped without
// affecting the other factories.
type FactoryFunc func() (Plugin, error)

var (
	factoryMu sync.RWMutex
	factories = make(map[string]map[string]FactoryFunc)
)

// RegisterFactory registers a named plugin factory under a group.
// It panics on a duplicate name within the same group, which indicates a
// programming error at init time rather than a runtime condition.
func RegisterFactory(group, name string, factory FactoryFunc) {
	if factory == nil {
		panic(fmt.Sprintf("plugin: nil factory registered as %s/%s", group, name))
	}

	factoryMu.Lock()
	defer factoryMu.Unlock()

	byName, ok := factories[group]
	if !ok {
		byName = make(map[string]FactoryFunc)
		factories[group] = byName
	}
	if _, dup := byName[name]; dup {
		panic(fmt.Sprintf("plugin: duplicate factory %s/%s", group, name))
	}
	byName[name] = factory
}

// FactoryNames returns the factory names registered under a group, sorted.
func FactoryNames(group string) []string {
	factoryMu.RLock()
	defer factoryMu.RUnlock()

	byName := factories[group]
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// instantiateGroup runs every factory in a group and returns the plugins
// that constructed successfully. Failures are logged per factory so one
// broken tab cannot take the rest down with it.
func instantiateGroup(group string) []Plugin {
	factoryMu.RLock()
	byName := factories[group]
	ordered := make([]string, 0, len(byName))
	for name := range byName {
		ordered = append(ordered, name)
	}
	sort.Strings(ordered)
	funcs := make([]FactoryFunc, 0, len(ordered))
	for _, name := range ordered {
		funcs = append(funcs, byName[name])
	}
	factoryMu.RUnlock()

	plugins := make([]Plugin, 0, len(funcs))
	for i, factory := range funcs {
		p, err := factory()
		if err != nil {
			common.LogError("Builtin plugin factory %s/%s failed: %v", group, ordered[i], err)
			continue
		}
		if p == nil {
			common.LogError("Builtin plugin factory %s/%s returned no plugin", group, ordered[i])
			continue
		}
		plugins = append(plugins, p)
	}
	return plugins
}

// resetFactories clears all registered factories. Test helper.
func resetFactories() {
	factoryMu.Lock()
	defer factoryMu.Unlock()
	factories = make(map[string]map[string]FactoryFunc)
}
