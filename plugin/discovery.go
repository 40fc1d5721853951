package plugin

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/yllada/tabdeck/common"
)

// OriginBuiltin marks a candidate that came from a compiled-in factory.
const OriginBuiltin = "builtin"

// Candidate is a plugin found by a discovery pass, before registration.
type Candidate struct {
	Name   string
	Plugin Plugin
	Origin string
}

// PluginRecord is one line of a Summary's candidate listing.
type PluginRecord struct {
	Name   string
	Origin string
	Type   string
}

// Summary describes the outcome of one discovery pass.
type Summary struct {
	BatchID         string
	TotalDiscovered int
	BuiltinPlugins  int
	LocalPlugins    int
	Registered      int
	Skipped         int
	Failed          int
	Plugins         []PluginRecord
}

// Merge folds another pass's summary into this one. The batch ID of the
// receiver is kept; counts are summed and listings concatenated.
func (s *Summary) Merge(other Summary) {
	s.TotalDiscovered += other.TotalDiscovered
	s.BuiltinPlugins += other.BuiltinPlugins
	s.LocalPlugins += other.LocalPlugins
	s.Registered += other.Registered
	s.Skipped += other.Skipped
	s.Failed += other.Failed
	s.Plugins = append(s.Plugins, other.Plugins...)
}

// Discovery finds plugin candidates from the two supported sources:
// factories compiled into the binary and YAML manifests in a plugins
// directory.
type Discovery struct {
	pluginsDir string
	path       searchPath
}

// NewDiscovery creates a discovery bound to a local plugins directory.
// An empty dir disables the local source.
func NewDiscovery(pluginsDir string) *Discovery {
	return &Discovery{pluginsDir: pluginsDir}
}

// DiscoverBuiltin instantiates every factory registered under the
// builtin group.
func (d *Discovery) DiscoverBuiltin() []Candidate {
	plugins := instantiateGroup(BuiltinGroup)
	candidates := make([]Candidate, 0, len(plugins))
	for _, p := range plugins {
		candidates = append(candidates, Candidate{
			Name:   p.Info().Name,
			Plugin: p,
			Origin: OriginBuiltin,
		})
	}
	return candidates
}

// DiscoverLocal scans the plugins directory for manifests. The directory
// is held for the duration of the scan so concurrent passes run one at
// a time. A missing directory yields no candidates and no error.
func (d *Discovery) DiscoverLocal() []Candidate {
	if d.pluginsDir == "" {
		return nil
	}

	release, ok := d.path.acquire(d.pluginsDir)
	if !ok {
		return nil
	}
	defer release()

	locals := scanManifests(d.pluginsDir)
	candidates := make([]Candidate, 0, len(locals))
	for _, lp := range locals {
		candidates = append(candidates, Candidate{
			Name:   lp.plugin.Info().Name,
			Plugin: lp.plugin,
			Origin: LocalOrigin(lp.file),
		})
	}
	return candidates
}

// DiscoverAll runs both sources, builtin first so core tabs win name
// conflicts by arrival order as well as by the registry's core rule.
func (d *Discovery) DiscoverAll() []Candidate {
	candidates := d.DiscoverBuiltin()
	return append(candidates, d.DiscoverLocal()...)
}

// RegisterDiscovered pushes candidates into the registry in discovery
// order. Builtin candidates and plugins that declare themselves core via
// CoreMarker register as core, the rest as external. A failing candidate
// is counted and logged without stopping the batch.
func RegisterDiscovered(reg *Registry, candidates []Candidate) Summary {
	summary, _ := RegisterDiscoveredContext(context.Background(), reg, candidates, nil)
	return summary
}

// RegisterDiscoveredContext is RegisterDiscovered with cooperative
// cancellation and a per-plugin callback. The context is checked before
// each candidate; on cancellation the partial summary is returned along
// with the context's error. onRegistered, when non-nil, is invoked for
// every candidate that actually lands in the registry.
func RegisterDiscoveredContext(ctx context.Context, reg *Registry, candidates []Candidate, onRegistered func(Candidate)) (Summary, error) {
	summary := Summary{
		BatchID:         uuid.NewString(),
		TotalDiscovered: len(candidates),
	}

	for _, c := range candidates {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		builtin := c.Origin == OriginBuiltin
		if builtin {
			summary.BuiltinPlugins++
		} else {
			summary.LocalPlugins++
		}

		isCore := builtin || IsCore(c.Plugin)
		if err := reg.Register(c.Plugin, isCore); err != nil {
			common.LogError("Discovery batch %s: plugin %q from %s rejected: %v",
				summary.BatchID, c.Name, c.Origin, err)
			summary.Failed++
			continue
		}
		if got, ok := reg.Get(c.Name); !ok || got != c.Plugin {
			// No error but the registry does not hold this instance:
			// platform skip or a lost name conflict.
			summary.Skipped++
			continue
		}
		summary.Registered++
		summary.Plugins = append(summary.Plugins, PluginRecord{
			Name:   c.Name,
			Origin: c.Origin,
			Type:   fmt.Sprintf("%T", c.Plugin),
		})
		if onRegistered != nil {
			onRegistered(c)
		}
	}

	common.LogInfo("Discovery batch %s: %d found (%d builtin, %d local), %d registered, %d skipped, %d failed",
		summary.BatchID, summary.TotalDiscovered, summary.BuiltinPlugins,
		summary.LocalPlugins, summary.Registered, summary.Skipped, summary.Failed)
	return summary, nil
}

// DiscoverAndRegister is a full pass over both sources: find everything,
// register it, and return the registered plugins by name plus the
// pass summary.
func (d *Discovery) DiscoverAndRegister(reg *Registry) (map[string]Plugin, Summary) {
	summary := RegisterDiscovered(reg, d.DiscoverAll())

	results := make(map[string]Plugin, len(summary.Plugins))
	for _, rec := range summary.Plugins {
		if p, ok := reg.Get(rec.Name); ok {
			results[rec.Name] = p
		}
	}
	return results, summary
}
