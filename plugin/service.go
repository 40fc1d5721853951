package plugin

import (
	"context"
	"fmt"
	"sort"

	"github.com/yllada/tabdeck/common"
)

// Service is the high-level plugin facade the shell talks to. It owns
// the registry and the discovery passes and exposes the operations the
// UI needs: initial load, reload, and per-plugin queries.
type Service struct {
	registry *Registry
	core     []Plugin
	passes   []*Discovery
}

// NewService wires a registry with the static core list and one
// discovery pass per plugins directory, scanned in the given order
// (bundled directory first, then the user's external directory). The
// core list registers ahead of every pass so compiled-in tabs always
// claim their names first.
func NewService(reg *Registry, core []Plugin, dirs ...string) *Service {
	s := &Service{registry: reg, core: core}
	if len(dirs) == 0 {
		dirs = []string{""}
	}
	for _, dir := range dirs {
		s.passes = append(s.passes, NewDiscovery(dir))
	}
	return s
}

// Registry exposes the underlying registry for enable/disable and
// lookup operations.
func (s *Service) Registry() *Registry { return s.registry }

// Load runs a full discovery: explicit core plugins, then the builtin
// factories together with the first directory, then the remaining
// directories in sequence. The merged summary covers all passes.
func (s *Service) Load() Summary {
	summary, _ := s.LoadContext(context.Background(), nil)
	return summary
}

// LoadContext is Load with cooperative cancellation and a per-plugin
// callback, for callers that stream tabs into a UI as they register.
// The callback also fires for the explicit core plugins, and the summary
// counts and lists them alongside the discovered candidates.
func (s *Service) LoadContext(ctx context.Context, onRegistered func(Candidate)) (Summary, error) {
	var coreSummary Summary
	for _, p := range s.core {
		if err := ctx.Err(); err != nil {
			return coreSummary, err
		}
		coreSummary.TotalDiscovered++
		coreSummary.BuiltinPlugins++

		name := p.Info().Name
		if err := s.registry.Register(p, true); err != nil {
			common.LogError("Core plugin %q rejected: %v", name, err)
			coreSummary.Failed++
			continue
		}
		if got, ok := s.registry.Get(name); !ok || got != p {
			coreSummary.Skipped++
			continue
		}
		coreSummary.Registered++
		coreSummary.Plugins = append(coreSummary.Plugins, PluginRecord{
			Name:   name,
			Origin: OriginBuiltin,
			Type:   fmt.Sprintf("%T", p),
		})
		if onRegistered != nil {
			onRegistered(Candidate{Name: name, Plugin: p, Origin: OriginBuiltin})
		}
	}

	summary, err := RegisterDiscoveredContext(ctx, s.registry, s.passes[0].DiscoverAll(), onRegistered)
	coreSummary.BatchID = summary.BatchID
	coreSummary.Merge(summary)
	summary = coreSummary
	if err != nil {
		return summary, err
	}
	for _, pass := range s.passes[1:] {
		next, err := RegisterDiscoveredContext(ctx, s.registry, pass.DiscoverLocal(), onRegistered)
		summary.Merge(next)
		if err != nil {
			return summary, err
		}
	}
	return summary, nil
}

// Results returns the registered, enabled-or-not plugins for the names a
// summary reports, keyed by name.
func (s *Service) Results(summary Summary) map[string]Plugin {
	results := make(map[string]Plugin, len(summary.Plugins))
	for _, rec := range summary.Plugins {
		if p, ok := s.registry.Get(rec.Name); ok {
			results[rec.Name] = p
		}
	}
	return results
}

// Reload wipes the registered plugins and runs discovery again. The
// user's enable/disable decisions survive the reload.
func (s *Service) Reload() Summary {
	s.registry.Clear()
	return s.Load()
}

// TabOrder returns the enabled plugin names in presentation order:
// core tabs first (sorted), then external tabs (sorted).
func (s *Service) TabOrder() []string {
	core := s.registry.Core()
	external := s.registry.External()

	ordered := make([]string, 0, len(core)+len(external))
	for name := range core {
		if s.registry.IsEnabled(name) {
			ordered = append(ordered, name)
		}
	}
	sort.Strings(ordered)

	ext := make([]string, 0, len(external))
	for name := range external {
		if s.registry.IsEnabled(name) {
			ext = append(ext, name)
		}
	}
	sort.Strings(ext)

	return append(ordered, ext...)
}

// Describe returns the Info for a registered plugin.
func (s *Service) Describe(name string) (Info, error) {
	p, ok := s.registry.Get(name)
	if !ok {
		return Info{}, fmt.Errorf("%w: %q", common.ErrPluginNotFound, name)
	}
	return p.Info(), nil
}
