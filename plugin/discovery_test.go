package plugin

import (
	"errors"
	"strings"
	"testing"
)

func TestRegisterFactory(t *testing.T) {
	resetFactories()
	t.Cleanup(resetFactories)

	RegisterFactory(BuiltinGroup, "welcome", func() (Plugin, error) {
		return testPlugin("Welcome"), nil
	})

	names := FactoryNames(BuiltinGroup)
	if len(names) != 1 || names[0] != "welcome" {
		t.Errorf("FactoryNames() = %v, want [welcome]", names)
	}

	defer func() {
		if recover() == nil {
			t.Error("duplicate RegisterFactory did not panic")
		}
	}()
	RegisterFactory(BuiltinGroup, "welcome", func() (Plugin, error) {
		return testPlugin("Welcome"), nil
	})
}

func TestDiscovery_Builtin_FailureContained(t *testing.T) {
	resetFactories()
	t.Cleanup(resetFactories)

	RegisterFactory(BuiltinGroup, "good", func() (Plugin, error) {
		return testPlugin("Good"), nil
	})
	RegisterFactory(BuiltinGroup, "broken", func() (Plugin, error) {
		return nil, errors.New("boom")
	})

	d := NewDiscovery("")
	candidates := d.DiscoverBuiltin()
	if len(candidates) != 1 {
		t.Fatalf("DiscoverBuiltin() = %d candidates, want 1", len(candidates))
	}
	if candidates[0].Name != "Good" || candidates[0].Origin != OriginBuiltin {
		t.Errorf("unexpected candidate: %+v", candidates[0])
	}
}

func TestDiscovery_Local(t *testing.T) {
	resetFactories()
	t.Cleanup(resetFactories)

	dir := t.TempDir()
	writeManifest(t, dir, "disk.yaml", goodManifest)

	d := NewDiscovery(dir)
	candidates := d.DiscoverLocal()
	if len(candidates) != 1 {
		t.Fatalf("DiscoverLocal() = %d candidates, want 1", len(candidates))
	}
	if candidates[0].Origin != "local:disk.yaml" {
		t.Errorf("Origin = %q, want local:disk.yaml", candidates[0].Origin)
	}
}

func TestDiscovery_Local_MissingDir(t *testing.T) {
	d := NewDiscovery("/nonexistent/plugins")
	if got := d.DiscoverLocal(); len(got) != 0 {
		t.Errorf("DiscoverLocal() on missing dir = %v, want none", got)
	}
}

func TestDiscovery_All_BuiltinFirst(t *testing.T) {
	resetFactories()
	t.Cleanup(resetFactories)

	RegisterFactory(BuiltinGroup, "welcome", func() (Plugin, error) {
		return testPlugin("Welcome"), nil
	})
	dir := t.TempDir()
	writeManifest(t, dir, "disk.yaml", goodManifest)

	d := NewDiscovery(dir)
	candidates := d.DiscoverAll()
	if len(candidates) != 2 {
		t.Fatalf("DiscoverAll() = %d candidates, want 2", len(candidates))
	}
	if candidates[0].Origin != OriginBuiltin {
		t.Errorf("first candidate origin = %q, want builtin", candidates[0].Origin)
	}
	if !strings.HasPrefix(candidates[1].Origin, "local:") {
		t.Errorf("second candidate origin = %q, want local:*", candidates[1].Origin)
	}
}

func TestRegisterDiscovered(t *testing.T) {
	reg := NewRegistry()
	candidates := []Candidate{
		{Name: "Welcome", Plugin: testPlugin("Welcome"), Origin: OriginBuiltin},
		{Name: "Disk", Plugin: testPlugin("Disk"), Origin: "local:disk.yaml"},
		{Name: "", Plugin: &fakePlugin{info: Info{Version: "1.0"}}, Origin: "local:bad.yaml"},
		{Name: "Elsewhere", Plugin: &fakePlugin{info: Info{
			Name: "Elsewhere", Version: "1.0", Platforms: []string{"Plan9"},
		}}, Origin: "local:elsewhere.yaml"},
	}

	summary := RegisterDiscovered(reg, candidates)

	if summary.BatchID == "" {
		t.Error("Summary.BatchID is empty")
	}
	if summary.TotalDiscovered != 4 {
		t.Errorf("TotalDiscovered = %d, want 4", summary.TotalDiscovered)
	}
	if summary.BuiltinPlugins != 1 || summary.LocalPlugins != 3 {
		t.Errorf("source counts = %d builtin / %d local, want 1/3",
			summary.BuiltinPlugins, summary.LocalPlugins)
	}
	if summary.Registered != 2 {
		t.Errorf("Registered = %d, want 2", summary.Registered)
	}
	if summary.Failed != 1 {
		t.Errorf("Failed = %d, want 1", summary.Failed)
	}
	if summary.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", summary.Skipped)
	}
	if len(summary.Plugins) != 2 {
		t.Fatalf("Plugins = %v, want 2 records", summary.Plugins)
	}
	if summary.Plugins[0].Name != "Welcome" || summary.Plugins[0].Origin != OriginBuiltin {
		t.Errorf("Plugins[0] = %+v", summary.Plugins[0])
	}
	if summary.Plugins[0].Type == "" {
		t.Error("Plugins[0].Type is empty")
	}

	if _, ok := reg.Core()["Welcome"]; !ok {
		t.Error("builtin candidate not registered as core")
	}
	if _, ok := reg.External()["Disk"]; !ok {
		t.Error("local candidate not registered as external")
	}
}

func TestService_LoadAndReload(t *testing.T) {
	resetFactories()
	t.Cleanup(resetFactories)

	dir := t.TempDir()
	writeManifest(t, dir, "disk.yaml", goodManifest)

	core := []Plugin{testPlugin("Welcome")}
	svc := NewService(NewRegistry(), core, dir)

	summary := svc.Load()
	if summary.Registered != 2 {
		t.Errorf("Load() registered %d plugins, want 2 (core + local)", summary.Registered)
	}
	var coreRecord *PluginRecord
	for i := range summary.Plugins {
		if summary.Plugins[i].Name == "Welcome" {
			coreRecord = &summary.Plugins[i]
		}
	}
	if coreRecord == nil {
		t.Fatal("summary listing omits the core plugin")
	}
	if coreRecord.Origin != OriginBuiltin {
		t.Errorf("core record origin = %q, want %q", coreRecord.Origin, OriginBuiltin)
	}
	if results := svc.Results(summary); results["Welcome"] == nil {
		t.Error("Results misses the core plugin")
	}
	if _, ok := svc.Registry().Core()["Welcome"]; !ok {
		t.Error("core plugin missing after Load")
	}
	if _, ok := svc.Registry().External()["Disk Usage"]; !ok {
		t.Error("local plugin missing after Load")
	}

	svc.Registry().Disable("Disk Usage")
	svc.Reload()
	if svc.Registry().IsEnabled("Disk Usage") {
		t.Error("Reload() dropped the user's disable")
	}
	if _, ok := svc.Registry().Get("Welcome"); !ok {
		t.Error("core plugin missing after Reload")
	}
}

func TestService_TwoDirectoryPasses(t *testing.T) {
	resetFactories()
	t.Cleanup(resetFactories)

	bundled := t.TempDir()
	external := t.TempDir()
	writeManifest(t, bundled, "disk.yaml", goodManifest)
	writeManifest(t, external, "net.yaml", `
name: Network
version: "0.3.0"
platforms: [Linux, Windows]
content:
  body: up
`)

	svc := NewService(NewRegistry(), nil, bundled, external)
	summary := svc.Load()

	if summary.Registered != 2 {
		t.Errorf("merged Registered = %d, want 2", summary.Registered)
	}
	if summary.TotalDiscovered != 2 {
		t.Errorf("merged TotalDiscovered = %d, want 2", summary.TotalDiscovered)
	}
	for _, name := range []string{"Disk Usage", "Network"} {
		if _, ok := svc.Registry().Get(name); !ok {
			t.Errorf("plugin %q missing after two-pass load", name)
		}
	}
}

func TestDiscovery_DiscoverAndRegister(t *testing.T) {
	resetFactories()
	t.Cleanup(resetFactories)

	RegisterFactory(BuiltinGroup, "welcome", func() (Plugin, error) {
		return testPlugin("Welcome"), nil
	})

	reg := NewRegistry()
	results, summary := NewDiscovery("").DiscoverAndRegister(reg)
	if summary.Registered != 1 {
		t.Fatalf("Registered = %d, want 1", summary.Registered)
	}
	if _, ok := results["Welcome"]; !ok {
		t.Error("results missing Welcome")
	}
}

func TestService_TabOrder(t *testing.T) {
	reg := NewRegistry()
	for _, name := range []string{"Zeta", "Alpha"} {
		if err := reg.Register(testPlugin(name), true); err != nil {
			t.Fatal(err)
		}
	}
	for _, name := range []string{"Echo", "Bravo"} {
		if err := reg.Register(testPlugin(name), false); err != nil {
			t.Fatal(err)
		}
	}
	reg.Disable("Echo")

	svc := NewService(reg, nil)
	got := svc.TabOrder()
	want := []string{"Alpha", "Zeta", "Bravo"}
	if len(got) != len(want) {
		t.Fatalf("TabOrder() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("TabOrder()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestService_Describe(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register(testPlugin("Alpha"), false); err != nil {
		t.Fatal(err)
	}
	svc := NewService(reg, nil)

	info, err := svc.Describe("Alpha")
	if err != nil {
		t.Fatalf("Describe() error = %v", err)
	}
	if info.Name != "Alpha" {
		t.Errorf("Describe().Name = %q", info.Name)
	}

	if _, err := svc.Describe("Missing"); err == nil {
		t.Error("Describe() on unknown plugin returned nil error")
	}
}
