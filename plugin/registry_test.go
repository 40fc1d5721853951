package plugin

import (
	"errors"
	"testing"

	"github.com/yllada/tabdeck/common"
)

// fakePlugin is a minimal Plugin implementation for registry tests.
type fakePlugin struct {
	info Info
}

func (f *fakePlugin) Info() Info { return f.info }

func (f *fakePlugin) CreateWidget(host Host) (Widget, error) {
	return TextContent{Title: f.info.Name}, nil
}

func testPlugin(name string) *fakePlugin {
	return &fakePlugin{info: Info{
		Name:      name,
		Version:   "1.0.0",
		Platforms: []string{CurrentPlatform()},
	}}
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()

	if err := r.Register(testPlugin("Alpha"), false); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	p, ok := r.Get("Alpha")
	if !ok {
		t.Fatal("Get(\"Alpha\") not found after Register")
	}
	if p.Info().Name != "Alpha" {
		t.Errorf("Get(\"Alpha\").Info().Name = %q", p.Info().Name)
	}
	if len(r.External()) != 1 {
		t.Errorf("External() len = %d, want 1", len(r.External()))
	}
	if len(r.Core()) != 0 {
		t.Errorf("Core() len = %d, want 0", len(r.Core()))
	}
}

func TestRegistry_Register_Invalid(t *testing.T) {
	tests := []struct {
		name string
		info Info
	}{
		{
			name: "empty name",
			info: Info{Version: "1.0.0", Platforms: []string{CurrentPlatform()}},
		},
		{
			name: "sentinel name",
			info: Info{Name: SentinelName, Version: "1.0.0", Platforms: []string{CurrentPlatform()}},
		},
		{
			name: "no platforms",
			info: Info{Name: "Beta", Version: "1.0.0"},
		},
		{
			name: "no version",
			info: Info{Name: "Beta", Platforms: []string{CurrentPlatform()}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			err := r.Register(&fakePlugin{info: tt.info}, false)
			if !errors.Is(err, common.ErrInvalidPlugin) {
				t.Errorf("Register() error = %v, want ErrInvalidPlugin", err)
			}
			if len(r.All()) != 0 {
				t.Error("invalid plugin was registered")
			}
		})
	}
}

func TestRegistry_Register_IncompatibleSkipped(t *testing.T) {
	r := NewRegistry()
	p := &fakePlugin{info: Info{
		Name:      "Elsewhere",
		Version:   "1.0.0",
		Platforms: []string{"Plan9"},
	}}

	if err := r.Register(p, false); err != nil {
		t.Fatalf("Register() error = %v, want nil for incompatible plugin", err)
	}
	if _, ok := r.Get("Elsewhere"); ok {
		t.Error("incompatible plugin was registered")
	}
}

func TestRegistry_Register_CoreWins(t *testing.T) {
	t.Run("core first", func(t *testing.T) {
		r := NewRegistry()
		core := testPlugin("Status")
		ext := testPlugin("Status")

		if err := r.Register(core, true); err != nil {
			t.Fatal(err)
		}
		if err := r.Register(ext, false); err != nil {
			t.Fatal(err)
		}

		got, _ := r.Get("Status")
		if got != Plugin(core) {
			t.Error("external plugin displaced a core plugin")
		}
		if len(r.External()) != 0 {
			t.Errorf("External() len = %d, want 0", len(r.External()))
		}
	})

	t.Run("external first", func(t *testing.T) {
		r := NewRegistry()
		ext := testPlugin("Status")
		core := testPlugin("Status")

		if err := r.Register(ext, false); err != nil {
			t.Fatal(err)
		}
		if err := r.Register(core, true); err != nil {
			t.Fatal(err)
		}

		got, _ := r.Get("Status")
		if got != Plugin(core) {
			t.Error("core plugin did not replace the external one")
		}
		if len(r.External()) != 0 {
			t.Errorf("External() len = %d, want 0", len(r.External()))
		}
		if len(r.Core()) != 1 {
			t.Errorf("Core() len = %d, want 1", len(r.Core()))
		}
	})
}

func TestRegistry_EnableDisable(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(testPlugin("Alpha"), false); err != nil {
		t.Fatal(err)
	}

	if !r.IsEnabled("Alpha") {
		t.Error("plugin should start enabled")
	}

	r.Disable("Alpha")
	if r.IsEnabled("Alpha") {
		t.Error("plugin still enabled after Disable")
	}
	r.Disable("Alpha") // idempotent
	if r.IsEnabled("Alpha") {
		t.Error("second Disable flipped state")
	}

	r.Enable("Alpha")
	if !r.IsEnabled("Alpha") {
		t.Error("plugin still disabled after Enable")
	}
	r.Enable("Alpha") // idempotent
	if !r.IsEnabled("Alpha") {
		t.Error("second Enable flipped state")
	}
}

func TestRegistry_DisabledByDefault_OncePerSession(t *testing.T) {
	r := NewRegistry()
	p := &fakePlugin{info: Info{
		Name:              "Quiet",
		Version:           "1.0.0",
		Platforms:         []string{CurrentPlatform()},
		DisabledByDefault: true,
	}}

	if err := r.Register(p, false); err != nil {
		t.Fatal(err)
	}
	if r.IsEnabled("Quiet") {
		t.Fatal("disabled-by-default plugin started enabled")
	}

	// User enables it; a rediscovery must not re-disable it.
	r.Enable("Quiet")
	r.Clear()
	if err := r.Register(p, false); err != nil {
		t.Fatal(err)
	}
	if !r.IsEnabled("Quiet") {
		t.Error("rediscovery re-applied the disabled default over a user enable")
	}
}

func TestRegistry_Clear_PreservesState(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(testPlugin("Alpha"), false); err != nil {
		t.Fatal(err)
	}
	if err := r.Register(testPlugin("Beta"), true); err != nil {
		t.Fatal(err)
	}
	r.Disable("Alpha")

	r.Clear()

	if len(r.All()) != 0 || len(r.Core()) != 0 || len(r.External()) != 0 {
		t.Error("Clear() left plugins registered")
	}
	if r.IsEnabled("Alpha") {
		t.Error("Clear() dropped the disabled state")
	}
}

func TestRegistry_ResetDefaults(t *testing.T) {
	r := NewRegistry()
	p := &fakePlugin{info: Info{
		Name:              "Quiet",
		Version:           "1.0.0",
		Platforms:         []string{CurrentPlatform()},
		DisabledByDefault: true,
	}}
	if err := r.Register(p, false); err != nil {
		t.Fatal(err)
	}
	r.Enable("Quiet")

	r.ResetDefaults()
	r.Clear()
	if err := r.Register(p, false); err != nil {
		t.Fatal(err)
	}
	if r.IsEnabled("Quiet") {
		t.Error("ResetDefaults() did not restore the disabled default on rediscovery")
	}
}

func TestRegistry_Names(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"Charlie", "Alpha", "Beta"} {
		if err := r.Register(testPlugin(name), false); err != nil {
			t.Fatal(err)
		}
	}

	names := r.Names()
	want := []string{"Alpha", "Beta", "Charlie"}
	if len(names) != len(want) {
		t.Fatalf("Names() = %v, want %v", names, want)
	}
	for i, name := range want {
		if names[i] != name {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], name)
		}
	}
}

func TestRegistry_Enabled(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(testPlugin("Alpha"), false); err != nil {
		t.Fatal(err)
	}
	if err := r.Register(testPlugin("Beta"), false); err != nil {
		t.Fatal(err)
	}
	r.Disable("Beta")

	enabled := r.Enabled()
	if len(enabled) != 1 {
		t.Fatalf("Enabled() len = %d, want 1", len(enabled))
	}
	if _, ok := enabled["Alpha"]; !ok {
		t.Error("Enabled() missing Alpha")
	}

	names := r.EnabledNames()
	if len(names) != 1 || names[0] != "Alpha" {
		t.Errorf("EnabledNames() = %v, want [Alpha]", names)
	}
}

// stubStateStore records SetEnabled calls for write-through tests.
type stubStateStore struct {
	disabled []string
	calls    map[string]bool
}

func (s *stubStateStore) DisabledNames() ([]string, error) { return s.disabled, nil }
func (s *stubStateStore) SetEnabled(name string, enabled bool) error {
	if s.calls == nil {
		s.calls = make(map[string]bool)
	}
	s.calls[name] = enabled
	return nil
}
func (s *stubStateStore) Close() error { return nil }

func TestRegistryWithStore(t *testing.T) {
	store := &stubStateStore{disabled: []string{"Alpha"}}
	r, err := NewRegistryWithStore(store)
	if err != nil {
		t.Fatalf("NewRegistryWithStore() error = %v", err)
	}

	if err := r.Register(testPlugin("Alpha"), false); err != nil {
		t.Fatal(err)
	}
	if r.IsEnabled("Alpha") {
		t.Error("stored disabled state was not loaded")
	}

	r.Enable("Alpha")
	if got, ok := store.calls["Alpha"]; !ok || !got {
		t.Error("Enable did not write through to the store")
	}
	r.Disable("Alpha")
	if got := store.calls["Alpha"]; got {
		t.Error("Disable did not write through to the store")
	}
}
