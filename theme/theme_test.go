package theme

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/yllada/tabdeck/common"
)

func TestColor_UnmarshalYAML(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Color
		wantErr bool
	}{
		{"hex", `"#1e2d3c"`, Color{0x1e, 0x2d, 0x3c, 0xff}, false},
		{"hex with alpha", `"#1e2d3c80"`, Color{0x1e, 0x2d, 0x3c, 0x80}, false},
		{"rgb list", `[30, 45, 60]`, Color{30, 45, 60, 255}, false},
		{"rgba list", `[30, 45, 60, 128]`, Color{30, 45, 60, 128}, false},
		{"short hex", `"#fff"`, Color{}, true},
		{"two channels", `[30, 45]`, Color{}, true},
		{"channel out of range", `[30, 45, 300]`, Color{}, true},
		{"mapping", `{r: 1}`, Color{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Color
			err := yaml.Unmarshal([]byte(tt.input), &c)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Unmarshal(%s) succeeded, want error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal(%s) error = %v", tt.input, err)
			}
			if c != tt.want {
				t.Errorf("Unmarshal(%s) = %+v, want %+v", tt.input, c, tt.want)
			}
		})
	}
}

func TestColor_Hex(t *testing.T) {
	if got := RGB(0x1e, 0x2d, 0x3c).Hex(); got != "#1e2d3c" {
		t.Errorf("Hex() = %q, want #1e2d3c", got)
	}
	if got := (Color{0x1e, 0x2d, 0x3c, 0x80}).Hex(); got != "#1e2d3c80" {
		t.Errorf("Hex() = %q, want #1e2d3c80", got)
	}
}

func TestTheme_Validate(t *testing.T) {
	good := Theme{Name: "Test", Palette: map[string]Color{RoleWindow: RGB(0, 0, 0)}}
	if err := good.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}

	noName := Theme{}
	if err := noName.Validate(); !errors.Is(err, common.ErrInvalidTheme) {
		t.Errorf("Validate() error = %v, want ErrInvalidTheme", err)
	}

	badRole := Theme{Name: "Test", Palette: map[string]Color{"banner": RGB(0, 0, 0)}}
	if err := badRole.Validate(); !errors.Is(err, common.ErrInvalidTheme) {
		t.Errorf("Validate() error = %v, want ErrInvalidTheme", err)
	}
}

func TestTheme_IsDark(t *testing.T) {
	themes := builtinThemes()
	if themes[KeyLight].IsDark() {
		t.Error("light theme detected as dark")
	}
	if !themes[KeyDark].IsDark() {
		t.Error("dark theme detected as light")
	}
	if (Theme{Name: "BarePalette"}).IsDark() {
		t.Error("theme without palette should count as light")
	}
}

func TestManager_Builtins(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "missing"))

	names := m.Names()
	if len(names) != 5 {
		t.Fatalf("Names() = %v, want 5 builtins", names)
	}
	for _, key := range []string{KeyDark, KeyLight, KeyLegacy, KeyBlue, KeyOceanBlue} {
		if _, err := m.Get(key); err != nil {
			t.Errorf("Get(%q) error = %v", key, err)
		}
	}

	if _, err := m.Get("nope"); !errors.Is(err, common.ErrThemeNotFound) {
		t.Errorf("Get(nope) error = %v, want ErrThemeNotFound", err)
	}
}

func TestManager_Apply(t *testing.T) {
	m := NewManager(t.TempDir())

	if m.Current() != KeyLight {
		t.Errorf("Current() = %q, want light", m.Current())
	}

	if _, err := m.Apply(KeyDark); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if m.Current() != KeyDark {
		t.Errorf("Current() = %q after Apply, want dark", m.Current())
	}

	if _, err := m.Apply("nope"); !errors.Is(err, common.ErrThemeNotFound) {
		t.Errorf("Apply(nope) error = %v, want ErrThemeNotFound", err)
	}
	if m.Current() != KeyDark {
		t.Error("failed Apply changed the current theme")
	}
}

func TestManager_SaveAndLoadCustom(t *testing.T) {
	dir := t.TempDir()
	m := NewManager(dir)

	custom := Theme{
		Name:        "Solarized",
		Description: "Custom",
		Stylesheet:  "window { background-color: #002b36; }",
		Palette: map[string]Color{
			RoleWindow: RGB(0x00, 0x2b, 0x36),
			RoleText:   RGB(0x83, 0x94, 0x96),
		},
	}
	if err := m.Save("solarized", custom); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	// A fresh manager over the same dir sees the saved theme.
	m2 := NewManager(dir)
	got, err := m2.Get("solarized")
	if err != nil {
		t.Fatalf("Get(solarized) error = %v", err)
	}
	if got.Name != "Solarized" || got.Palette[RoleWindow] != RGB(0x00, 0x2b, 0x36) {
		t.Errorf("round-tripped theme = %+v", got)
	}
}

func TestManager_ExportImport(t *testing.T) {
	dir := t.TempDir()
	m := NewManager(dir)

	out := filepath.Join(t.TempDir(), "midnight.yaml")
	if err := m.Export(KeyDark, out); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	key, err := m.Import(out)
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if key != "midnight" {
		t.Errorf("Import() key = %q, want midnight", key)
	}

	imported, err := m.Get("midnight")
	if err != nil {
		t.Fatal(err)
	}
	original, _ := m.Get(KeyDark)
	if imported.Name != original.Name || imported.Palette[RoleWindow] != original.Palette[RoleWindow] {
		t.Error("imported theme differs from exported original")
	}
}

func TestManager_InvalidCustomThemeSkipped(t *testing.T) {
	dir := t.TempDir()
	bad := "name: \npalette: {banner: \"#000000\"}\n"
	if err := os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte(bad), 0o644); err != nil {
		t.Fatal(err)
	}

	m := NewManager(dir)
	if _, err := m.Get("broken"); err == nil {
		t.Error("invalid custom theme was loaded")
	}
	if len(m.Names()) != 5 {
		t.Errorf("Names() = %v, want only builtins", m.Names())
	}
}

func TestAutoKey(t *testing.T) {
	if AutoKey(true) != KeyOceanBlue {
		t.Errorf("AutoKey(dark) = %q, want ocean_blue", AutoKey(true))
	}
	if AutoKey(false) != KeyLight {
		t.Errorf("AutoKey(light) = %q, want light", AutoKey(false))
	}
}

func TestManager_Resolve(t *testing.T) {
	m := NewManager(t.TempDir())
	if got := m.Resolve(KeyDark); got != KeyDark {
		t.Errorf("Resolve(dark) = %q", got)
	}
	got := m.Resolve(common.ThemeAuto)
	if got != KeyOceanBlue && got != KeyLight {
		t.Errorf("Resolve(auto) = %q, want a builtin", got)
	}
}
