package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/yllada/tabdeck/common"
)

// Manager holds the available themes and the current selection. Custom
// themes live as YAML files in the themes directory; their key is the
// file name without extension, and they shadow builtins with the same
// key.
type Manager struct {
	mu       sync.RWMutex
	themes   map[string]Theme
	current  string
	themeDir string
}

// NewManager loads the builtin table and then any custom themes from
// dir. A missing directory is fine; unreadable files are logged and
// skipped.
func NewManager(dir string) *Manager {
	m := &Manager{
		themes:   builtinThemes(),
		current:  KeyLight,
		themeDir: dir,
	}
	m.loadCustomThemes()
	return m
}

func (m *Manager) loadCustomThemes() {
	entries, err := os.ReadDir(m.themeDir)
	if err != nil {
		if !os.IsNotExist(err) {
			common.LogWarn("Cannot read themes directory %s: %v", m.themeDir, err)
		}
		return
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".yaml") {
			continue
		}
		path := filepath.Join(m.themeDir, name)
		t, err := readThemeFile(path)
		if err != nil {
			common.LogError("Failed to load theme %s: %v", name, err)
			continue
		}
		key := strings.TrimSuffix(name, ".yaml")
		m.themes[key] = t
		common.LogInfo("Loaded custom theme: %s", key)
	}
}

func readThemeFile(path string) (Theme, error) {
	f, err := os.Open(path)
	if err != nil {
		return Theme{}, common.WrapError(err, "failed to open theme file")
	}
	defer f.Close()

	var t Theme
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil {
		return Theme{}, common.WrapError(err, "failed to parse theme file")
	}
	if err := t.Validate(); err != nil {
		return Theme{}, err
	}
	return t, nil
}

// Names returns the available theme keys, sorted.
func (m *Manager) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.themes))
	for key := range m.themes {
		names = append(names, key)
	}
	sort.Strings(names)
	return names
}

// Get returns a theme by key.
func (m *Manager) Get(key string) (Theme, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	t, ok := m.themes[key]
	if !ok {
		return Theme{}, fmt.Errorf("%w: %q", common.ErrThemeNotFound, key)
	}
	return t, nil
}

// Current returns the key of the selected theme.
func (m *Manager) Current() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Apply selects a theme and returns it for the caller to install.
func (m *Manager) Apply(key string) (Theme, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.themes[key]
	if !ok {
		return Theme{}, fmt.Errorf("%w: %q", common.ErrThemeNotFound, key)
	}
	m.current = key
	common.LogInfo("Applied theme: %s", key)
	return t, nil
}

// Save writes a custom theme to the themes directory under the given
// key and makes it available immediately.
func (m *Manager) Save(key string, t Theme) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if err := common.EnsureDir(m.themeDir); err != nil {
		return common.WrapError(err, "failed to create themes directory")
	}

	if err := writeThemeFile(filepath.Join(m.themeDir, key+".yaml"), t); err != nil {
		return err
	}

	m.mu.Lock()
	m.themes[key] = t
	m.mu.Unlock()

	common.LogInfo("Saved custom theme: %s", key)
	return nil
}

// Export writes a theme to an arbitrary path, for sharing.
func (m *Manager) Export(key, path string) error {
	t, err := m.Get(key)
	if err != nil {
		return err
	}
	return writeThemeFile(path, t)
}

// Import reads a theme file, stores it under the file's base name, and
// returns the key it is now available as.
func (m *Manager) Import(path string) (string, error) {
	t, err := readThemeFile(path)
	if err != nil {
		return "", err
	}
	key := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if err := m.Save(key, t); err != nil {
		return "", err
	}
	return key, nil
}

func writeThemeFile(path string, t Theme) error {
	data, err := yaml.Marshal(t)
	if err != nil {
		return common.WrapError(err, "failed to encode theme")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return common.WrapError(err, "failed to write theme file")
	}
	return nil
}

// SystemPrefersDark reports whether the desktop asked for dark mode.
// GTK exposes the preference via the gtk-application-prefer-dark-theme
// setting, which the UI layer reads; headless callers land here and get
// the historical fallback: dark on Linux, light elsewhere.
func SystemPrefersDark() bool {
	if v := os.Getenv("GTK_THEME"); strings.Contains(strings.ToLower(v), "dark") {
		return true
	}
	return runtime.GOOS == "linux"
}

// AutoKey picks the theme for the "auto" setting.
func AutoKey(prefersDark bool) string {
	if prefersDark {
		return KeyOceanBlue
	}
	return KeyLight
}

// Resolve maps a configured theme name to a concrete key, handling the
// auto setting.
func (m *Manager) Resolve(configured string) string {
	if configured == common.ThemeAuto || configured == "" {
		return AutoKey(SystemPrefersDark())
	}
	return configured
}
