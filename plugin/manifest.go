package plugin

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yllada/tabdeck/common"
)

// ManifestExtension is the file extension local plugin manifests use.
const ManifestExtension = ".yaml"

// reservedManifestNames are filenames that look like manifests but belong
// to the plugin system itself and must never be loaded as tabs.
var reservedManifestNames = map[string]struct{}{
	"init" + ManifestExtension:      {},
	"base" + ManifestExtension:      {},
	"discovery" + ManifestExtension: {},
	"core" + ManifestExtension:      {},
}

// Manifest is the on-disk description of a local plugin. Local plugins
// are declarative: the manifest carries the tab metadata plus the static
// content the tab displays.
type Manifest struct {
	Name              string   `yaml:"name"`
	Description       string   `yaml:"description"`
	Version           string   `yaml:"version"`
	Platforms         []string `yaml:"platforms"`
	RequiresAdmin     bool     `yaml:"requires_admin"`
	Author            string   `yaml:"author"`
	Authors           []string `yaml:"authors"`
	DisabledByDefault bool     `yaml:"disabled_by_default"`
	Content           struct {
		Title string `yaml:"title"`
		Body  string `yaml:"body"`
		Rows  []struct {
			Label string `yaml:"label"`
			Value string `yaml:"value"`
		} `yaml:"rows"`
	} `yaml:"content"`
}

// loadManifest parses a single manifest file with strict field checking,
// so a typoed key fails the file instead of being ignored silently.
func loadManifest(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, common.WrapError(err, "failed to open manifest")
	}
	defer f.Close()

	var m Manifest
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		return nil, common.WrapError(err, "failed to parse manifest")
	}
	return &m, nil
}

// manifestPlugin adapts a parsed manifest to the Plugin interface.
type manifestPlugin struct {
	manifest *Manifest
}

func (m *manifestPlugin) Info() Info {
	return Info{
		Name:              m.manifest.Name,
		Description:       m.manifest.Description,
		Version:           m.manifest.Version,
		Platforms:         m.manifest.Platforms,
		RequiresAdmin:     m.manifest.RequiresAdmin,
		Author:            m.manifest.Author,
		Authors:           m.manifest.Authors,
		DisabledByDefault: m.manifest.DisabledByDefault,
	}
}

func (m *manifestPlugin) CreateWidget(host Host) (Widget, error) {
	title := m.manifest.Content.Title
	if title == "" {
		title = m.manifest.Name
	}

	if len(m.manifest.Content.Rows) > 0 {
		rows := make([]Row, 0, len(m.manifest.Content.Rows))
		for _, r := range m.manifest.Content.Rows {
			rows = append(rows, Row{Label: r.Label, Value: r.Value})
		}
		return ListContent{Title: title, Rows: rows}, nil
	}
	return TextContent{Title: title, Body: m.manifest.Content.Body}, nil
}

// isManifestCandidate reports whether a directory entry should be
// considered for loading. Underscore-prefixed files are developer
// scratch space; reserved names belong to the system.
func isManifestCandidate(name string) bool {
	if !strings.HasSuffix(name, ManifestExtension) {
		return false
	}
	if strings.HasPrefix(name, "_") {
		return false
	}
	if _, reserved := reservedManifestNames[name]; reserved {
		return false
	}
	return true
}

// scanManifests loads every candidate manifest in dir. Each file either
// yields a plugin or a logged failure; one bad file never aborts the scan.
func scanManifests(dir string) []localPlugin {
	entries, err := os.ReadDir(dir)
	if err != nil {
		common.LogWarn("Failed to read plugins directory %s: %v", dir, err)
		return nil
	}

	var found []localPlugin
	for _, entry := range entries {
		if entry.IsDir() || !isManifestCandidate(entry.Name()) {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		m, err := loadManifest(path)
		if err != nil {
			common.LogError("Skipping plugin manifest %s: %v", entry.Name(), err)
			continue
		}
		found = append(found, localPlugin{
			plugin: &manifestPlugin{manifest: m},
			file:   entry.Name(),
		})
	}
	return found
}

// localPlugin pairs a loaded local plugin with the manifest file it
// came from, for origin reporting.
type localPlugin struct {
	plugin Plugin
	file   string
}

// LocalOrigin formats the origin string for a manifest-backed plugin.
func LocalOrigin(file string) string {
	return fmt.Sprintf("local:%s", file)
}
