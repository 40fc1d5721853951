// Package plugin provides the tab plugin system for Tab Deck.
// This file contains the contract every tab plugin implements.
package plugin

import (
	"runtime"
	"strings"

	"github.com/yllada/tabdeck/common"
)

// SentinelName is the placeholder name a plugin must replace.
// A plugin whose Info still carries it is rejected at registration.
const SentinelName = "Unnamed Tab"

// Widget is the tab content produced by a plugin's factory. The GTK shell
// mounts gtk.Widgetter values directly and knows how to render the
// declarative TextContent and ListContent values itself. The type is
// deliberately opaque so the contract, the registry, and the lifecycle
// code stay free of UI dependencies.
type Widget any

// TextContent is a declarative tab body: a title and a block of text.
// Manifest-defined plugins and simple bundled tabs produce it.
type TextContent struct {
	Title string
	Body  string
}

// ListContent is a declarative tab body: a title and labeled rows.
type ListContent struct {
	Title string
	Rows  []Row
}

// Row is a single labeled value in a ListContent body.
type Row struct {
	Label string
	Value string
}

// Host exposes application capabilities to plugin widget factories.
// Widgets are always created on the UI thread; Host methods may be
// called from there during creation.
type Host interface {
	// Logger returns the application logger.
	Logger() common.Logger
	// Secrets returns the per-plugin secret store.
	Secrets() common.SecretStore
	// Notify sends a desktop notification.
	Notify(title, message string) error
}

// Plugin is the contract every tab plugin implements.
type Plugin interface {
	// Info returns the plugin's metadata descriptor.
	Info() Info
	// CreateWidget builds the tab's content. It is called at most once per
	// tab activation, on the UI thread, and its result is cached for the
	// lifetime of the tab.
	CreateWidget(host Host) (Widget, error)
}

// CoreMarker is optionally implemented by plugins bundled with the
// application to request core registration priority. External plugins
// never implement it; core status can also be granted by the static
// core list registered before discovery runs.
type CoreMarker interface {
	Core() bool
}

// IsCore reports whether a plugin declares itself core.
func IsCore(p Plugin) bool {
	if m, ok := p.(CoreMarker); ok {
		return m.Core()
	}
	return false
}

// Info is the immutable metadata descriptor of a plugin.
// Each plugin owns its own Info value; descriptors never share
// mutable collections.
type Info struct {
	// Name is the unique tab name. Required; must not be SentinelName.
	Name string
	// Description is a human-readable summary.
	Description string
	// Platforms lists the platforms the plugin supports, e.g. "Windows", "Linux".
	Platforms []string
	// RequiresAdmin marks plugins that need elevated privileges on Windows.
	RequiresAdmin bool
	// Version is the plugin version string. Required.
	Version string
	// Author is the legacy single-author field.
	Author string
	// Authors lists all authors; when set it takes precedence over Author.
	Authors []string
	// DisabledByDefault disables the plugin on first discovery; the user
	// can enable it afterwards.
	DisabledByDefault bool
}

// Validate returns one message per violated invariant.
// An empty result means the descriptor is valid.
func (i Info) Validate() []string {
	var errs []string

	if i.Name == "" || i.Name == SentinelName {
		errs = append(errs, "plugin must define a valid name")
	}
	if len(i.Platforms) == 0 {
		errs = append(errs, "plugin must define supported platforms")
	}
	if i.Version == "" {
		errs = append(errs, "plugin must define a version")
	}

	return errs
}

// SupportsPlatform reports whether the plugin supports the given platform
// name. The comparison is against the capitalized form.
func (i Info) SupportsPlatform(platform string) bool {
	return common.StringInSlice(capitalize(platform), i.Platforms)
}

// Compatible reports whether the plugin supports the current platform.
func (i Info) Compatible() bool {
	return i.SupportsPlatform(CurrentPlatform())
}

// AuthorList returns the normalized author list: Authors when set,
// otherwise the single Author field wrapped in a list.
func (i Info) AuthorList() []string {
	if len(i.Authors) > 0 {
		authors := make([]string, 0, len(i.Authors))
		for _, a := range i.Authors {
			if a != "" {
				authors = append(authors, a)
			}
		}
		if len(authors) > 0 {
			return authors
		}
	}
	if i.Author != "" {
		return []string{i.Author}
	}
	return nil
}

// AuthorText returns the author list joined for display.
func (i Info) AuthorText() string {
	authors := i.AuthorList()
	if len(authors) == 0 {
		return "Unknown"
	}
	return strings.Join(authors, ", ")
}

// CurrentPlatform returns the capitalized name of the current platform
// as used in plugin metadata ("Linux", "Windows").
func CurrentPlatform() string {
	return capitalize(runtime.GOOS)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
