// Package plugin provides the tab plugin system for Tab Deck.
//
// This package implements the core plugin functionality including:
//
//   - Contract: the Plugin interface and Info metadata every tab implements
//   - Registry: the single source of truth for registered plugins, their
//     core/external classification, and enabled/disabled state
//   - Discovery: locating plugins from the builtin extension-point group and
//     from local manifest directories, and registering the valid ones
//   - Service: the startup orchestration that registers core plugins first
//     and then discovers bundled and external plugins
//
// # Architecture
//
// Plugins come from two independent sources. Packages linked into the binary
// register factories under the extension-point group at init time (see
// RegisterFactory). Independently, a flat directory of YAML manifest files
// is scanned for declarative tab definitions. Both sources feed Discovery,
// which validates candidates and hands them to a Registry.
//
// Core plugins always win name conflicts against external plugins,
// regardless of registration order.
//
// # Thread Safety
//
// The Registry is mutex-guarded and safe for concurrent use, but by design
// discovery runs on a single background worker and all registration for a
// given Registry happens from that worker; the UI thread only reads.
package plugin
