// Package common provides shared constants, types, utilities, and interfaces
// used throughout the Tab Deck application.
//
// This package serves as the foundation for cross-cutting concerns:
//
//   - Constants: Application-wide constants like file names, directories, and UI dimensions
//   - Errors: Sentinel errors for consistent error handling across packages
//   - Interfaces: Abstractions for secret storage, plugin state persistence, and logging
//   - Logger: Structured logging with multiple output destinations
//   - Utils: Common utility functions for file operations and string manipulation
//
// # Usage
//
// Import the package to access shared functionality:
//
//	import "github.com/yllada/tabdeck/common"
//
//	// Use constants
//	dir := common.PluginsDirName
//
//	// Use logger
//	common.LogInfo("Registered plugin: %s", name)
//
//	// Check errors
//	if errors.Is(err, common.ErrPluginNotFound) {
//	    // Handle missing plugin
//	}
//
// # Design Principles
//
// This package follows several design principles:
//
//   - Single Responsibility: Each file handles one concern
//   - Interface Segregation: Small, focused interfaces
//   - Open/Closed: Extensible through interfaces, not modification
//   - Dependency Inversion: High-level modules depend on abstractions
package common
