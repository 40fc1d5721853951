// Package common provides shared constants, types, and utilities
// used across the Tab Deck application.
package common

// SecretStore defines the interface for secret storage offered to plugins.
// Implementations may use the system keyring, encrypted files, etc.
type SecretStore interface {
	// Store saves a secret under a key.
	Store(key, value string) error
	// Get retrieves a secret by key.
	Get(key string) (string, error)
	// Delete removes a secret by key.
	Delete(key string) error
}

// PluginStateStore defines the interface for persisting user plugin
// enable/disable decisions across application runs.
type PluginStateStore interface {
	// DisabledNames returns the names of plugins the user has disabled.
	DisabledNames() ([]string, error)
	// SetEnabled records the user's enable/disable decision for a plugin.
	SetEnabled(name string, enabled bool) error
	// Close releases the underlying storage.
	Close() error
}

// Notifier defines the interface for sending notifications.
type Notifier interface {
	// Notify sends a notification with the given title and message.
	Notify(title, message string) error
}

// Logger defines the interface for structured logging.
type Logger interface {
	// Debug logs a debug message.
	Debug(msg string, args ...interface{})
	// Info logs an informational message.
	Info(msg string, args ...interface{})
	// Warn logs a warning message.
	Warn(msg string, args ...interface{})
	// Error logs an error message.
	Error(msg string, args ...interface{})
}
