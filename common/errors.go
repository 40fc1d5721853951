// Package common provides shared constants, types, and utilities
// used across the Tab Deck application.
package common

import "errors"

// Sentinel errors for plugin and theme operations.
// These can be checked with errors.Is() for proper error handling.
var (
	// Plugin errors.
	ErrInvalidPlugin  = errors.New("invalid plugin")
	ErrPluginNotFound = errors.New("plugin not found")
	ErrDuplicateName  = errors.New("plugin name already registered")
	ErrIncompatible   = errors.New("plugin not compatible with this platform")
	ErrNoFactory      = errors.New("plugin factory returned no plugin")

	// Theme errors.
	ErrThemeNotFound = errors.New("theme not found")
	ErrInvalidTheme  = errors.New("invalid theme data")

	// Credential errors.
	ErrCredentialsNotFound = errors.New("credentials not found")
	ErrCredentialStorage   = errors.New("failed to store credentials")

	// Configuration errors.
	ErrConfigLoad = errors.New("failed to load configuration")
	ErrConfigSave = errors.New("failed to save configuration")

	// Permission errors.
	ErrPermissionDenied = errors.New("permission denied")
	ErrAdminRequired    = errors.New("administrator privileges required")
)

// WrapError wraps an error with additional context.
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return &wrappedError{
		msg: message,
		err: err,
	}
}

type wrappedError struct {
	msg string
	err error
}

func (e *wrappedError) Error() string {
	return e.msg + ": " + e.err.Error()
}

func (e *wrappedError) Unwrap() error {
	return e.err
}
