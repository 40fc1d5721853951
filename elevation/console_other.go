//go:build !windows

package elevation

// SetConsoleVisible is a no-op outside Windows.
func SetConsoleVisible(visible bool) bool {
	return true
}
