package elevation

import "testing"

func TestNeedsAdminForPlugin(t *testing.T) {
	tests := []struct {
		name          string
		isWindows     bool
		requiresAdmin bool
		isAdmin       bool
		want          bool
	}{
		{"windows non-admin needing admin", true, true, false, true},
		{"windows admin needing admin", true, true, true, false},
		{"windows non-admin plain plugin", true, false, false, false},
		{"linux non-admin needing admin", false, true, false, false},
		{"linux root needing admin", false, true, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NeedsAdminForPlugin(tt.isWindows, tt.requiresAdmin, tt.isAdmin)
			if got != tt.want {
				t.Errorf("NeedsAdminForPlugin(%v, %v, %v) = %v, want %v",
					tt.isWindows, tt.requiresAdmin, tt.isAdmin, got, tt.want)
			}
		})
	}
}

func TestStatus(t *testing.T) {
	s := Status()
	if s.CurrentUser == "" {
		t.Error("Status().CurrentUser is empty")
	}
	if s.IsAdmin != IsAdmin() {
		t.Error("Status().IsAdmin disagrees with IsAdmin()")
	}
}

func TestSetConsoleVisible(t *testing.T) {
	if !SetConsoleVisible(true) {
		t.Error("SetConsoleVisible(true) = false")
	}
	if !SetConsoleVisible(false) {
		t.Error("SetConsoleVisible(false) = false")
	}
}
