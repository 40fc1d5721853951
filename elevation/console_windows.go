//go:build windows

package elevation

import "golang.org/x/sys/windows"

var (
	kernel32         = windows.NewLazySystemDLL("kernel32.dll")
	user32           = windows.NewLazySystemDLL("user32.dll")
	getConsoleWindow = kernel32.NewProc("GetConsoleWindow")
	showWindow       = user32.NewProc("ShowWindow")
)

const (
	swHide = 0
	swShow = 5
)

// SetConsoleVisible shows or hides the console window attached to this
// process. Reports true when the operation succeeded or no console
// exists.
func SetConsoleVisible(visible bool) bool {
	hwnd, _, _ := getConsoleWindow.Call()
	if hwnd == 0 {
		return true
	}
	cmd := uintptr(swHide)
	if visible {
		cmd = swShow
	}
	showWindow.Call(hwnd, cmd)
	return true
}
