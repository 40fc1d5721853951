//go:build windows

package elevation

import (
	"os"
	"os/exec"
	"os/user"
	"strings"
	"syscall"

	"golang.org/x/sys/windows"

	"github.com/yllada/tabdeck/common"
)

// IsAdmin reports whether the process token is elevated.
func IsAdmin() bool {
	var token windows.Token
	proc := windows.CurrentProcess()
	if err := windows.OpenProcessToken(proc, windows.TOKEN_QUERY, &token); err != nil {
		return false
	}
	defer token.Close()
	return token.IsElevated()
}

// SudoAvailable is a Linux concept; always false here.
func SudoAvailable() bool { return false }

// PkexecAvailable is a Linux concept; always false here.
func PkexecAvailable() bool { return false }

// CurrentUser returns the user name without the machine/domain prefix.
func CurrentUser() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		if i := strings.LastIndexByte(u.Username, '\\'); i >= 0 {
			return u.Username[i+1:]
		}
		return u.Username
	}
	if name := os.Getenv("USERNAME"); name != "" {
		return name
	}
	return "unknown"
}

// CurrentGroup has no meaningful Windows equivalent in this context.
func CurrentGroup() string { return "" }

// CanElevate: UAC can always be asked.
func CanElevate() bool { return true }

// Status gathers the privilege picture.
func Status() SudoStatus {
	return SudoStatus{
		IsAdmin:     IsAdmin(),
		CurrentUser: CurrentUser(),
		CanElevate:  true,
	}
}

// RunAsAdmin relaunches the current executable elevated through the UAC
// prompt ("runas" verb). On success the caller should exit; the elevated
// instance takes over. Returns nil without relaunching when already
// elevated.
func RunAsAdmin() error {
	if IsAdmin() {
		return nil
	}

	exe, err := os.Executable()
	if err != nil {
		return common.WrapError(err, "failed to locate executable")
	}
	args := strings.Join(os.Args[1:], " ")

	verb, _ := syscall.UTF16PtrFromString("runas")
	path, _ := syscall.UTF16PtrFromString(exe)
	params, _ := syscall.UTF16PtrFromString(args)

	if err := windows.ShellExecute(0, verb, path, params, nil, windows.SW_NORMAL); err != nil {
		return common.WrapError(err, "elevation request rejected")
	}

	common.LogInfo("Relaunched elevated instance, exiting")
	os.Exit(0)
	return nil
}

// RunCommandAsAdmin runs a command elevated. Already-elevated processes
// run it directly; otherwise the command goes through the UAC prompt in
// a cmd window and its output is not captured.
func RunCommandAsAdmin(name string, args ...string) ([]byte, error) {
	if IsAdmin() {
		return exec.Command(name, args...).CombinedOutput()
	}

	cmdline := name
	if len(args) > 0 {
		cmdline += " " + strings.Join(args, " ")
	}

	verb, _ := syscall.UTF16PtrFromString("runas")
	path, _ := syscall.UTF16PtrFromString("cmd.exe")
	params, _ := syscall.UTF16PtrFromString("/c " + cmdline)

	if err := windows.ShellExecute(0, verb, path, params, nil, windows.SW_NORMAL); err != nil {
		return nil, common.WrapError(err, "failed to run command elevated")
	}
	return nil, nil
}
