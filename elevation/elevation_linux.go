//go:build linux

package elevation

import (
	"os"
	"os/exec"
	"os/user"

	"github.com/yllada/tabdeck/common"
)

// IsAdmin reports whether the process runs as root.
func IsAdmin() bool {
	return os.Geteuid() == 0
}

// SudoAvailable reports whether sudo is on PATH.
func SudoAvailable() bool {
	_, err := exec.LookPath("sudo")
	return err == nil
}

// PkexecAvailable reports whether pkexec is on PATH.
func PkexecAvailable() bool {
	_, err := exec.LookPath("pkexec")
	return err == nil
}

// CurrentUser returns the invoking user's name, falling back to $USER.
func CurrentUser() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "unknown"
}

// CurrentGroup returns the primary group name, falling back to the gid.
func CurrentGroup() string {
	u, err := user.Current()
	if err != nil {
		return "unknown"
	}
	if g, err := user.LookupGroupId(u.Gid); err == nil {
		return g.Name
	}
	return u.Gid
}

// CanElevate reports whether the process could obtain root: pkexec
// present, or sudo present with cached credentials (and optimistically
// when sudo would prompt).
func CanElevate() bool {
	if PkexecAvailable() {
		return true
	}
	if !SudoAvailable() {
		return false
	}
	if err := exec.Command("sudo", "-n", "true").Run(); err == nil {
		return true
	}
	// sudo exists but needs a password prompt.
	return true
}

// Status gathers the full privilege picture.
func Status() SudoStatus {
	s := SudoStatus{
		IsAdmin:         IsAdmin(),
		CurrentUser:     CurrentUser(),
		CurrentGroup:    CurrentGroup(),
		SudoAvailable:   SudoAvailable(),
		PkexecAvailable: PkexecAvailable(),
	}
	if s.SudoAvailable || s.PkexecAvailable {
		s.CanElevate = CanElevate()
	}
	return s
}

// RunAsAdmin relaunches the current executable as root via pkexec.
// Returns nil without relaunching when already root.
func RunAsAdmin() error {
	if IsAdmin() {
		return nil
	}
	if !PkexecAvailable() {
		return common.WrapError(common.ErrPermissionDenied, "pkexec is not available")
	}

	exe, err := os.Executable()
	if err != nil {
		return common.WrapError(err, "failed to locate executable")
	}

	args := append([]string{exe}, os.Args[1:]...)
	if err := exec.Command("pkexec", args...).Start(); err != nil {
		return common.WrapError(err, "elevation request rejected")
	}

	common.LogInfo("Relaunched elevated instance, exiting")
	os.Exit(0)
	return nil
}

// RunCommandAsAdmin runs a command with root privileges, preferring
// pkexec and falling back to sudo. Already-root processes run the
// command directly. The combined output is returned either way.
func RunCommandAsAdmin(name string, args ...string) ([]byte, error) {
	if IsAdmin() {
		return exec.Command(name, args...).CombinedOutput()
	}

	if PkexecAvailable() {
		full := append([]string{name}, args...)
		common.LogInfo("Elevating via pkexec: %v", full)
		out, err := exec.Command("pkexec", full...).CombinedOutput()
		if err == nil {
			return out, nil
		}
		common.LogWarn("pkexec failed, falling back to sudo: %v", err)
	}

	if SudoAvailable() {
		full := append([]string{name}, args...)
		common.LogInfo("Elevating via sudo: %v", full)
		return exec.Command("sudo", full...).CombinedOutput()
	}

	return nil, common.WrapError(common.ErrPermissionDenied,
		"neither pkexec nor sudo is available")
}
