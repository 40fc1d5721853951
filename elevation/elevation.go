// Package elevation answers "do we have admin rights, and can we get
// them" for both supported platforms. The Linux path shells out to
// pkexec/sudo; the Windows path queries the process token and relaunches
// through ShellExecute when elevation is needed.
package elevation

// SudoStatus describes the process's privilege situation for diagnostics
// and the status CLI command.
type SudoStatus struct {
	IsAdmin         bool
	CurrentUser     string
	CurrentGroup    string
	SudoAvailable   bool
	PkexecAvailable bool
	CanElevate      bool
}

// NeedsAdminForPlugin decides whether loading a plugin tab must be
// blocked pending elevation. Only Windows blocks; on Linux individual
// plugin operations elevate on demand via pkexec.
func NeedsAdminForPlugin(isWindows, requiresAdmin, isAdmin bool) bool {
	return isWindows && requiresAdmin && !isAdmin
}
