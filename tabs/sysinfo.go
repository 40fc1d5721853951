package tabs

import (
	"runtime"

	"github.com/yllada/tabdeck/common"
	"github.com/yllada/tabdeck/plugin"
)

type systemInfoPlugin struct {
	deps Deps
}

func (s *systemInfoPlugin) Core() bool { return true }

func (s *systemInfoPlugin) Info() plugin.Info {
	return plugin.Info{
		Name:        "System Info",
		Description: "Platform, privilege, and storage diagnostics",
		Version:     common.AppVersion,
		Platforms:   allPlatforms(),
		Authors:     []string{common.AppName + " team"},
	}
}

func (s *systemInfoPlugin) CreateWidget(host plugin.Host) (plugin.Widget, error) {
	yesNo := func(b bool) string {
		if b {
			return "yes"
		}
		return "no"
	}

	rows := []plugin.Row{
		{Label: "Platform", Value: plugin.CurrentPlatform()},
		{Label: "Architecture", Value: runtime.GOARCH},
		{Label: "App version", Value: common.AppVersion},
		{Label: "User", Value: s.deps.CurrentUser},
		{Label: "Administrator", Value: yesNo(s.deps.IsAdmin)},
		{Label: "Can elevate", Value: yesNo(s.deps.CanElevate)},
		{Label: "Secret storage", Value: s.deps.KeyringBackend},
	}
	return plugin.ListContent{Title: "System Info", Rows: rows}, nil
}
