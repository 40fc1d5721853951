package tabs

import (
	"fmt"

	"github.com/yllada/tabdeck/common"
	"github.com/yllada/tabdeck/plugin"
)

type welcomePlugin struct{}

func (w *welcomePlugin) Core() bool { return true }

func (w *welcomePlugin) Info() plugin.Info {
	return plugin.Info{
		Name:        "Welcome",
		Description: "Getting started with " + common.AppName,
		Version:     common.AppVersion,
		Platforms:   allPlatforms(),
		Authors:     []string{common.AppName + " team"},
	}
}

func (w *welcomePlugin) CreateWidget(host plugin.Host) (plugin.Widget, error) {
	body := fmt.Sprintf(
		"Welcome to %s.\n\n"+
			"Each tab on the left is a plugin. Tabs load the first time you "+
			"open them, so startup stays fast regardless of how many plugins "+
			"are installed.\n\n"+
			"Drop YAML manifests into your plugins directory to add your own "+
			"tabs, and use the plugin dialog to enable or disable any of them.",
		common.AppName)
	return plugin.TextContent{Title: "Welcome", Body: body}, nil
}
