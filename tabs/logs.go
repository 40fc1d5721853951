package tabs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/yllada/tabdeck/common"
	"github.com/yllada/tabdeck/plugin"
)

// logTailLines is how much of the log the tab shows.
const logTailLines = 200

type logsPlugin struct{}

func (l *logsPlugin) Core() bool { return true }

func (l *logsPlugin) Info() plugin.Info {
	return plugin.Info{
		Name:        "Logs",
		Description: "Recent application log output",
		Version:     common.AppVersion,
		Platforms:   allPlatforms(),
		Authors:     []string{common.AppName + " team"},
	}
}

func (l *logsPlugin) CreateWidget(host plugin.Host) (plugin.Widget, error) {
	path := filepath.Join(common.GetLogDir(), common.LogFileName)
	body, err := tailFile(path, logTailLines)
	if err != nil {
		body = "No log output yet.\n\nFile logging may be disabled, or the application just started."
	}
	return plugin.TextContent{Title: "Logs", Body: body}, nil
}

// tailFile returns the last n lines of a file.
func tailFile(path string, n int) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n"), nil
}
