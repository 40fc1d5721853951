package tabs

import (
	"os/exec"
	"strings"

	"github.com/yllada/tabdeck/common"
	"github.com/yllada/tabdeck/plugin"
)

// servicesPlugin lists system services. It requires administrator
// privileges, which on Windows blocks the tab until the app restarts
// elevated.
type servicesPlugin struct{}

func (s *servicesPlugin) Core() bool { return true }

func (s *servicesPlugin) Info() plugin.Info {
	return plugin.Info{
		Name:          "Services",
		Description:   "Running system services",
		Version:       common.AppVersion,
		Platforms:     allPlatforms(),
		RequiresAdmin: true,
		Authors:       []string{common.AppName + " team"},
	}
}

func (s *servicesPlugin) CreateWidget(host plugin.Host) (plugin.Widget, error) {
	rows := listServices()
	if len(rows) == 0 {
		return plugin.TextContent{
			Title: "Services",
			Body:  "Could not enumerate system services on this machine.",
		}, nil
	}
	return plugin.ListContent{Title: "Services", Rows: rows}, nil
}

// listServices asks the platform service manager for running units.
// Windows uses `sc query`; everything else tries systemctl.
func listServices() []plugin.Row {
	if plugin.CurrentPlatform() == common.PlatformWindows {
		out, err := exec.Command("sc", "query", "state=", "active").Output()
		if err != nil {
			return nil
		}
		return parseScQuery(string(out))
	}

	out, err := exec.Command("systemctl", "list-units", "--type=service",
		"--state=running", "--no-legend", "--plain").Output()
	if err != nil {
		return nil
	}
	return parseSystemctl(string(out))
}

func parseSystemctl(out string) []plugin.Row {
	var rows []plugin.Row
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 4 {
			continue
		}
		name := strings.TrimSuffix(fields[0], ".service")
		rows = append(rows, plugin.Row{Label: name, Value: fields[3]})
	}
	return rows
}

func parseScQuery(out string) []plugin.Row {
	var rows []plugin.Row
	var name string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "SERVICE_NAME:"):
			name = strings.TrimSpace(strings.TrimPrefix(line, "SERVICE_NAME:"))
		case strings.HasPrefix(line, "STATE") && name != "":
			state := "unknown"
			if i := strings.LastIndexByte(line, ' '); i >= 0 {
				state = strings.ToLower(line[i+1:])
			}
			rows = append(rows, plugin.Row{Label: name, Value: state})
			name = ""
		}
	}
	return rows
}
