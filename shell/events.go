// Package shell coordinates the tab lifecycle between the plugin system
// and the window that displays it. The controller runs on the UI thread;
// discovery runs on a single background worker that communicates with the
// controller only through an ordered event channel.
package shell

import "github.com/yllada/tabdeck/plugin"

// Event is a message from the discovery worker to the UI loop. Exactly
// one terminal event (Finished or Failed) ends each discovery run; any
// number of TabFound events may precede it.
type Event interface {
	discoveryEvent()
}

// TabFound announces one registered plugin. The plugin is already in the
// registry when this event is observed.
type TabFound struct {
	Name   string
	Plugin plugin.Plugin
}

// Finished is the terminal success event carrying the full results of
// the run.
type Finished struct {
	Results map[string]plugin.Plugin
	Summary plugin.Summary
}

// Failed is the terminal failure event. The application keeps running;
// the window shows the failure instead of tabs.
type Failed struct {
	Err error
}

func (TabFound) discoveryEvent() {}
func (Finished) discoveryEvent() {}
func (Failed) discoveryEvent()   {}
