package shell

import (
	"context"
	"fmt"

	"github.com/yllada/tabdeck/common"
	"github.com/yllada/tabdeck/plugin"
)

// Worker runs one discovery pass on a background goroutine and streams
// events to the UI loop. Registration happens on the worker before the
// corresponding TabFound is sent, so by the time the UI observes a tab
// the registry already knows it.
type Worker struct {
	service *plugin.Service
	events  chan Event
}

// NewWorker creates a worker around a plugin service. The event channel
// is buffered so the worker never blocks on a slow UI loop for typical
// plugin counts.
func NewWorker(service *plugin.Service) *Worker {
	return &Worker{
		service: service,
		events:  make(chan Event, 64),
	}
}

// Events returns the channel the UI loop drains. It is closed after the
// terminal event.
func (w *Worker) Events() <-chan Event {
	return w.events
}

// Start launches the discovery goroutine. The context is checked between
// candidates; cancelling it ends the run with a Failed event.
func (w *Worker) Start(ctx context.Context) {
	go w.run(ctx)
}

func (w *Worker) run(ctx context.Context) {
	defer close(w.events)
	defer func() {
		if r := recover(); r != nil {
			common.LogError("Discovery worker panicked: %v", r)
			w.events <- Failed{Err: fmt.Errorf("plugin discovery panicked: %v", r)}
		}
	}()

	summary, err := w.service.LoadContext(ctx, func(c plugin.Candidate) {
		w.events <- TabFound{Name: c.Name, Plugin: c.Plugin}
	})
	if err != nil {
		w.events <- Failed{Err: common.WrapError(err, "plugin discovery aborted")}
		return
	}

	w.events <- Finished{
		Results: w.service.Results(summary),
		Summary: summary,
	}
}
