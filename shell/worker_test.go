package shell

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/yllada/tabdeck/plugin"
)

func drainWorker(t *testing.T, w *Worker) []Event {
	t.Helper()
	var events []Event
	timeout := time.After(5 * time.Second)
	for {
		select {
		case ev, ok := <-w.Events():
			if !ok {
				return events
			}
			events = append(events, ev)
		case <-timeout:
			t.Fatalf("worker did not finish; events so far: %v", events)
		}
	}
}

func TestWorker_EmitsTabsThenFinished(t *testing.T) {
	core := []plugin.Plugin{
		newCountingPlugin("Welcome", false),
		newCountingPlugin("Status", false),
	}
	svc := plugin.NewService(plugin.NewRegistry(), core)

	w := NewWorker(svc)
	w.Start(context.Background())
	events := drainWorker(t, w)

	if len(events) != 3 {
		t.Fatalf("got %d events, want 3: %v", len(events), events)
	}

	names := map[string]bool{}
	for _, ev := range events[:2] {
		found, ok := ev.(TabFound)
		if !ok {
			t.Fatalf("event %T before terminal, want TabFound", ev)
		}
		if found.Plugin == nil {
			t.Error("TabFound carries no plugin")
		}
		names[found.Name] = true
	}
	if !names["Welcome"] || !names["Status"] {
		t.Errorf("TabFound names = %v", names)
	}

	finished, ok := events[2].(Finished)
	if !ok {
		t.Fatalf("terminal event is %T, want Finished", events[2])
	}
	if len(finished.Results) != 2 {
		t.Errorf("Results len = %d, want 2", len(finished.Results))
	}
	if finished.Summary.BatchID == "" {
		t.Error("Summary.BatchID is empty")
	}
}

func TestWorker_CancelledContextFails(t *testing.T) {
	core := []plugin.Plugin{newCountingPlugin("Welcome", false)}
	svc := plugin.NewService(plugin.NewRegistry(), core)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := NewWorker(svc)
	w.Start(ctx)
	events := drainWorker(t, w)

	if len(events) == 0 {
		t.Fatal("no events from cancelled worker")
	}
	failed, ok := events[len(events)-1].(Failed)
	if !ok {
		t.Fatalf("terminal event is %T, want Failed", events[len(events)-1])
	}
	if !errors.Is(failed.Err, context.Canceled) {
		t.Errorf("Failed.Err = %v, want context.Canceled", failed.Err)
	}
}

func TestWorker_FeedsController(t *testing.T) {
	core := []plugin.Plugin{newCountingPlugin("Welcome", false)}
	svc := plugin.NewService(plugin.NewRegistry(), core)

	view := newFakeView()
	c := NewController(view, svc, nil, Options{set: true})

	w := NewWorker(svc)
	w.Start(context.Background())
	for _, ev := range drainWorker(t, w) {
		c.HandleEvent(ev)
	}

	if len(view.added) != 1 || view.added[0] != "Welcome" {
		t.Errorf("added = %v, want [Welcome]", view.added)
	}
	if view.shown != 1 {
		t.Errorf("ShowTabs calls = %d, want 1", view.shown)
	}

	// The plugin is already registered by the time the tab appears.
	if _, ok := svc.Registry().Get("Welcome"); !ok {
		t.Error("plugin not registered before events were drained")
	}
}

// A reload must join the old worker's channel before clearing the
// registry; once the channel closes, every registration the worker got
// through is visible, so a clear afterwards leaves no orphans behind.
func TestWorker_DrainThenClearLeavesNoPlugins(t *testing.T) {
	reg := plugin.NewRegistry()
	core := []plugin.Plugin{newCountingPlugin("Welcome", false)}
	svc := plugin.NewService(reg, core)

	ctx, cancel := context.WithCancel(context.Background())
	w := NewWorker(svc)
	w.Start(ctx)
	cancel()

	events := drainWorker(t, w)

	for _, ev := range events {
		if found, ok := ev.(TabFound); ok {
			if _, registered := reg.Get(found.Name); !registered {
				t.Errorf("TabFound %q emitted before its registration landed", found.Name)
			}
		}
	}

	reg.Clear()
	if names := reg.Names(); len(names) != 0 {
		t.Errorf("registry holds %v after drain and clear", names)
	}
}
