// Package syncer drives the ingestion triggers behind the manual sync
// action: both jobs always run, results combine, and every failure is
// converted into a notification before it can reach a caller.
package syncer

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// Trigger is one invokable ingestion job, reporting how many records it
// inserted or updated.
type Trigger interface {
	Name() string
	Run(ctx context.Context) (int, error)
}

// Notifier surfaces sync outcomes to the viewer.
type Notifier interface {
	Success(message string)
	Failure(message string)
}

// Refresher merges fresh external data back into the live view.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Result summarizes one sync pass.
type Result struct {
	Combined int            `json:"combined"`
	PerJob   map[string]int `json:"perJob"`
	Failed   bool           `json:"failed"`
}

type Orchestrator struct {
	triggers  []Trigger
	notifier  Notifier
	refresher Refresher
}

func New(notifier Notifier, refresher Refresher, triggers ...Trigger) *Orchestrator {
	return &Orchestrator{
		triggers:  triggers,
		notifier:  notifier,
		refresher: refresher,
	}
}

// Run executes every trigger. A failing job never stops the others, and
// no error escapes: failures become a notification, successes become a
// combined-count notification, and the external view is refreshed with
// whatever did land.
func (o *Orchestrator) Run(ctx context.Context) Result {
	res := Result{PerJob: make(map[string]int, len(o.triggers))}

	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, trig := range o.triggers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			count, err := trig.Run(ctx)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				slog.Error("sync job failed", "job", trig.Name(), "error", err)
				res.Failed = true
				return
			}
			res.PerJob[trig.Name()] = count
			res.Combined += count
		}()
	}
	wg.Wait()

	if res.Failed {
		o.notifier.Failure("Some sources failed to sync. Already loaded records are unaffected.")
	} else {
		o.notifier.Success(fmt.Sprintf("Synced %d obituaries.", res.Combined))
	}

	if o.refresher != nil {
		if err := o.refresher.Refresh(ctx); err != nil {
			// Teardown during refresh; the view is gone, stay silent.
			slog.Debug("refresh after sync did not complete", "error", err)
		}
	}

	return res
}
