// Package fetch wraps source reads in a per-call deadline budget.
//
// A source that overruns its budget settles as empty with a TimedOut flag
// rather than failing the whole load; a genuine fetch error propagates; a
// cancelled context propagates as ctx.Err() so callers can discard the
// call silently. Timeout and cancellation are deliberately distinct:
// timeout is reported to the user as possibly-incomplete data,
// cancellation means nobody is looking anymore.
package fetch

import (
	"context"
	"log/slog"
	"time"
)

const (
	// PrimaryBudget bounds the first-party obituary read. The primary
	// collection is small and local, so it gets the tighter budget.
	PrimaryBudget = 10 * time.Second

	// ExternalBudget bounds the external group (feed + scraped). Larger
	// because the group aggregates two sub-queries run in parallel.
	ExternalBudget = 15 * time.Second
)

// Result is how a guarded call settles. TimedOut implies Items is empty.
type Result[T any] struct {
	Items    []T
	TimedOut bool
}

// Func is a source read subject to a budget.
type Func[T any] func(ctx context.Context) ([]T, error)

type outcome[T any] struct {
	items []T
	err   error
}

// Guarded runs fn and races it against budget.
//
// fn wins:        its items (or its error) are returned.
// timer wins:     an empty Result with TimedOut set, and a nil error.
// ctx cancelled:  a zero Result and ctx.Err(); the caller mutates nothing.
//
// The budget is independent per call, not cumulative across sources. A
// timed-out fn keeps running until its own context fires; its late result
// goes nowhere.
func Guarded[T any](ctx context.Context, budget time.Duration, fn Func[T]) (Result[T], error) {
	fnCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan outcome[T], 1)
	go func() {
		items, err := fn(fnCtx)
		done <- outcome[T]{items: items, err: err}
	}()

	timer := time.NewTimer(budget)
	defer timer.Stop()

	select {
	case out := <-done:
		if out.err != nil {
			if ctx.Err() != nil {
				// Unwind from teardown, not a real failure.
				return Result[T]{}, ctx.Err()
			}
			return Result[T]{}, out.err
		}
		return Result[T]{Items: out.items}, nil
	case <-timer.C:
		slog.Warn("source fetch exceeded budget, settling empty", "budget", budget)
		return Result[T]{TimedOut: true}, nil
	case <-ctx.Done():
		return Result[T]{}, ctx.Err()
	}
}
