package fetch

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuarded_CompletesWithinBudget(t *testing.T) {
	res, err := Guarded(t.Context(), time.Second, func(ctx context.Context) ([]string, error) {
		return []string{"a", "b"}, nil
	})

	require.NoError(t, err)
	assert.False(t, res.TimedOut)
	assert.Equal(t, []string{"a", "b"}, res.Items)
}

func TestGuarded_TimeoutSettlesEmpty(t *testing.T) {
	res, err := Guarded(t.Context(), 20*time.Millisecond, func(ctx context.Context) ([]string, error) {
		select {
		case <-time.After(5 * time.Second):
		case <-ctx.Done():
		}
		return []string{"late"}, nil
	})

	require.NoError(t, err, "timeout must not surface as an error")
	assert.True(t, res.TimedOut)
	assert.Empty(t, res.Items)
}

// One slow source must not blank a fast one: each call budgets independently.
func TestGuarded_TimeoutIsolation(t *testing.T) {
	slow, err := Guarded(t.Context(), 20*time.Millisecond, func(ctx context.Context) ([]int, error) {
		<-ctx.Done()
		return []int{1, 2, 3}, ctx.Err()
	})
	require.NoError(t, err)

	fast, err := Guarded(t.Context(), time.Second, func(ctx context.Context) ([]int, error) {
		return []int{4, 5}, nil
	})
	require.NoError(t, err)

	assert.True(t, slow.TimedOut)
	assert.Empty(t, slow.Items)
	assert.False(t, fast.TimedOut)
	assert.Len(t, fast.Items, 2)
}

func TestGuarded_GenuineErrorPropagates(t *testing.T) {
	boom := errors.New("connection refused")

	res, err := Guarded(t.Context(), time.Second, func(ctx context.Context) ([]string, error) {
		return nil, boom
	})

	require.ErrorIs(t, err, boom)
	assert.False(t, res.TimedOut)
}

func TestGuarded_CancellationIsSilentAndDistinct(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())

	var mutations atomic.Int32
	started := make(chan struct{})

	go func() {
		<-started
		cancel()
	}()

	res, err := Guarded(ctx, time.Minute, func(ctx context.Context) ([]string, error) {
		close(started)
		<-ctx.Done()
		return nil, ctx.Err()
	})

	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, res.TimedOut, "cancellation must not be reported as timeout")

	// The caller contract: on ctx error, perform no state update.
	if err == nil {
		mutations.Add(1)
	}
	assert.Equal(t, int32(0), mutations.Load())
}

func TestGuarded_FnErrorDuringTeardownMapsToContextErr(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := Guarded(ctx, time.Minute, func(ctx context.Context) ([]string, error) {
		return nil, errors.New("query aborted")
	})

	require.ErrorIs(t, err, context.Canceled)
}
