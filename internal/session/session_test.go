package session

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aviwein/memorial-search/internal/apperr"
	"github.com/aviwein/memorial-search/internal/domain"
	"github.com/aviwein/memorial-search/internal/unify"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePrimary struct {
	records []domain.PrimaryRecord
	delay   time.Duration
	err     error
	calls   atomic.Int32
}

func (f *fakePrimary) Primary(ctx context.Context) ([]domain.PrimaryRecord, error) {
	f.calls.Add(1)
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return f.records, f.err
}

type fakeFeed struct {
	records []domain.FeedRecord
	delay   time.Duration
	err     error
}

func (f *fakeFeed) Feed(ctx context.Context) ([]domain.FeedRecord, error) {
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return f.records, f.err
}

type fakeScraped struct {
	records []domain.ScrapedRecord
	delay   time.Duration
	err     error
}

func (f *fakeScraped) Scraped(ctx context.Context) ([]domain.ScrapedRecord, error) {
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return f.records, f.err
}

func primaryRecords(n int) []domain.PrimaryRecord {
	out := make([]domain.PrimaryRecord, n)
	for i := range out {
		out[i] = domain.PrimaryRecord{ID: uuid.New(), Name: "Person", CreatedAt: time.Now()}
	}
	return out
}

func TestLoad_AllSourcesSettle(t *testing.T) {
	s := New(
		&fakePrimary{records: primaryRecords(2)},
		&fakeFeed{records: []domain.FeedRecord{{ID: "f1", Title: "Feed One", SourceName: "Feed"}}},
		&fakeScraped{records: []domain.ScrapedRecord{{ID: "s1", Name: "Scraped One", SourceName: "Legacy"}}},
		nil,
	)
	defer s.Close()

	require.NoError(t, s.Load(t.Context()))

	snap := s.Snapshot()
	assert.Len(t, snap.Primary, 2)
	assert.Len(t, snap.External, 2)
	assert.Len(t, snap.All(), 4)
	assert.False(t, snap.PrimaryStatus.TimedOut)
	assert.False(t, snap.ExternalStatus.TimedOut)
	assert.Equal(t, 2, snap.ExternalStatus.Count)
}

// Primary answers in time, the external group blows its budget: the page
// gets exactly the primary records and a reported external timeout.
func TestLoad_ExternalTimeoutDoesNotBlankPrimary(t *testing.T) {
	s := New(
		&fakePrimary{records: primaryRecords(3)},
		&fakeFeed{delay: time.Minute},
		&fakeScraped{records: []domain.ScrapedRecord{{ID: "s1", Name: "X", SourceName: "Legacy"}}},
		nil,
		WithBudgets(time.Second, 30*time.Millisecond),
	)
	defer s.Close()

	require.NoError(t, s.Load(t.Context()))

	snap := s.Snapshot()
	assert.Len(t, snap.Primary, 3)
	assert.Empty(t, snap.External, "a timed-out group settles empty, not partial")
	assert.True(t, snap.ExternalStatus.TimedOut)
	assert.True(t, snap.ExternalStatus.Degraded())
	assert.Empty(t, snap.ExternalStatus.Err, "timeout is not an error")
}

func TestLoad_PrimaryErrorIsRecordedNotThrown(t *testing.T) {
	s := New(
		&fakePrimary{err: errors.New("connection reset")},
		&fakeFeed{},
		&fakeScraped{},
		nil,
	)
	defer s.Close()

	require.NoError(t, s.Load(t.Context()))

	snap := s.Snapshot()
	assert.Empty(t, snap.Primary)
	assert.Contains(t, snap.PrimaryStatus.Err, "connection reset")
	assert.True(t, snap.PrimaryStatus.Degraded())
}

// One failing sub-query fails the whole external pair; the primary
// collection is untouched.
func TestLoad_ExternalPairFailsTogether(t *testing.T) {
	s := New(
		&fakePrimary{records: primaryRecords(1)},
		&fakeFeed{records: []domain.FeedRecord{{ID: "f1", Title: "Fine", SourceName: "Feed"}}},
		&fakeScraped{err: errors.New("index unavailable")},
		nil,
	)
	defer s.Close()

	require.NoError(t, s.Load(t.Context()))

	snap := s.Snapshot()
	assert.Len(t, snap.Primary, 1)
	assert.Empty(t, snap.External)
	assert.Contains(t, snap.ExternalStatus.Err, "index unavailable")
}

func TestClose_BeforeSettlementMutatesNothing(t *testing.T) {
	primary := &fakePrimary{records: primaryRecords(5), delay: time.Minute}
	s := New(primary, &fakeFeed{delay: time.Minute}, &fakeScraped{delay: time.Minute}, nil)

	done := make(chan error, 1)
	go func() { done <- s.Load(context.Background()) }()

	// Let the fetches start, then tear the page down.
	time.Sleep(20 * time.Millisecond)
	s.Close()

	err := <-done
	require.ErrorIs(t, err, context.Canceled)

	snap := s.Snapshot()
	assert.Empty(t, snap.Primary)
	assert.Empty(t, snap.External)
	assert.Empty(t, snap.PrimaryStatus.Err, "cancellation must leave no visible trace")
	assert.False(t, snap.PrimaryStatus.TimedOut)
}

func TestLoad_AfterCloseReturnsSessionClosed(t *testing.T) {
	s := New(&fakePrimary{}, &fakeFeed{}, &fakeScraped{}, nil)
	s.Close()

	require.ErrorIs(t, s.Load(t.Context()), apperr.ErrSessionClosed)
	require.ErrorIs(t, s.Refresh(t.Context()), apperr.ErrSessionClosed)
}

func TestRefresh_KeepsPrimaryReplacesExternal(t *testing.T) {
	feed := &fakeFeed{records: []domain.FeedRecord{{ID: "f1", Title: "Old Item", SourceName: "Feed"}}}
	s := New(&fakePrimary{records: primaryRecords(2)}, feed, &fakeScraped{}, nil)
	defer s.Close()

	require.NoError(t, s.Load(t.Context()))
	before := s.Snapshot()
	require.Len(t, before.External, 1)

	feed.records = []domain.FeedRecord{
		{ID: "f1", Title: "Old Item", SourceName: "Feed"},
		{ID: "f2", Title: "Fresh Item", SourceName: "Feed"},
	}
	require.NoError(t, s.Refresh(t.Context()))

	after := s.Snapshot()
	assert.Equal(t, before.Primary, after.Primary, "refresh must not discard primary records")
	assert.Len(t, after.External, 2)
}

func TestLoad_TaggerMarksNotables(t *testing.T) {
	records := primaryRecords(1)
	records[0].Name = "Rabbi David Stern"

	s := New(
		&fakePrimary{records: records},
		&fakeFeed{},
		&fakeScraped{},
		unify.NewTaggerFromNames([]string{"Rabbi David Stern"}),
	)
	defer s.Close()

	require.NoError(t, s.Load(t.Context()))

	snap := s.Snapshot()
	require.Len(t, snap.Primary, 1)
	assert.True(t, snap.Primary[0].Notable)
}
