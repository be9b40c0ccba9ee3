// Package session owns the in-memory obituary collections for one page
// lifecycle: it fans out to the three sources in parallel on load, lets
// each settle independently, and hands out snapshots for the filter
// pipeline to derive views from.
//
// A session's collections are replaced wholesale by loads and refreshes,
// never mutated in place. Close cancels the session context; anything
// still in flight settles into the void without touching state.
package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/aviwein/memorial-search/internal/apperr"
	"github.com/aviwein/memorial-search/internal/domain"
	"github.com/aviwein/memorial-search/internal/fetch"
	"github.com/aviwein/memorial-search/internal/storage"
	"github.com/aviwein/memorial-search/internal/unify"
	"golang.org/x/sync/errgroup"
)

// SourceExternal labels the feed+scraped group in statuses. The two
// external sub-sources share one fetch budget and settle together.
const SourceExternal domain.Source = "external"

type Session struct {
	primarySource storage.PrimarySource
	feedSource    storage.FeedSource
	scrapedSource storage.ScrapedSource
	tagger        *unify.Tagger

	primaryBudget  time.Duration
	externalBudget time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	mu             sync.Mutex
	primary        []domain.UnifiedObituary
	external       []domain.UnifiedObituary
	primaryStatus  domain.SourceStatus
	externalStatus domain.SourceStatus
}

// Snapshot is a stable copy of session state for one derivation pass.
type Snapshot struct {
	Primary  []domain.UnifiedObituary
	External []domain.UnifiedObituary

	PrimaryStatus  domain.SourceStatus
	ExternalStatus domain.SourceStatus
}

// All returns primary records followed by external ones, the merge order
// the unified page renders in.
func (s Snapshot) All() []domain.UnifiedObituary {
	all := make([]domain.UnifiedObituary, 0, len(s.Primary)+len(s.External))
	all = append(all, s.Primary...)
	all = append(all, s.External...)
	return all
}

type Option func(*Session)

// WithBudgets overrides the per-source fetch budgets.
func WithBudgets(primary, external time.Duration) Option {
	return func(s *Session) {
		s.primaryBudget = primary
		s.externalBudget = external
	}
}

func New(primary storage.PrimarySource, feed storage.FeedSource, scraped storage.ScrapedSource, tagger *unify.Tagger, opts ...Option) *Session {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Session{
		primarySource:  primary,
		feedSource:     feed,
		scrapedSource:  scraped,
		tagger:         tagger,
		primaryBudget:  fetch.PrimaryBudget,
		externalBudget: fetch.ExternalBudget,
		ctx:            ctx,
		cancel:         cancel,
		primaryStatus:  domain.SourceStatus{Source: domain.SourcePrimary},
		externalStatus: domain.SourceStatus{Source: SourceExternal},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load fires the primary fetch and the external group together. The two
// settle independently: the page renders correctly with either, both, or
// neither populated. Per-source failures and timeouts land in statuses,
// not in the returned error; only cancellation comes back as an error,
// and the caller drops it silently.
func (s *Session) Load(ctx context.Context) error {
	if s.ctx.Err() != nil {
		return apperr.ErrSessionClosed
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(s.ctx, cancel)
	defer stop()

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		s.loadPrimary(ctx)
	}()
	go func() {
		defer wg.Done()
		s.loadExternal(ctx)
	}()

	wg.Wait()
	return ctx.Err()
}

// Refresh re-fetches the external collections after a sync, keeping the
// primary collection and whatever the viewer has on screen intact.
func (s *Session) Refresh(ctx context.Context) error {
	if s.ctx.Err() != nil {
		return apperr.ErrSessionClosed
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(s.ctx, cancel)
	defer stop()

	s.loadExternal(ctx)
	return ctx.Err()
}

func (s *Session) loadPrimary(ctx context.Context) {
	res, err := fetch.Guarded(ctx, s.primaryBudget, func(ctx context.Context) ([]domain.PrimaryRecord, error) {
		return s.primarySource.Primary(ctx)
	})

	status := domain.SourceStatus{Source: domain.SourcePrimary, TimedOut: res.TimedOut}
	if err != nil {
		if isCancellation(err) {
			return
		}
		slog.Error("primary source failed", "error", err)
		status.Err = apperr.NewSource(string(domain.SourcePrimary), err).Error()
	}

	unified := unify.PrimaryAll(res.Items)
	if s.tagger != nil {
		s.tagger.Tag(unified)
	}
	status.Count = len(unified)

	s.store(func() {
		s.primary = unified
		s.primaryStatus = status
	})
}

func (s *Session) loadExternal(ctx context.Context) {
	res, err := fetch.Guarded(ctx, s.externalBudget, func(ctx context.Context) ([]domain.UnifiedObituary, error) {
		return s.fetchExternalPair(ctx)
	})

	status := domain.SourceStatus{Source: SourceExternal, TimedOut: res.TimedOut}
	if err != nil {
		if isCancellation(err) {
			return
		}
		slog.Error("external sources failed", "error", err)
		status.Err = apperr.NewSource(string(SourceExternal), err).Error()
	}

	if s.tagger != nil {
		s.tagger.Tag(res.Items)
	}
	status.Count = len(res.Items)

	s.store(func() {
		s.external = res.Items
		s.externalStatus = status
	})
}

// fetchExternalPair runs the feed and scraped sub-queries in parallel;
// both must complete for the group to resolve, under the one shared
// budget the caller holds.
func (s *Session) fetchExternalPair(ctx context.Context) ([]domain.UnifiedObituary, error) {
	g, ctx := errgroup.WithContext(ctx)

	var feed []domain.FeedRecord
	var scraped []domain.ScrapedRecord

	g.Go(func() error {
		var err error
		feed, err = s.feedSource.Feed(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		scraped, err = s.scrapedSource.Scraped(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	unified := unify.FeedAll(feed)
	unified = append(unified, unify.ScrapedAll(scraped)...)
	return unified, nil
}

// store applies a state mutation unless the session is already closed;
// a late completion after Close changes nothing.
func (s *Session) store(mutate func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ctx.Err() != nil {
		return
	}
	mutate()
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Primary:        make([]domain.UnifiedObituary, len(s.primary)),
		External:       make([]domain.UnifiedObituary, len(s.external)),
		PrimaryStatus:  s.primaryStatus,
		ExternalStatus: s.externalStatus,
	}
	copy(snap.Primary, s.primary)
	copy(snap.External, s.external)
	return snap
}

// Close cancels the session. Idempotent; all in-flight work unwinds
// silently.
func (s *Session) Close() {
	s.cancel()
}

func isCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
