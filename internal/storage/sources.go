// Package storage defines the read/write boundaries to the backing
// stores. The three obituary sources are deliberately heterogeneous and
// independently shaped; each gets its own narrow interface, consumed by
// the session layer.
package storage

import (
	"context"

	"github.com/aviwein/memorial-search/internal/domain"
)

// Row-count limits per source read. These bound the in-memory
// collections the filter pipeline re-scans on every invocation.
const (
	PrimaryLimit = 500
	FeedLimit    = 1000
	ScrapedLimit = 1000
)

// PrimarySource reads published, publicly visible first-party
// obituaries, newest created first.
type PrimarySource interface {
	Primary(ctx context.Context) ([]domain.PrimaryRecord, error)
}

// FeedSource reads RSS-derived obituaries, newest published first,
// missing publish dates last.
type FeedSource interface {
	Feed(ctx context.Context) ([]domain.FeedRecord, error)
}

// ScrapedSource reads scraped obituaries, newest published first,
// missing publish dates last.
type ScrapedSource interface {
	Scraped(ctx context.Context) ([]domain.ScrapedRecord, error)
}

// FeedStorer persists ingested feed records. Upsert is keyed on the
// record's source URL and reports how many rows were inserted or
// updated.
type FeedStorer interface {
	UpsertFeed(ctx context.Context, records []domain.FeedRecord) (int, error)
}
