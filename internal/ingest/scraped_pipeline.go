package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aviwein/memorial-search/internal/domain"
)

const stagingBatchSize = 500

// StagingReader drains and acknowledges the scraped staging table.
type StagingReader interface {
	Pending(ctx context.Context, limit int) ([]domain.ScrapedRecord, error)
	MarkSynced(ctx context.Context, ids []string) error
}

// ScrapedIndexer writes scraped obituaries into the search index.
type ScrapedIndexer interface {
	IndexBulk(ctx context.Context, records []domain.ScrapedRecord) (int, error)
}

// ScrapedSyncV2 moves staged scraped obituaries into the search index in
// batches. It implements syncer.Trigger.
type ScrapedSyncV2 struct {
	staging StagingReader
	indexer ScrapedIndexer
}

func NewScrapedSyncV2(staging StagingReader, indexer ScrapedIndexer) *ScrapedSyncV2 {
	return &ScrapedSyncV2{staging: staging, indexer: indexer}
}

func (p *ScrapedSyncV2) Name() string {
	return "sync-scraped-v2"
}

// Run drains the staging table until empty. Rows are only acknowledged
// after the index accepted them, so a failed batch is retried on the
// next sync.
func (p *ScrapedSyncV2) Run(ctx context.Context) (int, error) {
	start := time.Now()

	var total int
	for {
		if ctx.Err() != nil {
			return total, ctx.Err()
		}

		pending, err := p.staging.Pending(ctx, stagingBatchSize)
		if err != nil {
			return total, fmt.Errorf("failed to read scraped staging: %w", err)
		}
		if len(pending) == 0 {
			break
		}

		indexed, err := p.indexer.IndexBulk(ctx, pending)
		total += indexed
		if err != nil {
			return total, fmt.Errorf("failed to index scraped batch: %w", err)
		}

		ids := make([]string, len(pending))
		for i, rec := range pending {
			ids[i] = rec.ID
		}
		if err := p.staging.MarkSynced(ctx, ids); err != nil {
			return total, fmt.Errorf("failed to acknowledge scraped batch: %w", err)
		}

		if len(pending) < stagingBatchSize {
			break
		}
	}

	slog.Info("Scraped sync v2 completed", "records", total, "duration", time.Since(start))
	return total, nil
}
