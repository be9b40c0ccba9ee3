// Package ingest implements the two ingestion jobs the sync orchestrator
// triggers: parsing external RSS feeds into the feed table, and moving
// staged scraped obituaries into the search index.
package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aviwein/memorial-search/internal/domain"
	"github.com/aviwein/memorial-search/internal/storage"
	"github.com/google/uuid"
	"github.com/mmcdole/gofeed"
)

// FeedPipeline parses the configured obituary feeds and upserts their
// items. It implements syncer.Trigger.
type FeedPipeline struct {
	parser  *gofeed.Parser
	storer  storage.FeedStorer
	sources []FeedSource
}

func NewFeedPipeline(storer storage.FeedStorer, sources []FeedSource) *FeedPipeline {
	return &FeedPipeline{
		parser:  gofeed.NewParser(),
		storer:  storer,
		sources: sources,
	}
}

func (p *FeedPipeline) Name() string {
	return "parse-feed"
}

// Run parses every configured feed. A single bad feed is logged and
// skipped; the job only errors when no feed could be fetched at all.
func (p *FeedPipeline) Run(ctx context.Context) (int, error) {
	start := time.Now()

	var records []domain.FeedRecord
	var fetched int
	for _, src := range p.sources {
		feed, err := p.parser.ParseURLWithContext(src.URL, ctx)
		if err != nil {
			if ctx.Err() != nil {
				return 0, ctx.Err()
			}
			slog.Error("failed to parse feed", "source", src.Name, "url", src.URL, "error", err)
			continue
		}
		fetched++

		for _, item := range feed.Items {
			rec, ok := mapItem(src, item)
			if !ok {
				continue
			}
			records = append(records, rec)
		}
	}

	if fetched == 0 && len(p.sources) > 0 {
		return 0, fmt.Errorf("all %d feed sources failed", len(p.sources))
	}

	count, err := p.storer.UpsertFeed(ctx, records)
	if err != nil {
		return count, fmt.Errorf("failed to store feed obituaries: %w", err)
	}

	slog.Info("Feed pipeline run completed", "sources", fetched, "records", count, "duration", time.Since(start))
	return count, nil
}

func mapItem(src FeedSource, item *gofeed.Item) (domain.FeedRecord, bool) {
	if item == nil || item.Title == "" || item.Link == "" {
		return domain.FeedRecord{}, false
	}

	rec := domain.FeedRecord{
		ID:          uuid.New().String(),
		Title:       item.Title,
		Snippet:     item.Description,
		SourceName:  src.Name,
		SourceURL:   item.Link,
		PublishedAt: item.PublishedParsed,
	}
	if item.Image != nil {
		rec.ImageURL = item.Image.URL
	}
	return rec, true
}
