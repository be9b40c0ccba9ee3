package es

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/aviwein/memorial-search/internal/domain"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esutil"
)

// Indexer writes scraped obituaries into the search index.
type Indexer struct {
	client    *elasticsearch.TypedClient
	indexName string
}

func NewIndexer(config ClientConfig) (*Indexer, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	return &Indexer{
		client:    client,
		indexName: config.IndexName,
	}, nil
}

// IndexBulk indexes the batch and returns how many documents made it in.
func (e *Indexer) IndexBulk(ctx context.Context, records []domain.ScrapedRecord) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	bi, err := esutil.NewBulkIndexer(esutil.BulkIndexerConfig{
		Index:         e.indexName,
		Client:        e.client,
		NumWorkers:    4,
		FlushBytes:    5e+6,
		FlushInterval: 30 * time.Second,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create bulk indexer: %w", err)
	}

	var successful, failed atomic.Int64

	for _, rec := range records {
		doc := toDocument(rec)

		docBytes, err := json.Marshal(doc)
		if err != nil {
			slog.Error("failed to marshal document", "error", err, "id", doc.ID)
			failed.Add(1)
			continue
		}

		err = bi.Add(ctx, esutil.BulkIndexerItem{
			Action:     "index",
			DocumentID: doc.ID,
			Body:       bytes.NewReader(docBytes),
			OnSuccess: func(ctx context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem) {
				successful.Add(1)
			},
			OnFailure: func(ctx context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem, err error) {
				failed.Add(1)
				if err != nil {
					slog.Error("bulk index item failed", "error", err, "id", item.DocumentID)
				} else {
					slog.Error("bulk index item rejected", "type", res.Error.Type, "reason", res.Error.Reason, "id", item.DocumentID)
				}
			},
		})
		if err != nil {
			return int(successful.Load()), fmt.Errorf("failed to add document to bulk indexer: %w", err)
		}
	}

	if err := bi.Close(ctx); err != nil {
		return int(successful.Load()), fmt.Errorf("failed to flush bulk indexer: %w", err)
	}

	slog.Info("Bulk indexing completed", "index", e.indexName, "successful", successful.Load(), "failed", failed.Load())

	if failed.Load() > 0 {
		return int(successful.Load()), fmt.Errorf("bulk indexing finished with %d failures", failed.Load())
	}
	return int(successful.Load()), nil
}
