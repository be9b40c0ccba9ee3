package es

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/aviwein/memorial-search/internal/domain"
	"github.com/aviwein/memorial-search/internal/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
)

// ScrapedReader reads the scraped-obituary index, newest published
// first, records without a publish date last.
type ScrapedReader struct {
	client    *elasticsearch.TypedClient
	indexName string
}

func NewScrapedReader(config ClientConfig) (*ScrapedReader, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	return &ScrapedReader{
		client:    client,
		indexName: config.IndexName,
	}, nil
}

func (r *ScrapedReader) Scraped(ctx context.Context) ([]domain.ScrapedRecord, error) {
	slog.Info("Fetching scraped obituaries", "index", r.indexName, "limit", storage.ScrapedLimit)

	sortOrderDesc := sortorder.Desc

	res, err := r.client.Search().
		Index(r.indexName).
		Query(&types.Query{MatchAll: &types.MatchAllQuery{}}).
		Size(storage.ScrapedLimit).
		Sort(&types.SortOptions{
			SortOptions: map[string]types.FieldSort{
				"published_at": {Order: &sortOrderDesc, Missing: "_last"},
			},
		}).
		Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to execute scraped search: %w", err)
	}

	records := make([]domain.ScrapedRecord, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		var doc ObituaryDocument
		if err := json.Unmarshal(hit.Source_, &doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal scraped document: %w", err)
		}
		records = append(records, toRecord(doc))
	}

	slog.Info("Scraped obituaries fetched", "count", len(records))
	return records, nil
}
