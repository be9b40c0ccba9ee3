package pg

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aviwein/memorial-search/internal/domain"
	"github.com/aviwein/memorial-search/internal/storage"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// FeedReader reads RSS-derived obituaries off the public pool.
type FeedReader struct {
	db *pgxpool.Pool
}

func NewFeedReader(pool *ConnectionPool) *FeedReader {
	return &FeedReader{db: pool.conn}
}

func (r *FeedReader) Feed(ctx context.Context) ([]domain.FeedRecord, error) {
	slog.Info("Fetching feed obituaries", "limit", storage.FeedLimit)

	const query = `
		SELECT id, title, snippet, source_name, source_url, image_url, published_at, created_at
		FROM feed_obituaries
		ORDER BY published_at DESC NULLS LAST
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, storage.FeedLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to query feed obituaries: %w", err)
	}
	defer rows.Close()

	return scanFeedRows(rows)
}

func scanFeedRows(rows pgx.Rows) ([]domain.FeedRecord, error) {
	var records []domain.FeedRecord
	for rows.Next() {
		var rec domain.FeedRecord
		var snippet, image *string

		if err := rows.Scan(
			&rec.ID,
			&rec.Title,
			&snippet,
			&rec.SourceName,
			&rec.SourceURL,
			&image,
			&rec.PublishedAt,
			&rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan feed obituary: %w", err)
		}

		rec.Snippet = deref(snippet)
		rec.ImageURL = deref(image)
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating feed rows: %w", err)
	}
	return records, nil
}

// FeedStorer upserts ingested feed records on the session pool.
type FeedStorer struct {
	db *pgxpool.Pool
}

func NewFeedStorer(pool *ConnectionPool) *FeedStorer {
	return &FeedStorer{db: pool.conn}
}

// UpsertFeed writes records keyed on source_url and returns the number
// of rows inserted or updated.
func (s *FeedStorer) UpsertFeed(ctx context.Context, records []domain.FeedRecord) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	const stmt = `
		INSERT INTO feed_obituaries (id, title, snippet, source_name, source_url, image_url, published_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		ON CONFLICT (source_url) DO UPDATE SET
			title = EXCLUDED.title,
			snippet = EXCLUDED.snippet,
			image_url = EXCLUDED.image_url,
			published_at = EXCLUDED.published_at
	`

	var count int
	for _, rec := range records {
		tag, err := s.db.Exec(ctx, stmt,
			rec.ID, rec.Title, nullable(rec.Snippet), rec.SourceName,
			rec.SourceURL, nullable(rec.ImageURL), rec.PublishedAt,
		)
		if err != nil {
			return count, fmt.Errorf("failed to upsert feed obituary %s: %w", rec.SourceURL, err)
		}
		count += int(tag.RowsAffected())
	}

	slog.Info("Feed obituaries upserted", "count", count)
	return count, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
