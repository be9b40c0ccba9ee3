package pg

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aviwein/memorial-search/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ScrapedStaging drains the scraped-obituary staging table for sync v2.
// Scraper jobs land rows here; the sync pass moves them into the search
// index and marks them synced on the session pool.
type ScrapedStaging struct {
	db *pgxpool.Pool
}

func NewScrapedStaging(pool *ConnectionPool) *ScrapedStaging {
	return &ScrapedStaging{db: pool.conn}
}

func (s *ScrapedStaging) Pending(ctx context.Context, limit int) ([]domain.ScrapedRecord, error) {
	const query = `
		SELECT id, name, summary, city, state, source_name, source_url, published_at, created_at
		FROM scraped_obituaries_staging
		WHERE synced_at IS NULL
		ORDER BY created_at
		LIMIT $1
	`

	rows, err := s.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query scraped staging: %w", err)
	}
	defer rows.Close()

	var records []domain.ScrapedRecord
	for rows.Next() {
		var rec domain.ScrapedRecord
		var summary, city, state *string

		if err := rows.Scan(
			&rec.ID,
			&rec.Name,
			&summary,
			&city,
			&state,
			&rec.SourceName,
			&rec.SourceURL,
			&rec.PublishedAt,
			&rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan staged obituary: %w", err)
		}

		rec.Summary = deref(summary)
		rec.City = deref(city)
		rec.State = deref(state)
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating staging rows: %w", err)
	}
	return records, nil
}

func (s *ScrapedStaging) MarkSynced(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	const stmt = `UPDATE scraped_obituaries_staging SET synced_at = NOW() WHERE id = ANY($1)`

	tag, err := s.db.Exec(ctx, stmt, ids)
	if err != nil {
		return fmt.Errorf("failed to mark staged obituaries synced: %w", err)
	}

	slog.Info("Staged obituaries marked synced", "count", tag.RowsAffected())
	return nil
}
