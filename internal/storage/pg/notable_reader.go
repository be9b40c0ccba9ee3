package pg

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// NotableReader lists the curated notable-figure names used by the
// post-normalization tagging step.
type NotableReader struct {
	db *pgxpool.Pool
}

func NewNotableReader(pool *ConnectionPool) *NotableReader {
	return &NotableReader{db: pool.conn}
}

func (r *NotableReader) NotableNames(ctx context.Context) ([]string, error) {
	const query = `SELECT name FROM notable_figures WHERE is_active = TRUE`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query notable figures: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan notable name: %w", err)
		}
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notable rows: %w", err)
	}
	return names, nil
}
