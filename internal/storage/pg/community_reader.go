package pg

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CommunityReader resolves community join lookups for the filter
// pipeline: (type, slug) -> community id -> member obituary ids.
type CommunityReader struct {
	db *pgxpool.Pool
}

func NewCommunityReader(pool *ConnectionPool) *CommunityReader {
	return &CommunityReader{db: pool.conn}
}

func (r *CommunityReader) CommunityID(ctx context.Context, communityType, slug string) (string, bool, error) {
	const query = `SELECT id FROM communities WHERE type = $1 AND slug = $2`

	var id string
	err := r.db.QueryRow(ctx, query, communityType, slug).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve community (%s, %s): %w", communityType, slug, err)
	}
	return id, true, nil
}

func (r *CommunityReader) MemberIDs(ctx context.Context, communityID string) ([]string, error) {
	const query = `SELECT obituary_id FROM obituary_communities WHERE community_id = $1`

	rows, err := r.db.Query(ctx, query, communityID)
	if err != nil {
		return nil, fmt.Errorf("failed to query community members: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan member id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating member rows: %w", err)
	}
	return ids, nil
}
