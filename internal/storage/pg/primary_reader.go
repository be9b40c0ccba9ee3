package pg

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aviwein/memorial-search/internal/domain"
	"github.com/aviwein/memorial-search/internal/storage"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PrimaryReader reads first-party obituaries off the public pool.
type PrimaryReader struct {
	db *pgxpool.Pool
}

func NewPrimaryReader(pool *ConnectionPool) *PrimaryReader {
	return &PrimaryReader{db: pool.conn}
}

func (r *PrimaryReader) Primary(ctx context.Context) ([]domain.PrimaryRecord, error) {
	slog.Info("Fetching primary obituaries", "limit", storage.PrimaryLimit)

	const query = `
		SELECT
			id, name, hebrew_name, biography, date_of_birth, date_of_death,
			city, state, photo_url, school, college, military_branch,
			synagogue, occupation, holocaust_survivor, created_at
		FROM obituaries
		WHERE is_published = TRUE AND is_public = TRUE
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, storage.PrimaryLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to query primary obituaries: %w", err)
	}
	defer rows.Close()

	var records []domain.PrimaryRecord
	for rows.Next() {
		var rec domain.PrimaryRecord
		var hebrewName, biography, city, state, photo, school, college, military, synagogue, occupation *string

		if err := rows.Scan(
			&rec.ID,
			&rec.Name,
			&hebrewName,
			&biography,
			&rec.DateOfBirth,
			&rec.DateOfDeath,
			&city,
			&state,
			&photo,
			&school,
			&college,
			&military,
			&synagogue,
			&occupation,
			&rec.HolocaustSurvivor,
			&rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan primary obituary: %w", err)
		}

		rec.HebrewName = deref(hebrewName)
		rec.Biography = deref(biography)
		rec.City = deref(city)
		rec.State = deref(state)
		rec.PhotoURL = deref(photo)
		rec.School = deref(school)
		rec.College = deref(college)
		rec.MilitaryBranch = deref(military)
		rec.Synagogue = deref(synagogue)
		rec.Occupation = deref(occupation)
		rec.IsPublished = true
		rec.IsPublic = true

		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating primary rows: %w", err)
	}

	return records, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
