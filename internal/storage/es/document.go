package es

import (
	"time"

	"github.com/aviwein/memorial-search/internal/domain"
)

// ObituaryDocument is the index shape for scraped obituaries.
type ObituaryDocument struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Summary     string     `json:"summary,omitempty"`
	City        string     `json:"city,omitempty"`
	State       string     `json:"state,omitempty"`
	SourceName  string     `json:"source_name"`
	SourceURL   string     `json:"source_url"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	IndexedAt   time.Time  `json:"indexed_at"`
}

func toDocument(rec domain.ScrapedRecord) ObituaryDocument {
	return ObituaryDocument{
		ID:          rec.ID,
		Name:        rec.Name,
		Summary:     rec.Summary,
		City:        rec.City,
		State:       rec.State,
		SourceName:  rec.SourceName,
		SourceURL:   rec.SourceURL,
		PublishedAt: rec.PublishedAt,
		CreatedAt:   rec.CreatedAt,
		IndexedAt:   time.Now().UTC(),
	}
}

func toRecord(doc ObituaryDocument) domain.ScrapedRecord {
	return domain.ScrapedRecord{
		ID:          doc.ID,
		Name:        doc.Name,
		Summary:     doc.Summary,
		City:        doc.City,
		State:       doc.State,
		SourceName:  doc.SourceName,
		SourceURL:   doc.SourceURL,
		PublishedAt: doc.PublishedAt,
		CreatedAt:   doc.CreatedAt,
	}
}
