// Package unify maps the three source record shapes onto the common
// UnifiedObituary projection. Mapping is pure: no I/O, no defaults
// invented for absent optional fields.
package unify

import (
	"strings"

	"github.com/aviwein/memorial-search/internal/domain"
)

const primaryLabel = "Community Obituaries"

// Primary normalizes a first-party obituary.
func Primary(r domain.PrimaryRecord) domain.UnifiedObituary {
	return domain.UnifiedObituary{
		ID:                r.ID.String(),
		DisplayName:       r.Name,
		Snippet:           r.Biography,
		Location:          Location(r.City, r.State),
		City:              r.City,
		State:             strings.ToUpper(strings.TrimSpace(r.State)),
		HebrewName:        r.HebrewName,
		Source:            domain.SourcePrimary,
		SourceLabel:       primaryLabel,
		SourceURL:         "/obituaries/" + r.ID.String(),
		ImageURL:          r.PhotoURL,
		DateOfDeath:       r.DateOfDeath,
		DateOfBirth:       r.DateOfBirth,
		CreatedAt:         r.CreatedAt,
		School:            r.School,
		College:           r.College,
		MilitaryBranch:    r.MilitaryBranch,
		Synagogue:         r.Synagogue,
		Occupation:        r.Occupation,
		HolocaustSurvivor: r.HolocaustSurvivor,
	}
}

// Feed normalizes an RSS-derived obituary. Feed items carry a title
// rather than a name; the display name takes whichever is populated.
func Feed(r domain.FeedRecord) domain.UnifiedObituary {
	return domain.UnifiedObituary{
		ID:          r.ID,
		DisplayName: r.Title,
		Snippet:     r.Snippet,
		Source:      domain.SourceFeed,
		SourceLabel: r.SourceName,
		SourceURL:   r.SourceURL,
		ImageURL:    r.ImageURL,
		PublishedAt: r.PublishedAt,
		CreatedAt:   r.CreatedAt,
	}
}

// Scraped normalizes a scraped obituary.
func Scraped(r domain.ScrapedRecord) domain.UnifiedObituary {
	return domain.UnifiedObituary{
		ID:          r.ID,
		DisplayName: r.Name,
		Snippet:     r.Summary,
		Location:    Location(r.City, r.State),
		City:        r.City,
		State:       strings.ToUpper(strings.TrimSpace(r.State)),
		Source:      domain.SourceScraped,
		SourceLabel: r.SourceName,
		SourceURL:   r.SourceURL,
		PublishedAt: r.PublishedAt,
		CreatedAt:   r.CreatedAt,
	}
}

// PrimaryAll maps a primary batch, skipping records with no display name.
func PrimaryAll(records []domain.PrimaryRecord) []domain.UnifiedObituary {
	out := make([]domain.UnifiedObituary, 0, len(records))
	for _, r := range records {
		if r.Name == "" {
			continue
		}
		out = append(out, Primary(r))
	}
	return out
}

// FeedAll maps a feed batch, skipping records with no title.
func FeedAll(records []domain.FeedRecord) []domain.UnifiedObituary {
	out := make([]domain.UnifiedObituary, 0, len(records))
	for _, r := range records {
		if r.Title == "" {
			continue
		}
		out = append(out, Feed(r))
	}
	return out
}

// ScrapedAll maps a scraped batch, skipping records with no name.
func ScrapedAll(records []domain.ScrapedRecord) []domain.UnifiedObituary {
	out := make([]domain.UnifiedObituary, 0, len(records))
	for _, r := range records {
		if r.Name == "" {
			continue
		}
		out = append(out, Scraped(r))
	}
	return out
}

// Location joins city and state as "City, State", or returns whichever
// half is present. Missing both yields the empty string, never a
// placeholder merged with real data.
func Location(city, state string) string {
	city = strings.TrimSpace(city)
	state = strings.TrimSpace(state)
	switch {
	case city != "" && state != "":
		return city + ", " + state
	case city != "":
		return city
	default:
		return state
	}
}
