package domain

import (
	"time"

	"github.com/google/uuid"
)

// Source identifies which backing collection a record came from.
type Source string

const (
	SourcePrimary Source = "primary"
	SourceFeed    Source = "feed"
	SourceScraped Source = "scraped"
)

// PrimaryRecord is a user-authored obituary from the first-party collection.
type PrimaryRecord struct {
	ID                uuid.UUID  `json:"id"`
	Name              string     `json:"name"`
	HebrewName        string     `json:"hebrewName,omitempty"`
	Biography         string     `json:"biography,omitempty"`
	DateOfBirth       *time.Time `json:"dateOfBirth,omitempty"`
	DateOfDeath       *time.Time `json:"dateOfDeath,omitempty"`
	City              string     `json:"city,omitempty"`
	State             string     `json:"state,omitempty"`
	PhotoURL          string     `json:"photoUrl,omitempty"`
	School            string     `json:"school,omitempty"`
	College           string     `json:"college,omitempty"`
	MilitaryBranch    string     `json:"militaryBranch,omitempty"`
	Synagogue         string     `json:"synagogue,omitempty"`
	Occupation        string     `json:"occupation,omitempty"`
	HolocaustSurvivor bool       `json:"holocaustSurvivor"`
	IsPublished       bool       `json:"isPublished"`
	IsPublic          bool       `json:"isPublic"`
	CreatedAt         time.Time  `json:"createdAt"`
}

// FeedRecord is an obituary ingested from an external RSS feed.
type FeedRecord struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Snippet     string     `json:"snippet,omitempty"`
	SourceName  string     `json:"sourceName"`
	SourceURL   string     `json:"sourceUrl"`
	ImageURL    string     `json:"imageUrl,omitempty"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// ScrapedRecord is an obituary lifted from a scraped site.
type ScrapedRecord struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Summary     string     `json:"summary,omitempty"`
	City        string     `json:"city,omitempty"`
	State       string     `json:"state,omitempty"`
	SourceName  string     `json:"sourceName"`
	SourceURL   string     `json:"sourceUrl"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}
