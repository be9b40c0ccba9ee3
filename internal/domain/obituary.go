package domain

import "time"

// UnifiedObituary is the common projection all three source shapes normalize
// into. ID plus SourceURL is always enough to deduplicate and deep-link.
type UnifiedObituary struct {
	ID          string     `json:"id"`
	DisplayName string     `json:"displayName"`
	Snippet     string     `json:"snippet,omitempty"`
	Location    string     `json:"location,omitempty"`
	City        string     `json:"city,omitempty"`
	State       string     `json:"state,omitempty"`
	HebrewName  string     `json:"hebrewName,omitempty"`
	Source      Source     `json:"source"`
	SourceLabel string     `json:"sourceLabel"`
	SourceURL   string     `json:"sourceUrl,omitempty"`
	ImageURL    string     `json:"imageUrl,omitempty"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	DateOfDeath *time.Time `json:"dateOfDeath,omitempty"`
	DateOfBirth *time.Time `json:"dateOfBirth,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`

	School            string `json:"school,omitempty"`
	College           string `json:"college,omitempty"`
	MilitaryBranch    string `json:"militaryBranch,omitempty"`
	Synagogue         string `json:"synagogue,omitempty"`
	Occupation        string `json:"occupation,omitempty"`
	HolocaustSurvivor bool   `json:"holocaustSurvivor,omitempty"`

	// Notable is derived by the tagging step after normalization,
	// never read from a source field.
	Notable bool `json:"notable,omitempty"`
}

// SortDate resolves the date used for most-recent ordering:
// published_at when present, else created_at. Records with neither
// are unsortable and report ok=false.
func (o *UnifiedObituary) SortDate() (time.Time, bool) {
	if o.PublishedAt != nil {
		return *o.PublishedAt, true
	}
	if !o.CreatedAt.IsZero() {
		return o.CreatedAt, true
	}
	return time.Time{}, false
}
