package unify

import (
	"testing"
	"time"

	"github.com/aviwein/memorial-search/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrimary_MapsAllFields(t *testing.T) {
	id := uuid.New()
	dod := time.Date(2015, 3, 2, 0, 0, 0, 0, time.UTC)
	dob := time.Date(1930, 6, 14, 0, 0, 0, 0, time.UTC)

	record := domain.PrimaryRecord{
		ID:          id,
		Name:        "Miriam Katz",
		HebrewName:  "מרים",
		Biography:   "Beloved teacher in Skokie.",
		DateOfBirth: &dob,
		DateOfDeath: &dod,
		City:        "Skokie",
		State:       "il",
		CreatedAt:   time.Date(2015, 3, 5, 0, 0, 0, 0, time.UTC),
	}

	o := Primary(record)

	assert.Equal(t, id.String(), o.ID)
	assert.Equal(t, "Miriam Katz", o.DisplayName)
	assert.Equal(t, "Skokie, IL", Location(o.City, o.State))
	assert.Equal(t, "IL", o.State)
	assert.Equal(t, domain.SourcePrimary, o.Source)
	assert.Equal(t, "/obituaries/"+id.String(), o.SourceURL)
	require.NotNil(t, o.DateOfDeath)
	assert.Equal(t, dod, *o.DateOfDeath)
}

// The mapping is a pure function: same input, same output, every time.
func TestNormalization_Idempotent(t *testing.T) {
	published := time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)
	record := domain.FeedRecord{
		ID:          "feed-17",
		Title:       "Rabbi David Stern, 92",
		Snippet:     "Led the congregation for four decades.",
		SourceName:  "Jewish Week",
		SourceURL:   "https://example.org/obits/17",
		PublishedAt: &published,
		CreatedAt:   published,
	}

	first := Feed(record)
	second := Feed(record)

	assert.Equal(t, first, second)
}

func TestFeed_OptionalFieldsStayEmpty(t *testing.T) {
	o := Feed(domain.FeedRecord{ID: "x", Title: "Name Only", SourceName: "Feed"})

	assert.Empty(t, o.Snippet)
	assert.Empty(t, o.Location)
	assert.Nil(t, o.PublishedAt)
	assert.Nil(t, o.DateOfDeath)
}

func TestLocation(t *testing.T) {
	assert.Equal(t, "Brooklyn, NY", Location("Brooklyn", "NY"))
	assert.Equal(t, "Brooklyn", Location("Brooklyn", ""))
	assert.Equal(t, "NY", Location("", "NY"))
	assert.Equal(t, "", Location("", ""))
	assert.Equal(t, "Brooklyn, NY", Location(" Brooklyn ", " NY "))
}

func TestSortDate_Precedence(t *testing.T) {
	published := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	created := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	withPublished := domain.UnifiedObituary{PublishedAt: &published, CreatedAt: created}
	d, ok := withPublished.SortDate()
	require.True(t, ok)
	assert.Equal(t, published, d)

	createdOnly := domain.UnifiedObituary{CreatedAt: created}
	d, ok = createdOnly.SortDate()
	require.True(t, ok)
	assert.Equal(t, created, d)

	_, ok = (&domain.UnifiedObituary{}).SortDate()
	assert.False(t, ok)
}

func TestScrapedAll_SkipsNameless(t *testing.T) {
	records := []domain.ScrapedRecord{
		{ID: "1", Name: "Aaron Levi", SourceName: "Legacy"},
		{ID: "2", SourceName: "Legacy"},
		{ID: "3", Name: "Sarah Gold", SourceName: "Legacy"},
	}

	out := ScrapedAll(records)

	require.Len(t, out, 2)
	assert.Equal(t, "Aaron Levi", out[0].DisplayName)
	assert.Equal(t, "Sarah Gold", out[1].DisplayName)
}

func TestTagger_MarksNotables(t *testing.T) {
	tagger := NewTaggerFromNames([]string{"Rabbi  David Stern", ""})

	obits := []domain.UnifiedObituary{
		{DisplayName: "rabbi david stern"},
		{DisplayName: "Miriam Katz"},
	}
	tagger.Tag(obits)

	assert.True(t, obits[0].Notable)
	assert.False(t, obits[1].Notable)
}
