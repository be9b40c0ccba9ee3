// Package filter derives the visible result set from the full normalized
// collection and a FilterState. Predicates AND across facets; within a
// facet, alternatives OR (state code or location substring) to keep
// recall up on messy ingested location data.
//
// Community predicates need join lookups, so Apply as a whole is
// context-aware and asynchronous. There is no incremental diffing: every
// invocation re-runs the pipeline from scratch against the full
// collection, which the source fetch limits keep small.
package filter

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/aviwein/memorial-search/internal/apperr"
	"github.com/aviwein/memorial-search/internal/domain"
)

type Pipeline struct {
	communities CommunityResolver
}

func NewPipeline(communities CommunityResolver) *Pipeline {
	return &Pipeline{communities: communities}
}

// compiled holds the per-invocation parse of a FilterState.
type compiled struct {
	state domain.FilterState

	searchTerm string
	hebrewTerm string
	cityTerm   string
	stateCode  string
	synagogue  string
	occupation string

	dateFrom *time.Time
	dateTo   *time.Time
	ageMin   *int
	ageMax   *int

	// members is the intersection of all active community filters,
	// nil when none are active. citySet is kept separate: the city
	// facet passes on geographic match OR membership.
	members map[string]struct{}
	citySet map[string]struct{}
}

// Apply returns the subset of items matching every active predicate.
func (p *Pipeline) Apply(ctx context.Context, items []domain.UnifiedObituary, state domain.FilterState) ([]domain.UnifiedObituary, error) {
	if err := state.Validate(); err != nil {
		return nil, apperr.NewValidationWrap("invalid filter state", err)
	}
	if state.IsZero() {
		out := make([]domain.UnifiedObituary, len(items))
		copy(out, items)
		return out, nil
	}

	c, err := p.compile(ctx, state)
	if err != nil {
		return nil, err
	}

	out := make([]domain.UnifiedObituary, 0, len(items))
	for _, item := range items {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if c.matches(&item) {
			out = append(out, item)
		}
	}
	return out, nil
}

func (p *Pipeline) compile(ctx context.Context, state domain.FilterState) (*compiled, error) {
	c := &compiled{
		state:      state,
		searchTerm: fold(state.SearchTerm),
		hebrewTerm: strings.TrimSpace(state.HebrewName),
		cityTerm:   fold(state.City),
		stateCode:  strings.ToUpper(strings.TrimSpace(state.State)),
		synagogue:  fold(state.Synagogue),
		occupation: fold(state.Occupation),
	}

	c.dateFrom = parseDate(state.DateFrom)
	c.dateTo = parseDate(state.DateTo)
	c.ageMin = parseAge(state.AgeMin)
	c.ageMax = parseAge(state.AgeMax)

	for _, cf := range []struct {
		communityType string
		term          string
	}{
		{CommunitySchool, state.School},
		{CommunityCollege, state.College},
		{CommunityMilitary, state.Military},
	} {
		if strings.TrimSpace(cf.term) == "" {
			continue
		}
		set, err := memberSet(ctx, p.communities, cf.communityType, cf.term)
		if err != nil {
			return nil, err
		}
		c.members = intersect(c.members, set)
	}

	if c.cityTerm != "" {
		set, err := memberSet(ctx, p.communities, CommunityCity, state.City)
		if err != nil {
			return nil, err
		}
		c.citySet = set
	}

	return c, nil
}

func (c *compiled) matches(o *domain.UnifiedObituary) bool {
	return c.matchSearch(o) &&
		c.matchHebrewName(o) &&
		c.matchState(o) &&
		c.matchCity(o) &&
		c.matchDateRange(o) &&
		c.matchAgeRange(o) &&
		c.matchSynagogue(o) &&
		c.matchOccupation(o) &&
		c.matchFlags(o) &&
		c.matchCommunities(o)
}

// matchSearch: substring of display name, location, or snippet.
func (c *compiled) matchSearch(o *domain.UnifiedObituary) bool {
	if c.searchTerm == "" {
		return true
	}
	return strings.Contains(fold(o.DisplayName), c.searchTerm) ||
		strings.Contains(fold(o.Location), c.searchTerm) ||
		strings.Contains(fold(o.Snippet), c.searchTerm)
}

// matchHebrewName: dedicated field first, biography text as fallback.
func (c *compiled) matchHebrewName(o *domain.UnifiedObituary) bool {
	if c.hebrewTerm == "" {
		return true
	}
	if o.HebrewName != "" {
		return strings.Contains(o.HebrewName, c.hebrewTerm)
	}
	return strings.Contains(o.Snippet, c.hebrewTerm)
}

// matchState: exact normalized state code, or substring of the free-form
// location. Either alternative satisfies the facet.
func (c *compiled) matchState(o *domain.UnifiedObituary) bool {
	if c.stateCode == "" {
		return true
	}
	if o.State == c.stateCode {
		return true
	}
	return strings.Contains(fold(o.Location), fold(c.stateCode))
}

// matchCity: location substring, or membership in the city community.
func (c *compiled) matchCity(o *domain.UnifiedObituary) bool {
	if c.cityTerm == "" {
		return true
	}
	if strings.Contains(fold(o.Location), c.cityTerm) {
		return true
	}
	if c.citySet != nil {
		_, ok := c.citySet[o.ID]
		return ok
	}
	return false
}

// matchDateRange: an active bound excludes records with no date of
// death; otherwise bounds are inclusive and each is optional.
func (c *compiled) matchDateRange(o *domain.UnifiedObituary) bool {
	if c.dateFrom == nil && c.dateTo == nil {
		return true
	}
	if o.DateOfDeath == nil {
		return false
	}
	if c.dateFrom != nil && o.DateOfDeath.Before(*c.dateFrom) {
		return false
	}
	if c.dateTo != nil && o.DateOfDeath.After(*c.dateTo) {
		return false
	}
	return true
}

// matchAgeRange: age is the year difference deathYear-birthYear, not a
// calendar-accurate age. Records missing either date are excluded while
// an age bound is active.
func (c *compiled) matchAgeRange(o *domain.UnifiedObituary) bool {
	if c.ageMin == nil && c.ageMax == nil {
		return true
	}
	if o.DateOfBirth == nil || o.DateOfDeath == nil {
		return false
	}
	age := o.DateOfDeath.Year() - o.DateOfBirth.Year()
	if c.ageMin != nil && age < *c.ageMin {
		return false
	}
	if c.ageMax != nil && age > *c.ageMax {
		return false
	}
	return true
}

func (c *compiled) matchSynagogue(o *domain.UnifiedObituary) bool {
	if c.synagogue == "" {
		return true
	}
	return strings.Contains(fold(o.Synagogue), c.synagogue)
}

func (c *compiled) matchOccupation(o *domain.UnifiedObituary) bool {
	if c.occupation == "" {
		return true
	}
	return strings.Contains(fold(o.Occupation), c.occupation)
}

func (c *compiled) matchFlags(o *domain.UnifiedObituary) bool {
	if c.state.HolocaustSurvivor && !o.HolocaustSurvivor {
		return false
	}
	if c.state.MilitaryService && o.MilitaryBranch == "" {
		return false
	}
	return true
}

func (c *compiled) matchCommunities(o *domain.UnifiedObituary) bool {
	if c.members == nil {
		return true
	}
	_, ok := c.members[o.ID]
	return ok
}

func fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func parseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	t, err := time.Parse(domain.FilterDateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}

func parseAge(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return nil
	}
	return &n
}
