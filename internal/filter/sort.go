package filter

import (
	"sort"
	"strings"

	"github.com/aviwein/memorial-search/internal/domain"
)

// SortMode selects the ordering of the external-source view.
type SortMode string

const (
	SortMostRecent  SortMode = "recent"
	SortSourceLabel SortMode = "source"
)

// Sort orders items in place. Most-recent puts resolved dates first,
// descending; records with no resolvable date sort last, keeping their
// insertion order. Source mode sorts by source label ascending.
func Sort(items []domain.UnifiedObituary, mode SortMode) {
	switch mode {
	case SortSourceLabel:
		sort.SliceStable(items, func(i, j int) bool {
			return strings.ToLower(items[i].SourceLabel) < strings.ToLower(items[j].SourceLabel)
		})
	default:
		sort.SliceStable(items, func(i, j int) bool {
			di, iOK := items[i].SortDate()
			dj, jOK := items[j].SortDate()
			if iOK != jOK {
				return iOK
			}
			if !iOK {
				return false
			}
			return di.After(dj)
		})
	}
}
