package unify

import (
	"context"
	"fmt"
	"strings"

	"github.com/aviwein/memorial-search/internal/domain"
)

// NotableReader lists the display names curated as notable figures.
type NotableReader interface {
	NotableNames(ctx context.Context) ([]string, error)
}

// Tagger marks unified obituaries as notable. Tagging is a separate pass
// applied uniformly after normalization so presentation can feature
// entries without the flag leaking into any source schema.
type Tagger struct {
	names map[string]struct{}
}

func NewTagger(ctx context.Context, reader NotableReader) (*Tagger, error) {
	names, err := reader.NotableNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load notable names: %w", err)
	}
	return NewTaggerFromNames(names), nil
}

func NewTaggerFromNames(names []string) *Tagger {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		n = normalizeName(n)
		if n == "" {
			continue
		}
		set[n] = struct{}{}
	}
	return &Tagger{names: set}
}

// Tag sets Notable in place across the collection.
func (t *Tagger) Tag(obituaries []domain.UnifiedObituary) {
	for i := range obituaries {
		obituaries[i].Notable = t.IsNotable(obituaries[i].DisplayName)
	}
}

// IsNotable matches a display name against the curated set,
// case-insensitively and ignoring repeated whitespace.
func (t *Tagger) IsNotable(name string) bool {
	_, ok := t.names[normalizeName(name)]
	return ok
}

func normalizeName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
