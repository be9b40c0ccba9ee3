package filter

import (
	"context"
	"fmt"
	"strings"
)

// Community types used by the join-lookup predicates.
const (
	CommunityCity     = "city"
	CommunitySchool   = "school"
	CommunityCollege  = "college"
	CommunityMilitary = "military"
)

// CommunityResolver is the join-lookup boundary: a (type, slug) pair
// resolves to a community id, and a community id resolves to the set of
// linked obituary ids.
type CommunityResolver interface {
	CommunityID(ctx context.Context, communityType, slug string) (string, bool, error)
	MemberIDs(ctx context.Context, communityID string) ([]string, error)
}

// memberSet resolves one community filter to its member-id set. An
// unknown community yields an empty set: the filter was asked for and
// nothing belongs to it.
func memberSet(ctx context.Context, r CommunityResolver, communityType, term string) (map[string]struct{}, error) {
	id, ok, err := r.CommunityID(ctx, communityType, Slug(term))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s community %q: %w", communityType, term, err)
	}
	if !ok {
		return map[string]struct{}{}, nil
	}

	ids, err := r.MemberIDs(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list members of %s community %q: %w", communityType, term, err)
	}

	set := make(map[string]struct{}, len(ids))
	for _, memberID := range ids {
		set[memberID] = struct{}{}
	}
	return set, nil
}

// intersect keeps ids present in both sets. A nil set means "no
// constraint" and passes the other through.
func intersect(a, b map[string]struct{}) map[string]struct{} {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	out := make(map[string]struct{})
	for id := range a {
		if _, ok := b[id]; ok {
			out[id] = struct{}{}
		}
	}
	return out
}

// Slug normalizes a free-form term to the community slug convention.
func Slug(term string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(term))), "-")
}
