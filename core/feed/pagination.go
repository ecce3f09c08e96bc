// ABOUTME: Pagination utilities for merged cast pages
// ABOUTME: Limit normalization, dedupe, newest-first ordering and truncation

package feed

import (
	"sort"

	"github.com/samber/lo"

	"github.com/stevedylandev/wholenote-server/core/domain"
)

const (
	// DefaultLimit is used when the caller gives no positive limit
	DefaultLimit = 25

	// MaxLimit is the largest page a single upstream query accepts
	MaxLimit = 100
)

// NormalizeLimit replaces a non-positive page size with DefaultLimit.
// Larger limits are kept; the merged page may hold up to twice MaxLimit casts.
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	return limit
}

// UpstreamLimit is the limit sent to each upstream query
func UpstreamLimit(limit int) int {
	return min(NormalizeLimit(limit), MaxLimit)
}

// MergeCasts concatenates the sources in order, drops later duplicates by hash,
// sorts newest first and keeps at most limit casts. Ties keep source order.
func MergeCasts(limit int, sources ...[]domain.Cast) []domain.Cast {
	merged := lo.Flatten(sources)

	merged = lo.UniqBy(merged, func(c domain.Cast) string {
		if c.Hash == "" {
			// Casts without a hash fall back to their raw payload.
			return "\x00" + string(c.Raw)
		}
		return c.Hash
	})

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].NewerThan(merged[j])
	})

	if limit >= 0 && len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}

// NextCursor prefers the first non-empty cursor
func NextCursor(cursors ...string) string {
	for _, c := range cursors {
		if c != "" {
			return c
		}
	}
	return ""
}
