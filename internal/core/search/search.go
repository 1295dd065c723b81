// Package search holds the pure filter and sort pipeline shared by the API
// and the client. It never touches storage or transport.
package search

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Entry is the in-memory shape the pipeline operates on.
// Author fields may be empty when the author record has no profile data.
type Entry struct {
	ID          string
	Title       string
	Description string
	AuthorName  string
	AuthorEmail string
	CreatedAt   time.Time
	AvgRating   float64
	ReviewCount int
}

// SortKey selects the ordering applied after filtering.
type SortKey string

const (
	// SortNewest orders by creation time, newest first.
	SortNewest SortKey = "newest"

	// SortAlphabetical orders by title ascending, locale aware.
	SortAlphabetical SortKey = "alphabetical"

	// SortTopRated orders by average rating, review count, then recency.
	SortTopRated SortKey = "top_rated"
)

// ParseSortKey maps a raw query value to a SortKey, defaulting to newest.
// Unknown values fall back to the default rather than erroring so a stale
// bookmark still renders.
func ParseSortKey(raw string) SortKey {
	switch SortKey(strings.TrimSpace(strings.ToLower(raw))) {
	case SortAlphabetical:
		return SortAlphabetical
	case SortTopRated:
		return SortTopRated
	default:
		return SortNewest
	}
}

// Filter returns the entries matching query. Matching is case-insensitive
// substring over title, description, author name, and author email; empty
// fields never match. A blank query keeps everything. The input slice is
// never mutated.
func Filter(entries []Entry, query string) []Entry {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		out := make([]Entry, len(entries))
		copy(out, entries)
		return out
	}
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if matches(e, q) {
			out = append(out, e)
		}
	}
	return out
}

func matches(e Entry, q string) bool {
	for _, f := range []string{e.Title, e.Description, e.AuthorName, e.AuthorEmail} {
		if f == "" {
			continue
		}
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// EffectiveRating is the rating used for ordering. A listing with no reviews
// ranks as zero regardless of any stored average.
func EffectiveRating(e Entry) float64 {
	if e.ReviewCount == 0 {
		return 0
	}
	return e.AvgRating
}

// Sort returns a sorted copy of entries under key. The input is never
// mutated and equal elements keep their relative order.
func Sort(entries []Entry, key SortKey) []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)

	switch key {
	case SortAlphabetical:
		c := collate.New(language.English, collate.IgnoreCase)
		sort.SliceStable(out, func(i, j int) bool {
			return c.CompareString(out[i].Title, out[j].Title) < 0
		})
	case SortTopRated:
		sort.SliceStable(out, func(i, j int) bool {
			ri, rj := EffectiveRating(out[i]), EffectiveRating(out[j])
			if ri != rj {
				return ri > rj
			}
			if out[i].ReviewCount != out[j].ReviewCount {
				return out[i].ReviewCount > out[j].ReviewCount
			}
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	default: // SortNewest
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	}
	return out
}

// Apply runs the full pipeline: filter by query, then order by key.
func Apply(entries []Entry, query string, key SortKey) []Entry {
	return Sort(Filter(entries, query), key)
}
