// Package algo has the ordering and filtering rules for author records.
package algo

import (
	"cmp"
	"slices"
	"strings"

	"github.com/huangsam/githistory/schema"
)

// compareKey orders two authors by a sort key alone, ascending.
// SortDefault orders by first commit ascending, then last commit descending.
func compareKey(key schema.SortKey, a, b schema.AuthorRecord) int {
	switch key {
	case schema.SortEmail:
		return strings.Compare(a.Email, b.Email)
	case schema.SortCommits:
		return cmp.Compare(a.Commits, b.Commits)
	case schema.SortFirstCommit:
		return a.FirstCommit.Compare(b.FirstCommit)
	case schema.SortLastCommit:
		return a.LastCommit.Compare(b.LastCommit)
	case schema.SortDaysBetween:
		return cmp.Compare(a.DaysBetween, b.DaysBetween)
	default:
		if c := a.FirstCommit.Compare(b.FirstCommit); c != 0 {
			return c
		}
		return b.LastCommit.Compare(a.LastCommit)
	}
}

// Comparator returns the full ordering for a sort key. Reverse inverts the key
// comparison only; ties always fall back to email ascending.
func Comparator(key schema.SortKey, reverse bool) func(a, b schema.AuthorRecord) int {
	return func(a, b schema.AuthorRecord) int {
		c := compareKey(key, a, b)
		if reverse {
			c = -c
		}
		if c != 0 {
			return c
		}
		return strings.Compare(a.Email, b.Email)
	}
}

// MatchesFilter reports whether an email passes a case-sensitive substring filter.
// An empty filter matches everything.
func MatchesFilter(email, filter string) bool {
	return filter == "" || strings.Contains(email, filter)
}

// RankAuthors returns a new slice with the authors that match filter, ordered
// by key. The input slice is not modified.
func RankAuthors(authors []schema.AuthorRecord, key schema.SortKey, reverse bool, filter string) []schema.AuthorRecord {
	out := make([]schema.AuthorRecord, 0, len(authors))
	for _, a := range authors {
		if MatchesFilter(a.Email, filter) {
			out = append(out, a)
		}
	}
	slices.SortStableFunc(out, Comparator(key, reverse))
	return out
}

// LimitAuthors returns at most limit authors. A limit of zero keeps all of them.
func LimitAuthors(authors []schema.AuthorRecord, limit int) []schema.AuthorRecord {
	if limit > 0 && len(authors) > limit {
		return authors[:limit]
	}
	return authors
}
