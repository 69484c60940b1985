package algo

import (
	"slices"
	"testing"
	"time"

	"github.com/huangsam/githistory/schema"
	"github.com/stretchr/testify/assert"
)

func d(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

func emails(authors []schema.AuthorRecord) []string {
	out := make([]string, len(authors))
	for i, a := range authors {
		out[i] = a.Email
	}
	return out
}

// sampleAuthors has ties on every key to exercise the email tiebreak.
var sampleAuthors = []schema.AuthorRecord{
	{Email: "a@x.com", Commits: 3, FirstCommit: d(2024, 1, 1), LastCommit: d(2024, 6, 10), DaysBetween: 161},
	{Email: "b@y.com", Commits: 2, FirstCommit: d(2024, 2, 1), LastCommit: d(2024, 2, 2), DaysBetween: 1},
	{Email: "c@y.com", Commits: 2, FirstCommit: d(2024, 1, 1), LastCommit: d(2024, 1, 2), DaysBetween: 1},
	{Email: "d@z.com", Commits: 7, FirstCommit: d(2023, 5, 5), LastCommit: d(2024, 6, 10), DaysBetween: 402},
}

func TestRankAuthors_Keys(t *testing.T) {
	tests := []struct {
		name    string
		key     schema.SortKey
		reverse bool
		want    []string
	}{
		{"default first asc then last desc", schema.SortDefault, false, []string{"d@z.com", "a@x.com", "c@y.com", "b@y.com"}},
		{"default reversed", schema.SortDefault, true, []string{"b@y.com", "c@y.com", "a@x.com", "d@z.com"}},
		{"email", schema.SortEmail, false, []string{"a@x.com", "b@y.com", "c@y.com", "d@z.com"}},
		{"email reversed", schema.SortEmail, true, []string{"d@z.com", "c@y.com", "b@y.com", "a@x.com"}},
		{"commits ties by email", schema.SortCommits, false, []string{"b@y.com", "c@y.com", "a@x.com", "d@z.com"}},
		{"commits reversed keeps tie order", schema.SortCommits, true, []string{"d@z.com", "a@x.com", "b@y.com", "c@y.com"}},
		{"first commit", schema.SortFirstCommit, false, []string{"d@z.com", "a@x.com", "c@y.com", "b@y.com"}},
		{"last commit", schema.SortLastCommit, false, []string{"c@y.com", "b@y.com", "a@x.com", "d@z.com"}},
		{"days between", schema.SortDaysBetween, false, []string{"b@y.com", "c@y.com", "a@x.com", "d@z.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RankAuthors(sampleAuthors, tt.key, tt.reverse, "")
			assert.Equal(t, tt.want, emails(got))
		})
	}
}

func TestRankAuthors_ReverseIsExactForNonTies(t *testing.T) {
	for _, key := range []schema.SortKey{schema.SortEmail, schema.SortCommits, schema.SortFirstCommit, schema.SortLastCommit, schema.SortDaysBetween} {
		asc := RankAuthors(sampleAuthors, key, false, "")
		desc := RankAuthors(sampleAuthors, key, true, "")
		for i := range asc {
			for j := i + 1; j < len(asc); j++ {
				if compareKey(key, asc[i], asc[j]) == 0 {
					// Tied entries keep the same relative order in both directions.
					assert.Less(t, slices.Index(emails(desc), asc[i].Email), slices.Index(emails(desc), asc[j].Email), "key %v", key)
				} else {
					assert.Greater(t, slices.Index(emails(desc), asc[i].Email), slices.Index(emails(desc), asc[j].Email), "key %v", key)
				}
			}
		}
	}
}

func TestRankAuthors_Filter(t *testing.T) {
	got := RankAuthors(sampleAuthors, schema.SortDefault, false, "y.com")
	assert.Equal(t, []string{"c@y.com", "b@y.com"}, emails(got))

	assert.Empty(t, RankAuthors(sampleAuthors, schema.SortDefault, false, "Y.COM"), "filter is case-sensitive")
	assert.Len(t, RankAuthors(sampleAuthors, schema.SortDefault, false, ""), len(sampleAuthors))
}

func TestRankAuthors_DoesNotMutateInput(t *testing.T) {
	before := emails(sampleAuthors)
	_ = RankAuthors(sampleAuthors, schema.SortCommits, true, "")
	assert.Equal(t, before, emails(sampleAuthors))
}

func TestLimitAuthors(t *testing.T) {
	assert.Len(t, LimitAuthors(sampleAuthors, 0), 4)
	assert.Len(t, LimitAuthors(sampleAuthors, 2), 2)
	assert.Len(t, LimitAuthors(sampleAuthors, 10), 4)
	assert.Empty(t, LimitAuthors(nil, 3))
}

func TestMatchesFilter(t *testing.T) {
	assert.True(t, MatchesFilter("a@x.com", ""))
	assert.True(t, MatchesFilter("a@x.com", "@x"))
	assert.False(t, MatchesFilter("a@x.com", "@X"))
}
