package agg

import (
	"context"
	_ "embed"
	"errors"
	"iter"
	"strings"
	"testing"
	"time"

	"github.com/huangsam/githistory/internal/contract"
	"github.com/huangsam/githistory/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//go:embed testdata/commits_basic.txt
var commitsBasicFixture string

// parseFixture reads "email|name|RFC3339" lines, skipping comments.
func parseFixture(t *testing.T, fixture string) []schema.CommitRecord {
	t.Helper()
	var out []schema.CommitRecord
	for line := range strings.SplitSeq(strings.TrimSpace(fixture), "\n") {
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Split(line, "|")
		require.Len(t, parts, 3, "fixture line %q", line)
		ts, err := time.Parse(time.RFC3339, parts[2])
		require.NoError(t, err)
		out = append(out, schema.CommitRecord{AuthorEmail: parts[0], AuthorName: parts[1], Timestamp: ts})
	}
	return out
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAggregate_TwoAuthors(t *testing.T) {
	records := parseFixture(t, commitsBasicFixture)

	ds, err := Aggregate(context.Background(), contract.CommitSeq(records))
	require.NoError(t, err)
	require.Equal(t, 2, ds.Len())

	a, ok := ds.Author("a@x.com")
	require.True(t, ok)
	assert.Equal(t, 3, a.Commits)
	assert.Equal(t, day(2024, 1, 1), a.FirstCommit)
	assert.Equal(t, day(2024, 6, 10), a.LastCommit)
	assert.Equal(t, 161, a.DaysBetween)
	assert.Equal(t, "Alice Smith", a.Name, "the last name seen wins")

	b, ok := ds.Author("b@y.com")
	require.True(t, ok)
	assert.Equal(t, 2, b.Commits)
	assert.Equal(t, 1, b.DaysBetween)
	assert.Equal(t, "Bob B", b.Name)

	assert.Equal(t, []string{"a@x.com", "b@y.com"}, []string{ds.Authors[0].Email, ds.Authors[1].Email}, "authors are ordered by email")
	assert.Equal(t, len(records), ds.TotalCommits)
}

func TestAggregate_DailyActivity(t *testing.T) {
	records := parseFixture(t, commitsBasicFixture)
	records = append(records, schema.CommitRecord{AuthorEmail: "b@y.com", Timestamp: time.Date(2024, 2, 1, 20, 0, 0, 0, time.UTC)})

	ds, err := Aggregate(context.Background(), contract.CommitSeq(records))
	require.NoError(t, err)

	assert.Equal(t, 2, ds.Activity.Overall[day(2024, 2, 1)])
	assert.Equal(t, 1, ds.Activity.Overall[day(2024, 1, 1)])
	assert.Equal(t, 2, ds.Activity.ForAuthor("b@y.com")[day(2024, 2, 1)])
	assert.Zero(t, ds.Activity.ForAuthor("a@x.com")[day(2024, 2, 1)])

	total := 0
	for _, n := range ds.Activity.Overall {
		total += n
	}
	assert.Equal(t, len(records), total)
}

func TestAggregate_CommitCountsSumToInput(t *testing.T) {
	base := time.Date(2023, 3, 1, 12, 0, 0, 0, time.UTC)
	emails := []string{"a@x.com", "b@y.com", "c@z.com", "a@x.com", "a@x.com", "c@z.com", "d@w.com"}
	var records []schema.CommitRecord
	for i, e := range emails {
		records = append(records, schema.CommitRecord{AuthorEmail: e, Timestamp: base.Add(time.Duration(i*37) * time.Hour)})
	}

	ds, err := Aggregate(context.Background(), contract.CommitSeq(records))
	require.NoError(t, err)

	sum := 0
	for _, a := range ds.Authors {
		sum += a.Commits
		assert.False(t, a.FirstCommit.After(a.LastCommit), "first <= last for %s", a.Email)
		assert.GreaterOrEqual(t, a.DaysBetween, 0)
	}
	assert.Equal(t, len(records), sum)
}

func TestAggregate_Empty(t *testing.T) {
	ds, err := Aggregate(context.Background(), contract.CommitSeq(nil))
	require.NoError(t, err)
	assert.Equal(t, 0, ds.Len())
	assert.Empty(t, ds.Activity.Overall)
	assert.Equal(t, 0, ds.TotalCommits)
}

func TestAggregate_CivilDaysAcrossDST(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("timezone database not available: %v", err)
	}

	// Late evening on both sides of the spring-forward night.
	records := []schema.CommitRecord{
		{AuthorEmail: "dst@x.com", Timestamp: time.Date(2024, 3, 9, 23, 30, 0, 0, ny)},
		{AuthorEmail: "dst@x.com", Timestamp: time.Date(2024, 3, 10, 23, 30, 0, 0, ny)},
	}

	ds, err := Aggregate(context.Background(), contract.CommitSeq(records))
	require.NoError(t, err)

	a, ok := ds.Author("dst@x.com")
	require.True(t, ok)
	assert.Equal(t, day(2024, 3, 9), a.FirstCommit)
	assert.Equal(t, day(2024, 3, 10), a.LastCommit)
	assert.Equal(t, 1, a.DaysBetween, "23 wall-clock hours apart but one calendar day")
}

func TestAggregate_UsesCommitOffsetNotUTC(t *testing.T) {
	tokyo := time.FixedZone("", 9*3600)
	records := []schema.CommitRecord{
		// 2024-01-01T20:00Z, which is already Jan 2 in Tokyo.
		{AuthorEmail: "t@x.com", Timestamp: time.Date(2024, 1, 2, 5, 0, 0, 0, tokyo)},
		{AuthorEmail: "t@x.com", Timestamp: time.Date(2024, 1, 4, 8, 0, 0, 0, tokyo)},
	}

	ds, err := Aggregate(context.Background(), contract.CommitSeq(records))
	require.NoError(t, err)

	a, _ := ds.Author("t@x.com")
	assert.Equal(t, day(2024, 1, 2), a.FirstCommit)
	assert.Equal(t, 2, a.DaysBetween)
	assert.Equal(t, 1, ds.Activity.Overall[day(2024, 1, 2)])
	assert.Zero(t, ds.Activity.Overall[day(2024, 1, 1)])
}

func TestAggregate_CrossOffsetInversion(t *testing.T) {
	kiribati := time.FixedZone("", 14*3600)
	hawaii := time.FixedZone("", -10*3600)
	records := []schema.CommitRecord{
		// Instant 2024-01-01T11:00Z, civil Jan 2.
		{AuthorEmail: "x@x.com", Timestamp: time.Date(2024, 1, 2, 1, 0, 0, 0, kiribati)},
		// Instant 2024-01-02T06:00Z (later), civil Jan 1.
		{AuthorEmail: "x@x.com", Timestamp: time.Date(2024, 1, 1, 20, 0, 0, 0, hawaii)},
	}

	ds, err := Aggregate(context.Background(), contract.CommitSeq(records))
	require.NoError(t, err)

	a, _ := ds.Author("x@x.com")
	assert.Equal(t, day(2024, 1, 1), a.FirstCommit)
	assert.Equal(t, day(2024, 1, 2), a.LastCommit)
	assert.Equal(t, 1, a.DaysBetween)
}

func TestAggregate_SourceError(t *testing.T) {
	boom := errors.New("corrupt object")
	var seq iter.Seq2[schema.CommitRecord, error] = func(yield func(schema.CommitRecord, error) bool) {
		if !yield(schema.CommitRecord{AuthorEmail: "a@x.com", Timestamp: time.Now()}, nil) {
			return
		}
		yield(schema.CommitRecord{}, boom)
	}

	ds, err := Aggregate(context.Background(), seq)
	assert.Nil(t, ds)
	assert.ErrorIs(t, err, boom)
}

func TestAggregate_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Aggregate(ctx, contract.CommitSeq([]schema.CommitRecord{{AuthorEmail: "a@x.com", Timestamp: time.Now()}}))
	assert.ErrorIs(t, err, context.Canceled)
}
