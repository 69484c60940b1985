// Package agg has aggregation logic for commit history.
package agg

import (
	"context"
	"fmt"
	"iter"
	"slices"
	"strings"
	"time"

	"github.com/huangsam/githistory/schema"
)

// authorAccumulator collects one author's commits during a single pass.
type authorAccumulator struct {
	name   string
	count  int
	oldest time.Time // Earliest instant seen, in its own offset
	newest time.Time // Latest instant seen, in its own offset
	daily  schema.DailyActivity
}

// Aggregate consumes the commit sequence exactly once and returns the author
// records, ordered by email, together with the per-day activity tables.
// An empty sequence yields an empty dataset. The first error yielded by the
// sequence aborts aggregation.
func Aggregate(ctx context.Context, commits iter.Seq2[schema.CommitRecord, error]) (*schema.Dataset, error) {
	authors := make(map[string]*authorAccumulator)
	overall := make(schema.DailyActivity)

	for rec, err := range commits {
		if err != nil {
			return nil, fmt.Errorf("cannot read commit history: %w", err)
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		foldCommit(authors, overall, rec)
	}

	return finalize(authors, overall), nil
}

// foldCommit adds one commit to the accumulators.
func foldCommit(authors map[string]*authorAccumulator, overall schema.DailyActivity, rec schema.CommitRecord) {
	day := schema.CivilDay(rec.Timestamp)
	overall[day]++

	acc, ok := authors[rec.AuthorEmail]
	if !ok {
		acc = &authorAccumulator{
			oldest: rec.Timestamp,
			newest: rec.Timestamp,
			daily:  make(schema.DailyActivity),
		}
		authors[rec.AuthorEmail] = acc
	}

	// Last write wins for the display name.
	acc.name = rec.AuthorName
	acc.count++
	acc.daily[day]++
	if rec.Timestamp.Before(acc.oldest) {
		acc.oldest = rec.Timestamp
	}
	if rec.Timestamp.After(acc.newest) {
		acc.newest = rec.Timestamp
	}
}

// finalize turns the accumulators into immutable records.
func finalize(authors map[string]*authorAccumulator, overall schema.DailyActivity) *schema.Dataset {
	records := make([]schema.AuthorRecord, 0, len(authors))
	byAuthor := make(map[string]schema.DailyActivity, len(authors))

	for email, acc := range authors {
		first := schema.CivilDay(acc.oldest)
		last := schema.CivilDay(acc.newest)
		// Commits in different offsets can put the earliest instant on a later
		// civil day than the latest one.
		if first.After(last) {
			first, last = last, first
		}
		records = append(records, schema.AuthorRecord{
			Email:       email,
			Name:        acc.name,
			Commits:     acc.count,
			FirstCommit: first,
			LastCommit:  last,
			DaysBetween: schema.DaysBetween(first, last),
		})
		byAuthor[email] = acc.daily
	}

	slices.SortFunc(records, func(a, b schema.AuthorRecord) int {
		return strings.Compare(a.Email, b.Email)
	})

	return schema.NewDataset(records, schema.ActivityTable{
		Overall:  overall,
		ByAuthor: byAuthor,
	})
}
