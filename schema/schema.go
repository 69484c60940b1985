// Package schema has models and constants for all parts of githistory.
package schema

import "time"

// CommitRecord is a single commit as produced by a commit source.
// Timestamp keeps the commit's own UTC offset as its location, so the
// civil date the author saw is Timestamp.Date().
type CommitRecord struct {
	AuthorEmail string
	AuthorName  string
	Timestamp   time.Time
}

// AuthorRecord represents the aggregated history of a single author email.
type AuthorRecord struct {
	Email       string    `json:"email"`        // Identity key, unique across the dataset
	Name        string    `json:"name"`         // Last name seen for this email
	Commits     int       `json:"commits"`      // Number of commits folded into this record
	FirstCommit time.Time `json:"first_commit"` // Civil day of the earliest commit
	LastCommit  time.Time `json:"last_commit"`  // Civil day of the latest commit
	DaysBetween int       `json:"days_between"` // Whole calendar days from first to last
}

// DailyActivity maps a civil day (see CivilDay) to a commit count.
type DailyActivity map[time.Time]int

// ActivityTable holds per-day counts overall and per author email.
type ActivityTable struct {
	Overall  DailyActivity
	ByAuthor map[string]DailyActivity
}

// ForAuthor returns the per-day counts of a single author, or nil.
func (t ActivityTable) ForAuthor(email string) DailyActivity {
	if t.ByAuthor == nil {
		return nil
	}
	return t.ByAuthor[email]
}

// Dataset is the immutable output of aggregation.
type Dataset struct {
	Authors      []AuthorRecord // Ordered by email
	Activity     ActivityTable
	TotalCommits int

	index map[string]int
}

// NewDataset builds a Dataset and its email index. Authors must already be
// ordered by email.
func NewDataset(authors []AuthorRecord, activity ActivityTable) *Dataset {
	d := &Dataset{
		Authors:  authors,
		Activity: activity,
		index:    make(map[string]int, len(authors)),
	}
	for i, a := range authors {
		d.index[a.Email] = i
		d.TotalCommits += a.Commits
	}
	return d
}

// EmptyDataset returns a dataset with zero authors.
func EmptyDataset() *Dataset {
	return NewDataset(nil, ActivityTable{
		Overall:  DailyActivity{},
		ByAuthor: map[string]DailyActivity{},
	})
}

// Author looks up an author record by email.
func (d *Dataset) Author(email string) (AuthorRecord, bool) {
	if d == nil {
		return AuthorRecord{}, false
	}
	i, ok := d.index[email]
	if !ok {
		return AuthorRecord{}, false
	}
	return d.Authors[i], true
}

// HasAuthor reports whether email belongs to the full author set.
func (d *Dataset) HasAuthor(email string) bool {
	_, ok := d.Author(email)
	return ok
}

// Len returns the number of authors.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Authors)
}

// CivilDay returns the calendar date of t in t's own location, expressed as
// midnight UTC so that days compare and subtract exactly.
func CivilDay(t time.Time) time.Time {
	y, m, day := t.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of whole calendar days from a to b.
// Both values are expected to come from CivilDay.
func DaysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
