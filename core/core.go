// Package core has core logic for loading history, ordering authors and
// producing reports.
package core

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/huangsam/githistory/core/agg"
	"github.com/huangsam/githistory/core/algo"
	"github.com/huangsam/githistory/internal/contract"
	"github.com/huangsam/githistory/internal/outwriter"
	"github.com/huangsam/githistory/schema"
)

// ExecutorFunc defines the function signature for executing a command mode.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, source contract.CommitSource) error

// LoadRepository reads the full history of cfg.RepoPath and aggregates it.
// A repository without commits yields an empty dataset, not an error.
func LoadRepository(ctx context.Context, cfg *contract.Config, source contract.CommitSource) (*schema.Dataset, error) {
	commits, err := source.Commits(ctx, cfg.RepoPath)
	if err != nil {
		if contract.IsEmptyHistory(err) {
			return schema.EmptyDataset(), nil
		}
		return nil, err
	}
	return agg.Aggregate(ctx, commits)
}

// GetAuthorResults loads the repository and returns the ordered, filtered and
// limited author records according to cfg.
func GetAuthorResults(ctx context.Context, cfg *contract.Config, source contract.CommitSource) ([]schema.AuthorRecord, *schema.Dataset, error) {
	ds, err := LoadRepository(ctx, cfg, source)
	if err != nil {
		return nil, nil, err
	}
	visible := ComputeVisible(ds.Authors, SortState{Key: cfg.Sort, Reverse: cfg.Reverse}, cfg.Filter)
	return algo.LimitAuthors(visible, cfg.Limit), ds, nil
}

// AuthorActivity is the record and day-by-day commit counts of one author.
type AuthorActivity struct {
	Author schema.AuthorRecord `json:"author"`
	Days   []schema.DailyCount `json:"days"`
}

// GetAuthorActivity returns the daily activity of a single author, looked up
// by exact email.
func GetAuthorActivity(ctx context.Context, cfg *contract.Config, source contract.CommitSource, email string) (*AuthorActivity, error) {
	ds, err := LoadRepository(ctx, cfg, source)
	if err != nil {
		return nil, err
	}
	author, ok := ds.Author(email)
	if !ok {
		return nil, fmt.Errorf("no commits found for author %q", email)
	}
	return &AuthorActivity{
		Author: author,
		Days:   schema.SortedDays(ds.Activity.ForAuthor(email)),
	}, nil
}

// ExecuteReport loads the repository and writes the author report in the
// configured output format. It serves as the main entry point for 'report'.
func ExecuteReport(ctx context.Context, cfg *contract.Config, source contract.CommitSource) error {
	start := time.Now()
	ranked, ds, err := GetAuthorResults(ctx, cfg, source)
	if err != nil {
		return err
	}
	if !shouldSuppressHeader(ctx) {
		logReportHeader(cfg, ds)
	}
	return outwriter.WriteAuthorReport(ranked, cfg, Now(ctx), time.Since(start))
}

// logReportHeader prints a concise, 2-line summary of the loaded history.
func logReportHeader(cfg *contract.Config, ds *schema.Dataset) {
	_, _ = fmt.Fprintf(os.Stderr, "🔎 Repo: %s (Source: %s)\n", contract.FormatRepoPath(cfg.RepoPath), cfg.Source)
	_, _ = fmt.Fprintf(os.Stderr, "👥 Authors: %d, Commits: %d\n", ds.Len(), ds.TotalCommits)
}
