// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"iter"

	"github.com/huangsam/githistory/schema"
)

// CommitSource reads the commit history of a repository.
// This allows the aggregation logic to be tested without needing a real repository.
type CommitSource interface {
	// ResolveRepo returns the root of the repository that contains path.
	// It fails with *RepositoryOpenError when path is not inside a repository.
	ResolveRepo(ctx context.Context, path string) (string, error)

	// Commits returns every commit reachable from HEAD as a lazy, single-pass
	// sequence. It fails with *EmptyHistoryError when HEAD has no commits.
	// Read failures during iteration are yielded once, after which the
	// sequence stops.
	Commits(ctx context.Context, repoPath string) (iter.Seq2[schema.CommitRecord, error], error)
}

// NewCommitSource returns the CommitSource for a backend.
func NewCommitSource(backend schema.SourceBackend) CommitSource {
	if backend == schema.GoGitSource {
		return NewGoGitSource()
	}
	return NewLocalGitSource()
}

// CommitSeq adapts a slice of records into a commit sequence.
func CommitSeq(records []schema.CommitRecord) iter.Seq2[schema.CommitRecord, error] {
	return func(yield func(schema.CommitRecord, error) bool) {
		for _, r := range records {
			if !yield(r, nil) {
				return
			}
		}
	}
}
