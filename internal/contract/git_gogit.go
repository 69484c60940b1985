package contract

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/huangsam/githistory/schema"
)

// GoGitSource implements the CommitSource interface in pure Go with go-git,
// for machines without a git binary.
type GoGitSource struct{}

var _ CommitSource = &GoGitSource{} // Compile-time check

// NewGoGitSource creates a new instance of the go-git source.
func NewGoGitSource() *GoGitSource {
	return &GoGitSource{}
}

func openRepository(path string) (*git.Repository, error) {
	return git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
}

// ResolveRepo implements the CommitSource interface.
func (s *GoGitSource) ResolveRepo(_ context.Context, path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", &RepositoryOpenError{Path: path, Err: err}
	}
	repo, err := openRepository(abs)
	if err != nil {
		return "", &RepositoryOpenError{Path: path, Err: err}
	}
	wt, err := repo.Worktree()
	if errors.Is(err, git.ErrIsBareRepository) {
		return abs, nil
	} else if err != nil {
		return "", &RepositoryOpenError{Path: path, Err: err}
	}
	return wt.Filesystem.Root(), nil
}

// Commits implements the CommitSource interface.
func (s *GoGitSource) Commits(ctx context.Context, repoPath string) (iter.Seq2[schema.CommitRecord, error], error) {
	repo, err := openRepository(repoPath)
	if err != nil {
		return nil, &RepositoryOpenError{Path: repoPath, Err: err}
	}
	head, err := repo.Head()
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return nil, &EmptyHistoryError{Path: repoPath}
	} else if err != nil {
		return nil, fmt.Errorf("cannot resolve HEAD in %q: %w", repoPath, err)
	}

	return func(yield func(schema.CommitRecord, error) bool) {
		commits, err := repo.Log(&git.LogOptions{From: head.Hash()})
		if err != nil {
			yield(schema.CommitRecord{}, fmt.Errorf("cannot walk history of %q: %w", repoPath, err))
			return
		}
		defer commits.Close()

		for {
			if err := ctx.Err(); err != nil {
				yield(schema.CommitRecord{}, err)
				return
			}
			c, err := commits.Next()
			if errors.Is(err, io.EOF) {
				return
			} else if err != nil {
				yield(schema.CommitRecord{}, fmt.Errorf("cannot read commit in %q: %w", repoPath, err))
				return
			}
			if !yield(recordFromCommit(c), nil) {
				return
			}
		}
	}, nil
}

// recordFromCommit extracts the author fields of a go-git commit.
func recordFromCommit(c *object.Commit) schema.CommitRecord {
	return schema.CommitRecord{
		AuthorEmail: c.Author.Email,
		AuthorName:  c.Author.Name,
		Timestamp:   fixOffset(c.Author.When),
	}
}
