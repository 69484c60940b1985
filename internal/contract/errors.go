package contract

import (
	"errors"
	"fmt"
)

// RepositoryOpenError means the path is missing or is not a Git repository.
type RepositoryOpenError struct {
	Path string
	Err  error
}

func (e *RepositoryOpenError) Error() string {
	return fmt.Sprintf("cannot open repository %q: %v", e.Path, e.Err)
}

func (e *RepositoryOpenError) Unwrap() error { return e.Err }

// EmptyHistoryError means the repository exists but HEAD has no commits.
// Callers treat it as a valid zero-author state.
type EmptyHistoryError struct {
	Path string
}

func (e *EmptyHistoryError) Error() string {
	return fmt.Sprintf("repository %q has no commits", e.Path)
}

// RenderSurfaceError means the terminal could not be set up or torn down.
type RenderSurfaceError struct {
	Err error
}

func (e *RenderSurfaceError) Error() string {
	return fmt.Sprintf("terminal error: %v", e.Err)
}

func (e *RenderSurfaceError) Unwrap() error { return e.Err }

// IsEmptyHistory reports whether err is or wraps an *EmptyHistoryError.
func IsEmptyHistory(err error) bool {
	var target *EmptyHistoryError
	return errors.As(err, &target)
}

// IsRepositoryOpen reports whether err is or wraps a *RepositoryOpenError.
func IsRepositoryOpen(err error) bool {
	var target *RepositoryOpenError
	return errors.As(err, &target)
}
