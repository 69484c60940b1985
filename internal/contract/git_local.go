package contract

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"iter"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/huangsam/githistory/schema"
)

// logFieldSep separates the fields of one `git log` line. Names may contain
// any printable character, so a NUL byte is used.
const logFieldSep = "\x00"

// logFormat is the --pretty format consumed by parseCommitLine.
const logFormat = "--pretty=format:%ae%x00%an%x00%ad"

// LocalGitSource implements the CommitSource interface by executing the
// local 'git' binary installed on the machine.
type LocalGitSource struct{}

var _ CommitSource = &LocalGitSource{} // Compile-time check

// NewLocalGitSource creates a new instance of the local Git source.
func NewLocalGitSource() *LocalGitSource {
	return &LocalGitSource{}
}

// run executes a git command and returns its stdout output.
func (s *LocalGitSource) run(ctx context.Context, repoPath string, args ...string) ([]byte, error) {
	fullArgs := append([]string{"-C", repoPath}, args...)
	cmd := exec.CommandContext(ctx, "git", fullArgs...)
	out, err := cmd.Output()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		stderr := strings.TrimSpace(string(exitErr.Stderr))
		return nil, fmt.Errorf("git command failed in %q: %s", repoPath, stderr)
	} else if err != nil {
		return nil, fmt.Errorf("git command failed: %w. Ensure Git is installed and available on your PATH", err)
	}
	return out, nil
}

// ResolveRepo implements the CommitSource interface.
func (s *LocalGitSource) ResolveRepo(ctx context.Context, path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", &RepositoryOpenError{Path: path, Err: err}
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", &RepositoryOpenError{Path: path, Err: err}
	}
	if !info.IsDir() {
		abs = filepath.Dir(abs)
	}
	out, err := s.run(ctx, abs, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", &RepositoryOpenError{Path: path, Err: err}
	}
	return strings.TrimSpace(string(out)), nil
}

// Commits implements the CommitSource interface.
func (s *LocalGitSource) Commits(ctx context.Context, repoPath string) (iter.Seq2[schema.CommitRecord, error], error) {
	// An unborn HEAD makes `git log` fail, so check for it up front.
	if _, err := s.run(ctx, repoPath, "rev-parse", "--verify", "--quiet", "HEAD"); err != nil {
		if _, statErr := s.run(ctx, repoPath, "rev-parse", "--git-dir"); statErr != nil {
			return nil, &RepositoryOpenError{Path: repoPath, Err: statErr}
		}
		return nil, &EmptyHistoryError{Path: repoPath}
	}

	return func(yield func(schema.CommitRecord, error) bool) {
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		cmd := exec.CommandContext(ctx, "git", "-C", repoPath, "log", logFormat, "--date=iso-strict", "HEAD")
		var stderr bytes.Buffer
		cmd.Stderr = &stderr
		stdout, err := cmd.StdoutPipe()
		if err != nil {
			yield(schema.CommitRecord{}, fmt.Errorf("cannot read git log: %w", err))
			return
		}
		if err := cmd.Start(); err != nil {
			yield(schema.CommitRecord{}, fmt.Errorf("git command failed: %w. Ensure Git is installed and available on your PATH", err))
			return
		}
		waited := false
		defer func() {
			if !waited {
				cancel()
				_ = cmd.Wait()
			}
		}()

		scanner := bufio.NewScanner(stdout)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			line := scanner.Text()
			if line == "" {
				continue
			}
			rec, err := parseCommitLine(line)
			if err != nil {
				yield(schema.CommitRecord{}, err)
				return
			}
			if !yield(rec, nil) {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			yield(schema.CommitRecord{}, fmt.Errorf("cannot read git log: %w", err))
			return
		}
		waited = true
		if err := cmd.Wait(); err != nil {
			yield(schema.CommitRecord{}, fmt.Errorf("git log failed in %q: %s", repoPath, strings.TrimSpace(stderr.String())))
		}
	}, nil
}

// parseCommitLine parses "email NUL name NUL iso-date" into a CommitRecord.
func parseCommitLine(line string) (schema.CommitRecord, error) {
	parts := strings.SplitN(line, logFieldSep, 3)
	if len(parts) != 3 {
		return schema.CommitRecord{}, fmt.Errorf("malformed git log line %q", line)
	}
	ts, err := time.Parse(time.RFC3339, strings.TrimSpace(parts[2]))
	if err != nil {
		return schema.CommitRecord{}, fmt.Errorf("malformed commit date %q: %w", parts[2], err)
	}
	return schema.CommitRecord{
		AuthorEmail: strings.TrimSpace(parts[0]),
		AuthorName:  strings.TrimSpace(parts[1]),
		Timestamp:   fixOffset(ts),
	}, nil
}

// fixOffset pins t to a fixed zone with its own UTC offset, so its civil
// date does not depend on the zone database of the running process.
func fixOffset(t time.Time) time.Time {
	_, offset := t.Zone()
	return t.In(time.FixedZone("", offset))
}
