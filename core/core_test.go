package core

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/huangsam/githistory/internal/contract"
	"github.com/huangsam/githistory/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func commit(email, name string, ts time.Time) schema.CommitRecord {
	return schema.CommitRecord{AuthorEmail: email, AuthorName: name, Timestamp: ts}
}

func sampleCommits() []schema.CommitRecord {
	return []schema.CommitRecord{
		commit("a@x.com", "Alice", time.Date(2020, 1, 1, 10, 0, 0, 0, time.UTC)),
		commit("b@y.com", "Bob", time.Date(2021, 3, 3, 9, 0, 0, 0, time.UTC)),
		commit("a@x.com", "Alice Smith", time.Date(2020, 6, 10, 10, 0, 0, 0, time.UTC)),
		commit("c@y.com", "Carol", time.Date(2019, 7, 7, 7, 0, 0, 0, time.UTC)),
		commit("b@y.com", "Bob B", time.Date(2021, 3, 4, 9, 0, 0, 0, time.UTC)),
	}
}

func mockSource(records []schema.CommitRecord, err error) *contract.MockCommitSource {
	m := new(contract.MockCommitSource)
	m.On("Commits", mock.Anything, "/repo").Return(records, err)
	return m
}

func TestLoadRepository(t *testing.T) {
	cfg := &contract.Config{RepoPath: "/repo"}

	t.Run("aggregates history", func(t *testing.T) {
		m := mockSource(sampleCommits(), nil)
		ds, err := LoadRepository(context.Background(), cfg, m)
		require.NoError(t, err)
		assert.Equal(t, 3, ds.Len())
		assert.Equal(t, 5, ds.TotalCommits)
		m.AssertExpectations(t)
	})

	t.Run("empty history is an empty dataset", func(t *testing.T) {
		m := mockSource(nil, &contract.EmptyHistoryError{Path: "/repo"})
		ds, err := LoadRepository(context.Background(), cfg, m)
		require.NoError(t, err)
		assert.Zero(t, ds.Len())
		assert.Zero(t, ds.TotalCommits)
	})

	t.Run("open failure propagates", func(t *testing.T) {
		m := mockSource(nil, &contract.RepositoryOpenError{Path: "/repo", Err: assert.AnError})
		_, err := LoadRepository(context.Background(), cfg, m)
		require.Error(t, err)
		assert.True(t, contract.IsRepositoryOpen(err))
	})
}

func TestGetAuthorResults(t *testing.T) {
	cfg := &contract.Config{RepoPath: "/repo", Sort: schema.SortCommits, Reverse: true, Filter: "y.com", Limit: 1}
	m := mockSource(sampleCommits(), nil)

	ranked, ds, err := GetAuthorResults(context.Background(), cfg, m)
	require.NoError(t, err)
	assert.Equal(t, 3, ds.Len(), "dataset is not filtered")
	require.Len(t, ranked, 1)
	assert.Equal(t, "b@y.com", ranked[0].Email)
}

func TestGetAuthorActivity(t *testing.T) {
	cfg := &contract.Config{RepoPath: "/repo"}

	m := mockSource(sampleCommits(), nil)
	activity, err := GetAuthorActivity(context.Background(), cfg, m, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "Alice Smith", activity.Author.Name)
	assert.Equal(t, []schema.DailyCount{
		{Date: "2020-01-01", Commits: 1},
		{Date: "2020-06-10", Commits: 1},
	}, activity.Days)

	m = mockSource(sampleCommits(), nil)
	_, err = GetAuthorActivity(context.Background(), cfg, m, "A@X.COM")
	require.Error(t, err, "lookup is by exact email")
}

func TestExecuteReport(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.csv")
	cfg := &contract.Config{RepoPath: "/repo", Output: schema.CSVOut, OutputFile: out}
	ctx := WithClock(WithSuppressHeader(context.Background()), time.Date(2021, 3, 20, 0, 0, 0, 0, time.UTC))

	m := mockSource(sampleCommits(), nil)
	require.NoError(t, ExecuteReport(ctx, cfg, m))

	content, err := os.ReadFile(out)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[1], "c@y.com", "default order starts with the earliest first commit")
	assert.Contains(t, lines[3], "b@y.com")
	assert.Contains(t, lines[3], "Active")
}

func TestExecuteReport_Error(t *testing.T) {
	cfg := &contract.Config{RepoPath: "/repo"}
	m := mockSource(nil, &contract.RepositoryOpenError{Path: "/repo", Err: assert.AnError})
	require.Error(t, ExecuteReport(WithSuppressHeader(context.Background()), cfg, m))
}
