package contract

import (
	"context"
	"iter"

	"github.com/huangsam/githistory/schema"
	"github.com/stretchr/testify/mock"
)

// MockCommitSource is a testify mock for the CommitSource interface.
type MockCommitSource struct {
	mock.Mock
}

var _ CommitSource = &MockCommitSource{} // Compile-time check

// ResolveRepo implements the CommitSource interface.
func (m *MockCommitSource) ResolveRepo(ctx context.Context, path string) (string, error) {
	ret := m.Called(ctx, path)
	root, _ := ret.Get(0).(string)
	return root, ret.Error(1)
}

// Commits implements the CommitSource interface. The first return value may
// be programmed as an iter.Seq2 or as a []schema.CommitRecord.
func (m *MockCommitSource) Commits(ctx context.Context, repoPath string) (iter.Seq2[schema.CommitRecord, error], error) {
	ret := m.Called(ctx, repoPath)
	switch v := ret.Get(0).(type) {
	case iter.Seq2[schema.CommitRecord, error]:
		return v, ret.Error(1)
	case []schema.CommitRecord:
		return CommitSeq(v), ret.Error(1)
	default:
		return nil, ret.Error(1)
	}
}
