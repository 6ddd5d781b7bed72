package hooks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockGitHelper is a mock implementation of GitHelper for testing.
type MockGitHelper struct {
	mock.Mock
}

// LastCommitMessage is a mock implementation of GitHelper.LastCommitMessage.
func (m *MockGitHelper) LastCommitMessage(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

// AmendCommitMessage is a mock implementation of GitHelper.AmendCommitMessage.
func (m *MockGitHelper) AmendCommitMessage(ctx context.Context, message string) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

// GitDir is a mock implementation of GitHelper.GitDir.
func (m *MockGitHelper) GitDir(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}
