package hooks

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/michael-freling/commit-hooks/internal/signature"
)

const amendLockFileName = "commit-hooks.lock"

// ErrAmendInProgress is returned when another hook holds the amend lock.
var ErrAmendInProgress = errors.New("another commit amend is in progress")

// AmendResult describes what the amend hook did.
type AmendResult struct {
	Original string
	Cleaned  string
	Amended  bool
}

// CommitAmender strips signatures from HEAD's message after a commit was made.
// HEAD must already be the commit the triggering command created.
type CommitAmender struct {
	git        GitHelper
	normalizer *signature.Normalizer
	trigger    string
	timeout    time.Duration
	lock       bool
}

// AmenderOption configures a CommitAmender.
type AmenderOption func(*CommitAmender)

// WithTimeout bounds all git work of one Run.
func WithTimeout(timeout time.Duration) AmenderOption {
	return func(a *CommitAmender) {
		a.timeout = timeout
	}
}

// WithLock serializes amends through a lock file in the git directory.
func WithLock(enabled bool) AmenderOption {
	return func(a *CommitAmender) {
		a.lock = enabled
	}
}

// NewCommitAmender creates a CommitAmender. The normalizer should be built
// with signature.ScopeMessage.
func NewCommitAmender(git GitHelper, normalizer *signature.Normalizer, trigger string, opts ...AmenderOption) *CommitAmender {
	a := &CommitAmender{
		git:        git,
		normalizer: normalizer,
		trigger:    trigger,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run amends HEAD when input is a commit command and HEAD's message carries
// a signature. It returns nil when the command is not a commit.
func (a *CommitAmender) Run(ctx context.Context, input *ToolInput) (*AmendResult, error) {
	if !IsCommitCommand(input.Command(), a.trigger) {
		return nil, nil
	}

	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	if a.lock {
		unlock, err := a.acquireLock(ctx)
		if err != nil {
			return nil, err
		}
		defer unlock()
	}

	message, err := a.git.LastCommitMessage(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read HEAD message: %w", err)
	}

	cleaned := a.normalizer.NormalizeMessage(message)
	result := &AmendResult{
		Original: message,
		Cleaned:  cleaned.Cleaned,
	}
	if !cleaned.Changed {
		return result, nil
	}

	if err := a.git.AmendCommitMessage(ctx, cleaned.Cleaned); err != nil {
		return result, fmt.Errorf("failed to amend HEAD: %w", err)
	}

	result.Amended = true
	return result, nil
}

func (a *CommitAmender) acquireLock(ctx context.Context) (func(), error) {
	gitDir, err := a.git.GitDir(ctx)
	if err != nil {
		return nil, err
	}

	fileLock := flock.New(filepath.Join(gitDir, amendLockFileName))
	locked, err := fileLock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return nil, ErrAmendInProgress
	}

	return func() { _ = fileLock.Unlock() }, nil
}
