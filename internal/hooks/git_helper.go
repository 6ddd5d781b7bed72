package hooks

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/michael-freling/commit-hooks/internal/command"
	"github.com/michael-freling/commit-hooks/internal/config"
)

// GitHelper provides the repository operations the amend hook needs.
type GitHelper interface {
	// LastCommitMessage returns HEAD's full message.
	LastCommitMessage(ctx context.Context) (string, error)
	// AmendCommitMessage replaces HEAD's message.
	AmendCommitMessage(ctx context.Context, message string) error
	// GitDir returns the repository's git directory.
	GitDir(ctx context.Context) (string, error)
}

// realGitHelper implements GitHelper as an adapter over command.GitRunner.
type realGitHelper struct {
	runner command.GitRunner
	dir    string
}

// NewGitHelper creates the GitHelper selected by cfg.History.
func NewGitHelper(cfg config.GitConfig) GitHelper {
	helper := NewGitHelperWithRunner(command.NewGitRunner(command.NewRunner()), cfg.Dir)
	if cfg.History == config.HistoryGoGit {
		return NewGoGitHelper(helper, cfg.Dir)
	}
	return helper
}

// NewGitHelperWithRunner creates a new GitHelper with a custom runner for testing.
func NewGitHelperWithRunner(runner command.GitRunner, dir string) GitHelper {
	return &realGitHelper{
		runner: runner,
		dir:    dir,
	}
}

func (g *realGitHelper) LastCommitMessage(ctx context.Context) (string, error) {
	return g.runner.LastCommitMessage(ctx, g.dir)
}

func (g *realGitHelper) AmendCommitMessage(ctx context.Context, message string) error {
	return g.runner.AmendCommitMessage(ctx, g.dir, message)
}

func (g *realGitHelper) GitDir(ctx context.Context) (string, error) {
	return g.runner.GitDir(ctx, g.dir)
}

// goGitHelper reads history in-process with go-git and delegates writes to
// the git CLI.
type goGitHelper struct {
	GitHelper
	dir string
}

// NewGoGitHelper wraps writer so that LastCommitMessage is served by go-git.
func NewGoGitHelper(writer GitHelper, dir string) GitHelper {
	if dir == "" {
		dir = "."
	}
	return &goGitHelper{
		GitHelper: writer,
		dir:       dir,
	}
}

func (g *goGitHelper) LastCommitMessage(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	repo, err := git.PlainOpenWithOptions(g.dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("failed to open repository %s: %w", g.dir, err)
	}

	head, err := repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return "", command.ErrNoCommits
		}
		return "", fmt.Errorf("failed to resolve HEAD: %w", err)
	}

	commit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return "", fmt.Errorf("failed to read commit %s: %w", head.Hash(), err)
	}

	return commit.Message, nil
}
