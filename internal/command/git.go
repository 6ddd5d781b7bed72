package command

//go:generate mockgen -source=git.go -destination=mock_git.go -package=command

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrNoCommits is returned when the repository has no commit to read or amend
var ErrNoCommits = errors.New("repository has no commits")

// GitRunner abstracts git command execution
type GitRunner interface {
	// LastCommitMessage returns the full message of HEAD
	LastCommitMessage(ctx context.Context, dir string) (string, error)
	// AmendCommitMessage replaces the message of HEAD, leaving its tree and author alone
	AmendCommitMessage(ctx context.Context, dir string, message string) error
	// GitDir returns the absolute path of the repository's git directory
	GitDir(ctx context.Context, dir string) (string, error)
}

type gitRunner struct {
	runner Runner
}

// NewGitRunner creates a new GitRunner instance
func NewGitRunner(runner Runner) GitRunner {
	return &gitRunner{
		runner: runner,
	}
}

// LastCommitMessage returns the full message of HEAD
func (g *gitRunner) LastCommitMessage(ctx context.Context, dir string) (string, error) {
	stdout, stderr, err := g.runner.RunInDir(ctx, dir, "git", "log", "-1", "--format=%B")
	if err != nil {
		if isNoCommitsError(stderr) {
			return "", ErrNoCommits
		}
		return "", fmt.Errorf("failed to read last commit message: %w (stderr: %s)", err, stderr)
	}

	return stdout, nil
}

// AmendCommitMessage replaces the message of HEAD.
// The command line is run through sh with the message escaped for a
// double-quoted context. --only keeps staged changes out of the amended commit.
func (g *gitRunner) AmendCommitMessage(ctx context.Context, dir string, message string) error {
	if strings.TrimSpace(message) == "" {
		return fmt.Errorf("commit message cannot be empty")
	}

	_, stderr, err := g.runner.RunInDir(ctx, dir, "sh", "-c", AmendCommandLine(message))
	if err != nil {
		if isNoCommitsError(stderr) {
			return ErrNoCommits
		}
		return fmt.Errorf("failed to amend commit message: %w (stderr: %s)", err, stderr)
	}

	return nil
}

// GitDir returns the absolute path of the repository's git directory
func (g *gitRunner) GitDir(ctx context.Context, dir string) (string, error) {
	stdout, stderr, err := g.runner.RunInDir(ctx, dir, "git", "rev-parse", "--absolute-git-dir")
	if err != nil {
		return "", fmt.Errorf("failed to locate git directory: %w (stderr: %s)", err, stderr)
	}

	return filepath.Clean(stdout), nil
}

// AmendCommandLine builds the shell command line that amends HEAD's message.
func AmendCommandLine(message string) string {
	return fmt.Sprintf(`git commit --amend --only -m "%s"`, EscapeDoubleQuoted(message))
}

var doubleQuoteEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	`$`, `\$`,
	"`", "\\`",
)

// EscapeDoubleQuoted escapes s for use inside a double-quoted shell word.
func EscapeDoubleQuoted(s string) string {
	return doubleQuoteEscaper.Replace(s)
}

func isNoCommitsError(stderr string) bool {
	return strings.Contains(stderr, "does not have any commits") ||
		strings.Contains(stderr, "bad default revision") ||
		strings.Contains(stderr, "unknown revision or path not in the working tree")
}
