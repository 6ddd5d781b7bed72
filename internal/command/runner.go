package command

//go:generate mockgen -source=runner.go -destination=mock_runner.go -package=command

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
)

// Runner abstracts command execution for testability
type Runner interface {
	// RunInDir executes a command in dir, or the working directory when dir
	// is empty, and returns trimmed stdout, stderr, and error
	RunInDir(ctx context.Context, dir string, name string, args ...string) (stdout string, stderr string, err error)
}

// runner implements Runner on top of os/exec
type runner struct{}

// NewRunner creates a new command runner
func NewRunner() Runner {
	return &runner{}
}

// RunInDir executes a command in a specific directory
func (r *runner) RunInDir(ctx context.Context, dir string, name string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	if dir != "" {
		cmd.Dir = dir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctxErr := ctx.Err(); ctxErr != nil && err != nil {
		err = ctxErr
	}
	return strings.TrimSpace(stdout.String()), strings.TrimSpace(stderr.String()), err
}
