package helpers

import (
	"bytes"
	"errors"
	"os/exec"
	"strings"
	"testing"
)

// BinaryName is the hook binary the e2e tests expect in PATH.
const BinaryName = "commit-hooks"

// HookRun is the outcome of one hook invocation.
type HookRun struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// RequireCommitHooks skips the test if the hook binary is not available in PATH
func RequireCommitHooks(t *testing.T) {
	t.Helper()

	if _, err := exec.LookPath(BinaryName); err != nil {
		t.Skipf("%s not found in PATH", BinaryName)
	}
}

// RunHook runs a hook subcommand in dir with payload on stdin.
// extraEnv entries are appended to the inherited environment.
func RunHook(t *testing.T, dir, subcommand, payload string, extraEnv ...string) HookRun {
	t.Helper()

	cmd := exec.Command(BinaryName, subcommand)
	cmd.Dir = dir
	cmd.Stdin = strings.NewReader(payload)
	if len(extraEnv) > 0 {
		cmd.Env = append(cmd.Environ(), extraEnv...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	run := HookRun{}
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			t.Fatalf("failed to run %s %s: %v", BinaryName, subcommand, err)
		}
		run.ExitCode = exitErr.ExitCode()
	}
	run.Stdout = stdout.String()
	run.Stderr = stderr.String()
	return run
}
