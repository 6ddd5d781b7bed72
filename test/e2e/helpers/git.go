package helpers

import (
	"fmt"
	"os/exec"
	"strings"
	"testing"
)

// minGitVersion is the oldest git with rev-parse --absolute-git-dir, which
// the amend lock relies on.
var minGitVersion = [2]int{2, 13}

// RequireGit skips the test if git is not in PATH or older than minGitVersion
func RequireGit(t *testing.T) {
	t.Helper()

	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not found in PATH")
	}

	version := GitVersion(t)
	major, minor, ok := ParseGitVersion(version)
	if !ok {
		t.Skipf("unrecognized git version %q", version)
	}
	if major < minGitVersion[0] || (major == minGitVersion[0] && minor < minGitVersion[1]) {
		t.Skipf("%s is older than %d.%d", version, minGitVersion[0], minGitVersion[1])
	}
}

// GitVersion returns the output of git --version without the trailing newline
func GitVersion(t *testing.T) string {
	t.Helper()

	output, err := exec.Command("git", "--version").CombinedOutput()
	if err != nil {
		t.Fatalf("failed to get git version: %v", err)
	}

	return strings.TrimSpace(string(output))
}

// ParseGitVersion extracts major and minor from "git version 2.39.2 (Apple Git-143)"
func ParseGitVersion(version string) (major, minor int, ok bool) {
	fields := strings.Fields(version)
	if len(fields) < 3 || fields[0] != "git" || fields[1] != "version" {
		return 0, 0, false
	}
	if _, err := fmt.Sscanf(fields[2], "%d.%d", &major, &minor); err != nil {
		return 0, 0, false
	}
	return major, minor, true
}
