package hooks

import (
	"fmt"
	"strings"

	"github.com/michael-freling/commit-hooks/internal/config"
)

// liveAPITestRule warns when a newly written test calls a live external API
// without being disabled.
type liveAPITestRule struct {
	testDir         string
	testSuffix      string
	writeTool       string
	hosts           []string
	disabledMarkers []string
}

// NewLiveAPITestRule creates the live API test rule from the gate config.
func NewLiveAPITestRule(cfg config.GateConfig) Rule {
	return &liveAPITestRule{
		testDir:         cfg.TestDir,
		testSuffix:      cfg.TestSuffix,
		writeTool:       cfg.WriteTool,
		hosts:           cfg.LiveAPIHosts,
		disabledMarkers: cfg.DisabledMarkers,
	}
}

// Name returns the unique identifier for this rule.
func (r *liveAPITestRule) Name() string {
	return "live-api-test"
}

// Description returns a human-readable description of what this rule does.
func (r *liveAPITestRule) Description() string {
	return "Warns when a written test calls a live external API without being disabled"
}

// Evaluate never blocks; it only attaches a warning.
func (r *liveAPITestRule) Evaluate(input *ToolInput) (*RuleResult, error) {
	if input.ToolName != r.writeTool {
		return NewAllowedResult(), nil
	}

	path := input.TargetPath()
	if !strings.Contains(path, r.testDir) || !strings.HasSuffix(path, r.testSuffix) {
		return NewAllowedResult(), nil
	}

	content := input.Content()
	host := r.calledHost(content)
	if host == "" || r.isDisabled(content) {
		return NewAllowedResult(), nil
	}

	return NewWarningResult(
		r.Name(),
		fmt.Sprintf("test %s calls %s; consider adding %s", path, host, strings.Join(r.disabledMarkers, " or ")),
	), nil
}

func (r *liveAPITestRule) calledHost(content string) string {
	for _, host := range r.hosts {
		if host != "" && strings.Contains(content, host) {
			return host
		}
	}
	return ""
}

func (r *liveAPITestRule) isDisabled(content string) bool {
	for _, marker := range r.disabledMarkers {
		if marker != "" && strings.Contains(content, marker) {
			return true
		}
	}
	return false
}
