package hooks

import "github.com/michael-freling/commit-hooks/internal/config"

// Rule represents a rule that evaluates whether a tool usage should be allowed.
type Rule interface {
	// Name returns the unique identifier for this rule.
	Name() string

	// Description returns a human-readable description of what this rule does.
	Description() string

	// Evaluate checks if the tool input should be allowed.
	// Returns a RuleResult indicating whether to allow, warn, or block.
	Evaluate(input *ToolInput) (*RuleResult, error)
}

// NewGateRules returns the dispatch gate's rule table in evaluation order.
func NewGateRules(cfg config.GateConfig) []Rule {
	return []Rule{
		NewProductionConfigRule(cfg.ProtectedFiles, cfg.ModifyingTools),
		NewLiveAPITestRule(cfg),
	}
}
