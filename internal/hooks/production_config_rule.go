package hooks

import (
	"fmt"
	"slices"
	"strings"
)

// productionConfigRule blocks edits and writes to production configuration files.
type productionConfigRule struct {
	protectedFiles []string
	modifyingTools []string
}

// NewProductionConfigRule creates a rule that blocks modifyingTools on any
// path containing one of protectedFiles.
func NewProductionConfigRule(protectedFiles, modifyingTools []string) Rule {
	return &productionConfigRule{
		protectedFiles: protectedFiles,
		modifyingTools: modifyingTools,
	}
}

// Name returns the unique identifier for this rule.
func (r *productionConfigRule) Name() string {
	return "protect-production-config"
}

// Description returns a human-readable description of what this rule does.
func (r *productionConfigRule) Description() string {
	return "Blocks edits and writes to production configuration files"
}

// Evaluate blocks the tool when it modifies a protected file.
func (r *productionConfigRule) Evaluate(input *ToolInput) (*RuleResult, error) {
	if !slices.Contains(r.modifyingTools, input.ToolName) {
		return NewAllowedResult(), nil
	}

	path := input.TargetPath()
	for _, marker := range r.protectedFiles {
		if marker != "" && strings.Contains(path, marker) {
			return NewBlockedResult(
				r.Name(),
				fmt.Sprintf("production configuration file %s cannot be modified", path),
			), nil
		}
	}

	return NewAllowedResult(), nil
}
