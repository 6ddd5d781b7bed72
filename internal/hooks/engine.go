package hooks

import "fmt"

// RuleEngine evaluates an ordered rule table.
type RuleEngine struct {
	rules []Rule
}

// NewRuleEngine creates a new rule engine with the given rules.
func NewRuleEngine(rules ...Rule) *RuleEngine {
	return &RuleEngine{
		rules: rules,
	}
}

// Evaluate evaluates the rules in order against the tool input.
// It stops at the first blocking result. Warnings from the rules evaluated
// up to that point are carried on the returned result.
func (e *RuleEngine) Evaluate(input *ToolInput) (*RuleResult, error) {
	if input == nil {
		return nil, fmt.Errorf("input cannot be nil")
	}

	var warnings []Warning
	for _, rule := range e.rules {
		result, err := rule.Evaluate(input)
		if err != nil {
			return nil, fmt.Errorf("rule %s failed: %w", rule.Name(), err)
		}
		if result == nil {
			return nil, fmt.Errorf("rule %s returned no result", rule.Name())
		}

		warnings = append(warnings, result.Warnings...)
		if !result.Allowed {
			result.Warnings = warnings
			return result, nil
		}
	}

	result := NewAllowedResult()
	result.Warnings = warnings
	return result, nil
}
