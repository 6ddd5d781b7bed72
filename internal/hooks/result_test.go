package hooks

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAllowedResult(t *testing.T) {
	assert.Equal(t, &RuleResult{Allowed: true}, NewAllowedResult())
}

func TestNewBlockedResult(t *testing.T) {
	tests := []struct {
		name     string
		ruleName string
		message  string
		want     *RuleResult
	}{
		{
			name:     "creates blocked result with message",
			ruleName: "test-rule",
			message:  "test blocked message",
			want: &RuleResult{
				Allowed:  false,
				Message:  "test blocked message",
				RuleName: "test-rule",
			},
		},
		{
			name:     "creates blocked result with empty message",
			ruleName: "test-rule",
			message:  "",
			want: &RuleResult{
				Allowed:  false,
				RuleName: "test-rule",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewBlockedResult(tt.ruleName, tt.message))
		})
	}
}

func TestNewWarningResult(t *testing.T) {
	got := NewWarningResult("live-api-test", "add @Disabled")

	assert.True(t, got.Allowed)
	assert.Empty(t, got.RuleName)
	assert.Equal(t, []Warning{{RuleName: "live-api-test", Message: "add @Disabled"}}, got.Warnings)
}
