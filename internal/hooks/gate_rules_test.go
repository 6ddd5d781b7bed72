package hooks

import (
	"testing"

	"github.com/michael-freling/commit-hooks/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductionConfigRule_Evaluate(t *testing.T) {
	gate := config.Default().Gate
	rule := NewProductionConfigRule(gate.ProtectedFiles, gate.ModifyingTools)

	tests := []struct {
		name        string
		input       *ToolInput
		wantAllowed bool
	}{
		{
			name: "blocks edit of application-prod.yml",
			input: &ToolInput{ToolName: "Edit", ToolInput: ToolArgs{
				FilePath: "/repo/src/main/resources/application-prod.yml",
			}},
			wantAllowed: false,
		},
		{
			name: "blocks write of application-production.yml regardless of content",
			input: &ToolInput{ToolName: "Write", ToolInput: ToolArgs{
				Path:    "config/application-production.yml",
				Content: "",
			}},
			wantAllowed: false,
		},
		{
			name: "blocks multi edit",
			input: &ToolInput{ToolName: "MultiEdit", ToolInput: ToolArgs{
				FilePath: "application-prod.yml",
			}},
			wantAllowed: false,
		},
		{
			name: "allows read of production config",
			input: &ToolInput{ToolName: "Read", ToolInput: ToolArgs{
				FilePath: "application-prod.yml",
			}},
			wantAllowed: true,
		},
		{
			name: "allows edit of dev config",
			input: &ToolInput{ToolName: "Edit", ToolInput: ToolArgs{
				FilePath: "application-dev.yml",
			}},
			wantAllowed: true,
		},
		{
			name:        "allows edit without a path",
			input:       &ToolInput{ToolName: "Edit"},
			wantAllowed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := rule.Evaluate(tt.input)

			require.NoError(t, err)
			assert.Equal(t, tt.wantAllowed, got.Allowed)
			assert.Empty(t, got.Warnings)
			if !tt.wantAllowed {
				assert.Equal(t, "protect-production-config", got.RuleName)
				assert.Contains(t, got.Message, "cannot be modified")
			}
		})
	}
}

func TestLiveAPITestRule_Evaluate(t *testing.T) {
	rule := NewLiveAPITestRule(config.Default().Gate)
	const testPath = "/repo/src/test/java/com/shop/PaymentClientTest.java"

	tests := []struct {
		name        string
		input       *ToolInput
		wantWarning bool
	}{
		{
			name: "warns on live API call without @Disabled",
			input: &ToolInput{ToolName: "Write", ToolInput: ToolArgs{
				FilePath: testPath,
				Content:  `var url = "https://api.tosspayments.com/v1/payments";`,
			}},
			wantWarning: true,
		},
		{
			name: "quiet when test is disabled",
			input: &ToolInput{ToolName: "Write", ToolInput: ToolArgs{
				FilePath: testPath,
				Content:  "@Disabled\nclass PaymentClientTest { String u = \"api.tosspayments.com\"; }",
			}},
		},
		{
			name: "quiet without the API host",
			input: &ToolInput{ToolName: "Write", ToolInput: ToolArgs{
				FilePath: testPath,
				Content:  "class PaymentClientTest {}",
			}},
		},
		{
			name: "quiet for edits",
			input: &ToolInput{ToolName: "Edit", ToolInput: ToolArgs{
				FilePath: testPath,
				Content:  "api.tosspayments.com",
			}},
		},
		{
			name: "quiet outside test sources",
			input: &ToolInput{ToolName: "Write", ToolInput: ToolArgs{
				FilePath: "/repo/src/main/java/PaymentClientTest.java",
				Content:  "api.tosspayments.com",
			}},
		},
		{
			name: "quiet for non-test file names",
			input: &ToolInput{ToolName: "Write", ToolInput: ToolArgs{
				FilePath: "/repo/src/test/java/Fixtures.java",
				Content:  "api.tosspayments.com",
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := rule.Evaluate(tt.input)

			require.NoError(t, err)
			assert.True(t, got.Allowed)
			if tt.wantWarning {
				require.Len(t, got.Warnings, 1)
				assert.Equal(t, "live-api-test", got.Warnings[0].RuleName)
				assert.Contains(t, got.Warnings[0].Message, "@Disabled")
				return
			}
			assert.Empty(t, got.Warnings)
		})
	}
}

func TestNewGateRules(t *testing.T) {
	rules := NewGateRules(config.Default().Gate)

	names := make([]string, 0, len(rules))
	for _, r := range rules {
		names = append(names, r.Name())
		assert.NotEmpty(t, r.Description())
	}
	assert.Equal(t, []string{"protect-production-config", "live-api-test"}, names)
}
