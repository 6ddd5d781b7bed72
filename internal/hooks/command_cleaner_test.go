package hooks

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/michael-freling/commit-hooks/internal/signature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCommandCleaner() *CommandCleaner {
	patterns := signature.MustPatternSet(signature.DefaultIdentity(), signature.ScopeCommand)
	return NewCommandCleaner("git commit", signature.NewNormalizer(patterns))
}

func TestCommandCleaner_Clean(t *testing.T) {
	tests := []struct {
		name    string
		command string
		want    *Rewrite
	}{
		{
			name:    "not a commit",
			command: "ls -la",
			want:    nil,
		},
		{
			name:    "commit without signature",
			command: `git commit -m "fix: typo"`,
			want:    nil,
		},
		{
			name:    "commit with trailer",
			command: "git commit -m \"fix: typo\n\nCo-Authored-By: Claude <noreply@anthropic.com>\"",
			want:    &Rewrite{Command: `git commit -m "fix: typo"`},
		},
		{
			name:    "chained commit with emoji line",
			command: "git add -A && git commit -m \"feat\n\n🤖 Generated with Claude Code\" && git push",
			want:    &Rewrite{Command: `git add -A && git commit -m "feat" && git push`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := &ToolInput{ToolName: "Bash", ToolInput: ToolArgs{Command: tt.command}}

			got := newTestCommandCleaner().Clean(input)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCommandCleaner_Clean_Idempotent(t *testing.T) {
	cleaner := newTestCommandCleaner()
	input := &ToolInput{ToolName: "Bash", ToolInput: ToolArgs{
		Command: "git commit -m \"$(cat <<'EOF'\nfeat\n\nCo-Authored-By: Claude <noreply@anthropic.com>\nEOF\n)\"",
	}}

	first := cleaner.Clean(input)
	require.NotNil(t, first)

	second := cleaner.Clean(&ToolInput{ToolName: "Bash", ToolInput: ToolArgs{Command: first.Command}})
	assert.Nil(t, second)
}

func TestRewrite_Write(t *testing.T) {
	var buf bytes.Buffer
	rewrite := &Rewrite{Command: "git commit -m \"a <b> & c\"\nEOF"}

	require.NoError(t, rewrite.Write(&buf))

	out := buf.String()
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("\n")), "single line")
	assert.Contains(t, out, "<b> & c")

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, map[string]string{"command": rewrite.Command}, decoded)
}
