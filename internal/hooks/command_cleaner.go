package hooks

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/michael-freling/commit-hooks/internal/signature"
)

// Rewrite is the replacement tool_input the host substitutes before running
// the tool.
type Rewrite struct {
	Command string `json:"command"`
}

// Write emits the rewrite as a single line of JSON.
func (r *Rewrite) Write(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(r); err != nil {
		return fmt.Errorf("failed to write rewrite: %w", err)
	}
	return nil
}

// CommandCleaner strips signatures from a pending git commit command.
type CommandCleaner struct {
	trigger    string
	normalizer *signature.Normalizer
}

// NewCommandCleaner creates a CommandCleaner. The normalizer should be built
// with signature.ScopeCommand.
func NewCommandCleaner(trigger string, normalizer *signature.Normalizer) *CommandCleaner {
	return &CommandCleaner{
		trigger:    trigger,
		normalizer: normalizer,
	}
}

// Clean returns the rewrite for input, or nil when the command is not a
// commit or carries no signature.
func (c *CommandCleaner) Clean(input *ToolInput) *Rewrite {
	command := input.Command()
	if !IsCommitCommand(command, c.trigger) {
		return nil
	}

	result := c.normalizer.NormalizeCommand(command)
	if !result.Changed {
		return nil
	}

	return &Rewrite{Command: result.Cleaned}
}
