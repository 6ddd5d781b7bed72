package hooks

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// ToolInput represents the hook payload the host pipes to stdin.
type ToolInput struct {
	ToolName  string   `json:"tool_name"`
	ToolInput ToolArgs `json:"tool_input"`
}

// ToolArgs holds the tool_input fields the hooks consume. Every field is
// optional; which ones are set depends on the tool.
type ToolArgs struct {
	Command  string            `json:"command,omitempty"`
	Path     string            `json:"path,omitempty"`
	FilePath string            `json:"file_path,omitempty"`
	Args     []json.RawMessage `json:"args,omitempty"`
	Content  string            `json:"content,omitempty"`
}

// ParseToolInput reads the whole stream and decodes it as a hook payload.
func ParseToolInput(reader io.Reader) (*ToolInput, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	var input ToolInput
	if err := json.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("failed to decode JSON: %w", err)
	}

	if input.ToolName == "" {
		return nil, fmt.Errorf("tool_name is required")
	}

	return &input, nil
}

// Command returns the shell command, or "" for tools that have none.
func (t *ToolInput) Command() string {
	return t.ToolInput.Command
}

// Content returns the content being written, or "".
func (t *ToolInput) Content() string {
	return t.ToolInput.Content
}

// TargetPath resolves the file a tool acts on: path, then file_path, then
// the first positional argument, then "".
func (t *ToolInput) TargetPath() string {
	if t.ToolInput.Path != "" {
		return t.ToolInput.Path
	}
	if t.ToolInput.FilePath != "" {
		return t.ToolInput.FilePath
	}
	if len(t.ToolInput.Args) > 0 {
		var first string
		if err := json.Unmarshal(t.ToolInput.Args[0], &first); err == nil {
			return first
		}
	}
	return ""
}

// IsCommitCommand reports whether command contains trigger. This is a plain
// substring test: "echo 'git commit'" counts as a commit.
func IsCommitCommand(command, trigger string) bool {
	return trigger != "" && strings.Contains(command, trigger)
}
