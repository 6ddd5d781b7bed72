// Package config loads commit-hooks configuration.
// Configuration is resolved from (highest to lowest priority):
// 1. The --config flag
// 2. The COMMIT_HOOKS_CONFIG environment variable
// 3. Project config (.claude/commit-hooks.yaml in cwd)
// 4. Home config (~/.claude/commit-hooks.yaml)
// 5. Defaults
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable holding an explicit config path.
const EnvConfigPath = "COMMIT_HOOKS_CONFIG"

// FileName is the config file looked up under .claude/.
const FileName = "commit-hooks.yaml"

// History backends for reading HEAD's message.
const (
	HistoryCLI   = "cli"
	HistoryGoGit = "go-git"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config holds all commit-hooks configuration.
type Config struct {
	Signature SignatureConfig `yaml:"signature"`
	Git       GitConfig       `yaml:"git"`
	Gate      GateConfig      `yaml:"gate"`
	Log       LogConfig       `yaml:"log"`
}

// SignatureConfig identifies the automation whose signatures are scrubbed.
type SignatureConfig struct {
	// DisplayName is matched in Co-Authored-By trailers and emoji lines.
	DisplayName string `yaml:"display_name"`
	// Domain is the organization token matched in Co-Authored-By trailers.
	Domain string `yaml:"domain"`
	// Emoji opens a generated-with line.
	Emoji string `yaml:"emoji"`
	// Trigger is the substring that marks a commit command.
	Trigger string `yaml:"trigger"`
}

// GitConfig controls how the amend mode talks to git.
type GitConfig struct {
	// Timeout bounds every git subprocess.
	Timeout time.Duration `yaml:"timeout"`
	// History selects how HEAD's message is read: "cli" or "go-git".
	History string `yaml:"history"`
	// Lock serializes amends through a lock file in the git directory.
	Lock bool `yaml:"lock"`
	// Dir is the repository directory. Empty means the working directory.
	Dir string `yaml:"dir"`
}

// GateConfig holds the dispatch gate's rule table.
type GateConfig struct {
	// ProtectedFiles are path markers that may never be modified.
	ProtectedFiles []string `yaml:"protected_files"`
	// ModifyingTools are the tools that count as modifying a file.
	ModifyingTools []string `yaml:"modifying_tools"`
	// TestDir marks test sources.
	TestDir string `yaml:"test_dir"`
	// TestSuffix is the file name suffix of a test file.
	TestSuffix string `yaml:"test_suffix"`
	// WriteTool is the whole-file write tool checked for live API calls.
	WriteTool string `yaml:"write_tool"`
	// LiveAPIHosts are external hosts a test should not call unattended.
	LiveAPIHosts []string `yaml:"live_api_hosts"`
	// DisabledMarkers mark a test as disabled.
	DisabledMarkers []string `yaml:"disabled_markers"`
}

// LogConfig controls the optional diagnostic log file.
type LogConfig struct {
	// File mirrors diagnostics to a rotated file when set.
	File string `yaml:"file"`
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
	// MaxSize is the size in megabytes before rotation.
	MaxSize int `yaml:"max_size"`
	// MaxBackups is the number of rotated files kept.
	MaxBackups int `yaml:"max_backups"`
	// MaxAge is the number of days rotated files are kept.
	MaxAge int `yaml:"max_age"`
	// Compress gzips rotated files.
	Compress bool `yaml:"compress"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Signature: SignatureConfig{
			DisplayName: "Claude",
			Domain:      "anthropic",
			Emoji:       "🤖",
			Trigger:     "git commit",
		},
		Git: GitConfig{
			Timeout: 10 * time.Second,
			History: HistoryCLI,
			Lock:    true,
		},
		Gate: GateConfig{
			ProtectedFiles:  []string{"application-prod.yml", "application-production.yml"},
			ModifyingTools:  []string{"Edit", "Write", "MultiEdit"},
			TestDir:         "src/test/",
			TestSuffix:      "Test.java",
			WriteTool:       "Write",
			LiveAPIHosts:    []string{"api.tosspayments.com"},
			DisabledMarkers: []string{"@Disabled"},
		},
		Log: LogConfig{
			Level:      "info",
			MaxSize:    10,
			MaxBackups: 5,
			MaxAge:     30,
			Compress:   true,
		},
	}
}

// Load reads the config at path over the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path) // #nosec G304 - path comes from flag, env or fixed locations
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve finds the config file to use. It returns an empty path when no
// file exists and the defaults apply.
func Resolve(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	if envPath := os.Getenv(EnvConfigPath); envPath != "" {
		return envPath
	}

	var candidates []string
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, ".claude", FileName))
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".claude", FileName))
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return ""
}

// LoadResolved resolves and loads the configuration. When loading fails the
// defaults are returned together with the error so callers can log it and
// carry on.
func LoadResolved(flagPath string) (*Config, string, error) {
	path := Resolve(flagPath)
	if path == "" {
		return Default(), "", nil
	}

	cfg, err := Load(path)
	if err != nil {
		return Default(), path, err
	}
	return cfg, path, nil
}

// Validate checks the configuration for values the hooks cannot work with.
func (c *Config) Validate() error {
	if c.Signature.DisplayName == "" {
		return fmt.Errorf("%w: signature.display_name cannot be empty", ErrInvalid)
	}
	if c.Signature.Domain == "" {
		return fmt.Errorf("%w: signature.domain cannot be empty", ErrInvalid)
	}
	if c.Signature.Emoji == "" {
		return fmt.Errorf("%w: signature.emoji cannot be empty", ErrInvalid)
	}
	if c.Signature.Trigger == "" {
		return fmt.Errorf("%w: signature.trigger cannot be empty", ErrInvalid)
	}
	if c.Git.Timeout <= 0 {
		return fmt.Errorf("%w: git.timeout must be positive, got %s", ErrInvalid, c.Git.Timeout)
	}
	switch c.Git.History {
	case HistoryCLI, HistoryGoGit:
	default:
		return fmt.Errorf("%w: git.history must be %q or %q, got %q", ErrInvalid, HistoryCLI, HistoryGoGit, c.Git.History)
	}
	return c.Gate.validate()
}

// validate rejects empty markers. An empty marker matches every path or
// every file, silently widening the rule it belongs to.
func (g GateConfig) validate() error {
	required := []struct {
		key   string
		value string
	}{
		{key: "gate.test_dir", value: g.TestDir},
		{key: "gate.test_suffix", value: g.TestSuffix},
		{key: "gate.write_tool", value: g.WriteTool},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return fmt.Errorf("%w: %s cannot be empty", ErrInvalid, r.key)
		}
	}

	lists := []struct {
		key    string
		values []string
	}{
		{key: "gate.protected_files", values: g.ProtectedFiles},
		{key: "gate.modifying_tools", values: g.ModifyingTools},
		{key: "gate.live_api_hosts", values: g.LiveAPIHosts},
		{key: "gate.disabled_markers", values: g.DisabledMarkers},
	}
	for _, l := range lists {
		for i, v := range l.values {
			if strings.TrimSpace(v) == "" {
				return fmt.Errorf("%w: %s[%d] cannot be empty", ErrInvalid, l.key, i)
			}
		}
	}
	return nil
}
