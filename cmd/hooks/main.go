package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/michael-freling/commit-hooks/internal/config"
	"github.com/michael-freling/commit-hooks/internal/hooks"
	"github.com/michael-freling/commit-hooks/internal/logging"
	"github.com/michael-freling/commit-hooks/internal/signature"
	"github.com/spf13/cobra"
)

// exitBlock is the status the host reads as a hard deny.
const exitBlock = 2

// newGitHelper is replaced in tests.
var newGitHelper = hooks.NewGitHelper

// exitError carries a deliberate non-zero exit status out of a command.
type exitError struct {
	code   int
	reason string
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit %d: %s", e.code, e.reason)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "commit-hooks",
		Short:         "Claude Code hooks that scrub commit signatures and guard tool usage",
		Long:          `A CLI tool invoked by Claude Code hooks. It removes automated co-authorship signatures from git commits and blocks or warns on tool usage that touches protected files.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("config", "", "path to the configuration file")
	rootCmd.PersistentFlags().String("log-file", "", "mirror diagnostics to this rotated log file")

	rootCmd.AddCommand(
		newCleanCommandCmd(),
		newCleanCommitCmd(),
		newPreToolUseCmd(),
	)

	return rootCmd
}

func newCleanCommandCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean-command",
		Short: "Remove signatures from a git commit command before it runs",
		Long:  `Reads a PreToolUse payload from stdin. When the Bash command is a git commit carrying a co-authorship signature, prints {"command": "<cleaned>"} so the host runs the cleaned command. Always exits 0.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHook(cmd, "clean-command", func(env *hookEnv) error {
				input, err := hooks.ParseToolInput(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("failed to parse tool input: %w", err)
				}

				patterns, err := signature.NewPatternSet(env.identity(), signature.ScopeCommand)
				if err != nil {
					return err
				}

				cleaner := hooks.NewCommandCleaner(env.cfg.Signature.Trigger, signature.NewNormalizer(patterns))
				rewrite := cleaner.Clean(input)
				if rewrite == nil {
					env.logger.Debug("no signature to remove", "tool", input.ToolName)
					return nil
				}

				env.logger.Info("removed signature from commit command")
				return rewrite.Write(cmd.OutOrStdout())
			})
		},
	}
}

func newCleanCommitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean-commit",
		Short: "Remove signatures from the commit that was just created",
		Long:  `Reads a PostToolUse payload from stdin. When the Bash command was a git commit, amends HEAD's message without co-authorship signatures. HEAD must already be the new commit. Always exits 0.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHook(cmd, "clean-commit", func(env *hookEnv) error {
				input, err := hooks.ParseToolInput(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("failed to parse tool input: %w", err)
				}

				patterns, err := signature.NewPatternSet(env.identity(), signature.ScopeMessage)
				if err != nil {
					return err
				}

				amender := hooks.NewCommitAmender(
					newGitHelper(env.cfg.Git),
					signature.NewNormalizer(patterns),
					env.cfg.Signature.Trigger,
					hooks.WithTimeout(env.cfg.Git.Timeout),
					hooks.WithLock(env.cfg.Git.Lock),
				)

				result, err := amender.Run(cmd.Context(), input)
				if err != nil {
					return err
				}
				switch {
				case result == nil:
					env.logger.Debug("not a commit command", "tool", input.ToolName)
				case result.Amended:
					env.logger.Info("removed signature from HEAD commit")
				default:
					env.logger.Info("no signature to remove from HEAD commit")
				}
				return nil
			})
		},
	}
}

func newPreToolUseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pre-tool-use",
		Short: "Evaluate gate rules before tool execution",
		Long:  `Reads tool input from stdin as JSON and evaluates the gate rules. Returns exit code 0 to allow, exit code 2 to block. Warnings are logged and never block.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHook(cmd, "pre-tool-use", func(env *hookEnv) error {
				input, err := hooks.ParseToolInput(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("failed to parse tool input: %w", err)
				}
				env.logger.Info("evaluating gate", "tool", input.ToolName, "path", input.TargetPath())

				engine := hooks.NewRuleEngine(hooks.NewGateRules(env.cfg.Gate)...)
				result, err := engine.Evaluate(input)
				if err != nil {
					return fmt.Errorf("failed to evaluate rules: %w", err)
				}

				for _, w := range result.Warnings {
					env.logger.Warn(w.Message, "rule", w.RuleName)
				}

				if !result.Allowed {
					fmt.Fprintf(cmd.ErrOrStderr(), "Blocked by rule %s: %s\n", result.RuleName, result.Message)
					return &exitError{code: exitBlock, reason: result.Message}
				}

				env.logger.Info("all rules passed")
				return nil
			})
		},
	}
}

// hookEnv is the per-invocation configuration and logger.
type hookEnv struct {
	cfg    *config.Config
	logger *logging.Logger
}

func (e *hookEnv) identity() signature.Identity {
	return signature.Identity{
		DisplayName: e.cfg.Signature.DisplayName,
		Domain:      e.cfg.Signature.Domain,
		Emoji:       e.cfg.Signature.Emoji,
	}
}

func newHookEnv(cmd *cobra.Command) *hookEnv {
	cfg, path, cfgErr := config.LoadResolved(flagString(cmd, "config"))
	if logFile := flagString(cmd, "log-file"); logFile != "" {
		cfg.Log.File = logFile
	}

	logger := logging.New(cmd.ErrOrStderr(), cfg.Log)
	if cfgErr != nil {
		logger.Warn("using default configuration", "path", path, "error", cfgErr)
	}
	return &hookEnv{cfg: cfg, logger: logger}
}

// runHook runs fn so that every failure, including a panic, ends in an
// allow. Only an exitError changes the exit status.
func runHook(cmd *cobra.Command, name string, fn func(env *hookEnv) error) (err error) {
	env := newHookEnv(cmd)
	defer func() { _ = env.logger.Close() }()

	defer func() {
		if r := recover(); r != nil {
			env.logger.Error("hook panicked, allowing", "hook", name, "panic", r)
			err = nil
		}
	}()

	if hookErr := fn(env); hookErr != nil {
		var exitErr *exitError
		if errors.As(hookErr, &exitErr) {
			return hookErr
		}
		env.logger.Warn("hook failed, allowing", "hook", name, "error", hookErr)
	}
	return nil
}

func flagString(cmd *cobra.Command, name string) string {
	value, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return value
}
