package command

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewGitRunner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRunner := NewMockRunner(ctrl)
	got := NewGitRunner(mockRunner)

	require.NotNil(t, got)
}

func TestGitRunner_LastCommitMessage(t *testing.T) {
	tests := []struct {
		name        string
		dir         string
		setupMock   func(*MockRunner)
		want        string
		wantErr     bool
		wantErrIs   error
		errContains string
	}{
		{
			name: "returns message",
			dir:  "/test/repo",
			setupMock: func(m *MockRunner) {
				m.EXPECT().
					RunInDir(gomock.Any(), "/test/repo", "git", "log", "-1", "--format=%B").
					Return("feat: add x\n\nCo-Authored-By: Claude <noreply@anthropic.com>", "", nil)
			},
			want: "feat: add x\n\nCo-Authored-By: Claude <noreply@anthropic.com>",
		},
		{
			name: "empty repository",
			dir:  "/test/repo",
			setupMock: func(m *MockRunner) {
				m.EXPECT().
					RunInDir(gomock.Any(), "/test/repo", "git", "log", "-1", "--format=%B").
					Return("", "fatal: your current branch 'main' does not have any commits yet", fmt.Errorf("exit status 128"))
			},
			wantErr:   true,
			wantErrIs: ErrNoCommits,
		},
		{
			name: "not a repository",
			dir:  "/test/repo",
			setupMock: func(m *MockRunner) {
				m.EXPECT().
					RunInDir(gomock.Any(), "/test/repo", "git", "log", "-1", "--format=%B").
					Return("", "fatal: not a git repository", fmt.Errorf("exit status 128"))
			},
			wantErr:     true,
			errContains: "failed to read last commit message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRunner := NewMockRunner(ctrl)
			tt.setupMock(mockRunner)

			got, err := NewGitRunner(mockRunner).LastCommitMessage(context.Background(), tt.dir)

			if tt.wantErr {
				require.Error(t, err)
				if tt.wantErrIs != nil {
					assert.ErrorIs(t, err, tt.wantErrIs)
				}
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGitRunner_AmendCommitMessage(t *testing.T) {
	tests := []struct {
		name        string
		message     string
		setupMock   func(*MockRunner)
		wantErr     bool
		wantErrIs   error
		errContains string
	}{
		{
			name:    "amends with escaped message",
			message: `fix "quoted" thing`,
			setupMock: func(m *MockRunner) {
				m.EXPECT().
					RunInDir(gomock.Any(), "", "sh", "-c", `git commit --amend --only -m "fix \"quoted\" thing"`).
					Return("", "", nil)
			},
		},
		{
			name:        "rejects empty message",
			message:     "  \n",
			setupMock:   func(m *MockRunner) {},
			wantErr:     true,
			errContains: "cannot be empty",
		},
		{
			name:    "reports amend failure",
			message: "fix",
			setupMock: func(m *MockRunner) {
				m.EXPECT().
					RunInDir(gomock.Any(), "", "sh", "-c", `git commit --amend --only -m "fix"`).
					Return("", "error: cannot lock ref", fmt.Errorf("exit status 1"))
			},
			wantErr:     true,
			errContains: "cannot lock ref",
		},
		{
			name:    "nothing to amend",
			message: "fix",
			setupMock: func(m *MockRunner) {
				m.EXPECT().
					RunInDir(gomock.Any(), "", "sh", "-c", gomock.Any()).
					Return("", "fatal: You have nothing to amend. unknown revision or path not in the working tree", fmt.Errorf("exit status 128"))
			},
			wantErr:   true,
			wantErrIs: ErrNoCommits,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRunner := NewMockRunner(ctrl)
			tt.setupMock(mockRunner)

			err := NewGitRunner(mockRunner).AmendCommitMessage(context.Background(), "", tt.message)

			if tt.wantErr {
				require.Error(t, err)
				if tt.wantErrIs != nil {
					assert.ErrorIs(t, err, tt.wantErrIs)
				}
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestGitRunner_GitDir(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(*MockRunner)
		want      string
		wantErr   bool
	}{
		{
			name: "returns cleaned path",
			setupMock: func(m *MockRunner) {
				m.EXPECT().
					RunInDir(gomock.Any(), "/repo", "git", "rev-parse", "--absolute-git-dir").
					Return("/repo/.git/", "", nil)
			},
			want: "/repo/.git",
		},
		{
			name: "fails outside a repository",
			setupMock: func(m *MockRunner) {
				m.EXPECT().
					RunInDir(gomock.Any(), "/repo", "git", "rev-parse", "--absolute-git-dir").
					Return("", "fatal: not a git repository", fmt.Errorf("exit status 128"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRunner := NewMockRunner(ctrl)
			tt.setupMock(mockRunner)

			got, err := NewGitRunner(mockRunner).GitDir(context.Background(), "/repo")

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEscapeDoubleQuoted(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "fix bug", want: "fix bug"},
		{name: "double quotes", input: `say "hi"`, want: `say \"hi\"`},
		{name: "backslash before quote", input: `a\"b`, want: `a\\\"b`},
		{name: "dollar and backtick", input: "cost $5 `date`", want: "cost \\$5 \\`date\\`"},
		{name: "newlines kept", input: "a\n\nb", want: "a\n\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeDoubleQuoted(tt.input))
		})
	}
}

func TestAmendCommandLine_RoundTripsThroughShell(t *testing.T) {
	message := "fix: \"quoted\" $HOME `whoami` \\ done\n\nbody"

	stdout, _, err := NewRunner().RunInDir(context.Background(), "", "sh", "-c",
		`printf '%s' `+fmt.Sprintf(`"%s"`, EscapeDoubleQuoted(message)))

	require.NoError(t, err)
	assert.Equal(t, message, stdout)
	assert.Equal(t, `git commit --amend --only -m "x\"y"`, AmendCommandLine(`x"y`))
}
