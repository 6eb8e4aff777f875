package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dlnilsson/gitmsg/pkg/config"
	"github.com/dlnilsson/gitmsg/pkg/generate"
	"github.com/dlnilsson/gitmsg/pkg/git"
	"github.com/dlnilsson/gitmsg/pkg/grammar"
	"github.com/dlnilsson/gitmsg/pkg/i18n"
	"github.com/dlnilsson/gitmsg/pkg/llm"
)

// fixedCompleter answers every attempt with the same candidate.
type fixedCompleter struct {
	answer string
	calls  int
}

func (f *fixedCompleter) Complete(context.Context, *llm.Conversation) (string, error) {
	f.calls++
	return f.answer, nil
}

// testDeps wires a happy-path flow against recording stubs.
func testDeps(completer llm.Completer, stdout, stderr *bytes.Buffer) (deps, *int, *int) {
	diffCalls := new(int)
	clipCalls := new(int)
	return deps{
		insideWorkTree: func() bool { return true },
		collectStatus: func() ([]git.StatusRecord, error) {
			return []git.StatusRecord{{Code: " M", Path: "pkg/a.go"}}, nil
		},
		collectDiffs: func() (git.Diffs, error) {
			*diffCalls++
			return git.Diffs{Staged: "diff --git a/pkg/a.go b/pkg/a.go"}, nil
		},
		loadEnv:       func() *config.Env { return &config.Env{APIKey: "k", Model: "m"} },
		loadGrammar:   grammar.Default,
		newCompleter:  func(*config.Env) llm.Completer { return completer },
		copyClipboard: func(string) error { *clipCalls++; return nil },
		startSpinner:  noSpinner,
		colorEnabled:  func() bool { return false },
		stdout:        stdout,
		stderr:        stderr,
	}, diffCalls, clipCalls
}

func TestRunFlowCleanTreeShortCircuits(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	completer := &fixedCompleter{answer: "feat: never reached"}
	d, diffCalls, clipCalls := testDeps(completer, &stdout, &stderr)
	d.collectStatus = func() ([]git.StatusRecord, error) { return nil, nil }

	err := runFlow(i18n.LangEN, d)

	require.NoError(t, err, "clean tree is a successful run")
	assert.Zero(t, *diffCalls, "no diff read after an empty status")
	assert.Zero(t, completer.calls, "no generator call after an empty status")
	assert.Zero(t, *clipCalls)
	assert.Contains(t, stdout.String(), i18n.T(i18n.LangEN, i18n.KeyNoChanges))
}

func TestRunFlowClipboardFailureIsWarningOnly(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	completer := &fixedCompleter{answer: "feat(core): add retry loop"}
	d, _, _ := testDeps(completer, &stdout, &stderr)
	d.copyClipboard = func(string) error { return errors.New("no clipboard utility") }

	err := runFlow(i18n.LangEN, d)

	require.NoError(t, err, "clipboard failure never changes the exit status")
	assert.Contains(t, stdout.String(), `git commit -m "feat(core): add retry loop"`)
	assert.Contains(t, stderr.String(), "no clipboard utility")
}

func TestRunFlowSuggestsAndCopies(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	completer := &fixedCompleter{answer: `"fix: handle empty diff"`}
	d, diffCalls, clipCalls := testDeps(completer, &stdout, &stderr)

	err := runFlow(i18n.LangEN, d)

	require.NoError(t, err)
	assert.Equal(t, 1, *diffCalls)
	assert.Equal(t, 1, *clipCalls)
	assert.Contains(t, stdout.String(), `git commit -m "fix: handle empty diff"`)
	assert.Contains(t, stderr.String(), i18n.T(i18n.LangEN, i18n.KeyCopied))
}

func TestRunFlowNotARepository(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	completer := &fixedCompleter{answer: "feat: never reached"}
	d, _, _ := testDeps(completer, &stdout, &stderr)
	d.insideWorkTree = func() bool { return false }

	err := runFlow(i18n.LangZH, d)

	require.ErrorIs(t, err, git.ErrNotRepository)
	assert.Zero(t, completer.calls)
	assert.Contains(t, stderr.String(), i18n.T(i18n.LangZH, i18n.KeyNotRepo))
}

func TestRunFlowExhaustionIsFatal(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	completer := &fixedCompleter{answer: "never a valid header"}
	d, _, clipCalls := testDeps(completer, &stdout, &stderr)

	err := runFlow(i18n.LangEN, d)

	var exhausted *generate.ExhaustedError
	require.ErrorAs(t, err, &exhausted)
	assert.Equal(t, generate.MaxAttempts, completer.calls)
	assert.Zero(t, *clipCalls, "nothing is delivered after exhaustion")
	assert.Contains(t, stderr.String(),
		i18n.Tf(i18n.LangEN, i18n.KeyExhausted, generate.MaxAttempts))
}
