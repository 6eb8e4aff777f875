package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/dlnilsson/gitmsg/pkg/config"
	"github.com/dlnilsson/gitmsg/pkg/delivery"
	"github.com/dlnilsson/gitmsg/pkg/generate"
	"github.com/dlnilsson/gitmsg/pkg/git"
	"github.com/dlnilsson/gitmsg/pkg/grammar"
	"github.com/dlnilsson/gitmsg/pkg/i18n"
	"github.com/dlnilsson/gitmsg/pkg/llm"
	"github.com/dlnilsson/gitmsg/pkg/text"
	"github.com/dlnilsson/gitmsg/pkg/ui"
)

// maxPayloadChars caps the change payload embedded in the prompt.
const maxPayloadChars = 20000

// deps are the external collaborators the flow touches, swappable in tests.
type deps struct {
	insideWorkTree func() bool
	collectStatus  func() ([]git.StatusRecord, error)
	collectDiffs   func() (git.Diffs, error)
	loadEnv        func() *config.Env
	loadGrammar    func() grammar.Grammar
	newCompleter   func(env *config.Env) llm.Completer
	copyClipboard  func(command string) error
	startSpinner   func(message string) func()
	colorEnabled   func() bool
	stdout         io.Writer
	stderr         io.Writer
}

func defaultDeps() deps {
	return deps{
		insideWorkTree: git.InsideWorkTree,
		collectStatus:  git.CollectStatus,
		collectDiffs:   git.CollectDiffs,
		loadEnv:        config.Load,
		loadGrammar:    grammar.Load,
		newCompleter:   func(env *config.Env) llm.Completer { return llm.NewClient(env) },
		copyClipboard:  delivery.CopyToClipboard,
		startSpinner:   ui.StartSpinner,
		colorEnabled:   func() bool { return term.IsTerminal(int(os.Stdout.Fd())) },
		stdout:         os.Stdout,
		stderr:         os.Stderr,
	}
}

func noSpinner(string) func() { return func() {} }

// run is the one-shot flow: collect changes, generate, deliver.
func run(lang i18n.Lang, showSpinner bool) error {
	d := defaultDeps()
	if !showSpinner {
		d.startSpinner = noSpinner
	}
	return runFlow(lang, d)
}

func runFlow(lang i18n.Lang, d deps) error {
	if !d.insideWorkTree() {
		fmt.Fprintln(d.stderr, i18n.T(lang, i18n.KeyNotRepo))
		return git.ErrNotRepository
	}

	records, err := d.collectStatus()
	if err != nil {
		fmt.Fprintln(d.stderr, i18n.Tf(lang, i18n.KeyStatusFailed, err))
		return err
	}
	if len(records) == 0 {
		// Clean tree short-circuits before any diff or generator work.
		fmt.Fprintln(d.stdout, i18n.T(lang, i18n.KeyNoChanges))
		return nil
	}

	fmt.Fprintln(d.stdout, i18n.T(lang, i18n.KeyChangesHeader))
	fmt.Fprintln(d.stdout, git.RenderSummary(records, d.colorEnabled(), lang))

	diffs, err := d.collectDiffs()
	if err != nil {
		fmt.Fprintln(d.stderr, i18n.Tf(lang, i18n.KeyDiffFailed, err))
		return err
	}

	env := d.loadEnv()
	if env.APIKey == "" {
		fmt.Fprintln(d.stderr, i18n.T(lang, i18n.KeyNoAPIKey))
		return errors.New("missing API key")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stopSpinner := d.startSpinner(i18n.T(lang, i18n.KeyGenerating))
	message, err := generate.Run(ctx, d.newCompleter(env), generate.Options{
		Lang:    lang,
		Grammar: d.loadGrammar(),
		Payload: buildPayload(records, diffs, lang),
	})
	stopSpinner()
	if err != nil {
		var exhausted *generate.ExhaustedError
		if errors.As(err, &exhausted) {
			fmt.Fprintln(d.stderr, i18n.Tf(lang, i18n.KeyExhausted, exhausted.Attempts))
		} else {
			fmt.Fprintln(d.stderr, err.Error())
		}
		return err
	}

	command := delivery.FormatSuggestedCommand(message)
	fmt.Fprintln(d.stderr, i18n.T(lang, i18n.KeySuggestion))
	fmt.Fprintln(d.stdout, command)
	if err := d.copyClipboard(command); err != nil {
		fmt.Fprintln(d.stderr, i18n.Tf(lang, i18n.KeyClipboardWarn, err))
	} else {
		fmt.Fprintln(d.stderr, i18n.T(lang, i18n.KeyCopied))
	}
	return nil
}

// buildPayload renders the change set as one prompt block: the uncolored
// summary plus both diffs, truncated as a unit.
func buildPayload(records []git.StatusRecord, diffs git.Diffs, lang i18n.Lang) string {
	var b strings.Builder
	b.WriteString("Changed files:\n")
	b.WriteString(git.RenderSummary(records, false, lang))
	if strings.TrimSpace(diffs.Staged) != "" {
		b.WriteString("\n\nStaged diff:\n")
		b.WriteString(diffs.Staged)
	}
	if strings.TrimSpace(diffs.Unstaged) != "" {
		b.WriteString("\n\nUnstaged diff:\n")
		b.WriteString(diffs.Unstaged)
	}
	return text.Truncate(b.String(), maxPayloadChars)
}
