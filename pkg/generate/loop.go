// Package generate runs the retry-and-validate loop that turns the
// generator's free-form answers into one grammar-conformant commit header.
package generate

import (
	"context"
	"fmt"

	"github.com/dlnilsson/gitmsg/pkg/grammar"
	"github.com/dlnilsson/gitmsg/pkg/i18n"
	"github.com/dlnilsson/gitmsg/pkg/llm"
	"github.com/dlnilsson/gitmsg/pkg/text"
)

// MaxAttempts bounds the loop; exhausting it is a fatal generation failure.
const MaxAttempts = 3

// ExhaustedError reports that no attempt produced a valid header.
type ExhaustedError struct {
	Attempts int
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("no valid commit message after %d attempts", e.Attempts)
}

// Options fixes the loop's inputs at entry. Lang selects the subject's
// natural language for the whole loop.
type Options struct {
	Lang    i18n.Lang
	Grammar grammar.Grammar

	// Payload is the change summary plus diffs, already truncated.
	Payload string
}

// Run drives the loop: draft, clean, validate, retry with the violation
// list, at most MaxAttempts times. The first valid candidate is returned
// immediately; otherwise the loop fails with an ExhaustedError.
func Run(ctx context.Context, completer llm.Completer, opts Options) (string, error) {
	conv := llm.NewConversation(
		BuildSystemPrompt(opts.Grammar, opts.Lang),
		BuildUserPrompt(opts.Payload),
	)

	for attempt := 1; attempt <= MaxAttempts; attempt++ {
		raw, err := completer.Complete(ctx, conv)
		if err != nil {
			return "", fmt.Errorf("generator call failed: %w", err)
		}

		candidate := text.CleanupModelMessage(raw)
		violations := opts.Grammar.Validate(candidate)
		if len(violations) == 0 {
			return candidate, nil
		}

		assistant := candidate
		if assistant == "" {
			assistant = emptyCandidate
		}
		conv.Append(llm.RoleAssistant, assistant)
		conv.Append(llm.RoleUser, buildRetryPrompt(candidate, violations))
	}
	return "", &ExhaustedError{Attempts: MaxAttempts}
}
