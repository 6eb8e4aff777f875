package generate

import (
	"strconv"
	"strings"

	"github.com/dlnilsson/gitmsg/pkg/grammar"
	"github.com/dlnilsson/gitmsg/pkg/i18n"
)

// emptyCandidate stands in for a blank model answer inside the retry
// instruction and the appended assistant turn, so no transport projection
// ever carries an empty message body.
const emptyCandidate = "(empty)"

// BuildSystemPrompt writes the persona instruction: exactly one commit
// header conforming to the grammar, subject in the selected language, no
// decoration. The grammar and language are fixed for the whole loop.
func BuildSystemPrompt(g grammar.Grammar, lang i18n.Lang) string {
	var b strings.Builder
	b.WriteString("You write git commit messages. Produce exactly one conventional commit header and nothing else.\n")
	b.WriteString("Rules:\n")
	b.WriteString("- Format: type(scope): subject  or  type: subject\n")
	b.WriteString("- Allowed types (lower-case only): ")
	b.WriteString(strings.Join(g.Types, ", "))
	b.WriteString("\n- The whole header must be at most ")
	b.WriteString(strconv.Itoa(g.MaxHeaderLength))
	b.WriteString(" characters.\n")
	b.WriteString("- Write the subject in ")
	b.WriteString(lang.SubjectLanguage())
	b.WriteString(".\n")
	b.WriteString("- No trailing period, no markdown, no backticks, no surrounding quotes, no explanation.")
	return b.String()
}

// BuildUserPrompt embeds the already size-capped change payload.
func BuildUserPrompt(payload string) string {
	var b strings.Builder
	b.WriteString("Write one commit header for the following pending changes.\n\n")
	b.WriteString(payload)
	return b.String()
}

// buildRetryPrompt embeds the rejected candidate and the bullet-joined
// violation list and asks for exactly one corrected header.
func buildRetryPrompt(candidate string, violations []string) string {
	if candidate == "" {
		candidate = emptyCandidate
	}
	var b strings.Builder
	b.WriteString("Your previous answer was rejected.\n")
	b.WriteString("Previous answer: ")
	b.WriteString(candidate)
	b.WriteString("\nViolations:\n")
	for _, v := range violations {
		b.WriteString("- ")
		b.WriteString(v)
		b.WriteString("\n")
	}
	b.WriteString("Reply with exactly one corrected commit header and nothing else.")
	return b.String()
}
