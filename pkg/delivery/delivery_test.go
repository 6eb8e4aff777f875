package delivery

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatSuggestedCommand(t *testing.T) {
	t.Parallel()

	got := FormatSuggestedCommand(`fix: handle $HOME and "quotes"`)
	assert.Equal(t, `git commit -m "fix: handle \$HOME and \"quotes\""`, got)
}

func TestFormatSuggestedCommandEscapesEverySpecial(t *testing.T) {
	t.Parallel()

	got := FormatSuggestedCommand("a\\b`c$d\"e")
	inner := strings.TrimSuffix(strings.TrimPrefix(got, `git commit -m "`), `"`)
	assert.Equal(t, "a\\\\b\\`c\\$d\\\"e", inner)
}

func TestFormatSuggestedCommandPlain(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `git commit -m "feat(core): add retry loop"`,
		FormatSuggestedCommand("feat(core): add retry loop"))
}
