package git

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dlnilsson/gitmsg/pkg/i18n"
)

func TestParseStatus(t *testing.T) {
	t.Parallel()

	records := ParseStatus(" M pkg/a.go\n?? notes.txt\nAM cmd/b.go\n\n")
	assert.Equal(t, []StatusRecord{
		{Code: " M", Path: "pkg/a.go"},
		{Code: "??", Path: "notes.txt"},
		{Code: "AM", Path: "cmd/b.go"},
	}, records)

	assert.Empty(t, ParseStatus(""))
}

func TestRenderSummaryLinePlain(t *testing.T) {
	t.Parallel()

	line := RenderSummaryLine(StatusRecord{Code: " M", Path: "pkg/a.go"}, false, i18n.LangEN)
	assert.Equal(t, "modified   [ M] pkg/a.go", line)

	line = RenderSummaryLine(StatusRecord{Code: "AM", Path: "b.go"}, false, i18n.LangEN)
	assert.Equal(t, "added+modified [AM] b.go", line)

	line = RenderSummaryLine(StatusRecord{Code: "??", Path: "c.go"}, false, i18n.LangZH)
	assert.Equal(t, "未跟踪        [??] c.go", line)
}

func TestRenderSummaryJoinsLines(t *testing.T) {
	t.Parallel()

	out := RenderSummary([]StatusRecord{
		{Code: " M", Path: "a"},
		{Code: "D ", Path: "b"},
	}, false, i18n.LangEN)
	assert.Equal(t, "modified   [ M] a\ndeleted    [D ] b", out)
}
