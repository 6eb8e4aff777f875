package git

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dlnilsson/gitmsg/pkg/i18n"
)

// labelWidth is the fixed column the joined kind labels are padded to.
const labelWidth = 10

var kindStyles = map[ChangeKind]lipgloss.Style{
	KindDeleted:    lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	KindUnmerged:   lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	KindModified:   lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	KindAdded:      lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	KindRenamed:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	KindCopied:     lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	KindTypeChange: lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	KindUntracked:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	KindIgnored:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	KindOther:      lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
}

// RenderSummaryLine renders one status record as
// "<localized-label-padded> [<code>] <path>". With color enabled the label
// and the bracketed code take the style of the record's dominant kind.
// Pure rendering, no subprocess work.
func RenderSummaryLine(rec StatusRecord, colorEnabled bool, lang i18n.Lang) string {
	kinds := Classify(rec.Code)

	labels := make([]string, len(kinds))
	for i, kind := range kinds {
		labels[i] = i18n.KindLabel(lang, string(kind))
	}
	label := padLabel(strings.Join(labels, "+"))
	code := "[" + rec.Code + "]"

	if colorEnabled {
		style := kindStyles[DominantKind(kinds)]
		label = style.Render(label)
		code = style.Render(code)
	}
	return label + " " + code + " " + rec.Path
}

// RenderSummary renders all records, one line each.
func RenderSummary(records []StatusRecord, colorEnabled bool, lang i18n.Lang) string {
	lines := make([]string, len(records))
	for i, rec := range records {
		lines[i] = RenderSummaryLine(rec, colorEnabled, lang)
	}
	return strings.Join(lines, "\n")
}

// padLabel right-pads to labelWidth runes; over-long labels pass through.
func padLabel(label string) string {
	if n := len([]rune(label)); n < labelWidth {
		return label + strings.Repeat(" ", labelWidth-n)
	}
	return label
}
