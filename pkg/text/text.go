// Package text holds the small pure string transforms shared across gitmsg:
// payload truncation, whitespace normalization, model-output cleanup and
// shell escaping.
package text

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// TruncationMarker is appended whenever a payload is cut at its size cap.
const TruncationMarker = "\n... [truncated]"

var whitespaceRun = regexp.MustCompile(`\s+`)

// Truncate caps s at limit characters and appends TruncationMarker when
// content was dropped. Runes are never split, and truncating an
// already-truncated string is a no-op.
func Truncate(s string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit]) + TruncationMarker
}

// CollapseWhitespace folds every run of whitespace (including newlines) into
// a single space and trims the ends.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}

// CleanupModelMessage normalizes a raw model candidate into a bare header
// line: whitespace is collapsed, then any backtick fencing is stripped, then
// one symmetric pair of double quotes.
func CleanupModelMessage(s string) string {
	s = CollapseWhitespace(s)
	s = strings.TrimSpace(strings.Trim(s, "`"))
	if strings.HasPrefix(s, `"`) {
		s = s[1:]
	}
	if strings.HasSuffix(s, `"`) {
		s = s[:len(s)-1]
	}
	return strings.TrimSpace(s)
}

// EscapeForDoubleQuotes backslash-escapes the characters that are special
// inside a double-quoted shell string.
func EscapeForDoubleQuotes(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '\\', '"', '`', '$':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
