// Package grammar encapsulates the conventional-commit header rules gitmsg
// enforces: the allowed type tokens, the structural shape and the maximum
// header length. The rule set can be overridden with a TOML file; anything
// missing or malformed falls back to the built-in defaults.
package grammar

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
)

// Grammar is the rule set one run validates against. Immutable after load.
type Grammar struct {
	Types           []string `toml:"types"`
	MaxHeaderLength int      `toml:"max_header_length"`
}

// headerPattern requires "type(scope): subject" or "type: subject", with an
// optional breaking-change marker. The type token casing is checked
// separately so its violation reads better.
var headerPattern = regexp.MustCompile(`^([A-Za-z]+)(\([^()]+\))?!?: \S.*$`)

// Default returns the built-in rule set.
func Default() Grammar {
	return Grammar{
		Types: []string{
			"build", "chore", "ci", "docs", "feat", "fix",
			"perf", "refactor", "revert", "style", "test",
		},
		MaxHeaderLength: 100,
	}
}

// RulePath returns the location of the optional rule file,
// <user config dir>/gitmsg/grammar.toml.
func RulePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "gitmsg", "grammar.toml"), nil
}

// Load reads the rule file once at startup. An absent, unreadable or
// malformed file yields the defaults; a present file only overrides the
// fields it sets to usable values.
func Load() Grammar {
	path, err := RulePath()
	if err != nil {
		return Default()
	}
	return LoadFile(path)
}

// LoadFile is Load with an explicit path, for tests.
func LoadFile(path string) Grammar {
	g := Default()
	var override Grammar
	if _, err := toml.DecodeFile(path, &override); err != nil {
		return g
	}
	if len(override.Types) > 0 {
		g.Types = override.Types
	}
	if override.MaxHeaderLength > 0 {
		g.MaxHeaderLength = override.MaxHeaderLength
	}
	return g
}

// Validate checks a candidate header and returns one human-readable string
// per violated rule, in stable rule-evaluation order. An empty result means
// the candidate is accepted.
func (g Grammar) Validate(message string) []string {
	if message == "" {
		return []string{"commit message is empty"}
	}

	var violations []string
	match := headerPattern.FindStringSubmatch(message)
	if match == nil {
		violations = append(violations,
			`header must match "type(scope): subject" or "type: subject"`)
	} else if typ := match[1]; !slices.Contains(g.Types, typ) {
		violations = append(violations, fmt.Sprintf(
			"type %q is not allowed; use one of (lower-case): %s",
			typ, strings.Join(g.Types, ", ")))
	}
	if n := utf8.RuneCountInString(message); n > g.MaxHeaderLength {
		violations = append(violations, fmt.Sprintf(
			"header is %d characters long, maximum is %d",
			n, g.MaxHeaderLength))
	}
	return violations
}
