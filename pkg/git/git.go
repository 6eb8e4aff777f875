// Package git reads the working-tree state this tool summarizes: short
// status records plus the staged and unstaged diffs. Git itself is treated
// as a black box invoked through os/exec.
package git

import (
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// ErrNotRepository is returned when the current directory is not inside a
// git work tree.
var ErrNotRepository = errors.New("not a git repository")

// StatusRecord is one line of short-form status: the two-character XY code
// (which may contain a space) and the path it refers to.
type StatusRecord struct {
	Code string
	Path string
}

// Diffs holds the staged and unstaged diff text collected for one run.
type Diffs struct {
	Staged   string
	Unstaged string
}

// gitCmd returns an exec.Cmd for git with GIT_PAGER=cat set so that git never
// invokes a pager regardless of the user's config.
func gitCmd(args ...string) *exec.Cmd {
	cmd := exec.Command("git", args...)
	cmd.Env = append(cmd.Environ(), "GIT_PAGER=cat")
	return cmd
}

// InsideWorkTree reports whether the current directory belongs to a git
// repository. Any failure of the underlying query counts as "no".
func InsideWorkTree() bool {
	check := gitCmd("rev-parse", "--git-dir")
	check.Stderr = io.Discard
	return check.Run() == nil
}

// CollectStatus returns the parsed short status of the working tree.
func CollectStatus() ([]StatusRecord, error) {
	cmd := gitCmd("status", "--porcelain")
	cmd.Stderr = io.Discard
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("failed to read status (git status --porcelain): %w", err)
	}
	return ParseStatus(string(out)), nil
}

// ParseStatus splits porcelain status output into records. Lines shorter
// than the fixed "XY path" shape are skipped.
func ParseStatus(out string) []StatusRecord {
	var records []StatusRecord
	for _, line := range strings.Split(out, "\n") {
		if len(line) < 4 {
			continue
		}
		records = append(records, StatusRecord{
			Code: line[:2],
			Path: strings.TrimSpace(line[3:]),
		})
	}
	return records
}

// CollectDiffs returns the staged and unstaged diffs with color and external
// diff tools suppressed. Either underlying failure surfaces as one error.
func CollectDiffs() (Diffs, error) {
	staged, err := runDiff("diff", "--cached", "--no-color", "--no-ext-diff")
	if err != nil {
		return Diffs{}, err
	}
	unstaged, err := runDiff("diff", "--no-color", "--no-ext-diff")
	if err != nil {
		return Diffs{}, err
	}
	return Diffs{Staged: staged, Unstaged: unstaged}, nil
}

func runDiff(args ...string) (string, error) {
	cmd := gitCmd(args...)
	cmd.Stderr = io.Discard
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("failed to read diff (git %s): %w", strings.Join(args, " "), err)
	}
	return string(out), nil
}
