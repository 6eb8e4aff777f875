package git

import "strings"

// ChangeKind tags what happened to a file according to its status code.
type ChangeKind string

const (
	KindAdded      ChangeKind = "added"
	KindModified   ChangeKind = "modified"
	KindDeleted    ChangeKind = "deleted"
	KindRenamed    ChangeKind = "renamed"
	KindCopied     ChangeKind = "copied"
	KindUnmerged   ChangeKind = "unmerged"
	KindUntracked  ChangeKind = "untracked"
	KindIgnored    ChangeKind = "ignored"
	KindTypeChange ChangeKind = "typechange"
	KindOther      ChangeKind = "other"
)

// classifyOrder fixes the order in which flags are collected from a code.
var classifyOrder = []struct {
	flag byte
	kind ChangeKind
}{
	{'A', KindAdded},
	{'M', KindModified},
	{'D', KindDeleted},
	{'R', KindRenamed},
	{'C', KindCopied},
	{'U', KindUnmerged},
	{'T', KindTypeChange},
}

// dominantOrder fixes the priority used to pick a single kind for coloring.
// Deletions and conflicts are visually loudest.
var dominantOrder = []ChangeKind{
	KindDeleted,
	KindUnmerged,
	KindModified,
	KindAdded,
	KindRenamed,
	KindCopied,
	KindTypeChange,
	KindUntracked,
	KindIgnored,
	KindOther,
}

// Classify maps a two-character status code to its ordered change kinds.
// The sentinel codes "??" and "!!" classify as a single kind; any other code
// is scanned flag by flag. A code with no known flags folds to KindOther.
// Pure function of the code.
func Classify(code string) []ChangeKind {
	switch code {
	case "??":
		return []ChangeKind{KindUntracked}
	case "!!":
		return []ChangeKind{KindIgnored}
	}
	var kinds []ChangeKind
	for _, entry := range classifyOrder {
		if strings.IndexByte(code, entry.flag) >= 0 {
			kinds = append(kinds, entry.kind)
		}
	}
	if len(kinds) == 0 {
		return []ChangeKind{KindOther}
	}
	return kinds
}

// DominantKind picks the single kind that decides the summary color,
// scanning the fixed priority order against the tag set.
func DominantKind(kinds []ChangeKind) ChangeKind {
	for _, candidate := range dominantOrder {
		for _, kind := range kinds {
			if kind == candidate {
				return candidate
			}
		}
	}
	return KindOther
}
