package git

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifySentinels(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []ChangeKind{KindUntracked}, Classify("??"))
	assert.Equal(t, []ChangeKind{KindIgnored}, Classify("!!"))
}

func TestClassifyFlagOrder(t *testing.T) {
	t.Parallel()

	// A collects before M regardless of the code's own ordering.
	assert.Equal(t, []ChangeKind{KindAdded, KindModified}, Classify("AM"))
	assert.Equal(t, []ChangeKind{KindAdded, KindModified}, Classify("MA"))

	assert.Equal(t, []ChangeKind{KindModified}, Classify(" M"))
	assert.Equal(t, []ChangeKind{KindDeleted}, Classify("D "))
	assert.Equal(t, []ChangeKind{KindRenamed}, Classify("R "))
	assert.Equal(t, []ChangeKind{KindUnmerged}, Classify("UU"))
	assert.Equal(t, []ChangeKind{KindTypeChange}, Classify(" T"))
}

func TestClassifyUnknownFoldsToOther(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []ChangeKind{KindOther}, Classify("  "))
	assert.Equal(t, []ChangeKind{KindOther}, Classify("XZ"))
}

func TestDominantKind(t *testing.T) {
	t.Parallel()

	assert.Equal(t, KindDeleted, DominantKind([]ChangeKind{KindModified, KindDeleted}))
	assert.Equal(t, KindUnmerged, DominantKind([]ChangeKind{KindUnmerged, KindAdded}))
	assert.Equal(t, KindModified, DominantKind([]ChangeKind{KindAdded, KindModified}))
	assert.Equal(t, KindOther, DominantKind(nil))
}
