package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTagsTrimsLowercasesAndDedupes(t *testing.T) {
	assert.Equal(t, []string{"foo"}, NormalizeTags([]string{" Foo ", "foo"}))
	assert.Equal(t, []string{"alpha", "beta"}, NormalizeTags([]string{"BETA", "", "  ", "alpha", "beta"}))
	assert.Nil(t, NormalizeTags(nil))
	assert.Nil(t, NormalizeTags([]string{" "}))
}

func TestApplyTagsReportsOnlyEffectiveChanges(t *testing.T) {
	tests := []struct {
		name        string
		current     []string
		add         []string
		remove      []string
		wantTags    []string
		wantAdded   []string
		wantRemoved []string
	}{
		{
			name:        "add is idempotent",
			current:     []string{"idea"},
			add:         []string{"IDEA", "risk"},
			wantTags:    []string{"idea", "risk"},
			wantAdded:   []string{"risk"},
			wantRemoved: []string{},
		},
		{
			name:        "remove of absent tag is a no-op",
			current:     []string{"idea"},
			remove:      []string{"missing", " Idea "},
			wantTags:    []string{},
			wantAdded:   []string{},
			wantRemoved: []string{"idea"},
		},
		{
			name:        "tag added and removed in one call is no change",
			add:         []string{"temp"},
			remove:      []string{"temp"},
			wantTags:    []string{},
			wantAdded:   []string{},
			wantRemoved: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			change := ApplyTags(tt.current, tt.add, tt.remove)
			assert.ElementsMatch(t, tt.wantTags, change.Tags)
			assert.Equal(t, tt.wantAdded, change.Added)
			assert.Equal(t, tt.wantRemoved, change.Removed)
		})
	}
}

func TestClassifyKind(t *testing.T) {
	tests := []struct {
		name    string
		thought Thought
		want    ThoughtKind
	}{
		{name: "plain", thought: Thought{Text: "hello"}, want: KindThought},
		{name: "revision", thought: Thought{Text: "CONCLUSION: no", IsRevision: true, RevisesThought: 1}, want: KindRevision},
		{name: "branch start by marker", thought: Thought{Text: "BRANCH START: explore"}, want: KindBranchStart},
		{name: "branch start by origin", thought: Thought{Text: "x", BranchFromThought: 2}, want: KindBranchStart},
		{name: "conclusion", thought: Thought{Text: "CONCLUSION: done"}, want: KindConclusion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyKind(tt.thought))
		})
	}
}

func TestBranchLifecycle(t *testing.T) {
	now := time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)

	b := Branch{ID: "alt", Status: BranchActive, CreatedAt: now}
	require.NoError(t, b.Close("dead end", now.Add(time.Minute)))
	assert.Equal(t, BranchClosed, b.Status)
	assert.Equal(t, "dead end", b.Conclusion)
	require.NotNil(t, b.ClosedAt)

	err := b.Close("again", now)
	require.ErrorIs(t, err, ErrStateConflict)

	require.NoError(t, b.Merge(MergeSummary, now.Add(2*time.Minute)))
	assert.Equal(t, BranchMerged, b.Status)
	assert.Equal(t, now.Add(2*time.Minute), b.LastUpdated())

	err = b.Merge(MergeSummary, now)
	require.ErrorIs(t, err, ErrStateConflict)
}

func TestBranchMergeRejectsUnknownStrategy(t *testing.T) {
	b := Branch{ID: "alt", Status: BranchActive}
	err := b.Merge(MergeStrategy("squash"), time.Now())
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, BranchActive, b.Status)
}

func TestBranchMergeContent(t *testing.T) {
	b := Branch{
		ID:            "alt",
		OriginThought: 1,
		Thoughts: []Thought{
			{Number: 2, Text: "BRANCH START: explore"},
			{Number: 4, Text: "deeper"},
		},
	}

	assert.Equal(t, "Branch alt merged without explicit conclusion", b.MergeContent(MergeConclusionOnly))
	assert.Equal(t, "Branch alt integration:\n- Thought 2: BRANCH START: explore\n- Thought 4: deeper", b.MergeContent(MergeFullIntegration))
	assert.Equal(t, "Branch alt summary: 2 thoughts explored from thought 1", b.MergeContent(MergeSummary))

	b.Conclusion = "works"
	assert.Equal(t, "works", b.MergeContent(MergeConclusionOnly))
	assert.Contains(t, b.MergeContent(MergeSummary), ". Conclusion: works")
}

func TestValidateBranchID(t *testing.T) {
	require.NoError(t, ValidateBranchID("alt"))
	require.ErrorIs(t, ValidateBranchID(" "), ErrValidation)
	require.ErrorIs(t, ValidateBranchID("main"), ErrValidation)
}

func TestAssembleSnapshotAttachesBranchThoughtsAndTags(t *testing.T) {
	meta := SessionMetadata{ID: "s-1", Name: "n", Status: SessionActive}
	thoughts := []Thought{
		{Number: 3, Text: "b"},
		{Number: 1, Text: "a"},
		{Number: 2, Text: "BRANCH START: explore", BranchID: "alt", BranchFromThought: 1},
		{Number: 4, Text: "c", BranchID: "alt"},
	}
	branches := []Branch{{ID: "alt", OriginThought: 1, Status: BranchActive}}

	snapshot := AssembleSnapshot(meta, thoughts, branches, map[int][]string{1: {"Key"}})

	require.Len(t, snapshot.Thoughts, 4)
	assert.Equal(t, []int{1, 2, 3, 4}, []int{snapshot.Thoughts[0].Number, snapshot.Thoughts[1].Number, snapshot.Thoughts[2].Number, snapshot.Thoughts[3].Number})
	assert.Equal(t, []string{"key"}, snapshot.Thoughts[0].Tags)
	assert.Equal(t, KindBranchStart, snapshot.Thoughts[1].Kind)
	require.Len(t, snapshot.Branches, 1)
	require.Len(t, snapshot.Branches[0].Thoughts, 2)
	assert.Equal(t, 2, snapshot.Branches[0].Thoughts[0].Number)
	assert.Equal(t, 4, snapshot.Branches[0].Thoughts[1].Number)
	assert.Equal(t, 4, snapshot.Metadata.ThoughtCount)
	assert.Equal(t, 1, snapshot.Metadata.BranchCount)
}

func TestErrorKind(t *testing.T) {
	assert.Equal(t, "validation", ErrorKind(Validationf("bad")))
	assert.Equal(t, "not_found", ErrorKind(ErrSessionNotFound))
	assert.Equal(t, "state_conflict", ErrorKind(Conflictf("dup")))
	assert.Equal(t, "persistence", ErrorKind(ErrPersistenceDisabled))
	assert.Equal(t, "internal", ErrorKind(errors.New("boom")))
	assert.Equal(t, "", ErrorKind(nil))
}

func TestSessionFilterNormalize(t *testing.T) {
	assert.Equal(t, SessionFilter{Limit: 20}, SessionFilter{}.Normalize())
	assert.Equal(t, SessionFilter{Limit: 100}, SessionFilter{Limit: 500, Offset: -3}.Normalize())
	assert.Equal(t, SessionFilter{Status: SessionComplete, Limit: 5, Offset: 10}, SessionFilter{Status: SessionComplete, Limit: 5, Offset: 10}.Normalize())
}
