package application

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/bnema/maxential-thinking/internal/adapters/repo/sqlite"
	"github.com/bnema/maxential-thinking/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteEngine(t *testing.T) (*Engine, *sqlite.Repository) {
	t.Helper()

	repo, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, repo.Close())
	})

	clock := &steppingClock{now: testNow, step: time.Second}
	return NewEngine(repo, clock, &sequenceIDs{}), repo
}

func TestSessionSaveAndLoadRestoresChain(t *testing.T) {
	ctx := context.Background()
	engine, repo := newSQLiteEngine(t)

	_, err := engine.Think(ctx, ThinkCommand{Thought: "cache reads"})
	require.NoError(t, err)
	_, err = engine.Branch(ctx, BranchCommand{BranchID: "lru", Reason: "try lru"})
	require.NoError(t, err)
	_, err = engine.Think(ctx, ThinkCommand{Thought: "lru evicts cold keys"})
	require.NoError(t, err)
	_, err = engine.CloseBranch(ctx, CloseBranchCommand{BranchID: "lru", Conclusion: "too simple"})
	require.NoError(t, err)
	_, err = engine.Branch(ctx, BranchCommand{BranchID: "arc", Reason: "try arc"})
	require.NoError(t, err)
	_, err = engine.Tag(ctx, TagCommand{ThoughtNumber: 1, Add: []string{"Key"}})
	require.NoError(t, err)
	_, err = engine.Revise(ctx, ReviseCommand{Thought: "cache reads and writes", RevisesThought: 1})
	require.NoError(t, err)

	saved, err := engine.SessionSave(ctx, SessionSaveCommand{Name: "  Cache design ", Description: "eviction"})
	require.NoError(t, err)
	assert.Equal(t, "session-1", saved.SessionID)
	assert.Equal(t, "Cache design", saved.Name)
	assert.Equal(t, "saved", saved.Status)

	before := engine.Snapshot()

	restored := NewEngine(repo, fixedClock{now: testNow.Add(time.Hour)}, &sequenceIDs{issued: 10})
	loaded, err := restored.SessionLoad(ctx, SessionLoadCommand{ID: saved.SessionID})
	require.NoError(t, err)

	assert.Equal(t, "Cache design", loaded.Name)
	assert.Equal(t, 5, loaded.ThoughtCount)
	assert.Equal(t, 2, loaded.BranchCount)
	assert.Equal(t, 5, loaded.ThoughtCounter)
	assert.Equal(t, "arc", loaded.ActiveBranchID)
	assert.False(t, loaded.Complete)

	after := restored.Snapshot()
	assert.Equal(t, before.Thoughts, after.Thoughts)
	assert.Equal(t, before.Branches, after.Branches)
	assert.Equal(t, before.ActiveBranchID, after.ActiveBranchID)
	assert.Equal(t, domain.SessionID("session-1"), restored.CurrentSessionID())

	next, err := restored.Think(ctx, ThinkCommand{Thought: "arc adapts"})
	require.NoError(t, err)
	assert.Equal(t, 6, next.ThoughtNumber)
	assert.Equal(t, "arc", next.ActiveBranchID)

	snapshot, err := repo.LoadSession(ctx, "session-1")
	require.NoError(t, err)
	assert.Len(t, snapshot.Thoughts, 6)
	assert.Equal(t, domain.SessionActive, snapshot.Metadata.Status)
}

func TestSessionLoadOfCompletedChainRefusesThink(t *testing.T) {
	ctx := context.Background()
	engine, repo := newSQLiteEngine(t)

	_, err := engine.Think(ctx, ThinkCommand{Thought: "a"})
	require.NoError(t, err)
	_, err = engine.Complete(ctx, CompleteCommand{Conclusion: "done"})
	require.NoError(t, err)

	restored := NewEngine(repo, fixedClock{now: testNow}, &sequenceIDs{})
	loaded, err := restored.SessionLoad(ctx, SessionLoadCommand{ID: "session-1"})
	require.NoError(t, err)
	assert.True(t, loaded.Complete)

	_, err = restored.Think(ctx, ThinkCommand{Thought: "more"})
	require.ErrorIs(t, err, domain.ErrStateConflict)
}

func TestSessionLoadUnknownSession(t *testing.T) {
	engine, _ := newSQLiteEngine(t)

	_, err := engine.Think(context.Background(), ThinkCommand{Thought: "kept"})
	require.NoError(t, err)

	_, err = engine.SessionLoad(context.Background(), SessionLoadCommand{ID: "missing"})
	require.ErrorIs(t, err, domain.ErrSessionNotFound)
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Len(t, engine.Snapshot().Thoughts, 1)
}

func TestSessionListReportsCurrentSessionAndTotals(t *testing.T) {
	ctx := context.Background()
	engine, _ := newSQLiteEngine(t)

	_, err := engine.Think(ctx, ThinkCommand{Thought: "first chain"})
	require.NoError(t, err)
	_, err = engine.Complete(ctx, CompleteCommand{Conclusion: "done"})
	require.NoError(t, err)
	_, err = engine.Reset(ctx, ResetCommand{Confirm: true})
	require.NoError(t, err)
	_, err = engine.Think(ctx, ThinkCommand{Thought: "second chain"})
	require.NoError(t, err)

	listed, err := engine.SessionList(ctx, SessionListCommand{})
	require.NoError(t, err)
	assert.Equal(t, 2, listed.Total)
	assert.Equal(t, "session-2", listed.CurrentSessionID)
	require.Len(t, listed.Sessions, 2)
	assert.Equal(t, "session-2", listed.Sessions[0].ID)
	assert.Equal(t, "session-1", listed.Sessions[1].ID)
	assert.Equal(t, 2, listed.Sessions[1].ThoughtCount)

	completed, err := engine.SessionList(ctx, SessionListCommand{Status: "complete"})
	require.NoError(t, err)
	assert.Equal(t, 1, completed.Total)
	require.Len(t, completed.Sessions, 1)
	assert.Equal(t, "session-1", completed.Sessions[0].ID)

	paged, err := engine.SessionList(ctx, SessionListCommand{Limit: 1, Offset: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, paged.Total)
	require.Len(t, paged.Sessions, 1)
	assert.Equal(t, "session-1", paged.Sessions[0].ID)

	_, err = engine.SessionList(ctx, SessionListCommand{Status: "paused"})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestSessionSummaryRespectsMaxLength(t *testing.T) {
	ctx := context.Background()
	engine, _ := newSQLiteEngine(t)

	for i := 0; i < 6; i++ {
		_, err := engine.Think(ctx, ThinkCommand{Thought: strings.Repeat("measure latency under load ", 4)})
		require.NoError(t, err)
	}
	_, err := engine.Complete(ctx, CompleteCommand{Conclusion: "shard the cache"})
	require.NoError(t, err)

	full, err := engine.SessionSummary(ctx, SessionSummaryCommand{ID: "session-1"})
	require.NoError(t, err)
	assert.False(t, full.Truncated)
	assert.Contains(t, full.Summary, "## Conclusions")
	assert.Contains(t, full.Summary, "shard the cache")

	short, err := engine.SessionSummary(ctx, SessionSummaryCommand{ID: "session-1", MaxLength: 100})
	require.NoError(t, err)
	assert.True(t, short.Truncated)
	assert.LessOrEqual(t, short.Length, 100)
	assert.Equal(t, len([]rune(short.Summary)), short.Length)
	assert.True(t, strings.HasSuffix(short.Summary, "[...truncated]"))

	_, err = engine.SessionSummary(ctx, SessionSummaryCommand{ID: "session-1", MaxLength: 50})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestSessionChainLeavesCurrentStateAlone(t *testing.T) {
	ctx := context.Background()
	engine, _ := newSQLiteEngine(t)

	_, err := engine.Think(ctx, ThinkCommand{Thought: "stored"})
	require.NoError(t, err)
	_, err = engine.Branch(ctx, BranchCommand{BranchID: "alt", Reason: "compare"})
	require.NoError(t, err)
	saved, err := engine.SessionSave(ctx, SessionSaveCommand{Name: "Stored"})
	require.NoError(t, err)

	_, err = engine.Reset(ctx, ResetCommand{Confirm: true})
	require.NoError(t, err)

	view, err := engine.SessionChain(ctx, domain.SessionID(saved.SessionID))
	require.NoError(t, err)
	assert.Equal(t, domain.SessionID(saved.SessionID), view.SessionID)
	require.Len(t, view.Thoughts, 2)
	assert.Equal(t, domain.BranchID("alt"), view.ActiveBranchID)
	assert.Empty(t, engine.Snapshot().Thoughts)

	_, err = engine.SessionChain(ctx, "missing")
	require.ErrorIs(t, err, domain.ErrSessionNotFound)

	_, err = NewEngine(nil, fixedClock{now: testNow}, nil).SessionChain(ctx, "any")
	require.ErrorIs(t, err, domain.ErrPersistenceDisabled)
}
