package toml

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bnema/maxential-thinking/internal/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)

func newTestRepository(t *testing.T, sessionsPath string) *Repository {
	t.Helper()

	config := viper.New()
	config.Set("storage.path", sessionsPath)

	repo, err := NewRepository(config)
	require.NoError(t, err)
	return repo
}

func seedSession(t *testing.T, repo *Repository, id domain.SessionID, at time.Time) {
	t.Helper()

	require.NoError(t, repo.CreateSession(context.Background(), domain.SessionMetadata{
		ID:        id,
		Name:      "Session " + string(id),
		Status:    domain.SessionActive,
		CreatedAt: at,
		UpdatedAt: at,
	}))
}

func TestRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := newTestRepository(t, filepath.Join(t.TempDir(), "sessions.toml"))
	seedSession(t, repo, "s-1", baseTime)

	require.NoError(t, repo.InsertThought(ctx, "s-1", domain.Thought{Number: 1, Text: "first", Kind: domain.KindThought, CreatedAt: baseTime}))
	require.NoError(t, repo.InsertBranch(ctx, "s-1", domain.Branch{ID: "alt", OriginThought: 1, Status: domain.BranchActive, CreatedAt: baseTime}))
	require.NoError(t, repo.InsertThought(ctx, "s-1", domain.Thought{
		Number:            2,
		Text:              "BRANCH START: explore",
		Kind:              domain.KindBranchStart,
		BranchID:          "alt",
		BranchFromThought: 1,
		CreatedAt:         baseTime.Add(time.Second),
	}))
	require.NoError(t, repo.SetTags(ctx, "s-1", 2, []string{"Risky", "idea"}, baseTime.Add(2*time.Second)))
	require.NoError(t, repo.CloseBranch(ctx, "s-1", "alt", "", baseTime.Add(3*time.Second)))
	require.NoError(t, repo.MergeBranch(ctx, "s-1", "alt", domain.MergeFullIntegration, baseTime.Add(4*time.Second)))

	snapshot, err := repo.LoadSession(ctx, "s-1")
	require.NoError(t, err)

	assert.Equal(t, 2, snapshot.Metadata.ThoughtCount)
	assert.Equal(t, 1, snapshot.Metadata.BranchCount)
	assert.Equal(t, baseTime.Add(4*time.Second), snapshot.Metadata.UpdatedAt)
	require.Len(t, snapshot.Thoughts, 2)
	assert.Equal(t, []string{"idea", "risky"}, snapshot.Thoughts[1].Tags)
	assert.Equal(t, domain.KindBranchStart, snapshot.Thoughts[1].Kind)

	require.Len(t, snapshot.Branches, 1)
	branch := snapshot.Branches[0]
	assert.Equal(t, domain.BranchMerged, branch.Status)
	assert.Equal(t, domain.MergeFullIntegration, branch.MergeStrategy)
	assert.Empty(t, branch.Conclusion)
	require.NotNil(t, branch.ClosedAt)
	require.NotNil(t, branch.MergedAt)
	assert.Equal(t, baseTime.Add(4*time.Second), *branch.MergedAt)
	require.Len(t, branch.Thoughts, 1)
}

func TestRepositoryMissingFileBehaviors(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "missing", "sessions.toml"))

	sessions, err := repo.ListSessions(context.Background(), domain.SessionFilter{})
	require.NoError(t, err)
	assert.Empty(t, sessions)

	_, err = repo.GetSession(context.Background(), "s-1")
	require.ErrorIs(t, err, domain.ErrSessionNotFound)

	err = repo.InsertThought(context.Background(), "s-1", domain.Thought{Number: 1, Text: "x", CreatedAt: baseTime})
	require.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestRepositoryCreatesFileWithOwnerOnlyPermissions(t *testing.T) {
	t.Parallel()

	sessionsPath := filepath.Join(t.TempDir(), ".maxential", "sessions.toml")
	repo := newTestRepository(t, sessionsPath)
	seedSession(t, repo, "s-1", baseTime)

	info, err := os.Stat(sessionsPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestRepositoryListOrdersByUpdatedAtAndPaginates(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := newTestRepository(t, filepath.Join(t.TempDir(), "sessions.toml"))
	seedSession(t, repo, "a", baseTime)
	seedSession(t, repo, "b", baseTime.Add(time.Minute))
	seedSession(t, repo, "c", baseTime.Add(2*time.Minute))
	require.NoError(t, repo.UpdateSessionStatus(ctx, "a", domain.SessionComplete, baseTime.Add(time.Hour)))

	sessions, err := repo.ListSessions(ctx, domain.SessionFilter{})
	require.NoError(t, err)
	require.Len(t, sessions, 3)
	assert.Equal(t, []domain.SessionID{"a", "c", "b"}, []domain.SessionID{sessions[0].ID, sessions[1].ID, sessions[2].ID})

	page, err := repo.ListSessions(ctx, domain.SessionFilter{Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, domain.SessionID("b"), page[0].ID)

	beyond, err := repo.ListSessions(ctx, domain.SessionFilter{Offset: 10})
	require.NoError(t, err)
	assert.Empty(t, beyond)

	active, err := repo.CountSessions(ctx, domain.SessionActive)
	require.NoError(t, err)
	assert.Equal(t, 2, active)
}

func TestRepositoryMalformedTOMLReturnsError(t *testing.T) {
	t.Parallel()

	sessionsPath := filepath.Join(t.TempDir(), "sessions.toml")
	require.NoError(t, os.WriteFile(sessionsPath, []byte("sessions = ["), 0o600))
	repo := newTestRepository(t, sessionsPath)

	_, err := repo.ListSessions(context.Background(), domain.SessionFilter{})
	require.Error(t, err)
	assert.ErrorContains(t, err, "decode sessions file")
}

func TestRepositoryCanceledContextReturnsContextError(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "sessions.toml"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.CreateSession(ctx, domain.SessionMetadata{ID: "s-1", Name: "n", Status: domain.SessionActive})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestRepositoryConcurrentWritesAcrossInstancesPreserveAllThoughts(t *testing.T) {
	t.Parallel()

	sessionsPath := filepath.Join(t.TempDir(), "sessions.toml")
	repoA := newTestRepository(t, sessionsPath)
	repoB := newTestRepository(t, sessionsPath)
	seedSession(t, repoA, "s-a", baseTime)
	seedSession(t, repoB, "s-b", baseTime)

	const perRepoWrites = 50
	start := make(chan struct{})
	errCh := make(chan error, perRepoWrites*2)
	var wg sync.WaitGroup
	wg.Add(2)

	write := func(repo *Repository, id domain.SessionID) {
		defer wg.Done()
		<-start
		for i := 1; i <= perRepoWrites; i++ {
			errCh <- repo.InsertThought(context.Background(), id, domain.Thought{Number: i, Text: "t" + strconv.Itoa(i), CreatedAt: baseTime})
		}
	}

	go write(repoA, "s-a")
	go write(repoB, "s-b")

	close(start)
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}

	for _, id := range []domain.SessionID{"s-a", "s-b"} {
		meta, err := repoA.GetSession(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, perRepoWrites, meta.ThoughtCount)
	}
}

func TestRepositorySerializedTOMLIncludesVersion(t *testing.T) {
	t.Parallel()

	sessionsPath := filepath.Join(t.TempDir(), "sessions.toml")
	repo := newTestRepository(t, sessionsPath)
	seedSession(t, repo, "s-1", baseTime)

	data, err := os.ReadFile(sessionsPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 1")
}

func TestRepositoryFutureSchemaVersionReturnsError(t *testing.T) {
	t.Parallel()

	sessionsPath := filepath.Join(t.TempDir(), "sessions.toml")
	require.NoError(t, os.WriteFile(sessionsPath, []byte(strings.Join([]string{
		"version = 999",
		"",
	}, "\n")), 0o600))
	repo := newTestRepository(t, sessionsPath)

	_, err := repo.ListSessions(context.Background(), domain.SessionFilter{})
	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported sessions schema version")
}

func TestRepositoryRejectsDuplicateRows(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := newTestRepository(t, filepath.Join(t.TempDir(), "sessions.toml"))
	seedSession(t, repo, "s-1", baseTime)

	err := repo.CreateSession(ctx, domain.SessionMetadata{ID: "s-1", Name: "again", Status: domain.SessionActive})
	require.ErrorIs(t, err, domain.ErrStateConflict)

	require.NoError(t, repo.InsertThought(ctx, "s-1", domain.Thought{Number: 1, Text: "a", CreatedAt: baseTime}))
	err = repo.InsertThought(ctx, "s-1", domain.Thought{Number: 1, Text: "b", CreatedAt: baseTime})
	require.ErrorIs(t, err, domain.ErrStateConflict)
}
