package repository

import (
	"context"
	"testing"

	"github.com/CircuitLab-25-26J-339/circuit-sim-backend/internal/circuit/domain"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepo(t *testing.T) *RunRepository {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRunRepository(client)
}

func TestRunRepository_CreateAndGet(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	run := &domain.SolveRun{
		UserID:     "user-1",
		Status:     domain.StatusCompleted,
		Converged:  true,
		Iterations: 7,
		SourceAmps: 1.875,
	}
	require.NoError(t, repo.Create(ctx, run))
	require.NotEmpty(t, run.RunID, "Create assigns an id")
	assert.False(t, run.CreatedAt.IsZero())

	got, err := repo.GetByRunID(ctx, run.RunID)
	require.NoError(t, err)
	assert.Equal(t, run.UserID, got.UserID)
	assert.Equal(t, domain.StatusCompleted, got.Status)
	assert.True(t, got.Converged)
	assert.Equal(t, 7, got.Iterations)
	assert.InDelta(t, 1.875, got.SourceAmps, 1e-9)
}

func TestRunRepository_GetMissing(t *testing.T) {
	repo := setupRepo(t)

	_, err := repo.GetByRunID(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrRunNotFound)
}

func TestRunRepository_ListByUser(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	first := &domain.SolveRun{UserID: "user-1", Status: domain.StatusCompleted}
	second := &domain.SolveRun{UserID: "user-1", Status: domain.StatusInvalid}
	other := &domain.SolveRun{UserID: "user-2", Status: domain.StatusCompleted}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))
	require.NoError(t, repo.Create(ctx, other))

	ids, err := repo.ListByUserID(ctx, "user-1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{first.RunID, second.RunID}, ids)
}

func TestRunRepository_Delete(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	run := &domain.SolveRun{UserID: "user-1", Status: domain.StatusCompleted}
	require.NoError(t, repo.Create(ctx, run))
	require.NoError(t, repo.Delete(ctx, run.RunID))

	_, err := repo.GetByRunID(ctx, run.RunID)
	assert.ErrorIs(t, err, domain.ErrRunNotFound)

	ids, err := repo.ListByUserID(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, ids)

	assert.ErrorIs(t, repo.Delete(ctx, run.RunID), domain.ErrRunNotFound)
}

func TestRunRepository_PublishReading(t *testing.T) {
	repo := setupRepo(t)

	err := repo.PublishReading(context.Background(), "session-1", map[string]any{"v": 6.0})
	require.NoError(t, err)
	assert.Equal(t, "circuit:live:session-1", repo.ReadingChannel("session-1"))
}
