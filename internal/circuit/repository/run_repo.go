package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/CircuitLab-25-26J-339/circuit-sim-backend/internal/circuit/domain"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	runKeyPrefix     = "circuit:run:"    // Run record: circuit:run:{run_id}
	userRunSetPrefix = "circuit:user:"   // Set of run IDs per user: circuit:user:{user_id}
	readingChPrefix  = "circuit:live:"   // Pub/Sub channel for live readings: circuit:live:{session_id}
	runTTL           = 7 * 24 * time.Hour
)

// RunRepository stores solve run records in Redis with a TTL and fans
// out live readings over Pub/Sub. Circuit topologies are never written
// here.
type RunRepository struct {
	client *redis.Client
}

// NewRunRepository creates a new RunRepository.
func NewRunRepository(client *redis.Client) *RunRepository {
	return &RunRepository{client: client}
}

// Create stores a new run record and indexes it under its user.
func (r *RunRepository) Create(ctx context.Context, run *domain.SolveRun) error {
	if run.RunID == "" {
		run.RunID = uuid.New().String()
	}
	now := time.Now()
	if run.CreatedAt.IsZero() {
		run.CreatedAt = now
	}
	run.UpdatedAt = now

	data, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("marshal run: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.runKey(run.RunID), data, runTTL)
	pipe.SAdd(ctx, r.userRunSetKey(run.UserID), run.RunID)
	pipe.Expire(ctx, r.userRunSetKey(run.UserID), runTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("create run: %w", err)
	}
	return nil
}

// GetByRunID retrieves a run by its ID.
func (r *RunRepository) GetByRunID(ctx context.Context, runID string) (*domain.SolveRun, error) {
	data, err := r.client.Get(ctx, r.runKey(runID)).Result()
	if err == redis.Nil {
		return nil, domain.ErrRunNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get run: %w", err)
	}

	var run domain.SolveRun
	if err := json.Unmarshal([]byte(data), &run); err != nil {
		return nil, fmt.Errorf("unmarshal run: %w", err)
	}
	return &run, nil
}

// ListByUserID returns all run IDs recorded for a user.
func (r *RunRepository) ListByUserID(ctx context.Context, userID string) ([]string, error) {
	ids, err := r.client.SMembers(ctx, r.userRunSetKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return ids, nil
}

// Delete removes a run record and its user index entry.
func (r *RunRepository) Delete(ctx context.Context, runID string) error {
	run, err := r.GetByRunID(ctx, runID)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, r.runKey(runID))
	pipe.SRem(ctx, r.userRunSetKey(run.UserID), runID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("delete run: %w", err)
	}
	return nil
}

// PublishReading fans out one live reading payload on the session's
// Pub/Sub channel. Subscribers that are not listening simply miss it;
// readings are not queued.
func (r *RunRepository) PublishReading(ctx context.Context, sessionID string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal reading: %w", err)
	}
	if err := r.client.Publish(ctx, r.readingChannel(sessionID), data).Err(); err != nil {
		return fmt.Errorf("publish reading: %w", err)
	}
	return nil
}

// ReadingChannel exposes the channel name for a session so stream
// handlers can subscribe.
func (r *RunRepository) ReadingChannel(sessionID string) string {
	return r.readingChannel(sessionID)
}

func (r *RunRepository) runKey(runID string) string {
	return runKeyPrefix + runID
}

func (r *RunRepository) userRunSetKey(userID string) string {
	return userRunSetPrefix + userID
}

func (r *RunRepository) readingChannel(sessionID string) string {
	return readingChPrefix + sessionID
}
