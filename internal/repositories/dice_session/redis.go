package dicesession

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-sheet/internal/redis"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a new Redis repository for dice sessions
func NewRedisRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Create stores a new dice session with the specified TTL
func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateKey(input.EntityID, input.Context); err != nil {
		return nil, err
	}

	session := newSession(input, r.clock.Now())

	sessionJSON, err := json.Marshal(session)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal session")
	}

	key := buildKey(input.EntityID, input.Context)
	if err := r.client.Set(ctx, key, sessionJSON, session.ExpiresAt.Sub(session.CreatedAt)).Err(); err != nil {
		slog.ErrorContext(ctx, "failed to store dice session", "key", key, "error", err)
		return nil, errors.Wrap(err, "failed to store session in Redis")
	}

	return &CreateOutput{Session: session}, nil
}

// Get retrieves a dice session by entity ID and context
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if err := validateKey(input.EntityID, input.Context); err != nil {
		return nil, err
	}

	key := buildKey(input.EntityID, input.Context)
	sessionJSON, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if stderrors.Is(err, redisclient.Nil) {
			return nil, errors.NotFound(errNotFound).WithMeta("entity_id", input.EntityID)
		}
		return nil, errors.Wrap(err, "failed to get session from Redis")
	}

	var session DiceSession
	if err := json.Unmarshal([]byte(sessionJSON), &session); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal session")
	}

	// Redis TTL and the stored expiry can disagree when the clock is injected
	if r.clock.Now().After(session.ExpiresAt) {
		_ = r.client.Del(ctx, key)
		return nil, errors.NotFound("dice session has expired").WithMeta("entity_id", input.EntityID)
	}

	return &GetOutput{Session: &session}, nil
}

// Delete removes a dice session
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if err := validateKey(input.EntityID, input.Context); err != nil {
		return nil, err
	}

	var rollsDeleted int
	if got, err := r.Get(ctx, GetInput(input)); err == nil {
		rollsDeleted = len(got.Session.Rolls)
	}

	if err := r.client.Del(ctx, buildKey(input.EntityID, input.Context)).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to delete session from Redis")
	}

	return &DeleteOutput{RollsDeleted: rollsDeleted}, nil
}

// Update replaces an existing dice session, keeping its remaining TTL
func (r *redisRepository) Update(ctx context.Context, session *DiceSession) error {
	if session == nil {
		return errors.InvalidArgument(errSessionNil)
	}
	if err := validateKey(session.EntityID, session.Context); err != nil {
		return err
	}

	now := r.clock.Now()
	if !now.Before(session.ExpiresAt) {
		return errors.InvalidArgument(errSessionExpired)
	}

	sessionJSON, err := json.Marshal(session)
	if err != nil {
		return errors.Wrap(err, "failed to marshal session")
	}

	key := buildKey(session.EntityID, session.Context)
	if err := r.client.Set(ctx, key, sessionJSON, session.ExpiresAt.Sub(now)).Err(); err != nil {
		return errors.Wrap(err, "failed to update session in Redis")
	}

	return nil
}

// buildKey creates the Redis key for a dice session
func buildKey(entityID, context string) string {
	return fmt.Sprintf("%s%s:%s", sessionKeyPrefix, entityID, context)
}
