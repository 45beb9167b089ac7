package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/fusionware/storefront/internal/domain"
)

// ProfileRepository stores the editable account details per user.
type ProfileRepository interface {
	Get(ctx context.Context, userID string) (*domain.Profile, error)
	Save(ctx context.Context, profile *domain.Profile) error
}

type memoryProfileRepository struct {
	mu       sync.RWMutex
	profiles map[string]domain.Profile
}

// NewMemoryProfileRepository returns an empty in-memory profile store.
func NewMemoryProfileRepository() ProfileRepository {
	return &memoryProfileRepository{profiles: make(map[string]domain.Profile)}
}

func (r *memoryProfileRepository) Get(_ context.Context, userID string) (*domain.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	profile, ok := r.profiles[userID]
	if !ok {
		return nil, ErrNotFound
	}
	return &profile, nil
}

func (r *memoryProfileRepository) Save(_ context.Context, profile *domain.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[profile.UserID] = *profile
	return nil
}

type redisProfileRepository struct {
	client *redis.Client
}

// NewRedisProfileRepository stores profiles as JSON under profile:<user id>.
func NewRedisProfileRepository(client *redis.Client) ProfileRepository {
	return &redisProfileRepository{client: client}
}

func profileKey(userID string) string {
	return fmt.Sprintf("profile:%s", userID)
}

func (r *redisProfileRepository) Get(ctx context.Context, userID string) (*domain.Profile, error) {
	val, err := r.client.Get(ctx, profileKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get profile from redis: %w", err)
	}
	var profile domain.Profile
	if err := json.Unmarshal([]byte(val), &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	return &profile, nil
}

func (r *redisProfileRepository) Save(ctx context.Context, profile *domain.Profile) error {
	payload, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}
	if err := r.client.Set(ctx, profileKey(profile.UserID), payload, 0).Err(); err != nil {
		return fmt.Errorf("failed to set profile in redis: %w", err)
	}
	return nil
}
