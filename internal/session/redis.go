package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fusionware/storefront/internal/domain"
)

// RedisStore keeps sessions as JSON under session:<id>, expiring with the token.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore wraps an established client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func key(id string) string {
	return fmt.Sprintf("session:%s", id)
}

func (s *RedisStore) Save(ctx context.Context, ss domain.Session, ttl time.Duration) error {
	payload, err := json.Marshal(ss)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := s.client.Set(ctx, key(ss.ID), payload, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set session in redis: %w", err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	val, err := s.client.Get(ctx, key(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session from redis: %w", err)
	}
	var ss domain.Session
	if err := json.Unmarshal([]byte(val), &ss); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &ss, nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, key(id)).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("failed to delete session from redis: %w", err)
	}
	return nil
}
