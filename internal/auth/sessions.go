package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/jaym93/gtpower/internal/domain"
)

// SessionStore maps opaque session tokens to authenticated usernames.
type SessionStore interface {
	Create(ctx context.Context, username string) (token string, err error)
	// Get returns the username for a token, or an error wrapping
	// domain.ErrNotFound for unknown/expired tokens.
	Get(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
}

const sessionKeyPrefix = "gtpower:session:"

// RedisSessionStore keeps sessions in Redis with a TTL, so login state
// survives restarts and is shared across replicas.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

var _ SessionStore = (*RedisSessionStore)(nil)

func (s *RedisSessionStore) Create(ctx context.Context, username string) (string, error) {
	token := uuid.NewString()
	if err := s.client.Set(ctx, sessionKeyPrefix+token, username, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}
	return token, nil
}

func (s *RedisSessionStore) Get(ctx context.Context, token string) (string, error) {
	username, err := s.client.Get(ctx, sessionKeyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", fmt.Errorf("session: %w", domain.ErrNotFound)
		}
		return "", fmt.Errorf("failed to load session: %w", err)
	}
	return username, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
