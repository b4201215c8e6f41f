package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"lumenquest/internal/models"
)

// RedisStore keeps each identity as a JSON blob whose redis TTL is the
// session lifetime.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Save(ctx context.Context, session models.Session) error {
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("session %s already expired", session.ID)
	}
	payload, err := json.Marshal(session.Identity)
	if err != nil {
		return fmt.Errorf("encode identity: %w", err)
	}
	return s.client.Set(ctx, Key(session.ID), payload, ttl).Err()
}

func (s *RedisStore) Get(ctx context.Context, id string) (models.Session, error) {
	key := Key(id)

	pipe := s.client.Pipeline()
	getCmd := pipe.Get(ctx, key)
	ttlCmd := pipe.PTTL(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		if errors.Is(err, redis.Nil) {
			return models.Session{}, ErrSessionNotFound
		}
		return models.Session{}, err
	}

	var identity models.Identity
	if err := json.Unmarshal([]byte(getCmd.Val()), &identity); err != nil {
		return models.Session{}, fmt.Errorf("decode identity: %w", err)
	}
	return models.Session{
		ID:        id,
		Identity:  identity,
		ExpiresAt: time.Now().Add(ttlCmd.Val()),
	}, nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	removed, err := s.client.Del(ctx, Key(id)).Result()
	if err != nil {
		return err
	}
	if removed == 0 {
		return ErrSessionNotFound
	}
	return nil
}
