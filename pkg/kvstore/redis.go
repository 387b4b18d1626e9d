package kvstore

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/go-redis/redis/v8"
)

// redisStore implements Store with durable keys in Redis and session keys in
// memory. Redis is itself a key-value store, so the durable scope maps onto
// it directly; session keys keep process-lifetime semantics.
type redisStore struct {
	client *redis.Client

	mu      sync.RWMutex
	session map[string]string
}

// NewRedis creates a Redis-backed Store on top of an established client.
func NewRedis(client *redis.Client) Store {
	return &redisStore{
		client:  client,
		session: make(map[string]string),
	}
}

func (r *redisStore) Get(ctx context.Context, scope Scope, key string) (string, error) {
	if scope == Session {
		r.mu.RLock()
		defer r.mu.RUnlock()

		value, ok := r.session[key]
		if !ok {
			return "", ErrNotFound
		}
		return value, nil
	}

	value, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get key %q from redis: %w", key, err)
	}
	return value, nil
}

func (r *redisStore) Set(ctx context.Context, scope Scope, key, value string) error {
	if scope == Session {
		r.mu.Lock()
		defer r.mu.Unlock()

		r.session[key] = value
		return nil
	}

	if err := r.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set key %q in redis: %w", key, err)
	}
	return nil
}

func (r *redisStore) Remove(ctx context.Context, scope Scope, key string) error {
	if scope == Session {
		r.mu.Lock()
		defer r.mu.Unlock()

		delete(r.session, key)
		return nil
	}

	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete key %q from redis: %w", key, err)
	}
	return nil
}
