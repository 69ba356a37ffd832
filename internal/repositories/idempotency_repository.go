package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type IdempotencyRepository interface {
	// Reserve claims key for the configured TTL. It returns false when the
	// key was already claimed.
	Reserve(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
}

type idempotencyRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewIdempotencyRepo(client *redis.Client, ttl time.Duration) IdempotencyRepository {
	return &idempotencyRepository{client: client, ttl: ttl}
}

func idempotencyKey(key string) string {
	return "idem:orders:" + key
}

func (r *idempotencyRepository) Reserve(ctx context.Context, key string) (bool, error) {

	ok, err := r.client.SetNX(ctx, idempotencyKey(key), "1", r.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to reserve idempotency key: %w", err)
	}

	return ok, nil
}

func (r *idempotencyRepository) Release(ctx context.Context, key string) error {

	if err := r.client.Del(ctx, idempotencyKey(key)).Err(); err != nil {
		return fmt.Errorf("failed to release idempotency key: %w", err)
	}

	return nil
}
