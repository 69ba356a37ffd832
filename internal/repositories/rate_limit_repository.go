package repository

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/config"
	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/logging"
	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/models"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type RateLimitRepository interface {
	Allow(ctx context.Context, subject string) (models.RateLimitDecision, error)
}

type rateLimitRepo struct {
	client      *redis.Client
	maxAttempts int64
	window      time.Duration
	now         func() time.Time
	member      func() string
}

func NewRateLimitRepo(client *redis.Client, cfg config.RateConfig) RateLimitRepository {
	return &rateLimitRepo{
		client:      client,
		maxAttempts: cfg.MaxAttempts,
		window:      cfg.WindowSize,
		now:         time.Now,
		member:      uuid.NewString,
	}
}

func rateLimitKey(subject string) string {
	return "token_attempts:" + subject
}

// Allow records an attempt for subject in a sorted set scored by unix
// milliseconds. The attempt that brings the count to maxAttempts is still
// allowed; the next one is rejected until the oldest attempt leaves the
// window. Rejected attempts are removed again so retrying while blocked
// does not extend the lockout.
func (r *rateLimitRepo) Allow(ctx context.Context, subject string) (models.RateLimitDecision, error) {

	logger := logging.FromContext(ctx)

	key := rateLimitKey(subject)
	nowMs := r.now().UnixMilli()
	member := r.member()
	windowStart := nowMs - r.window.Milliseconds()

	pipe := r.client.Pipeline()
	pipe.ZRemRangeByScore(ctx, key, "-inf", strconv.FormatInt(windowStart, 10))
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(nowMs), Member: member})
	count := pipe.ZCard(ctx, key)
	pipe.PExpire(ctx, key, r.window)

	if _, err := pipe.Exec(ctx); err != nil {
		logger.Error("Rate limit pipeline failed", slog.String("key", key), slog.String("error", err.Error()))
		return models.RateLimitDecision{}, fmt.Errorf("rate limit pipeline for %s: %w", key, err)
	}

	attempts := count.Val()
	if attempts <= r.maxAttempts {
		return models.RateLimitDecision{Allowed: true, Remaining: r.maxAttempts - attempts}, nil
	}

	pipe = r.client.Pipeline()
	pipe.ZRem(ctx, key, member)
	first := pipe.ZRangeWithScores(ctx, key, 0, 0)

	if _, err := pipe.Exec(ctx); err != nil {
		return models.RateLimitDecision{}, fmt.Errorf("oldest attempt for %s: %w", key, err)
	}

	oldest := first.Val()

	retryAfter := r.window
	if len(oldest) > 0 {
		retryAfter = time.Duration(int64(oldest[0].Score)+r.window.Milliseconds()-nowMs) * time.Millisecond
	}

	logger.Warn("Rate limit exceeded", slog.String("subject", subject), slog.Int64("attempts", attempts), slog.Duration("retry_after", retryAfter))

	return models.RateLimitDecision{RetryAfter: max(retryAfter, 0)}, nil
}
