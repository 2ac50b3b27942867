package ratelimit

import (
	"context"
	"fmt"
	"time"

	"giveaway-server/internal/clients/redis"
	"giveaway-server/internal/observability"

	"github.com/google/uuid"
)

// RateLimitResult represents the result of a rate limit check
type RateLimitResult struct {
	Allowed      bool      `json:"allowed"`
	Limit        int       `json:"limit"`
	Remaining    int       `json:"remaining"`
	ResetAt      time.Time `json:"reset_at"`
	RetryAfterMs int       `json:"retry_after_ms,omitempty"`
}

// Service is a sliding-window limiter backed by Redis sorted sets
type Service struct {
	redis  *redis.Client
	limit  int
	window time.Duration
	prefix string
	logger *observability.Logger
	now    func() time.Time
}

// NewService allows limit requests per window for each key.
func NewService(redis *redis.Client, prefix string, limit int, window time.Duration, logger *observability.Logger) *Service {
	return &Service{
		redis:  redis,
		limit:  limit,
		window: window,
		prefix: prefix,
		logger: logger,
		now:    time.Now,
	}
}

// CheckRateLimit records a request for key and reports whether it is allowed.
// Errors mean the limiter could not decide; callers fail open.
func (s *Service) CheckRateLimit(ctx context.Context, key string) (RateLimitResult, error) {
	now := s.now()
	redisKey := fmt.Sprintf("rl:%s:%s", s.prefix, key)

	// Unique member so concurrent hits in the same millisecond are all counted.
	member := fmt.Sprintf("%d-%s", now.UnixNano(), uuid.NewString()[:8])
	count, oldest, err := s.redis.SlidingWindowAdd(ctx, redisKey, now, s.window, s.limit, member)
	if err != nil {
		return RateLimitResult{}, err
	}

	if count >= int64(s.limit) {
		resetAt := oldest.Add(s.window)
		retryAfter := resetAt.Sub(now)
		if retryAfter < 0 {
			retryAfter = 0
		}
		return RateLimitResult{
			Allowed:      false,
			Limit:        s.limit,
			Remaining:    0,
			ResetAt:      resetAt,
			RetryAfterMs: int(retryAfter.Milliseconds()),
		}, nil
	}

	return RateLimitResult{
		Allowed:   true,
		Limit:     s.limit,
		Remaining: s.limit - int(count) - 1,
		ResetAt:   oldest.Add(s.window),
	}, nil
}
