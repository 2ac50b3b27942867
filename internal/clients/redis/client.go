package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"giveaway-server/internal/config"
	"giveaway-server/internal/observability"

	"github.com/redis/go-redis/v9"
)

// ErrDisabled is returned by every command when Redis is turned off.
var ErrDisabled = errors.New("redis is not enabled")

// Client wraps the Redis client. A nil *Client is valid and behaves as disabled.
type Client struct {
	client *redis.Client
	logger *observability.Logger
}

// NewClient connects to Redis. It returns a nil client when Redis is disabled.
func NewClient(cfg config.RedisConfig, logger *observability.Logger) (*Client, error) {
	if !cfg.Enabled {
		logger.Info(context.Background(), "redis is disabled, skipping client initialization")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "addr", Value: cfg.Addr()},
		observability.Field{Key: "db", Value: cfg.DB},
	), "successfully connected to redis")

	return Wrap(client, logger), nil
}

// Wrap adapts an existing go-redis client.
func Wrap(client *redis.Client, logger *observability.Logger) *Client {
	return &Client{client: client, logger: logger}
}

// GetClient returns the underlying Redis client
func (c *Client) GetClient() *redis.Client {
	if c == nil {
		return nil
	}
	return c.client
}

// IsEnabled returns whether Redis is enabled
func (c *Client) IsEnabled() bool {
	return c != nil && c.client != nil
}

// Close closes the Redis connection
func (c *Client) Close() error {
	if !c.IsEnabled() {
		return nil
	}
	return c.client.Close()
}

// Ping checks connectivity for health checks.
func (c *Client) Ping(ctx context.Context) error {
	if !c.IsEnabled() {
		return ErrDisabled
	}
	return c.client.Ping(ctx).Err()
}

// ZAdd adds a member with score to a sorted set
func (c *Client) ZAdd(ctx context.Context, key string, members ...redis.Z) error {
	if !c.IsEnabled() {
		return ErrDisabled
	}
	return c.client.ZAdd(ctx, key, members...).Err()
}

// Exists reports whether key is present
func (c *Client) Exists(ctx context.Context, key string) (bool, error) {
	if !c.IsEnabled() {
		return false, ErrDisabled
	}
	n, err := c.client.Exists(ctx, key).Result()
	return n > 0, err
}

// ZRevRank returns the rank of a member in a sorted set (descending order)
func (c *Client) ZRevRank(ctx context.Context, key, member string) (int64, error) {
	if !c.IsEnabled() {
		return 0, ErrDisabled
	}
	return c.client.ZRevRank(ctx, key, member).Result()
}

// ZScore returns the score of a member in a sorted set
func (c *Client) ZScore(ctx context.Context, key, member string) (float64, error) {
	if !c.IsEnabled() {
		return 0, ErrDisabled
	}
	return c.client.ZScore(ctx, key, member).Result()
}

// ZRevRangeWithScores returns members with scores in a sorted set (descending)
func (c *Client) ZRevRangeWithScores(ctx context.Context, key string, start, stop int64) ([]redis.Z, error) {
	if !c.IsEnabled() {
		return nil, ErrDisabled
	}
	return c.client.ZRevRangeWithScores(ctx, key, start, stop).Result()
}

// ZCard returns the number of members in a sorted set
func (c *Client) ZCard(ctx context.Context, key string) (int64, error) {
	if !c.IsEnabled() {
		return 0, ErrDisabled
	}
	return c.client.ZCard(ctx, key).Result()
}

// SlidingWindowAdd records one hit at now in the window stored at key, dropping
// hits older than window, and returns the number of hits before this one and the
// oldest surviving hit. The hit is only recorded when the count is below limit.
func (c *Client) SlidingWindowAdd(ctx context.Context, key string, now time.Time, window time.Duration, limit int, member string) (int64, time.Time, error) {
	if !c.IsEnabled() {
		return 0, time.Time{}, ErrDisabled
	}

	nowMs := now.UnixMilli()
	windowStartMs := now.Add(-window).UnixMilli()

	pipe := c.client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, key, "-inf", fmt.Sprintf("(%d", windowStartMs+1))
	countCmd := pipe.ZCard(ctx, key)
	oldestCmd := pipe.ZRangeWithScores(ctx, key, 0, 0)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, time.Time{}, fmt.Errorf("failed to read window: %w", err)
	}

	count := countCmd.Val()
	oldest := now
	if z := oldestCmd.Val(); len(z) > 0 {
		oldest = time.UnixMilli(int64(z[0].Score))
	}
	if count >= int64(limit) {
		return count, oldest, nil
	}

	pipe = c.client.TxPipeline()
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(nowMs), Member: member})
	pipe.Expire(ctx, key, window*2)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, time.Time{}, fmt.Errorf("failed to record hit: %w", err)
	}
	return count, oldest, nil
}
