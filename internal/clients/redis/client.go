package redis

import (
	"context"
	"fmt"
	"time"

	"affiliate-server/internal/config"
	"affiliate-server/internal/observability"

	"github.com/redis/go-redis/v9"
)

// Client wraps the redis connection used for click de-duplication.
// When redis is disabled in config the client is nil and every method
// degrades to a no-op, so callers never have to branch on availability.
type Client struct {
	rdb    *redis.Client
	logger *observability.Logger
}

func NewClient(ctx context.Context, cfg config.RedisConfig, logger *observability.Logger) (*Client, error) {
	if !cfg.Enabled {
		logger.Info(ctx, "redis disabled, click de-duplication will be skipped")
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info(ctx, "connected to redis")
	return &Client{rdb: rdb, logger: logger}, nil
}

// SeenRecently reports whether key was observed within window. The first
// call for a key claims it atomically via SET NX, so concurrent callers
// agree on a single winner. A nil client reports false.
func (c *Client) SeenRecently(ctx context.Context, key string, window time.Duration) (bool, error) {
	if c == nil || c.rdb == nil {
		return false, nil
	}

	claimed, err := c.rdb.SetNX(ctx, key, 1, window).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check dedupe key: %w", err)
	}
	return !claimed, nil
}

func (c *Client) Close() error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}
