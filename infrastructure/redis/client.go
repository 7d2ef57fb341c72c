package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/samiullah014/stan-task/pkg/logger"
)

type ClientConfig struct {
	URL      string // redis://localhost:6379/0
	Password string
	DB       int
}

// Client wraps the Redis client
type Client struct {
	rdb *redis.Client
}

// NewClient creates a new Redis client and checks the connection.
func NewClient(cfg ClientConfig) (*Client, error) {
	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	if cfg.Password != "" {
		opt.Password = cfg.Password
	}
	if cfg.DB > 0 {
		opt.DB = cfg.DB
	}

	rdb := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}

	logger.Info("Redis connected", "addr", opt.Addr, "db", opt.DB)
	return &Client{rdb: rdb}, nil
}

// Publish sends message to every subscriber of channel. Strings and byte
// slices are sent as-is.
func (c *Client) Publish(ctx context.Context, channel string, message interface{}) error {
	return c.rdb.Publish(ctx, channel, message).Err()
}

// Ping tests the connection
func (c *Client) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

// Close closes the Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
