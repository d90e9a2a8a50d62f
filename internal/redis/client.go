package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Client wraps the catalog read cache. Product listings and detail views are
// cached as JSON and dropped wholesale whenever the catalog changes.
type Client struct {
	rdb *redis.Client
}

const catalogPrefix = "catalog:"

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

func (c *Client) GetCatalog(ctx context.Context, key string, dest interface{}) error {
	val, err := c.rdb.Get(ctx, catalogPrefix+key).Result()
	if err != nil {
		if err == redis.Nil {
			return fmt.Errorf("catalog cache miss")
		}
		return fmt.Errorf("failed to read catalog cache: %w", err)
	}
	return json.Unmarshal([]byte(val), dest)
}

func (c *Client) SetCatalog(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	jsonData, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog data: %w", err)
	}
	return c.rdb.Set(ctx, catalogPrefix+key, jsonData, ttl).Err()
}

// InvalidateCatalog drops every cached catalog entry. Called after any
// product, category or color write.
func (c *Client) InvalidateCatalog(ctx context.Context) error {
	iter := c.rdb.Scan(ctx, 0, catalogPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
