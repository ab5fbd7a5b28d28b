// Package redis wraps the go-redis client so repositories depend on a small
// interface and tests can swap in miniredis.
package redis

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Options configures Redis client behavior
// Naming considerations:
// - "Options" mirrors redis.Options without importing it into callers
// - only the knobs the roll history store needs are exposed
type Options struct {
	PoolSize     int
	MinIdleConns int
	MaxRetries   int
	DialTimeout  time.Duration
	UseTLS       bool
}

// NewClient creates a Redis client for a single instance at host:port.
// Redis connects lazily, so no network traffic happens here.
func NewClient(endpoint string, opts *Options) (Client, error) {
	if endpoint == "" {
		return nil, errors.New("redis: endpoint is required")
	}

	if opts == nil {
		opts = &Options{}
	}

	redisOpts := &redis.Options{Addr: endpoint}
	applyOptions(redisOpts, opts)

	return redis.NewClient(redisOpts), nil
}

// NewClientFromURL creates a client from a redis:// or rediss:// URL such as
// "redis://localhost:6379/2"
func NewClientFromURL(url string, opts *Options) (Client, error) {
	if url == "" {
		return nil, errors.New("redis: url is required")
	}

	redisOpts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis: invalid url: %w", err)
	}

	if opts != nil {
		applyOptions(redisOpts, opts)
	}

	return redis.NewClient(redisOpts), nil
}

// Ping checks the server is reachable
func Ping(ctx context.Context, client Client) error {
	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis: ping failed: %w", err)
	}
	return nil
}

func applyOptions(dst *redis.Options, opts *Options) {
	if opts.PoolSize > 0 {
		dst.PoolSize = opts.PoolSize
	}
	if opts.MinIdleConns > 0 {
		dst.MinIdleConns = opts.MinIdleConns
	}
	if opts.MaxRetries > 0 {
		dst.MaxRetries = opts.MaxRetries
	}
	if opts.DialTimeout > 0 {
		dst.DialTimeout = opts.DialTimeout
	}
	if opts.UseTLS && dst.TLSConfig == nil {
		dst.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
}
