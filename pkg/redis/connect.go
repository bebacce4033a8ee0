package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewClient builds a Redis client from a connection URL without touching the
// network; the connection is established lazily by go-redis on first use. The
// token, when non-empty, overrides the password embedded in the URL.
func NewClient(connectionURL, token string) (*redis.Client, error) {
	opt, err := redis.ParseURL(connectionURL)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseConnString, err)
	}
	if token != "" {
		opt.Password = token
	}
	return redis.NewClient(opt), nil
}

// Connect builds a client from cfg and verifies it with a ping, retrying up
// to cfg.RetryAttempts times. Use it when the application should fail fast at
// startup instead of discovering a dead store on the first publish.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	var lastErr error
	for i := 0; i < max(cfg.RetryAttempts, 1); i++ {
		client, err := NewClient(cfg.ConnectionURL, cfg.Token)
		if err != nil {
			return nil, err
		}

		if lastErr = client.Ping(ctx).Err(); lastErr == nil {
			return client, nil
		}
		_ = client.Close()

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrNotReady, ctx.Err())
		case <-time.After(cfg.RetryInterval):
		}
	}

	return nil, errors.Join(ErrNotReady, lastErr)
}
