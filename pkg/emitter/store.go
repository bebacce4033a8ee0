package emitter

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// Store is the minimal surface of the backing pub/sub store the emitter
// consumes: publish to a channel, read a set, release the handle. The emitter
// only ever reads the membership sets; writing them is the gateway's job.
type Store interface {
	// Publish sends a payload to a channel, awaiting store acknowledgment.
	Publish(ctx context.Context, channel, payload string) error

	// SetMembers returns all members of a set key. Order is not guaranteed.
	SetMembers(ctx context.Context, key string) ([]string, error)

	// Close releases the underlying connection.
	Close() error
}

// NewRedisStore adapts a go-redis client to the Store interface.
func NewRedisStore(client redis.UniversalClient) Store {
	return &redisStore{client: client}
}

type redisStore struct {
	client redis.UniversalClient
}

func (s *redisStore) Publish(ctx context.Context, channel, payload string) error {
	return s.client.Publish(ctx, channel, payload).Err()
}

func (s *redisStore) SetMembers(ctx context.Context, key string) ([]string, error) {
	return s.client.SMembers(ctx, key).Result()
}

func (s *redisStore) Close() error {
	return s.client.Close()
}
