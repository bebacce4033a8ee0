package emitter

import (
	"context"
	"errors"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// Listener consumes the frames an Emitter publishes to a room channel. It is
// the decode counterpart of the wire contract: anything subscribing to
// "<prefix>:<room>" receives ["event", data] arrays.
type Listener struct {
	client redis.UniversalClient
	prefix string
	log    *slog.Logger
	buffer int
}

// NewListener builds a listener over an externally owned Redis client.
func NewListener(client redis.UniversalClient, opts ...Option) *Listener {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}

	return &Listener{
		client: client,
		prefix: s.prefix,
		log:    s.log.With(slog.String("component", "listener")),
		buffer: s.buffer,
	}
}

// Listen subscribes to a room's channel and yields decoded frames until the
// context is cancelled, at which point the returned channel is closed and the
// subscription released. Malformed payloads are logged and skipped rather
// than terminating the stream.
func (l *Listener) Listen(ctx context.Context, room string) (<-chan Frame, error) {
	channel := RoomChannel(l.prefix, room)

	sub := l.client.Subscribe(ctx, channel)
	// Confirm the subscription before handing out the channel so a dead store
	// surfaces here instead of as a silently empty stream.
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, errors.Join(ErrSubscribeFailed, err)
	}

	frames := make(chan Frame, l.buffer)
	go func() {
		defer close(frames)
		defer sub.Close()

		msgs := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}

				frame, err := DecodeFrame([]byte(msg.Payload))
				if err != nil {
					l.log.Warn("dropping malformed frame",
						slog.String("channel", channel), slog.Any("error", err))
					continue
				}

				select {
				case frames <- frame:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return frames, nil
}
