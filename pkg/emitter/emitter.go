package emitter

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/roomcast/pkg/config"
	"github.com/dmitrymomot/roomcast/pkg/redis"
)

// Emitter publishes room-scoped events to the backing pub/sub store.
//
// The zero value is not usable; construct instances with New, NewFromEnv or
// NewWithStore. A single instance supports at most one in-flight To/Emit
// sequence at a time; see the package documentation for the concurrency
// contract.
type Emitter struct {
	store     Store
	ownsStore bool
	prefix    string
	log       *slog.Logger

	mu     sync.Mutex
	target string

	closeOnce sync.Once
}

// New builds an emitter over a Redis connection URL. The token, when
// non-empty, overrides the password embedded in the URL. No network I/O
// happens here; the connection is established lazily on first use.
//
// The emitter owns the client it builds and releases it on Close.
func New(redisURL, token string, opts ...Option) (*Emitter, error) {
	client, err := redis.NewClient(redisURL, token)
	if err != nil {
		return nil, err
	}

	e := NewWithStore(NewRedisStore(client), opts...)
	e.ownsStore = true
	return e, nil
}

// NewWithStore builds an emitter over an externally owned store. Close never
// touches the store; its lifecycle belongs to the caller.
func NewWithStore(store Store, opts ...Option) *Emitter {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}

	return &Emitter{
		store:  store,
		prefix: s.prefix,
		log: s.log.With(
			slog.String("component", "emitter"),
			slog.String("emitter_id", uuid.NewString()),
		),
	}
}

// NewFromEnv builds an emitter from environment variables (REDIS_URL,
// REDIS_TOKEN, EMITTER_PREFIX). Options given here take precedence over the
// environment.
func NewFromEnv(opts ...Option) (*Emitter, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}

	return New(cfg.RedisURL, cfg.RedisToken, append([]Option{WithPrefix(cfg.Prefix)}, opts...)...)
}

// Prefix returns the key namespace prefix all derived channel keys share.
func (e *Emitter) Prefix() string {
	return e.prefix
}

// To targets the next Emit call at the given room and returns the emitter for
// chaining. The last To before an Emit wins. An empty room is a caller bug:
// it is logged and ignored, leaving the emitter untargeted.
func (e *Emitter) To(room string) *Emitter {
	if room == "" {
		e.log.Warn("ignoring empty room target")
		return e
	}

	e.mu.Lock()
	e.target = room
	e.mu.Unlock()
	return e
}

// Emit publishes the event to the room targeted by the preceding To call.
//
// The pending target is consumed before anything fallible runs, so it is
// cleared on every path, including failures. Without a pending target the
// event is dropped with a warning rather than an error: a missing target is a
// usage defect, not a transport fault.
func (e *Emitter) Emit(ctx context.Context, event string, data any) error {
	room := e.consumeTarget()
	if room == "" {
		e.log.WarnContext(ctx, "emit without a target room, dropping event",
			slog.String("event", event))
		return nil
	}

	return e.publish(ctx, room, event, data)
}

// EmitTo publishes the event to the given room directly, bypassing the
// stateful To/Emit sequence. This is the form safe for concurrent senders.
// Any pending fluent target is consumed, so stale targeting state never
// leaks into a later Emit. An empty room drops the event with a warning.
func (e *Emitter) EmitTo(ctx context.Context, room, event string, data any) error {
	e.consumeTarget()

	if room == "" {
		e.log.WarnContext(ctx, "emit to empty room, dropping event",
			slog.String("event", event))
		return nil
	}

	return e.publish(ctx, room, event, data)
}

// ClientsInRoom reads the member set the gateway layer maintains for a room.
// Membership is advisory: any store failure is logged and swallowed, and the
// call yields an empty result, indistinguishable from an empty room. Element
// order is whatever the store returns.
func (e *Emitter) ClientsInRoom(ctx context.Context, room string) []string {
	key := RoomMembersKey(e.prefix, room)

	members, err := e.store.SetMembers(ctx, key)
	if err != nil {
		e.log.ErrorContext(ctx, "failed to read room members",
			slog.String("key", key), slog.Any("error", err))
		return nil
	}

	return members
}

// Close releases the store client when the emitter built it itself and is a
// no-op otherwise. It is idempotent and never returns a non-nil error, so
// shutdown sequences can always complete.
func (e *Emitter) Close() error {
	e.closeOnce.Do(func() {
		if !e.ownsStore {
			return
		}
		if err := e.store.Close(); err != nil {
			e.log.Error("failed to close backing store", slog.Any("error", err))
		}
	})
	return nil
}

func (e *Emitter) consumeTarget() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	room := e.target
	e.target = ""
	return room
}

func (e *Emitter) publish(ctx context.Context, room, event string, data any) error {
	payload, err := Frame{Event: event, Data: data}.Encode()
	if err != nil {
		err = errors.Join(ErrEncodeFrame, err)
		e.log.ErrorContext(ctx, "failed to encode event frame",
			slog.String("room", room), slog.String("event", event), slog.Any("error", err))
		return err
	}

	channel := RoomChannel(e.prefix, room)
	if err := e.store.Publish(ctx, channel, string(payload)); err != nil {
		err = errors.Join(ErrPublishFailed, err)
		e.log.ErrorContext(ctx, "failed to publish event frame",
			slog.String("channel", channel), slog.String("event", event), slog.Any("error", err))
		return err
	}

	e.log.DebugContext(ctx, "event frame published",
		slog.String("room", room), slog.String("event", event), slog.String("frame", string(payload)))
	return nil
}
