// Package emitter broadcasts typed events to rooms of connected clients
// through a Redis pub/sub channel per room.
//
// A room is a plain string identifier. The emitter maps it to a Redis channel
// key derived as "<prefix>:<room>" and publishes each event as a two-element
// JSON array ["event", data]. Whatever gateway layer holds the actual client
// connections subscribes to those channels, decodes the frames and fans them
// out; this package never talks to clients directly.
//
// # Usage
//
// Create an emitter from a Redis connection URL (no network I/O happens until
// the first publish):
//
//	em, err := emitter.New("redis://localhost:6379/0", "", emitter.WithPrefix("io"))
//	if err != nil {
//	    // handle error
//	}
//	defer em.Close()
//
// Address a single room with the explicit form:
//
//	err = em.EmitTo(ctx, "lobby", "chat", map[string]string{"msg": "hi"})
//
// or with the fluent form, which targets the next Emit call only:
//
//	err = em.To("lobby").Emit(ctx, "chat", map[string]string{"msg": "hi"})
//
// The fluent form keeps transient targeting state on the emitter: the target
// set by To is consumed by exactly one Emit attempt, success or failure, and
// an Emit without a prior To is a logged no-op. Because that state is shared
// across calls on the same instance, interleaving To/Emit pairs from multiple
// goroutines can route an event to the wrong room. Use EmitTo from concurrent
// senders, or give each sender its own emitter over a shared store.
//
// # Failure policy
//
// Only encode and publish failures are returned to the caller, joined with
// the ErrEncodeFrame / ErrPublishFailed sentinels, because they mean the
// event was not delivered. Membership lookups and Close degrade to an empty
// result resp. a nil error after logging; callers must tolerate an empty
// member list exactly as they tolerate an empty room.
//
// # Consuming frames
//
// Listener is the decode counterpart for processes that want the frames
// without running a client gateway:
//
//	frames, err := emitter.NewListener(client).Listen(ctx, "lobby")
//	for frame := range frames {
//	    // frame.Event, frame.Data
//	}
package emitter
