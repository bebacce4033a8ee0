package emitter

import "errors"

var (
	// ErrEncodeFrame is returned when an event payload cannot be serialized.
	ErrEncodeFrame = errors.New("failed to encode event frame")

	// ErrPublishFailed is returned when the backing store rejects a publish.
	ErrPublishFailed = errors.New("failed to publish event frame")

	// ErrMalformedFrame is returned when a transport payload is not a valid
	// ["event", data] array.
	ErrMalformedFrame = errors.New("malformed event frame")

	// ErrSubscribeFailed is returned when a listener cannot establish its
	// subscription on a room channel.
	ErrSubscribeFailed = errors.New("failed to subscribe to room channel")
)
