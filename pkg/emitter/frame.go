package emitter

import (
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigDefault

// Frame is the wire representation of a single emitted event: a two-element
// JSON array ["event", data]. Subscribers on a room channel must decode this
// exact shape. The payload is opaque to the emitter; no schema validation
// happens here.
type Frame struct {
	Event string
	Data  any
}

// Encode serializes the frame for transport.
func (f Frame) Encode() ([]byte, error) {
	return json.Marshal(f)
}

// MarshalJSON renders the frame as ["event", data].
func (f Frame) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{f.Event, f.Data})
}

// UnmarshalJSON parses ["event", data], rejecting anything that is not a
// two-element array with a string event name.
func (f *Frame) UnmarshalJSON(data []byte) error {
	var parts []jsoniter.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return errors.Join(ErrMalformedFrame, err)
	}
	if len(parts) != 2 {
		return fmt.Errorf("%w: expected 2 elements, got %d", ErrMalformedFrame, len(parts))
	}

	var event string
	if err := json.Unmarshal(parts[0], &event); err != nil {
		return errors.Join(ErrMalformedFrame, err)
	}
	var payload any
	if err := json.Unmarshal(parts[1], &payload); err != nil {
		return errors.Join(ErrMalformedFrame, err)
	}

	f.Event = event
	f.Data = payload
	return nil
}

// DecodeFrame parses a transport payload back into a frame. Scalar payloads
// come back as Go's generic JSON types (float64, string, bool, nil), objects
// as map[string]any and arrays as []any.
func DecodeFrame(data []byte) (Frame, error) {
	var f Frame
	if err := json.Unmarshal(data, &f); err != nil {
		return Frame{}, err
	}
	return f, nil
}
