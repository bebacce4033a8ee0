package emitter

// DefaultPrefix namespaces derived channel keys so the relay never collides
// with unrelated keys in a shared Redis instance.
const DefaultPrefix = "io"

// RoomChannel derives the pub/sub channel key an emitter publishes a room's
// events to. Derivation is pure: the same prefix and room always yield the
// same key.
func RoomChannel(prefix, room string) string {
	return prefix + ":" + room
}

// RoomMembersKey derives the set key holding a room's client identifiers.
// The set itself is maintained by the gateway layer; the emitter only reads it.
func RoomMembersKey(prefix, room string) string {
	return RoomChannel(prefix, room) + ":clients"
}
