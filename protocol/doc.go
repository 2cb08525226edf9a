// Package protocol decodes the text frames of a socket.io style
// message protocol, as seen by a client:
//
//	<packet type>[JSON-stringified payload]
//
// or as a real example:
//
//	42["chat message","hi"]
//
// Only the combined message+event type (42) is handled here. The
// lower engine-level types (open, close, ping, pong) never reach this
// package; they are consumed by the transport.
//
// A decoded payload is then routed to one of two message kinds: a
// named event, or an acknowledgement reply marked by the "ACK"
// sentinel in the first payload element.
package protocol
