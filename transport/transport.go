package transport

import "context"

type (
	Namespace = string
	Data      = interface{}
)

// Transporter is the engine-level collaborator a client drives. The
// engine owns connection establishment, outbound wire encoding and
// teardown; the client only decides what to emit and how to interpret
// the frames it is handed.
type Transporter interface {
	// Connect establishes the underlying connection.
	Connect(ctx context.Context) error

	// Read blocks until one frame is available and returns its raw
	// text.
	Read() (string, error)

	// Emit sends one outbound message. The expectsAck flag reports
	// that the caller appended an ack-request tag to args and wants a
	// reply; framing is unaffected.
	Emit(event string, args []Data, expectsAck bool) error

	// Of sets the namespace context for subsequent emits.
	Of(ns Namespace)

	// Close tears the connection down.
	Close() error
}
