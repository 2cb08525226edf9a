// Package sioclient is a client-side adapter for a text-framed,
// multiplexed real-time messaging protocol spoken over an established
// bidirectional socket. It turns raw frames into typed events and
// acknowledgement callbacks, and turns Emit calls into correctly
// tagged outbound messages; the wire bytes themselves belong to the
// transport.
package sioclient

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	siop "github.com/mdevan/socketio-client/protocol"
	sess "github.com/mdevan/socketio-client/session"
	siot "github.com/mdevan/socketio-client/transport"
)

// Client is one logical connection. It owns its ack and event
// registries, so multiple clients coexist without interference.
//
// Close is idempotent and safe under defer; pair every successful
// Connect with a deferred Close so the connection is released on
// every return path.
type Client struct {
	tr siot.Transporter

	acks   *ackRegistry
	events *eventRegistry

	mu        sync.Mutex
	connected bool

	log zerolog.Logger
}

func New(tr siot.Transporter, opts ...Option) *Client {
	c := &Client{
		tr:     tr,
		acks:   newAckRegistry(),
		events: newEventRegistry(),
		log:    zerolog.Nop(),
	}
	c.With(opts...)
	return c
}

func (c *Client) With(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// Connect asks the transport to establish the underlying connection.
// On failure the client stays disconnected and the transport error is
// wrapped in ErrConnectionFailed.
func (c *Client) Connect(ctx context.Context) error {
	if err := c.tr.Connect(ctx); err != nil {
		return ErrConnectionFailed.F(err)
	}

	c.mu.Lock()
	c.connected = true
	c.mu.Unlock()

	c.log.Debug().Msg("connected")
	return nil
}

// Connected reports whether the client is between a successful
// Connect and the next Close.
func (c *Client) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connected
}

// Read pulls exactly one frame from the transport, decodes it and
// dispatches the result: an acknowledgement reply resolves its
// pending callback, a named event triggers its listener. An empty
// frame is a no-op. Decode and route errors surface to the caller and
// do not change connection state.
func (c *Client) Read() error {
	frame, err := c.tr.Read()
	if err != nil {
		return err
	}

	pac, err := siop.Decode(frame)
	if err != nil {
		return err
	}
	if pac == nil {
		return nil
	}

	msg, err := siop.Route(pac.Payload)
	if err != nil {
		return err
	}

	switch m := msg.(type) {
	case siop.AckMessage:
		c.log.Debug().Str("ack_id", m.AckID).Msg("ack reply")
		c.acks.Resolve(sess.ID(m.AckID), m.Response)
	case siop.EventMessage:
		c.log.Debug().Str("event", m.Event).Int("args", len(m.Args)).Msg("event")
		c.events.Trigger(m.Event, m.Args)
	}

	return nil
}

// Listen reads frames until the first error of any kind, which is
// returned. A malformed frame ends the loop the same way a dead
// connection does; callers wanting to ride out bad frames should
// drive Read themselves.
func (c *Client) Listen() error {
	for {
		if err := c.Read(); err != nil {
			c.log.Debug().Err(err).Msg("listen stopped")
			return err
		}
	}
}

// Emit sends a fire-and-forget named event.
func (c *Client) Emit(event string, args ...interface{}) error {
	return c.emit(event, args, nil)
}

// EmitWithAck sends a named event and asks the server to reply: a
// correlation id is registered against fn and appended to the
// argument list as a trailing "ACK:<id>" tag. fn runs at most once,
// when (and if) the reply arrives on a subsequent Read.
func (c *Client) EmitWithAck(event string, fn AckFunc, args ...interface{}) error {
	return c.emit(event, args, fn)
}

func (c *Client) emit(event string, args []interface{}, fn AckFunc) error {
	expectsAck := fn != nil
	if expectsAck {
		id := c.acks.Register(fn)

		tagged := make([]interface{}, 0, len(args)+1)
		tagged = append(tagged, args...)
		args = append(tagged, siop.AckSentinel+":"+id.String())

		c.log.Debug().Str("event", event).Str("ack_id", id.String()).Msg("emit")
	} else {
		c.log.Debug().Str("event", event).Msg("emit")
	}

	return c.tr.Emit(event, args, expectsAck)
}

// On binds fn to event, replacing any previous handler for that name.
func (c *Client) On(event string, fn EventFunc) {
	c.events.On(event, fn)
}

// Of forwards the namespace to the transport. No local state changes.
func (c *Client) Of(ns string) {
	c.tr.Of(ns)
}

// Close tears the connection down and marks the client disconnected.
// Closing an already-disconnected client is a no-op.
func (c *Client) Close() error {
	c.mu.Lock()
	if !c.connected {
		c.mu.Unlock()
		return nil
	}
	c.connected = false
	c.mu.Unlock()

	c.log.Debug().Msg("closed")
	return c.tr.Close()
}
