package sioclient

import (
	"sync"

	"github.com/mdevan/socketio-client/session"
)

// AckFunc receives the response value of an acknowledgement reply.
type AckFunc func(response interface{})

// ackRegistry holds callbacks awaiting a server reply, keyed by the
// correlation id sent with the emit that requested them. Entries with
// no reply are kept for the life of the session; there is no expiry.
type ackRegistry struct {
	mu      sync.Mutex
	pending map[session.ID]AckFunc
}

func newAckRegistry() *ackRegistry {
	return &ackRegistry{pending: make(map[session.ID]AckFunc)}
}

// Register stores fn under a fresh correlation id and returns the id.
func (reg *ackRegistry) Register(fn AckFunc) session.ID {
	id := session.GenerateID()

	reg.mu.Lock()
	reg.pending[id] = fn
	reg.mu.Unlock()

	return id
}

// Resolve invokes and removes the callback registered under id. The
// entry is gone before the callback runs, so a callback fires at most
// once. A late, duplicate or unknown id is a no-op: the wire may
// legitimately carry replies nobody local cares about.
func (reg *ackRegistry) Resolve(id session.ID, response interface{}) {
	reg.mu.Lock()
	fn, ok := reg.pending[id]
	delete(reg.pending, id)
	reg.mu.Unlock()

	if ok {
		fn(response)
	}
}
