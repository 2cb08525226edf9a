package sioclient

import "sync"

// EventFunc handles a named event, receiving its arguments
// positionally.
type EventFunc func(args ...interface{})

// eventRegistry maps an event name to its single handler.
type eventRegistry struct {
	mu       sync.Mutex
	handlers map[string]EventFunc
}

func newEventRegistry() *eventRegistry {
	return &eventRegistry{handlers: make(map[string]EventFunc)}
}

// On binds fn to event, replacing any previous handler. There is no
// unbind; handlers live as long as the session.
func (reg *eventRegistry) On(event string, fn EventFunc) {
	reg.mu.Lock()
	reg.handlers[event] = fn
	reg.mu.Unlock()
}

// Trigger invokes the handler for event. An event nobody listens to
// is dropped silently; no buffering, no default handler.
func (reg *eventRegistry) Trigger(event string, args []interface{}) {
	reg.mu.Lock()
	fn, ok := reg.handlers[event]
	reg.mu.Unlock()

	if ok {
		fn(args...)
	}
}
