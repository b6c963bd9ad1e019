package event

import (
	"github.com/bethropolis/modal/internal/logger"
)

// Handler receives an event. Returning true consumes it, so handlers
// subscribed later do not see it.
type Handler func(e Event) bool

// Manager keeps subscriptions and dispatches synchronously on the caller's
// goroutine. It is not safe for concurrent use.
type Manager struct {
	handlers map[Type][]Handler
}

// NewManager creates an event manager with no subscribers.
func NewManager() *Manager {
	return &Manager{handlers: make(map[Type][]Handler)}
}

// Subscribe adds handler for eventType.
func (m *Manager) Subscribe(eventType Type, handler Handler) {
	m.handlers[eventType] = append(m.handlers[eventType], handler)
	logger.DebugTagf("event", "event: handler subscribed to %s", eventType)
}

// Dispatch calls the handlers of eventType in subscription order.
func (m *Manager) Dispatch(eventType Type, data any) {
	if m == nil {
		return
	}
	handlers := m.handlers[eventType]
	if len(handlers) == 0 {
		return
	}
	logger.DebugTagf("event", "event: dispatching %s to %d handler(s)", eventType, len(handlers))

	// Copy so a handler that subscribes during dispatch is not called now.
	e := Event{Type: eventType, Data: data}
	for _, h := range append([]Handler(nil), handlers...) {
		if h(e) {
			return
		}
	}
}
