// Package events provides the in-process domain event dispatcher.
package events

import (
	"sync"

	"github.com/alchemix/barkeep/internal/domain/shared"
	"go.uber.org/zap"
)

// Dispatcher implements shared.EventDispatcher by invoking registered
// handlers synchronously. A failing handler does not stop the others.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[string][]shared.EventHandler
	logger   *zap.Logger
}

// NewDispatcher creates a new event dispatcher
func NewDispatcher(logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		handlers: make(map[string][]shared.EventHandler),
		logger:   logger.Named("events"),
	}
}

// Dispatch dispatches an event to registered handlers
func (d *Dispatcher) Dispatch(event shared.DomainEvent) error {
	d.mu.RLock()
	handlers := d.handlers[event.EventName()]
	d.mu.RUnlock()

	if len(handlers) == 0 {
		d.logger.Debug("No handlers registered for event",
			zap.String("event", event.EventName()),
		)
		return nil
	}

	for _, handler := range handlers {
		if err := handler(event); err != nil {
			d.logger.Error("Failed to handle event",
				zap.String("event", event.EventName()),
				zap.Error(err),
			)
			// Continue processing other handlers
		}
	}

	return nil
}

// Register registers an event handler
func (d *Dispatcher) Register(eventName string, handler shared.EventHandler) {
	d.mu.Lock()
	d.handlers[eventName] = append(d.handlers[eventName], handler)
	d.mu.Unlock()

	d.logger.Debug("Registered event handler", zap.String("event", eventName))
}
