// Package annotations provides a low-overhead event system for tracking
// clause lowering activity and debugging the generated RAM trees.
package annotations

import (
	"sync"
	"time"
)

// Event name constants following hierarchical naming pattern
const (
	// Clause lowering lifecycle
	ClauseLowered  = "clause/lowered"
	FactLowered    = "clause/fact.lowered"
	VersionEmitted = "clause/version.emitted"

	// Symbol table activity
	SymbolsInterned  = "symbols/interned"
	SymbolsPersisted = "symbols/persisted"
	SymbolsRestored  = "symbols/restored"

	// Errors
	ErrorStructural  = "error/clause.structural"
	ErrorTranslation = "error/clause.translation"
)

// Event represents a single annotation event during lowering.
type Event struct {
	Name    string                 // Event name using the hierarchical constants above
	Start   time.Time              // Start timestamp
	End     time.Time              // End timestamp
	Latency time.Duration          // Duration (End - Start)
	Data    map[string]interface{} // Additional event-specific data
}

// Handler processes annotation events as they occur.
type Handler func(event Event)

// Collector accumulates events during lowering.
type Collector struct {
	enabled bool
	handler Handler
	mu      sync.Mutex
	events  []Event
}

// NewCollector creates a new annotation collector.
func NewCollector(handler Handler) *Collector {
	return &Collector{
		enabled: handler != nil,
		handler: handler,
		events:  make([]Event, 0, 64),
	}
}

// Handler returns the underlying event handler.
func (c *Collector) Handler() Handler {
	return c.handler
}

// Add records a new event.
// Thread-safe for concurrent access.
func (c *Collector) Add(event Event) {
	if c == nil || !c.enabled {
		return
	}

	c.mu.Lock()
	c.events = append(c.events, event)
	c.mu.Unlock()

	// Call handler outside the lock to avoid deadlocks
	if c.handler != nil {
		c.handler(event)
	}
}

// AddTiming records an event with timing information.
func (c *Collector) AddTiming(name string, start time.Time, data map[string]interface{}) {
	if c == nil || !c.enabled {
		return
	}

	end := time.Now()
	c.Add(Event{
		Name:    name,
		Start:   start,
		End:     end,
		Latency: end.Sub(start),
		Data:    data,
	})
}

// Events returns a copy of all collected events.
func (c *Collector) Events() []Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	eventsCopy := make([]Event, len(c.events))
	copy(eventsCopy, c.events)
	return eventsCopy
}

// Reset clears the collector for reuse.
func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = c.events[:0]
}
