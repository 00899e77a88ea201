package events

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// EventPublisher defines the interface for publishing store change notifications
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}

// Event types
const (
	ItemCreated    = "ItemCreated"
	ItemUpdated    = "ItemUpdated"
	ItemDeleted    = "ItemDeleted"
	BatchCreated   = "BatchCreated"
	BatchUpdated   = "BatchUpdated"
	BatchDeleted   = "BatchDeleted"
	ItemsRefreshed = "ItemsRefreshed"
)

// Event is emitted after a mutation has been acknowledged by the remote store
type Event struct {
	Type       string    `json:"type"`
	ItemID     int64     `json:"item_id,omitempty"`
	BatchID    int64     `json:"batch_id,omitempty"`
	Field      string    `json:"field,omitempty"`
	ItemCount  int       `json:"item_count,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// PartitionKey groups events of the same item
func (e Event) PartitionKey() string {
	switch {
	case e.ItemID != 0:
		return itoa(e.ItemID)
	case e.BatchID != 0:
		return "batch-" + itoa(e.BatchID)
	default:
		return ""
	}
}

const defaultHistory = 256

// InMemoryEventPublisher keeps a bounded history and fans events out to subscribers
type InMemoryEventPublisher struct {
	logger *zap.Logger

	mu          sync.Mutex
	history     []Event
	limit       int
	subscribers map[int]chan Event
	nextID      int
}

func NewEventPublisher(logger *zap.Logger) *InMemoryEventPublisher {
	return &InMemoryEventPublisher{
		logger:      logger,
		limit:       defaultHistory,
		subscribers: make(map[int]chan Event),
	}
}

// Publish never blocks: a subscriber whose buffer is full misses the event.
func (p *InMemoryEventPublisher) Publish(ctx context.Context, event Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.history = append(p.history, event)
	if len(p.history) > p.limit {
		p.history = p.history[len(p.history)-p.limit:]
	}

	for id, ch := range p.subscribers {
		select {
		case ch <- event:
		default:
			p.logger.Warn("Dropping event for slow subscriber",
				zap.Int("subscriber", id),
				zap.String("event-type", event.Type),
			)
		}
	}

	p.logger.Debug("Event published (in-memory)",
		zap.String("event-type", event.Type),
		zap.Int64("item_id", event.ItemID),
		zap.Int64("batch_id", event.BatchID),
	)
	return nil
}

// Subscribe returns a buffered channel of future events and a cancel function
func (p *InMemoryEventPublisher) Subscribe(buffer int) (<-chan Event, func()) {
	p.mu.Lock()
	defer p.mu.Unlock()

	id := p.nextID
	p.nextID++
	ch := make(chan Event, buffer)
	p.subscribers[id] = ch

	return ch, func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		if sub, ok := p.subscribers[id]; ok {
			delete(p.subscribers, id)
			close(sub)
		}
	}
}

// Events returns a copy of the retained history
func (p *InMemoryEventPublisher) Events() []Event {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]Event, len(p.history))
	copy(out, p.history)
	return out
}

// MultiPublisher publishes to every delegate, returning the first error
type MultiPublisher []EventPublisher

func (m MultiPublisher) Publish(ctx context.Context, event Event) error {
	var first error
	for _, p := range m {
		if err := p.Publish(ctx, event); err != nil && first == nil {
			first = err
		}
	}
	return first
}
