// Package events publishes storefront activity (searches, cart changes,
// orders) for downstream consumers. Delivery is best effort.
package events

import (
	"context"
	"sync"
	"time"
)

const (
	SearchPerformed = "search.performed"
	CartItemAdded   = "cart.item_added"
	CartUpdated     = "cart.updated"
	CartCleared     = "cart.cleared"
	CouponApplied   = "cart.coupon_applied"
	OrderCreated    = "order.created"
	WishlistToggled = "wishlist.toggled"
)

type Message struct {
	EventType  string    `json:"event_type"`
	Data       any       `json:"data"`
	OccurredAt time.Time `json:"occurred_at"`
}

type Publisher interface {
	// Publish never blocks on the broker and never fails the caller.
	Publish(ctx context.Context, key, eventType string, data any)
	Close() error
}

type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, string, any) {}
func (NopPublisher) Close() error                                 { return nil }

// Recorder keeps published messages in memory.
type Recorder struct {
	mu       sync.Mutex
	messages []Message
	keys     []string
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Publish(_ context.Context, key, eventType string, data any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, Message{EventType: eventType, Data: data, OccurredAt: time.Now().UTC()})
	r.keys = append(r.keys, key)
}

func (r *Recorder) Close() error { return nil }

func (r *Recorder) Messages() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Message(nil), r.messages...)
}

// Types lists the event types in publish order.
func (r *Recorder) Types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.messages))
	for _, m := range r.messages {
		out = append(out, m.EventType)
	}
	return out
}
