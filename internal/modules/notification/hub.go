package notification

import (
	"encoding/json"
	"sync"

	"github.com/google/uuid"
)

// Event is a realtime change event pushed to subscribed clients.
type Event struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

const (
	EventBookingRequested = "booking_requested"
	EventBookingApproved  = "booking_approved"
	EventBookingRejected  = "booking_rejected"
)

// Subscription is one listener's handle on the feed. Events arrive on C until
// the subscription is cancelled; after Unsubscribe nothing is delivered.
type Subscription struct {
	ID     string
	UserID int64
	C      chan []byte
}

// Hub fans booking change events out to per-user subscriptions. A user can
// hold several at once since each mounted view opens its own.
type Hub struct {
	mu   sync.RWMutex
	subs map[int64]map[string]*Subscription
}

func NewHub() *Hub {
	return &Hub{
		subs: make(map[int64]map[string]*Subscription),
	}
}

func (h *Hub) Subscribe(userID int64) *Subscription {
	sub := &Subscription{
		ID:     uuid.NewString(),
		UserID: userID,
		C:      make(chan []byte, 256),
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.subs[userID] == nil {
		h.subs[userID] = make(map[string]*Subscription)
	}
	h.subs[userID][sub.ID] = sub
	return sub
}

func (h *Hub) Unsubscribe(sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()
	userSubs, ok := h.subs[sub.UserID]
	if !ok {
		return
	}
	if existing, ok := userSubs[sub.ID]; ok && existing == sub {
		delete(userSubs, sub.ID)
		close(sub.C)
		if len(userSubs) == 0 {
			delete(h.subs, sub.UserID)
		}
	}
}

// PushToUser delivers an event to every live subscription of one user.
func (h *Hub) PushToUser(userID int64, event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, sub := range h.subs[userID] {
		select {
		case sub.C <- data:
		default:
			// Client too slow, skip
		}
	}
}

// SubscriberCount reports how many live subscriptions a user holds.
func (h *Hub) SubscriberCount(userID int64) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[userID])
}
