package notification

import (
	"encoding/json"
	"time"
)

// Type represents notification type
type Type string

const (
	TypeBookingRequested Type = "booking_requested" // seller: new booking on owned equipment
	TypeBookingApproved  Type = "booking_approved"  // farmer: booking approved
	TypeBookingRejected  Type = "booking_rejected"  // farmer: booking rejected
)

// Notification is a persisted user notification. The realtime feed pushes a
// copy of it the moment it is created.
type Notification struct {
	ID        int64           `json:"id"`
	UserID    int64           `json:"user_id"`
	Type      Type            `json:"type"`
	Title     string          `json:"title"`
	Message   string          `json:"message,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
	IsRead    bool            `json:"is_read"`
	CreatedAt time.Time       `json:"created_at"`
}
