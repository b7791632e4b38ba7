package domain

import "time"

type BookingStatus string

const (
	BookingPending  BookingStatus = "pending"
	BookingApproved BookingStatus = "approved"
	BookingRejected BookingStatus = "rejected"
	// BookingCompleted is written by an external process only; no transition
	// into it exists in this service.
	BookingCompleted BookingStatus = "completed"
)

// ValidBookingStatus reports whether s is a known status value.
func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case BookingPending, BookingApproved, BookingRejected, BookingCompleted:
		return true
	}
	return false
}

type Booking struct {
	ID          int64         `json:"id"`
	EquipmentID int64         `json:"equipment_id" validate:"required"`
	FarmerID    int64         `json:"farmer_id" validate:"required"`
	StartDate   time.Time     `json:"start_date" validate:"required"`
	EndDate     time.Time     `json:"end_date" validate:"required"`
	TotalCost   float64       `json:"total_cost" validate:"gte=0"`
	Status      BookingStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`

	Equipment *Equipment `json:"equipment,omitempty" gorm:"foreignKey:EquipmentID"`
	Farmer    *User      `json:"farmer,omitempty" gorm:"foreignKey:FarmerID"`
}
