package booking

import "time"

type CreateBookingRequest struct {
	EquipmentID int64     `json:"equipment_id" binding:"required"`
	FarmerID    int64     `json:"-"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
}

// BookingDetails is a farmer-facing booking row with equipment and seller
// context attached.
type BookingDetails struct {
	ID          int64     `json:"id"`
	EquipmentID int64     `json:"equipment_id"`
	Status      string    `json:"status"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	TotalCost   float64   `json:"total_cost"`
	CreatedAt   time.Time `json:"created_at"`

	EquipmentName string  `json:"equipment_name"`
	PricePerHour  float64 `json:"price_per_hour"`
	SellerName    string  `json:"seller_name"`
	SellerPhone   string  `json:"seller_phone,omitempty"`
}

// ModerationBooking is a seller-facing booking row with the requesting
// farmer's contact details attached.
type ModerationBooking struct {
	ID          int64     `json:"id"`
	EquipmentID int64     `json:"equipment_id"`
	FarmerID    int64     `json:"farmer_id"`
	Status      string    `json:"status"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	TotalCost   float64   `json:"total_cost"`
	CreatedAt   time.Time `json:"created_at"`

	EquipmentName string  `json:"equipment_name"`
	PricePerHour  float64 `json:"price_per_hour"`
	FarmerName    string  `json:"farmer_name"`
	FarmerPhone   string  `json:"farmer_phone,omitempty"`
}
