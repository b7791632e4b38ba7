package domain

import "time"

type Equipment struct {
	ID           int64     `json:"id"`
	SellerID     int64     `json:"seller_id" validate:"required"`
	Name         string    `json:"name" validate:"required"`
	Description  string    `json:"description,omitempty"`
	PricePerHour float64   `json:"price_per_hour" validate:"required,gte=0"`
	IsAvailable  bool      `json:"is_available"`
	ImageURL     string    `json:"image_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Seller *User `json:"seller,omitempty" gorm:"foreignKey:SellerID"`
}
