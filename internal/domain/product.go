package domain

import "time"

type ProductCategory string

const (
	CategorySeeds      ProductCategory = "seeds"
	CategoryFertilizer ProductCategory = "fertilizer"
	CategoryTools      ProductCategory = "tools"
)

func ValidProductCategory(c ProductCategory) bool {
	switch c {
	case CategorySeeds, CategoryFertilizer, CategoryTools:
		return true
	}
	return false
}

type Product struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name" validate:"required"`
	Description   string          `json:"description,omitempty"`
	Category      ProductCategory `json:"category"`
	Price         float64         `json:"price" validate:"required,gte=0"`
	StockQuantity int             `json:"stock_quantity"`
	ImageURL      string          `json:"image_url,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// Order reuses the booking status enum. Orders are created pending and this
// service exposes no transition for them.
type Order struct {
	ID              int64         `json:"id"`
	ProductID       int64         `json:"product_id" validate:"required"`
	BuyerID         int64         `json:"buyer_id" validate:"required"`
	Quantity        int           `json:"quantity" validate:"required,gt=0"`
	TotalPrice      float64       `json:"total_price" validate:"gte=0"`
	DeliveryAddress string        `json:"delivery_address,omitempty"`
	Status          BookingStatus `json:"status"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`

	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}
