package market

import "time"

type CreateOrderRequest struct {
	ProductID       int64  `json:"product_id" binding:"required"`
	BuyerID         int64  `json:"-"`
	Quantity        int    `json:"quantity" binding:"required,gt=0"`
	DeliveryAddress string `json:"delivery_address"`
}

// OrderDetails is a buyer-facing order row with product context attached.
type OrderDetails struct {
	ID          int64     `json:"id"`
	ProductID   int64     `json:"product_id"`
	Quantity    int       `json:"quantity"`
	TotalPrice  float64   `json:"total_price"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	ProductName string    `json:"product_name"`
	Category    string    `json:"category"`
	UnitPrice   float64   `json:"unit_price"`
}
