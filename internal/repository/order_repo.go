package repository

import (
	"context"
	"time"

	"agrimarket/internal/domain"

	"gorm.io/gorm"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

type orderModel struct {
	ID              int64     `gorm:"column:id;primaryKey"`
	ProductID       int64     `gorm:"column:product_id;index"`
	BuyerID         int64     `gorm:"column:buyer_id;index"`
	Quantity        int       `gorm:"column:quantity"`
	TotalPrice      float64   `gorm:"column:total_price"`
	DeliveryAddress *string   `gorm:"column:delivery_address"`
	Status          string    `gorm:"column:status"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (orderModel) TableName() string { return "orders" }

func toDomainOrder(m orderModel) *domain.Order {
	var addr string
	if m.DeliveryAddress != nil {
		addr = *m.DeliveryAddress
	}

	return &domain.Order{
		ID:              m.ID,
		ProductID:       m.ProductID,
		BuyerID:         m.BuyerID,
		Quantity:        m.Quantity,
		TotalPrice:      m.TotalPrice,
		DeliveryAddress: addr,
		Status:          domain.BookingStatus(m.Status),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func toOrderModel(o *domain.Order) orderModel {
	var addr *string
	if o.DeliveryAddress != "" {
		v := o.DeliveryAddress
		addr = &v
	}

	return orderModel{
		ID:              o.ID,
		ProductID:       o.ProductID,
		BuyerID:         o.BuyerID,
		Quantity:        o.Quantity,
		TotalPrice:      o.TotalPrice,
		DeliveryAddress: addr,
		Status:          string(o.Status),
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

// BuyerOrderDetails is a tracking-view row: the order joined with its product.
type BuyerOrderDetails struct {
	ID          int64     `gorm:"column:id"`
	ProductID   int64     `gorm:"column:product_id"`
	Quantity    int       `gorm:"column:quantity"`
	TotalPrice  float64   `gorm:"column:total_price"`
	Status      string    `gorm:"column:status"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	ProductName string    `gorm:"column:product_name"`
	Category    string    `gorm:"column:category"`
	UnitPrice   float64   `gorm:"column:unit_price"`
}

func (r *OrderRepository) Create(ctx context.Context, o *domain.Order) error {
	m := toOrderModel(o)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*o = *toDomainOrder(m)
	return nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	var m orderModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainOrder(m), nil
}

// ListByBuyerWithDetails returns a buyer's orders joined with products,
// newest first.
func (r *OrderRepository) ListByBuyerWithDetails(ctx context.Context, buyerID int64) ([]BuyerOrderDetails, error) {
	var rows []BuyerOrderDetails
	q := `
SELECT o.id, o.product_id, o.quantity, o.total_price, o.status, o.created_at,
       p.name AS product_name, p.category, p.price AS unit_price
FROM orders o
JOIN products p ON p.id = o.product_id
WHERE o.buyer_id = ?
ORDER BY o.created_at DESC
`
	tx := r.db.WithContext(ctx).Raw(q, buyerID).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}
