package market

import (
	"context"

	"agrimarket/internal/domain"
	"agrimarket/internal/repository"
)

// ProductRepository defines the catalog lookups the market needs.
type ProductRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	List(ctx context.Context, category string) ([]domain.Product, error)
	DecrementStock(ctx context.Context, id int64, qty int) error
}

// OrderRepository defines the persistence operations for purchases.
type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) error
	ListByBuyerWithDetails(ctx context.Context, buyerID int64) ([]repository.BuyerOrderDetails, error)
}
