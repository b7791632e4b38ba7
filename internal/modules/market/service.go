package market

import (
	"context"
	"errors"

	"agrimarket/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	products ProductRepository
	orders   OrderRepository
}

func NewService(products ProductRepository, orders OrderRepository) *Service {
	return &Service{
		products: products,
		orders:   orders,
	}
}

// ListProducts returns the catalog, optionally narrowed to one category.
func (s *Service) ListProducts(ctx context.Context, category string) ([]domain.Product, error) {
	if category != "" && !domain.ValidProductCategory(domain.ProductCategory(category)) {
		return nil, ErrValidation
	}
	return s.products.List(ctx, category)
}

// CreateOrder places a purchase. The total is recomputed from the stored unit
// price and the stock is decremented atomically; there is no approval step,
// the order is created pending and stays wherever an external process moves it.
func (s *Service) CreateOrder(ctx context.Context, req CreateOrderRequest) (*domain.Order, error) {
	if req.Quantity <= 0 {
		return nil, ErrValidation
	}

	p, err := s.products.GetByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	if err := s.products.DecrementStock(ctx, p.ID, req.Quantity); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOutOfStock
		}
		return nil, err
	}

	o := &domain.Order{
		ProductID:       p.ID,
		BuyerID:         req.BuyerID,
		Quantity:        req.Quantity,
		TotalPrice:      float64(req.Quantity) * p.Price,
		DeliveryAddress: req.DeliveryAddress,
		Status:          domain.BookingPending,
	}

	if err := s.orders.Create(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// GetMyOrders returns the buyer's orders with product context, newest first.
func (s *Service) GetMyOrders(ctx context.Context, buyerID int64) ([]OrderDetails, error) {
	rows, err := s.orders.ListByBuyerWithDetails(ctx, buyerID)
	if err != nil {
		return nil, err
	}

	out := make([]OrderDetails, 0, len(rows))
	for _, r := range rows {
		out = append(out, OrderDetails{
			ID:          r.ID,
			ProductID:   r.ProductID,
			Quantity:    r.Quantity,
			TotalPrice:  r.TotalPrice,
			Status:      r.Status,
			CreatedAt:   r.CreatedAt,
			ProductName: r.ProductName,
			Category:    r.Category,
			UnitPrice:   r.UnitPrice,
		})
	}
	return out, nil
}
