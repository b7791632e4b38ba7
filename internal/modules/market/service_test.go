package market

import (
	"context"
	"testing"

	"agrimarket/internal/domain"
	"agrimarket/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) List(ctx context.Context, category string) ([]domain.Product, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) DecrementStock(ctx context.Context, id int64, qty int) error {
	args := m.Called(ctx, id, qty)
	return args.Error(0)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, o *domain.Order) error {
	args := m.Called(ctx, o)
	if o != nil {
		o.ID = 321
	}
	return args.Error(0)
}

func (m *MockOrderRepository) ListByBuyerWithDetails(ctx context.Context, buyerID int64) ([]repository.BuyerOrderDetails, error) {
	args := m.Called(ctx, buyerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.BuyerOrderDetails), args.Error(1)
}

func TestService_CreateOrder_TotalFromStoredPrice(t *testing.T) {
	mockProducts := new(MockProductRepository)
	mockOrders := new(MockOrderRepository)

	mockProducts.On("GetByID", mock.Anything, int64(5)).Return(&domain.Product{
		ID:            5,
		Name:          "Wheat seeds",
		Category:      domain.CategorySeeds,
		Price:         120,
		StockQuantity: 50,
	}, nil)
	mockProducts.On("DecrementStock", mock.Anything, int64(5), 3).Return(nil)
	mockOrders.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockProducts, mockOrders)

	o, err := service.CreateOrder(context.Background(), CreateOrderRequest{
		ProductID: 5,
		BuyerID:   7,
		Quantity:  3,
	})

	assert.NoError(t, err)
	assert.Equal(t, 360.0, o.TotalPrice)
	assert.Equal(t, domain.BookingPending, o.Status)
	mockProducts.AssertExpectations(t)
	mockOrders.AssertExpectations(t)
}

func TestService_CreateOrder_ZeroQuantity(t *testing.T) {
	mockProducts := new(MockProductRepository)
	mockOrders := new(MockOrderRepository)
	service := NewService(mockProducts, mockOrders)

	_, err := service.CreateOrder(context.Background(), CreateOrderRequest{ProductID: 5, BuyerID: 7, Quantity: 0})

	assert.ErrorIs(t, err, ErrValidation)
	mockProducts.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestService_CreateOrder_OutOfStock(t *testing.T) {
	mockProducts := new(MockProductRepository)
	mockOrders := new(MockOrderRepository)

	mockProducts.On("GetByID", mock.Anything, int64(5)).Return(&domain.Product{ID: 5, Price: 120, StockQuantity: 1}, nil)
	mockProducts.On("DecrementStock", mock.Anything, int64(5), 10).Return(gorm.ErrRecordNotFound)

	service := NewService(mockProducts, mockOrders)

	_, err := service.CreateOrder(context.Background(), CreateOrderRequest{ProductID: 5, BuyerID: 7, Quantity: 10})

	assert.ErrorIs(t, err, ErrOutOfStock)
	mockOrders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_CreateOrder_ProductNotFound(t *testing.T) {
	mockProducts := new(MockProductRepository)
	mockOrders := new(MockOrderRepository)

	mockProducts.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(mockProducts, mockOrders)

	_, err := service.CreateOrder(context.Background(), CreateOrderRequest{ProductID: 99, BuyerID: 7, Quantity: 1})

	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestService_ListProducts_InvalidCategory(t *testing.T) {
	mockProducts := new(MockProductRepository)
	mockOrders := new(MockOrderRepository)
	service := NewService(mockProducts, mockOrders)

	_, err := service.ListProducts(context.Background(), "livestock")

	assert.ErrorIs(t, err, ErrValidation)
	mockProducts.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestService_ListProducts_CategoryFilter(t *testing.T) {
	mockProducts := new(MockProductRepository)
	mockOrders := new(MockOrderRepository)

	mockProducts.On("List", mock.Anything, "seeds").Return([]domain.Product{{ID: 5, Category: domain.CategorySeeds}}, nil)

	service := NewService(mockProducts, mockOrders)

	list, err := service.ListProducts(context.Background(), "seeds")

	assert.NoError(t, err)
	assert.Len(t, list, 1)
}
