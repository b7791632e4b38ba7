package equipment

import (
	"context"
	"testing"

	"agrimarket/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockEquipmentRepository struct {
	mock.Mock
}

func (m *MockEquipmentRepository) Create(ctx context.Context, e *domain.Equipment) error {
	args := m.Called(ctx, e)
	if e != nil {
		e.ID = 10
	}
	return args.Error(0)
}

func (m *MockEquipmentRepository) GetByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equipment), args.Error(1)
}

func (m *MockEquipmentRepository) ListAvailable(ctx context.Context, sellerID int64) ([]domain.Equipment, error) {
	args := m.Called(ctx, sellerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Equipment), args.Error(1)
}

func (m *MockEquipmentRepository) ListBySeller(ctx context.Context, sellerID int64) ([]domain.Equipment, error) {
	args := m.Called(ctx, sellerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Equipment), args.Error(1)
}

func (m *MockEquipmentRepository) SetAvailability(ctx context.Context, id int64, available bool) error {
	args := m.Called(ctx, id, available)
	return args.Error(0)
}

func (m *MockEquipmentRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestService_Create_ListedAvailable(t *testing.T) {
	mockRepo := new(MockEquipmentRepository)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(mockRepo)

	e, err := service.Create(context.Background(), CreateEquipmentRequest{
		SellerID:     1,
		Name:         "  Tractor  ",
		PricePerHour: 500,
	})

	assert.NoError(t, err)
	assert.Equal(t, "Tractor", e.Name)
	assert.True(t, e.IsAvailable)
}

func TestService_Create_BlankName(t *testing.T) {
	mockRepo := new(MockEquipmentRepository)
	service := NewService(mockRepo)

	_, err := service.Create(context.Background(), CreateEquipmentRequest{SellerID: 1, Name: "   ", PricePerHour: 500})

	assert.ErrorIs(t, err, ErrValidation)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_ListAvailable_SellerFilterForwarded(t *testing.T) {
	mockRepo := new(MockEquipmentRepository)

	mockRepo.On("ListAvailable", mock.Anything, int64(1)).Return([]domain.Equipment{{ID: 10, SellerID: 1}}, nil)

	service := NewService(mockRepo)

	list, err := service.ListAvailable(context.Background(), 1)

	assert.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, int64(1), list[0].SellerID)
	mockRepo.AssertExpectations(t)
}

func TestService_ListAvailable_NoFilterListsAll(t *testing.T) {
	mockRepo := new(MockEquipmentRepository)

	mockRepo.On("ListAvailable", mock.Anything, int64(0)).Return([]domain.Equipment{
		{ID: 10, SellerID: 1},
		{ID: 11, SellerID: 2},
	}, nil)

	service := NewService(mockRepo)

	list, err := service.ListAvailable(context.Background(), 0)

	assert.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestService_SetAvailability_OwnerOnly(t *testing.T) {
	mockRepo := new(MockEquipmentRepository)

	mockRepo.On("GetByID", mock.Anything, int64(10)).Return(&domain.Equipment{ID: 10, SellerID: 1, IsAvailable: true}, nil)

	service := NewService(mockRepo)

	_, err := service.SetAvailability(context.Background(), 10, 2, false)

	assert.ErrorIs(t, err, ErrForbidden)
	mockRepo.AssertNotCalled(t, "SetAvailability", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_SetAvailability_Toggles(t *testing.T) {
	mockRepo := new(MockEquipmentRepository)

	mockRepo.On("GetByID", mock.Anything, int64(10)).Return(&domain.Equipment{ID: 10, SellerID: 1, IsAvailable: true}, nil)
	mockRepo.On("SetAvailability", mock.Anything, int64(10), false).Return(nil)

	service := NewService(mockRepo)

	e, err := service.SetAvailability(context.Background(), 10, 1, false)

	assert.NoError(t, err)
	assert.False(t, e.IsAvailable)
	mockRepo.AssertExpectations(t)
}

func TestService_Delete_NotFound(t *testing.T) {
	mockRepo := new(MockEquipmentRepository)

	mockRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(mockRepo)

	err := service.Delete(context.Background(), 99, 1)

	assert.ErrorIs(t, err, ErrNotFound)
	mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
