package notification

import (
	"context"
	"testing"

	"agrimarket/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockNotificationStore struct {
	mock.Mock
}

func (m *MockNotificationStore) Create(ctx context.Context, n *Notification, data map[string]any) error {
	args := m.Called(ctx, n, data)
	if n != nil {
		n.ID = 555
	}
	return args.Error(0)
}

func (m *MockNotificationStore) GetByUserID(ctx context.Context, userID int64, limit int) ([]Notification, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Notification), args.Error(1)
}

func (m *MockNotificationStore) CountUnread(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationStore) MarkAsRead(ctx context.Context, notificationID, userID int64) error {
	args := m.Called(ctx, notificationID, userID)
	return args.Error(0)
}

func (m *MockNotificationStore) MarkAllAsRead(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func testBooking() *domain.Booking {
	return &domain.Booking{
		ID:          123,
		EquipmentID: 10,
		FarmerID:    7,
		TotalCost:   1500,
		Status:      domain.BookingPending,
	}
}

func TestService_NotifyBookingApproved_StoredUnreadAndPushed(t *testing.T) {
	store := new(MockNotificationStore)
	hub := NewHub()
	sub := hub.Subscribe(7)

	var stored *Notification
	store.On("Create", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*Notification)
		}).
		Return(nil)

	service := NewService(store, hub)

	err := service.NotifyBookingApproved(context.Background(), 7, testBooking())

	assert.NoError(t, err)
	assert.Equal(t, TypeBookingApproved, stored.Type)
	assert.False(t, stored.IsRead)
	assert.Len(t, sub.C, 1)
}

func TestService_NotifyBookingRejected_StoredAlreadyRead(t *testing.T) {
	store := new(MockNotificationStore)
	hub := NewHub()
	sub := hub.Subscribe(7)

	var stored *Notification
	store.On("Create", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*Notification)
		}).
		Return(nil)

	service := NewService(store, hub)

	err := service.NotifyBookingRejected(context.Background(), 7, testBooking())

	assert.NoError(t, err)
	assert.Equal(t, TypeBookingRejected, stored.Type)
	// Rejections are toast-only, they never join the unread badge.
	assert.True(t, stored.IsRead)
	assert.Len(t, sub.C, 1)
}

func TestService_NotifyBookingRequested_GoesToSeller(t *testing.T) {
	store := new(MockNotificationStore)
	hub := NewHub()
	seller := hub.Subscribe(1)
	farmer := hub.Subscribe(7)

	store.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	service := NewService(store, hub)

	err := service.NotifyBookingRequested(context.Background(), 1, testBooking())

	assert.NoError(t, err)
	assert.Len(t, seller.C, 1)
	assert.Empty(t, farmer.C)
}

func TestService_GetUserNotifications_ClampsLimit(t *testing.T) {
	store := new(MockNotificationStore)
	service := NewService(store, NewHub())

	store.On("GetByUserID", mock.Anything, int64(7), 20).Return([]Notification{{ID: 1}}, nil)
	store.On("CountUnread", mock.Anything, int64(7)).Return(int64(1), nil)

	list, unread, err := service.GetUserNotifications(context.Background(), 7, 0)
	assert.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, int64(1), unread)

	_, _, err = service.GetUserNotifications(context.Background(), 7, 500)
	assert.NoError(t, err)

	store.AssertExpectations(t)
}
