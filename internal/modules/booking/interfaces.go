package booking

import (
	"context"

	"agrimarket/internal/domain"
	"agrimarket/internal/repository"
)

// BookingRepository defines the interface for booking operations
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetEquipmentOwnerForBooking(ctx context.Context, bookingID int64) (ownerID int64, status string, err error)
	UpdateStatus(ctx context.Context, bookingID int64, status string) error
	ListByEquipmentIDs(ctx context.Context, equipmentIDs []int64) ([]repository.SellerBookingDetails, error)
	ListByFarmerWithDetails(ctx context.Context, farmerID int64) ([]repository.FarmerBookingDetails, error)
	CountPendingByEquipmentIDs(ctx context.Context, equipmentIDs []int64) (int64, error)
}

// EquipmentRepository defines the interface for equipment lookups
type EquipmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Equipment, error)
	GetIDsBySeller(ctx context.Context, sellerID int64) ([]int64, error)
}

// NotificationSender pushes booking lifecycle notifications to the affected
// user, persisted and over the realtime feed.
type NotificationSender interface {
	NotifyBookingRequested(ctx context.Context, sellerID int64, b *domain.Booking) error
	NotifyBookingApproved(ctx context.Context, farmerID int64, b *domain.Booking) error
	NotifyBookingRejected(ctx context.Context, farmerID int64, b *domain.Booking) error
}
