package notification

import (
	"context"
	"fmt"

	"agrimarket/internal/domain"
)

// NotificationStore is the persistence surface the service writes through.
type NotificationStore interface {
	Create(ctx context.Context, n *Notification, data map[string]any) error
	GetByUserID(ctx context.Context, userID int64, limit int) ([]Notification, error)
	CountUnread(ctx context.Context, userID int64) (int64, error)
	MarkAsRead(ctx context.Context, notificationID, userID int64) error
	MarkAllAsRead(ctx context.Context, userID int64) error
}

type Service struct {
	repo NotificationStore
	hub  *Hub
}

func NewService(repo NotificationStore, hub *Hub) *Service {
	return &Service{repo: repo, hub: hub}
}

// NotifyBookingRequested tells the seller a new booking landed on their
// equipment.
func (s *Service) NotifyBookingRequested(ctx context.Context, sellerID int64, b *domain.Booking) error {
	n := &Notification{
		UserID:  sellerID,
		Type:    TypeBookingRequested,
		Title:   "New booking request",
		Message: fmt.Sprintf("Booking #%d is waiting for your decision", b.ID),
	}
	if err := s.repo.Create(ctx, n, bookingData(b)); err != nil {
		return err
	}

	s.hub.PushToUser(sellerID, Event{Type: EventBookingRequested, Payload: n})
	return nil
}

// NotifyBookingApproved tells the farmer their booking was approved. It joins
// the unread badge.
func (s *Service) NotifyBookingApproved(ctx context.Context, farmerID int64, b *domain.Booking) error {
	n := &Notification{
		UserID:  farmerID,
		Type:    TypeBookingApproved,
		Title:   "Booking approved",
		Message: fmt.Sprintf("Your booking #%d has been approved", b.ID),
	}
	if err := s.repo.Create(ctx, n, bookingData(b)); err != nil {
		return err
	}

	s.hub.PushToUser(farmerID, Event{Type: EventBookingApproved, Payload: n})
	return nil
}

// NotifyBookingRejected tells the farmer their booking was rejected.
// Rejections surface as a transient toast only, so they are stored already
// read and never join the unread badge.
func (s *Service) NotifyBookingRejected(ctx context.Context, farmerID int64, b *domain.Booking) error {
	n := &Notification{
		UserID:  farmerID,
		Type:    TypeBookingRejected,
		Title:   "Booking rejected",
		Message: fmt.Sprintf("Your booking #%d has been rejected", b.ID),
		IsRead:  true,
	}
	if err := s.repo.Create(ctx, n, bookingData(b)); err != nil {
		return err
	}

	s.hub.PushToUser(farmerID, Event{Type: EventBookingRejected, Payload: n})
	return nil
}

func (s *Service) GetUserNotifications(ctx context.Context, userID int64, limit int) ([]Notification, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	list, err := s.repo.GetByUserID(ctx, userID, limit)
	if err != nil {
		return nil, 0, err
	}

	unread, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		unread = 0
	}

	return list, unread, nil
}

func (s *Service) MarkAsRead(ctx context.Context, notificationID, userID int64) error {
	return s.repo.MarkAsRead(ctx, notificationID, userID)
}

func (s *Service) MarkAllAsRead(ctx context.Context, userID int64) error {
	return s.repo.MarkAllAsRead(ctx, userID)
}

func bookingData(b *domain.Booking) map[string]any {
	return map[string]any{
		"booking_id":   b.ID,
		"equipment_id": b.EquipmentID,
		"status":       string(b.Status),
		"start_date":   b.StartDate,
		"end_date":     b.EndDate,
		"total_cost":   b.TotalCost,
	}
}
