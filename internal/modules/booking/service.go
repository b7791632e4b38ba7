package booking

import (
	"context"
	"math"
	"time"

	"agrimarket/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
)

type Service struct {
	bookings  BookingRepository
	equipment EquipmentRepository
	notifs    NotificationSender
}

func NewService(bookings BookingRepository, equipment EquipmentRepository, notifs NotificationSender) *Service {
	return &Service{
		bookings:  bookings,
		equipment: equipment,
		notifs:    notifs,
	}
}

// CreateBooking validates the requested range, recomputes the cost from the
// stored hourly price and inserts the booking as pending. The cost is never
// taken from the client.
func (s *Service) CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return nil, ErrValidation
	}
	if !req.EndDate.After(req.StartDate) {
		return nil, ErrValidation
	}

	eq, err := s.equipment.GetByID(ctx, req.EquipmentID)
	if err != nil {
		return nil, ErrNotFound
	}
	if !eq.IsAvailable {
		return nil, ErrEquipmentUnavailable
	}

	total := EstimateCost(req.StartDate, req.EndDate, eq.PricePerHour)

	b := &domain.Booking{
		EquipmentID: req.EquipmentID,
		FarmerID:    req.FarmerID,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		TotalCost:   total,
		Status:      domain.BookingPending,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == "23503" {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyBookingRequested(ctx, eq.SellerID, b)
	}

	return b, nil
}

// ListForSeller returns the bookings placed against the seller's equipment.
// Two-step fetch: owned equipment ids first, bookings second; an empty owned
// set short-circuits without a bookings query. The status filter partitions
// the already fetched set, it never issues a narrower query.
func (s *Service) ListForSeller(ctx context.Context, sellerID int64, status string) ([]ModerationBooking, error) {
	ids, err := s.equipment.GetIDsBySeller(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []ModerationBooking{}, nil
	}

	rows, err := s.bookings.ListByEquipmentIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]ModerationBooking, 0, len(rows))
	for _, r := range rows {
		if status != "" && status != "all" && r.Status != status {
			continue
		}
		var phone string
		if r.FarmerPhone != nil {
			phone = *r.FarmerPhone
		}
		out = append(out, ModerationBooking{
			ID:            r.ID,
			EquipmentID:   r.EquipmentID,
			FarmerID:      r.FarmerID,
			Status:        r.Status,
			StartDate:     r.StartDate,
			EndDate:       r.EndDate,
			TotalCost:     r.TotalCost,
			CreatedAt:     r.CreatedAt,
			EquipmentName: r.EquipName,
			PricePerHour:  r.PricePerHour,
			FarmerName:    r.FarmerName,
			FarmerPhone:   phone,
		})
	}
	return out, nil
}

// CountPendingForSeller returns how many bookings on the seller's equipment
// still await a decision. Backs the moderation badge.
func (s *Service) CountPendingForSeller(ctx context.Context, sellerID int64) (int64, error) {
	ids, err := s.equipment.GetIDsBySeller(ctx, sellerID)
	if err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, nil
	}
	return s.bookings.CountPendingByEquipmentIDs(ctx, ids)
}

// UpdateBookingStatus moves a pending booking to approved or rejected. Only
// the seller who owns the referenced equipment may do this; the affected
// farmer is notified on success.
func (s *Service) UpdateBookingStatus(ctx context.Context, bookingID, actorUserID int64, actorRole string, newStatus domain.BookingStatus) (*domain.Booking, error) {
	if actorRole != string(domain.RoleSeller) {
		return nil, ErrForbidden
	}
	if newStatus != domain.BookingApproved && newStatus != domain.BookingRejected {
		return nil, ErrInvalidStatusTransition
	}

	ownerID, currentStatus, err := s.bookings.GetEquipmentOwnerForBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if ownerID == 0 && currentStatus == "" {
		return nil, ErrNotFound
	}
	if ownerID != actorUserID {
		return nil, ErrForbidden
	}

	if currentStatus != string(domain.BookingPending) {
		return nil, ErrInvalidStatusTransition
	}

	if err := s.bookings.UpdateStatus(ctx, bookingID, string(newStatus)); err != nil {
		return nil, err
	}

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if s.notifs != nil {
		switch newStatus {
		case domain.BookingApproved:
			_ = s.notifs.NotifyBookingApproved(ctx, b.FarmerID, b)
		case domain.BookingRejected:
			_ = s.notifs.NotifyBookingRejected(ctx, b.FarmerID, b)
		}
	}

	return b, nil
}

// GetMyBookings returns the farmer's bookings with equipment and seller
// context, newest first.
func (s *Service) GetMyBookings(ctx context.Context, farmerID int64) ([]BookingDetails, error) {
	rows, err := s.bookings.ListByFarmerWithDetails(ctx, farmerID)
	if err != nil {
		return nil, err
	}

	out := make([]BookingDetails, 0, len(rows))
	for _, r := range rows {
		var phone string
		if r.SellerPhone != nil {
			phone = *r.SellerPhone
		}
		out = append(out, BookingDetails{
			ID:            r.ID,
			EquipmentID:   r.EquipmentID,
			Status:        r.Status,
			StartDate:     r.StartDate,
			EndDate:       r.EndDate,
			TotalCost:     r.TotalCost,
			CreatedAt:     r.CreatedAt,
			EquipmentName: r.EquipName,
			PricePerHour:  r.PricePerHour,
			SellerName:    r.SellerName,
			SellerPhone:   phone,
		})
	}
	return out, nil
}

// EstimateCost computes the price of a range against an hourly rate, rounding
// partial hours up. Exposed so the request form quote and the stored cost
// share one implementation.
func EstimateCost(start, end time.Time, pricePerHour float64) float64 {
	if !end.After(start) {
		return 0
	}
	return math.Ceil(end.Sub(start).Hours()) * pricePerHour
}
