package tracking

import (
	"context"

	"agrimarket/internal/modules/booking"
	"agrimarket/internal/modules/market"
)

// BookingLister is the read side of the booking module this view consumes.
type BookingLister interface {
	GetMyBookings(ctx context.Context, farmerID int64) ([]booking.BookingDetails, error)
}

// OrderLister is the read side of the market module this view consumes.
type OrderLister interface {
	GetMyOrders(ctx context.Context, buyerID int64) ([]market.OrderDetails, error)
}

// Overview is the farmer's tracking page: both lists plus per-status counts
// for the badge row. Empty lists are just empty, never an error.
type Overview struct {
	Bookings      []booking.BookingDetails `json:"bookings"`
	Orders        []market.OrderDetails    `json:"orders"`
	BookingCounts map[string]int           `json:"booking_counts"`
	OrderCounts   map[string]int           `json:"order_counts"`
}

type Service struct {
	bookings BookingLister
	orders   OrderLister
}

func NewService(bookings BookingLister, orders OrderLister) *Service {
	return &Service{
		bookings: bookings,
		orders:   orders,
	}
}

// GetOverview fetches the farmer's bookings and orders independently and
// groups each by status.
func (s *Service) GetOverview(ctx context.Context, farmerID int64) (*Overview, error) {
	bookings, err := s.bookings.GetMyBookings(ctx, farmerID)
	if err != nil {
		return nil, err
	}

	orders, err := s.orders.GetMyOrders(ctx, farmerID)
	if err != nil {
		return nil, err
	}

	bookingCounts := make(map[string]int)
	for _, b := range bookings {
		bookingCounts[b.Status]++
	}
	orderCounts := make(map[string]int)
	for _, o := range orders {
		orderCounts[o.Status]++
	}

	return &Overview{
		Bookings:      bookings,
		Orders:        orders,
		BookingCounts: bookingCounts,
		OrderCounts:   orderCounts,
	}, nil
}
