package equipment

import (
	"context"
	"errors"
	"strings"

	"agrimarket/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	equipment EquipmentRepository
}

func NewService(equipment EquipmentRepository) *Service {
	return &Service{equipment: equipment}
}

// Create registers a new rentable asset for the seller. New equipment is
// listed as available right away.
func (s *Service) Create(ctx context.Context, req CreateEquipmentRequest) (*domain.Equipment, error) {
	if strings.TrimSpace(req.Name) == "" || req.PricePerHour < 0 {
		return nil, ErrValidation
	}

	e := &domain.Equipment{
		SellerID:     req.SellerID,
		Name:         strings.TrimSpace(req.Name),
		Description:  req.Description,
		PricePerHour: req.PricePerHour,
		IsAvailable:  true,
		ImageURL:     req.ImageURL,
	}

	if err := s.equipment.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// ListAvailable is the public catalog of bookable equipment, optionally
// narrowed to one seller.
func (s *Service) ListAvailable(ctx context.Context, sellerID int64) ([]domain.Equipment, error) {
	return s.equipment.ListAvailable(ctx, sellerID)
}

func (s *Service) ListMine(ctx context.Context, sellerID int64) ([]domain.Equipment, error) {
	return s.equipment.ListBySeller(ctx, sellerID)
}

// SetAvailability toggles whether the asset can be booked. Owner only.
func (s *Service) SetAvailability(ctx context.Context, id, sellerID int64, available bool) (*domain.Equipment, error) {
	e, err := s.getOwned(ctx, id, sellerID)
	if err != nil {
		return nil, err
	}

	if err := s.equipment.SetAvailability(ctx, e.ID, available); err != nil {
		return nil, err
	}
	e.IsAvailable = available
	return e, nil
}

// Delete removes the asset. Owner only.
func (s *Service) Delete(ctx context.Context, id, sellerID int64) error {
	e, err := s.getOwned(ctx, id, sellerID)
	if err != nil {
		return err
	}
	return s.equipment.Delete(ctx, e.ID)
}

func (s *Service) getOwned(ctx context.Context, id, sellerID int64) (*domain.Equipment, error) {
	e, err := s.equipment.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if e.SellerID != sellerID {
		return nil, ErrForbidden
	}
	return e, nil
}
