package equipment

import (
	"context"

	"agrimarket/internal/domain"
)

// EquipmentRepository defines the persistence operations for seller assets.
type EquipmentRepository interface {
	Create(ctx context.Context, e *domain.Equipment) error
	GetByID(ctx context.Context, id int64) (*domain.Equipment, error)
	ListAvailable(ctx context.Context, sellerID int64) ([]domain.Equipment, error)
	ListBySeller(ctx context.Context, sellerID int64) ([]domain.Equipment, error)
	SetAvailability(ctx context.Context, id int64, available bool) error
	Delete(ctx context.Context, id int64) error
}
