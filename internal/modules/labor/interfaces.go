package labor

import (
	"context"

	"agrimarket/internal/domain"
	"agrimarket/internal/repository"
)

// LaborProfileRepository defines the persistence operations for laborer
// listings.
type LaborProfileRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.LaborProfile, error)
	Update(ctx context.Context, p *domain.LaborProfile) error
	SetAvailability(ctx context.Context, userID int64, available bool) error
	ListAvailable(ctx context.Context) ([]repository.LaborerListing, error)
}
