package auth

import (
	"context"

	"agrimarket/internal/domain"
)

// UserRepository defines the persistence operations auth needs.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

// LaborProfileRepository is used to create the empty labor profile that goes
// with a laborer registration.
type LaborProfileRepository interface {
	Create(ctx context.Context, p *domain.LaborProfile) error
}
