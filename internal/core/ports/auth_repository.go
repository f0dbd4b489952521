package ports

import (
	"context"

	"github.com/inkwell/showcase-api/internal/core/domain"
)

// UserRepository defines the interface for principal persistence.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Principal, error)
	FindByEmail(ctx context.Context, email string) (*domain.Principal, error)
	Create(ctx context.Context, user *domain.Principal) (*domain.Principal, error)
}
