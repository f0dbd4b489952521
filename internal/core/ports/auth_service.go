package ports

import (
	"context"

	"github.com/inkwell/showcase-api/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, password, email string) (*domain.Principal, error)
	Login(ctx context.Context, email, password string) (string, *domain.Principal, error)
}
