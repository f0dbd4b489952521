package ports

import (
	"context"

	"github.com/inkwell/showcase-api/internal/core/domain"
)

// FavoritesRepository defines persistence operations for per-user favorites.
type FavoritesRepository interface {
	ListByUser(ctx context.Context, userID string) ([]*domain.Favorite, error)
	Add(ctx context.Context, f *domain.Favorite) error
	Remove(ctx context.Context, userID, contentID string) error
}

// FavoritesService implements the favorites feature. Callers are responsible
// for verifying the requester is authorized for userID before invoking it.
type FavoritesService interface {
	List(ctx context.Context, userID string) ([]*domain.Favorite, error)
	Add(ctx context.Context, userID, contentID string) error
	Remove(ctx context.Context, userID, contentID string) error
}
