package ports

import (
	"context"
	"time"

	"github.com/inkwell/showcase-api/internal/core/domain"
)

// CreateGiveawayInput is the DTO the transport layer passes to GiveawayService.
type CreateGiveawayInput struct {
	Title       string
	Prize       string
	Description string
	StartsAt    time.Time
	EndsAt      time.Time
	CreatedBy   string
}

// GiveawayRepository defines persistence operations for giveaways and entries.
type GiveawayRepository interface {
	Create(ctx context.Context, g *domain.Giveaway) (*domain.Giveaway, error)
	FindByID(ctx context.Context, id string) (*domain.Giveaway, error)
	// ListActive returns giveaways open at the given instant.
	ListActive(ctx context.Context, at time.Time) ([]*domain.Giveaway, error)
	InsertEntry(ctx context.Context, e *domain.GiveawayEntry) error
}

// GiveawayService implements the giveaway feature.
type GiveawayService interface {
	Create(ctx context.Context, input CreateGiveawayInput) (*domain.Giveaway, error)
	ListActive(ctx context.Context) ([]*domain.Giveaway, error)
	Enter(ctx context.Context, giveawayID, userID string) error
}
