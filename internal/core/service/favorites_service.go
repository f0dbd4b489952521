package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/inkwell/showcase-api/internal/api/metrics"
	"github.com/inkwell/showcase-api/internal/core/domain"
	"github.com/inkwell/showcase-api/internal/core/ports"
)

type favoritesService struct {
	repo ports.FavoritesRepository
	log  zerolog.Logger
}

// NewFavoritesService returns a FavoritesService implementation. Authorization
// against userID happens in the transport layer before any call lands here.
func NewFavoritesService(repo ports.FavoritesRepository, log zerolog.Logger) ports.FavoritesService {
	return &favoritesService{repo: repo, log: log}
}

func (s *favoritesService) List(ctx context.Context, userID string) ([]*domain.Favorite, error) {
	favs, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return favs, nil
}

func (s *favoritesService) Add(ctx context.Context, userID, contentID string) error {
	f := &domain.Favorite{
		UserID:    userID,
		ContentID: contentID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Add(ctx, f); err != nil {
		if err == domain.ErrFavoriteExists {
			return err
		}
		return fmt.Errorf("add favorite: %w", err)
	}
	metrics.FavoriteMutationsTotal.WithLabelValues("add").Inc()
	return nil
}

func (s *favoritesService) Remove(ctx context.Context, userID, contentID string) error {
	if err := s.repo.Remove(ctx, userID, contentID); err != nil {
		if err == domain.ErrFavoriteNotFound {
			return err
		}
		return fmt.Errorf("remove favorite: %w", err)
	}
	metrics.FavoriteMutationsTotal.WithLabelValues("remove").Inc()
	return nil
}
