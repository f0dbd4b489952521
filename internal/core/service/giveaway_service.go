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

// EntryGuard abstracts the once-per-user entry check (Redis).
type EntryGuard interface {
	HasEntered(ctx context.Context, giveawayID, userID string) (bool, error)
	MarkEntered(ctx context.Context, giveawayID, userID string) error
}

type giveawayService struct {
	repo  ports.GiveawayRepository
	guard EntryGuard
	now   func() time.Time
	log   zerolog.Logger
}

// NewGiveawayService returns a GiveawayService implementation.
func NewGiveawayService(repo ports.GiveawayRepository, guard EntryGuard, log zerolog.Logger) ports.GiveawayService {
	return &giveawayService{repo: repo, guard: guard, now: time.Now, log: log}
}

func (s *giveawayService) Create(ctx context.Context, input ports.CreateGiveawayInput) (*domain.Giveaway, error) {
	if input.Title == "" || input.Prize == "" {
		return nil, fmt.Errorf("create giveaway: title and prize are required: %w", domain.ErrInvalidGiveaway)
	}
	if !input.EndsAt.After(input.StartsAt) {
		return nil, fmt.Errorf("create giveaway: ends_at must be after starts_at: %w", domain.ErrInvalidGiveaway)
	}

	g := &domain.Giveaway{
		Title:       input.Title,
		Prize:       input.Prize,
		Description: input.Description,
		StartsAt:    input.StartsAt.UTC(),
		EndsAt:      input.EndsAt.UTC(),
		CreatedBy:   input.CreatedBy,
		CreatedAt:   s.now().UTC(),
	}

	created, err := s.repo.Create(ctx, g)
	if err != nil {
		s.log.Error().Err(err).Str("title", input.Title).Msg("failed to create giveaway")
		return nil, err
	}

	s.log.Info().Str("giveaway_id", created.ID).Str("created_by", input.CreatedBy).Msg("giveaway created")
	metrics.GiveawaysCreatedTotal.Inc()
	return created, nil
}

func (s *giveawayService) ListActive(ctx context.Context) ([]*domain.Giveaway, error) {
	return s.repo.ListActive(ctx, s.now().UTC())
}

// Enter records one entry for userID. Duplicate entries are rejected with
// ErrAlreadyEntered; a failing guard check is tolerated and the repository's
// unique index remains the backstop.
func (s *giveawayService) Enter(ctx context.Context, giveawayID, userID string) error {
	g, err := s.repo.FindByID(ctx, giveawayID)
	if err != nil {
		return fmt.Errorf("enter giveaway: %w", err)
	}

	now := s.now().UTC()
	if !g.Open(now) {
		return domain.ErrGiveawayClosed
	}

	entered, err := s.guard.HasEntered(ctx, giveawayID, userID)
	if err != nil {
		s.log.Warn().Err(err).Str("giveaway_id", giveawayID).Msg("entry guard check failed, relying on unique index")
	} else if entered {
		metrics.GiveawayEntriesTotal.WithLabelValues("duplicate").Inc()
		return domain.ErrAlreadyEntered
	}

	entry := &domain.GiveawayEntry{
		GiveawayID: giveawayID,
		UserID:     userID,
		EnteredAt:  now,
	}
	if err := s.repo.InsertEntry(ctx, entry); err != nil {
		if err == domain.ErrAlreadyEntered {
			metrics.GiveawayEntriesTotal.WithLabelValues("duplicate").Inc()
			return err
		}
		return fmt.Errorf("enter giveaway: %w", err)
	}

	if err := s.guard.MarkEntered(ctx, giveawayID, userID); err != nil {
		s.log.Warn().Err(err).Str("giveaway_id", giveawayID).Msg("entry guard mark failed")
	}

	metrics.GiveawayEntriesTotal.WithLabelValues("accepted").Inc()
	return nil
}
