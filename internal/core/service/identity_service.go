package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/inkwell/showcase-api/internal/api/metrics"
	"github.com/inkwell/showcase-api/internal/core/domain"
	"github.com/inkwell/showcase-api/internal/core/ports"
)

type identityService struct {
	provider ports.IdentityProvider
	log      zerolog.Logger
}

// NewIdentityService returns a fail-closed IdentityService backed by the given
// provider. Provider errors and missing users collapse to the same "no
// session" outcome; nothing is ever escalated to the caller as an error.
func NewIdentityService(provider ports.IdentityProvider, log zerolog.Logger) ports.IdentityService {
	return &identityService{provider: provider, log: log}
}

// lookup performs the single underlying provider query all three operations
// share. The returned principal is nil on any failure path.
func (s *identityService) lookup(ctx context.Context, credential string) *domain.Principal {
	if credential == "" {
		metrics.IdentityLookupsTotal.WithLabelValues("none").Inc()
		return nil
	}

	user, err := s.provider.CurrentUser(ctx, credential)
	if err != nil || user == nil {
		if err != nil {
			s.log.Debug().Err(err).Msg("identity lookup failed")
		}
		metrics.IdentityLookupsTotal.WithLabelValues("none").Inc()
		return nil
	}

	metrics.IdentityLookupsTotal.WithLabelValues("session").Inc()
	return user
}

func (s *identityService) ResolveSession(ctx context.Context, credential string) ports.SessionResult {
	user := s.lookup(ctx, credential)
	if user == nil {
		return ports.SessionResult{}
	}
	return ports.SessionResult{Session: &domain.Session{User: user}, User: user}
}

func (s *identityService) CheckAuthenticated(ctx context.Context, credential string) ports.AuthnResult {
	user := s.lookup(ctx, credential)
	if user == nil {
		return ports.AuthnResult{}
	}
	return ports.AuthnResult{Authenticated: true, User: user}
}

// CheckAuthorized compares the resolved principal's id with targetID using
// exact string equality. The principal is returned even on a mismatch so the
// caller can log who was refused. An empty targetID is not special-cased; it
// simply never matches a real principal id.
func (s *identityService) CheckAuthorized(ctx context.Context, credential, targetID string) ports.AuthzResult {
	user := s.lookup(ctx, credential)
	if user == nil {
		return ports.AuthzResult{}
	}
	return ports.AuthzResult{Authorized: user.ID == targetID, User: user}
}
