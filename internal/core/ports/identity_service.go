package ports

import (
	"context"

	"github.com/inkwell/showcase-api/internal/core/domain"
)

// SessionResult is the outcome of a current-session lookup. Both fields are
// nil when no valid credential was presented.
type SessionResult struct {
	Session *domain.Session
	User    *domain.Principal
}

// AuthnResult is the outcome of a boolean authentication check.
type AuthnResult struct {
	Authenticated bool
	User          *domain.Principal
}

// AuthzResult is the outcome of an authorization check against a target id.
// User is populated whenever the identity lookup succeeded, even when
// Authorized is false, so callers can still log who was refused.
type AuthzResult struct {
	Authorized bool
	User       *domain.Principal
}

// IdentityService translates an ambient request credential into
// principal/session facts. None of its operations return an error: every
// provider failure is folded into the absent/false outcome (fail closed).
type IdentityService interface {
	ResolveSession(ctx context.Context, credential string) SessionResult
	CheckAuthenticated(ctx context.Context, credential string) AuthnResult
	CheckAuthorized(ctx context.Context, credential, targetID string) AuthzResult
}
