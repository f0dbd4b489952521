package ports

import (
	"context"

	"github.com/inkwell/showcase-api/internal/core/domain"
)

// IdentityProvider resolves a raw request credential (bearer token or session
// cookie value) to the principal it belongs to. A nil principal or a non-nil
// error both mean "no session" to callers; the distinction only matters for
// logging.
type IdentityProvider interface {
	CurrentUser(ctx context.Context, credential string) (*domain.Principal, error)
}
