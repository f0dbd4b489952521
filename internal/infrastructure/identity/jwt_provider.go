// Package identity implements the IdentityProvider port on top of HS256
// bearer tokens and the user repository.
package identity

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/inkwell/showcase-api/internal/core/domain"
	"github.com/inkwell/showcase-api/internal/core/ports"
)

// JWTProvider validates a signed token and materializes the principal it
// names from the user repository. Tokens carry the user id in the "sub" claim.
type JWTProvider struct {
	users  ports.UserRepository
	secret string
}

func NewJWTProvider(users ports.UserRepository, secret string) *JWTProvider {
	return &JWTProvider{users: users, secret: secret}
}

// CurrentUser resolves the credential to a principal. Expired, malformed, or
// foreign-signed tokens and unknown user ids all surface as errors; the
// identity service folds every one of them into the no-session outcome.
func (p *JWTProvider) CurrentUser(ctx context.Context, credential string) (*domain.Principal, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(credential, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(p.secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	if !tkn.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, jwt.ErrTokenRequiredClaimMissing
	}

	user, err := p.users.FindByID(ctx, sub)
	if err != nil {
		return nil, fmt.Errorf("resolve subject: %w", err)
	}
	return user, nil
}
