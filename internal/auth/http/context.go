// Package http provides HTTP middleware and utilities for authentication.
package http

import (
	"context"

	authDomain "github.com/poketrade/pokecards/internal/auth/domain"
)

// identityKey is a context key type for storing authenticated identities.
type identityKey struct{}

// WithIdentity stores an authenticated identity in the context.
// Called by the authentication middleware after successful token verification.
func WithIdentity(ctx context.Context, identity *authDomain.IdentityClaims) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// GetIdentity retrieves the authenticated identity from the context.
// Returns (identity, true) if present, or (nil, false) if no identity was set.
// Called by handlers on gated routes that need to know who the caller is.
func GetIdentity(ctx context.Context) (*authDomain.IdentityClaims, bool) {
	identity, ok := ctx.Value(identityKey{}).(*authDomain.IdentityClaims)
	return identity, ok
}
