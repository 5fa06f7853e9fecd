// Package service provides technical services for authentication operations:
// password hashing and stateless token issuance/verification.
package service

import (
	"time"

	"github.com/google/uuid"

	authDomain "github.com/poketrade/pokecards/internal/auth/domain"
)

// PasswordService defines operations for credential hashing and verification.
// Implementations must use a salted, computationally expensive hash with a
// self-describing encoding so cost parameters can be raised over time without
// invalidating stored hashes.
type PasswordService interface {
	// Hash derives a storable hash from a plain text password. Each call uses
	// a fresh random salt, so two hashes of the same password differ while
	// both still verify.
	Hash(plainPassword string) (hashedPassword string, err error)

	// Verify compares a plain text password against a stored hash using a
	// constant-time comparison. Returns false for malformed stored hashes
	// rather than an error; bad stored data must never pass as verified.
	Verify(plainPassword string, hashedPassword string) bool
}

// TokenService defines operations for stateless authentication tokens.
// Verification is a pure function of (token, server secret, clock): no
// storage lookup, which makes the scheme horizontally scalable at the cost
// of not supporting revocation before natural expiry.
type TokenService interface {
	// Issue creates a signed token asserting the given identity, valid from
	// now until now plus the configured TTL.
	Issue(userID uuid.UUID, email string) (token string, expiresAt time.Time, err error)

	// Verify checks the token's signature and validity window and returns the
	// identity claims it carries. Failures are one of the distinct sentinels
	// in the auth domain: expired, signature invalid, or malformed.
	Verify(token string) (*authDomain.IdentityClaims, error)
}
