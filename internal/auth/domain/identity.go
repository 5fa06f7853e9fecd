// Package domain defines the authentication domain types and errors.
package domain

import (
	"time"

	"github.com/google/uuid"

	apperrors "github.com/poketrade/pokecards/internal/errors"
)

// IdentityClaims is the payload carried inside an authentication token:
// who the subject is and for which window the assertion is valid.
// Created at issuance, reconstructed at verification, never persisted.
type IdentityClaims struct {
	UserID    uuid.UUID
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Token verification failures. All three wrap ErrUnauthorized so the access
// gate collapses them into a single 401 for the client, while the distinct
// sentinels stay observable in logs and tests.
var (
	// ErrTokenExpired indicates the token's validity window has passed.
	// The boundary is exclusive: a token is already expired at exactly ExpiresAt.
	ErrTokenExpired = apperrors.WithMessage(
		apperrors.Wrap(apperrors.ErrUnauthorized, "token expired"),
		"Accès non autorisé.",
	)

	// ErrTokenSignatureInvalid indicates the signature does not match the
	// payload: the token was tampered with or signed with a different key.
	ErrTokenSignatureInvalid = apperrors.WithMessage(
		apperrors.Wrap(apperrors.ErrUnauthorized, "token signature invalid"),
		"Accès non autorisé.",
	)

	// ErrTokenMalformed indicates the token could not be parsed at all.
	ErrTokenMalformed = apperrors.WithMessage(
		apperrors.Wrap(apperrors.ErrUnauthorized, "token malformed"),
		"Accès non autorisé.",
	)

	// ErrMissingToken indicates no bearer token was supplied on a gated request.
	ErrMissingToken = apperrors.WithMessage(
		apperrors.Wrap(apperrors.ErrUnauthorized, "missing bearer token"),
		"Accès non autorisé.",
	)
)
