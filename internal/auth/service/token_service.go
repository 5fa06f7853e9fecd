package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	authDomain "github.com/poketrade/pokecards/internal/auth/domain"
	apperrors "github.com/poketrade/pokecards/internal/errors"
)

// tokenClaims is the JWT payload shape: the subject's id and email on top of
// the registered issued-at/expiry claims.
type tokenClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// tokenService implements TokenService with HMAC-SHA256 signed JWTs.
type tokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenService creates a TokenService signing with the given symmetric
// secret and issuing tokens valid for ttl. Both come from configuration and
// are fixed for the process lifetime.
func NewTokenService(secret string, ttl time.Duration) (TokenService, error) {
	if secret == "" {
		return nil, apperrors.New("token signing secret must not be empty")
	}
	if ttl <= 0 {
		return nil, apperrors.New("token ttl must be positive")
	}

	return &tokenService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Issue builds the identity claims for the subject and signs them with
// HMAC-SHA256. The expiry is now + ttl with second precision (JWT NumericDate).
func (t *tokenService) Issue(userID uuid.UUID, email string) (string, time.Time, error) {
	now := t.now().UTC().Truncate(time.Second)
	expiresAt := now.Add(t.ttl)

	claims := tokenClaims{
		UserID: userID.String(),
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, apperrors.Wrap(err, "failed to sign token")
	}

	return token, expiresAt, nil
}

// Verify parses the token, checks the HMAC signature and the validity window,
// and maps each failure mode to its domain sentinel. No state is consulted:
// the result depends only on the token, the secret, and the clock.
func (t *tokenService) Verify(token string) (*authDomain.IdentityClaims, error) {
	var claims tokenClaims

	parsed, err := jwt.ParseWithClaims(
		token,
		&claims,
		func(tok *jwt.Token) (any, error) {
			if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return t.secret, nil
		},
		jwt.WithTimeFunc(t.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, authDomain.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, authDomain.ErrTokenSignatureInvalid
		default:
			return nil, authDomain.ErrTokenMalformed
		}
	}
	if !parsed.Valid {
		return nil, authDomain.ErrTokenSignatureInvalid
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, authDomain.ErrTokenMalformed
	}

	identity := &authDomain.IdentityClaims{
		UserID: userID,
		Email:  claims.Email,
	}
	if claims.IssuedAt != nil {
		identity.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		identity.ExpiresAt = claims.ExpiresAt.Time
	}

	return identity, nil
}
