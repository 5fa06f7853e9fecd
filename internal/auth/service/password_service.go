package service

import (
	"github.com/allisson/go-pwdhash"

	apperrors "github.com/poketrade/pokecards/internal/errors"
)

// passwordService implements PasswordService using Argon2id.
type passwordService struct {
	hasher *pwdhash.PasswordHasher
}

// NewPasswordService creates a new PasswordService using Argon2id hashing.
// Uses the interactive policy: user-facing logins need the hash to stay
// expensive for attackers but fast enough for a request/response cycle.
func NewPasswordService() PasswordService {
	hasher, err := pwdhash.New(
		pwdhash.WithPolicy(pwdhash.PolicyInteractive),
	)
	if err != nil {
		// Only reachable with an invalid policy constant.
		panic(err)
	}

	return &passwordService{hasher: hasher}
}

// Hash derives a salted Argon2id hash in the self-describing
// $argon2id$v=...$m=...,t=...,p=...$salt$digest encoding. The embedded salt
// makes the output non-deterministic across calls.
func (s *passwordService) Hash(plainPassword string) (string, error) {
	hashedPassword, err := s.hasher.Hash([]byte(plainPassword))
	if err != nil {
		return "", apperrors.Wrap(err, "failed to hash password")
	}
	return hashedPassword, nil
}

// Verify recomputes the digest with the parameters and salt embedded in the
// stored hash and compares in constant time. Malformed stored hashes verify
// as false instead of surfacing a parse error.
func (s *passwordService) Verify(plainPassword string, hashedPassword string) bool {
	ok, err := s.hasher.Verify([]byte(plainPassword), hashedPassword)
	if err != nil {
		return false
	}
	return ok
}
