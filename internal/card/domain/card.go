// Package domain defines the Pokémon card entities, inputs, and errors.
package domain

import (
	"time"

	"github.com/google/uuid"

	apperrors "github.com/poketrade/pokecards/internal/errors"
)

// Card represents a Pokémon card. Size, Weight, and ImageURL are optional
// and nil when absent.
type Card struct {
	ID         uuid.UUID
	Name       string
	PokedexID  int
	TypeID     int
	LifePoints int
	Size       *float64
	Weight     *float64
	ImageURL   *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// CreateCardInput contains the data for card creation. Name, PokedexID,
// TypeID, and LifePoints are required.
type CreateCardInput struct {
	Name       string
	PokedexID  int
	TypeID     int
	LifePoints int
	Size       *float64
	Weight     *float64
	ImageURL   *string
}

// UpdateCardInput contains the updatable card fields. Nil fields are left
// unchanged.
type UpdateCardInput struct {
	Name       *string
	PokedexID  *int
	TypeID     *int
	LifePoints *int
	Size       *float64
	Weight     *float64
	ImageURL   *string
}

// Domain errors for card operations.
var (
	// ErrCardNotFound indicates the requested card does not exist.
	ErrCardNotFound = apperrors.WithMessage(
		apperrors.Wrap(apperrors.ErrNotFound, "card not found"),
		"Carte Pokémon non trouvée.",
	)

	// ErrInvalidCardID indicates the path parameter is not a valid UUID.
	ErrInvalidCardID = apperrors.WithMessage(
		apperrors.Wrap(apperrors.ErrInvalidInput, "invalid card id"),
		"L'ID du Pokémon est invalide.",
	)

	// ErrMissingCardFields indicates a required field is absent.
	ErrMissingCardFields = apperrors.WithMessage(
		apperrors.Wrap(apperrors.ErrInvalidInput, "missing required card fields"),
		"Tous les champs sont requis.",
	)
)
