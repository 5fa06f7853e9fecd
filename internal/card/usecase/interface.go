// Package usecase implements the Pokémon card business logic.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/poketrade/pokecards/internal/card/domain"
)

// CardUseCase defines the card business operations.
type CardUseCase interface {
	// Create adds a new card. Name, PokedexID, TypeID, and LifePoints are
	// required.
	Create(ctx context.Context, input *domain.CreateCardInput) (*domain.Card, error)

	// GetByID retrieves a card by ID.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Card, error)

	// List retrieves all cards.
	List(ctx context.Context) ([]*domain.Card, error)

	// Update changes the provided fields of an existing card and returns the
	// updated record.
	Update(ctx context.Context, id uuid.UUID, input *domain.UpdateCardInput) (*domain.Card, error)

	// Delete removes a card and returns the deleted record.
	Delete(ctx context.Context, id uuid.UUID) (*domain.Card, error)
}

// CardRepository defines the persistence operations needed by the use case.
type CardRepository interface {
	Create(ctx context.Context, card *domain.Card) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Card, error)
	List(ctx context.Context) ([]*domain.Card, error)
	Update(ctx context.Context, card *domain.Card) error
	Delete(ctx context.Context, id uuid.UUID) error
}
