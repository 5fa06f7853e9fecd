package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/poketrade/pokecards/internal/card/domain"
	"github.com/poketrade/pokecards/internal/database"
)

// cardUseCase handles card business logic.
type cardUseCase struct {
	txManager database.TxManager
	cardRepo  CardRepository
}

// NewCardUseCase creates a new CardUseCase.
func NewCardUseCase(txManager database.TxManager, cardRepo CardRepository) CardUseCase {
	return &cardUseCase{
		txManager: txManager,
		cardRepo:  cardRepo,
	}
}

// Create adds a new card after checking the required fields. The zero value
// counts as missing for the numeric fields: no Pokémon has 0 life points and
// the Pokédex has no entry 0.
func (uc *cardUseCase) Create(
	ctx context.Context,
	input *domain.CreateCardInput,
) (*domain.Card, error) {
	if strings.TrimSpace(input.Name) == "" ||
		input.PokedexID == 0 ||
		input.TypeID == 0 ||
		input.LifePoints == 0 {
		return nil, domain.ErrMissingCardFields
	}

	now := time.Now().UTC()
	card := &domain.Card{
		ID:         uuid.Must(uuid.NewV7()),
		Name:       strings.TrimSpace(input.Name),
		PokedexID:  input.PokedexID,
		TypeID:     input.TypeID,
		LifePoints: input.LifePoints,
		Size:       input.Size,
		Weight:     input.Weight,
		ImageURL:   input.ImageURL,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err := uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		return uc.cardRepo.Create(ctx, card)
	})
	if err != nil {
		return nil, err
	}

	return card, nil
}

// GetByID retrieves a card by ID.
func (uc *cardUseCase) GetByID(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
	return uc.cardRepo.GetByID(ctx, id)
}

// List retrieves all cards.
func (uc *cardUseCase) List(ctx context.Context) ([]*domain.Card, error) {
	return uc.cardRepo.List(ctx)
}

// Update applies the provided fields to an existing card. Nil input fields
// keep their current value.
func (uc *cardUseCase) Update(
	ctx context.Context,
	id uuid.UUID,
	input *domain.UpdateCardInput,
) (*domain.Card, error) {
	card, err := uc.cardRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, domain.ErrMissingCardFields
		}
		card.Name = strings.TrimSpace(*input.Name)
	}
	if input.PokedexID != nil {
		card.PokedexID = *input.PokedexID
	}
	if input.TypeID != nil {
		card.TypeID = *input.TypeID
	}
	if input.LifePoints != nil {
		card.LifePoints = *input.LifePoints
	}
	if input.Size != nil {
		card.Size = input.Size
	}
	if input.Weight != nil {
		card.Weight = input.Weight
	}
	if input.ImageURL != nil {
		card.ImageURL = input.ImageURL
	}

	card.UpdatedAt = time.Now().UTC()

	err = uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		return uc.cardRepo.Update(ctx, card)
	})
	if err != nil {
		return nil, err
	}

	return card, nil
}

// Delete removes a card and returns the deleted record, matching the API
// contract of responding with the resource that was removed.
func (uc *cardUseCase) Delete(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
	var card *domain.Card

	err := uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		var err error
		card, err = uc.cardRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		return uc.cardRepo.Delete(ctx, id)
	})
	if err != nil {
		return nil, err
	}

	return card, nil
}
