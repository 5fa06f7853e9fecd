package dto

import (
	"time"

	"github.com/poketrade/pokecards/internal/card/domain"
)

// CardResponse is the public representation of a Pokémon card.
type CardResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	PokedexID  int       `json:"pokedexId"`
	TypeID     int       `json:"typeId"`
	LifePoints int       `json:"lifePoints"`
	Size       *float64  `json:"size"`
	Weight     *float64  `json:"weight"`
	ImageURL   *string   `json:"imageUrl"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// MapCardToResponse converts a domain card to its public representation.
func MapCardToResponse(card *domain.Card) CardResponse {
	return CardResponse{
		ID:         card.ID.String(),
		Name:       card.Name,
		PokedexID:  card.PokedexID,
		TypeID:     card.TypeID,
		LifePoints: card.LifePoints,
		Size:       card.Size,
		Weight:     card.Weight,
		ImageURL:   card.ImageURL,
		CreatedAt:  card.CreatedAt,
		UpdatedAt:  card.UpdatedAt,
	}
}

// MapCardsToResponse converts a slice of domain cards. Always returns a
// non-nil slice so the JSON encoding is [] rather than null.
func MapCardsToResponse(cards []*domain.Card) []CardResponse {
	responses := make([]CardResponse, 0, len(cards))
	for _, card := range cards {
		responses = append(responses, MapCardToResponse(card))
	}
	return responses
}
