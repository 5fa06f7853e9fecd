// Package dto defines the request and response shapes for the card API.
package dto

import "github.com/poketrade/pokecards/internal/card/domain"

// CreateCardRequest is the body for POST /pokemons-cards. Name, PokedexID,
// TypeID, and LifePoints are required; the rest is optional.
type CreateCardRequest struct {
	Name       string   `json:"name"`
	PokedexID  int      `json:"pokedexId"`
	TypeID     int      `json:"typeId"`
	LifePoints int      `json:"lifePoints"`
	Size       *float64 `json:"size"`
	Weight     *float64 `json:"weight"`
	ImageURL   *string  `json:"imageUrl"`
}

// ToCreateCardInput converts the request to the use case input.
func (r CreateCardRequest) ToCreateCardInput() *domain.CreateCardInput {
	return &domain.CreateCardInput{
		Name:       r.Name,
		PokedexID:  r.PokedexID,
		TypeID:     r.TypeID,
		LifePoints: r.LifePoints,
		Size:       r.Size,
		Weight:     r.Weight,
		ImageURL:   r.ImageURL,
	}
}

// UpdateCardRequest is the body for PATCH /pokemons-cards/:cardId. Omitted
// fields are left unchanged.
type UpdateCardRequest struct {
	Name       *string  `json:"name"`
	PokedexID  *int     `json:"pokedexId"`
	TypeID     *int     `json:"typeId"`
	LifePoints *int     `json:"lifePoints"`
	Size       *float64 `json:"size"`
	Weight     *float64 `json:"weight"`
	ImageURL   *string  `json:"imageUrl"`
}

// ToUpdateCardInput converts the request to the use case input.
func (r UpdateCardRequest) ToUpdateCardInput() *domain.UpdateCardInput {
	return &domain.UpdateCardInput{
		Name:       r.Name,
		PokedexID:  r.PokedexID,
		TypeID:     r.TypeID,
		LifePoints: r.LifePoints,
		Size:       r.Size,
		Weight:     r.Weight,
		ImageURL:   r.ImageURL,
	}
}
