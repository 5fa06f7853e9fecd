// Package http provides HTTP handlers for Pokémon card operations.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/poketrade/pokecards/internal/card/domain"
	"github.com/poketrade/pokecards/internal/card/http/dto"
	"github.com/poketrade/pokecards/internal/card/usecase"
	"github.com/poketrade/pokecards/internal/httputil"
)

// CardHandler handles HTTP requests for card operations.
type CardHandler struct {
	cardUseCase usecase.CardUseCase
	logger      *slog.Logger
}

// NewCardHandler creates a new card handler with required dependencies.
func NewCardHandler(cardUseCase usecase.CardUseCase, logger *slog.Logger) *CardHandler {
	return &CardHandler{
		cardUseCase: cardUseCase,
		logger:      logger,
	}
}

// ListHandler retrieves all cards.
// GET /pokemons-cards - open route.
// Returns 200 OK with the card list.
func (h *CardHandler) ListHandler(c *gin.Context) {
	cards, err := h.cardUseCase.List(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapCardsToResponse(cards))
}

// GetHandler retrieves a card by ID.
// GET /pokemons-cards/:cardId - open route.
// Returns 200 OK with the card.
func (h *CardHandler) GetHandler(c *gin.Context) {
	cardID, err := uuid.Parse(c.Param("cardId"))
	if err != nil {
		httputil.HandleErrorGin(c, domain.ErrInvalidCardID, h.logger)
		return
	}

	card, err := h.cardUseCase.GetByID(c.Request.Context(), cardID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapCardToResponse(card))
}

// CreateHandler adds a new card.
// POST /pokemons-cards - gated route.
// Returns 201 Created with the card.
func (h *CardHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	card, err := h.cardUseCase.Create(c.Request.Context(), req.ToCreateCardInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapCardToResponse(card))
}

// UpdateHandler changes the provided fields of a card.
// PATCH /pokemons-cards/:cardId - gated route.
// Returns 200 OK with the updated card.
func (h *CardHandler) UpdateHandler(c *gin.Context) {
	cardID, err := uuid.Parse(c.Param("cardId"))
	if err != nil {
		httputil.HandleErrorGin(c, domain.ErrInvalidCardID, h.logger)
		return
	}

	var req dto.UpdateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	card, err := h.cardUseCase.Update(c.Request.Context(), cardID, req.ToUpdateCardInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapCardToResponse(card))
}

// DeleteHandler removes a card.
// DELETE /pokemons-cards/:cardId - gated route.
// Returns 200 OK with the deleted card.
func (h *CardHandler) DeleteHandler(c *gin.Context) {
	cardID, err := uuid.Parse(c.Param("cardId"))
	if err != nil {
		httputil.HandleErrorGin(c, domain.ErrInvalidCardID, h.logger)
		return
	}

	card, err := h.cardUseCase.Delete(c.Request.Context(), cardID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapCardToResponse(card))
}
