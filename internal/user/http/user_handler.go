// Package http provides HTTP handlers for user operations.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/poketrade/pokecards/internal/httputil"
	"github.com/poketrade/pokecards/internal/user/domain"
	"github.com/poketrade/pokecards/internal/user/http/dto"
	"github.com/poketrade/pokecards/internal/user/usecase"
	customValidation "github.com/poketrade/pokecards/internal/validation"
)

// UserHandler handles HTTP requests for user registration, login, and
// account management.
type UserHandler struct {
	userUseCase usecase.UserUseCase
	logger      *slog.Logger
}

// NewUserHandler creates a new user handler with required dependencies.
func NewUserHandler(userUseCase usecase.UserUseCase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		logger:      logger,
	}
}

// RegisterHandler creates a new account.
// POST /users - open route.
// Returns 201 Created with the user and their first session token.
func (h *UserHandler) RegisterHandler(c *gin.Context) {
	var req dto.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	output, err := h.userUseCase.Register(c.Request.Context(), &domain.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.RegisterResponse{
		User:  dto.MapUserToResponse(output.User),
		Token: output.Token,
	})
}

// LoginHandler authenticates an account and issues a session token.
// POST /users/login - open route, per-IP rate limited.
// Returns 200 OK with a confirmation message and the token.
func (h *UserHandler) LoginHandler(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	output, err := h.userUseCase.Login(c.Request.Context(), &domain.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Message: "Connexion réussie.",
		Token:   output.Token,
	})
}

// ListHandler retrieves all users.
// GET /users - open route.
// Returns 200 OK with the user list (no password hashes).
func (h *UserHandler) ListHandler(c *gin.Context) {
	users, err := h.userUseCase.List(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapUsersToResponse(users))
}

// GetHandler retrieves a user by ID.
// GET /users/:userId - gated route.
// Returns 200 OK with the user.
func (h *UserHandler) GetHandler(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		httputil.HandleErrorGin(c, domain.ErrInvalidUserID, h.logger)
		return
	}

	user, err := h.userUseCase.GetByID(c.Request.Context(), userID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapUserToResponse(user))
}

// UpdateHandler changes a user's email and/or password.
// PATCH /users/:userId - gated route.
// Returns 200 OK with the updated user.
func (h *UserHandler) UpdateHandler(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		httputil.HandleErrorGin(c, domain.ErrInvalidUserID, h.logger)
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	user, err := h.userUseCase.Update(c.Request.Context(), userID, &domain.UpdateUserInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapUserToResponse(user))
}

// DeleteHandler removes a user.
// DELETE /users/:userId - gated route.
// Returns 204 No Content.
func (h *UserHandler) DeleteHandler(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		httputil.HandleErrorGin(c, domain.ErrInvalidUserID, h.logger)
		return
	}

	if err := h.userUseCase.Delete(c.Request.Context(), userID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}
