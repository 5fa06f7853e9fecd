// Package httputil provides HTTP utility functions for request and response handling.
package httputil

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/poketrade/pokecards/internal/errors"
)

// ErrorResponse is the body returned for every rejected request.
// The API keeps the original single-field contract: {"message": "..."}.
type ErrorResponse struct {
	Message string `json:"message"`
}

// Default client-facing messages per error kind, used when the domain error
// does not carry a more specific one.
const (
	defaultInvalidInputMessage = "Tous les champs sont requis."
	defaultConflictMessage     = "Utilisateur déjà existant."
	defaultNotFoundMessage     = "Ressource non trouvée."
	defaultUnauthorizedMessage = "Accès non autorisé."
	defaultInternalMessage     = "Erreur interne du serveur."
)

// HandleErrorGin maps domain errors to HTTP status codes and writes the
// {"message": ...} JSON body. Internal error details never reach the client;
// the full chain is logged server-side.
func HandleErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if err == nil {
		return
	}

	var statusCode int
	var message string

	switch {
	case apperrors.Is(err, apperrors.ErrInvalidInput):
		statusCode = http.StatusBadRequest
		message = defaultInvalidInputMessage

	case apperrors.Is(err, apperrors.ErrConflict):
		// The original API reports conflicts as plain bad requests.
		statusCode = http.StatusBadRequest
		message = defaultConflictMessage

	case apperrors.Is(err, apperrors.ErrNotFound):
		statusCode = http.StatusNotFound
		message = defaultNotFoundMessage

	case apperrors.Is(err, apperrors.ErrUnauthorized):
		statusCode = http.StatusUnauthorized
		message = defaultUnauthorizedMessage

	default:
		statusCode = http.StatusInternalServerError
		message = defaultInternalMessage
	}

	// A domain error may carry its own client message (e.g. "Mot de passe
	// incorrect."); it overrides the kind default but never the status code.
	if clientMsg, ok := apperrors.ClientMessage(err); ok && statusCode != http.StatusInternalServerError {
		message = clientMsg
	}

	if logger != nil {
		logger.Error("request failed",
			slog.Int("status_code", statusCode),
			slog.Any("error", err),
		)
	}

	c.JSON(statusCode, ErrorResponse{Message: message})
}

// HandleBadRequestGin writes a 400 Bad Request response for malformed JSON bodies.
// The decoding error itself is logged, not returned, to avoid leaking parser internals.
func HandleBadRequestGin(c *gin.Context, err error, logger *slog.Logger) {
	if logger != nil {
		logger.Warn("bad request", slog.Any("error", err))
	}

	c.JSON(http.StatusBadRequest, ErrorResponse{Message: defaultInvalidInputMessage})
}
