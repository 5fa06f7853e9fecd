package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authHTTP "github.com/poketrade/pokecards/internal/auth/http"
	authService "github.com/poketrade/pokecards/internal/auth/service"
	cardHTTP "github.com/poketrade/pokecards/internal/card/http"
	"github.com/poketrade/pokecards/internal/config"
	"github.com/poketrade/pokecards/internal/metrics"
	userHTTP "github.com/poketrade/pokecards/internal/user/http"
)

// Server represents the API HTTP server.
type Server struct {
	server *http.Server
	router *gin.Engine
	db     *sql.DB
	logger *slog.Logger
}

// NewServer creates a new API server. The router is assembled separately via
// SetupRouter so tests can exercise handlers without binding a port.
func NewServer(db *sql.DB, host string, port int, logger *slog.Logger) *Server {
	return &Server{
		db:     db,
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// RouterDeps bundles everything route registration needs.
type RouterDeps struct {
	Config          *config.Config
	TokenService    authService.TokenService
	UserHandler     *userHTTP.UserHandler
	CardHandler     *cardHTTP.CardHandler
	MetricsProvider *metrics.Provider
}

// SetupRouter builds the gin engine: recovery, request id, structured logging,
// optional CORS and HTTP metrics, health endpoints, and the API route table.
//
// Route gating: card and user mutations require a Bearer token; card reads,
// user listing, registration, and login stay open. Login and registration are
// additionally rate limited per IP, gated routes per user.
func (s *Server) SetupRouter(deps RouterDeps) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(
		deps.Config.CORSEnabled,
		deps.Config.CORSAllowOrigins,
		s.logger,
	); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if deps.MetricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(
			deps.MetricsProvider.MeterProvider(),
			deps.Config.MetricsNamespace,
		))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	gate := authHTTP.AuthenticationMiddleware(deps.TokenService, s.logger)

	gatedChain := []gin.HandlerFunc{gate}
	if deps.Config.RateLimitEnabled {
		gatedChain = append(gatedChain, authHTTP.RateLimitMiddleware(
			deps.Config.RateLimitRequestsPerSec,
			deps.Config.RateLimitBurst,
			s.logger,
		))
	}
	// Fresh slice per route so appends never share a backing array.
	gated := func(handler gin.HandlerFunc) []gin.HandlerFunc {
		chain := make([]gin.HandlerFunc, 0, len(gatedChain)+1)
		chain = append(chain, gatedChain...)
		return append(chain, handler)
	}

	var credentialLimit gin.HandlerFunc
	if deps.Config.RateLimitLoginEnabled {
		credentialLimit = authHTTP.LoginRateLimitMiddleware(
			deps.Config.RateLimitLoginRequestsPerSec,
			deps.Config.RateLimitLoginBurst,
			s.logger,
		)
	}

	users := router.Group("/users")
	{
		if credentialLimit != nil {
			users.POST("", credentialLimit, deps.UserHandler.RegisterHandler)
			users.POST("/login", credentialLimit, deps.UserHandler.LoginHandler)
		} else {
			users.POST("", deps.UserHandler.RegisterHandler)
			users.POST("/login", deps.UserHandler.LoginHandler)
		}
		users.GET("", deps.UserHandler.ListHandler)
		users.GET("/:userId", gated(deps.UserHandler.GetHandler)...)
		users.PATCH("/:userId", gated(deps.UserHandler.UpdateHandler)...)
		users.DELETE("/:userId", gated(deps.UserHandler.DeleteHandler)...)
	}

	cards := router.Group("/pokemons-cards")
	{
		cards.GET("", deps.CardHandler.ListHandler)
		cards.GET("/:cardId", deps.CardHandler.GetHandler)
		cards.POST("", gated(deps.CardHandler.CreateHandler)...)
		cards.PATCH("/:cardId", gated(deps.CardHandler.UpdateHandler)...)
		cards.DELETE("/:cardId", gated(deps.CardHandler.DeleteHandler)...)
	}

	s.router = router
}

// Router returns the gin engine, for tests that drive requests directly.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start starts the API server. SetupRouter must have been called first.
func (s *Server) Start(ctx context.Context) error {
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the API server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

// healthHandler reports process liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the server can serve traffic, checking
// database connectivity.
func (s *Server) readinessHandler(c *gin.Context) {
	components := gin.H{}
	status := "ready"
	code := http.StatusOK

	if s.db == nil {
		components["database"] = "error"
		status = "not_ready"
		code = http.StatusServiceUnavailable
	} else {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := s.db.PingContext(ctx); err != nil {
			s.logger.Error("readiness check failed", slog.Any("error", err))
			components["database"] = "error"
			status = "not_ready"
			code = http.StatusServiceUnavailable
		} else {
			components["database"] = "ok"
		}
	}

	c.JSON(code, gin.H{
		"status":     status,
		"components": components,
	})
}
