// Package app provides the dependency injection container assembling application components.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"sync"

	authService "github.com/poketrade/pokecards/internal/auth/service"
	cardHTTP "github.com/poketrade/pokecards/internal/card/http"
	cardRepository "github.com/poketrade/pokecards/internal/card/repository"
	cardUseCase "github.com/poketrade/pokecards/internal/card/usecase"
	"github.com/poketrade/pokecards/internal/config"
	"github.com/poketrade/pokecards/internal/database"
	"github.com/poketrade/pokecards/internal/http"
	"github.com/poketrade/pokecards/internal/metrics"
	userHTTP "github.com/poketrade/pokecards/internal/user/http"
	userRepository "github.com/poketrade/pokecards/internal/user/repository"
	userUseCase "github.com/poketrade/pokecards/internal/user/usecase"
)

// Container holds all application dependencies and provides methods to access them.
// It follows the lazy initialization pattern - components are created on first access.
type Container struct {
	// Configuration
	config *config.Config

	// Infrastructure
	logger          *slog.Logger
	db              *sql.DB
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics

	// Managers
	txManager database.TxManager

	// Services
	passwordService authService.PasswordService
	tokenService    authService.TokenService

	// Repositories
	userRepo userUseCase.UserRepository
	cardRepo cardUseCase.CardRepository

	// Use Cases
	userUC userUseCase.UserUseCase
	cardUC cardUseCase.CardUseCase

	// Servers
	httpServer    *http.Server
	metricsServer *http.MetricsServer

	// Initialization flags and mutex for thread-safety
	mu                  sync.Mutex
	loggerInit          sync.Once
	dbInit              sync.Once
	metricsProviderInit sync.Once
	businessMetricsInit sync.Once
	txManagerInit       sync.Once
	passwordServiceInit sync.Once
	tokenServiceInit    sync.Once
	userRepoInit        sync.Once
	cardRepoInit        sync.Once
	userUCInit          sync.Once
	cardUCInit          sync.Once
	httpServerInit      sync.Once
	metricsServerInit   sync.Once
	initErrors          map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
// It creates a new logger on first access based on the log level in configuration.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// DB returns the database connection.
// It creates and configures the database connection on first access.
func (c *Container) DB() (*sql.DB, error) {
	c.dbInit.Do(func() {
		db, err := c.initDB()
		if err != nil {
			c.initErrors["db"] = err
			return
		}
		c.db = db
	})
	if storedErr, exists := c.initErrors["db"]; exists {
		return nil, storedErr
	}
	return c.db, nil
}

// MetricsProvider returns the Prometheus-backed metrics provider, or nil when
// metrics are disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	c.metricsProviderInit.Do(func() {
		if !c.config.MetricsEnabled {
			return
		}
		provider, err := metrics.NewProvider(c.config.MetricsNamespace)
		if err != nil {
			c.initErrors["metricsProvider"] = err
			return
		}
		c.metricsProvider = provider
	})
	if storedErr, exists := c.initErrors["metricsProvider"]; exists {
		return nil, storedErr
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the business metrics recorder. When metrics are
// disabled it returns a no-op implementation so use cases stay unconditional.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	c.businessMetricsInit.Do(func() {
		provider, err := c.MetricsProvider()
		if err != nil {
			c.initErrors["businessMetrics"] = err
			return
		}
		if provider == nil {
			c.businessMetrics = metrics.NewNoOpBusinessMetrics()
			return
		}
		bm, err := metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
		if err != nil {
			c.initErrors["businessMetrics"] = err
			return
		}
		c.businessMetrics = bm
	})
	if storedErr, exists := c.initErrors["businessMetrics"]; exists {
		return nil, storedErr
	}
	return c.businessMetrics, nil
}

// TxManager returns the transaction manager.
// It requires a database connection to be initialized first.
func (c *Container) TxManager() (database.TxManager, error) {
	c.txManagerInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["txManager"] = fmt.Errorf("failed to get database for tx manager: %w", err)
			return
		}
		c.txManager = database.NewTxManager(db)
	})
	if storedErr, exists := c.initErrors["txManager"]; exists {
		return nil, storedErr
	}
	return c.txManager, nil
}

// PasswordService returns the password hashing service.
func (c *Container) PasswordService() authService.PasswordService {
	c.passwordServiceInit.Do(func() {
		c.passwordService = authService.NewPasswordService()
	})
	return c.passwordService
}

// TokenService returns the signed token service.
func (c *Container) TokenService() (authService.TokenService, error) {
	c.tokenServiceInit.Do(func() {
		service, err := authService.NewTokenService(c.config.JWTSecret, c.config.JWTExpiration)
		if err != nil {
			c.initErrors["tokenService"] = fmt.Errorf("failed to create token service: %w", err)
			return
		}
		c.tokenService = service
	})
	if storedErr, exists := c.initErrors["tokenService"]; exists {
		return nil, storedErr
	}
	return c.tokenService, nil
}

// UserRepository returns the user repository instance.
func (c *Container) UserRepository() (userUseCase.UserRepository, error) {
	c.userRepoInit.Do(func() {
		repo, err := c.initUserRepository()
		if err != nil {
			c.initErrors["userRepo"] = err
			return
		}
		c.userRepo = repo
	})
	if storedErr, exists := c.initErrors["userRepo"]; exists {
		return nil, storedErr
	}
	return c.userRepo, nil
}

// CardRepository returns the card repository instance.
func (c *Container) CardRepository() (cardUseCase.CardRepository, error) {
	c.cardRepoInit.Do(func() {
		repo, err := c.initCardRepository()
		if err != nil {
			c.initErrors["cardRepo"] = err
			return
		}
		c.cardRepo = repo
	})
	if storedErr, exists := c.initErrors["cardRepo"]; exists {
		return nil, storedErr
	}
	return c.cardRepo, nil
}

// UserUseCase returns the user use case instance.
func (c *Container) UserUseCase() (userUseCase.UserUseCase, error) {
	c.userUCInit.Do(func() {
		uc, err := c.initUserUseCase()
		if err != nil {
			c.initErrors["userUseCase"] = err
			return
		}
		c.userUC = uc
	})
	if storedErr, exists := c.initErrors["userUseCase"]; exists {
		return nil, storedErr
	}
	return c.userUC, nil
}

// CardUseCase returns the card use case instance.
func (c *Container) CardUseCase() (cardUseCase.CardUseCase, error) {
	c.cardUCInit.Do(func() {
		uc, err := c.initCardUseCase()
		if err != nil {
			c.initErrors["cardUseCase"] = err
			return
		}
		c.cardUC = uc
	})
	if storedErr, exists := c.initErrors["cardUseCase"]; exists {
		return nil, storedErr
	}
	return c.cardUC, nil
}

// HTTPServer returns the API HTTP server instance with routes registered.
func (c *Container) HTTPServer() (*http.Server, error) {
	c.httpServerInit.Do(func() {
		server, err := c.initHTTPServer()
		if err != nil {
			c.initErrors["httpServer"] = err
			return
		}
		c.httpServer = server
	})
	if storedErr, exists := c.initErrors["httpServer"]; exists {
		return nil, storedErr
	}
	return c.httpServer, nil
}

// MetricsServer returns the metrics HTTP server instance, or nil when metrics
// are disabled.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	c.metricsServerInit.Do(func() {
		provider, err := c.MetricsProvider()
		if err != nil {
			c.initErrors["metricsServer"] = err
			return
		}
		if provider == nil {
			return
		}
		c.metricsServer = http.NewMetricsServer(
			c.config.ServerHost,
			c.config.MetricsPort,
			c.Logger(),
			provider,
		)
	})
	if storedErr, exists := c.initErrors["metricsServer"]; exists {
		return nil, storedErr
	}
	return c.metricsServer, nil
}

// Shutdown performs cleanup of all initialized resources.
// It should be called when the application is shutting down.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var shutdownErrors []error

	if c.httpServer != nil {
		if err := c.httpServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("http server shutdown: %w", err))
		}
	}

	if c.metricsServer != nil {
		if err := c.metricsServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics server shutdown: %w", err))
		}
	}

	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	if c.db != nil {
		if err := c.db.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("database close: %w", err))
		}
	}

	if len(shutdownErrors) > 0 {
		return fmt.Errorf("shutdown errors: %v", shutdownErrors)
	}

	return nil
}

// initLogger creates and configures a structured logger based on the log level.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}

// initDB creates and configures the database connection.
func (c *Container) initDB() (*sql.DB, error) {
	db, err := database.Connect(database.Config{
		Driver:             c.config.DBDriver,
		ConnectionString:   c.config.DBConnectionString,
		MaxOpenConnections: c.config.DBMaxOpenConnections,
		MaxIdleConnections: c.config.DBMaxIdleConnections,
		ConnMaxLifetime:    c.config.DBConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// initUserRepository creates the user repository for the configured driver.
func (c *Container) initUserRepository() (userUseCase.UserRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for user repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return userRepository.NewMySQLUserRepository(db), nil
	case "postgres":
		return userRepository.NewPostgreSQLUserRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initCardRepository creates the card repository for the configured driver.
func (c *Container) initCardRepository() (cardUseCase.CardRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for card repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return cardRepository.NewMySQLCardRepository(db), nil
	case "postgres":
		return cardRepository.NewPostgreSQLCardRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initUserUseCase creates the user use case with all its dependencies,
// wrapped in the business metrics decorator.
func (c *Container) initUserUseCase() (userUseCase.UserUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for user use case: %w", err)
	}

	userRepo, err := c.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository for user use case: %w", err)
	}

	tokenService, err := c.TokenService()
	if err != nil {
		return nil, fmt.Errorf("failed to get token service for user use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for user use case: %w", err)
	}

	uc := userUseCase.NewUserUseCase(txManager, userRepo, c.PasswordService(), tokenService)
	return userUseCase.NewUserUseCaseWithMetrics(uc, businessMetrics), nil
}

// initCardUseCase creates the card use case with all its dependencies,
// wrapped in the business metrics decorator.
func (c *Container) initCardUseCase() (cardUseCase.CardUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for card use case: %w", err)
	}

	cardRepo, err := c.CardRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get card repository for card use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for card use case: %w", err)
	}

	uc := cardUseCase.NewCardUseCase(txManager, cardRepo)
	return cardUseCase.NewCardUseCaseWithMetrics(uc, businessMetrics), nil
}

// initHTTPServer creates the API server and registers the route table.
func (c *Container) initHTTPServer() (*http.Server, error) {
	logger := c.Logger()

	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for http server: %w", err)
	}

	tokenService, err := c.TokenService()
	if err != nil {
		return nil, fmt.Errorf("failed to get token service for http server: %w", err)
	}

	userUC, err := c.UserUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get user use case for http server: %w", err)
	}

	cardUC, err := c.CardUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get card use case for http server: %w", err)
	}

	metricsProvider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for http server: %w", err)
	}

	server := http.NewServer(db, c.config.ServerHost, c.config.ServerPort, logger)
	server.SetupRouter(http.RouterDeps{
		Config:          c.config,
		TokenService:    tokenService,
		UserHandler:     userHTTP.NewUserHandler(userUC, logger),
		CardHandler:     cardHTTP.NewCardHandler(cardUC, logger),
		MetricsProvider: metricsProvider,
	})

	return server, nil
}
