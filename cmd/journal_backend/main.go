package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/journal_entry_store/internal/core/services"
	"github.com/SscSPs/journal_entry_store/internal/handlers"
	"github.com/SscSPs/journal_entry_store/internal/middleware"
	"github.com/SscSPs/journal_entry_store/internal/platform/config"
	"github.com/SscSPs/journal_entry_store/internal/repositories/database/pgsql"
	"github.com/SscSPs/journal_entry_store/internal/repositories/memory"
	pebblestore "github.com/SscSPs/journal_entry_store/internal/repositories/pebble"
	"github.com/SscSPs/journal_entry_store/internal/utils"
	"github.com/SscSPs/journal_entry_store/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	portsrepo "github.com/SscSPs/journal_entry_store/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/journal_entry_store/internal/core/ports/services"
)

const shutdownTimeout = 10 * time.Second

// @title Journal Entry Store API
// @version 1.0
// @description Owner-keyed journal entries with fixed-size storage accounts and refundable deposits.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @securityDefinitions.apikey SignedRequest
// @in header
// @name X-Journal-Signature
// @description Base58 ed25519 signature over the canonical request, with X-Journal-Owner, X-Journal-Timestamp and X-Journal-Nonce. Each signature is accepted once.
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, err := openRepositories(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize storage", slog.String("backend", cfg.StorageBackend), slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if cerr := repos.Close(); cerr != nil {
			logger.Error("Error closing storage", slog.String("error", cerr.Error()))
		}
	}()

	serviceContainer, err := services.NewServiceContainer(cfg, repos)
	if err != nil {
		logger.Error("Failed to initialize services", slog.String("error", err.Error()))
		os.Exit(1)
	}

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
	defer posthogClient.Close()

	r, err := newRouter(cfg, logger, serviceContainer, posthogClient)
	if err != nil {
		logger.Error("Failed to set up router", slog.String("error", err.Error()))
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("backend", cfg.StorageBackend))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shut down", slog.String("error", err.Error()))
	}
}

// openRepositories connects the storage backend selected by STORAGE_BACKEND.
func openRepositories(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, error) {
	switch cfg.StorageBackend {
	case config.StorageBackendPostgres:
		if cfg.RunMigrations {
			logger.Info("Running database migrations...")
			if err := database.RunMigrations(cfg.DatabaseURL, logger); err != nil {
				return portsrepo.RepositoryProvider{}, err
			}
		}
		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, logger)
		if err != nil {
			return portsrepo.RepositoryProvider{}, err
		}
		return pgsql.NewRepositoryProvider(dbPool, logger), nil

	case config.StorageBackendPebble:
		fsync, err := pebblestore.ParseFsyncMode(cfg.PebbleFsync)
		if err != nil {
			return portsrepo.RepositoryProvider{}, err
		}
		db, err := pebblestore.Open(pebblestore.Options{DataDir: cfg.PebbleDir, Fsync: fsync})
		if err != nil {
			return portsrepo.RepositoryProvider{}, err
		}
		logger.Info("Opened pebble store", slog.String("dir", cfg.PebbleDir), slog.String("fsync", cfg.PebbleFsync))
		return pebblestore.NewRepositoryProvider(db), nil

	case config.StorageBackendMemory:
		logger.Warn("Using in-memory storage; entries are lost on restart")
		return memory.NewRepositoryProvider(), nil
	}
	return portsrepo.RepositoryProvider{}, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
}

// newRouter builds the gin engine with global middleware and all routes.
func newRouter(cfg *config.Config, logger *slog.Logger, svc *portssvc.ServiceContainer, posthogClient *utils.PosthogClientWrapper) (*gin.Engine, error) {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	if err := r.SetTrustedProxies(nil); err != nil {
		return nil, fmt.Errorf("failed to set trusted proxies: %w", err)
	}

	apiLimiter, err := middleware.NewLimiter(cfg.RateLimit)
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT: %w", err)
	}

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(cors.New(corsConfig(cfg.CORSAllowedOrigins)))
	}
	r.Use(middleware.RateLimit(apiLimiter), middleware.PosthogMiddleware(posthogClient))

	if err := handlers.RegisterRoutes(r, cfg, svc); err != nil {
		return nil, err
	}
	return r, nil
}

func corsConfig(origins []string) cors.Config {
	c := cors.DefaultConfig()
	for _, o := range origins {
		if o == "*" {
			c.AllowAllOrigins = true
		}
	}
	if !c.AllowAllOrigins {
		c.AllowOrigins = origins
	}
	c.AddAllowHeaders("Authorization", utils.HeaderOwner, utils.HeaderTimestamp, utils.HeaderNonce, utils.HeaderSignature)
	c.AddExposeHeaders(middleware.RequestIDHeader)
	return c
}
