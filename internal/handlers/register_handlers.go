package handlers

import (
	"net/http"
	"time"

	"github.com/SscSPs/journal_entry_store/cmd/docs"
	portssvc "github.com/SscSPs/journal_entry_store/internal/core/ports/services"
	"github.com/SscSPs/journal_entry_store/internal/middleware"
	"github.com/SscSPs/journal_entry_store/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// APIBasePath prefixes every versioned route.
const APIBasePath = "/api/v1"

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	registerValidators()

	// Titles may contain '/', so route on the escaped path and unescape params.
	r.UseRawPath = true
	r.UnescapePathValues = true

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	api := r.Group(APIBasePath)
	registerHomeRoutes(api, cfg)

	// Public routes: login and raw account reads
	if err := registerAuthRoutes(api, cfg, services.Auth); err != nil {
		return err
	}
	RegisterAccountRoutes(api, services.JournalEntry)

	setupAPIV1Routes(api, cfg, services)

	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures the owner-authenticated routes. A signed request
// authenticates on its own; otherwise a bearer token from /auth/login is required.
func setupAPIV1Routes(
	api *gin.RouterGroup,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := api.Group("",
		middleware.SignatureAuth(cfg.SignatureMaxSkew, time.Now),
		middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer),
	)

	RegisterJournalEntryRoutes(v1, services.JournalEntry)
	registerWalletRoutes(v1, services.Wallet)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = APIBasePath
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
