// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/nyaga-richard/tire-manager-sub000/internal/domain/auth"
	"github.com/nyaga-richard/tire-manager-sub000/internal/domain/ledger"
	"github.com/nyaga-richard/tire-manager-sub000/internal/domain/movement"
	"github.com/nyaga-richard/tire-manager-sub000/internal/infrastructure/export"
	"github.com/nyaga-richard/tire-manager-sub000/internal/infrastructure/http/v1/handlers"
	"github.com/nyaga-richard/tire-manager-sub000/internal/infrastructure/http/v1/middleware"
	"github.com/nyaga-richard/tire-manager-sub000/internal/infrastructure/storage/postgres"
	"github.com/nyaga-richard/tire-manager-sub000/pkg/logger"
)

// RouterConfig holds everything the router needs to wire up handlers.
type RouterConfig struct {
	// Pool is the database connection pool (used for health checks)
	Pool *postgres.Pool

	// Logger for request logging
	Logger *logger.Logger

	// JWTValidator for token validation
	JWTValidator middleware.JWTValidator

	// AuthService for authentication endpoints
	AuthService *auth.Service

	// MovementService for tire movement endpoints
	MovementService *movement.Service

	// LedgerService for the reconciled stock ledger
	LedgerService *ledger.Service

	// Auditor records export events
	Auditor movement.Auditor

	// ExportFormat controls currency and date rendering in exports
	ExportFormat export.Format
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	// Health endpoints (no auth required)
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
	}

	baseHandler := handlers.NewBaseHandler()

	// API v1
	v1 := router.Group("/api/v1")
	{
		// Public auth endpoints
		if cfg.AuthService != nil {
			authHandler := handlers.NewAuthHandler(baseHandler, cfg.AuthService)
			authHandler.RegisterRoutes(v1.Group("/auth"))
		}

		// Protected endpoints
		protected := v1.Group("")
		protected.Use(middleware.Auth(cfg.JWTValidator))

		movementHandler := handlers.NewMovementHandler(baseHandler, cfg.MovementService)
		movementHandler.RegisterRoutes(protected.Group("/movements"))

		ledgerHandler := handlers.NewLedgerHandler(baseHandler, cfg.LedgerService, cfg.Auditor, cfg.ExportFormat)
		ledgerHandler.RegisterRoutes(protected.Group("/ledger"))
	}

	return router
}
