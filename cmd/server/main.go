// Package main is the entry point for the tire-manager API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nyaga-richard/tire-manager-sub000/internal/domain/auth"
	"github.com/nyaga-richard/tire-manager-sub000/internal/domain/ledger"
	"github.com/nyaga-richard/tire-manager-sub000/internal/domain/movement"
	"github.com/nyaga-richard/tire-manager-sub000/internal/infrastructure/export"
	v1 "github.com/nyaga-richard/tire-manager-sub000/internal/infrastructure/http/v1"
	"github.com/nyaga-richard/tire-manager-sub000/internal/infrastructure/storage/postgres"
	"github.com/nyaga-richard/tire-manager-sub000/internal/infrastructure/storage/postgres/auth_repo"
	"github.com/nyaga-richard/tire-manager-sub000/internal/infrastructure/storage/postgres/movement_repo"
	"github.com/nyaga-richard/tire-manager-sub000/pkg/logger"
)

func main() {
	// Initialize logger
	log, err := logger.New(logger.Config{
		Level:       getEnv("LOG_LEVEL", "info"),
		Development: getEnv("APP_ENV", "development") == "development",
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	ctx := context.Background()
	log.Info("starting tire-manager server")

	// --- Database connection ---
	poolCfg := postgres.DefaultPoolConfig(mustEnv("DATABASE_URL"))
	if maxConns := getEnvInt("DB_MAX_CONNS", 0); maxConns > 0 {
		poolCfg.MaxConns = int32(maxConns)
	}

	pool, err := postgres.NewPool(ctx, poolCfg)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()
	log.Info("database connection established")

	txManager := postgres.NewTxManager(pool)

	// --- Audit ---
	auditService, err := postgres.NewAuditService(txManager)
	if err != nil {
		log.Fatalw("failed to initialize audit service", "error", err)
	}

	// --- JWT Service ---
	jwtSecret := getEnv("JWT_SECRET", "your-secret-key-change-in-production")
	jwtService := auth.NewJWTService(auth.DefaultJWTConfig(jwtSecret))

	// --- Auth Service ---
	userRepo := auth_repo.NewUserRepo(txManager)
	authService := auth.NewService(userRepo, jwtService)

	// --- Movement Service ---
	movementRepo := movement_repo.NewRepo(txManager)
	movementService := movement.NewService(movementRepo, txManager, auditService)

	// --- Ledger Service ---
	ledgerOpts := ledger.Options{Grouping: ledger.GroupByReference}
	if getEnv("LEDGER_STRICT_GROUPING", "false") == "true" {
		ledgerOpts.Grouping = ledger.StrictReference
	}
	ledgerService := ledger.NewService(movementRepo, ledgerOpts)

	// --- Router ---
	router := v1.NewRouter(v1.RouterConfig{
		Pool:            pool,
		Logger:          log,
		JWTValidator:    jwtService,
		AuthService:     authService,
		MovementService: movementService,
		LedgerService:   ledgerService,
		Auditor:         auditService,
		ExportFormat:    exportFormat(),
	})

	// --- HTTP Server ---
	port := getEnv("APP_PORT", "8080")
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Infow("server starting", "port", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Give outstanding requests 30 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}

func exportFormat() export.Format {
	f := export.DefaultFormat()
	if symbol := os.Getenv("EXPORT_CURRENCY_SYMBOL"); symbol != "" {
		f.CurrencySymbol = symbol
	}
	if layout := os.Getenv("EXPORT_DATE_LAYOUT"); layout != "" {
		f.DateLayout = layout
	}
	return f
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func mustEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		fmt.Printf("required environment variable %s not set\n", key)
		os.Exit(1)
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var result int
		if _, err := fmt.Sscanf(value, "%d", &result); err == nil {
			return result
		}
	}
	return defaultValue
}
