package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/konskyyy/ewidencja-sprzetu/internal/core/services"
	"github.com/konskyyy/ewidencja-sprzetu/internal/handlers"
	"github.com/konskyyy/ewidencja-sprzetu/internal/middleware"
	"github.com/konskyyy/ewidencja-sprzetu/internal/platform/config"
	"github.com/konskyyy/ewidencja-sprzetu/internal/platform/telemetry"
	"github.com/konskyyy/ewidencja-sprzetu/internal/repositories/database/pgsql"
	"github.com/konskyyy/ewidencja-sprzetu/migrations"
	"github.com/konskyyy/ewidencja-sprzetu/pkg/database"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// @title Ewidencja Sprzętu API
// @version 1.0
// @description Equipment journal, unread activity feed and calibration tracking.

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	environment := "development"
	if cfg.IsProduction {
		environment = "production"
	}
	shutdownTracing, err := telemetry.Init(ctx, logger, telemetry.Options{
		Enabled:     cfg.OTelEnabled,
		Endpoint:    cfg.OTelEndpoint,
		SampleRatio: cfg.OTelSamplerRatio,
		Version:     cfg.ServiceVersion,
		Environment: environment,
	})
	if err != nil {
		logger.Error("Failed to initialize tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Error("Failed to flush traces", slog.String("error", err.Error()))
		}
	}()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, database.PoolOptions{
		MaxConns: cfg.DBMaxConns,
		MinConns: cfg.DBMinConns,
		Ping:     cfg.EnableDBCheck,
	})
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	if cfg.MigrationsEnabled {
		if err := database.RunMigrations(cfg.DatabaseURL, migrations.FS, logger); err != nil {
			logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	repos := pgsql.NewRepositoryProvider(dbPool)
	serviceContainer := services.NewServiceContainer(repos, time.Now)

	rateLimiter, err := middleware.NewIPRateLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit", slog.String("rate", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (tracing, logging, recovery, CORS)
	r.Use(
		otelgin.Middleware(telemetry.ServiceName),
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.CORS(cfg.CORSOrigins, cfg.CORSAllowSuffix),
	)

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, dbPool, middleware.RateLimit(rateLimiter))

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
