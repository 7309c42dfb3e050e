package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	_ "github.com/spendio/spendio_backend/cmd/docs"
	"github.com/spendio/spendio_backend/internal/adapters/database/pgsql"
	"github.com/spendio/spendio_backend/internal/adapters/exchangerates"
	"github.com/spendio/spendio_backend/internal/adapters/localstore"
	"github.com/spendio/spendio_backend/internal/core/services"
	"github.com/spendio/spendio_backend/internal/handlers"
	"github.com/spendio/spendio_backend/internal/middleware"
	"github.com/spendio/spendio_backend/internal/platform/config"
	"github.com/spendio/spendio_backend/internal/platform/scheduler"
	"github.com/spendio/spendio_backend/pkg/database"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title Spendio Backend API
// @version 1.0
// @description Currency conversion and reconciliation backend for the Spendio personal finance app.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg, logger); err != nil {
		logger.Error("Failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// The local mirror keeps the last known preference readable when
	// Postgres is down.
	mirror, err := localstore.Open(cfg.MirrorDBPath)
	if err != nil {
		logger.Error("Failed to open local mirror", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if cerr := mirror.Close(); cerr != nil {
			logger.Error("Error closing local mirror", slog.String("error", cerr.Error()))
		}
	}()

	rateClient := exchangerates.NewClient(cfg.ExchangeRateAPIURL, cfg.ExchangeRateAPIKey, cfg.RateClientTimeout)

	repos := pgsql.NewRepositoryProvider(dbPool, mirror)
	serviceContainer := services.NewServiceContainer(cfg, repos, rateClient)

	// Warm the rate and catalog caches on a schedule so interactive
	// requests rarely pay the provider round trip.
	sched := scheduler.New(logger)
	if err := sched.AddJob(cfg.WarmSchedule, scheduler.NewRateWarmJob(serviceContainer.Rate, cfg.DefaultCurrency)); err != nil {
		logger.Error("Failed to schedule cache warm job", slog.String("error", err.Error()))
		os.Exit(1)
	}
	sched.Start()
	defer sched.Stop()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies pending "up" migrations over a short-lived
// database/sql connection, separate from the pgx pool used by the app.
func runMigrations(cfg *config.Config, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return err
	}
	if err := migrationDB.Ping(); err != nil {
		migrationDB.Close()
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		migrationDB.Close()
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		migrationDB.Close()
		return err
	}

	upErr := m.Up()
	if upErr != nil && upErr != migrate.ErrNoChange {
		m.Close()
		return upErr
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if upErr == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
