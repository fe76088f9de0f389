package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/remittance_pricing/internal/adapters/rateproviders"
	portsrepo "github.com/SscSPs/remittance_pricing/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/remittance_pricing/internal/core/ports/services"
	"github.com/SscSPs/remittance_pricing/internal/core/services"
	"github.com/SscSPs/remittance_pricing/internal/dto"
	"github.com/SscSPs/remittance_pricing/internal/events"
	"github.com/SscSPs/remittance_pricing/internal/handlers"
	"github.com/SscSPs/remittance_pricing/internal/metrics"
	"github.com/SscSPs/remittance_pricing/internal/middleware"
	"github.com/SscSPs/remittance_pricing/internal/platform/config"
	"github.com/SscSPs/remittance_pricing/internal/repositories/cache"
	"github.com/SscSPs/remittance_pricing/internal/repositories/database/pgsql"
	"github.com/SscSPs/remittance_pricing/pkg/database"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title Remittance Pricing API
// @version 1.0
// @description Exchange-rate resolution and order pricing for the remittance back office.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dto.RegisterValidators()

	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	if err := runMigrations(logger, cfg.DatabaseURL); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer func() {
			if cerr := redisClient.Close(); cerr != nil {
				logger.Error("Error closing redis client", slog.String("error", cerr.Error()))
			}
		}()
		logger.Info("Redis client configured", slog.String("addr", cfg.RedisAddr))
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	pricingMetrics := metrics.NewPricingMetrics(registry)

	repos := pgsql.NewRepositoryProvider(dbPool)

	settings := buildSettings(cfg, repos.ParamRepo, redisClient)

	providerRegistry := rateproviders.NewDefaultRegistry(rateproviders.DefaultOptions{
		CurrencyLayer: rateproviders.Options{
			BaseURL: cfg.CurrencyLayer.BaseURL,
			APIKey:  cfg.CurrencyLayer.APIKey,
			Timeout: cfg.RateProviderTimeout,
			Metrics: pricingMetrics,
		},
		ExchangeRateAPI: rateproviders.Options{
			BaseURL: cfg.ExchangeRateAPI.BaseURL,
			APIKey:  cfg.ExchangeRateAPI.APIKey,
			Timeout: cfg.RateProviderTimeout,
			Metrics: pricingMetrics,
		},
		ExRates: rateproviders.Options{
			BaseURL: cfg.ExRates.BaseURL,
			APIKey:  cfg.ExRates.APIKey,
			Timeout: cfg.RateProviderTimeout,
			Metrics: pricingMetrics,
		},
	}, repos.RateRepo, pricingMetrics)

	publisher := buildPublisher(logger, cfg)
	defer func() {
		if cerr := publisher.Close(); cerr != nil {
			logger.Error("Error closing order event publisher", slog.String("error", cerr.Error()))
		}
	}()

	serviceContainer := services.NewServiceContainer(services.Dependencies{
		Repos:     repos,
		Registry:  providerRegistry,
		Settings:  settings,
		Publisher: publisher,
		Metrics:   pricingMetrics,
	})

	rateLimiter, err := middleware.NewLimiter(cfg.RateLimit, redisClient)
	if err != nil {
		logger.Error("Failed to create rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, handlers.RouterDeps{
		Registry: registry,
		Limiter:  rateLimiter,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", slog.String("error", err.Error()))
	}
}

// buildSettings reads pricing settings from the params table, through Redis
// when it is configured. Static config values fill in missing params.
func buildSettings(cfg *config.Config, params portsrepo.ParamReader, redisClient *redis.Client) portssvc.PricingSettings {
	fallback := services.NewStaticSettings(cfg)
	if redisClient == nil {
		return services.NewParamSettings(params, fallback)
	}
	return services.NewParamSettings(cache.NewParamCache(redisClient, params, cfg.ParamCacheTTL), fallback)
}

type orderPublisher interface {
	portssvc.OrderEventPublisher
	Close() error
}

func buildPublisher(logger *slog.Logger, cfg *config.Config) orderPublisher {
	if len(cfg.KafkaBrokers) == 0 {
		logger.Info("No Kafka brokers configured, order events are disabled")
		return events.NoopPublisher{}
	}
	logger.Info("Publishing order events to Kafka", slog.String("topic", cfg.KafkaOrderTopic))
	return events.NewKafkaOrderPublisher(cfg.KafkaBrokers, cfg.KafkaOrderTopic)
}

func runMigrations(logger *slog.Logger, databaseURL string) error {
	logger.Info("Running database migrations...")
	// Using pgx/v5/stdlib driver to be compatible with the main pool
	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	upErr := m.Up()
	if upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		return upErr
	}

	if errors.Is(upErr, migrate.ErrNoChange) {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
