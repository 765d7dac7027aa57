package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/srgjo27/ticketing_client/internal/adapter/backend"
	"github.com/srgjo27/ticketing_client/internal/adapter/cache"
	"github.com/srgjo27/ticketing_client/internal/adapter/document"
	"github.com/srgjo27/ticketing_client/internal/adapter/handler"
	"github.com/srgjo27/ticketing_client/internal/adapter/repository/postgres"
	"github.com/srgjo27/ticketing_client/internal/adapter/stripe"
	"github.com/srgjo27/ticketing_client/internal/core/services"
	"github.com/srgjo27/ticketing_client/internal/platform/config"
	"github.com/srgjo27/ticketing_client/internal/platform/database"
)

func newLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	if cfg.IsProduction() {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	return logger
}

func main() {
	cfg := config.LoadConfig(".env")
	logger := newLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgresDB(ctx, database.Config{
		Host:       cfg.DBHost,
		Port:       cfg.DBPort,
		User:       cfg.DBUser,
		Password:   cfg.DBPassword,
		DBName:     cfg.DBName,
		MaxRetries: cfg.DBMaxRetries,
	}, logger)
	if err != nil {
		logger.Fatalf("Failed to connect to db after retries: %v", err)
	}
	defer db.Close()

	if err := postgres.Migrate(ctx, db); err != nil {
		logger.Fatalf("Failed to prepare local store: %v", err)
	}

	logger.Infof("Connecting to Redis at %s:%s...", cfg.RedisHost, cfg.RedisPort)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Fatalf("Failed to connect to Redis: %v", err)
	}
	logger.Info("Redis connected successfully!")

	api, err := backend.NewClient(cfg.BackendURL, cfg.BackendTimeout, logger)
	if err != nil {
		logger.Fatalf("Invalid backend configuration: %v", err)
	}

	if cfg.BackendEmail != "" {
		if err := api.Login(ctx, cfg.BackendEmail, cfg.BackendPassword); err != nil {
			logger.WithError(err).Warn("Automatic backend login failed, POST /login is still available")
		}
	}

	reservationRepo := postgres.NewReservationRepository(db)
	eventCache := cache.NewEventCache(redisClient)
	guard := cache.NewReservationGuard(redisClient)
	confirmer := stripe.NewConfirmer(cfg.StripeSecretKey, cfg.StripePaymentMethod, nil, logger)
	renderer := document.NewRenderer()
	artifacts := document.NewFileStore(cfg.TicketExportDir)

	sessionService := services.NewSessionService(api)
	catalogService := services.NewCatalogService(api, eventCache, cfg.EventCacheTTL, logger)
	paymentService := services.NewPaymentService(api, confirmer, cfg.PaymentCurrency, logger)
	reservationService := services.NewReservationService(catalogService, api, paymentService, reservationRepo, guard, cfg.ReservationLockTTL, logger)
	cancellationService := services.NewCancellationService(api, reservationRepo, catalogService, logger)
	ticketService := services.NewTicketService(reservationService, catalogService, renderer, artifacts, logger)

	go cancellationService.RunHousekeeping(ctx, cfg.HousekeepingInterval, cfg.CancelledRetention)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := handler.NewRouter(handler.Handlers{
		Sessions:     handler.NewSessionHandler(sessionService),
		Events:       handler.NewEventHandler(catalogService),
		Reservations: handler.NewReservationHandler(reservationService, cancellationService),
		Tickets:      handler.NewTicketHandler(ticketService),
	}, sessionService, logger)

	if cfg.EnableMetrics {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	if !cfg.IsLoopback() {
		logger.Warnf("HTTP_HOST=%s exposes the facade beyond this host; every caller acts as the signed-in backend user", cfg.HTTPHost)
	}

	server := &http.Server{
		Addr:         cfg.ListenAddr(),
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Infof("Server starting on %s", cfg.ListenAddr())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Server startup failed: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exiting")
}
