package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio-backend/config"
	"portfolio-backend/internal/delivery/http/middleware"
	v1 "portfolio-backend/internal/delivery/http/v1"
	"portfolio-backend/internal/repository/postgres"
	"portfolio-backend/internal/usecase"
	"portfolio-backend/pkg/database"
	"portfolio-backend/pkg/email"
	"portfolio-backend/pkg/logger"
	"portfolio-backend/pkg/redis"
	"portfolio-backend/pkg/validation"

	goredis "github.com/redis/go-redis/v9"
)

// @title           Portfolio Backend API
// @version         1.0
// @description     Galleries and contact form for the photography and n8n automation portfolio.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting portfolio backend", "port", cfg.Port)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(ctx, cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Log.Info("Database connection established")

	// 4. Setup Redis (optional)
	var redisClient *goredis.Client
	redisClient, err = redis.NewClient(ctx, redis.Config{
		URL:      cfg.UpstashRedisURL,
		Password: cfg.UpstashRedisPassword,
	})
	if err != nil {
		if !errors.Is(err, redis.ErrNotConfigured) {
			logger.Log.Warn("Redis unavailable, rate limiting in memory", "error", err)
		}
		redisClient = nil
	} else {
		defer redisClient.Close()
	}

	// 5. Setup Repositories
	photoRepo := postgres.NewPhotoRepository(dbPool)
	automationRepo := postgres.NewAutomationRepository(dbPool)
	contactRepo := postgres.NewContactRepository(dbPool)

	// 6. Setup Email Service
	emailService := email.NewEmailService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not configured - contact messages are stored without notification")
	}

	// 7. Setup UseCases
	validate := validation.New()
	galleryUC := usecase.NewGalleryUsecase(photoRepo, automationRepo)
	contactUC := usecase.NewContactUsecase(contactRepo, validate, emailService)
	healthUC := usecase.NewHealthUsecase(dbPool)

	// 8. Setup Rate Limiters
	window := time.Duration(cfg.RateLimitWindowSeconds) * time.Second
	globalLimiter := middleware.NewRateLimiter(middleware.GlobalRateLimitConfig(cfg.RateLimitGlobalThreshold, window), redisClient)
	contactLimiter := middleware.NewRateLimiter(middleware.ContactRateLimitConfig(cfg.RateLimitContactThreshold, window), redisClient)
	go globalLimiter.Cleanup(ctx, 5*time.Minute)
	go contactLimiter.Cleanup(ctx, 5*time.Minute)

	// 9. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		GalleryUC:      galleryUC,
		ContactUC:      contactUC,
		HealthUC:       healthUC,
		GlobalLimiter:  globalLimiter,
		ContactLimiter: contactLimiter,
		Config:         cfg,
	})

	// 10. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
			stop()
		}
	}()

	// Graceful Shutdown
	<-ctx.Done()
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
