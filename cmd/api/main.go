package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"donation-gateway/config"
	razorpayGateway "donation-gateway/internal/adapter/gateway/razorpay"
	httpHandler "donation-gateway/internal/adapter/http/handler"
	pgStorage "donation-gateway/internal/adapter/storage/postgres"
	redisStorage "donation-gateway/internal/adapter/storage/redis"
	"donation-gateway/internal/core/ports"
	"donation-gateway/internal/service"
	"donation-gateway/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Donation Gateway")

	if cfg.Razorpay.KeySecret == "" {
		// Orders can still be issued against a test stub, but every
		// confirmation will fail verification.
		log.Warn().Msg("Razorpay key secret is not configured")
	}

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	orderRepo := pgStorage.NewDonationOrderRepo(pool)
	auditRepo := pgStorage.NewAuditRepository(pool)

	// Initialize Redis stores
	confirmationCache := redisStorage.NewConfirmationCache(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize gateway client
	gatewayClient := razorpayGateway.NewClient(
		cfg.Razorpay,
		&http.Client{Timeout: cfg.Razorpay.Timeout},
		log,
	)

	// Initialize core services
	sigSvc := service.NewHMACSignatureService()
	auditSvc := service.NewAuditService(auditRepo, log)
	orderSvc := service.NewOrderService(gatewayClient, orderRepo, auditSvc, cfg.Razorpay.Timeout, log)
	verificationSvc := service.NewVerificationService(
		sigSvc,
		cfg.Razorpay.KeySecret,
		orderRepo,
		confirmationCache,
		auditSvc,
		log,
	)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		OrderSvc:        orderSvc,
		VerificationSvc: verificationSvc,
		RateLimitStore:  rateLimitStore,
		HealthCheckers:  []ports.HealthChecker{pgHealth, redisHealth, gatewayClient},
		AllowedOrigins:  cfg.CORS.AllowedOrigins,
		Logger:          log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
