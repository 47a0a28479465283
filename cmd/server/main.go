package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AnnaAaBrekke/PE2-holidaze/internal/di"
	"github.com/AnnaAaBrekke/PE2-holidaze/internal/dto"
	"github.com/AnnaAaBrekke/PE2-holidaze/internal/holidaze"
	"github.com/AnnaAaBrekke/PE2-holidaze/internal/middleware"
	"github.com/AnnaAaBrekke/PE2-holidaze/internal/session"
	"github.com/AnnaAaBrekke/PE2-holidaze/pkg/config"
	"github.com/AnnaAaBrekke/PE2-holidaze/pkg/logger"
	pkgmiddleware "github.com/AnnaAaBrekke/PE2-holidaze/pkg/middleware"
	pkgredis "github.com/AnnaAaBrekke/PE2-holidaze/pkg/redis"
	"github.com/AnnaAaBrekke/PE2-holidaze/pkg/telemetry"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logCfg := &logger.Config{
		Level:       "info",
		ServiceName: cfg.App.Name,
		Development: cfg.IsDevelopment(),
	}
	if cfg.App.Debug {
		logCfg.Level = "debug"
	}
	if err := logger.Init(logCfg); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	appLog := logger.Get()
	appLog.Info("Starting Holidaze Gateway...")

	ctx := context.Background()

	// Initialize tracing
	tel, err := telemetry.Init(ctx, &telemetry.Config{
		Enabled:        cfg.OTel.Enabled,
		ServiceName:    cfg.OTel.ServiceName,
		ServiceVersion: cfg.App.Version,
		Environment:    cfg.App.Environment,
		CollectorAddr:  cfg.OTel.CollectorAddr,
		SampleRatio:    cfg.OTel.SampleRatio,
	})
	if err != nil {
		appLog.Fatal(fmt.Sprintf("Telemetry init failed: %v", err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = tel.Shutdown(shutdownCtx)
	}()

	// Initialize the remote API client
	apiClient, err := holidaze.NewClient(holidaze.Config{
		BaseURL:     cfg.Holidaze.BaseURL,
		AuthBaseURL: cfg.Holidaze.AuthBaseURL,
		APIKey:      cfg.Holidaze.APIKey,
		Timeout:     cfg.Holidaze.Timeout,
	}, appLog)
	if err != nil {
		appLog.Fatal(fmt.Sprintf("API client init failed: %v", err))
	}

	// Choose the session store. Redis lets multiple gateway instances share
	// sessions; memory is fine for a single instance.
	var sessions session.Store
	var idempotency gin.HandlerFunc
	checks := map[string]func(context.Context) error{}
	if cfg.Redis.Enabled {
		redisClient, err := pkgredis.Connect(ctx, &pkgredis.Config{
			Host:          cfg.Redis.Host,
			Port:          cfg.Redis.Port,
			Password:      cfg.Redis.Password,
			DB:            cfg.Redis.DB,
			PoolSize:      cfg.Redis.PoolSize,
			MinIdleConns:  cfg.Redis.MinIdleConns,
			DialTimeout:   cfg.Redis.DialTimeout,
			ReadTimeout:   cfg.Redis.ReadTimeout,
			WriteTimeout:  cfg.Redis.WriteTimeout,
			MaxRetries:    3,
			RetryInterval: time.Second,
		})
		if err != nil {
			appLog.Fatal(fmt.Sprintf("Redis connection failed: %v", err))
		}
		defer redisClient.Close()

		sessions = session.NewRedisStore(redisClient, cfg.Session.TTL)
		idempotency = pkgmiddleware.Idempotency(&pkgmiddleware.IdempotencyConfig{Redis: redisClient})
		checks["redis"] = func(ctx context.Context) error {
			return pkgredis.HealthCheck(ctx, redisClient)
		}
		appLog.Info(fmt.Sprintf("Sessions stored in Redis at %s", cfg.Redis.Addr()))
	} else {
		sessions = session.NewMemoryStore(cfg.Session.TTL)
		appLog.Info("Sessions stored in memory")
	}

	// Register custom request validators
	if err := dto.RegisterValidators(); err != nil {
		appLog.Fatal(fmt.Sprintf("Validator registration failed: %v", err))
	}

	// Build dependency injection container
	container := di.NewContainer(&di.ContainerConfig{
		App:      cfg.App,
		API:      apiClient,
		Sessions: sessions,
		Checks:   checks,
		Logger:   appLog,
	})

	// Setup Gin
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(appLog))
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	if cfg.OTel.Enabled {
		router.Use(telemetry.TracingMiddleware(cfg.OTel.ServiceName))
	}

	// Health check endpoints
	router.GET("/health", container.HealthHandler.Health)
	router.GET("/ready", container.HealthHandler.Ready)

	// API routes
	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", container.AuthHandler.Register)
			auth.POST("/login", container.AuthHandler.Login)
			auth.POST("/logout", middleware.Auth(container.AuthService), container.AuthHandler.Logout)
		}

		venues := v1.Group("/venues")
		{
			venues.GET("", container.VenueHandler.List)
			venues.GET("/:id", container.VenueHandler.Get)
			venues.POST("/:id/quote", container.VenueHandler.Quote)
		}

		bookings := v1.Group("/bookings")
		bookings.Use(middleware.Auth(container.AuthService))
		{
			if idempotency != nil {
				bookings.POST("", idempotency, container.BookingHandler.Create)
			} else {
				bookings.POST("", container.BookingHandler.Create)
			}
			bookings.GET("", container.BookingHandler.List)
		}

		profile := v1.Group("/profile")
		profile.Use(middleware.Auth(container.AuthService))
		{
			profile.GET("", container.ProfileHandler.Get)
			profile.PUT("", container.ProfileHandler.Update)
		}

		manager := v1.Group("/manager")
		manager.Use(middleware.Auth(container.AuthService), middleware.RequireManager())
		{
			manager.GET("/venues", container.VenueHandler.ManagerVenues)
			manager.POST("/venues", container.VenueHandler.Create)
			manager.PUT("/venues/:id", container.VenueHandler.Update)
			manager.DELETE("/venues/:id", container.VenueHandler.Delete)
			manager.GET("/stats", container.VenueHandler.Stats)
		}
	}

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ReadHeaderTimeout: 2 * time.Second,
	}

	// Start server in goroutine
	go func() {
		appLog.Info(fmt.Sprintf("Holidaze Gateway listening on %s", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.Fatal(fmt.Sprintf("Failed to start server: %v", err))
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLog.Info("Shutting down server...")

	// Give outstanding requests 30 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLog.Fatal(fmt.Sprintf("Server forced to shutdown: %v", err))
	}

	appLog.Info("Server exited gracefully")
}
