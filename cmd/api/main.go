package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"freelance-site-backend/config"
	_ "freelance-site-backend/docs" // Important for Swagger
	v1 "freelance-site-backend/internal/delivery/http/v1"
	"freelance-site-backend/internal/usecase"
	"freelance-site-backend/pkg/email"
	"freelance-site-backend/pkg/logger"
	"freelance-site-backend/pkg/redis"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// @title           Freelance Site Backend API
// @version         1.0
// @description     Contact form relay for the freelance development site.
// @host            localhost:8080
// @BasePath        /api
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting freelance site backend", "port", cfg.Port, "email_provider", cfg.EmailProvider)

	// 3. Setup Redis (optional, rate limiting only)
	if cfg.UpstashRedisURL != "" {
		if err := redis.Initialize(redis.Config{URL: cfg.UpstashRedisURL, Password: cfg.UpstashRedisPassword}); err != nil {
			logger.Log.Warn("Redis unavailable - rate limiting falls back to in-memory", "error", err)
		}
		defer redis.Close()
	}

	// 4. Setup Email Sender
	sender, err := email.NewSender(cfg)
	if err != nil {
		logger.Log.Error("Failed to create email sender", "error", err)
		os.Exit(1)
	}
	if !sender.Configured() {
		logger.Log.Error("Email provider credentials missing - contact submissions will fail", "provider", sender.Name())
	}
	if cfg.ContactRecipient() == "" {
		logger.Log.Error("CONTACT_EMAIL not set - contact submissions will fail")
	} else if cfg.ContactEmail == "" {
		logger.Log.Warn("CONTACT_EMAIL not set - using placeholder mailbox", "to", config.PlaceholderContactEmail)
	}

	// 5. Setup UseCases
	contactUC := usecase.NewContactUsecase(sender, usecase.ContactSettings{
		From: cfg.ContactFrom,
		To:   cfg.ContactRecipient(),
	}, validator.New())

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		Config:    cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
