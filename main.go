package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"unovation-backend/config"
	"unovation-backend/controllers"
	"unovation-backend/repositories"
	"unovation-backend/routes"
	"unovation-backend/services"
	"unovation-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	envErr := config.LoadEnvFile()

	cfg, err := config.Load()
	if err != nil {
		zap.NewExample().Fatal("invalid configuration", zap.Error(err))
	}

	logger := utils.NewLogger(cfg.LogLevel, cfg.LogFormat)
	defer logger.Sync() //nolint:errcheck
	if envErr != nil {
		logger.Info("No .env file found")
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.ConnectDB(cfg.DatabaseURL, logger)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	store := repositories.NewStore(db)
	if err := store.Migrate(); err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}

	sessions := services.NewSessionService(store, cfg.JWTSecret, cfg.SessionTTL, logger)
	if err := sessions.EnsureAdmin(context.Background(), cfg.AdminUsername, cfg.AdminPassword); err != nil {
		logger.Fatal("admin seed failed", zap.Error(err))
	}
	janitor, err := sessions.StartJanitor(cfg.SessionPurgeSchedule)
	if err != nil {
		logger.Fatal("invalid SESSION_PURGE_SCHEDULE", zap.Error(err))
	}

	forwarder := services.NewForwarder(logger, cfg.WebhookTimeout, notifiers(cfg, logger)...)

	ctl := controllers.New(store, sessions, forwarder)
	r := routes.SetupRouter(cfg, logger, ctl)
	printRoutes(r, logger)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}
	<-janitor.Stop().Done()
	forwarder.Wait()

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// notifiers builds the lead sinks that are configured. With none, form
// submissions are only stored.
func notifiers(cfg *config.Config, logger *zap.Logger) []services.Notifier {
	var out []services.Notifier
	if cfg.WebhookBaseURL != "" {
		out = append(out, services.NewWebhookNotifier(cfg.WebhookBaseURL, &http.Client{Timeout: cfg.WebhookTimeout}))
	} else {
		logger.Warn("WEBHOOK_BASE_URL not set; lead forwarding disabled")
	}
	if cfg.Twilio.Enabled() {
		out = append(out, services.NewLeadAlertNotifier(
			cfg.Twilio.AccountSID,
			cfg.Twilio.AuthToken,
			cfg.Twilio.WhatsAppFrom,
			cfg.Twilio.AlertTo,
		))
	}
	return out
}

func printRoutes(r *gin.Engine, logger *zap.Logger) {
	for _, route := range r.Routes() {
		logger.Debug("route", zap.String("method", route.Method), zap.String("path", route.Path))
	}
}
