package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "studiobook/docs"

	"studiobook/internal/calendar"
	"studiobook/internal/clock"
	"studiobook/internal/config"
	"studiobook/internal/db"
	"studiobook/internal/logger"
	"studiobook/internal/server"
)

// @title StudioBook API
// @version 1.0
// @description API for recording studio slot booking with membership tiers and cancellation policy.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {

	logger.Init()
	logger.Info("Starting StudioBook application")
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	logger.Info("Connecting to database...")
	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()
	logger.Info("Database connected")

	if err := db.RunMigrations(database, "migrations"); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}
	logger.Info("Migrations completed")

	studioClock, err := clock.NewStudioClock()
	if err != nil {
		logger.Fatalf("Failed to load studio timezone: %v", err)
	}

	calendarService := calendar.New(cfg.RedisAddr, cfg.CalendarWebhookURL)
	defer calendarService.Close()
	logger.Info("Calendar sync service initialized")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go calendarService.Start(ctx)

	srv := server.New(database, cfg, calendarService, studioClock)

	serverErrChan := make(chan error, 1)
	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		if err := srv.Start(cfg.Port); err != nil && err != http.ErrServerClosed {
			serverErrChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Infof("Received signal: %v", sig)
	case err := <-serverErrChan:
		logger.Errorf("Server error: %v", err)
	}

	logger.Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}

	logger.Info("Server stopped")
}
