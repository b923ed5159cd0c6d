package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/valentinlamine/MemoryApp/internal/api"
	"github.com/valentinlamine/MemoryApp/internal/auth"
	"github.com/valentinlamine/MemoryApp/internal/config"
	"github.com/valentinlamine/MemoryApp/internal/db"
	"github.com/valentinlamine/MemoryApp/internal/logger"
	"github.com/valentinlamine/MemoryApp/internal/repository/sqlite"
	"github.com/valentinlamine/MemoryApp/internal/services"
	"github.com/valentinlamine/MemoryApp/internal/srs"
)

func main() {
	cfg := config.Load()

	log := logger.New(logger.WithLevel(logger.ParseLevel(cfg.LogLevel)))
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("MemoryApp Server Starting")
	log.Info("===========================================")
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration: %v", err)
		os.Exit(1)
	}
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("cards_per_day=%d", cfg.CardsPerDay)

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	// Repositories
	cardRepo := sqlite.NewCardRepository(database)
	ledger := sqlite.NewReviewLedger(database)
	categoryRepo := sqlite.NewCategoryRepository(database)
	settingsRepo := sqlite.NewSettingsRepository(database)
	statsRepo := sqlite.NewStatsRepository(database)

	// Core scheduling
	calculator := srs.NewCalculator(cardRepo, ledger, categoryRepo)
	hub := auth.NewHub()

	// Services
	cardService := services.NewCardService(cardRepo, categoryRepo)
	categoryService := services.NewCategoryService(categoryRepo)
	sessionService := services.NewSessionService(calculator, ledger, settingsRepo, cfg.CardsPerDay, hub)
	settingsService := services.NewSettingsService(settingsRepo, cfg.CardsPerDay)
	statsService := services.NewStatsService(statsRepo)

	srv := &api.Server{
		CardService:     cardService,
		CategoryService: categoryService,
		SessionService:  sessionService,
		SettingsService: settingsService,
		StatsService:    statsService,
		TokenVerifier:   auth.NewVerifier(cfg.JWTSecret),
		AuthHub:         hub,
	}

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	log.Info("===========================================")
	log.Info("MemoryApp Server Stopped")
	log.Info("===========================================")
}
