package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Dosada05/league-stats/brackets"
	"github.com/Dosada05/league-stats/config"
	"github.com/Dosada05/league-stats/db"
	"github.com/Dosada05/league-stats/handlers"
	"github.com/Dosada05/league-stats/repositories"
	api "github.com/Dosada05/league-stats/routes"
	"github.com/Dosada05/league-stats/services"
	"github.com/Dosada05/league-stats/storage"
)

// @title League Stats API
// @version 1.0
// @description Read-only statistics over the league match history.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)
	logger.Info("configuration loaded",
		slog.Int("port", cfg.ServerPort),
		slog.String("driver", string(cfg.DatabaseDriver)),
		slog.String("default_scope", string(cfg.Stats.Scope)),
	)

	dbConn, err := db.Connect(cfg.DatabaseDriver, cfg.DatabaseURL, cfg.DBTimeout)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		} else {
			logger.Info("database connection closed")
		}
	}()
	logger.Info("database connection established")

	if cfg.DatabaseDriver == repositories.DialectSQLite {
		if err := db.EnsureSchema(context.Background(), dbConn); err != nil {
			logger.Error("failed to prepare sqlite schema", slog.Any("error", err))
			os.Exit(1)
		}
	}

	var uploader storage.ObjectUploader
	if cfg.R2.Enabled() {
		uploader, err = storage.NewR2Uploader(context.Background(), cfg.R2)
		if err != nil {
			logger.Error("failed to initialize Cloudflare R2 uploader", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("Cloudflare R2 uploader initialized", slog.String("bucket", cfg.R2.BucketName))
	} else {
		logger.Info("snapshot publishing disabled: R2 is not configured")
	}
	if cfg.JWTSecretKey == "" {
		logger.Warn("JWT_SECRET_KEY is empty: admin routes will reject every request")
	}

	playerRepo := repositories.NewPlayerRepository(dbConn, cfg.DatabaseDriver)
	tournamentRepo := repositories.NewTournamentRepository(dbConn, cfg.DatabaseDriver)
	matchRepo := repositories.NewMatchRepository(dbConn, cfg.DatabaseDriver)
	logger.Info("Repositories initialized")

	statsService := services.NewStatsService(
		playerRepo,
		tournamentRepo,
		matchRepo,
		brackets.NewRoundRobinGenerator(),
		cfg.Stats,
		cfg.CupInitialOwnerID,
		logger,
	)
	snapshotService := services.NewSnapshotService(statsService, uploader, logger)
	logger.Info("Services initialized")

	statsHandler := handlers.NewStatsHandler(statsService)
	adminHandler := handlers.NewAdminHandler(snapshotService)

	router := chi.NewRouter()
	api.SetupRoutes(
		router,
		api.Options{CORSOrigins: cfg.CORSOrigins, JWTSecret: cfg.JWTSecretKey},
		statsHandler,
		adminHandler,
	)
	logger.Info("Routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		logger.Info("shutting down server", slog.Duration("timeout", 15*time.Second))
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
	logger.Info("application exited")
}
