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

	"github.com/MhzZZZZZ322322/MPL.mdd-sub001/cache"
	"github.com/MhzZZZZZ322322/MPL.mdd-sub001/config"
	"github.com/MhzZZZZZ322322/MPL.mdd-sub001/db"
	"github.com/MhzZZZZZ322322/MPL.mdd-sub001/engine"
	"github.com/MhzZZZZZ322322/MPL.mdd-sub001/handlers"
	"github.com/MhzZZZZZ322322/MPL.mdd-sub001/live"
	"github.com/MhzZZZZZ322322/MPL.mdd-sub001/repositories"
	"github.com/MhzZZZZZ322322/MPL.mdd-sub001/routes"
	"github.com/MhzZZZZZ322322/MPL.mdd-sub001/services"
	"github.com/MhzZZZZZ322322/MPL.mdd-sub001/storage"
)

const (
	dbConnectTimeout = 10 * time.Second
	shutdownTimeout  = 15 * time.Second
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	database, err := db.Connect(cfg.DatabaseURL, dbConnectTimeout)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer database.Close()
	logger.Info("database connection established")

	var appCache cache.Cache = cache.Noop{}
	if cfg.RedisAddr != "" {
		appCache, err = cache.NewRedisCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			logger.Error("failed to connect to redis", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("redis cache enabled", slog.String("addr", cfg.RedisAddr))
	} else {
		logger.Info("redis not configured, running without cache")
	}

	var uploader storage.FileUploader = storage.Disabled{}
	if cfg.R2AccountID != "" {
		uploader, err = storage.NewCloudflareR2Uploader(storage.CloudflareR2Config{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			BucketName:      cfg.R2BucketName,
			PublicBaseURL:   cfg.R2PublicBaseURL,
		})
		if err != nil {
			logger.Error("failed to initialize R2 uploader", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("R2 object storage enabled", slog.String("bucket", cfg.R2BucketName))
	} else {
		logger.Info("R2 not configured, logo uploads disabled")
	}

	hub := live.NewHub()
	go hub.Run()

	teamRepo := repositories.NewPostgresTeamRepository(database)
	groupRepo := repositories.NewPostgresGroupRepository(database)
	groupMatchRepo := repositories.NewPostgresGroupMatchRepository(database)
	standingRepo := repositories.NewPostgresGroupStandingRepository(database)
	swissMatchRepo := repositories.NewPostgresSwissMatchRepository(database)
	bracketMatchRepo := repositories.NewPostgresBracketMatchRepository(database)
	stageConfigRepo := repositories.NewPostgresStageConfigRepository(database)
	userRepo := repositories.NewPostgresUserRepository(database)

	authService := services.NewAuthService(userRepo, cfg.JWTSecretKey)
	teamService := services.NewTeamService(teamRepo, uploader, logger)
	groupService := services.NewGroupService(groupRepo, teamRepo)
	groupStageService := services.NewGroupStageService(database, groupRepo, groupMatchRepo, standingRepo, appCache, hub, logger)
	swissService := services.NewSwissService(swissMatchRepo, stageConfigRepo, engine.AdjacentPairing{}, hub, logger)
	bracketService := services.NewBracketService(bracketMatchRepo, hub, logger)
	stageService := services.NewStageService(groupStageService, swissService, bracketService, standingRepo, stageConfigRepo)

	handler := routes.SetupRoutes(routes.Handlers{
		Auth:       handlers.NewAuthHandler(authService),
		Teams:      handlers.NewTeamHandler(teamService),
		GroupStage: handlers.NewGroupStageHandler(groupStageService, groupService),
		Swiss:      handlers.NewSwissHandler(swissService),
		Brackets:   handlers.NewBracketHandler(bracketService),
		Stages:     handlers.NewStageHandler(stageService),
		WebSocket:  handlers.NewWebSocketHandler(hub, logger),
	}, cfg.JWTSecretKey)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  time.Minute,
	}

	shutdownErr := make(chan error, 1)
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit
		logger.Info("shutting down server", slog.String("signal", s.String()))

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		shutdownErr <- server.Shutdown(ctx)
	}()

	logger.Info("starting server", slog.Int("port", cfg.ServerPort))
	if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server error", slog.Any("error", err))
		os.Exit(1)
	}
	if err := <-shutdownErr; err != nil {
		logger.Error("graceful shutdown failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("server stopped")
}
