package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/firestore"

	cacheredis "pixigpt-bot/internal/cache/redis"
	"pixigpt-bot/internal/common/config"
	"pixigpt-bot/internal/common/logger"
	"pixigpt-bot/internal/features/quota"
	"pixigpt-bot/internal/features/user/repository/cached"
	fsrepo "pixigpt-bot/internal/features/user/repository/firestore"
	userservice "pixigpt-bot/internal/features/user/service"
	apihttp "pixigpt-bot/internal/http"
	platformredis "pixigpt-bot/internal/platform/redis"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger.Init("pixigpt-api", cfg.Debug)

	ctx := context.Background()

	fsClient, err := firestore.NewClient(ctx, cfg.Firestore.ProjectID)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to Firestore")
	}
	defer fsClient.Close()

	redisClient, err := platformredis.NewClient(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer redisClient.Close()

	userCache := cacheredis.NewUserCache(redisClient, cfg.Redis.CacheTTL)
	userRepo := cached.NewUserRepository(fsrepo.NewUserRepository(fsClient), userCache)

	quotaSvc := quota.NewService(userRepo, quota.Limits{FreeDaily: cfg.Quota.FreeDailyLimit})
	userSvc := userservice.NewUserService(userRepo, quotaSvc)

	accounts := apihttp.NewAccountHandler(userSvc, cfg.Telegram.BotUsername, cfg.Telegram.AdminContact)
	router := apihttp.NewRouter(cfg, accounts, fsClient, redisClient)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Int("port", cfg.Server.Port).Msg("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Server exited")
}
