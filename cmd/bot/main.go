package main

import (
	"context"
	"os/signal"
	"syscall"

	"cloud.google.com/go/firestore"

	"pixigpt-bot/internal/bot"
	cacheredis "pixigpt-bot/internal/cache/redis"
	"pixigpt-bot/internal/common/config"
	"pixigpt-bot/internal/common/logger"
	"pixigpt-bot/internal/features/quota"
	"pixigpt-bot/internal/features/referral"
	"pixigpt-bot/internal/features/user/repository/cached"
	fsrepo "pixigpt-bot/internal/features/user/repository/firestore"
	userservice "pixigpt-bot/internal/features/user/service"
	"pixigpt-bot/internal/platform/llm"
	platformredis "pixigpt-bot/internal/platform/redis"
	"pixigpt-bot/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger.Init("pixigpt-bot", cfg.Debug)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fsClient, err := firestore.NewClient(ctx, cfg.Firestore.ProjectID)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to Firestore")
	}
	defer fsClient.Close()
	logger.Info().Str("project", cfg.Firestore.ProjectID).Msg("Firestore connection established")

	redisClient, err := platformredis.NewClient(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer redisClient.Close()
	logger.Info().Msg("Redis connection established")

	userCache := cacheredis.NewUserCache(redisClient, cfg.Redis.CacheTTL)
	userRepo := cached.NewUserRepository(fsrepo.NewUserRepository(fsClient), userCache)

	quotaSvc := quota.NewService(userRepo, quota.Limits{FreeDaily: cfg.Quota.FreeDailyLimit})
	referralSvc := referral.NewService(userRepo, cfg.Quota.ReferralAward)
	userSvc := userservice.NewUserService(userRepo, quotaSvc)
	sessions := session.NewTracker()

	generator, err := llm.NewGeminiClient(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create Gemini client")
	}
	logger.Info().Str("model", cfg.Gemini.Model).Msg("Gemini client initialized")

	b, err := bot.New(
		cfg.Telegram.BotToken,
		cfg.Telegram.Debug,
		bot.Config{
			ChannelID:     cfg.Telegram.ChannelID,
			ChannelLink:   cfg.Telegram.ChannelLink,
			AdminContact:  cfg.Telegram.AdminContact,
			ReferralAward: cfg.Quota.ReferralAward,
		},
		userSvc,
		quotaSvc,
		referralSvc,
		sessions,
		generator,
	)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create bot")
	}

	if err := b.Run(ctx); err != nil {
		logger.Fatal().Err(err).Msg("Bot stopped with error")
	}

	logger.Info().Msg("Bot exited")
}
