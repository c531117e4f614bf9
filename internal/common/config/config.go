package config

import (
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Debug bool `env:"DEBUG" envDefault:"false"`

	Server struct {
		Port   int    `env:"PORT" envDefault:"8080"`
		Origin string `env:"ORIGIN" envDefault:"http://localhost:3000"`

		// TTL for Telegram init-data signatures on the mini-app API (0 disables the check).
		InitDataTTL time.Duration `env:"INIT_DATA_TTL" envDefault:"24h"`
	}

	Telegram struct {
		BotToken string `env:"BOT_TOKEN,required"`
		Debug    bool   `env:"TELEGRAM_DEBUG" envDefault:"false"`

		// Username of the bot itself, used to build referral deep links in
		// the API binary (the bot binary reads it from getMe).
		BotUsername string `env:"BOT_USERNAME" envDefault:"pixigpt_bot"`

		// Channel the user must join before chatting.
		ChannelID   int64  `env:"TELEGRAM_CHANNEL_ID,required"`
		ChannelLink string `env:"TELEGRAM_CHANNEL_LINK" envDefault:"https://t.me/pixigpt"`

		// Contact shown to users who want to upgrade to premium.
		AdminContact string `env:"ADMIN_CONTACT" envDefault:"@rs_fahim_crypto"`
	}

	Gemini struct {
		APIKey string `env:"GEMINI_API_KEY,required"`
		Model  string `env:"GEMINI_MODEL" envDefault:"gemini-pro"`
	}

	Firestore struct {
		ProjectID string `env:"GCP_PROJECT_ID,required"`
	}

	Redis struct {
		Host     string        `env:"REDIS_HOST" envDefault:"localhost"`
		Port     int           `env:"REDIS_PORT" envDefault:"6379"`
		Password string        `env:"REDIS_PASSWORD" envDefault:""`
		DB       int           `env:"REDIS_DB" envDefault:"0"`
		CacheTTL time.Duration `env:"USER_CACHE_TTL" envDefault:"5m"`
	}

	Quota struct {
		FreeDailyLimit int64 `env:"FREE_MESSAGE_LIMIT" envDefault:"15"`
		ReferralAward  int64 `env:"REFERRAL_AWARD" envDefault:"2"`
	}
}

func Load() (*Config, error) {
	// Missing .env is fine, production sets variables directly.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
