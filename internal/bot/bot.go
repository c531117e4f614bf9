package bot

import (
	"context"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"pixigpt-bot/internal/common/logger"
	"pixigpt-bot/internal/features/quota"
	"pixigpt-bot/internal/features/referral"
	userservice "pixigpt-bot/internal/features/user/service"
	"pixigpt-bot/internal/platform/llm"
	"pixigpt-bot/internal/session"
)

// updateTimeout bounds one inbound update end to end, generation included.
const updateTimeout = 90 * time.Second

// Config is the bot-facing slice of application configuration.
type Config struct {
	ChannelID     int64
	ChannelLink   string
	AdminContact  string
	ReferralAward int64
}

// Bot wires the Telegram transport to the quota, referral, session and
// generation services. Each update runs in its own goroutine; a panic in one
// handler never takes down another user's request.
type Bot struct {
	api       *tgbotapi.BotAPI
	cfg       Config
	users     *userservice.UserService
	quota     *quota.Service
	referrals *referral.Service
	sessions  *session.Tracker
	generator llm.Generator
}

func New(
	token string,
	debug bool,
	cfg Config,
	users *userservice.UserService,
	quotaSvc *quota.Service,
	referrals *referral.Service,
	sessions *session.Tracker,
	generator llm.Generator,
) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	api.Debug = debug

	return &Bot{
		api:       api,
		cfg:       cfg,
		users:     users,
		quota:     quotaSvc,
		referrals: referrals,
		sessions:  sessions,
		generator: generator,
	}, nil
}

// Username returns the bot's own Telegram username.
func (b *Bot) Username() string {
	return b.api.Self.UserName
}

// Run starts long polling and blocks until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	// Polling and webhooks are mutually exclusive; clear any leftover webhook.
	if _, err := b.api.Request(tgbotapi.DeleteWebhookConfig{}); err != nil {
		return err
	}

	if err := b.registerCommands(); err != nil {
		logger.Warn().Err(err).Msg("Failed to register bot commands")
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)

	logger.Info().Str("username", b.Username()).Msg("Bot started polling")

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			logger.Info().Msg("Bot stopped polling")
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			go b.handleUpdate(update)
		}
	}
}

func (b *Bot) registerCommands() error {
	commands := tgbotapi.NewSetMyCommands(
		tgbotapi.BotCommand{Command: "start", Description: "Start the bot"},
		tgbotapi.BotCommand{Command: "menu", Description: "Show the main menu"},
		tgbotapi.BotCommand{Command: "language", Description: "Choose your language"},
		tgbotapi.BotCommand{Command: "account", Description: "Your account information"},
		tgbotapi.BotCommand{Command: "referral", Description: "Your referral link"},
	)
	_, err := b.api.Request(commands)
	return err
}

func (b *Bot) handleUpdate(update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error().Interface("panic", r).Msg("Recovered from panic in update handler")
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), updateTimeout)
	defer cancel()

	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil && update.Message.IsCommand():
		b.handleCommand(ctx, update.Message)
	case update.Message != nil && update.Message.Text != "":
		b.handleText(ctx, update.Message)
	}
}
