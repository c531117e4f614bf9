package bot

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"pixigpt-bot/internal/common/logger"
	"pixigpt-bot/internal/features/referral"
	"pixigpt-bot/internal/features/user/models"
	userservice "pixigpt-bot/internal/features/user/service"
	"pixigpt-bot/internal/i18n"
	"pixigpt-bot/internal/session"
)

const (
	callbackChatAI     = "chat_ai"
	callbackLangPrefix = "lang_"
)

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		b.handleStart(ctx, msg)
	case "menu":
		b.handleMenu(ctx, msg)
	case "language":
		b.handleLanguage(ctx, msg)
	case "account":
		b.handleAccount(ctx, msg)
	case "referral":
		b.handleReferral(ctx, msg)
	}
}

func (b *Bot) handleStart(ctx context.Context, msg *tgbotapi.Message) {
	userID := msg.From.ID
	rec, err := b.users.EnsureUser(ctx, userID, displayName(msg.From))
	if err != nil {
		logger.Error().Err(err).Int64("user_id", userID).Msg("Failed to ensure user on /start")
		return
	}
	bundle := i18n.ForLanguage(i18n.Resolve(rec.Language))

	// A deep-link argument carries a referral code.
	if code := strings.TrimSpace(msg.CommandArguments()); code != "" {
		res, err := b.referrals.Attribute(ctx, userID, code)
		if err != nil {
			logger.Error().Err(err).Int64("user_id", userID).Str("code", code).Msg("Referral attribution failed")
		} else {
			logger.Info().
				Int64("user_id", userID).
				Str("code", code).
				Str("outcome", res.Outcome.String()).
				Msg("Referral attribution processed")
			if res.Outcome == referral.Applied {
				b.sendMarkdown(msg.Chat.ID, bundle.ReferralApplied(code, b.cfg.ReferralAward), nil)
			}
		}
	}

	b.sendWelcome(msg.Chat.ID, rec.DisplayName, bundle)
}

func (b *Bot) handleMenu(ctx context.Context, msg *tgbotapi.Message) {
	userID := msg.From.ID
	rec, err := b.users.EnsureUser(ctx, userID, displayName(msg.From))
	if err != nil {
		logger.Error().Err(err).Int64("user_id", userID).Msg("Failed to ensure user on /menu")
		return
	}

	b.sessions.SetMode(userID, session.ModeMenu)
	b.sendMainMenu(msg.Chat.ID, i18n.ForLanguage(i18n.Resolve(rec.Language)))
}

func (b *Bot) handleLanguage(ctx context.Context, msg *tgbotapi.Message) {
	userID := msg.From.ID
	rec, err := b.users.EnsureUser(ctx, userID, displayName(msg.From))
	if err != nil {
		logger.Error().Err(err).Int64("user_id", userID).Msg("Failed to ensure user on /language")
		return
	}
	bundle := i18n.ForLanguage(i18n.Resolve(rec.Language))

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, opt := range i18n.Options() {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(opt.Label, callbackLangPrefix+string(opt.Code)),
		))
	}
	b.send(msg.Chat.ID, bundle.ChooseLanguage(), tgbotapi.NewInlineKeyboardMarkup(rows...))
}

func (b *Bot) handleAccount(ctx context.Context, msg *tgbotapi.Message) {
	userID := msg.From.ID

	view, err := b.users.Account(ctx, userID)
	if err != nil {
		logger.Error().Err(err).Int64("user_id", userID).Msg("Failed to load account view")
		b.send(msg.Chat.ID, i18n.ForLanguage(i18n.Fallback).AccountMissing(), nil)
		return
	}

	bundle := i18n.ForLanguage(view.Language)
	usage := bundle.Usage(view.Used, view.Limit, view.Unlimited)
	b.sendMarkdown(msg.Chat.ID, bundle.AccountInfo(
		view.DisplayName, planLabel(view.PlanTier), usage, view.ReferralPoints, b.cfg.AdminContact,
	), nil)
}

func (b *Bot) handleReferral(ctx context.Context, msg *tgbotapi.Message) {
	userID := msg.From.ID
	rec, err := b.users.EnsureUser(ctx, userID, displayName(msg.From))
	if err != nil {
		logger.Error().Err(err).Int64("user_id", userID).Msg("Failed to ensure user on /referral")
		return
	}

	bundle := i18n.ForLanguage(i18n.Resolve(rec.Language))
	link := userservice.ReferralLink(b.Username(), rec.ReferralCode)
	b.sendMarkdown(msg.Chat.ID, bundle.ReferralInfo(link, rec.ReferralCode, b.cfg.ReferralAward), nil)
}

func (b *Bot) handleCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	if _, err := b.api.Request(tgbotapi.NewCallback(cq.ID, "")); err != nil {
		logger.Warn().Err(err).Msg("Failed to answer callback query")
	}
	if cq.Message == nil {
		return
	}

	userID := cq.From.ID
	chatID := cq.Message.Chat.ID

	switch {
	case strings.HasPrefix(cq.Data, callbackLangPrefix):
		code := strings.TrimPrefix(cq.Data, callbackLangPrefix)
		lang, err := b.users.SetLanguage(ctx, userID, code)
		if err != nil {
			logger.Error().Err(err).Int64("user_id", userID).Msg("Failed to set language")
			return
		}
		bundle := i18n.ForLanguage(lang)
		b.edit(chatID, cq.Message.MessageID, bundle.LanguageSet())
		b.sendMainMenu(chatID, bundle)

	case cq.Data == callbackChatAI:
		rec, err := b.users.EnsureUser(ctx, userID, displayName(cq.From))
		if err != nil {
			logger.Error().Err(err).Int64("user_id", userID).Msg("Failed to ensure user on chat selection")
			return
		}
		b.sessions.SetMode(userID, session.ModeChat)
		b.edit(chatID, cq.Message.MessageID, i18n.ForLanguage(i18n.Resolve(rec.Language)).ChatIntro())
	}
}

// handleText is the free-text path: membership gate, then session routing,
// then the quota/generation pipeline.
func (b *Bot) handleText(ctx context.Context, msg *tgbotapi.Message) {
	userID := msg.From.ID
	rec, err := b.users.EnsureUser(ctx, userID, displayName(msg.From))
	if err != nil {
		logger.Error().Err(err).Int64("user_id", userID).Msg("Failed to ensure user on message")
		return
	}
	bundle := i18n.ForLanguage(i18n.Resolve(rec.Language))

	if !b.isChannelMember(ctx, userID) {
		b.sendWelcome(msg.Chat.ID, rec.DisplayName, bundle)
		return
	}

	if b.sessions.Route(userID) == session.ToMenu {
		b.sendMainMenu(msg.Chat.ID, bundle)
		return
	}

	d, err := b.quota.Consume(ctx, userID)
	if err != nil {
		logger.Error().Err(err).Int64("user_id", userID).Msg("Quota evaluation failed")
		b.send(msg.Chat.ID, bundle.GenerationFailed(), nil)
		return
	}
	if !d.Allowed {
		b.send(msg.Chat.ID, bundle.QuotaExceeded(d.Used, d.Limit), nil)
		return
	}

	b.send(msg.Chat.ID, bundle.Thinking(), nil)

	// Quota was consumed on the attempt above; a failed generation still
	// counts and only substitutes the fallback text.
	reply, err := b.generator.Generate(ctx, msg.Text)
	if err != nil {
		logger.Error().Err(err).Int64("user_id", userID).Msg("Generation failed")
		reply = bundle.GenerationFailed()
	}

	b.send(msg.Chat.ID, reply, nil)
}

func (b *Bot) sendWelcome(chatID int64, name string, bundle *i18n.Bundle) {
	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL(bundle.JoinButton(), b.cfg.ChannelLink),
		),
	)
	b.sendMarkdown(chatID, bundle.Welcome(name, b.cfg.ChannelLink), kb)
}

func (b *Bot) sendMainMenu(chatID int64, bundle *i18n.Bundle) {
	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(bundle.ChatButton(), callbackChatAI),
		),
	)
	b.send(chatID, bundle.MainMenu(), kb)
}

func (b *Bot) send(chatID int64, text string, markup interface{}) {
	msg := tgbotapi.NewMessage(chatID, text)
	if markup != nil {
		msg.ReplyMarkup = markup
	}
	if _, err := b.api.Send(msg); err != nil {
		logger.Error().Err(err).Int64("chat_id", chatID).Msg("Failed to send message")
	}
}

func (b *Bot) sendMarkdown(chatID int64, text string, markup interface{}) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if markup != nil {
		msg.ReplyMarkup = markup
	}
	if _, err := b.api.Send(msg); err != nil {
		logger.Error().Err(err).Int64("chat_id", chatID).Msg("Failed to send message")
	}
}

func (b *Bot) edit(chatID int64, messageID int, text string) {
	if _, err := b.api.Send(tgbotapi.NewEditMessageText(chatID, messageID, text)); err != nil {
		logger.Error().Err(err).Int64("chat_id", chatID).Msg("Failed to edit message")
	}
}

func displayName(u *tgbotapi.User) string {
	if u.FirstName != "" {
		return u.FirstName
	}
	if u.UserName != "" {
		return u.UserName
	}
	return "User"
}

func planLabel(tier models.PlanTier) string {
	s := string(tier)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
