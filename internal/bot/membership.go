package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"pixigpt-bot/internal/common/logger"
)

// isChannelMember checks whether the user has joined the required channel.
// The check is fail-closed: an API error or unknown status is treated the same
// as not being a member.
func (b *Bot) isChannelMember(ctx context.Context, userID int64) bool {
	member, err := b.api.GetChatMember(tgbotapi.GetChatMemberConfig{
		ChatConfigWithUser: tgbotapi.ChatConfigWithUser{
			ChatID: b.cfg.ChannelID,
			UserID: userID,
		},
	})
	if err != nil {
		logger.Warn().Err(err).Int64("user_id", userID).Msg("Channel membership check failed")
		return false
	}

	switch member.Status {
	case "creator", "administrator", "member":
		return true
	default:
		return false
	}
}
