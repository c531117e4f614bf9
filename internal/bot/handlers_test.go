package bot

import (
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"

	"pixigpt-bot/internal/features/user/models"
)

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Alice", displayName(&tgbotapi.User{FirstName: "Alice", UserName: "alice_tg"}))
	assert.Equal(t, "alice_tg", displayName(&tgbotapi.User{UserName: "alice_tg"}))
	assert.Equal(t, "User", displayName(&tgbotapi.User{}))
}

func TestPlanLabel(t *testing.T) {
	assert.Equal(t, "Free", planLabel(models.PlanFree))
	assert.Equal(t, "Premium", planLabel(models.PlanPremium))
	assert.Equal(t, "", planLabel(models.PlanTier("")))
}
