package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	initdata "github.com/telegram-mini-apps/init-data-golang"

	apperrors "pixigpt-bot/internal/common/errors"
	"pixigpt-bot/internal/common/middleware"
)

// Context keys for Telegram init-data derived fields.
const (
	UserIDCtxParam       = "user_id"
	FirstNameCtxParam    = "first_name"
	UsernameCtxParam     = "username"
	LanguageCodeCtxParam = "language_code"
)

// InitData validates Telegram Mini Apps init-data and stores parsed fields in
// the request context. Init-data is expected in the "X-Telegram-Init-Data"
// header or the "init_data" query parameter.
//
// An empty token fails every request rather than defaulting to insecure.
func InitData(token string, expIn time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" {
			middleware.SendError(c, apperrors.New(apperrors.ErrCodeInternal, "init-data validation is not configured"))
			return
		}

		raw := c.GetHeader("X-Telegram-Init-Data")
		if raw == "" {
			raw = c.Query("init_data")
		}
		if raw == "" {
			middleware.SendError(c, apperrors.NewUnauthorizedError("missing init_data"))
			return
		}

		// expIn==0 disables the TTL check, per the library contract.
		if err := initdata.Validate(raw, token, expIn); err != nil {
			middleware.SendError(c, apperrors.NewUnauthorizedError("invalid init_data"))
			return
		}

		parsed, err := initdata.Parse(raw)
		if err != nil {
			middleware.SendError(c, apperrors.New(apperrors.ErrCodeBadRequest, "invalid init_data format"))
			return
		}
		if parsed.User.ID == 0 {
			middleware.SendError(c, apperrors.NewUnauthorizedError("init_data carries no user"))
			return
		}

		c.Set(UserIDCtxParam, parsed.User.ID)
		c.Set(FirstNameCtxParam, parsed.User.FirstName)
		c.Set(UsernameCtxParam, parsed.User.Username)
		c.Set(LanguageCodeCtxParam, parsed.User.LanguageCode)

		c.Next()
	}
}

// UserID returns the authenticated Telegram user ID from the context.
func UserID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(UserIDCtxParam)
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
