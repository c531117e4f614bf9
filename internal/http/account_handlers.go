package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "pixigpt-bot/internal/common/errors"
	"pixigpt-bot/internal/common/middleware"
	userservice "pixigpt-bot/internal/features/user/service"
	httpmw "pixigpt-bot/internal/http/middleware"
)

// AccountResponse is the mini-app account payload.
type AccountResponse struct {
	Success      bool                     `json:"success"`
	Account      *userservice.AccountView `json:"account"`
	ReferralLink string                   `json:"referral_link"`
	AdminContact string                   `json:"admin_contact"`
	Timestamp    time.Time                `json:"timestamp"`
}

// AccountHandler serves the authenticated account view.
type AccountHandler struct {
	users        *userservice.UserService
	botUsername  string
	adminContact string
}

func NewAccountHandler(users *userservice.UserService, botUsername, adminContact string) *AccountHandler {
	return &AccountHandler{
		users:        users,
		botUsername:  botUsername,
		adminContact: adminContact,
	}
}

// GetAccount returns the caller's plan, usage and referral state. The caller
// identity comes from validated init-data, never from request parameters.
func (h *AccountHandler) GetAccount(c *gin.Context) {
	userID, ok := httpmw.UserID(c)
	if !ok {
		middleware.SendError(c, apperrors.NewUnauthorizedError("missing authenticated user"))
		return
	}

	view, err := h.users.Account(c.Request.Context(), userID)
	if err != nil {
		if appErr, ok := apperrors.AsAppError(err); ok {
			middleware.SendError(c, appErr)
			return
		}
		middleware.SendError(c, apperrors.Wrap(err, apperrors.ErrCodeInternal, "Failed to load account"))
		return
	}

	c.JSON(http.StatusOK, AccountResponse{
		Success:      true,
		Account:      view,
		ReferralLink: userservice.ReferralLink(h.botUsername, view.ReferralCode),
		AdminContact: h.adminContact,
		Timestamp:    time.Now().UTC(),
	})
}
