package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pixigpt-bot/internal/common/middleware"
	"pixigpt-bot/internal/features/quota"
	"pixigpt-bot/internal/features/user/repository/memory"
	userservice "pixigpt-bot/internal/features/user/service"
	httpmw "pixigpt-bot/internal/http/middleware"
)

func newTestHandler(t *testing.T) (*AccountHandler, *userservice.UserService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := memory.NewUserRepository()
	quotaSvc := quota.NewService(repo, quota.Limits{FreeDaily: 15})
	users := userservice.NewUserService(repo, quotaSvc)

	return NewAccountHandler(users, "pixigpt_bot", "@admin"), users
}

func performGetAccount(h *AccountHandler, userID int64) *httptest.ResponseRecorder {
	router := gin.New()
	router.Use(middleware.ErrorHandler())
	router.GET("/api/v1/account", func(c *gin.Context) {
		if userID != 0 {
			c.Set(httpmw.UserIDCtxParam, userID)
		}
		h.GetAccount(c)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/account", nil)
	router.ServeHTTP(w, req)
	return w
}

func TestGetAccount(t *testing.T) {
	h, users := newTestHandler(t)

	_, err := users.EnsureUser(context.Background(), 42, "Alice")
	require.NoError(t, err)

	w := performGetAccount(h, 42)
	require.Equal(t, http.StatusOK, w.Code)

	var resp AccountResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Account)
	assert.Equal(t, "Alice", resp.Account.DisplayName)
	assert.Equal(t, int64(15), resp.Account.Limit)
	assert.Equal(t, "https://t.me/pixigpt_bot?start=REF42", resp.ReferralLink)
	assert.Equal(t, "@admin", resp.AdminContact)
}

func TestGetAccountMissingIdentity(t *testing.T) {
	h, _ := newTestHandler(t)

	w := performGetAccount(h, 0)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetAccountUnknownUser(t *testing.T) {
	h, _ := newTestHandler(t)

	w := performGetAccount(h, 404)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
