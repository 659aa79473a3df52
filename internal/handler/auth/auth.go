// File: internal/handler/auth/auth.go
package auth

import (
	"fmt"
	"net/http"
	"time"

	"ducks/internal/api"
	"ducks/internal/cache"
	"ducks/internal/database"
	"ducks/internal/middleware"
	"ducks/internal/service"
	"ducks/internal/store"

	"github.com/labstack/echo/v4"
)

// sessionTTL 同時是 JWT 到期時間與 Redis 登入標記的存活時間
const sessionTTL = 24 * time.Hour

var (
	getUserByName    = store.GetUserByName
	authenticateUser = service.AuthenticateUser
	newSessionID     = service.NewSessionID
	issueAccessToken = service.IssueAccessToken
	markSession      = service.MarkSession
	clearSession     = service.ClearSession
)

// LoginHandler 使用 Username/Password 驗證並標記登入狀態
// @Summary     登入使用者
// @Description 驗證帳號密碼，發行存取令牌並寫入 session cookie
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body api.LoginRequest true "登入資料"
// @Success     200 {object} api.StatusResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /login [post]
func LoginHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.NewError("invalid request payload"))
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.NewError("Username and password are required"))
		}

		ctx := c.Request().Context()

		// 撈使用者資料；查無此人與密碼錯誤回應相同訊息
		user, err := getUserByName(ctx, db, req.Username)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, api.NewError("Invalid username or password"))
		}
		if err := authenticateUser(ctx, *user, req.Password); err != nil {
			return c.JSON(http.StatusUnauthorized, api.NewError("Invalid username or password"))
		}

		// 每次登入發一組獨立的識別碼，登出僅作用於該次登入
		sid, err := newSessionID()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.NewError("failed to create session"))
		}
		token, err := issueAccessToken(*user, sid, sessionTTL)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.NewError("failed to issue token"))
		}
		if err := markSession(ctx, rdb, user.ID, sid, user.Username, sessionTTL); err != nil {
			return c.JSON(http.StatusInternalServerError, api.NewError("failed to mark session"))
		}

		c.SetCookie(&http.Cookie{
			Name:     middleware.SessionCookieName,
			Value:    token,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
			Expires:  time.Now().Add(sessionTTL),
		})
		return c.JSON(http.StatusOK, api.NewSuccess(fmt.Sprintf("User '%s' logged in successfully", user.Username)))
	}
}

// LogoutHandler 清除登入狀態
// @Summary     登出使用者
// @Description 無條件清除 Redis 登入標記並使 session cookie 失效
// @Tags        auth
// @Produce     json
// @Success     200 {object} api.StatusResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /logout [post]
func LogoutHandler(rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		claimsRaw := c.Get(middleware.ContextUserKey)
		claims, ok := claimsRaw.(*service.CustomClaims)
		if !ok || claimsRaw == nil {
			return c.JSON(http.StatusUnauthorized, api.NewError("Authentication required"))
		}

		if err := clearSession(c.Request().Context(), rdb, claims.UserID, claims.SessionID); err != nil {
			return c.JSON(http.StatusInternalServerError, api.NewError("failed to clear session"))
		}

		c.SetCookie(&http.Cookie{
			Name:     middleware.SessionCookieName,
			Value:    "",
			Path:     "/",
			HttpOnly: true,
			MaxAge:   -1,
		})
		return c.JSON(http.StatusOK, api.NewSuccess("User logged out successfully"))
	}
}
