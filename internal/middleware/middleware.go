// File: internal/middleware/middleware.go
package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"ducks/internal/api"
	"ducks/internal/cache"
	"ducks/internal/service"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "user"

// SessionCookieName 登入時寫入的 cookie 名稱
const SessionCookieName = "session"

// extractToken 依序嘗試 Authorization bearer 標頭與 session cookie
func extractToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return "", errors.New("invalid authorization header format")
		}
		return parts[1], nil
	}
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return "", errors.New("missing token")
	}
	return cookie.Value, nil
}

func extractClaims(c echo.Context) (*service.CustomClaims, error) {
	tokenString, err := extractToken(c)
	if err != nil {
		return nil, err
	}
	claims, err := service.VerifyAccessToken(tokenString)
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	return claims, nil
}

// RequireAuth 驗證令牌並確認該次登入的標記仍然有效
// 登出後即使令牌尚未過期也會被拒絕
// 失敗回應一律使用 status/message 錯誤信封
func RequireAuth(rdb cache.Cache) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := extractClaims(c)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, api.NewError("Authentication required"))
			}
			active, err := service.SessionActive(c.Request().Context(), rdb, claims.UserID, claims.SessionID)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, api.NewError("session check failed"))
			}
			if !active {
				return c.JSON(http.StatusUnauthorized, api.NewError("Authentication required"))
			}
			c.Set(ContextUserKey, claims)
			return next(c)
		}
	}
}
