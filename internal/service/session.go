// File: internal/service/session.go
package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"ducks/internal/cache"

	"github.com/redis/go-redis/v9"
)

var randRead = rand.Read

// NewSessionID 產生一組登入專屬的隨機識別碼
// 每次登入各自持有一把，彼此登出互不影響
func NewSessionID() (string, error) {
	b := make([]byte, 16)
	if _, err := randRead(b); err != nil {
		return "", fmt.Errorf("NewSessionID: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// sessionKey 組出 Redis 中標記登入狀態的鍵，以使用者與登入識別碼共同定址
func sessionKey(userID int, sessionID string) string {
	return fmt.Sprintf("session:%d:%s", userID, sessionID)
}

// MarkSession 在 Redis 中標記該次登入，ttl 過後自動失效
func MarkSession(ctx context.Context, c cache.Cache, userID int, sessionID, username string, ttl time.Duration) error {
	if err := c.Set(ctx, sessionKey(userID, sessionID), username, ttl).Err(); err != nil {
		return fmt.Errorf("MarkSession: %w", err)
	}
	return nil
}

// ClearSession 無條件清除該次登入的標記，同一使用者的其他登入不受影響
func ClearSession(ctx context.Context, c cache.Cache, userID int, sessionID string) error {
	if err := c.Del(ctx, sessionKey(userID, sessionID)).Err(); err != nil {
		return fmt.Errorf("ClearSession: %w", err)
	}
	return nil
}

// SessionActive 檢查該次登入是否仍有有效的標記
// 令牌本身有效但標記已被登出清除時回傳 false
func SessionActive(ctx context.Context, c cache.Cache, userID int, sessionID string) (bool, error) {
	if err := c.Get(ctx, sessionKey(userID, sessionID)).Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("SessionActive: %w", err)
	}
	return true, nil
}
