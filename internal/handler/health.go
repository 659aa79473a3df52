// File: internal/handler/health.go
package handler

import (
	"net/http"
	"time"

	"ducks/internal/api"
	"ducks/internal/cache"
	"ducks/internal/database"

	"github.com/labstack/echo/v4"
)

// HealthHandler 健康檢查
// @Summary     Health Check
// @Description 回傳 Quack!，並檢查資料庫與 session 儲存連線是否正常
// @Tags        health
// @Produce     json
// @Success     200 {object} api.StatusResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /health [get]
func HealthHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if err := db.Ping(ctx); err != nil {
			return c.JSON(http.StatusInternalServerError, api.NewError("database unhealthy"))
		}
		if err := rdb.Set(ctx, "healthcheck", time.Now().Unix(), time.Minute).Err(); err != nil {
			return c.JSON(http.StatusInternalServerError, api.NewError("session store unhealthy"))
		}
		return c.JSON(http.StatusOK, api.NewSuccess("Quack!"))
	}
}
