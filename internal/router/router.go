// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"ducks/internal/cache"
	"ducks/internal/database"
	"ducks/internal/duckapi"
	"ducks/internal/handler"
	"ducks/internal/handler/auth"
	"ducks/internal/handler/ducks"
	"ducks/internal/handler/users"
	"ducks/internal/middleware"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, upstream duckapi.API) {
	api := e.Group("/api")
	requireAuth := middleware.RequireAuth(rdb)

	// 健康檢查
	api.GET("/health", handler.HealthHandler(db, rdb))

	// 帳號管理
	api.PUT("/create-user", users.CreateUserHandler(db))
	api.POST("/login", auth.LoginHandler(db, rdb))
	api.POST("/logout", auth.LogoutHandler(rdb), requireAuth)
	api.POST("/change-password", users.ChangePasswordHandler(db), requireAuth)
	api.DELETE("/reset-users", users.ResetUsersHandler(db))

	// 鴨子（需登入）
	api.GET("/get-duck", ducks.GetDuckHandler(db, upstream), requireAuth)
	api.GET("/get-duck-by-id/:duck_id", ducks.GetDuckByIDHandler(db), requireAuth)
	api.DELETE("/delete-duck/:duck_id", ducks.DeleteDuckHandler(db), requireAuth)
	api.GET("/quack", ducks.QuackHandler(upstream), requireAuth)
	api.DELETE("/reset-ducks", ducks.ResetDucksHandler(db))

	// 最愛（需登入）
	api.GET("/list-ducks", ducks.ListDucksHandler(db), requireAuth)
	api.POST("/favorite-duck", ducks.FavoriteDuckHandler(db), requireAuth)
	api.POST("/unfavorite-duck", ducks.UnfavoriteDuckHandler(db), requireAuth)
}
