// File: internal/handler/users/user.go
package users

import (
	"errors"
	"fmt"
	"net/http"

	"ducks/internal/api"
	"ducks/internal/database"
	"ducks/internal/middleware"
	"ducks/internal/model"
	"ducks/internal/service"
	"ducks/internal/store"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
)

// uniqueViolation 是 PostgreSQL unique constraint 違反的錯誤碼
const uniqueViolation = "23505"

var (
	hashPassword       = service.HashPassword
	createUser         = store.CreateUser
	updateUserPassword = store.UpdateUserPassword
	resetUsers         = store.ResetUsers
)

// CreateUserHandler 建立新使用者
// @Summary     Create a new user
// @Description 接收帳號密碼並建立新帳號，username 重複時回傳錯誤
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       body body api.CreateUserRequest true "使用者資料"
// @Success     201 {object} api.StatusResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /create-user [put]
func CreateUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateUserRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.NewError("invalid request payload"))
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.NewError("Username and password are required"))
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.NewError("failed to hash password"))
		}

		_, err = createUser(c.Request().Context(), db, &model.User{
			Username:     req.Username,
			PasswordHash: hash,
		})
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
				return c.JSON(http.StatusBadRequest, api.NewError(fmt.Sprintf("User '%s' already exists", req.Username)))
			}
			return c.JSON(http.StatusInternalServerError, api.NewError("An internal error occurred while creating user"))
		}

		return c.JSON(http.StatusCreated, api.NewSuccess(fmt.Sprintf("User '%s' created successfully", req.Username)))
	}
}

// ChangePasswordHandler 更新當前使用者密碼
// @Summary     Change own password
// @Description 以新密碼覆寫當前使用者的密碼哈希
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       body body api.ChangePasswordRequest true "新密碼"
// @Success     200 {object} api.StatusResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /change-password [post]
func ChangePasswordHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claimsRaw := c.Get(middleware.ContextUserKey)
		claims, ok := claimsRaw.(*service.CustomClaims)
		if !ok || claimsRaw == nil {
			return c.JSON(http.StatusUnauthorized, api.NewError("Authentication required"))
		}

		var req api.ChangePasswordRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.NewError("invalid request payload"))
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.NewError("New password is required"))
		}

		hash, err := hashPassword(req.NewPassword)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.NewError("failed to hash new password"))
		}
		if err := updateUserPassword(c.Request().Context(), db, claims.UserID, hash); err != nil {
			return c.JSON(http.StatusInternalServerError, api.NewError("An internal error occurred while changing password"))
		}

		return c.JSON(http.StatusOK, api.NewSuccess("Password changed successfully"))
	}
}

// ResetUsersHandler 捨棄並重建 users 資料表
// @Summary     Reset users
// @Description 刪除所有使用者資料，僅供測試與重置流程使用
// @Tags        users
// @Produce     json
// @Success     200 {object} api.StatusResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /reset-users [delete]
func ResetUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := resetUsers(c.Request().Context(), db); err != nil {
			return c.JSON(http.StatusInternalServerError, api.NewError("An internal error occurred while deleting users"))
		}
		return c.JSON(http.StatusOK, api.NewSuccess("Users table recreated successfully"))
	}
}
