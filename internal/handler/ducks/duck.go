// File: internal/handler/ducks/duck.go
package ducks

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"ducks/internal/api"
	"ducks/internal/database"
	"ducks/internal/duckapi"
	"ducks/internal/model"
	"ducks/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

var (
	createDuck        = store.CreateDuck
	getDuckByID       = store.GetDuckByID
	deleteDuck        = store.DeleteDuck
	setDuckFavorite   = store.SetDuckFavorite
	listFavoriteDucks = store.ListFavoriteDucks
	resetDucks        = store.ResetDucks
)

// GetDuckHandler 取得一張隨機鴨子圖片並存入資料庫
// @Summary     Get a random duck
// @Description 呼叫 random-d.uk 取得隨機圖片 URL，建立一筆新的鴨子紀錄
// @Tags        ducks
// @Produce     json
// @Success     201 {object} api.DuckResponse
// @Failure     502 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /get-duck [get]
func GetDuckHandler(db database.DB, upstream duckapi.API) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		url, err := upstream.RandomDuck(ctx)
		if err != nil {
			return c.JSON(http.StatusBadGateway, api.NewError("Failed to fetch duck from upstream"))
		}

		duck, err := createDuck(ctx, db, &model.Duck{URL: url})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.NewError("An internal error occurred while getting the duck"))
		}

		return c.JSON(http.StatusCreated, api.DuckResponse{
			Status:  api.StatusSuccess,
			ID:      duck.ID,
			URL:     duck.URL,
			Message: fmt.Sprintf("Duck '%s' added successfully", duck.URL),
		})
	}
}

// GetDuckByIDHandler 以 ID 查詢單隻鴨子
// @Summary     Get a duck by ID
// @Description 透過 ID 查詢並回傳鴨子的圖片 URL
// @Tags        ducks
// @Produce     json
// @Param       duck_id path int true "鴨子 ID"
// @Success     200 {object} api.DuckResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /get-duck-by-id/{duck_id} [get]
func GetDuckByIDHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("duck_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.NewError("invalid duck ID"))
		}

		duck, err := getDuckByID(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, api.NewError(fmt.Sprintf("Duck with ID %d not found", id)))
			}
			return c.JSON(http.StatusInternalServerError, api.NewError("An internal error occurred while retrieving the duck"))
		}

		return c.JSON(http.StatusOK, api.DuckResponse{
			Status: api.StatusSuccess,
			ID:     duck.ID,
			URL:    duck.URL,
		})
	}
}

// DeleteDuckHandler 以 ID 刪除鴨子
// @Summary     Delete a duck by ID
// @Description 刪除指定 ID 的鴨子紀錄
// @Tags        ducks
// @Produce     json
// @Param       duck_id path int true "鴨子 ID"
// @Success     200 {object} api.StatusResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /delete-duck/{duck_id} [delete]
func DeleteDuckHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("duck_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.NewError("invalid duck ID"))
		}

		if err := deleteDuck(c.Request().Context(), db, id); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, api.NewError(fmt.Sprintf("Duck with ID %d not found", id)))
			}
			return c.JSON(http.StatusInternalServerError, api.NewError("An internal error occurred while deleting the duck"))
		}

		return c.JSON(http.StatusOK, api.NewSuccess(fmt.Sprintf("Duck with ID %d deleted successfully", id)))
	}
}

// QuackHandler 取得一段隨機鴨叫聲，不寫入任何狀態
// @Summary     Get a random quack
// @Description 呼叫 Freesound 取得隨機鴨叫聲的試聽 URL
// @Tags        ducks
// @Produce     json
// @Success     200 {object} api.QuackResponse
// @Failure     502 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /quack [get]
func QuackHandler(upstream duckapi.API) echo.HandlerFunc {
	return func(c echo.Context) error {
		url, err := upstream.RandomQuack(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusBadGateway, api.NewError("Failed to fetch quack from upstream"))
		}
		return c.JSON(http.StatusOK, api.QuackResponse{
			Status:  api.StatusSuccess,
			Message: "Quack retrieved successfully",
			URL:     url,
		})
	}
}

// ListDucksHandler 依寫入順序回傳所有最愛鴨子
// @Summary     List favorite ducks
// @Description 回傳所有標記為最愛的鴨子
// @Tags        favorites
// @Produce     json
// @Success     200 {object} api.ListDucksResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /list-ducks [get]
func ListDucksHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ducks, err := listFavoriteDucks(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.NewError("An internal error occurred while listing ducks"))
		}

		items := make([]api.DuckItem, 0, len(ducks))
		for _, d := range ducks {
			items = append(items, api.DuckItem{ID: d.ID, URL: d.URL})
		}
		return c.JSON(http.StatusOK, api.ListDucksResponse{
			Status: api.StatusSuccess,
			Ducks:  items,
		})
	}
}

// favoriteHandler 共用 favorite/unfavorite 邏輯，兩者皆冪等
func favoriteHandler(db database.DB, favorite bool, verb string) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.FavoriteRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.NewError("invalid request payload"))
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.NewError("Duck ID is required"))
		}

		if err := setDuckFavorite(c.Request().Context(), db, req.ID, favorite); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, api.NewError(fmt.Sprintf("Duck with ID %d not found", req.ID)))
			}
			return c.JSON(http.StatusInternalServerError, api.NewError("An internal error occurred while updating the duck"))
		}

		return c.JSON(http.StatusOK, api.NewSuccess(fmt.Sprintf("Duck with ID %d %s successfully", req.ID, verb)))
	}
}

// FavoriteDuckHandler 將鴨子標記為最愛
// @Summary     Favorite a duck
// @Description 設定指定鴨子的最愛旗標，重複呼叫結果相同
// @Tags        favorites
// @Accept      json
// @Produce     json
// @Param       body body api.FavoriteRequest true "鴨子 ID"
// @Success     200 {object} api.StatusResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /favorite-duck [post]
func FavoriteDuckHandler(db database.DB) echo.HandlerFunc {
	return favoriteHandler(db, true, "favorited")
}

// UnfavoriteDuckHandler 取消鴨子的最愛標記
// @Summary     Unfavorite a duck
// @Description 清除指定鴨子的最愛旗標，重複呼叫結果相同
// @Tags        favorites
// @Accept      json
// @Produce     json
// @Param       body body api.FavoriteRequest true "鴨子 ID"
// @Success     200 {object} api.StatusResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /unfavorite-duck [post]
func UnfavoriteDuckHandler(db database.DB) echo.HandlerFunc {
	return favoriteHandler(db, false, "unfavorited")
}

// ResetDucksHandler 捨棄並重建 ducks 資料表
// @Summary     Reset ducks
// @Description 刪除所有鴨子資料，僅供測試與重置流程使用
// @Tags        ducks
// @Produce     json
// @Success     200 {object} api.StatusResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /reset-ducks [delete]
func ResetDucksHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := resetDucks(c.Request().Context(), db); err != nil {
			return c.JSON(http.StatusInternalServerError, api.NewError("An internal error occurred while deleting ducks"))
		}
		return c.JSON(http.StatusOK, api.NewSuccess("Ducks table recreated successfully"))
	}
}
