// File: internal/api/favorite_request.go
package api

// FavoriteRequest 供 favorite-duck 與 unfavorite-duck 共用
// swagger:model api.FavoriteRequest
type FavoriteRequest struct {
	ID int `json:"id" validate:"required,min=1" example:"1"`
}
