// File: internal/api/create_user_request.go
package api

// swagger:model api.CreateUserRequest
type CreateUserRequest struct {
	Username string `json:"username" validate:"required" example:"ducky"`
	Password string `json:"password" validate:"required" example:"quack_quack"`
}
