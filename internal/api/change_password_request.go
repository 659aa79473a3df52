// File: internal/api/change_password_request.go
package api

// swagger:model api.ChangePasswordRequest
type ChangePasswordRequest struct {
	NewPassword string `json:"new_password" validate:"required" example:"new_quack"`
}
