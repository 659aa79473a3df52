// File: internal/api/status_response.go
package api

// swagger:model api.StatusResponse
type StatusResponse struct {
	Status  string `json:"status" example:"success"`
	Message string `json:"message" example:"Quack!"`
}

// NewSuccess 組出帶有 success 狀態的一般響應
func NewSuccess(message string) StatusResponse {
	return StatusResponse{Status: StatusSuccess, Message: message}
}
