// File: internal/api/error_response.go
package api

// ErrorResponse 全域錯誤響應模型
// swagger:model api.ErrorResponse
type ErrorResponse struct {
	Status string `json:"status" example:"error"`
	// message 錯誤描述
	Message string `json:"message"`
}

// NewError 組出帶有 error 狀態的錯誤響應
func NewError(message string) ErrorResponse {
	return ErrorResponse{Status: StatusError, Message: message}
}
