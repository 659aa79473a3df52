// File: internal/api/status.go
package api

// 所有回應皆帶有 status 欄位，值為 success 或 error
const (
	StatusSuccess = "success"
	StatusError   = "error"
)
