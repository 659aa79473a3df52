// File: internal/api/duck_response.go
package api

// swagger:model api.DuckResponse
type DuckResponse struct {
	Status string `json:"status" example:"success"`
	ID     int    `json:"id" example:"1"`
	URL    string `json:"url" example:"https://random-d.uk/api/42.jpg"`
	// get-duck 帶有說明訊息，get-duck-by-id 則省略
	Message string `json:"message,omitempty"`
}
