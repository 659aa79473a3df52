// File: internal/api/quack_response.go
package api

// swagger:model api.QuackResponse
type QuackResponse struct {
	Status  string `json:"status" example:"success"`
	Message string `json:"message" example:"Quack retrieved successfully"`
	URL     string `json:"url" example:"https://freesound.org/previews/22.mp3"`
}
