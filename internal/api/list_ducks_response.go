// File: internal/api/list_ducks_response.go
package api

// DuckItem 列表中單筆鴨子資料
type DuckItem struct {
	ID  int    `json:"id" example:"1"`
	URL string `json:"url" example:"https://random-d.uk/api/42.jpg"`
}

// swagger:model api.ListDucksResponse
type ListDucksResponse struct {
	Status string     `json:"status" example:"success"`
	Ducks  []DuckItem `json:"ducks"`
}
