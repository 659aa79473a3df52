// File: internal/model/duck.go
package model

import "time"

// Duck 代表一筆指向外部圖片或音訊的鴨子紀錄
type Duck struct {
	ID         int       `db:"id" json:"id"`
	URL        string    `db:"url" json:"url"`
	IsFavorite bool      `db:"is_favorite" json:"is_favorite"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}
