// File: internal/store/duck.go
package store

import (
	"context"
	"fmt"

	"ducks/internal/database"
	"ducks/internal/model"

	"github.com/jackc/pgx/v5"
)

func CreateDuck(ctx context.Context, db database.DB, d *model.Duck) (*model.Duck, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO ducks (url)
		 VALUES ($1)
		 RETURNING id, is_favorite, created_at`,
		d.URL,
	)
	if err := row.Scan(&d.ID, &d.IsFavorite, &d.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateDuck: %w", err)
	}
	return d, nil
}

func GetDuckByID(ctx context.Context, db database.DB, duckID int) (*model.Duck, error) {
	row := db.QueryRow(ctx,
		`SELECT id, url, is_favorite, created_at
		 FROM ducks WHERE id = $1`,
		duckID,
	)
	d := &model.Duck{}
	if err := row.Scan(
		&d.ID,
		&d.URL,
		&d.IsFavorite,
		&d.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("GetDuckByID: %w", err)
	}
	return d, nil
}

func DeleteDuck(ctx context.Context, db database.DB, duckID int) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM ducks WHERE id = $1`,
		duckID,
	)
	if err != nil {
		return fmt.Errorf("DeleteDuck: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteDuck: %w", pgx.ErrNoRows)
	}
	return nil
}

// SetDuckFavorite 設定或清除最愛旗標，重複設定相同值視為成功（冪等）
func SetDuckFavorite(ctx context.Context, db database.DB, duckID int, favorite bool) error {
	tag, err := db.Exec(ctx,
		`UPDATE ducks SET is_favorite = $1
		 WHERE id = $2`,
		favorite,
		duckID,
	)
	if err != nil {
		return fmt.Errorf("SetDuckFavorite: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("SetDuckFavorite: %w", pgx.ErrNoRows)
	}
	return nil
}

// ListFavoriteDucks 依寫入順序回傳所有標記為最愛的鴨子
func ListFavoriteDucks(ctx context.Context, db database.DB) ([]model.Duck, error) {
	rows, err := db.Query(ctx,
		`SELECT id, url, is_favorite, created_at
		 FROM ducks WHERE is_favorite
		 ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListFavoriteDucks: %w", err)
	}
	defer rows.Close()

	ducks := []model.Duck{}
	for rows.Next() {
		var d model.Duck
		if err := rows.Scan(&d.ID, &d.URL, &d.IsFavorite, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("ListFavoriteDucks: %w", err)
		}
		ducks = append(ducks, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListFavoriteDucks: %w", err)
	}
	return ducks, nil
}

// ResetDucks 捨棄並重建 ducks 資料表
func ResetDucks(ctx context.Context, db database.DB) error {
	if _, err := db.Exec(ctx, `DROP TABLE IF EXISTS ducks`); err != nil {
		return fmt.Errorf("ResetDucks: %w", err)
	}
	_, err := db.Exec(ctx,
		`CREATE TABLE ducks (
			id          SERIAL PRIMARY KEY,
			url         TEXT NOT NULL,
			is_favorite BOOLEAN NOT NULL DEFAULT FALSE,
			created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	)
	if err != nil {
		return fmt.Errorf("ResetDucks: %w", err)
	}
	return nil
}
