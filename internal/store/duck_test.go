package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"ducks/internal/database"
	"ducks/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

/* ---------- 假實作 ---------- */

// fakeDuckRow 支援兩種 Scan 呼叫場景：
// 1) len(dest)==4 → GetDuckByID
// 2) len(dest)==3 → CreateDuck (id, is_favorite, created_at)
type fakeDuckRow struct {
	scanErr error
	duck    *model.Duck
}

func (r *fakeDuckRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	d := r.duck
	switch len(dest) {
	case 4:
		*dest[0].(*int) = d.ID
		*dest[1].(*string) = d.URL
		*dest[2].(*bool) = d.IsFavorite
		*dest[3].(*time.Time) = d.CreatedAt
	case 3:
		*dest[0].(*int) = d.ID
		*dest[1].(*bool) = d.IsFavorite
		*dest[2].(*time.Time) = d.CreatedAt
	default:
		panic("fakeDuckRow.Scan: unexpected dest count")
	}
	return nil
}

// fakeDuckRows 實作 pgx.Rows，用於模擬多筆掃描行為。
type fakeDuckRows struct {
	data    []model.Duck
	idx     int
	scanErr error
	err     error
}

func (r *fakeDuckRows) Close()                                       {}
func (r *fakeDuckRows) Err() error                                   { return r.err }
func (r *fakeDuckRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeDuckRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeDuckRows) Next() bool                                   { return r.idx < len(r.data) }
func (r *fakeDuckRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	d := r.data[r.idx]
	r.idx++
	*dest[0].(*int) = d.ID
	*dest[1].(*string) = d.URL
	*dest[2].(*bool) = d.IsFavorite
	*dest[3].(*time.Time) = d.CreatedAt
	return nil
}
func (r *fakeDuckRows) Values() ([]any, error) { return nil, nil }
func (r *fakeDuckRows) RawValues() [][]byte    { return nil }
func (r *fakeDuckRows) Conn() *pgx.Conn        { return nil }

/* ---------- 完整測試 ---------- */

func TestDuckStore(t *testing.T) {
	now := time.Now().UTC()
	sample := &model.Duck{
		ID:         3,
		URL:        "https://random-d.uk/api/42.jpg",
		IsFavorite: false,
		CreatedAt:  now,
	}

	/* --- CreateDuck --- */
	t.Run("CreateDuck success", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeDuckRow{duck: sample}
			},
		}
		d, err := CreateDuck(context.Background(), db, &model.Duck{URL: sample.URL})
		require.NoError(t, err)
		require.Equal(t, 3, d.ID)
		require.False(t, d.IsFavorite)
	})

	t.Run("CreateDuck scan error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeDuckRow{scanErr: errors.New("insert")}
			},
		}
		d, err := CreateDuck(context.Background(), db, &model.Duck{URL: "u"})
		require.Error(t, err)
		require.Nil(t, d)
	})

	/* --- GetDuckByID --- */
	t.Run("GetDuckByID success", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeDuckRow{duck: sample}
			},
		}
		d, err := GetDuckByID(context.Background(), db, 3)
		require.NoError(t, err)
		require.Equal(t, sample.URL, d.URL)
	})

	t.Run("GetDuckByID not found", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeDuckRow{scanErr: pgx.ErrNoRows}
			},
		}
		d, err := GetDuckByID(context.Background(), db, 999)
		require.ErrorIs(t, err, pgx.ErrNoRows)
		require.Nil(t, d)
	})

	/* --- DeleteDuck --- */
	t.Run("DeleteDuck success", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("DELETE 1"), nil
			},
		}
		require.NoError(t, DeleteDuck(context.Background(), db, 3))
	})

	t.Run("DeleteDuck not found", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("DELETE 0"), nil
			},
		}
		require.ErrorIs(t, DeleteDuck(context.Background(), db, 999), pgx.ErrNoRows)
	})

	t.Run("DeleteDuck exec error", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.CommandTag{}, errors.New("boom")
			},
		}
		require.Error(t, DeleteDuck(context.Background(), db, 3))
	})

	/* --- SetDuckFavorite --- */
	t.Run("SetDuckFavorite success", func(t *testing.T) {
		var gotFavorite any
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
				gotFavorite = args[0]
				return pgconn.NewCommandTag("UPDATE 1"), nil
			},
		}
		require.NoError(t, SetDuckFavorite(context.Background(), db, 3, true))
		require.Equal(t, true, gotFavorite)
		require.NoError(t, SetDuckFavorite(context.Background(), db, 3, false))
		require.Equal(t, false, gotFavorite)
	})

	t.Run("SetDuckFavorite not found", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("UPDATE 0"), nil
			},
		}
		require.ErrorIs(t, SetDuckFavorite(context.Background(), db, 999, true), pgx.ErrNoRows)
	})

	/* --- ListFavoriteDucks --- */
	t.Run("ListFavoriteDucks success", func(t *testing.T) {
		favs := []model.Duck{
			{ID: 1, URL: "a", IsFavorite: true, CreatedAt: now},
			{ID: 2, URL: "b", IsFavorite: true, CreatedAt: now},
		}
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return &fakeDuckRows{data: favs}, nil
			},
		}
		got, err := ListFavoriteDucks(context.Background(), db)
		require.NoError(t, err)
		require.Len(t, got, 2)
		require.Equal(t, "a", got[0].URL)
		require.Equal(t, "b", got[1].URL)
	})

	t.Run("ListFavoriteDucks empty", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return &fakeDuckRows{}, nil
			},
		}
		got, err := ListFavoriteDucks(context.Background(), db)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Empty(t, got)
	})

	t.Run("ListFavoriteDucks query error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return nil, errors.New("q")
			},
		}
		_, err := ListFavoriteDucks(context.Background(), db)
		require.Error(t, err)
	})

	t.Run("ListFavoriteDucks scan error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return &fakeDuckRows{data: []model.Duck{{ID: 1}}, scanErr: errors.New("scan")}, nil
			},
		}
		_, err := ListFavoriteDucks(context.Background(), db)
		require.Error(t, err)
	})

	t.Run("ListFavoriteDucks rows error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return &fakeDuckRows{err: errors.New("rows")}, nil
			},
		}
		_, err := ListFavoriteDucks(context.Background(), db)
		require.Error(t, err)
	})

	/* --- ResetDucks --- */
	t.Run("ResetDucks success", func(t *testing.T) {
		execs := []string{}
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
				execs = append(execs, sql)
				return pgconn.CommandTag{}, nil
			},
		}
		require.NoError(t, ResetDucks(context.Background(), db))
		require.Len(t, execs, 2)
		require.Contains(t, execs[0], "DROP TABLE")
		require.Contains(t, execs[1], "CREATE TABLE")
	})

	t.Run("ResetDucks drop error", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.CommandTag{}, errors.New("drop")
			},
		}
		require.Error(t, ResetDucks(context.Background(), db))
	})
}
