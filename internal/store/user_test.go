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

// fakeUserRow 支援兩種 Scan 呼叫場景：
// 1) len(dest)==4 → GetUserByID / GetUserByName
// 2) len(dest)==2 → CreateUser (id, created_at)
type fakeUserRow struct {
	scanErr error
	user    *model.User
}

func (r *fakeUserRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	u := r.user
	switch len(dest) {
	case 4:
		*dest[0].(*int) = u.ID
		*dest[1].(*string) = u.Username
		*dest[2].(*string) = u.PasswordHash
		*dest[3].(*time.Time) = u.CreatedAt
	case 2:
		*dest[0].(*int) = u.ID
		*dest[1].(*time.Time) = u.CreatedAt
	default:
		panic("fakeUserRow.Scan: unexpected dest count")
	}
	return nil
}

/* ---------- 完整測試 ---------- */

func TestUserStore(t *testing.T) {
	now := time.Now().UTC()
	sample := &model.User{
		ID:           7,
		Username:     "ducky",
		PasswordHash: "hash123",
		CreatedAt:    now,
	}

	/* --- GetUserByID --- */
	t.Run("GetUserByID success", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeUserRow{user: sample}
			},
		}
		u, err := GetUserByID(context.Background(), db, 7)
		require.NoError(t, err)
		require.Equal(t, sample.Username, u.Username)
		require.Equal(t, sample.PasswordHash, u.PasswordHash)
	})

	t.Run("GetUserByID not found", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeUserRow{scanErr: pgx.ErrNoRows}
			},
		}
		u, err := GetUserByID(context.Background(), db, 999)
		require.Error(t, err)
		require.ErrorIs(t, err, pgx.ErrNoRows)
		require.Nil(t, u)
	})

	/* --- GetUserByName --- */
	t.Run("GetUserByName success", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeUserRow{user: sample}
			},
		}
		u, err := GetUserByName(context.Background(), db, "ducky")
		require.NoError(t, err)
		require.Equal(t, 7, u.ID)
	})

	t.Run("GetUserByName not found", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeUserRow{scanErr: pgx.ErrNoRows}
			},
		}
		u, err := GetUserByName(context.Background(), db, "nobody")
		require.Error(t, err)
		require.Nil(t, u)
	})

	/* --- CreateUser --- */
	t.Run("CreateUser success", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeUserRow{user: sample}
			},
		}
		u, err := CreateUser(context.Background(), db, &model.User{Username: "ducky", PasswordHash: "hash123"})
		require.NoError(t, err)
		require.Equal(t, 7, u.ID)
		require.Equal(t, now, u.CreatedAt)
	})

	t.Run("CreateUser duplicate", func(t *testing.T) {
		dup := &pgconn.PgError{Code: "23505"}
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeUserRow{scanErr: dup}
			},
		}
		u, err := CreateUser(context.Background(), db, &model.User{Username: "ducky"})
		require.Error(t, err)
		require.Nil(t, u)
		var pgErr *pgconn.PgError
		require.ErrorAs(t, err, &pgErr)
		require.Equal(t, "23505", pgErr.Code)
	})

	/* --- UpdateUserPassword --- */
	t.Run("UpdateUserPassword success", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("UPDATE 1"), nil
			},
		}
		require.NoError(t, UpdateUserPassword(context.Background(), db, 7, "newhash"))
	})

	t.Run("UpdateUserPassword missing user", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("UPDATE 0"), nil
			},
		}
		err := UpdateUserPassword(context.Background(), db, 999, "newhash")
		require.ErrorIs(t, err, pgx.ErrNoRows)
	})

	t.Run("UpdateUserPassword exec error", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.CommandTag{}, errors.New("boom")
			},
		}
		require.Error(t, UpdateUserPassword(context.Background(), db, 7, "newhash"))
	})

	/* --- ResetUsers --- */
	t.Run("ResetUsers success", func(t *testing.T) {
		execs := []string{}
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
				execs = append(execs, sql)
				return pgconn.CommandTag{}, nil
			},
		}
		require.NoError(t, ResetUsers(context.Background(), db))
		require.Len(t, execs, 2)
		require.Contains(t, execs[0], "DROP TABLE")
		require.Contains(t, execs[1], "CREATE TABLE")
	})

	t.Run("ResetUsers drop error", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.CommandTag{}, errors.New("drop")
			},
		}
		require.Error(t, ResetUsers(context.Background(), db))
	})

	t.Run("ResetUsers create error", func(t *testing.T) {
		calls := 0
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				calls++
				if calls == 2 {
					return pgconn.CommandTag{}, errors.New("create")
				}
				return pgconn.CommandTag{}, nil
			},
		}
		require.Error(t, ResetUsers(context.Background(), db))
	})
}
