package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"auth-backend/internal/database"
	"auth-backend/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

/* ---------- 假實作 ---------- */

// fakeUserRow 支援兩種 Scan 呼叫場景：
// 1) len(dest)==7 → 完整使用者列
// 2) len(dest)==1 → CreateUser (created_at)
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
	case 7:
		*dest[0].(*string) = u.ID
		*dest[1].(*string) = u.Name
		*dest[2].(*string) = u.Email
		*dest[3].(*string) = u.PasswordHash
		*dest[4].(*bool) = u.IsAdmin
		*dest[5].(**string) = u.RefreshToken
		*dest[6].(*time.Time) = u.CreatedAt
	case 1:
		*dest[0].(*time.Time) = u.CreatedAt
	default:
		panic("fakeUserRow.Scan: unexpected dest count")
	}
	return nil
}

// fakeUserRows 餵給 ListUsers 的假 pgx.Rows
type fakeUserRows struct {
	idx   int
	users []model.User
	err   error
}

func (r *fakeUserRows) Close()                                       {}
func (r *fakeUserRows) Err() error                                   { return r.err }
func (r *fakeUserRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeUserRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeUserRows) Next() bool                                   { r.idx++; return r.idx <= len(r.users) }
func (r *fakeUserRows) Values() ([]any, error)                       { return nil, nil }
func (r *fakeUserRows) RawValues() [][]byte                          { return nil }
func (r *fakeUserRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeUserRows) Scan(dest ...any) error {
	u := r.users[r.idx-1]
	*dest[0].(*string) = u.ID
	*dest[1].(*string) = u.Name
	*dest[2].(*string) = u.Email
	*dest[3].(*bool) = u.IsAdmin
	*dest[4].(*time.Time) = u.CreatedAt
	return nil
}

/* ---------- 完整測試 ---------- */

func sampleUser() *model.User {
	rt := "refresh-token-value"
	return &model.User{
		ID:           "6f1c0f8e-8b3a-4b62-9b65-3de1a9e2f0aa",
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: "hash123",
		IsAdmin:      true,
		RefreshToken: &rt,
		CreatedAt:    time.Now().UTC(),
	}
}

func TestCreateUser(t *testing.T) {
	t.Cleanup(func() { uuidNewString = uuid.NewString })

	t.Run("success assigns uuid", func(t *testing.T) {
		uuidNewString = func() string { return "fixed-id" }
		sample := sampleUser()
		var gotArgs []any
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				gotArgs = args
				return &fakeUserRow{user: sample}
			},
		}
		u := &model.User{Name: "Alice", Email: "alice@example.com", PasswordHash: "hash123"}
		created, err := CreateUser(context.Background(), db, u)
		require.NoError(t, err)
		require.Equal(t, "fixed-id", created.ID)
		require.Equal(t, sample.CreatedAt, created.CreatedAt)
		require.Len(t, gotArgs, 5)
		require.Equal(t, "fixed-id", gotArgs[0])
		require.Equal(t, "alice@example.com", gotArgs[2])
	})

	t.Run("duplicate email", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row {
				return &fakeUserRow{scanErr: &pgconn.PgError{Code: uniqueViolation}}
			},
		}
		_, err := CreateUser(context.Background(), db, &model.User{})
		require.ErrorIs(t, err, ErrDuplicateEmail)
	})
}

func TestGetUser(t *testing.T) {
	sample := sampleUser()

	t.Run("by id success", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row {
				return &fakeUserRow{user: sample}
			},
		}
		u, err := GetUserByID(context.Background(), db, sample.ID)
		require.NoError(t, err)
		require.Equal(t, sample.Email, u.Email)
		require.True(t, u.IsAdmin)
	})

	t.Run("by id not found", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row {
				return &fakeUserRow{scanErr: pgx.ErrNoRows}
			},
		}
		_, err := GetUserByID(context.Background(), db, "missing")
		require.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("by email success", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row {
				return &fakeUserRow{user: sample}
			},
		}
		u, err := GetUserByEmail(context.Background(), db, sample.Email)
		require.NoError(t, err)
		require.Equal(t, sample.ID, u.ID)
	})

	t.Run("by refresh token not found", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row {
				return &fakeUserRow{scanErr: pgx.ErrNoRows}
			},
		}
		_, err := GetUserByRefreshToken(context.Background(), db, "never-issued")
		require.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("by refresh token success", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row {
				return &fakeUserRow{user: sample}
			},
		}
		u, err := GetUserByRefreshToken(context.Background(), db, *sample.RefreshToken)
		require.NoError(t, err)
		require.Equal(t, sample.ID, u.ID)
	})
}

func TestUpdateUserRefreshToken(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var gotArgs []any
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
				gotArgs = args
				return pgconn.NewCommandTag("UPDATE 1"), nil
			},
		}
		require.NoError(t, UpdateUserRefreshToken(context.Background(), db, "uid-1", "new-token"))
		require.Equal(t, []any{"new-token", "uid-1"}, gotArgs)
	})

	t.Run("missing user", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(context.Context, string, ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("UPDATE 0"), nil
			},
		}
		err := UpdateUserRefreshToken(context.Background(), db, "uid-x", "tok")
		require.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("exec error", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(context.Context, string, ...any) (pgconn.CommandTag, error) {
				return pgconn.CommandTag{}, errors.New("boom")
			},
		}
		require.Error(t, UpdateUserRefreshToken(context.Background(), db, "uid-1", "tok"))
	})
}

func TestUpdateUser(t *testing.T) {
	sample := sampleUser()

	t.Run("partial fields pass through", func(t *testing.T) {
		var gotArgs []any
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				gotArgs = args
				return &fakeUserRow{user: sample}
			},
		}
		name := "Bob"
		u, err := UpdateUser(context.Background(), db, sample.ID, UpdateUserParams{Name: &name})
		require.NoError(t, err)
		require.Equal(t, sample.Email, u.Email)
		// 未提供的欄位以 nil 傳入，交由 COALESCE 保留原值
		require.Equal(t, &name, gotArgs[0])
		require.Nil(t, gotArgs[1])
		require.Nil(t, gotArgs[2])
		require.Equal(t, sample.ID, gotArgs[3])
	})

	t.Run("not found", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row {
				return &fakeUserRow{scanErr: pgx.ErrNoRows}
			},
		}
		_, err := UpdateUser(context.Background(), db, "missing", UpdateUserParams{})
		require.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("duplicate email", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(context.Context, string, ...any) pgx.Row {
				return &fakeUserRow{scanErr: &pgconn.PgError{Code: uniqueViolation}}
			},
		}
		_, err := UpdateUser(context.Background(), db, sample.ID, UpdateUserParams{})
		require.ErrorIs(t, err, ErrDuplicateEmail)
	})
}

func TestListUsers(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		newer := model.User{ID: "id-2", Name: "Bob", Email: "bob@example.com", CreatedAt: time.Now()}
		older := model.User{ID: "id-1", Name: "Alice", Email: "alice@example.com", IsAdmin: true, CreatedAt: time.Now().Add(-time.Hour)}
		db := &database.FakeDB{
			QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
				return &fakeUserRows{users: []model.User{newer, older}}, nil
			},
		}
		users, err := ListUsers(context.Background(), db)
		require.NoError(t, err)
		require.Len(t, users, 2)
		require.Equal(t, "id-2", users[0].ID)
		// 安全投影不含密碼哈希與刷新令牌
		require.Empty(t, users[0].PasswordHash)
		require.Nil(t, users[0].RefreshToken)
	})

	t.Run("query error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
				return nil, errors.New("query")
			},
		}
		_, err := ListUsers(context.Background(), db)
		require.Error(t, err)
	})

	t.Run("rows error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
				return &fakeUserRows{err: errors.New("rows")}, nil
			},
		}
		_, err := ListUsers(context.Background(), db)
		require.Error(t, err)
	})
}
