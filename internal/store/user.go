package store

import (
	"context"
	"errors"
	"fmt"

	"auth-backend/internal/database"
	"auth-backend/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrDuplicateEmail 代表 email 已被註冊
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrUserNotFound 代表使用者不存在
	ErrUserNotFound = errors.New("user not found")
)

// uuidNewString 可在測試中覆寫。
var uuidNewString = uuid.NewString

const uniqueViolation = "23505"

func scanUser(row pgx.Row) (*model.User, error) {
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.IsAdmin,
		&u.RefreshToken,
		&u.CreatedAt,
	); err != nil {
		return nil, err
	}
	return u, nil
}

func mapErr(op string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, ErrUserNotFound)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%s: %w", op, ErrDuplicateEmail)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// CreateUser 建立使用者。PasswordHash 必須已由呼叫端哈希完成，
// 本層不接觸明文密碼。
func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	u.ID = uuidNewString()
	row := db.QueryRow(ctx,
		`INSERT INTO users (id, name, email, password_hash, is_admin)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at`,
		u.ID,
		u.Name,
		u.Email,
		u.PasswordHash,
		u.IsAdmin,
	)
	if err := row.Scan(&u.CreatedAt); err != nil {
		return nil, mapErr("CreateUser", err)
	}
	return u, nil
}

func GetUserByID(ctx context.Context, db database.DB, userID string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT id, name, email, password_hash, is_admin, refresh_token, created_at
		 FROM users WHERE id = $1`,
		userID,
	)
	u, err := scanUser(row)
	if err != nil {
		return nil, mapErr("GetUserByID", err)
	}
	return u, nil
}

func GetUserByEmail(ctx context.Context, db database.DB, email string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT id, name, email, password_hash, is_admin, refresh_token, created_at
		 FROM users WHERE email = $1`,
		email,
	)
	u, err := scanUser(row)
	if err != nil {
		return nil, mapErr("GetUserByEmail", err)
	}
	return u, nil
}

func GetUserByRefreshToken(ctx context.Context, db database.DB, token string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT id, name, email, password_hash, is_admin, refresh_token, created_at
		 FROM users WHERE refresh_token = $1`,
		token,
	)
	u, err := scanUser(row)
	if err != nil {
		return nil, mapErr("GetUserByRefreshToken", err)
	}
	return u, nil
}

// UpdateUserRefreshToken 覆寫使用者的刷新令牌，舊令牌隨即失效。
// 同一使用者併發登入/刷新時為 last-write-wins，僅保留最後一組
// 令牌有效（單一活躍 session 策略）。
func UpdateUserRefreshToken(ctx context.Context, db database.DB, userID, token string) error {
	tag, err := db.Exec(ctx,
		`UPDATE users SET refresh_token = $1 WHERE id = $2`,
		token,
		userID,
	)
	if err != nil {
		return mapErr("UpdateUserRefreshToken", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("UpdateUserRefreshToken: %w", ErrUserNotFound)
	}
	return nil
}

// UpdateUserParams 為部分更新的欄位集合，nil 欄位保留原值。
type UpdateUserParams struct {
	Name    *string
	Email   *string
	IsAdmin *bool
}

// UpdateUser 只覆寫有提供的欄位並回傳更新後的使用者
func UpdateUser(ctx context.Context, db database.DB, userID string, p UpdateUserParams) (*model.User, error) {
	row := db.QueryRow(ctx,
		`UPDATE users
		 SET name = COALESCE($1, name),
		     email = COALESCE($2, email),
		     is_admin = COALESCE($3, is_admin)
		 WHERE id = $4
		 RETURNING id, name, email, password_hash, is_admin, refresh_token, created_at`,
		p.Name,
		p.Email,
		p.IsAdmin,
		userID,
	)
	u, err := scanUser(row)
	if err != nil {
		return nil, mapErr("UpdateUser", err)
	}
	return u, nil
}

// ListUsers 回傳所有使用者（安全投影，不含哈希與刷新令牌），
// 依建立時間由新到舊排序。
func ListUsers(ctx context.Context, db database.DB) ([]model.User, error) {
	rows, err := db.Query(ctx,
		`SELECT id, name, email, is_admin, created_at
		 FROM users ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.IsAdmin, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("ListUsers: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	return users, nil
}
