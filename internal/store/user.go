package store

import (
	"context"
	"errors"
	"fmt"

	"fashion-store/internal/database"
	"fashion-store/internal/model"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// psql 產生 $1 風格 placeholder 的查詢
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ErrEmailTaken 代表 email 已被註冊（unique_violation）。
var ErrEmailTaken = errors.New("email already registered")

const userColumns = "id, email, password_hash, name, level, status, created_at"

func scanUser(row interface{ Scan(dest ...any) error }) (*model.User, error) {
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.Name,
		&u.Level,
		&u.Status,
		&u.CreatedAt,
	); err != nil {
		return nil, err
	}
	return u, nil
}

func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	sql, args, err := psql.Insert("users").
		Columns("email", "password_hash", "name", "level", "status").
		Values(u.Email, u.PasswordHash, u.Name, u.Level, u.Status).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("CreateUser: %w", err)
	}

	if err := db.QueryRow(ctx, sql, args...).Scan(&u.ID, &u.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	return u, nil
}

// GetActiveUserByEmail 只回傳 status=1 的使用者，登入流程使用。
func GetActiveUserByEmail(ctx context.Context, db database.DB, email string) (*model.User, error) {
	sql, args, err := psql.Select(userColumns).
		From("users").
		Where(sq.Eq{"email": email, "status": model.UserStatusActive}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("GetActiveUserByEmail: %w", err)
	}

	u, err := scanUser(db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, fmt.Errorf("GetActiveUserByEmail: %w", err)
	}
	return u, nil
}

// GetUserByIDAndEmail 依令牌 claims 的 user_id 與 email 查詢身分。
func GetUserByIDAndEmail(ctx context.Context, db database.DB, userID int, email string) (*model.User, error) {
	sql, args, err := psql.Select(userColumns).
		From("users").
		Where(sq.Eq{"id": userID, "email": email}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("GetUserByIDAndEmail: %w", err)
	}

	u, err := scanUser(db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, fmt.Errorf("GetUserByIDAndEmail: %w", err)
	}
	return u, nil
}

func ListUsers(ctx context.Context, db database.DB) ([]model.User, error) {
	sql, args, err := psql.Select(userColumns).
		From("users").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("ListUsers: %w", err)
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	return users, nil
}
