package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/shlink-dashboard/internal/model"
	"github.com/jackc/pgx/v5"
)

const userColumns = `id, email, password_hash, role, provider, provider_uid, otp_secret,
	otp_enabled, failed_attempts, locked_at, created_at, updated_at`

func scanUser(row pgx.Row) (model.User, error) {
	var (
		u    model.User
		role string
	)
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &role, &u.Provider, &u.ProviderUID, &u.OTPSecret,
		&u.OTPEnabled, &u.FailedAttempts, &u.LockedAt, &u.CreatedAt, &u.UpdatedAt)
	u.Role = model.Role(role)
	return u, err
}

func (ds *DatabaseStore) CreateUser(ctx context.Context, u model.User) (model.User, error) {
	ctx, cancel := ds.adapter.WithTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := ds.pool.Exec(ctx, query, u.ID, u.Email, u.PasswordHash, string(u.Role), u.Provider, u.ProviderUID,
		u.OTPSecret, u.OTPEnabled, u.FailedAttempts, u.LockedAt, u.CreatedAt, u.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return model.User{}, fmt.Errorf("user %s: %w", u.Email, ErrAlreadyExists)
		}
		return model.User{}, fmt.Errorf("failed to insert user: %w", err)
	}
	return u, nil
}

func (ds *DatabaseStore) getUserBy(ctx context.Context, where string, args ...any) (model.User, error) {
	ctx, cancel := ds.adapter.WithTimeout(ctx)
	defer cancel()

	query := `SELECT ` + userColumns + ` FROM users WHERE ` + where

	u, err := scanUser(ds.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, fmt.Errorf("user %v: %w", args, ErrNotFound)
		}
		return model.User{}, fmt.Errorf("failed to read user: %w", err)
	}
	return u, nil
}

func (ds *DatabaseStore) GetUser(ctx context.Context, id string) (model.User, error) {
	return ds.getUserBy(ctx, `id = $1`, id)
}

func (ds *DatabaseStore) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	return ds.getUserBy(ctx, `LOWER(email) = LOWER($1)`, email)
}

func (ds *DatabaseStore) GetUserByProvider(ctx context.Context, provider, uid string) (model.User, error) {
	return ds.getUserBy(ctx, `provider = $1 AND provider_uid = $2`, provider, uid)
}

func (ds *DatabaseStore) ListUsers(ctx context.Context) ([]model.User, error) {
	ctx, cancel := ds.adapter.WithTimeout(ctx)
	defer cancel()

	rows, err := ds.pool.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}
	return users, nil
}

func (ds *DatabaseStore) UpdateUser(ctx context.Context, u model.User) error {
	ctx, cancel := ds.adapter.WithTimeout(ctx)
	defer cancel()

	query := `
		UPDATE users
		SET email = $2, password_hash = $3, role = $4, provider = $5, provider_uid = $6,
			otp_secret = $7, otp_enabled = $8, failed_attempts = $9, locked_at = $10, updated_at = $11
		WHERE id = $1
	`

	tag, err := ds.pool.Exec(ctx, query, u.ID, u.Email, u.PasswordHash, string(u.Role), u.Provider, u.ProviderUID,
		u.OTPSecret, u.OTPEnabled, u.FailedAttempts, u.LockedAt, u.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("user %s: %w", u.Email, ErrAlreadyExists)
		}
		return fmt.Errorf("failed to update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", u.ID, ErrNotFound)
	}
	return nil
}

// DeleteUser удаляет пользователя; ссылки и ключи удаляются каскадно
func (ds *DatabaseStore) DeleteUser(ctx context.Context, id string) error {
	ctx, cancel := ds.adapter.WithTimeout(ctx)
	defer cancel()

	tag, err := ds.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	return nil
}
