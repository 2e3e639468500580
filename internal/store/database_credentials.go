package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/shlink-dashboard/internal/model"
	"github.com/jackc/pgx/v5"
)

const credentialColumns = `id, user_id, external_id, public_key, attestation_type, sign_count,
	nickname, active, created_at, updated_at`

func scanCredential(row pgx.Row) (model.WebauthnCredential, error) {
	var (
		c         model.WebauthnCredential
		signCount int64
	)
	err := row.Scan(&c.ID, &c.UserID, &c.ExternalID, &c.PublicKey, &c.AttestationType, &signCount,
		&c.Nickname, &c.Active, &c.CreatedAt, &c.UpdatedAt)
	c.SignCount = uint32(signCount)
	return c, err
}

func (ds *DatabaseStore) ListCredentials(ctx context.Context, userID string) ([]model.WebauthnCredential, error) {
	ctx, cancel := ds.adapter.WithTimeout(ctx)
	defer cancel()

	query := `SELECT ` + credentialColumns + ` FROM webauthn_credentials WHERE user_id = $1 ORDER BY id`

	rows, err := ds.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query credentials: %w", err)
	}
	defer rows.Close()

	var result []model.WebauthnCredential
	for rows.Next() {
		c, err := scanCredential(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan credential: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating credentials: %w", err)
	}
	return result, nil
}

func (ds *DatabaseStore) GetCredential(ctx context.Context, externalID string) (model.WebauthnCredential, error) {
	ctx, cancel := ds.adapter.WithTimeout(ctx)
	defer cancel()

	query := `SELECT ` + credentialColumns + ` FROM webauthn_credentials WHERE external_id = $1`

	c, err := scanCredential(ds.pool.QueryRow(ctx, query, externalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.WebauthnCredential{}, fmt.Errorf("credential %s: %w", externalID, ErrNotFound)
		}
		return model.WebauthnCredential{}, fmt.Errorf("failed to read credential: %w", err)
	}
	return c, nil
}

func (ds *DatabaseStore) CreateCredential(ctx context.Context, c model.WebauthnCredential) (model.WebauthnCredential, error) {
	ctx, cancel := ds.adapter.WithTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO webauthn_credentials (user_id, external_id, public_key, attestation_type, sign_count,
			nickname, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	err := ds.pool.QueryRow(ctx, query, c.UserID, c.ExternalID, c.PublicKey, c.AttestationType, int64(c.SignCount),
		c.Nickname, c.Active, c.CreatedAt, c.UpdatedAt).Scan(&c.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return model.WebauthnCredential{}, fmt.Errorf("credential %s: %w", c.ExternalID, ErrAlreadyExists)
		}
		return model.WebauthnCredential{}, fmt.Errorf("failed to insert credential: %w", err)
	}
	return c, nil
}

func (ds *DatabaseStore) UpdateCredentialSignCount(ctx context.Context, externalID string, signCount uint32) error {
	ctx, cancel := ds.adapter.WithTimeout(ctx)
	defer cancel()

	query := `UPDATE webauthn_credentials SET sign_count = $2, updated_at = NOW() WHERE external_id = $1`

	tag, err := ds.pool.Exec(ctx, query, externalID, int64(signCount))
	if err != nil {
		return fmt.Errorf("failed to update credential: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("credential %s: %w", externalID, ErrNotFound)
	}
	return nil
}

func (ds *DatabaseStore) SetCredentialActive(ctx context.Context, userID string, id int64, active bool) error {
	ctx, cancel := ds.adapter.WithTimeout(ctx)
	defer cancel()

	query := `UPDATE webauthn_credentials SET active = $3, updated_at = NOW() WHERE id = $1 AND user_id = $2`

	tag, err := ds.pool.Exec(ctx, query, id, userID, active)
	if err != nil {
		return fmt.Errorf("failed to update credential: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("credential %d: %w", id, ErrNotFound)
	}
	return nil
}
