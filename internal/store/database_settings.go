package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/shlink-dashboard/internal/model"
	"github.com/jackc/pgx/v5"
)

const settingColumns = `key_name, value, value_type, category, description, enabled, updated_at`

func scanSetting(row pgx.Row) (model.SystemSetting, error) {
	var (
		s         model.SystemSetting
		valueType string
	)
	err := row.Scan(&s.Key, &s.Value, &valueType, &s.Category, &s.Description, &s.Enabled, &s.UpdatedAt)
	s.Type = model.SettingType(valueType)
	return s, err
}

func (ds *DatabaseStore) GetSetting(ctx context.Context, key string) (model.SystemSetting, error) {
	ctx, cancel := ds.adapter.WithTimeout(ctx)
	defer cancel()

	query := `SELECT ` + settingColumns + ` FROM system_settings WHERE key_name = $1`

	s, err := scanSetting(ds.pool.QueryRow(ctx, query, key))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.SystemSetting{}, fmt.Errorf("setting %s: %w", key, ErrNotFound)
		}
		return model.SystemSetting{}, fmt.Errorf("failed to read setting: %w", err)
	}
	return s, nil
}

func (ds *DatabaseStore) ListSettings(ctx context.Context) ([]model.SystemSetting, error) {
	ctx, cancel := ds.adapter.WithTimeout(ctx)
	defer cancel()

	rows, err := ds.pool.Query(ctx, `SELECT `+settingColumns+` FROM system_settings ORDER BY category, key_name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query settings: %w", err)
	}
	defer rows.Close()

	var settings []model.SystemSetting
	for rows.Next() {
		s, err := scanSetting(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan setting: %w", err)
		}
		settings = append(settings, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating settings: %w", err)
	}
	return settings, nil
}

func (ds *DatabaseStore) UpsertSetting(ctx context.Context, s model.SystemSetting) error {
	ctx, cancel := ds.adapter.WithTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO system_settings (` + settingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (key_name) DO UPDATE
		SET value = EXCLUDED.value, value_type = EXCLUDED.value_type, category = EXCLUDED.category,
			description = EXCLUDED.description, enabled = EXCLUDED.enabled, updated_at = EXCLUDED.updated_at
	`

	_, err := ds.pool.Exec(ctx, query, s.Key, s.Value, string(s.Type), s.Category, s.Description, s.Enabled, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert setting: %w", err)
	}
	return nil
}

func (ds *DatabaseStore) InsertSettingIfMissing(ctx context.Context, s model.SystemSetting) (bool, error) {
	ctx, cancel := ds.adapter.WithTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO system_settings (` + settingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (key_name) DO NOTHING
	`

	tag, err := ds.pool.Exec(ctx, query, s.Key, s.Value, string(s.Type), s.Category, s.Description, s.Enabled, s.UpdatedAt)
	if err != nil {
		return false, fmt.Errorf("failed to insert setting: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
