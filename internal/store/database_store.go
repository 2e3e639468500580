package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/avc-dev/shlink-dashboard/internal/config/db"
	"github.com/avc-dev/shlink-dashboard/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

// DatabaseStore хранилище в PostgreSQL
type DatabaseStore struct {
	pool    *pgxpool.Pool
	adapter *db.DBAdapter
}

// NewDatabaseStore создает новый DatabaseStore
func NewDatabaseStore(database db.Database) *DatabaseStore {
	adapter, ok := database.(*db.DBAdapter)
	if !ok {
		panic("DatabaseStore requires DBAdapter")
	}

	return &DatabaseStore{
		pool:    adapter.Pool,
		adapter: adapter,
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

const shortURLColumns = `id, short_code, short_url, long_url, title, visit_count, tags,
	valid_since, valid_until, max_visits, crawlable, forward_query, user_id,
	deleted_at, synced_at, created_at, updated_at`

func scanShortURL(row pgx.Row) (model.ShortURL, error) {
	var (
		u    model.ShortURL
		code string
		tags []byte
	)
	err := row.Scan(&u.ID, &code, &u.ShortURL, &u.LongURL, &u.Title, &u.VisitCount, &tags,
		&u.ValidSince, &u.ValidUntil, &u.MaxVisits, &u.Crawlable, &u.ForwardQuery, &u.UserID,
		&u.DeletedAt, &u.SyncedAt, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return model.ShortURL{}, err
	}
	u.ShortCode = model.Code(code)
	if len(tags) > 0 {
		if err := json.Unmarshal(tags, &u.Tags); err != nil {
			return model.ShortURL{}, fmt.Errorf("failed to decode tags: %w", err)
		}
	}
	return u, nil
}

func encodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	raw, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("failed to encode tags: %w", err)
	}
	return string(raw), nil
}

// CreateShortURL сохраняет локальную копию ссылки. Удаленная запись с тем же кодом
// перезаписывается; конфликт с активной записью дает ErrAlreadyExists.
func (ds *DatabaseStore) CreateShortURL(ctx context.Context, u model.ShortURL) (model.ShortURL, error) {
	ctx, cancel := ds.adapter.WithTimeout(ctx)
	defer cancel()

	tags, err := encodeTags(u.Tags)
	if err != nil {
		return model.ShortURL{}, err
	}

	query := `
		INSERT INTO short_urls (short_code, short_url, long_url, title, visit_count, tags,
			valid_since, valid_until, max_visits, crawlable, forward_query, user_id,
			synced_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6::jsonb, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (short_code) DO UPDATE SET
			short_url = EXCLUDED.short_url,
			long_url = EXCLUDED.long_url,
			title = EXCLUDED.title,
			visit_count = EXCLUDED.visit_count,
			tags = EXCLUDED.tags,
			valid_since = EXCLUDED.valid_since,
			valid_until = EXCLUDED.valid_until,
			max_visits = EXCLUDED.max_visits,
			crawlable = EXCLUDED.crawlable,
			forward_query = EXCLUDED.forward_query,
			user_id = EXCLUDED.user_id,
			deleted_at = NULL,
			synced_at = EXCLUDED.synced_at,
			created_at = EXCLUDED.created_at,
			updated_at = EXCLUDED.updated_at
		WHERE short_urls.deleted_at IS NOT NULL
		RETURNING id
	`

	u.DeletedAt = nil
	err = ds.pool.QueryRow(ctx, query, string(u.ShortCode), u.ShortURL, u.LongURL, u.Title, u.VisitCount, tags,
		u.ValidSince, u.ValidUntil, u.MaxVisits, u.Crawlable, u.ForwardQuery, u.UserID,
		u.SyncedAt, u.CreatedAt, u.UpdatedAt).Scan(&u.ID)
	if err != nil {
		// Конфликт с активной записью: DO UPDATE отфильтрован условием WHERE
		if errors.Is(err, pgx.ErrNoRows) || isUniqueViolation(err) {
			return model.ShortURL{}, fmt.Errorf("short code %s: %w", u.ShortCode, ErrAlreadyExists)
		}
		return model.ShortURL{}, fmt.Errorf("failed to insert short URL: %w", err)
	}
	return u, nil
}

// GetShortURL читает ссылку по коду, включая удаленные
func (ds *DatabaseStore) GetShortURL(ctx context.Context, code model.Code) (model.ShortURL, error) {
	ctx, cancel := ds.adapter.WithTimeout(ctx)
	defer cancel()

	query := `SELECT ` + shortURLColumns + ` FROM short_urls WHERE short_code = $1`

	u, err := scanShortURL(ds.pool.QueryRow(ctx, query, string(code)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ShortURL{}, fmt.Errorf("short code %s: %w", code, ErrNotFound)
		}
		return model.ShortURL{}, fmt.Errorf("failed to read short URL: %w", err)
	}
	return u, nil
}

// ListActiveShortURLs возвращает активные ссылки пользователя в порядке создания
func (ds *DatabaseStore) ListActiveShortURLs(ctx context.Context, userID string, now time.Time) ([]model.ShortURL, error) {
	ctx, cancel := ds.adapter.WithTimeout(ctx)
	defer cancel()

	query := `
		SELECT ` + shortURLColumns + `
		FROM short_urls
		WHERE user_id = $1
			AND deleted_at IS NULL
			AND (valid_until IS NULL OR valid_until > $2)
			AND (max_visits IS NULL OR visit_count < max_visits)
		ORDER BY id
	`

	rows, err := ds.pool.Query(ctx, query, userID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to query short URLs: %w", err)
	}
	defer rows.Close()

	var result []model.ShortURL
	for rows.Next() {
		u, err := scanShortURL(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan short URL: %w", err)
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating short URLs: %w", err)
	}
	return result, nil
}

// UpdateShortURL перезаписывает изменяемые поля ссылки
func (ds *DatabaseStore) UpdateShortURL(ctx context.Context, u model.ShortURL) error {
	ctx, cancel := ds.adapter.WithTimeout(ctx)
	defer cancel()

	tags, err := encodeTags(u.Tags)
	if err != nil {
		return err
	}

	query := `
		UPDATE short_urls
		SET short_url = $2, long_url = $3, title = $4, visit_count = $5, tags = $6::jsonb,
			valid_since = $7, valid_until = $8, max_visits = $9, crawlable = $10,
			forward_query = $11, deleted_at = $12, synced_at = $13, updated_at = $14
		WHERE short_code = $1
	`

	tag, err := ds.pool.Exec(ctx, query, string(u.ShortCode), u.ShortURL, u.LongURL, u.Title, u.VisitCount, tags,
		u.ValidSince, u.ValidUntil, u.MaxVisits, u.Crawlable, u.ForwardQuery, u.DeletedAt, u.SyncedAt, u.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update short URL: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("short code %s: %w", u.ShortCode, ErrNotFound)
	}
	return nil
}

// SoftDeleteShortURL помечает ссылку удаленной; повторный вызов возвращает false
func (ds *DatabaseStore) SoftDeleteShortURL(ctx context.Context, code model.Code, at time.Time) (bool, error) {
	ctx, cancel := ds.adapter.WithTimeout(ctx)
	defer cancel()

	query := `
		UPDATE short_urls
		SET deleted_at = $2, updated_at = $2
		WHERE short_code = $1 AND deleted_at IS NULL
	`

	tag, err := ds.pool.Exec(ctx, query, string(code), at)
	if err != nil {
		return false, fmt.Errorf("failed to soft delete short URL: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return true, nil
	}

	// Отличаем отсутствующую запись от уже удаленной
	var exists bool
	err = ds.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM short_urls WHERE short_code = $1)`, string(code)).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check short code existence: %w", err)
	}
	if !exists {
		return false, fmt.Errorf("short code %s: %w", code, ErrNotFound)
	}
	return false, nil
}
