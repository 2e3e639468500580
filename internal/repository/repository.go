package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/avc-dev/shlink-dashboard/internal/model"
)

// ShortURLStore хранилище локальных копий коротких ссылок
type ShortURLStore interface {
	CreateShortURL(ctx context.Context, u model.ShortURL) (model.ShortURL, error)
	GetShortURL(ctx context.Context, code model.Code) (model.ShortURL, error)
	ListActiveShortURLs(ctx context.Context, userID string, now time.Time) ([]model.ShortURL, error)
	UpdateShortURL(ctx context.Context, u model.ShortURL) error
	// SoftDeleteShortURL помечает запись удаленной; false если она уже была удалена
	SoftDeleteShortURL(ctx context.Context, code model.Code, at time.Time) (bool, error)
}

// UserStore хранилище пользователей
type UserStore interface {
	CreateUser(ctx context.Context, u model.User) (model.User, error)
	GetUser(ctx context.Context, id string) (model.User, error)
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
	GetUserByProvider(ctx context.Context, provider, uid string) (model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, u model.User) error
	DeleteUser(ctx context.Context, id string) error
}

// SettingStore хранилище системных настроек
type SettingStore interface {
	GetSetting(ctx context.Context, key string) (model.SystemSetting, error)
	ListSettings(ctx context.Context) ([]model.SystemSetting, error)
	UpsertSetting(ctx context.Context, s model.SystemSetting) error
	// InsertSettingIfMissing не перезаписывает существующее значение
	InsertSettingIfMissing(ctx context.Context, s model.SystemSetting) (bool, error)
}

// CredentialStore хранилище ключей WebAuthn
type CredentialStore interface {
	ListCredentials(ctx context.Context, userID string) ([]model.WebauthnCredential, error)
	GetCredential(ctx context.Context, externalID string) (model.WebauthnCredential, error)
	CreateCredential(ctx context.Context, c model.WebauthnCredential) (model.WebauthnCredential, error)
	UpdateCredentialSignCount(ctx context.Context, externalID string, signCount uint32) error
	SetCredentialActive(ctx context.Context, userID string, id int64, active bool) error
}

// JobStore хранилище фоновых задач
type JobStore interface {
	CreateJob(ctx context.Context, j model.Job) error
	GetJob(ctx context.Context, id string) (model.Job, error)
	ListJobs(ctx context.Context, status model.JobStatus, limit int) ([]model.Job, error)
	UpdateJob(ctx context.Context, j model.Job) error
	DeleteJob(ctx context.Context, id string) error
}

// Repository оборачивает хранилище ссылок и добавляет контекст к ошибкам
type Repository struct {
	underlying ShortURLStore
	now        func() time.Time
}

func New(underlying ShortURLStore) *Repository {
	return &Repository{underlying: underlying, now: time.Now}
}

// ActiveByUser возвращает активные ссылки пользователя
func (r *Repository) ActiveByUser(ctx context.Context, userID string) ([]model.ShortURL, error) {
	urls, err := r.underlying.ListActiveShortURLs(ctx, userID, r.now())
	if err != nil {
		return nil, fmt.Errorf("failed to list active short URLs: %w", err)
	}
	return urls, nil
}

// Get возвращает ссылку по коду
func (r *Repository) Get(ctx context.Context, code model.Code) (model.ShortURL, error) {
	u, err := r.underlying.GetShortURL(ctx, code)
	if err != nil {
		return model.ShortURL{}, fmt.Errorf("failed to get short URL %s: %w", code, err)
	}
	return u, nil
}

// Create сохраняет новую ссылку
func (r *Repository) Create(ctx context.Context, u model.ShortURL) (model.ShortURL, error) {
	now := r.now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	u.UpdatedAt = now

	created, err := r.underlying.CreateShortURL(ctx, u)
	if err != nil {
		return model.ShortURL{}, fmt.Errorf("failed to create short URL %s: %w", u.ShortCode, err)
	}
	return created, nil
}

// ApplyRemote переносит данные из Shlink в локальную запись
func (r *Repository) ApplyRemote(ctx context.Context, code model.Code, snapshot model.RemoteSnapshot) error {
	u, err := r.underlying.GetShortURL(ctx, code)
	if err != nil {
		return fmt.Errorf("failed to load short URL %s: %w", code, err)
	}

	u.Apply(snapshot, r.now())

	if err := r.underlying.UpdateShortURL(ctx, u); err != nil {
		return fmt.Errorf("failed to update short URL %s: %w", code, err)
	}
	return nil
}

// SoftDelete помечает ссылку удаленной
func (r *Repository) SoftDelete(ctx context.Context, code model.Code) (bool, error) {
	deleted, err := r.underlying.SoftDeleteShortURL(ctx, code, r.now())
	if err != nil {
		return false, fmt.Errorf("failed to soft delete short URL %s: %w", code, err)
	}
	return deleted, nil
}
