package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/avc-dev/shlink-dashboard/internal/model"
	"github.com/avc-dev/shlink-dashboard/internal/shlink"
	"github.com/avc-dev/shlink-dashboard/internal/store"
	"go.uber.org/zap"
)

// CreateInput поля новой короткой ссылки
type CreateInput struct {
	LongURL      string     `json:"long_url"`
	CustomSlug   string     `json:"custom_slug,omitempty"`
	Title        string     `json:"title,omitempty"`
	Tags         []string   `json:"tags,omitempty"`
	ValidSince   *time.Time `json:"valid_since,omitempty"`
	ValidUntil   *time.Time `json:"valid_until,omitempty"`
	MaxVisits    *int       `json:"max_visits,omitempty"`
	Crawlable    bool       `json:"crawlable"`
	ForwardQuery bool       `json:"forward_query"`
}

// UpdateInput частичное изменение; nil поля не меняются
type UpdateInput struct {
	LongURL      *string    `json:"long_url,omitempty"`
	Title        *string    `json:"title,omitempty"`
	Tags         *[]string  `json:"tags,omitempty"`
	ValidSince   *time.Time `json:"valid_since,omitempty"`
	ValidUntil   *time.Time `json:"valid_until,omitempty"`
	MaxVisits    *int       `json:"max_visits,omitempty"`
	Crawlable    *bool      `json:"crawlable,omitempty"`
	ForwardQuery *bool      `json:"forward_query,omitempty"`
}

func cleanLongURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.Trim(raw, `"'`)

	if raw == "" {
		return "", ErrEmptyURL
	}

	parsedURL, err := url.Parse(raw)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return "", ErrInvalidURL
	}
	return raw, nil
}

// remoteError отделяет отказ Shlink по содержимому запроса от его недоступности
func remoteError(err error) error {
	status := shlink.StatusOf(err)
	if status >= 400 && status < 500 {
		return fmt.Errorf("%w: %w", ErrRemoteRejected, err)
	}
	return fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
}

// owned возвращает ссылку, если она принадлежит пользователю и не удалена
func (u *ShortURLUsecase) owned(ctx context.Context, userID string, code model.Code) (model.ShortURL, error) {
	record, err := u.repo.Get(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return model.ShortURL{}, ErrShortURLNotFound
		}
		return model.ShortURL{}, err
	}
	if record.UserID != userID || record.DeletedAt != nil {
		return model.ShortURL{}, ErrShortURLNotFound
	}
	return record, nil
}

// List возвращает активные ссылки пользователя
func (u *ShortURLUsecase) List(ctx context.Context, userID string) ([]model.ShortURL, error) {
	return u.repo.ActiveByUser(ctx, userID)
}

// Create создает ссылку в Shlink и сохраняет локальную копию за пользователем
func (u *ShortURLUsecase) Create(ctx context.Context, userID string, in CreateInput) (model.ShortURL, error) {
	longURL, err := cleanLongURL(in.LongURL)
	if err != nil {
		return model.ShortURL{}, err
	}

	remote, err := u.shlink.CreateShortURL(ctx, shlink.CreateParams{
		LongURL:      longURL,
		CustomSlug:   strings.TrimSpace(in.CustomSlug),
		Title:        in.Title,
		Tags:         in.Tags,
		ValidSince:   in.ValidSince,
		ValidUntil:   in.ValidUntil,
		MaxVisits:    in.MaxVisits,
		Crawlable:    in.Crawlable,
		ForwardQuery: in.ForwardQuery,
	})
	if err != nil {
		u.logger.Error("failed to create short URL in Shlink",
			zap.String("long_url", longURL),
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return model.ShortURL{}, remoteError(err)
	}

	local := model.ShortURL{
		ShortCode: model.Code(remote.ShortCode),
		UserID:    userID,
		CreatedAt: remote.DateCreated,
	}
	local.Apply(remote.Snapshot(), time.Now())

	created, err := u.repo.Create(ctx, local)
	if err != nil {
		// Без локальной копии ссылка в Shlink недоступна пользователю: откатываем ее
		u.discardRemote(ctx, local.ShortCode, userID)
		if errors.Is(err, store.ErrAlreadyExists) {
			return model.ShortURL{}, ErrCodeConflict
		}
		return model.ShortURL{}, err
	}

	u.invalidate(ctx, userID)
	u.logger.Info("short URL created", zap.String("code", created.ShortCode.String()), zap.String("user_id", userID))
	return created, nil
}

func (u *ShortURLUsecase) discardRemote(ctx context.Context, code model.Code, userID string) {
	if err := u.shlink.DeleteShortURL(ctx, code.String()); err != nil && !shlink.IsNotFound(err) {
		u.logger.Error("failed to roll back short URL in Shlink",
			zap.String("code", code.String()),
			zap.String("user_id", userID),
			zap.Error(err),
		)
	}
}

// Update меняет ссылку в Shlink и перезаписывает локальную копию ответом
func (u *ShortURLUsecase) Update(ctx context.Context, userID string, code model.Code, in UpdateInput) (model.ShortURL, error) {
	if _, err := u.owned(ctx, userID, code); err != nil {
		return model.ShortURL{}, err
	}

	if in.LongURL != nil {
		cleaned, err := cleanLongURL(*in.LongURL)
		if err != nil {
			return model.ShortURL{}, err
		}
		in.LongURL = &cleaned
	}

	remote, err := u.shlink.UpdateShortURL(ctx, code.String(), shlink.UpdateParams{
		LongURL:      in.LongURL,
		Title:        in.Title,
		Tags:         in.Tags,
		ValidSince:   in.ValidSince,
		ValidUntil:   in.ValidUntil,
		MaxVisits:    in.MaxVisits,
		Crawlable:    in.Crawlable,
		ForwardQuery: in.ForwardQuery,
	})
	if err != nil {
		if shlink.IsNotFound(err) {
			u.forget(ctx, userID, code)
			return model.ShortURL{}, ErrShortURLNotFound
		}
		return model.ShortURL{}, remoteError(err)
	}

	if err := u.repo.ApplyRemote(ctx, code, remote.Snapshot()); err != nil {
		return model.ShortURL{}, err
	}

	u.invalidate(ctx, userID)
	return u.repo.Get(ctx, code)
}

// Delete удаляет ссылку в Shlink (отсутствие там не ошибка) и помечает локальную копию удаленной
func (u *ShortURLUsecase) Delete(ctx context.Context, userID string, code model.Code) error {
	if _, err := u.owned(ctx, userID, code); err != nil {
		return err
	}

	if err := u.shlink.DeleteShortURL(ctx, code.String()); err != nil && !shlink.IsNotFound(err) {
		return remoteError(err)
	}

	if _, err := u.repo.SoftDelete(ctx, code); err != nil {
		return err
	}

	u.invalidate(ctx, userID)
	u.logger.Info("short URL deleted", zap.String("code", code.String()), zap.String("user_id", userID))
	return nil
}

// RedirectRules возвращает правила перенаправления ссылки
func (u *ShortURLUsecase) RedirectRules(ctx context.Context, userID string, code model.Code) (*shlink.RedirectRules, error) {
	if _, err := u.owned(ctx, userID, code); err != nil {
		return nil, err
	}

	rules, err := u.shlink.GetRedirectRules(ctx, code.String())
	if err != nil {
		if shlink.IsNotFound(err) {
			return nil, ErrShortURLNotFound
		}
		return nil, remoteError(err)
	}
	return rules, nil
}

// forget помечает удаленной ссылку, которой больше нет в Shlink
func (u *ShortURLUsecase) forget(ctx context.Context, userID string, code model.Code) {
	if _, err := u.repo.SoftDelete(ctx, code); err != nil {
		u.logger.Warn("failed to soft delete short URL missing in Shlink", zap.String("code", code.String()), zap.Error(err))
		return
	}
	u.invalidate(ctx, userID)
}
