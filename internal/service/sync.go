package service

import (
	"context"
	"fmt"

	"github.com/avc-dev/shlink-dashboard/internal/model"
	"github.com/avc-dev/shlink-dashboard/internal/shlink"
	"go.uber.org/zap"
)

// SyncPageSize размер страницы при обходе списка Shlink
const SyncPageSize = 100

// SyncResult итог синхронизации пользователя
type SyncResult struct {
	Updated int `json:"updated"`
	Deleted int `json:"deleted"`
	Failed  int `json:"failed"`
}

// SyncService сверяет локальные копии ссылок пользователя с Shlink
type SyncService struct {
	local  LocalShortURLs
	remote RemoteShortURLs
	logger *zap.Logger
}

// NewSyncService создает новый SyncService
func NewSyncService(local LocalShortURLs, remote RemoteShortURLs, logger *zap.Logger) *SyncService {
	return &SyncService{
		local:  local,
		remote: remote,
		logger: logger,
	}
}

// SyncUser обновляет активные ссылки пользователя из Shlink и мягко удаляет пропавшие.
// Удаление происходит только после того, как отдельная проверка кода вернула 404.
func (s *SyncService) SyncUser(ctx context.Context, userID string) (SyncResult, error) {
	var result SyncResult

	codes, err := s.activeCodes(ctx, userID)
	if err != nil {
		return result, err
	}
	if len(codes) == 0 {
		return result, nil
	}

	listing, err := s.remote.ListAllShortURLs(ctx, shlink.ListParams{}, SyncPageSize)
	if err != nil {
		return result, fmt.Errorf("failed to list remote short URLs: %w", err)
	}

	remote := make(map[model.Code]shlink.ShortURL, len(listing))
	for _, u := range listing {
		remote[model.Code(u.ShortCode)] = u
	}

	for _, code := range codes {
		logger := s.logger.With(zap.String("user_id", userID), zap.String("short_code", code.String()))

		if u, ok := remote[code]; ok {
			if err := s.local.ApplyRemote(ctx, code, u.Snapshot()); err != nil {
				logger.Error("failed to update short URL from listing", zap.Error(err))
				result.Failed++
				continue
			}
			result.Updated++
			continue
		}

		found, err := s.remote.GetShortURL(ctx, code.String())
		switch {
		case shlink.IsNotFound(err):
			deleted, err := s.local.SoftDelete(ctx, code)
			if err != nil {
				logger.Error("failed to soft delete short URL", zap.Error(err))
				result.Failed++
				continue
			}
			if deleted {
				logger.Info("short URL is gone from Shlink, soft deleted")
				result.Deleted++
			}
		case err != nil:
			// Любая ошибка кроме 404 считается признаком существования
			logger.Warn("existence check failed, keeping short URL", zap.Error(err))
			result.Failed++
		default:
			if err := s.local.ApplyRemote(ctx, code, found.Snapshot()); err != nil {
				logger.Error("failed to update short URL from existence check", zap.Error(err))
				result.Failed++
				continue
			}
			result.Updated++
		}
	}

	s.logger.Info("sync finished",
		zap.String("user_id", userID),
		zap.Int("updated", result.Updated),
		zap.Int("deleted", result.Deleted),
		zap.Int("failed", result.Failed),
	)

	return result, nil
}

func (s *SyncService) activeCodes(ctx context.Context, userID string) ([]model.Code, error) {
	urls, err := s.local.ActiveByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load local short URLs: %w", err)
	}

	codes := make([]model.Code, len(urls))
	for i, u := range urls {
		codes[i] = u.ShortCode
	}
	return codes, nil
}
