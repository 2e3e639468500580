package usecase

import (
	"context"

	"github.com/avc-dev/shlink-dashboard/internal/model"
	"github.com/avc-dev/shlink-dashboard/internal/shlink"
	"go.uber.org/zap"
)

//go:generate mockery --name ShlinkClient
//go:generate mockery --name ShortURLRepository
//go:generate mockery --name StatisticsInvalidator

// ShlinkClient операции Shlink REST API, изменяющие ссылки
type ShlinkClient interface {
	CreateShortURL(ctx context.Context, params shlink.CreateParams) (*shlink.ShortURL, error)
	UpdateShortURL(ctx context.Context, code string, params shlink.UpdateParams) (*shlink.ShortURL, error)
	DeleteShortURL(ctx context.Context, code string) error
	GetRedirectRules(ctx context.Context, code string) (*shlink.RedirectRules, error)
}

// ShortURLRepository локальные копии ссылок
type ShortURLRepository interface {
	ActiveByUser(ctx context.Context, userID string) ([]model.ShortURL, error)
	Get(ctx context.Context, code model.Code) (model.ShortURL, error)
	Create(ctx context.Context, u model.ShortURL) (model.ShortURL, error)
	ApplyRemote(ctx context.Context, code model.Code, snapshot model.RemoteSnapshot) error
	SoftDelete(ctx context.Context, code model.Code) (bool, error)
}

// StatisticsInvalidator сбрасывает кэш статистики пользователя после изменений
type StatisticsInvalidator interface {
	Invalidate(ctx context.Context, userID string) error
}

// ShortURLUsecase содержит бизнес-логику управления короткими ссылками
type ShortURLUsecase struct {
	repo   ShortURLRepository
	shlink ShlinkClient
	stats  StatisticsInvalidator
	logger *zap.Logger
}

// NewShortURLUsecase создает новый экземпляр ShortURLUsecase; stats может быть nil
func NewShortURLUsecase(repo ShortURLRepository, client ShlinkClient, stats StatisticsInvalidator, logger *zap.Logger) *ShortURLUsecase {
	return &ShortURLUsecase{
		repo:   repo,
		shlink: client,
		stats:  stats,
		logger: logger,
	}
}

func (u *ShortURLUsecase) invalidate(ctx context.Context, userID string) {
	if u.stats == nil {
		return
	}
	if err := u.stats.Invalidate(ctx, userID); err != nil {
		u.logger.Warn("failed to invalidate statistics cache", zap.String("user_id", userID), zap.Error(err))
	}
}
