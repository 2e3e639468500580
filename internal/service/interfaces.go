package service

import (
	"context"
	"time"

	"github.com/avc-dev/shlink-dashboard/internal/model"
	"github.com/avc-dev/shlink-dashboard/internal/shlink"
)

//go:generate mockery --name RemoteShortURLs
//go:generate mockery --name VisitsFetcher
//go:generate mockery --name LocalShortURLs

// RemoteShortURLs часть клиента Shlink, нужная синхронизации
type RemoteShortURLs interface {
	ListAllShortURLs(ctx context.Context, params shlink.ListParams, pageSize int) ([]shlink.ShortURL, error)
	GetShortURL(ctx context.Context, code string) (*shlink.ShortURL, error)
}

// VisitsFetcher получает страницы переходов по ссылке
type VisitsFetcher interface {
	GetVisits(ctx context.Context, code string, params shlink.VisitsParams) (*shlink.VisitList, error)
}

// LocalShortURLs локальные копии ссылок пользователя
type LocalShortURLs interface {
	ActiveByUser(ctx context.Context, userID string) ([]model.ShortURL, error)
	Get(ctx context.Context, code model.Code) (model.ShortURL, error)
	ApplyRemote(ctx context.Context, code model.Code, snapshot model.RemoteSnapshot) error
	SoftDelete(ctx context.Context, code model.Code) (bool, error)
}

// LocationProvider отдает текущий часовой пояс приложения
type LocationProvider interface {
	Location() *time.Location
}

// JobEnqueuer ставит фоновую задачу в очередь
type JobEnqueuer interface {
	Enqueue(ctx context.Context, kind string, payload any) (model.Job, error)
}

// CaptchaVerifier проверяет токен капчи
type CaptchaVerifier interface {
	Verify(ctx context.Context, token, remoteIP string) (bool, error)
}
