package handler

import (
	"context"
	"net/http"

	"github.com/avc-dev/shlink-dashboard/internal/model"
	"github.com/avc-dev/shlink-dashboard/internal/service"
	"github.com/avc-dev/shlink-dashboard/internal/shlink"
	"github.com/avc-dev/shlink-dashboard/internal/usecase"
	"github.com/go-webauthn/webauthn/protocol"
)

//go:generate mockery --name ShortURLUsecase --output ./mocks
//go:generate mockery --name StatisticsService --output ./mocks
//go:generate mockery --name SyncService --output ./mocks
//go:generate mockery --name AuthService --output ./mocks
//go:generate mockery --name OAuthService --output ./mocks
//go:generate mockery --name WebAuthnService --output ./mocks
//go:generate mockery --name UserAdmin --output ./mocks
//go:generate mockery --name SettingsAdmin --output ./mocks
//go:generate mockery --name Reconfigurer --output ./mocks
//go:generate mockery --name JobQueue --output ./mocks

// ShortURLUsecase управление ссылками пользователя
type ShortURLUsecase interface {
	List(ctx context.Context, userID string) ([]model.ShortURL, error)
	Create(ctx context.Context, userID string, in usecase.CreateInput) (model.ShortURL, error)
	Update(ctx context.Context, userID string, code model.Code, in usecase.UpdateInput) (model.ShortURL, error)
	Delete(ctx context.Context, userID string, code model.Code) error
	RedirectRules(ctx context.Context, userID string, code model.Code) (*shlink.RedirectRules, error)
}

type StatisticsService interface {
	Overall(ctx context.Context, userID, period string) (model.OverallStatistics, error)
	Individual(ctx context.Context, userID string, code model.Code, period string) (model.IndividualStatistics, error)
	Invalidate(ctx context.Context, userID string) error
}

type SyncService interface {
	SyncUser(ctx context.Context, userID string) (service.SyncResult, error)
}

// AuthService вход по паролю, сессии и TOTP
type AuthService interface {
	Register(ctx context.Context, in service.RegisterInput) (model.User, error)
	Login(ctx context.Context, email, password string) (service.LoginResult, error)
	GetUser(ctx context.Context, id string) (model.User, error)
	RequiresSecondFactor(ctx context.Context, user model.User) (bool, error)
	StartSession(w http.ResponseWriter, user model.User) error
	StartPending(w http.ResponseWriter, userID string) error
	Logout(w http.ResponseWriter)
	SetupTOTP(ctx context.Context, userID string) (service.TOTPSetup, error)
	EnableTOTP(ctx context.Context, userID, code string) error
	DisableTOTP(ctx context.Context, userID string) error
	VerifyTOTP(ctx context.Context, pendingUserID, code string) (model.User, error)
}

type OAuthService interface {
	AuthCodeURL(w http.ResponseWriter, provider string) (string, error)
	CheckState(w http.ResponseWriter, r *http.Request) error
	Exchange(ctx context.Context, provider, code string) (model.User, error)
}

type WebAuthnService interface {
	BeginLogin(ctx context.Context, userID string) (*protocol.CredentialAssertion, error)
	FinishLogin(ctx context.Context, userID string, r *http.Request) (model.User, error)
	BeginRegistration(ctx context.Context, userID string) (*protocol.CredentialCreation, error)
	FinishRegistration(ctx context.Context, userID, nickname string, r *http.Request) (model.WebauthnCredential, error)
	ListCredentials(ctx context.Context, userID string) ([]model.WebauthnCredential, error)
	DeactivateCredential(ctx context.Context, userID string, id int64) error
}

type UserAdmin interface {
	List(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, actorID, id string, change usecase.UserChange) (model.User, error)
	Delete(ctx context.Context, actorID, id string) error
}

// SettingsAdmin запись системных настроек; после записи кэш сбрасывается вызывающим
type SettingsAdmin interface {
	List(ctx context.Context) ([]service.SettingGroup, error)
	Apply(ctx context.Context, values map[string]string, enabled map[string]bool) error
	Invalidate(ctx context.Context, keys ...string) error
}

// Reconfigurer применяет настройки к работающему приложению
type Reconfigurer interface {
	Reconfigure(ctx context.Context)
}

type JobQueue interface {
	List(ctx context.Context, status model.JobStatus, limit int) ([]model.Job, error)
	Retry(ctx context.Context, id string) (model.Job, error)
	RetryAll(ctx context.Context) (int, error)
	Discard(ctx context.Context, id string) error
}

// Pinger проверка доступности БД
type Pinger interface {
	Ping(ctx context.Context) error
}
