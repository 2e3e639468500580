package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/avc-dev/shlink-dashboard/internal/cache"
	"github.com/avc-dev/shlink-dashboard/internal/model"
	"github.com/avc-dev/shlink-dashboard/internal/repository"
	"github.com/avc-dev/shlink-dashboard/internal/store"
	"github.com/go-webauthn/webauthn/protocol"
	"github.com/go-webauthn/webauthn/webauthn"
	"go.uber.org/zap"
)

const webauthnSessionTTL = 5 * time.Minute

// WebAuthnConfig параметры relying party
type WebAuthnConfig struct {
	RPID          string
	RPDisplayName string
	RPOrigins     []string
}

// webauthnUser адаптер пользователя к интерфейсу webauthn.User
type webauthnUser struct {
	user        model.User
	credentials []model.WebauthnCredential
}

func (u webauthnUser) WebAuthnID() []byte {
	return []byte(u.user.ID)
}

func (u webauthnUser) WebAuthnName() string {
	return u.user.Email
}

func (u webauthnUser) WebAuthnDisplayName() string {
	return u.user.Email
}

func (u webauthnUser) WebAuthnIcon() string {
	return ""
}

// WebAuthnCredentials возвращает только активные ключи
func (u webauthnUser) WebAuthnCredentials() []webauthn.Credential {
	var result []webauthn.Credential
	for _, c := range u.credentials {
		if !c.Active {
			continue
		}
		id, err := base64.RawURLEncoding.DecodeString(c.ExternalID)
		if err != nil {
			continue
		}
		result = append(result, webauthn.Credential{
			ID:              id,
			PublicKey:       c.PublicKey,
			AttestationType: c.AttestationType,
			Authenticator:   webauthn.Authenticator{SignCount: c.SignCount},
		})
	}
	return result
}

// WebAuthnService регистрация аппаратных ключей и вход по ним
type WebAuthnService struct {
	wa          *webauthn.WebAuthn
	users       repository.UserStore
	credentials repository.CredentialStore
	sessions    cache.Cache
	logger      *zap.Logger
	now         func() time.Time
}

// NewWebAuthnService создает новый WebAuthnService
func NewWebAuthnService(
	cfg WebAuthnConfig,
	users repository.UserStore,
	credentials repository.CredentialStore,
	sessions cache.Cache,
	logger *zap.Logger,
) (*WebAuthnService, error) {
	wa, err := webauthn.New(&webauthn.Config{
		RPDisplayName: cfg.RPDisplayName,
		RPID:          cfg.RPID,
		RPOrigins:     cfg.RPOrigins,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to configure webauthn: %w", err)
	}

	return &WebAuthnService{
		wa:          wa,
		users:       users,
		credentials: credentials,
		sessions:    sessions,
		logger:      logger,
		now:         time.Now,
	}, nil
}

func (s *WebAuthnService) loadUser(ctx context.Context, userID string) (webauthnUser, error) {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return webauthnUser{}, ErrUserNotFound
		}
		return webauthnUser{}, fmt.Errorf("failed to load user: %w", err)
	}
	creds, err := s.credentials.ListCredentials(ctx, userID)
	if err != nil {
		return webauthnUser{}, fmt.Errorf("failed to list credentials: %w", err)
	}
	return webauthnUser{user: user, credentials: creds}, nil
}

func sessionKey(kind, userID string) string {
	return "webauthn:" + kind + ":" + userID
}

func (s *WebAuthnService) saveSession(ctx context.Context, kind, userID string, session *webauthn.SessionData) error {
	if err := s.sessions.Set(ctx, sessionKey(kind, userID), session, webauthnSessionTTL); err != nil {
		return fmt.Errorf("failed to store webauthn session: %w", err)
	}
	return nil
}

// takeSession достает сессию церемонии и удаляет ее, повторное использование невозможно
func (s *WebAuthnService) takeSession(ctx context.Context, kind, userID string) (webauthn.SessionData, error) {
	key := sessionKey(kind, userID)

	var session webauthn.SessionData
	if err := s.sessions.Get(ctx, key, &session); err != nil {
		if errors.Is(err, cache.ErrMiss) {
			return webauthn.SessionData{}, fmt.Errorf("%w: no active ceremony", ErrWebAuthnFailed)
		}
		return webauthn.SessionData{}, fmt.Errorf("failed to load webauthn session: %w", err)
	}
	if err := s.sessions.Delete(ctx, key); err != nil {
		s.logger.Warn("failed to delete webauthn session", zap.String("user_id", userID), zap.Error(err))
	}
	return session, nil
}

// BeginLogin начинает проверку ключа для ожидающего входа
func (s *WebAuthnService) BeginLogin(ctx context.Context, userID string) (*protocol.CredentialAssertion, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(user.WebAuthnCredentials()) == 0 {
		return nil, ErrCredentialAbsent
	}

	assertion, session, err := s.wa.BeginLogin(user)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWebAuthnFailed, err)
	}
	if err := s.saveSession(ctx, "login", userID, session); err != nil {
		return nil, err
	}
	return assertion, nil
}

// FinishLogin проверяет ответ аутентификатора и обновляет счетчик подписей
func (s *WebAuthnService) FinishLogin(ctx context.Context, userID string, r *http.Request) (model.User, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return model.User{}, err
	}
	session, err := s.takeSession(ctx, "login", userID)
	if err != nil {
		return model.User{}, err
	}

	credential, err := s.wa.FinishLogin(user, session, r)
	if err != nil {
		return model.User{}, fmt.Errorf("%w: %v", ErrWebAuthnFailed, err)
	}

	externalID := base64.RawURLEncoding.EncodeToString(credential.ID)
	if credential.Authenticator.CloneWarning {
		s.logger.Warn("authenticator sign count went backwards", zap.String("user_id", userID), zap.String("credential", externalID))
	}
	if err := s.credentials.UpdateCredentialSignCount(ctx, externalID, credential.Authenticator.SignCount); err != nil {
		s.logger.Error("failed to update sign count", zap.String("credential", externalID), zap.Error(err))
	}
	return user.user, nil
}

// BeginRegistration начинает добавление нового ключа; уже известные ключи исключаются
func (s *WebAuthnService) BeginRegistration(ctx context.Context, userID string) (*protocol.CredentialCreation, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var exclusions []protocol.CredentialDescriptor
	for _, c := range user.WebAuthnCredentials() {
		exclusions = append(exclusions, c.Descriptor())
	}

	creation, session, err := s.wa.BeginRegistration(user, webauthn.WithExclusions(exclusions))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWebAuthnFailed, err)
	}
	if err := s.saveSession(ctx, "register", userID, session); err != nil {
		return nil, err
	}
	return creation, nil
}

// FinishRegistration сохраняет новый ключ пользователя
func (s *WebAuthnService) FinishRegistration(ctx context.Context, userID, nickname string, r *http.Request) (model.WebauthnCredential, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return model.WebauthnCredential{}, err
	}
	session, err := s.takeSession(ctx, "register", userID)
	if err != nil {
		return model.WebauthnCredential{}, err
	}

	credential, err := s.wa.FinishRegistration(user, session, r)
	if err != nil {
		return model.WebauthnCredential{}, fmt.Errorf("%w: %v", ErrWebAuthnFailed, err)
	}

	if nickname == "" {
		nickname = fmt.Sprintf("Security key %d", len(user.credentials)+1)
	}
	now := s.now()
	saved, err := s.credentials.CreateCredential(ctx, model.WebauthnCredential{
		UserID:          userID,
		ExternalID:      base64.RawURLEncoding.EncodeToString(credential.ID),
		PublicKey:       credential.PublicKey,
		AttestationType: credential.AttestationType,
		SignCount:       credential.Authenticator.SignCount,
		Nickname:        nickname,
		Active:          true,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	if err != nil {
		return model.WebauthnCredential{}, fmt.Errorf("failed to save credential: %w", err)
	}

	s.logger.Info("webauthn credential registered", zap.String("user_id", userID), zap.Int64("credential_id", saved.ID))
	return saved, nil
}

func (s *WebAuthnService) ListCredentials(ctx context.Context, userID string) ([]model.WebauthnCredential, error) {
	creds, err := s.credentials.ListCredentials(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list credentials: %w", err)
	}
	return creds, nil
}

// DeactivateCredential выключает ключ; запись остается для аудита
func (s *WebAuthnService) DeactivateCredential(ctx context.Context, userID string, id int64) error {
	if err := s.credentials.SetCredentialActive(ctx, userID, id, false); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrCredentialAbsent
		}
		return fmt.Errorf("failed to deactivate credential: %w", err)
	}
	return nil
}
