package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/avc-dev/shlink-dashboard/internal/mailer"
	"github.com/avc-dev/shlink-dashboard/internal/model"
	"github.com/avc-dev/shlink-dashboard/internal/repository"
	"github.com/avc-dev/shlink-dashboard/internal/store"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	SessionCookie = "user_token"
	PendingCookie = "pending_2fa"

	pendingTTL        = 5 * time.Minute
	minPasswordLength = 8

	purposeSession = "session"
	purposePending = "pending_2fa"
)

// AuthPolicy параметры входа, меняющиеся настройками
type AuthPolicy interface {
	Lockout() LockoutPolicy
	SessionTimeout() time.Duration
	RegistrationEnabled(ctx context.Context) bool
	CaptchaEnabled(ctx context.Context) bool
}

// AuthConfig статические параметры AuthService
type AuthConfig struct {
	JWTSecret     string
	SecureCookies bool
	Issuer        string
}

// RegisterInput данные формы регистрации
type RegisterInput struct {
	Email        string
	Password     string
	CaptchaToken string
	RemoteIP     string
}

// LoginResult итог проверки пароля; при Pending2FA сессия выдается после второго фактора
type LoginResult struct {
	User       model.User
	Pending2FA bool
}

// SessionClaims данные сессии из JWT
type SessionClaims struct {
	UserID string
	Role   model.Role
}

// AuthService предоставляет функциональность для аутентификации пользователей
type AuthService struct {
	users         repository.UserStore
	credentials   repository.CredentialStore
	policy        AuthPolicy
	captcha       CaptchaVerifier
	jobs          JobEnqueuer
	jwtSecret     []byte
	secureCookies bool
	issuer        string
	logger        *zap.Logger
	now           func() time.Time
}

// NewAuthService создает новый экземпляр AuthService; captcha и jobs могут быть nil
func NewAuthService(
	users repository.UserStore,
	credentials repository.CredentialStore,
	policy AuthPolicy,
	captcha CaptchaVerifier,
	jobs JobEnqueuer,
	cfg AuthConfig,
	logger *zap.Logger,
) *AuthService {
	issuer := cfg.Issuer
	if issuer == "" {
		issuer = "Shlink Dashboard"
	}
	return &AuthService{
		users:         users,
		credentials:   credentials,
		policy:        policy,
		captcha:       captcha,
		jobs:          jobs,
		jwtSecret:     []byte(cfg.JWTSecret),
		secureCookies: cfg.SecureCookies,
		issuer:        issuer,
		logger:        logger,
		now:           time.Now,
	}
}

// GenerateUserID генерирует уникальный идентификатор пользователя
func (a *AuthService) GenerateUserID() string {
	return uuid.New().String()
}

// HashPassword возвращает bcrypt хеш пароля
func HashPassword(password string) (string, error) {
	if len(password) < minPasswordLength {
		return "", ErrWeakPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// NormalizeEmail приводит адрес к нижнему регистру и проверяет формат
func NormalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", ErrInvalidEmail
	}
	return email, nil
}

// Register создает пользователя с ролью normal_user и ставит в очередь приветственное письмо
func (a *AuthService) Register(ctx context.Context, in RegisterInput) (model.User, error) {
	if !a.policy.RegistrationEnabled(ctx) {
		return model.User{}, ErrRegistrationClosed
	}

	email, err := NormalizeEmail(in.Email)
	if err != nil {
		return model.User{}, err
	}

	if a.policy.CaptchaEnabled(ctx) {
		if err := a.verifyCaptcha(ctx, in.CaptchaToken, in.RemoteIP); err != nil {
			return model.User{}, err
		}
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return model.User{}, err
	}

	now := a.now()
	user, err := a.users.CreateUser(ctx, model.User{
		ID:           a.GenerateUserID(),
		Email:        email,
		PasswordHash: hash,
		Role:         model.RoleNormalUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return model.User{}, ErrEmailTaken
		}
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	a.enqueueMail(ctx, mailer.Message{
		To:      []string{user.Email},
		Subject: "Welcome to Shlink Dashboard",
		Body:    "Your account has been created. You can now sign in and manage your short URLs.",
	})

	a.logger.Info("user registered", zap.String("user_id", user.ID))
	return user, nil
}

func (a *AuthService) verifyCaptcha(ctx context.Context, token, remoteIP string) error {
	if a.captcha == nil {
		return fmt.Errorf("%w: verifier is not configured", ErrCaptchaFailed)
	}
	ok, err := a.captcha.Verify(ctx, token, remoteIP)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCaptchaFailed, err)
	}
	if !ok {
		return ErrCaptchaFailed
	}
	return nil
}

func (a *AuthService) enqueueMail(ctx context.Context, msg mailer.Message) {
	if a.jobs == nil {
		return
	}
	if _, err := a.jobs.Enqueue(ctx, mailer.JobKind, msg); err != nil {
		a.logger.Warn("failed to enqueue mail", zap.Strings("to", msg.To), zap.Error(err))
	}
}

// Login проверяет пароль с учетом блокировки после неудачных попыток
func (a *AuthService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	user, err := a.users.GetUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return LoginResult{}, ErrInvalidCredentials
		}
		return LoginResult{}, fmt.Errorf("failed to load user: %w", err)
	}

	policy := a.policy.Lockout()
	now := a.now()

	if user.LockedAt != nil {
		if now.Before(user.LockedAt.Add(policy.UnlockAfter)) {
			return LoginResult{}, ErrAccountLocked
		}
		user.LockedAt = nil
		user.FailedAttempts = 0
	}

	if user.PasswordHash == "" || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return LoginResult{}, a.registerFailure(ctx, user, policy, now)
	}

	if user.FailedAttempts > 0 || user.LockedAt != nil {
		user.FailedAttempts = 0
		user.LockedAt = nil
		user.UpdatedAt = now
		if err := a.users.UpdateUser(ctx, user); err != nil {
			return LoginResult{}, fmt.Errorf("failed to reset failed attempts: %w", err)
		}
	}

	pending, err := a.RequiresSecondFactor(ctx, user)
	if err != nil {
		return LoginResult{}, err
	}
	return LoginResult{User: user, Pending2FA: pending}, nil
}

func (a *AuthService) registerFailure(ctx context.Context, user model.User, policy LockoutPolicy, now time.Time) error {
	user.FailedAttempts++
	user.UpdatedAt = now
	locked := user.FailedAttempts >= policy.MaxFailedAttempts
	if locked {
		user.LockedAt = &now
	}

	if err := a.users.UpdateUser(ctx, user); err != nil {
		return fmt.Errorf("failed to record failed attempt: %w", err)
	}

	if locked {
		a.logger.Warn("account locked", zap.String("user_id", user.ID), zap.Int("attempts", user.FailedAttempts))
		return ErrAccountLocked
	}
	return ErrInvalidCredentials
}

// RequiresSecondFactor сообщает, нужен ли второй фактор: включен TOTP или есть активный ключ
func (a *AuthService) RequiresSecondFactor(ctx context.Context, user model.User) (bool, error) {
	if user.OTPEnabled {
		return true, nil
	}
	creds, err := a.credentials.ListCredentials(ctx, user.ID)
	if err != nil {
		return false, fmt.Errorf("failed to list credentials: %w", err)
	}
	for _, c := range creds {
		if c.Active {
			return true, nil
		}
	}
	return false, nil
}

// GetUser возвращает пользователя по id
func (a *AuthService) GetUser(ctx context.Context, id string) (model.User, error) {
	user, err := a.users.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return model.User{}, ErrUserNotFound
		}
		return model.User{}, fmt.Errorf("failed to load user: %w", err)
	}
	return user, nil
}

func (a *AuthService) sign(claims jwt.MapClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.jwtSecret)
}

// IssueSession создает JWT сессии на время auth.session_timeout_minutes
func (a *AuthService) IssueSession(user model.User) (string, error) {
	now := a.now()
	return a.sign(jwt.MapClaims{
		"user_id": user.ID,
		"role":    string(user.Role),
		"purpose": purposeSession,
		"exp":     now.Add(a.policy.SessionTimeout()).Unix(),
		"iat":     now.Unix(),
	})
}

// IssuePending создает короткоживущий маркер ожидания второго фактора
func (a *AuthService) IssuePending(userID string) (string, error) {
	now := a.now()
	return a.sign(jwt.MapClaims{
		"user_id": userID,
		"purpose": purposePending,
		"exp":     now.Add(pendingTTL).Unix(),
		"iat":     now.Unix(),
	})
}

func (a *AuthService) parse(tokenString, purpose string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.jwtSecret, nil
	}, jwt.WithTimeFunc(a.now))
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims["purpose"] != purpose {
		return nil, fmt.Errorf("token purpose mismatch")
	}
	if _, ok := claims["user_id"].(string); !ok {
		return nil, fmt.Errorf("user_id not found in token")
	}
	return claims, nil
}

// ParseSession проверяет JWT сессии
func (a *AuthService) ParseSession(tokenString string) (SessionClaims, error) {
	claims, err := a.parse(tokenString, purposeSession)
	if err != nil {
		return SessionClaims{}, err
	}
	role, _ := claims["role"].(string)
	return SessionClaims{UserID: claims["user_id"].(string), Role: model.Role(role)}, nil
}

// ParsePending проверяет маркер ожидания второго фактора
func (a *AuthService) ParsePending(tokenString string) (string, error) {
	claims, err := a.parse(tokenString, purposePending)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoPending2FA, err)
	}
	return claims["user_id"].(string), nil
}

func (a *AuthService) cookie(name, value string, maxAge time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   a.secureCookies,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(maxAge / time.Second),
	}
}

// StartSession выставляет куку сессии и снимает маркер второго фактора
func (a *AuthService) StartSession(w http.ResponseWriter, user model.User) error {
	token, err := a.IssueSession(user)
	if err != nil {
		return fmt.Errorf("failed to generate JWT: %w", err)
	}
	http.SetCookie(w, a.cookie(SessionCookie, token, a.policy.SessionTimeout()))
	a.ClearPending(w)
	return nil
}

// StartPending выставляет куку ожидания второго фактора
func (a *AuthService) StartPending(w http.ResponseWriter, userID string) error {
	token, err := a.IssuePending(userID)
	if err != nil {
		return fmt.Errorf("failed to generate JWT: %w", err)
	}
	http.SetCookie(w, a.cookie(PendingCookie, token, pendingTTL))
	return nil
}

func (a *AuthService) ClearPending(w http.ResponseWriter) {
	c := a.cookie(PendingCookie, "", 0)
	c.MaxAge = -1
	http.SetCookie(w, c)
}

// Logout удаляет куки сессии и второго фактора
func (a *AuthService) Logout(w http.ResponseWriter) {
	c := a.cookie(SessionCookie, "", 0)
	c.MaxAge = -1
	http.SetCookie(w, c)
	a.ClearPending(w)
}
