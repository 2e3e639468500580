package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/avc-dev/shlink-dashboard/internal/mailer"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Ключи настроек, от которых зависят параметры времени выполнения
const (
	KeyTimezone            = "app.timezone"
	KeyLogLevel            = "app.log_level"
	KeyQueryTimeout        = "database.query_timeout_seconds"
	KeyRegistrationEnabled = "auth.registration_enabled"
	KeyMaxFailedAttempts   = "auth.max_failed_attempts"
	KeyUnlockAfter         = "auth.unlock_after_minutes"
	KeySessionTimeout      = "auth.session_timeout_minutes"
	KeyCaptchaEnabled      = "captcha.enabled"
	KeyMailTransport       = "mail.transport"
	KeyMailFrom            = "mail.from"
	KeyMailSMTPHost        = "mail.smtp_host"
	KeyMailSMTPPort        = "mail.smtp_port"
	KeyMailSMTPUsername    = "mail.smtp_username"
	KeyMailSMTPPassword    = "mail.smtp_password"
	KeyMailAPIURL          = "mail.api_url"
	KeyMailAPIKey          = "mail.api_key"
)

const (
	defaultSessionTimeout = 24 * time.Hour
	defaultMaxAttempts    = 5
	defaultUnlockAfter    = 30 * time.Minute
)

// SettingsReader типизированное чтение настроек
type SettingsReader interface {
	GetString(ctx context.Context, key, def string) string
	GetInt(ctx context.Context, key string, def int) int
	GetBool(ctx context.Context, key string, def bool) bool
}

// QueryTimeoutSetter меняет таймаут запросов к БД
type QueryTimeoutSetter interface {
	SetQueryTimeout(d time.Duration)
}

// MailConfigurer переключает почтовый транспорт
type MailConfigurer interface {
	Configure(cfg mailer.Config) error
}

// LockoutPolicy правила блокировки после неудачных входов
type LockoutPolicy struct {
	MaxFailedAttempts int
	UnlockAfter       time.Duration
}

// Runtime параметры, которые меняются настройками без перезапуска.
// Значения хранятся атомарно, параллельные записи разрешаются по принципу last-write-wins.
type Runtime struct {
	settings     SettingsReader
	level        zap.AtomicLevel
	db           QueryTimeoutSetter
	mail         MailConfigurer
	mailDefaults mailer.Config
	logger       *zap.Logger

	location       atomic.Pointer[time.Location]
	lockout        atomic.Pointer[LockoutPolicy]
	sessionTimeout atomic.Int64
}

// NewRuntime создает Runtime со значениями по умолчанию; db и mail могут быть nil
func NewRuntime(
	settings SettingsReader,
	level zap.AtomicLevel,
	db QueryTimeoutSetter,
	mail MailConfigurer,
	mailDefaults mailer.Config,
	logger *zap.Logger,
) *Runtime {
	r := &Runtime{
		settings:     settings,
		level:        level,
		db:           db,
		mail:         mail,
		mailDefaults: mailDefaults,
		logger:       logger,
	}
	r.location.Store(time.UTC)
	r.lockout.Store(&LockoutPolicy{MaxFailedAttempts: defaultMaxAttempts, UnlockAfter: defaultUnlockAfter})
	r.sessionTimeout.Store(int64(defaultSessionTimeout))
	return r
}

func (r *Runtime) Location() *time.Location {
	return r.location.Load()
}

func (r *Runtime) Lockout() LockoutPolicy {
	return *r.lockout.Load()
}

func (r *Runtime) SessionTimeout() time.Duration {
	return time.Duration(r.sessionTimeout.Load())
}

func (r *Runtime) RegistrationEnabled(ctx context.Context) bool {
	return r.settings.GetBool(ctx, KeyRegistrationEnabled, true)
}

func (r *Runtime) CaptchaEnabled(ctx context.Context) bool {
	return r.settings.GetBool(ctx, KeyCaptchaEnabled, false)
}

// Reconfigure применяет настройки к каждой подсистеме независимо.
// Ошибка одной подсистемы логируется и не мешает остальным; наружу ошибки не возвращаются.
func (r *Runtime) Reconfigure(ctx context.Context) {
	appliers := []struct {
		name  string
		apply func(context.Context) error
	}{
		{"timezone", r.applyTimezone},
		{"log_level", r.applyLogLevel},
		{"query_timeout", r.applyQueryTimeout},
		{"lockout", r.applyLockout},
		{"session_timeout", r.applySessionTimeout},
		{"mail", r.applyMail},
	}

	failed := 0
	for _, a := range appliers {
		if err := safeApply(ctx, a.apply); err != nil {
			failed++
			r.logger.Error("failed to apply runtime setting", zap.String("subsystem", a.name), zap.Error(err))
		}
	}

	r.logger.Info("runtime reconfigured", zap.Int("subsystems", len(appliers)), zap.Int("failed", failed))
}

// safeApply превращает панику подсистемы в ошибку
func safeApply(ctx context.Context, apply func(context.Context) error) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("applier panic: %v", p)
		}
	}()
	return apply(ctx)
}

func (r *Runtime) applyTimezone(ctx context.Context) error {
	name := r.settings.GetString(ctx, KeyTimezone, "UTC")
	loc, err := time.LoadLocation(name)
	if err != nil {
		return fmt.Errorf("unknown timezone %q: %w", name, err)
	}
	r.location.Store(loc)
	return nil
}

func (r *Runtime) applyLogLevel(ctx context.Context) error {
	raw := r.settings.GetString(ctx, KeyLogLevel, "info")
	level, err := zapcore.ParseLevel(raw)
	if err != nil {
		return err
	}
	r.level.SetLevel(level)
	return nil
}

func (r *Runtime) applyQueryTimeout(ctx context.Context) error {
	if r.db == nil {
		return nil
	}
	seconds := r.settings.GetInt(ctx, KeyQueryTimeout, 5)
	if seconds <= 0 {
		return fmt.Errorf("query timeout must be positive, got %d", seconds)
	}
	r.db.SetQueryTimeout(time.Duration(seconds) * time.Second)
	return nil
}

func (r *Runtime) applyLockout(ctx context.Context) error {
	maxAttempts := r.settings.GetInt(ctx, KeyMaxFailedAttempts, defaultMaxAttempts)
	unlockMinutes := r.settings.GetInt(ctx, KeyUnlockAfter, int(defaultUnlockAfter/time.Minute))
	if maxAttempts <= 0 || unlockMinutes < 0 {
		return fmt.Errorf("invalid lockout policy: attempts=%d unlock=%dm", maxAttempts, unlockMinutes)
	}
	r.lockout.Store(&LockoutPolicy{
		MaxFailedAttempts: maxAttempts,
		UnlockAfter:       time.Duration(unlockMinutes) * time.Minute,
	})
	return nil
}

func (r *Runtime) applySessionTimeout(ctx context.Context) error {
	minutes := r.settings.GetInt(ctx, KeySessionTimeout, int(defaultSessionTimeout/time.Minute))
	if minutes <= 0 {
		return fmt.Errorf("session timeout must be positive, got %d", minutes)
	}
	r.sessionTimeout.Store(int64(time.Duration(minutes) * time.Minute))
	return nil
}

func (r *Runtime) applyMail(ctx context.Context) error {
	if r.mail == nil {
		return nil
	}
	d := r.mailDefaults
	cfg := mailer.Config{
		Transport:    r.settings.GetString(ctx, KeyMailTransport, d.Transport),
		From:         r.settings.GetString(ctx, KeyMailFrom, d.From),
		SMTPHost:     r.settings.GetString(ctx, KeyMailSMTPHost, d.SMTPHost),
		SMTPPort:     r.settings.GetInt(ctx, KeyMailSMTPPort, d.SMTPPort),
		SMTPUsername: r.settings.GetString(ctx, KeyMailSMTPUsername, d.SMTPUsername),
		SMTPPassword: r.settings.GetString(ctx, KeyMailSMTPPassword, d.SMTPPassword),
		APIURL:       r.settings.GetString(ctx, KeyMailAPIURL, d.APIURL),
		APIKey:       r.settings.GetString(ctx, KeyMailAPIKey, d.APIKey),
	}
	return r.mail.Configure(cfg)
}
