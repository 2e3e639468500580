package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/avc-dev/shlink-dashboard/internal/cache"
	"github.com/avc-dev/shlink-dashboard/internal/captcha"
	"github.com/avc-dev/shlink-dashboard/internal/config"
	"github.com/avc-dev/shlink-dashboard/internal/config/db"
	"github.com/avc-dev/shlink-dashboard/internal/handler"
	"github.com/avc-dev/shlink-dashboard/internal/jobs"
	"github.com/avc-dev/shlink-dashboard/internal/mailer"
	"github.com/avc-dev/shlink-dashboard/internal/middleware"
	"github.com/avc-dev/shlink-dashboard/internal/migrations"
	"github.com/avc-dev/shlink-dashboard/internal/repository"
	"github.com/avc-dev/shlink-dashboard/internal/service"
	"github.com/avc-dev/shlink-dashboard/internal/shlink"
	"github.com/avc-dev/shlink-dashboard/internal/store"
	"github.com/avc-dev/shlink-dashboard/internal/usecase"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const redisKeyPrefix = "shlink-dashboard:"

// Storage все хранилища приложения; реализуется store.Store и store.DatabaseStore
type Storage interface {
	repository.ShortURLStore
	repository.UserStore
	repository.SettingStore
	repository.CredentialStore
	repository.JobStore
}

// initDependencies инициализирует все зависимости приложения
func (a *App) initDependencies(ctx context.Context, level zap.AtomicLevel) error {
	cfg, logger := a.config, a.logger

	storage, database, err := initStorage(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	a.dbPool = database

	c, err := a.initCache(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize cache: %w", err)
	}

	settings := service.NewSettingsService(storage, c, logger)
	if _, err := settings.Seed(ctx); err != nil {
		return err
	}

	httpClient := &http.Client{Timeout: 15 * time.Second}
	mailDefaults := MailDefaults(cfg.Mail)
	mail, err := mailer.NewSwitcher(mailDefaults, httpClient, logger)
	if err != nil {
		return fmt.Errorf("failed to configure mail: %w", err)
	}

	var timeouts service.QueryTimeoutSetter
	if database != nil {
		timeouts = database
	}
	runtime := service.NewRuntime(settings, level, timeouts, mail, mailDefaults, logger)
	runtime.Reconfigure(ctx)

	a.queue = jobs.NewQueue(storage, cfg.Jobs.Workers, cfg.Jobs.Buffer, logger)
	a.queue.Register(mailer.JobKind, jobs.MailHandler(mail))
	if err := a.queue.Start(ctx); err != nil {
		return fmt.Errorf("failed to start job queue: %w", err)
	}

	var verifier service.CaptchaVerifier
	if cfg.Captcha.Secret != "" {
		verifier = captcha.NewVerifier(cfg.Captcha.VerifyURL, cfg.Captcha.Secret)
	}

	auth := service.NewAuthService(storage, storage, runtime, verifier, a.queue, service.AuthConfig{
		JWTSecret:     cfg.JWTSecret,
		SecureCookies: cfg.SecureCookies,
	}, logger)

	oauth := service.NewOAuthService(service.OAuthCredentials{
		GoogleClientID:     cfg.OAuth.GoogleClientID,
		GoogleClientSecret: cfg.OAuth.GoogleClientSecret,
		GithubClientID:     cfg.OAuth.GithubClientID,
		GithubClientSecret: cfg.OAuth.GithubClientSecret,
	}, cfg.BaseURL.String(), storage, runtime, cfg.SecureCookies, logger)

	webauthn, err := service.NewWebAuthnService(service.WebAuthnConfig{
		RPID:          cfg.WebAuthn.RPID,
		RPDisplayName: cfg.WebAuthn.RPDisplayName,
		RPOrigins:     cfg.WebAuthn.RPOrigins,
	}, storage, storage, c, logger)
	if err != nil {
		return err
	}

	client := shlink.NewClient(cfg.Shlink.BaseURL, cfg.Shlink.APIKey, cfg.Shlink.Timeout)
	repo := repository.New(storage)
	stats := service.NewStatisticsService(repo, client, c, runtime, logger)

	deps := handler.Deps{
		ShortURLs:     usecase.NewShortURLUsecase(repo, client, stats, logger),
		Statistics:    stats,
		Sync:          service.NewSyncService(repo, client, logger),
		Auth:          auth,
		OAuth:         oauth,
		WebAuthn:      webauthn,
		Users:         usecase.NewUserAdminUsecase(storage, logger),
		Settings:      settings,
		Runtime:       runtime,
		Jobs:          a.queue,
		AfterLoginURL: cfg.BaseURL.Join("/"),
	}
	if database != nil {
		deps.DB = database
	}

	authLimiter := middleware.NewIPRateLimiter(middleware.PerMinute(cfg.RateLimit.AuthPerMinute), cfg.RateLimit.AuthBurst)
	generalLimiter := middleware.NewIPRateLimiter(rate.Limit(cfg.RateLimit.GeneralPerSecond), cfg.RateLimit.GeneralBurst)
	a.limiter = []*middleware.IPRateLimiter{authLimiter, generalLimiter}

	a.router = newRouter(routerDeps{
		handler: handler.New(deps, logger),
		auth:    middleware.NewAuthMiddleware(auth, logger),
		authRL:  authLimiter,
		general: generalLimiter,
	}, logger)

	a.health = newHealthReporter(logger, healthProbe{name: "shlink", check: func(ctx context.Context) error {
		_, err := client.Health(ctx)
		return err
	}})
	if database != nil {
		a.health.add(healthProbe{name: "database", check: database.Ping})
	}

	return nil
}

// initStorage выбирает PostgreSQL при заданном DSN, иначе хранилище в памяти
func initStorage(ctx context.Context, cfg *config.Config, logger *zap.Logger) (Storage, db.Database, error) {
	if cfg.DatabaseDSN == "" {
		logger.Info("Using in-memory storage")
		return store.NewStore(), nil, nil
	}

	database, err := db.NewConfig(cfg.DatabaseDSN).Connect(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := migrations.NewMigrator(database.DB(), logger).RunUp(); err != nil {
		database.Close()
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("Using database storage")
	return store.NewDatabaseStore(database), database, nil
}

// initCache подключает Redis, если задан адрес; иначе кэш в памяти процесса
func (a *App) initCache(ctx context.Context) (cache.Cache, error) {
	if a.config.Redis.Addr == "" {
		a.logger.Info("Using in-memory cache")
		return cache.NewMemoryCache(), nil
	}

	client, err := cache.Connect(ctx, a.config.Redis.Addr, a.config.Redis.Password, a.config.Redis.DB)
	if err != nil {
		return nil, err
	}
	a.redis = client

	a.logger.Info("Using redis cache", zap.String("addr", a.config.Redis.Addr))
	return cache.NewRedisCache(client, redisKeyPrefix), nil
}

// MailDefaults стартовые параметры почты из окружения
func MailDefaults(cfg config.MailConfig) mailer.Config {
	transport := mailer.TransportSMTP
	if cfg.APIURL != "" {
		transport = mailer.TransportAPI
	}
	return mailer.Config{
		Transport:    transport,
		From:         cfg.From,
		SMTPHost:     cfg.SMTPHost,
		SMTPPort:     cfg.SMTPPort,
		SMTPUsername: cfg.SMTPUsername,
		SMTPPassword: cfg.SMTPPassword,
		APIURL:       cfg.APIURL,
		APIKey:       cfg.APIKey,
	}
}
