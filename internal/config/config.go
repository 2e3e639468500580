package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config содержит конфигурацию приложения
type Config struct {
	ServerAddress NetworkAddress `env:"SERVER_ADDRESS" envDefault:"localhost:8080"`
	GRPCAddress   string         `env:"GRPC_ADDRESS"`
	BaseURL       URLPrefix      `env:"BASE_URL" envDefault:"http://localhost:8080"`
	DatabaseDSN   string         `env:"DATABASE_DSN"`
	JWTSecret     string         `env:"JWT_SECRET" envDefault:"change-me"`
	SecureCookies bool           `env:"SECURE_COOKIES" envDefault:"false"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	Shlink    ShlinkConfig
	Redis     RedisConfig
	OAuth     OAuthConfig
	WebAuthn  WebAuthnConfig
	Captcha   CaptchaConfig
	Mail      MailConfig
	Jobs      JobsConfig
	RateLimit RateLimitConfig
}

// ShlinkConfig настройки подключения к Shlink REST API
type ShlinkConfig struct {
	BaseURL string        `env:"SHLINK_BASE_URL" envDefault:"http://localhost:8081"`
	APIKey  string        `env:"SHLINK_API_KEY"`
	Timeout time.Duration `env:"SHLINK_TIMEOUT" envDefault:"15s"`
}

// RedisConfig настройки кэша; пустой адрес означает кэш в памяти
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

// OAuthConfig настройки OAuth провайдеров
type OAuthConfig struct {
	GoogleClientID     string `env:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `env:"GOOGLE_CLIENT_SECRET"`
	GithubClientID     string `env:"GITHUB_CLIENT_ID"`
	GithubClientSecret string `env:"GITHUB_CLIENT_SECRET"`
}

// WebAuthnConfig настройки relying party
type WebAuthnConfig struct {
	RPID          string   `env:"WEBAUTHN_RP_ID" envDefault:"localhost"`
	RPDisplayName string   `env:"WEBAUTHN_RP_NAME" envDefault:"Shlink Dashboard"`
	RPOrigins     []string `env:"WEBAUTHN_RP_ORIGINS" envSeparator:"," envDefault:"http://localhost:8080"`
}

// CaptchaConfig настройки проверки капчи
type CaptchaConfig struct {
	VerifyURL string `env:"CAPTCHA_VERIFY_URL" envDefault:"https://challenges.cloudflare.com/turnstile/v0/siteverify"`
	Secret    string `env:"CAPTCHA_SECRET"`
}

// MailConfig стартовые параметры почты; настройки из БД их перекрывают
type MailConfig struct {
	From         string `env:"MAIL_FROM" envDefault:"no-reply@localhost"`
	SMTPHost     string `env:"SMTP_HOST" envDefault:"localhost"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"25"`
	SMTPUsername string `env:"SMTP_USERNAME"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	APIURL       string `env:"MAIL_API_URL"`
	APIKey       string `env:"MAIL_API_KEY"`
}

// JobsConfig настройки очереди фоновых задач
type JobsConfig struct {
	Workers int `env:"JOB_WORKERS" envDefault:"4"`
	Buffer  int `env:"JOB_BUFFER" envDefault:"100"`
}

// RateLimitConfig лимиты запросов по IP
type RateLimitConfig struct {
	AuthPerMinute    float64 `env:"RATE_LIMIT_AUTH_PER_MINUTE" envDefault:"20"`
	AuthBurst        int     `env:"RATE_LIMIT_AUTH_BURST" envDefault:"10"`
	GeneralPerSecond float64 `env:"RATE_LIMIT_PER_SECOND" envDefault:"10"`
	GeneralBurst     int     `env:"RATE_LIMIT_BURST" envDefault:"50"`
}

// Load загружает конфигурацию: .env, переменные окружения, затем флаги командной строки
func Load() (*Config, error) {
	return LoadArgs(os.Args[1:])
}

// LoadArgs загружает конфигурацию с явным списком аргументов
func LoadArgs(args []string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	flags := flag.NewFlagSet("dashboard", flag.ContinueOnError)
	flags.Var(&cfg.ServerAddress, "a", "address to run HTTP server")
	flags.Var(&cfg.BaseURL, "b", "public base URL of the dashboard")
	flags.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "PostgreSQL DSN")
	flags.StringVar(&cfg.GRPCAddress, "g", cfg.GRPCAddress, "address of the gRPC health server")
	flags.StringVar(&cfg.Shlink.BaseURL, "shlink-url", cfg.Shlink.BaseURL, "Shlink base URL")
	flags.StringVar(&cfg.Shlink.APIKey, "shlink-key", cfg.Shlink.APIKey, "Shlink API key")
	flags.StringVar(&cfg.Redis.Addr, "redis", cfg.Redis.Addr, "Redis address")

	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	return cfg, nil
}
