// Package mailer отправляет письма через SMTP или HTTP API почтового сервиса.
// Активный транспорт выбирается настройкой mail.transport и меняется без перезапуска.
package mailer

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"go.uber.org/zap"
)

// JobKind тип фоновой задачи отправки письма
const JobKind = "mail"

const (
	TransportSMTP = "smtp"
	TransportAPI  = "api"
)

var (
	ErrUnknownTransport = errors.New("unknown mail transport")
	ErrNoRecipients     = errors.New("message has no recipients")
)

// Message письмо; сериализуется в payload задачи очереди
type Message struct {
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Body    string   `json:"body"`
}

// Transport способ доставки письма
type Transport interface {
	Send(ctx context.Context, msg Message) error
}

// Config параметры транспорта
type Config struct {
	Transport    string
	From         string
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	APIURL       string
	APIKey       string
}

// NewTransport создает транспорт по конфигурации
func NewTransport(cfg Config, httpClient *http.Client) (Transport, error) {
	switch cfg.Transport {
	case TransportSMTP, "":
		return NewSMTPTransport(cfg)
	case TransportAPI:
		return NewAPITransport(cfg, httpClient)
	default:
		return nil, fmt.Errorf("%q: %w", cfg.Transport, ErrUnknownTransport)
	}
}

// Switcher держит активный транспорт и подменяет его при смене настроек
type Switcher struct {
	mu         sync.RWMutex
	current    Transport
	config     Config
	httpClient *http.Client
	logger     *zap.Logger
}

// NewSwitcher создает Switcher с начальной конфигурацией
func NewSwitcher(cfg Config, httpClient *http.Client, logger *zap.Logger) (*Switcher, error) {
	s := &Switcher{httpClient: httpClient, logger: logger}
	if err := s.Configure(cfg); err != nil {
		return nil, err
	}
	return s, nil
}

// Configure собирает новый транспорт; при ошибке остается прежний
func (s *Switcher) Configure(cfg Config) error {
	transport, err := NewTransport(cfg, s.httpClient)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.current = transport
	s.config = cfg
	s.mu.Unlock()

	s.logger.Info("mail transport configured",
		zap.String("transport", cfg.Transport),
		zap.String("from", cfg.From),
	)
	return nil
}

// Config возвращает конфигурацию активного транспорта
func (s *Switcher) Config() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config
}

func (s *Switcher) Send(ctx context.Context, msg Message) error {
	if len(msg.To) == 0 {
		return ErrNoRecipients
	}

	s.mu.RLock()
	transport := s.current
	s.mu.RUnlock()

	return transport.Send(ctx, msg)
}
