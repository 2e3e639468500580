package mailer

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"
)

// SMTPTransport отправка через SMTP сервер
type SMTPTransport struct {
	client *mail.Client
	from   string
}

// NewSMTPTransport создает SMTP клиента; соединение открывается на каждую отправку
func NewSMTPTransport(cfg Config) (*SMTPTransport, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.SMTPPort),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if cfg.SMTPUsername != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.SMTPUsername),
			mail.WithPassword(cfg.SMTPPassword),
		)
	}

	client, err := mail.NewClient(cfg.SMTPHost, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create smtp client: %w", err)
	}

	return &SMTPTransport{client: client, from: cfg.From}, nil
}

func (t *SMTPTransport) Send(ctx context.Context, msg Message) error {
	m := mail.NewMsg()
	if err := m.From(t.from); err != nil {
		return fmt.Errorf("invalid sender %q: %w", t.from, err)
	}
	if err := m.To(msg.To...); err != nil {
		return fmt.Errorf("invalid recipients: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextPlain, msg.Body)

	if err := t.client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("failed to send mail via smtp: %w", err)
	}
	return nil
}
