package jobs

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/avc-dev/shlink-dashboard/internal/mailer"
)

// MailSender отправляет письмо через активный транспорт
type MailSender interface {
	Send(ctx context.Context, msg mailer.Message) error
}

// MailHandler обработчик задач вида mailer.JobKind
func MailHandler(sender MailSender) Handler {
	return func(ctx context.Context, payload json.RawMessage) error {
		var msg mailer.Message
		if err := json.Unmarshal(payload, &msg); err != nil {
			return fmt.Errorf("failed to decode mail payload: %w", err)
		}
		return sender.Send(ctx, msg)
	}
}
