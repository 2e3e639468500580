package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// APITransport отправка через HTTP API транзакционной почты
type APITransport struct {
	url        string
	key        string
	from       string
	httpClient *http.Client
}

type apiAddress struct {
	Email string `json:"email"`
}

type apiRequest struct {
	Sender      apiAddress   `json:"sender"`
	To          []apiAddress `json:"to"`
	Subject     string       `json:"subject"`
	TextContent string       `json:"textContent"`
}

// NewAPITransport создает транспорт; httpClient nil заменяется клиентом с таймаутом 10s
func NewAPITransport(cfg Config, httpClient *http.Client) (*APITransport, error) {
	if cfg.APIURL == "" {
		return nil, fmt.Errorf("mail api url is required")
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	return &APITransport{
		url:        cfg.APIURL,
		key:        cfg.APIKey,
		from:       cfg.From,
		httpClient: httpClient,
	}, nil
}

func (t *APITransport) Send(ctx context.Context, msg Message) error {
	payload := apiRequest{
		Sender:      apiAddress{Email: t.from},
		Subject:     msg.Subject,
		TextContent: msg.Body,
	}
	for _, to := range msg.To {
		payload.To = append(payload.To, apiAddress{Email: to})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode mail request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build mail request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("api-key", t.key)

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call mail api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("mail api returned %d: %s", resp.StatusCode, bytes.TrimSpace(detail))
	}
	return nil
}
