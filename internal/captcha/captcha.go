package captcha

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var ErrMissingToken = errors.New("captcha token is missing")

// Verifier проверяет токен капчи через siteverify провайдера (Turnstile, hCaptcha, reCAPTCHA)
type Verifier struct {
	verifyURL  string
	secret     string
	httpClient *http.Client
}

func NewVerifier(verifyURL, secret string) *Verifier {
	return &Verifier{
		verifyURL:  verifyURL,
		secret:     secret,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type verifyResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
}

// Verify отправляет secret, response и remoteip формой и возвращает поле success
func (v *Verifier) Verify(ctx context.Context, token, remoteIP string) (bool, error) {
	if strings.TrimSpace(token) == "" {
		return false, ErrMissingToken
	}

	form := url.Values{}
	form.Set("secret", v.secret)
	form.Set("response", token)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return false, fmt.Errorf("failed to build captcha request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("failed to call captcha provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("captcha provider returned status %d", resp.StatusCode)
	}

	var result verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return false, fmt.Errorf("failed to decode captcha response: %w", err)
	}
	return result.Success, nil
}
