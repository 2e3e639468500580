package shlink

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError ошибка Shlink API: HTTP статус и детали из problem+json
// Status == 0 означает сетевую ошибку (таймаут, отказ в соединении)
type APIError struct {
	Status int    `json:"status"`
	Type   string `json:"type"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Err    error  `json:"-"`
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("shlink request failed: %v", e.Err)
	}
	if e.Detail != "" {
		return fmt.Sprintf("shlink API error %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("shlink API error %d: %s", e.Status, http.StatusText(e.Status))
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// IsNetwork сообщает, что запрос не дошел до сервера
func (e *APIError) IsNetwork() bool {
	return e.Status == 0
}

// IsNotFound проверяет, что ошибка является ответом 404 от Shlink
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status == http.StatusNotFound
	}
	return false
}

// StatusOf возвращает HTTP статус ошибки Shlink или 0
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}
