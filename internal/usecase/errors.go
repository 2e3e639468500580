package usecase

import (
	"errors"

	"github.com/avc-dev/shlink-dashboard/internal/service"
)

var (
	ErrInvalidURL         = errors.New("invalid URL")
	ErrEmptyURL           = errors.New("empty URL")
	ErrServiceUnavailable = errors.New("service unavailable")
	ErrRemoteRejected     = errors.New("rejected by Shlink")
	ErrCodeConflict       = errors.New("short code is already registered")

	// ErrShortURLNotFound совпадает с ошибкой сервисного слоя, чтобы обработчики сравнивали одно значение
	ErrShortURLNotFound = service.ErrShortURLNotFound

	ErrUserNotFound     = service.ErrUserNotFound
	ErrInvalidRole      = service.ErrInvalidRole
	ErrSelfModification = errors.New("administrators cannot change or delete their own account here")
)
