// Package cache содержит кэш для статистики, настроек и сессий WebAuthn.
// Значения сериализуются в JSON; при отсутствии Redis используется кэш в памяти.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrMiss возвращается, когда ключа нет в кэше или он истек
var ErrMiss = errors.New("cache miss")

//go:generate mockery --name Cache

// Cache интерфейс кэша со сроком жизни записей
type Cache interface {
	// Get декодирует значение ключа в dest; ErrMiss если ключа нет
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	// DeletePrefix удаляет все ключи с указанным префиксом
	DeletePrefix(ctx context.Context, prefix string) error
}
