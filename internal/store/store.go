package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/avc-dev/shlink-dashboard/internal/model"
)

var (
	ErrNotFound      = errors.New("key not found")
	ErrAlreadyExists = errors.New("key already exists")
)

// Store хранилище в памяти; используется без DATABASE_DSN и в тестах
type Store struct {
	mutex sync.Mutex

	shortURLs   map[model.Code]model.ShortURL
	nextURLID   int64
	users       map[string]model.User
	settings    map[string]model.SystemSetting
	credentials map[string]model.WebauthnCredential
	nextCredID  int64
	jobs        map[string]model.Job
}

func NewStore() *Store {
	return &Store{
		shortURLs:   make(map[model.Code]model.ShortURL),
		users:       make(map[string]model.User),
		settings:    make(map[string]model.SystemSetting),
		credentials: make(map[string]model.WebauthnCredential),
		jobs:        make(map[string]model.Job),
	}
}

func cloneShortURL(u model.ShortURL) model.ShortURL {
	u.Tags = append([]string{}, u.Tags...)
	return u
}

func (s *Store) CreateShortURL(_ context.Context, u model.ShortURL) (model.ShortURL, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	// Код уникален среди всех пользователей; удаленная запись с тем же кодом
	// перезаписывается новой и сохраняет свой id
	if existing, exists := s.shortURLs[u.ShortCode]; exists {
		if existing.DeletedAt == nil {
			return model.ShortURL{}, fmt.Errorf("short code %s: %w", u.ShortCode, ErrAlreadyExists)
		}
		u.ID = existing.ID
		u.DeletedAt = nil
		s.shortURLs[u.ShortCode] = cloneShortURL(u)
		return cloneShortURL(u), nil
	}

	s.nextURLID++
	u.ID = s.nextURLID
	s.shortURLs[u.ShortCode] = cloneShortURL(u)

	return cloneShortURL(u), nil
}

func (s *Store) GetShortURL(_ context.Context, code model.Code) (model.ShortURL, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	u, ok := s.shortURLs[code]
	if !ok {
		return model.ShortURL{}, fmt.Errorf("short code %s: %w", code, ErrNotFound)
	}
	return cloneShortURL(u), nil
}

func (s *Store) ListActiveShortURLs(_ context.Context, userID string, now time.Time) ([]model.ShortURL, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	var result []model.ShortURL
	for _, u := range s.shortURLs {
		if u.UserID == userID && u.IsActive(now) {
			result = append(result, cloneShortURL(u))
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (s *Store) UpdateShortURL(_ context.Context, u model.ShortURL) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, ok := s.shortURLs[u.ShortCode]; !ok {
		return fmt.Errorf("short code %s: %w", u.ShortCode, ErrNotFound)
	}
	s.shortURLs[u.ShortCode] = cloneShortURL(u)
	return nil
}

func (s *Store) SoftDeleteShortURL(_ context.Context, code model.Code, at time.Time) (bool, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	u, ok := s.shortURLs[code]
	if !ok {
		return false, fmt.Errorf("short code %s: %w", code, ErrNotFound)
	}
	if u.DeletedAt != nil {
		return false, nil
	}

	u.DeletedAt = &at
	u.UpdatedAt = at
	s.shortURLs[code] = u
	return true, nil
}
