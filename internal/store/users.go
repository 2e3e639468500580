package store

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/avc-dev/shlink-dashboard/internal/model"
)

func (s *Store) CreateUser(_ context.Context, u model.User) (model.User, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.users[u.ID]; exists {
		return model.User{}, fmt.Errorf("user %s: %w", u.ID, ErrAlreadyExists)
	}
	for _, existing := range s.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return model.User{}, fmt.Errorf("email %s: %w", u.Email, ErrAlreadyExists)
		}
	}

	s.users[u.ID] = u
	return u, nil
}

func (s *Store) GetUser(_ context.Context, id string) (model.User, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	u, ok := s.users[id]
	if !ok {
		return model.User{}, fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	return u, nil
}

func (s *Store) GetUserByEmail(_ context.Context, email string) (model.User, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return model.User{}, fmt.Errorf("email %s: %w", email, ErrNotFound)
}

func (s *Store) GetUserByProvider(_ context.Context, provider, uid string) (model.User, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, u := range s.users {
		if u.Provider == provider && u.ProviderUID == uid {
			return u, nil
		}
	}
	return model.User{}, fmt.Errorf("provider %s/%s: %w", provider, uid, ErrNotFound)
}

func (s *Store) ListUsers(_ context.Context) ([]model.User, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	users := make([]model.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.Before(users[j].CreatedAt)
	})
	return users, nil
}

func (s *Store) UpdateUser(_ context.Context, u model.User) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, ok := s.users[u.ID]; !ok {
		return fmt.Errorf("user %s: %w", u.ID, ErrNotFound)
	}
	s.users[u.ID] = u
	return nil
}

func (s *Store) DeleteUser(_ context.Context, id string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, ok := s.users[id]; !ok {
		return fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	delete(s.users, id)

	for code, u := range s.shortURLs {
		if u.UserID == id {
			delete(s.shortURLs, code)
		}
	}
	for externalID, c := range s.credentials {
		if c.UserID == id {
			delete(s.credentials, externalID)
		}
	}
	return nil
}
