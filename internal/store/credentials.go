package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/avc-dev/shlink-dashboard/internal/model"
)

func (s *Store) ListCredentials(_ context.Context, userID string) ([]model.WebauthnCredential, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	var result []model.WebauthnCredential
	for _, c := range s.credentials {
		if c.UserID == userID {
			result = append(result, c)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (s *Store) GetCredential(_ context.Context, externalID string) (model.WebauthnCredential, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	c, ok := s.credentials[externalID]
	if !ok {
		return model.WebauthnCredential{}, fmt.Errorf("credential %s: %w", externalID, ErrNotFound)
	}
	return c, nil
}

func (s *Store) CreateCredential(_ context.Context, c model.WebauthnCredential) (model.WebauthnCredential, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.credentials[c.ExternalID]; exists {
		return model.WebauthnCredential{}, fmt.Errorf("credential %s: %w", c.ExternalID, ErrAlreadyExists)
	}

	s.nextCredID++
	c.ID = s.nextCredID
	s.credentials[c.ExternalID] = c
	return c, nil
}

func (s *Store) UpdateCredentialSignCount(_ context.Context, externalID string, signCount uint32) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	c, ok := s.credentials[externalID]
	if !ok {
		return fmt.Errorf("credential %s: %w", externalID, ErrNotFound)
	}
	c.SignCount = signCount
	s.credentials[externalID] = c
	return nil
}

func (s *Store) SetCredentialActive(_ context.Context, userID string, id int64, active bool) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for externalID, c := range s.credentials {
		if c.ID == id && c.UserID == userID {
			c.Active = active
			s.credentials[externalID] = c
			return nil
		}
	}
	return fmt.Errorf("credential %d: %w", id, ErrNotFound)
}
