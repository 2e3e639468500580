package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/avc-dev/shlink-dashboard/internal/model"
)

func (s *Store) GetSetting(_ context.Context, key string) (model.SystemSetting, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	setting, ok := s.settings[key]
	if !ok {
		return model.SystemSetting{}, fmt.Errorf("setting %s: %w", key, ErrNotFound)
	}
	return setting, nil
}

func (s *Store) ListSettings(_ context.Context) ([]model.SystemSetting, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	settings := make([]model.SystemSetting, 0, len(s.settings))
	for _, setting := range s.settings {
		settings = append(settings, setting)
	}
	sort.Slice(settings, func(i, j int) bool {
		if settings[i].Category != settings[j].Category {
			return settings[i].Category < settings[j].Category
		}
		return settings[i].Key < settings[j].Key
	})
	return settings, nil
}

func (s *Store) UpsertSetting(_ context.Context, setting model.SystemSetting) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.settings[setting.Key] = setting
	return nil
}

func (s *Store) InsertSettingIfMissing(_ context.Context, setting model.SystemSetting) (bool, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.settings[setting.Key]; exists {
		return false, nil
	}
	s.settings[setting.Key] = setting
	return true, nil
}
