package service

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/avc-dev/shlink-dashboard/internal/cache"
	"github.com/avc-dev/shlink-dashboard/internal/model"
	"github.com/avc-dev/shlink-dashboard/internal/repository"
	"github.com/avc-dev/shlink-dashboard/internal/store"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

//go:embed settings_defaults.yaml
var defaultSettingsYAML []byte

const (
	settingsCachePrefix = "settings:"
	settingsCacheTTL    = 10 * time.Minute
)

// SettingGroup настройки одной категории
type SettingGroup struct {
	Category string                `json:"category"`
	Settings []model.SystemSetting `json:"settings"`
}

// SettingsService типизированный доступ к таблице системных настроек с кэшем чтения
type SettingsService struct {
	store  repository.SettingStore
	cache  cache.Cache
	logger *zap.Logger
	now    func() time.Time
}

// NewSettingsService создает новый SettingsService
func NewSettingsService(settings repository.SettingStore, c cache.Cache, logger *zap.Logger) *SettingsService {
	return &SettingsService{
		store:  settings,
		cache:  c,
		logger: logger,
		now:    time.Now,
	}
}

// DefaultSettings разбирает встроенный файл значений по умолчанию
func DefaultSettings() ([]model.SystemSetting, error) {
	var defaults []model.SystemSetting
	if err := yaml.Unmarshal(defaultSettingsYAML, &defaults); err != nil {
		return nil, fmt.Errorf("failed to parse default settings: %w", err)
	}
	return defaults, nil
}

// Get возвращает настройку и признак ее наличия
func (s *SettingsService) Get(ctx context.Context, key string) (model.SystemSetting, bool, error) {
	cacheKey := settingsCachePrefix + key

	var setting model.SystemSetting
	err := s.cache.Get(ctx, cacheKey, &setting)
	if err == nil {
		return setting, true, nil
	}
	if !errors.Is(err, cache.ErrMiss) {
		s.logger.Warn("settings cache read failed", zap.String("key", key), zap.Error(err))
	}

	setting, err = s.store.GetSetting(ctx, key)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return model.SystemSetting{}, false, nil
		}
		return model.SystemSetting{}, false, fmt.Errorf("failed to read setting %s: %w", key, err)
	}

	if err := s.cache.Set(ctx, cacheKey, setting, settingsCacheTTL); err != nil {
		s.logger.Warn("settings cache write failed", zap.String("key", key), zap.Error(err))
	}
	return setting, true, nil
}

// value возвращает строковое значение включенной настройки
func (s *SettingsService) value(ctx context.Context, key string) (string, bool) {
	setting, found, err := s.Get(ctx, key)
	if err != nil {
		s.logger.Error("failed to load setting, using default", zap.String("key", key), zap.Error(err))
		return "", false
	}
	if !found || !setting.Enabled {
		return "", false
	}
	return setting.Value, true
}

// GetString возвращает значение или def если настройки нет или она выключена
func (s *SettingsService) GetString(ctx context.Context, key, def string) string {
	v, ok := s.value(ctx, key)
	if !ok {
		return def
	}
	return v
}

func (s *SettingsService) GetInt(ctx context.Context, key string, def int) int {
	v, ok := s.value(ctx, key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		s.logger.Warn("setting is not an integer, using default", zap.String("key", key), zap.String("value", v))
		return def
	}
	return n
}

func (s *SettingsService) GetBool(ctx context.Context, key string, def bool) bool {
	v, ok := s.value(ctx, key)
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		s.logger.Warn("setting is not a boolean, using default", zap.String("key", key), zap.String("value", v))
		return def
	}
	return b
}

// GetDuration принимает как "90s", так и целое число секунд
func (s *SettingsService) GetDuration(ctx context.Context, key string, def time.Duration) time.Duration {
	v, ok := s.value(ctx, key)
	if !ok {
		return def
	}
	v = strings.TrimSpace(v)
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second
	}
	s.logger.Warn("setting is not a duration, using default", zap.String("key", key), zap.String("value", v))
	return def
}

// GetJSON декодирует значение в dest; при отсутствии или ошибке dest не меняется
func (s *SettingsService) GetJSON(ctx context.Context, key string, dest any) bool {
	v, ok := s.value(ctx, key)
	if !ok {
		return false
	}
	if !json.Valid([]byte(v)) {
		s.logger.Warn("setting is not valid JSON, using default", zap.String("key", key))
		return false
	}
	if err := json.Unmarshal([]byte(v), dest); err != nil {
		s.logger.Warn("setting does not fit the target type, using default", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func validateValue(t model.SettingType, value string) error {
	var err error
	switch t {
	case model.SettingInteger:
		_, err = strconv.Atoi(strings.TrimSpace(value))
	case model.SettingBoolean:
		_, err = strconv.ParseBool(strings.TrimSpace(value))
	case model.SettingJSON:
		if !json.Valid([]byte(value)) {
			err = errors.New("not valid JSON")
		}
	case model.SettingString:
	default:
		err = fmt.Errorf("unsupported type %q", t)
	}
	if err != nil {
		return fmt.Errorf("%w: expected %s: %v", ErrInvalidSetting, t, err)
	}
	return nil
}

// Set проверяет и сохраняет значение. Кэш не сбрасывается: вызывающий обязан вызвать
// Invalidate и Runtime.Reconfigure.
func (s *SettingsService) Set(ctx context.Context, key, value string) error {
	setting, err := s.store.GetSetting(ctx, key)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("%s: %w", key, ErrUnknownSetting)
		}
		return fmt.Errorf("failed to read setting %s: %w", key, err)
	}

	if err := validateValue(setting.Type, value); err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}

	setting.Value = value
	setting.UpdatedAt = s.now()
	if err := s.store.UpsertSetting(ctx, setting); err != nil {
		return fmt.Errorf("failed to save setting %s: %w", key, err)
	}
	return nil
}

// Update сохраняет пакет значений; при ошибке валидации ничего не записывается
func (s *SettingsService) Update(ctx context.Context, values map[string]string) error {
	return s.Apply(ctx, values, nil)
}

// Apply сохраняет значения и флаги включения одним пакетом. Все ключи и значения
// проверяются до первой записи; при ошибке валидации хранилище не меняется.
func (s *SettingsService) Apply(ctx context.Context, values map[string]string, enabled map[string]bool) error {
	keys := make([]string, 0, len(values)+len(enabled))
	for key := range values {
		keys = append(keys, key)
	}
	for key := range enabled {
		if _, ok := values[key]; !ok {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	pending := make([]model.SystemSetting, 0, len(keys))
	var errs []error
	for _, key := range keys {
		setting, err := s.store.GetSetting(ctx, key)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				errs = append(errs, fmt.Errorf("%s: %w", key, ErrUnknownSetting))
				continue
			}
			return fmt.Errorf("failed to read setting %s: %w", key, err)
		}
		if value, ok := values[key]; ok {
			if err := validateValue(setting.Type, value); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", key, err))
				continue
			}
			setting.Value = value
		}
		if on, ok := enabled[key]; ok {
			setting.Enabled = on
		}
		setting.UpdatedAt = s.now()
		pending = append(pending, setting)
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	for _, setting := range pending {
		if err := s.store.UpsertSetting(ctx, setting); err != nil {
			return fmt.Errorf("failed to save setting %s: %w", setting.Key, err)
		}
	}
	return nil
}

// IsValidationError сообщает, что Apply отклонил пакет до записи
func IsValidationError(err error) bool {
	return errors.Is(err, ErrUnknownSetting) || errors.Is(err, ErrInvalidSetting)
}

// SetEnabled включает или выключает настройку
func (s *SettingsService) SetEnabled(ctx context.Context, key string, enabled bool) error {
	setting, err := s.store.GetSetting(ctx, key)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("%s: %w", key, ErrUnknownSetting)
		}
		return fmt.Errorf("failed to read setting %s: %w", key, err)
	}

	setting.Enabled = enabled
	setting.UpdatedAt = s.now()
	if err := s.store.UpsertSetting(ctx, setting); err != nil {
		return fmt.Errorf("failed to save setting %s: %w", key, err)
	}
	return nil
}

// List возвращает настройки, сгруппированные по категориям
func (s *SettingsService) List(ctx context.Context) ([]SettingGroup, error) {
	settings, err := s.store.ListSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}

	var groups []SettingGroup
	index := make(map[string]int)
	for _, setting := range settings {
		i, ok := index[setting.Category]
		if !ok {
			i = len(groups)
			index[setting.Category] = i
			groups = append(groups, SettingGroup{Category: setting.Category})
		}
		groups[i].Settings = append(groups[i].Settings, setting)
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Category < groups[j].Category
	})
	return groups, nil
}

// Seed добавляет отсутствующие настройки по умолчанию; существующие не трогает
func (s *SettingsService) Seed(ctx context.Context) (int, error) {
	defaults, err := DefaultSettings()
	if err != nil {
		return 0, err
	}

	inserted := 0
	for _, setting := range defaults {
		setting.UpdatedAt = s.now()
		ok, err := s.store.InsertSettingIfMissing(ctx, setting)
		if err != nil {
			return inserted, fmt.Errorf("failed to seed setting %s: %w", setting.Key, err)
		}
		if ok {
			inserted++
		}
	}

	s.logger.Info("settings seeded", zap.Int("inserted", inserted), zap.Int("total", len(defaults)))
	return inserted, nil
}

// Invalidate сбрасывает кэш указанных ключей, без ключей сбрасывает все настройки
func (s *SettingsService) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return s.cache.DeletePrefix(ctx, settingsCachePrefix)
	}

	cacheKeys := make([]string, len(keys))
	for i, key := range keys {
		cacheKeys[i] = settingsCachePrefix + key
	}
	return s.cache.Delete(ctx, cacheKeys...)
}
