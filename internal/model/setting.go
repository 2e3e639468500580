package model

import "time"

// SettingType тип значения настройки
type SettingType string

const (
	SettingString  SettingType = "string"
	SettingInteger SettingType = "integer"
	SettingBoolean SettingType = "boolean"
	SettingJSON    SettingType = "json"
)

// SystemSetting запись таблицы динамических настроек
type SystemSetting struct {
	Key         string      `json:"key_name" yaml:"key"`
	Value       string      `json:"value" yaml:"value"`
	Type        SettingType `json:"value_type" yaml:"type"`
	Category    string      `json:"category" yaml:"category"`
	Description string      `json:"description" yaml:"description"`
	Enabled     bool        `json:"enabled" yaml:"enabled"`
	UpdatedAt   time.Time   `json:"updated_at" yaml:"-"`
}
