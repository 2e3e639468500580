package config

import (
	"fmt"
	"strings"
)

// URLPrefix публичный адрес панели без завершающего слэша
type URLPrefix string

func (p URLPrefix) String() string {
	return string(p)
}

func (p *URLPrefix) Set(value string) error {
	if !strings.HasPrefix(value, "http://") && !strings.HasPrefix(value, "https://") {
		return fmt.Errorf("invalid URL prefix format: %s", value)
	}

	*p = URLPrefix(strings.TrimSuffix(value, "/"))

	return nil
}

func (p *URLPrefix) UnmarshalText(text []byte) error {
	return p.Set(string(text))
}

// Join добавляет путь к адресу панели
func (p URLPrefix) Join(path string) string {
	return string(p) + "/" + strings.TrimPrefix(path, "/")
}
