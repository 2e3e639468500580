package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetworkAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    NetworkAddress
		wantErr bool
	}{
		{name: "host and port", value: "localhost:8080", want: NetworkAddress{Host: "localhost", Port: 8080}},
		{name: "empty host", value: ":9090", want: NetworkAddress{Host: "", Port: 9090}},
		{name: "ipv6", value: "[::1]:80", want: NetworkAddress{Host: "::1", Port: 80}},
		{name: "missing port", value: "localhost", wantErr: true},
		{name: "non numeric port", value: "localhost:http", wantErr: true},
		{name: "port out of range", value: "localhost:70000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetworkAddress
			err := addr.Set(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, addr)
		})
	}
}

func TestNetworkAddress_String(t *testing.T) {
	assert.Equal(t, "localhost:8080", NetworkAddress{Host: "localhost", Port: 8080}.String())
	assert.Equal(t, "[::1]:80", NetworkAddress{Host: "::1", Port: 80}.String())
}

func TestURLPrefix_Set(t *testing.T) {
	var p URLPrefix

	require.NoError(t, p.Set("https://dash.example.com/"))
	assert.Equal(t, "https://dash.example.com", p.String())
	assert.Equal(t, "https://dash.example.com/auth/callback", p.Join("/auth/callback"))

	assert.Error(t, p.Set("ftp://example.com"))
	assert.Error(t, p.Set("example.com"))
}

func TestLoadArgs_EnvAndFlags(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", "0.0.0.0:9000")
	t.Setenv("SHLINK_API_KEY", "from-env")
	t.Setenv("WEBAUTHN_RP_ORIGINS", "https://a.example,https://b.example")

	cfg, err := LoadArgs([]string{"-shlink-key", "from-flag", "-b", "https://dash.example.com"})
	require.NoError(t, err)

	assert.Equal(t, NetworkAddress{Host: "0.0.0.0", Port: 9000}, cfg.ServerAddress)
	assert.Equal(t, "from-flag", cfg.Shlink.APIKey)
	assert.Equal(t, URLPrefix("https://dash.example.com"), cfg.BaseURL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.WebAuthn.RPOrigins)
	assert.Equal(t, 4, cfg.Jobs.Workers)
}

func TestLoadArgs_InvalidFlag(t *testing.T) {
	_, err := LoadArgs([]string{"-a", "not-an-address"})
	assert.Error(t, err)
}
