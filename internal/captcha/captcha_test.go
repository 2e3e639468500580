package captcha

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifier_Verify(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "top-secret", r.PostForm.Get("secret"))
		assert.Equal(t, "203.0.113.7", r.PostForm.Get("remoteip"))

		if r.PostForm.Get("response") == "good" {
			_, _ = w.Write([]byte(`{"success": true}`))
			return
		}
		_, _ = w.Write([]byte(`{"success": false, "error-codes": ["invalid-input-response"]}`))
	}))
	defer srv.Close()

	v := NewVerifier(srv.URL, "top-secret")

	ok, err := v.Verify(context.Background(), "good", "203.0.113.7")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = v.Verify(context.Background(), "bad", "203.0.113.7")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifier_MissingToken(t *testing.T) {
	v := NewVerifier("http://127.0.0.1:1", "secret")

	_, err := v.Verify(context.Background(), "  ", "")
	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestVerifier_ProviderErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`not json`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			ok, err := NewVerifier(srv.URL, "secret").Verify(context.Background(), "token", "")
			assert.Error(t, err)
			assert.False(t, ok)
		})
	}
}
