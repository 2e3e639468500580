package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_LevelsByStatus(t *testing.T) {
	tests := []struct {
		status int
		level  zapcore.Level
	}{
		{status: http.StatusOK, level: zapcore.InfoLevel},
		{status: http.StatusNotFound, level: zapcore.WarnLevel},
		{status: http.StatusBadGateway, level: zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			handler := Logger(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("body"))
			}))

			req := httptest.NewRequest(http.MethodGet, "/statistics/overall?period=7d", nil)
			handler.ServeHTTP(httptest.NewRecorder(), req)

			require.Equal(t, 1, logs.Len())
			entry := logs.All()[0]
			assert.Equal(t, tt.level, entry.Level)
			fields := entry.ContextMap()
			assert.Equal(t, int64(tt.status), fields["status"])
			assert.Equal(t, int64(4), fields["size"])
			assert.Equal(t, "/statistics/overall?period=7d", fields["uri"])
		})
	}
}

func TestLogger_RequestAndUserIDs(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	am := newTestAuthMiddleware()

	handler := chimw.RequestID(am.RequireAuth(Logger(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))))

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.AddCookie(&http.Cookie{Name: "user_token", Value: "admin-token"})
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.NotEmpty(t, fields["request_id"])
	assert.Equal(t, "admin", fields["user_id"])
}
