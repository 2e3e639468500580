package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avc-dev/shlink-dashboard/internal/model"
	"github.com/avc-dev/shlink-dashboard/internal/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeTokens struct {
	sessions map[string]service.SessionClaims
	pending  map[string]string
}

func (f fakeTokens) ParseSession(token string) (service.SessionClaims, error) {
	claims, ok := f.sessions[token]
	if !ok {
		return service.SessionClaims{}, errors.New("invalid token")
	}
	return claims, nil
}

func (f fakeTokens) ParsePending(token string) (string, error) {
	userID, ok := f.pending[token]
	if !ok {
		return "", service.ErrNoPending2FA
	}
	return userID, nil
}

func newTestAuthMiddleware() *AuthMiddleware {
	return NewAuthMiddleware(fakeTokens{
		sessions: map[string]service.SessionClaims{
			"admin-token": {UserID: "admin", Role: model.RoleAdmin},
			"user-token":  {UserID: "bob", Role: model.RoleNormalUser},
		},
		pending: map[string]string{"pending-token": "carol"},
	}, zap.NewNop())
}

func echoUser() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, _ := GetUserIDFromContext(r.Context())
		role, _ := GetRoleFromContext(r.Context())
		pending, _ := GetPendingUserIDFromContext(r.Context())
		_, _ = w.Write([]byte(userID + "|" + string(role) + "|" + pending))
	})
}

func TestAuthMiddleware_RequireAuth(t *testing.T) {
	am := newTestAuthMiddleware()

	tests := []struct {
		name       string
		cookie     *http.Cookie
		wantStatus int
		wantBody   string
	}{
		{name: "no cookie", wantStatus: http.StatusUnauthorized},
		{name: "invalid token", cookie: &http.Cookie{Name: service.SessionCookie, Value: "forged"}, wantStatus: http.StatusUnauthorized},
		{name: "pending cookie is not a session", cookie: &http.Cookie{Name: service.PendingCookie, Value: "pending-token"}, wantStatus: http.StatusUnauthorized},
		{name: "valid session", cookie: &http.Cookie{Name: service.SessionCookie, Value: "user-token"}, wantStatus: http.StatusOK, wantBody: "bob|normal_user|"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			rec := httptest.NewRecorder()

			am.RequireAuth(echoUser()).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestAuthMiddleware_RequireAdmin(t *testing.T) {
	am := newTestAuthMiddleware()
	chain := am.RequireAuth(am.RequireAdmin(echoUser()))

	req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	req.AddCookie(&http.Cookie{Name: service.SessionCookie, Value: "user-token"})
	rec := httptest.NewRecorder()
	chain.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	req.AddCookie(&http.Cookie{Name: service.SessionCookie, Value: "admin-token"})
	rec = httptest.NewRecorder()
	chain.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin|admin|", rec.Body.String())
}

func TestAuthMiddleware_RequirePending2FA(t *testing.T) {
	am := newTestAuthMiddleware()

	req := httptest.NewRequest(http.MethodPost, "/auth/2fa/totp", nil)
	req.AddCookie(&http.Cookie{Name: service.PendingCookie, Value: "pending-token"})
	rec := httptest.NewRecorder()
	am.RequirePending2FA(echoUser()).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "||carol", rec.Body.String())

	req = httptest.NewRequest(http.MethodPost, "/auth/2fa/totp", nil)
	req.AddCookie(&http.Cookie{Name: service.SessionCookie, Value: "user-token"})
	rec = httptest.NewRecorder()
	am.RequirePending2FA(echoUser()).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
