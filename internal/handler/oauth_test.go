package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avc-dev/shlink-dashboard/internal/handler/mocks"
	"github.com/avc-dev/shlink-dashboard/internal/model"
	"github.com/avc-dev/shlink-dashboard/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestOAuthLogin_Redirects(t *testing.T) {
	oauth := mocks.NewMockOAuthService(t)
	oauth.EXPECT().AuthCodeURL(mock.Anything, "github").Return("https://github.com/login/oauth/authorize?state=s", nil).Once()

	h := New(Deps{OAuth: oauth}, zap.NewNop())

	w := httptest.NewRecorder()
	h.OAuthLogin(w, newRequest(http.MethodGet, "/auth/oauth/github", "", "", map[string]string{"provider": "github"}))

	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, "https://github.com/login/oauth/authorize?state=s", w.Header().Get("Location"))
}

func TestOAuthLogin_UnknownProvider(t *testing.T) {
	oauth := mocks.NewMockOAuthService(t)
	oauth.EXPECT().AuthCodeURL(mock.Anything, "myspace").Return("", service.ErrUnknownProvider).Once()

	h := New(Deps{OAuth: oauth}, zap.NewNop())

	w := httptest.NewRecorder()
	h.OAuthLogin(w, newRequest(http.MethodGet, "/auth/oauth/myspace", "", "", map[string]string{"provider": "myspace"}))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOAuthCallback(t *testing.T) {
	user := model.User{ID: "user-1"}

	tests := []struct {
		name    string
		pending bool
	}{
		{name: "session", pending: false},
		{name: "second factor", pending: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oauth := mocks.NewMockOAuthService(t)
			oauth.EXPECT().CheckState(mock.Anything, mock.Anything).Return(nil).Once()
			oauth.EXPECT().Exchange(mock.Anything, "google", "the-code").Return(user, nil).Once()

			auth := mocks.NewMockAuthService(t)
			auth.EXPECT().RequiresSecondFactor(mock.Anything, user).Return(tt.pending, nil).Once()
			if tt.pending {
				auth.EXPECT().StartPending(mock.Anything, "user-1").Return(nil).Once()
			} else {
				auth.EXPECT().StartSession(mock.Anything, user).Return(nil).Once()
			}

			h := New(Deps{OAuth: oauth, Auth: auth, AfterLoginURL: "/dashboard"}, zap.NewNop())

			w := httptest.NewRecorder()
			req := newRequest(http.MethodGet, "/auth/oauth/google/callback?code=the-code&state=s", "", "", map[string]string{"provider": "google"})
			h.OAuthCallback(w, req)

			assert.Equal(t, http.StatusFound, w.Code)
			assert.Equal(t, "/dashboard", w.Header().Get("Location"))
		})
	}
}

func TestOAuthCallback_StateMismatch(t *testing.T) {
	oauth := mocks.NewMockOAuthService(t)
	oauth.EXPECT().CheckState(mock.Anything, mock.Anything).Return(service.ErrOAuthState).Once()

	h := New(Deps{OAuth: oauth}, zap.NewNop())

	w := httptest.NewRecorder()
	h.OAuthCallback(w, newRequest(http.MethodGet, "/auth/oauth/google/callback?code=c&state=bad", "", "", map[string]string{"provider": "google"}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOAuthCallback_ProviderDenied(t *testing.T) {
	oauth := mocks.NewMockOAuthService(t)
	oauth.EXPECT().CheckState(mock.Anything, mock.Anything).Return(nil).Once()

	h := New(Deps{OAuth: oauth}, zap.NewNop())

	w := httptest.NewRecorder()
	h.OAuthCallback(w, newRequest(http.MethodGet, "/auth/oauth/google/callback?error=access_denied&state=s", "", "", map[string]string{"provider": "google"}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "access_denied")
}
