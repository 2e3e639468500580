package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/avc-dev/shlink-dashboard/internal/handler/mocks"
	"github.com/avc-dev/shlink-dashboard/internal/middleware"
	"github.com/avc-dev/shlink-dashboard/internal/model"
	"github.com/avc-dev/shlink-dashboard/internal/service"
	"github.com/go-webauthn/webauthn/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func pendingRequest(method, target, body, userID string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	return req.WithContext(middleware.WithPendingUser(req.Context(), userID))
}

func TestRegister(t *testing.T) {
	user := model.User{ID: "user-1", Email: "a@example.com", Role: model.RoleNormalUser}

	auth := mocks.NewMockAuthService(t)
	auth.EXPECT().Register(mock.Anything, service.RegisterInput{
		Email:        "a@example.com",
		Password:     "secret-password",
		CaptchaToken: "tok",
		RemoteIP:     "192.0.2.1",
	}).Return(user, nil).Once()
	auth.EXPECT().StartSession(mock.Anything, user).Return(nil).Once()

	h := New(Deps{Auth: auth}, zap.NewNop())

	req := newRequest(http.MethodPost, "/auth/register",
		`{"email":"a@example.com","password":"secret-password","captcha_token":"tok"}`, "", nil)
	req.RemoteAddr = "192.0.2.1:5555"
	w := httptest.NewRecorder()
	h.Register(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestRegister_Closed(t *testing.T) {
	auth := mocks.NewMockAuthService(t)
	auth.EXPECT().Register(mock.Anything, mock.Anything).Return(model.User{}, service.ErrRegistrationClosed).Once()

	h := New(Deps{Auth: auth}, zap.NewNop())

	w := httptest.NewRecorder()
	h.Register(w, newRequest(http.MethodPost, "/auth/register", `{"email":"a@example.com","password":"x"}`, "", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestLogin(t *testing.T) {
	user := model.User{ID: "user-1", Email: "a@example.com"}

	tests := []struct {
		name       string
		result     service.LoginResult
		err        error
		setup      func(auth *mocks.MockAuthService)
		wantStatus int
		wantBody   string
	}{
		{
			name:   "session started",
			result: service.LoginResult{User: user},
			setup: func(auth *mocks.MockAuthService) {
				auth.EXPECT().StartSession(mock.Anything, user).Return(nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "second factor required",
			result: service.LoginResult{User: user, Pending2FA: true},
			setup: func(auth *mocks.MockAuthService) {
				auth.EXPECT().StartPending(mock.Anything, "user-1").Return(nil).Once()
			},
			wantStatus: http.StatusAccepted,
			wantBody:   `{"pending_2fa":true}`,
		},
		{
			name:       "wrong password",
			err:        service.ErrInvalidCredentials,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "locked",
			err:        service.ErrAccountLocked,
			wantStatus: http.StatusLocked,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := mocks.NewMockAuthService(t)
			auth.EXPECT().Login(mock.Anything, "a@example.com", "pw").Return(tt.result, tt.err).Once()
			if tt.setup != nil {
				tt.setup(auth)
			}

			h := New(Deps{Auth: auth}, zap.NewNop())

			w := httptest.NewRecorder()
			h.Login(w, newRequest(http.MethodPost, "/auth/login", `{"email":"a@example.com","password":"pw"}`, "", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, w.Body.String())
			}
		})
	}
}

func TestLogout(t *testing.T) {
	auth := mocks.NewMockAuthService(t)
	auth.EXPECT().Logout(mock.Anything).Return().Once()

	h := New(Deps{Auth: auth}, zap.NewNop())

	w := httptest.NewRecorder()
	h.Logout(w, httptest.NewRequest(http.MethodPost, "/auth/logout", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestVerifyTOTP(t *testing.T) {
	user := model.User{ID: "user-1"}

	auth := mocks.NewMockAuthService(t)
	auth.EXPECT().VerifyTOTP(mock.Anything, "user-1", "123456").Return(user, nil).Once()
	auth.EXPECT().StartSession(mock.Anything, user).Return(nil).Once()

	h := New(Deps{Auth: auth}, zap.NewNop())

	w := httptest.NewRecorder()
	h.VerifyTOTP(w, pendingRequest(http.MethodPost, "/auth/2fa/totp", `{"code":"123456"}`, "user-1"))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestVerifyTOTP_InvalidCode(t *testing.T) {
	auth := mocks.NewMockAuthService(t)
	auth.EXPECT().VerifyTOTP(mock.Anything, "user-1", "000000").Return(model.User{}, service.ErrInvalidOTP).Once()

	h := New(Deps{Auth: auth}, zap.NewNop())

	w := httptest.NewRecorder()
	h.VerifyTOTP(w, pendingRequest(http.MethodPost, "/auth/2fa/totp", `{"code":"000000"}`, "user-1"))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestVerifyTOTP_NoPendingLogin(t *testing.T) {
	h := New(Deps{Auth: mocks.NewMockAuthService(t)}, zap.NewNop())

	w := httptest.NewRecorder()
	h.VerifyTOTP(w, httptest.NewRequest(http.MethodPost, "/auth/2fa/totp", strings.NewReader(`{"code":"1"}`)))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWebAuthnLogin(t *testing.T) {
	user := model.User{ID: "user-1"}

	wa := mocks.NewMockWebAuthnService(t)
	wa.EXPECT().BeginLogin(mock.Anything, "user-1").Return(&protocol.CredentialAssertion{}, nil).Once()
	wa.EXPECT().FinishLogin(mock.Anything, "user-1", mock.Anything).Return(user, nil).Once()
	auth := mocks.NewMockAuthService(t)
	auth.EXPECT().StartSession(mock.Anything, user).Return(nil).Once()

	h := New(Deps{Auth: auth, WebAuthn: wa}, zap.NewNop())

	w := httptest.NewRecorder()
	h.BeginWebAuthnLogin(w, pendingRequest(http.MethodPost, "/auth/2fa/webauthn/begin", "", "user-1"))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	h.FinishWebAuthnLogin(w, pendingRequest(http.MethodPost, "/auth/2fa/webauthn/finish", `{}`, "user-1"))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWebAuthnLogin_NoCredentials(t *testing.T) {
	wa := mocks.NewMockWebAuthnService(t)
	wa.EXPECT().BeginLogin(mock.Anything, "user-1").Return(nil, service.ErrCredentialAbsent).Once()

	h := New(Deps{WebAuthn: wa}, zap.NewNop())

	w := httptest.NewRecorder()
	h.BeginWebAuthnLogin(w, pendingRequest(http.MethodPost, "/auth/2fa/webauthn/begin", "", "user-1"))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

