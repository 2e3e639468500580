package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/avc-dev/shlink-dashboard/internal/captcha"
	"github.com/avc-dev/shlink-dashboard/internal/jobs"
	"github.com/avc-dev/shlink-dashboard/internal/middleware"
	dbmocks "github.com/avc-dev/shlink-dashboard/internal/mocks"
	"github.com/avc-dev/shlink-dashboard/internal/model"
	"github.com/avc-dev/shlink-dashboard/internal/service"
	"github.com/avc-dev/shlink-dashboard/internal/shlink"
	"github.com/avc-dev/shlink-dashboard/internal/usecase"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// newRequest собирает запрос с телом, пользователем и параметрами маршрута
func newRequest(method, target, body string, userID string, params map[string]string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	ctx := req.Context()
	if userID != "" {
		ctx = middleware.WithUser(ctx, userID, model.RoleNormalUser)
	}
	if len(params) > 0 {
		rctx := chi.NewRouteContext()
		for k, v := range params {
			rctx.URLParams.Add(k, v)
		}
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return req.WithContext(ctx)
}

func TestPing_Success(t *testing.T) {
	mockDB := dbmocks.NewMockDatabase(t)
	mockDB.EXPECT().Ping(mock.Anything).Return(nil).Once()

	h := New(Deps{DB: mockDB}, zap.NewNop())

	w := httptest.NewRecorder()
	h.Ping(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPing_DatabaseError(t *testing.T) {
	mockDB := dbmocks.NewMockDatabase(t)
	mockDB.EXPECT().Ping(mock.Anything).Return(assert.AnError).Once()

	h := New(Deps{DB: mockDB}, zap.NewNop())

	w := httptest.NewRecorder()
	h.Ping(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestPing_DatabaseNotConfigured(t *testing.T) {
	h := New(Deps{}, zap.NewNop())

	w := httptest.NewRecorder()
	h.Ping(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestTeapot(t *testing.T) {
	h := New(Deps{}, zap.NewNop())

	w := httptest.NewRecorder()
	h.Teapot(w, httptest.NewRequest(http.MethodGet, "/teapot", nil))

	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Equal(t, "I'm a teapot", w.Body.String())
}

func TestStatusOf(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: eof", errBadRequest), http.StatusBadRequest},
		{usecase.ErrInvalidURL, http.StatusBadRequest},
		{usecase.ErrRemoteRejected, http.StatusBadRequest},
		{captcha.ErrMissingToken, http.StatusBadRequest},
		{service.ErrInvalidCredentials, http.StatusUnauthorized},
		{fmt.Errorf("%w: expired", service.ErrNoPending2FA), http.StatusUnauthorized},
		{service.ErrRegistrationClosed, http.StatusForbidden},
		{usecase.ErrSelfModification, http.StatusForbidden},
		{usecase.ErrShortURLNotFound, http.StatusNotFound},
		{jobs.ErrJobNotFound, http.StatusNotFound},
		{usecase.ErrCodeConflict, http.StatusConflict},
		{jobs.ErrJobRunning, http.StatusConflict},
		{service.ErrAccountLocked, http.StatusLocked},
		{service.ErrInvalidSetting, http.StatusUnprocessableEntity},
		{usecase.ErrServiceUnavailable, http.StatusBadGateway},
		{jobs.ErrQueueClosed, http.StatusServiceUnavailable},
		{fmt.Errorf("failed to list remote short URLs: %w", &shlink.APIError{Status: http.StatusInternalServerError}), http.StatusBadGateway},
		{errors.New("boom"), 0},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusOf(tt.err))
		})
	}
}

func TestHandleError_HidesInternalErrors(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	h := New(Deps{}, zap.New(core))

	w := httptest.NewRecorder()
	h.handleError(w, errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")
	assert.Equal(t, 1, logs.Len())
}

func TestUserID_Missing(t *testing.T) {
	h := New(Deps{}, zap.NewNop())

	w := httptest.NewRecorder()
	_, ok := h.userID(w, httptest.NewRequest(http.MethodGet, "/api/me", nil))

	assert.False(t, ok)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
