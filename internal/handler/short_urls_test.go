package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avc-dev/shlink-dashboard/internal/handler/mocks"
	"github.com/avc-dev/shlink-dashboard/internal/model"
	"github.com/avc-dev/shlink-dashboard/internal/shlink"
	"github.com/avc-dev/shlink-dashboard/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestListShortURLs(t *testing.T) {
	uc := mocks.NewMockShortURLUsecase(t)
	uc.EXPECT().List(mock.Anything, "user-1").Return([]model.ShortURL{
		{ShortCode: "abc", LongURL: "https://example.com", UserID: "user-1"},
	}, nil).Once()

	h := New(Deps{ShortURLs: uc}, zap.NewNop())

	w := httptest.NewRecorder()
	h.ListShortURLs(w, newRequest(http.MethodGet, "/api/short-urls", "", "user-1", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var got []model.ShortURL
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	require.Len(t, got, 1)
	assert.Equal(t, model.Code("abc"), got[0].ShortCode)
}

func TestListShortURLs_EmptyIsArray(t *testing.T) {
	uc := mocks.NewMockShortURLUsecase(t)
	uc.EXPECT().List(mock.Anything, "user-1").Return(nil, nil).Once()

	h := New(Deps{ShortURLs: uc}, zap.NewNop())

	w := httptest.NewRecorder()
	h.ListShortURLs(w, newRequest(http.MethodGet, "/api/short-urls", "", "user-1", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestListShortURLs_Unauthorized(t *testing.T) {
	h := New(Deps{ShortURLs: mocks.NewMockShortURLUsecase(t)}, zap.NewNop())

	w := httptest.NewRecorder()
	h.ListShortURLs(w, newRequest(http.MethodGet, "/api/short-urls", "", "", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateShortURL(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		ucErr      error
		callsUC    bool
		wantStatus int
	}{
		{name: "created", body: `{"long_url":"https://example.com","tags":["a"]}`, callsUC: true, wantStatus: http.StatusCreated},
		{name: "malformed json", body: `{"long_url":`, wantStatus: http.StatusBadRequest},
		{name: "unknown field", body: `{"url":"https://example.com"}`, wantStatus: http.StatusBadRequest},
		{name: "invalid url", body: `{"long_url":"nope"}`, ucErr: usecase.ErrInvalidURL, callsUC: true, wantStatus: http.StatusBadRequest},
		{name: "slug taken", body: `{"long_url":"https://example.com","custom_slug":"x"}`, ucErr: usecase.ErrCodeConflict, callsUC: true, wantStatus: http.StatusConflict},
		{name: "shlink down", body: `{"long_url":"https://example.com"}`, ucErr: usecase.ErrServiceUnavailable, callsUC: true, wantStatus: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := mocks.NewMockShortURLUsecase(t)
			if tt.callsUC {
				uc.EXPECT().Create(mock.Anything, "user-1", mock.AnythingOfType("usecase.CreateInput")).
					Return(model.ShortURL{ShortCode: "abc"}, tt.ucErr).Once()
			}

			h := New(Deps{ShortURLs: uc}, zap.NewNop())

			w := httptest.NewRecorder()
			h.CreateShortURL(w, newRequest(http.MethodPost, "/api/short-urls", tt.body, "user-1", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestUpdateShortURL_PassesOnlyPresentFields(t *testing.T) {
	uc := mocks.NewMockShortURLUsecase(t)
	uc.EXPECT().Update(mock.Anything, "user-1", model.Code("abc"), mock.Anything).
		Run(func(_ context.Context, _ string, _ model.Code, in usecase.UpdateInput) {
			require.NotNil(t, in.Title)
			assert.Equal(t, "new", *in.Title)
			assert.Nil(t, in.LongURL)
			assert.Nil(t, in.Tags)
		}).
		Return(model.ShortURL{ShortCode: "abc", Title: "new"}, nil).Once()

	h := New(Deps{ShortURLs: uc}, zap.NewNop())

	w := httptest.NewRecorder()
	req := newRequest(http.MethodPatch, "/api/short-urls/abc", `{"title":"new"}`, "user-1", map[string]string{"code": "abc"})
	h.UpdateShortURL(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateShortURL_NotFound(t *testing.T) {
	uc := mocks.NewMockShortURLUsecase(t)
	uc.EXPECT().Update(mock.Anything, "user-1", model.Code("gone"), mock.Anything).
		Return(model.ShortURL{}, usecase.ErrShortURLNotFound).Once()

	h := New(Deps{ShortURLs: uc}, zap.NewNop())

	w := httptest.NewRecorder()
	req := newRequest(http.MethodPatch, "/api/short-urls/gone", `{"title":"x"}`, "user-1", map[string]string{"code": "gone"})
	h.UpdateShortURL(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteShortURL(t *testing.T) {
	uc := mocks.NewMockShortURLUsecase(t)
	uc.EXPECT().Delete(mock.Anything, "user-1", model.Code("abc")).Return(nil).Once()

	h := New(Deps{ShortURLs: uc}, zap.NewNop())

	w := httptest.NewRecorder()
	h.DeleteShortURL(w, newRequest(http.MethodDelete, "/api/short-urls/abc", "", "user-1", map[string]string{"code": "abc"}))

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRedirectRules(t *testing.T) {
	uc := mocks.NewMockShortURLUsecase(t)
	uc.EXPECT().RedirectRules(mock.Anything, "user-1", model.Code("abc")).
		Return(&shlink.RedirectRules{DefaultLongURL: "https://example.com"}, nil).Once()

	h := New(Deps{ShortURLs: uc}, zap.NewNop())

	w := httptest.NewRecorder()
	h.RedirectRules(w, newRequest(http.MethodGet, "/api/short-urls/abc/redirect-rules", "", "user-1", map[string]string{"code": "abc"}))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "https://example.com")
}
