package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avc-dev/shlink-dashboard/internal/cache"
	"github.com/avc-dev/shlink-dashboard/internal/handler/mocks"
	"github.com/avc-dev/shlink-dashboard/internal/jobs"
	"github.com/avc-dev/shlink-dashboard/internal/model"
	"github.com/avc-dev/shlink-dashboard/internal/service"
	"github.com/avc-dev/shlink-dashboard/internal/store"
	"github.com/avc-dev/shlink-dashboard/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestListUsers(t *testing.T) {
	users := mocks.NewMockUserAdmin(t)
	users.EXPECT().List(mock.Anything).Return([]model.User{{ID: "u1"}, {ID: "u2"}}, nil).Once()

	h := New(Deps{Users: users}, zap.NewNop())

	w := httptest.NewRecorder()
	h.ListUsers(w, newRequest(http.MethodGet, "/admin/users", "", "admin", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"u2"`)
}

func TestUpdateUser(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(users *mocks.MockUserAdmin)
		wantStatus int
	}{
		{
			name: "promote",
			body: `{"role":"admin"}`,
			setup: func(users *mocks.MockUserAdmin) {
				users.EXPECT().Update(mock.Anything, "admin", "u1", mock.MatchedBy(func(c usecase.UserChange) bool {
					return c.Role != nil && *c.Role == model.RoleAdmin && !c.Unlock
				})).Return(model.User{ID: "u1", Role: model.RoleAdmin}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "unlock",
			body: `{"unlock":true}`,
			setup: func(users *mocks.MockUserAdmin) {
				users.EXPECT().Update(mock.Anything, "admin", "u1", usecase.UserChange{Unlock: true}).
					Return(model.User{ID: "u1"}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "promote and unlock in one call",
			body: `{"role":"admin","unlock":true}`,
			setup: func(users *mocks.MockUserAdmin) {
				users.EXPECT().Update(mock.Anything, "admin", "u1", mock.MatchedBy(func(c usecase.UserChange) bool {
					return c.Role != nil && *c.Role == model.RoleAdmin && c.Unlock
				})).Return(model.User{ID: "u1", Role: model.RoleAdmin}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "self demotion",
			body: `{"role":"normal_user"}`,
			setup: func(users *mocks.MockUserAdmin) {
				users.EXPECT().Update(mock.Anything, "admin", "u1", mock.Anything).
					Return(model.User{}, usecase.ErrSelfModification).Once()
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "nothing to change",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := mocks.NewMockUserAdmin(t)
			if tt.setup != nil {
				tt.setup(users)
			}

			h := New(Deps{Users: users}, zap.NewNop())

			w := httptest.NewRecorder()
			h.UpdateUser(w, newRequest(http.MethodPatch, "/admin/users/u1", tt.body, "admin", map[string]string{"id": "u1"}))

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestDeleteUser(t *testing.T) {
	users := mocks.NewMockUserAdmin(t)
	users.EXPECT().Delete(mock.Anything, "admin", "u1").Return(nil).Once()

	h := New(Deps{Users: users}, zap.NewNop())

	w := httptest.NewRecorder()
	h.DeleteUser(w, newRequest(http.MethodDelete, "/admin/users/u1", "", "admin", map[string]string{"id": "u1"}))

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestUpdateSettings_AppliesChanges(t *testing.T) {
	settings := mocks.NewMockSettingsAdmin(t)
	settings.EXPECT().Apply(mock.Anything, map[string]string{"app.timezone": "Europe/Berlin"}, map[string]bool(nil)).Return(nil).Once()
	settings.EXPECT().Invalidate(mock.Anything, "app.timezone").Return(nil).Once()
	settings.EXPECT().List(mock.Anything).Return([]service.SettingGroup{{Category: "general"}}, nil).Once()
	runtime := mocks.NewMockReconfigurer(t)
	runtime.EXPECT().Reconfigure(mock.Anything).Return().Once()

	h := New(Deps{Settings: settings, Runtime: runtime}, zap.NewNop())

	w := httptest.NewRecorder()
	h.UpdateSettings(w, newRequest(http.MethodPatch, "/admin/settings", `{"values":{"app.timezone":"Europe/Berlin"}}`, "admin", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"general"`)
}

func TestUpdateSettings_ToggleOnly(t *testing.T) {
	settings := mocks.NewMockSettingsAdmin(t)
	settings.EXPECT().Apply(mock.Anything, map[string]string(nil), map[string]bool{"captcha.enabled": false}).Return(nil).Once()
	settings.EXPECT().Invalidate(mock.Anything, "captcha.enabled").Return(nil).Once()
	settings.EXPECT().List(mock.Anything).Return(nil, nil).Once()
	runtime := mocks.NewMockReconfigurer(t)
	runtime.EXPECT().Reconfigure(mock.Anything).Return().Once()

	h := New(Deps{Settings: settings, Runtime: runtime}, zap.NewNop())

	w := httptest.NewRecorder()
	h.UpdateSettings(w, newRequest(http.MethodPatch, "/admin/settings", `{"enabled":{"captcha.enabled":false}}`, "admin", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateSettings_InvalidValueWritesNothing(t *testing.T) {
	settings := mocks.NewMockSettingsAdmin(t)
	settings.EXPECT().Apply(mock.Anything, mock.Anything, mock.Anything).Return(service.ErrInvalidSetting).Once()

	h := New(Deps{Settings: settings, Runtime: mocks.NewMockReconfigurer(t)}, zap.NewNop())

	w := httptest.NewRecorder()
	h.UpdateSettings(w, newRequest(http.MethodPatch, "/admin/settings", `{"values":{"auth.session_timeout_minutes":"soon"}}`, "admin", nil))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestUpdateSettings_UnknownEnabledKeyKeepsStoreAndCache(t *testing.T) {
	ctx := context.Background()
	st := store.NewStore()
	require.NoError(t, st.UpsertSetting(ctx, model.SystemSetting{
		Key: service.KeyLogLevel, Value: "info", Type: model.SettingString, Enabled: true,
	}))
	settings := service.NewSettingsService(st, cache.NewMemoryCache(), zap.NewNop())
	require.Equal(t, "info", settings.GetString(ctx, service.KeyLogLevel, ""))

	h := New(Deps{Settings: settings, Runtime: mocks.NewMockReconfigurer(t)}, zap.NewNop())

	w := httptest.NewRecorder()
	h.UpdateSettings(w, newRequest(http.MethodPatch, "/admin/settings",
		`{"values":{"app.log_level":"debug"},"enabled":{"no.such.key":true}}`, "admin", nil))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	stored, err := st.GetSetting(ctx, service.KeyLogLevel)
	require.NoError(t, err)
	assert.Equal(t, "info", stored.Value)
	assert.Equal(t, "info", settings.GetString(ctx, service.KeyLogLevel, ""))
}

func TestUpdateSettings_StoreFailureStillInvalidatesAndReconfigures(t *testing.T) {
	settings := mocks.NewMockSettingsAdmin(t)
	settings.EXPECT().Apply(mock.Anything, mock.Anything, mock.Anything).Return(errors.New("connection reset")).Once()
	settings.EXPECT().Invalidate(mock.Anything, "app.log_level", "captcha.enabled").Return(nil).Once()
	runtime := mocks.NewMockReconfigurer(t)
	runtime.EXPECT().Reconfigure(mock.Anything).Return().Once()

	h := New(Deps{Settings: settings, Runtime: runtime}, zap.NewNop())

	w := httptest.NewRecorder()
	h.UpdateSettings(w, newRequest(http.MethodPatch, "/admin/settings",
		`{"values":{"app.log_level":"debug"},"enabled":{"captcha.enabled":false}}`, "admin", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestListJobs(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		status     model.JobStatus
		limit      int
		wantStatus int
	}{
		{name: "defaults", target: "/admin/jobs", limit: defaultJobsLimit, wantStatus: http.StatusOK},
		{name: "failed only", target: "/admin/jobs?status=failed&limit=5", status: model.JobFailed, limit: 5, wantStatus: http.StatusOK},
		{name: "unknown status", target: "/admin/jobs?status=lost", wantStatus: http.StatusBadRequest},
		{name: "bad limit", target: "/admin/jobs?limit=-1", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			queue := mocks.NewMockJobQueue(t)
			if tt.wantStatus == http.StatusOK {
				queue.EXPECT().List(mock.Anything, tt.status, tt.limit).Return(nil, nil).Once()
			}

			h := New(Deps{Jobs: queue}, zap.NewNop())

			w := httptest.NewRecorder()
			h.ListJobs(w, newRequest(http.MethodGet, tt.target, "", "admin", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestRetryJobs(t *testing.T) {
	queue := mocks.NewMockJobQueue(t)
	queue.EXPECT().Retry(mock.Anything, "job-1").Return(model.Job{ID: "job-1", Status: model.JobPending}, nil).Once()
	queue.EXPECT().Retry(mock.Anything, "job-2").Return(model.Job{}, jobs.ErrJobNotFailed).Once()
	queue.EXPECT().RetryAll(mock.Anything).Return(4, nil).Once()

	h := New(Deps{Jobs: queue}, zap.NewNop())

	w := httptest.NewRecorder()
	h.RetryJob(w, newRequest(http.MethodPost, "/admin/jobs/job-1/retry", "", "admin", map[string]string{"id": "job-1"}))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	h.RetryJob(w, newRequest(http.MethodPost, "/admin/jobs/job-2/retry", "", "admin", map[string]string{"id": "job-2"}))
	assert.Equal(t, http.StatusConflict, w.Code)

	w = httptest.NewRecorder()
	h.RetryAllJobs(w, newRequest(http.MethodPost, "/admin/jobs/retry", "", "admin", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"retried":4}`, w.Body.String())
}

func TestDiscardJob_Running(t *testing.T) {
	queue := mocks.NewMockJobQueue(t)
	queue.EXPECT().Discard(mock.Anything, "job-1").Return(jobs.ErrJobRunning).Once()

	h := New(Deps{Jobs: queue}, zap.NewNop())

	w := httptest.NewRecorder()
	h.DiscardJob(w, newRequest(http.MethodDelete, "/admin/jobs/job-1", "", "admin", map[string]string{"id": "job-1"}))

	assert.Equal(t, http.StatusConflict, w.Code)
}
