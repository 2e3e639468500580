package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avc-dev/shlink-dashboard/internal/handler/mocks"
	"github.com/avc-dev/shlink-dashboard/internal/model"
	"github.com/avc-dev/shlink-dashboard/internal/service"
	"github.com/avc-dev/shlink-dashboard/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestOverallStatistics_PassesPeriod(t *testing.T) {
	stats := mocks.NewMockStatisticsService(t)
	stats.EXPECT().Overall(mock.Anything, "user-1", "30d").
		Return(model.OverallStatistics{Period: "30d", TotalURLs: 2}, nil).Once()

	h := New(Deps{Statistics: stats}, zap.NewNop())

	w := httptest.NewRecorder()
	h.OverallStatistics(w, newRequest(http.MethodGet, "/statistics/overall?period=30d", "", "user-1", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_urls":2`)
}

func TestIndividualStatistics_NotOwned(t *testing.T) {
	stats := mocks.NewMockStatisticsService(t)
	stats.EXPECT().Individual(mock.Anything, "user-1", model.Code("abc"), "").
		Return(model.IndividualStatistics{}, usecase.ErrShortURLNotFound).Once()

	h := New(Deps{Statistics: stats}, zap.NewNop())

	w := httptest.NewRecorder()
	h.IndividualStatistics(w, newRequest(http.MethodGet, "/statistics/individual/abc", "", "user-1", map[string]string{"code": "abc"}))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSync_InvalidatesStatistics(t *testing.T) {
	syncer := mocks.NewMockSyncService(t)
	syncer.EXPECT().SyncUser(mock.Anything, "user-1").
		Return(service.SyncResult{Updated: 3, Deleted: 1}, nil).Once()
	stats := mocks.NewMockStatisticsService(t)
	stats.EXPECT().Invalidate(mock.Anything, "user-1").Return(nil).Once()

	h := New(Deps{Sync: syncer, Statistics: stats}, zap.NewNop())

	w := httptest.NewRecorder()
	h.Sync(w, newRequest(http.MethodPost, "/api/sync", "", "user-1", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"updated":3,"deleted":1,"failed":0}`, w.Body.String())
}

func TestSync_InvalidateFailureIsLogged(t *testing.T) {
	syncer := mocks.NewMockSyncService(t)
	syncer.EXPECT().SyncUser(mock.Anything, "user-1").Return(service.SyncResult{}, nil).Once()
	stats := mocks.NewMockStatisticsService(t)
	stats.EXPECT().Invalidate(mock.Anything, "user-1").Return(assert.AnError).Once()

	core, logs := observer.New(zap.WarnLevel)
	h := New(Deps{Sync: syncer, Statistics: stats}, zap.New(core))

	w := httptest.NewRecorder()
	h.Sync(w, newRequest(http.MethodPost, "/api/sync", "", "user-1", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, logs.FilterMessage("failed to invalidate statistics after sync").Len())
}

func TestSync_ShlinkUnavailable(t *testing.T) {
	syncer := mocks.NewMockSyncService(t)
	syncer.EXPECT().SyncUser(mock.Anything, "user-1").Return(service.SyncResult{}, usecase.ErrServiceUnavailable).Once()

	h := New(Deps{Sync: syncer, Statistics: mocks.NewMockStatisticsService(t)}, zap.NewNop())

	w := httptest.NewRecorder()
	h.Sync(w, newRequest(http.MethodPost, "/api/sync", "", "user-1", nil))

	assert.Equal(t, http.StatusBadGateway, w.Code)
}
