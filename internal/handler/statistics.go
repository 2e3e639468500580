package handler

import (
	"net/http"

	"github.com/avc-dev/shlink-dashboard/internal/model"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// OverallStatistics сводная статистика по всем активным ссылкам пользователя
func (h *Handler) OverallStatistics(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	stats, err := h.statistics.Overall(r.Context(), userID, r.URL.Query().Get("period"))
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, stats)
}

// IndividualStatistics статистика одной ссылки
func (h *Handler) IndividualStatistics(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	code := model.Code(chi.URLParam(r, "code"))
	stats, err := h.statistics.Individual(r.Context(), userID, code, r.URL.Query().Get("period"))
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, stats)
}

// Sync сверяет локальные ссылки пользователя с Shlink и сбрасывает кэш статистики
func (h *Handler) Sync(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	result, err := h.sync.SyncUser(r.Context(), userID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	if err := h.statistics.Invalidate(r.Context(), userID); err != nil {
		h.logger.Warn("failed to invalidate statistics after sync", zap.String("user_id", userID), zap.Error(err))
	}

	h.writeJSON(w, http.StatusOK, result)
}
