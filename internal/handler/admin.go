package handler

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/avc-dev/shlink-dashboard/internal/model"
	"github.com/avc-dev/shlink-dashboard/internal/service"
	"github.com/avc-dev/shlink-dashboard/internal/usecase"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const defaultJobsLimit = 100

type updateUserRequest struct {
	Role   *model.Role `json:"role,omitempty"`
	Unlock bool        `json:"unlock,omitempty"`
}

type updateSettingsRequest struct {
	Values  map[string]string `json:"values,omitempty"`
	Enabled map[string]bool   `json:"enabled,omitempty"`
}

type retriedResponse struct {
	Retried int `json:"retried"`
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}
	if users == nil {
		users = []model.User{}
	}

	h.writeJSON(w, http.StatusOK, users)
}

// UpdateUser меняет роль и/или снимает блокировку входа
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	actorID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req updateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, err)
		return
	}
	if req.Role == nil && !req.Unlock {
		h.handleError(w, errBadRequest)
		return
	}

	user, err := h.users.Update(r.Context(), actorID, chi.URLParam(r, "id"), usecase.UserChange{
		Role:   req.Role,
		Unlock: req.Unlock,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, user)
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	actorID, ok := h.userID(w, r)
	if !ok {
		return
	}

	if err := h.users.Delete(r.Context(), actorID, chi.URLParam(r, "id")); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListSettings настройки, сгруппированные по категориям
func (h *Handler) ListSettings(w http.ResponseWriter, r *http.Request) {
	groups, err := h.settings.List(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, groups)
}

// UpdateSettings записывает значения, сбрасывает их кэш и применяет к приложению
func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req updateSettingsRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, err)
		return
	}
	if len(req.Values) == 0 && len(req.Enabled) == 0 {
		h.handleError(w, errBadRequest)
		return
	}

	ctx := r.Context()
	err := h.settings.Apply(ctx, req.Values, req.Enabled)
	if err != nil && service.IsValidationError(err) {
		h.handleError(w, err)
		return
	}

	// Запись могла пройти частично: кэш сбрасывается и при ошибке хранилища
	touched := make([]string, 0, len(req.Values)+len(req.Enabled))
	for key := range req.Values {
		touched = append(touched, key)
	}
	for key := range req.Enabled {
		if _, ok := req.Values[key]; !ok {
			touched = append(touched, key)
		}
	}
	sort.Strings(touched)

	if ierr := h.settings.Invalidate(ctx, touched...); ierr != nil {
		h.logger.Warn("failed to invalidate settings cache", zap.Strings("keys", touched), zap.Error(ierr))
	}
	h.runtime.Reconfigure(ctx)

	if err != nil {
		h.handleError(w, err)
		return
	}

	groups, err := h.settings.List(ctx)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, groups)
}

// ListJobs задачи очереди, по умолчанию все статусы
func (h *Handler) ListJobs(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	status := model.JobStatus(query.Get("status"))
	switch status {
	case "", model.JobPending, model.JobRunning, model.JobFailed, model.JobDone:
	default:
		h.handleError(w, errBadRequest)
		return
	}

	limit := defaultJobsLimit
	if raw := query.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			h.handleError(w, errBadRequest)
			return
		}
		limit = n
	}

	list, err := h.jobs.List(r.Context(), status, limit)
	if err != nil {
		h.handleError(w, err)
		return
	}
	if list == nil {
		list = []model.Job{}
	}

	h.writeJSON(w, http.StatusOK, list)
}

func (h *Handler) RetryJob(w http.ResponseWriter, r *http.Request) {
	job, err := h.jobs.Retry(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, job)
}

// RetryAllJobs переставляет в очередь все упавшие задачи
func (h *Handler) RetryAllJobs(w http.ResponseWriter, r *http.Request) {
	n, err := h.jobs.RetryAll(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, retriedResponse{Retried: n})
}

func (h *Handler) DiscardJob(w http.ResponseWriter, r *http.Request) {
	if err := h.jobs.Discard(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
