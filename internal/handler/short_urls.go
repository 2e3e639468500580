package handler

import (
	"net/http"

	"github.com/avc-dev/shlink-dashboard/internal/model"
	"github.com/avc-dev/shlink-dashboard/internal/usecase"
	"github.com/go-chi/chi/v5"
)

// ListShortURLs возвращает активные ссылки пользователя
func (h *Handler) ListShortURLs(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	urls, err := h.shortURLs.List(r.Context(), userID)
	if err != nil {
		h.handleError(w, err)
		return
	}
	if urls == nil {
		urls = []model.ShortURL{}
	}

	h.writeJSON(w, http.StatusOK, urls)
}

func (h *Handler) CreateShortURL(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var in usecase.CreateInput
	if err := decodeJSON(r, &in); err != nil {
		h.handleError(w, err)
		return
	}

	created, err := h.shortURLs.Create(r.Context(), userID, in)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, created)
}

// UpdateShortURL частично изменяет ссылку; отсутствующие в теле поля не меняются
func (h *Handler) UpdateShortURL(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var in usecase.UpdateInput
	if err := decodeJSON(r, &in); err != nil {
		h.handleError(w, err)
		return
	}

	updated, err := h.shortURLs.Update(r.Context(), userID, model.Code(chi.URLParam(r, "code")), in)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) DeleteShortURL(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	if err := h.shortURLs.Delete(r.Context(), userID, model.Code(chi.URLParam(r, "code"))); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) RedirectRules(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	rules, err := h.shortURLs.RedirectRules(r.Context(), userID, model.Code(chi.URLParam(r, "code")))
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, rules)
}
