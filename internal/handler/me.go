package handler

import (
	"net/http"
	"strconv"

	"github.com/avc-dev/shlink-dashboard/internal/model"
	"github.com/go-chi/chi/v5"
)

// Me текущий пользователь
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	user, err := h.auth.GetUser(r.Context(), userID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, user)
}

func (h *Handler) SetupTOTP(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	setup, err := h.auth.SetupTOTP(r.Context(), userID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, setup)
}

func (h *Handler) EnableTOTP(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req codeRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, err)
		return
	}

	if err := h.auth.EnableTOTP(r.Context(), userID, req.Code); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) DisableTOTP(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	if err := h.auth.DisableTOTP(r.Context(), userID); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListWebAuthn активные ключи пользователя
func (h *Handler) ListWebAuthn(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	creds, err := h.webauthn.ListCredentials(r.Context(), userID)
	if err != nil {
		h.handleError(w, err)
		return
	}
	if creds == nil {
		creds = []model.WebauthnCredential{}
	}

	h.writeJSON(w, http.StatusOK, creds)
}

func (h *Handler) BeginWebAuthnRegistration(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	creation, err := h.webauthn.BeginRegistration(r.Context(), userID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, creation)
}

// FinishWebAuthnRegistration имя ключа передается в ?nickname=, тело разбирает webauthn
func (h *Handler) FinishWebAuthnRegistration(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	cred, err := h.webauthn.FinishRegistration(r.Context(), userID, r.URL.Query().Get("nickname"), r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, cred)
}

func (h *Handler) DeleteWebAuthn(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.handleError(w, errBadRequest)
		return
	}

	if err := h.webauthn.DeactivateCredential(r.Context(), userID, id); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
