package handler

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Ping проверяет соединение с базой данных
func (h *Handler) Ping(w http.ResponseWriter, r *http.Request) {
	if h.db == nil {
		h.logger.Error("database is not configured")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.logger.Error("database ping failed", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// Teapot отвечает 418
func (h *Handler) Teapot(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusTeapot)
	_, _ = w.Write([]byte("I'm a teapot"))
}
