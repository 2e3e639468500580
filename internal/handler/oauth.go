package handler

import (
	"fmt"
	"net/http"

	"github.com/avc-dev/shlink-dashboard/internal/service"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// OAuthLogin перенаправляет на страницу согласия провайдера
func (h *Handler) OAuthLogin(w http.ResponseWriter, r *http.Request) {
	url, err := h.oauth.AuthCodeURL(w, chi.URLParam(r, "provider"))
	if err != nil {
		h.handleError(w, err)
		return
	}

	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

// OAuthCallback принимает код от провайдера, находит или создает пользователя
// и открывает сессию либо ожидание второго фактора.
func (h *Handler) OAuthCallback(w http.ResponseWriter, r *http.Request) {
	provider := chi.URLParam(r, "provider")

	if err := h.oauth.CheckState(w, r); err != nil {
		h.handleError(w, err)
		return
	}

	query := r.URL.Query()
	if reason := query.Get("error"); reason != "" {
		h.logger.Warn("oauth provider returned error",
			zap.String("provider", provider),
			zap.String("error", reason),
		)
		h.handleError(w, fmt.Errorf("%w: %s", service.ErrOAuthState, reason))
		return
	}

	user, err := h.oauth.Exchange(r.Context(), provider, query.Get("code"))
	if err != nil {
		h.handleError(w, err)
		return
	}

	pending, err := h.auth.RequiresSecondFactor(r.Context(), user)
	if err != nil {
		h.handleError(w, err)
		return
	}

	if pending {
		err = h.auth.StartPending(w, user.ID)
	} else {
		err = h.auth.StartSession(w, user)
	}
	if err != nil {
		h.handleError(w, err)
		return
	}

	http.Redirect(w, r, h.afterLoginURL, http.StatusFound)
}
