package handler

import (
	"net"
	"net/http"

	"github.com/avc-dev/shlink-dashboard/internal/middleware"
	"github.com/avc-dev/shlink-dashboard/internal/model"
	"github.com/avc-dev/shlink-dashboard/internal/service"
	"go.uber.org/zap"
)

type registerRequest struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	CaptchaToken string `json:"captcha_token,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type codeRequest struct {
	Code string `json:"code"`
}

type pendingResponse struct {
	Pending2FA bool `json:"pending_2fa"`
}

func remoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// Register создает пользователя и сразу открывает сессию
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, err)
		return
	}

	user, err := h.auth.Register(r.Context(), service.RegisterInput{
		Email:        req.Email,
		Password:     req.Password,
		CaptchaToken: req.CaptchaToken,
		RemoteIP:     remoteIP(r),
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	if err := h.auth.StartSession(w, user); err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, user)
}

// Login проверяет пароль. Если у пользователя включен второй фактор,
// выдается только кука ожидания и ответ 202.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, err)
		return
	}

	result, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.handleError(w, err)
		return
	}

	if result.Pending2FA {
		if err := h.auth.StartPending(w, result.User.ID); err != nil {
			h.handleError(w, err)
			return
		}
		h.writeJSON(w, http.StatusAccepted, pendingResponse{Pending2FA: true})
		return
	}

	if err := h.auth.StartSession(w, result.User); err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, result.User)
}

func (h *Handler) Logout(w http.ResponseWriter, _ *http.Request) {
	h.auth.Logout(w)
	w.WriteHeader(http.StatusNoContent)
}

// pendingUserID отвечает 401, если нет ожидающего второго фактора входа
func (h *Handler) pendingUserID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := middleware.GetPendingUserIDFromContext(r.Context())
	if !ok {
		h.handleError(w, service.ErrNoPending2FA)
		return "", false
	}
	return userID, true
}

func (h *Handler) completeLogin(w http.ResponseWriter, user model.User) {
	if err := h.auth.StartSession(w, user); err != nil {
		h.handleError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, user)
}

// VerifyTOTP завершает вход кодом из приложения
func (h *Handler) VerifyTOTP(w http.ResponseWriter, r *http.Request) {
	pendingID, ok := h.pendingUserID(w, r)
	if !ok {
		return
	}

	var req codeRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, err)
		return
	}

	user, err := h.auth.VerifyTOTP(r.Context(), pendingID, req.Code)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.completeLogin(w, user)
}

func (h *Handler) BeginWebAuthnLogin(w http.ResponseWriter, r *http.Request) {
	pendingID, ok := h.pendingUserID(w, r)
	if !ok {
		return
	}

	assertion, err := h.webauthn.BeginLogin(r.Context(), pendingID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, assertion)
}

// FinishWebAuthnLogin тело запроса разбирает библиотека webauthn
func (h *Handler) FinishWebAuthnLogin(w http.ResponseWriter, r *http.Request) {
	pendingID, ok := h.pendingUserID(w, r)
	if !ok {
		return
	}

	user, err := h.webauthn.FinishLogin(r.Context(), pendingID, r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.logger.Info("webauthn login completed", zap.String("user_id", user.ID))
	h.completeLogin(w, user)
}
