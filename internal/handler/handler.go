package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/avc-dev/shlink-dashboard/internal/middleware"
	"go.uber.org/zap"
)

const maxBodySize = 1 << 20

// Deps зависимости обработчиков; неиспользуемые в тесте можно оставить nil
type Deps struct {
	ShortURLs  ShortURLUsecase
	Statistics StatisticsService
	Sync       SyncService
	Auth       AuthService
	OAuth      OAuthService
	WebAuthn   WebAuthnService
	Users      UserAdmin
	Settings   SettingsAdmin
	Runtime    Reconfigurer
	Jobs       JobQueue
	DB         Pinger

	// AfterLoginURL куда вернуть браузер после OAuth входа
	AfterLoginURL string
}

// Handler HTTP обработчики панели
type Handler struct {
	shortURLs     ShortURLUsecase
	statistics    StatisticsService
	sync          SyncService
	auth          AuthService
	oauth         OAuthService
	webauthn      WebAuthnService
	users         UserAdmin
	settings      SettingsAdmin
	runtime       Reconfigurer
	jobs          JobQueue
	db            Pinger
	afterLoginURL string
	logger        *zap.Logger
}

// New создает обработчики
func New(deps Deps, logger *zap.Logger) *Handler {
	afterLogin := deps.AfterLoginURL
	if afterLogin == "" {
		afterLogin = "/"
	}
	return &Handler{
		shortURLs:     deps.ShortURLs,
		statistics:    deps.Statistics,
		sync:          deps.Sync,
		auth:          deps.Auth,
		oauth:         deps.OAuth,
		webauthn:      deps.WebAuthn,
		users:         deps.Users,
		settings:      deps.Settings,
		runtime:       deps.Runtime,
		jobs:          deps.Jobs,
		db:            deps.DB,
		afterLoginURL: afterLogin,
		logger:        logger,
	}
}

var errBadRequest = errors.New("bad request")

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

// decodeJSON читает тело запроса в dest; лишние поля запрещены
func decodeJSON(r *http.Request, dest any) error {
	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodySize))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("%w: %v", errBadRequest, err)
	}
	return nil
}

// getUserIDFromRequest извлекает user_id, положенный RequireAuth
func (h *Handler) getUserIDFromRequest(r *http.Request) (string, bool) {
	return middleware.GetUserIDFromContext(r.Context())
}

// userID отвечает 401, если в контексте нет пользователя
func (h *Handler) userID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := h.getUserIDFromRequest(r)
	if !ok {
		h.logger.Debug("user ID not found in context")
		h.writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
		return "", false
	}
	return userID, true
}
