package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/avc-dev/shlink-dashboard/internal/model"
	"github.com/avc-dev/shlink-dashboard/internal/service"
	"go.uber.org/zap"
)

// contextKey ключ значений, которые middleware кладет в контекст запроса
type contextKey string

const (
	UserIDContextKey        contextKey = "user_id"
	RoleContextKey          contextKey = "role"
	PendingUserIDContextKey contextKey = "pending_user_id"
)

// TokenParser проверяет JWT из кук сессии и второго фактора
type TokenParser interface {
	ParseSession(token string) (service.SessionClaims, error)
	ParsePending(token string) (string, error)
}

// AuthMiddleware представляет миддлвар для аутентификации пользователей
type AuthMiddleware struct {
	tokens TokenParser
	logger *zap.Logger
}

// NewAuthMiddleware создает новый экземпляр AuthMiddleware
func NewAuthMiddleware(tokens TokenParser, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		tokens: tokens,
		logger: logger,
	}
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// RequireAuth пропускает запрос только с действующей кукой сессии
// и кладет user_id и роль в контекст
func (am *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(service.SessionCookie)
		if err != nil || cookie.Value == "" {
			unauthorized(w, "authentication required")
			return
		}

		claims, err := am.tokens.ParseSession(cookie.Value)
		if err != nil {
			am.logger.Debug("invalid session token", zap.Error(err))
			unauthorized(w, "invalid or expired session")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDContextKey, claims.UserID)
		ctx = context.WithValue(ctx, RoleContextKey, claims.Role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin пропускает только администраторов; ставится после RequireAuth
func (am *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, _ := r.Context().Value(RoleContextKey).(model.Role)
		if role != model.RoleAdmin {
			userID, _ := GetUserIDFromContext(r.Context())
			am.logger.Warn("admin access denied", zap.String("user_id", userID), zap.String("uri", r.RequestURI))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "admin role required"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequirePending2FA пропускает запрос с действующей кукой ожидания второго фактора
func (am *AuthMiddleware) RequirePending2FA(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(service.PendingCookie)
		if err != nil || cookie.Value == "" {
			unauthorized(w, "no pending two-factor login")
			return
		}

		userID, err := am.tokens.ParsePending(cookie.Value)
		if err != nil {
			am.logger.Debug("invalid pending token", zap.Error(err))
			unauthorized(w, "two-factor login expired")
			return
		}

		ctx := context.WithValue(r.Context(), PendingUserIDContextKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserIDFromContext извлекает user_id из контекста запроса
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDContextKey).(string)
	return userID, ok && userID != ""
}

func GetRoleFromContext(ctx context.Context) (model.Role, bool) {
	role, ok := ctx.Value(RoleContextKey).(model.Role)
	return role, ok
}

// GetPendingUserIDFromContext извлекает пользователя, ожидающего второй фактор
func GetPendingUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(PendingUserIDContextKey).(string)
	return userID, ok && userID != ""
}

// WithUser кладет пользователя в контекст так же, как RequireAuth
func WithUser(ctx context.Context, userID string, role model.Role) context.Context {
	ctx = context.WithValue(ctx, UserIDContextKey, userID)
	return context.WithValue(ctx, RoleContextKey, role)
}

// WithPendingUser кладет пользователя, ожидающего второй фактор, в контекст
func WithPendingUser(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, PendingUserIDContextKey, userID)
}
