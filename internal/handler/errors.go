package handler

import (
	"errors"
	"net/http"

	"github.com/avc-dev/shlink-dashboard/internal/captcha"
	"github.com/avc-dev/shlink-dashboard/internal/jobs"
	"github.com/avc-dev/shlink-dashboard/internal/service"
	"github.com/avc-dev/shlink-dashboard/internal/shlink"
	"github.com/avc-dev/shlink-dashboard/internal/usecase"
	"go.uber.org/zap"
)

type errorResponse struct {
	Error string `json:"error"`
}

// statusOf сопоставляет ошибку бизнес-слоя со статусом HTTP; 0 значит неизвестную ошибку
func statusOf(err error) int {
	switch {
	case errors.Is(err, errBadRequest),
		errors.Is(err, usecase.ErrEmptyURL),
		errors.Is(err, usecase.ErrInvalidURL),
		errors.Is(err, usecase.ErrRemoteRejected),
		errors.Is(err, service.ErrWeakPassword),
		errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrCaptchaFailed),
		errors.Is(err, captcha.ErrMissingToken),
		errors.Is(err, service.ErrTOTPNotSetup),
		errors.Is(err, service.ErrOAuthState),
		errors.Is(err, service.ErrOAuthProfile),
		errors.Is(err, service.ErrInvalidRole):
		return http.StatusBadRequest

	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidOTP),
		errors.Is(err, service.ErrNoPending2FA),
		errors.Is(err, service.ErrWebAuthnFailed):
		return http.StatusUnauthorized

	case errors.Is(err, service.ErrRegistrationClosed),
		errors.Is(err, usecase.ErrSelfModification):
		return http.StatusForbidden

	case errors.Is(err, usecase.ErrShortURLNotFound),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrCredentialAbsent),
		errors.Is(err, service.ErrUnknownProvider),
		errors.Is(err, jobs.ErrJobNotFound):
		return http.StatusNotFound

	case errors.Is(err, usecase.ErrCodeConflict),
		errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, jobs.ErrJobNotFailed),
		errors.Is(err, jobs.ErrJobRunning):
		return http.StatusConflict

	case errors.Is(err, service.ErrAccountLocked):
		return http.StatusLocked

	case errors.Is(err, service.ErrUnknownSetting),
		errors.Is(err, service.ErrInvalidSetting):
		return http.StatusUnprocessableEntity

	case errors.Is(err, usecase.ErrServiceUnavailable):
		return http.StatusBadGateway

	case errors.Is(err, jobs.ErrQueueClosed):
		return http.StatusServiceUnavailable
	}

	// Необработанный отказ Shlink, например при выгрузке списка для синхронизации
	var apiErr *shlink.APIError
	if errors.As(err, &apiErr) {
		return http.StatusBadGateway
	}
	return 0
}

// handleError отвечает клиенту по ошибке; неизвестные ошибки скрываются за 500
func (h *Handler) handleError(w http.ResponseWriter, err error) {
	status := statusOf(err)
	if status == 0 {
		h.logger.Error("unexpected error", zap.Error(err))
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
		return
	}

	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", zap.Int("status", status), zap.Error(err))
	} else {
		h.logger.Debug("request rejected", zap.Int("status", status), zap.Error(err))
	}
	h.writeJSON(w, status, errorResponse{Error: err.Error()})
}
