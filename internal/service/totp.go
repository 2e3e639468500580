package service

import (
	"context"
	"fmt"

	"github.com/avc-dev/shlink-dashboard/internal/model"
	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
	"go.uber.org/zap"
)

var totpValidateOpts = totp.ValidateOpts{
	Period:    30,
	Skew:      1,
	Digits:    otp.DigitsSix,
	Algorithm: otp.AlgorithmSHA1,
}

// TOTPSetup секрет и otpauth:// ссылка для приложения-аутентификатора
type TOTPSetup struct {
	Secret string `json:"secret"`
	URL    string `json:"otpauth_url"`
}

// SetupTOTP генерирует новый секрет; второй фактор включается только после EnableTOTP
func (a *AuthService) SetupTOTP(ctx context.Context, userID string) (TOTPSetup, error) {
	user, err := a.GetUser(ctx, userID)
	if err != nil {
		return TOTPSetup{}, err
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      a.issuer,
		AccountName: user.Email,
	})
	if err != nil {
		return TOTPSetup{}, fmt.Errorf("failed to generate totp secret: %w", err)
	}

	user.OTPSecret = key.Secret()
	user.OTPEnabled = false
	user.UpdatedAt = a.now()
	if err := a.users.UpdateUser(ctx, user); err != nil {
		return TOTPSetup{}, fmt.Errorf("failed to save totp secret: %w", err)
	}

	return TOTPSetup{Secret: key.Secret(), URL: key.URL()}, nil
}

func (a *AuthService) validateCode(user model.User, code string) error {
	ok, err := totp.ValidateCustom(code, user.OTPSecret, a.now(), totpValidateOpts)
	if err != nil || !ok {
		return ErrInvalidOTP
	}
	return nil
}

// EnableTOTP включает второй фактор после проверки первого кода
func (a *AuthService) EnableTOTP(ctx context.Context, userID, code string) error {
	user, err := a.GetUser(ctx, userID)
	if err != nil {
		return err
	}
	if user.OTPSecret == "" {
		return ErrTOTPNotSetup
	}
	if err := a.validateCode(user, code); err != nil {
		return err
	}

	user.OTPEnabled = true
	user.UpdatedAt = a.now()
	if err := a.users.UpdateUser(ctx, user); err != nil {
		return fmt.Errorf("failed to enable totp: %w", err)
	}
	a.logger.Info("totp enabled", zap.String("user_id", userID))
	return nil
}

func (a *AuthService) DisableTOTP(ctx context.Context, userID string) error {
	user, err := a.GetUser(ctx, userID)
	if err != nil {
		return err
	}

	user.OTPSecret = ""
	user.OTPEnabled = false
	user.UpdatedAt = a.now()
	if err := a.users.UpdateUser(ctx, user); err != nil {
		return fmt.Errorf("failed to disable totp: %w", err)
	}
	a.logger.Info("totp disabled", zap.String("user_id", userID))
	return nil
}

// VerifyTOTP проверяет код второго фактора для ожидающего входа
func (a *AuthService) VerifyTOTP(ctx context.Context, pendingUserID, code string) (model.User, error) {
	user, err := a.GetUser(ctx, pendingUserID)
	if err != nil {
		return model.User{}, err
	}
	if !user.OTPEnabled || user.OTPSecret == "" {
		return model.User{}, ErrTOTPNotSetup
	}
	if err := a.validateCode(user, code); err != nil {
		return model.User{}, err
	}
	return user, nil
}
