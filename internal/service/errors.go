package service

import "errors"

var (
	// ErrShortURLNotFound ссылки нет или она принадлежит другому пользователю
	ErrShortURLNotFound = errors.New("short URL not found")

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountLocked      = errors.New("account is locked")
	ErrRegistrationClosed = errors.New("registration is disabled")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrWeakPassword       = errors.New("password is too short")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrCaptchaFailed      = errors.New("captcha verification failed")

	ErrInvalidOTP       = errors.New("invalid one-time code")
	ErrTOTPNotSetup     = errors.New("totp is not set up")
	ErrNoPending2FA     = errors.New("no pending two-factor login")
	ErrWebAuthnFailed   = errors.New("webauthn verification failed")
	ErrCredentialAbsent = errors.New("credential not found")

	ErrUnknownProvider = errors.New("unknown oauth provider")
	ErrOAuthState      = errors.New("oauth state mismatch")
	ErrOAuthProfile    = errors.New("oauth profile has no usable email")

	ErrUnknownSetting = errors.New("unknown setting")
	ErrInvalidSetting = errors.New("invalid setting value")

	ErrUserNotFound = errors.New("user not found")
	ErrInvalidRole  = errors.New("invalid role")
)
