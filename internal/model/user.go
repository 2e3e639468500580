package model

import "time"

// Role роль пользователя
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleNormalUser Role = "normal_user"
)

// Valid проверяет, что роль известна
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleNormalUser
}

// User пользователь панели
type User struct {
	ID             string     `json:"id"`
	Email          string     `json:"email"`
	PasswordHash   string     `json:"-"`
	Role           Role       `json:"role"`
	Provider       string     `json:"provider,omitempty"`
	ProviderUID    string     `json:"-"`
	OTPSecret      string     `json:"-"`
	OTPEnabled     bool       `json:"otp_enabled"`
	FailedAttempts int        `json:"-"`
	LockedAt       *time.Time `json:"locked_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// IsAdmin сообщает, является ли пользователь администратором
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// WebauthnCredential аппаратный ключ пользователя
type WebauthnCredential struct {
	ID              int64     `json:"id"`
	UserID          string    `json:"-"`
	ExternalID      string    `json:"external_id"`
	PublicKey       []byte    `json:"-"`
	AttestationType string    `json:"-"`
	SignCount       uint32    `json:"sign_count"`
	Nickname        string    `json:"nickname"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
