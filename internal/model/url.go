package model

import "time"

// Code короткий код ссылки в Shlink
type Code string

func (c Code) String() string {
	return string(c)
}

// ShortURL представляет локальную копию короткой ссылки из Shlink
type ShortURL struct {
	ID           int64      `json:"id"`
	ShortCode    Code       `json:"short_code"`
	ShortURL     string     `json:"short_url"`
	LongURL      string     `json:"long_url"`
	Title        string     `json:"title,omitempty"`
	VisitCount   int        `json:"visit_count"`
	Tags         []string   `json:"tags"`
	ValidSince   *time.Time `json:"valid_since,omitempty"`
	ValidUntil   *time.Time `json:"valid_until,omitempty"`
	MaxVisits    *int       `json:"max_visits,omitempty"`
	Crawlable    bool       `json:"crawlable"`
	ForwardQuery bool       `json:"forward_query"`
	UserID       string     `json:"user_id"`
	DeletedAt    *time.Time `json:"-"`
	SyncedAt     *time.Time `json:"synced_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// IsActive сообщает, активна ли ссылка в момент now:
// не удалена, не истекла и не исчерпала лимит переходов
func (u ShortURL) IsActive(now time.Time) bool {
	if u.DeletedAt != nil {
		return false
	}
	if u.ValidUntil != nil && !u.ValidUntil.After(now) {
		return false
	}
	if u.MaxVisits != nil && u.VisitCount >= *u.MaxVisits {
		return false
	}
	return true
}

// RemoteSnapshot содержит поля, которые синхронизация переносит из Shlink в локальную запись
type RemoteSnapshot struct {
	ShortURL     string
	LongURL      string
	Title        string
	VisitCount   int
	Tags         []string
	ValidSince   *time.Time
	ValidUntil   *time.Time
	MaxVisits    *int
	Crawlable    bool
	ForwardQuery bool
}

// Apply переносит снимок из Shlink в локальную запись
func (u *ShortURL) Apply(s RemoteSnapshot, now time.Time) {
	if s.ShortURL != "" {
		u.ShortURL = s.ShortURL
	}
	if s.LongURL != "" {
		u.LongURL = s.LongURL
	}
	u.Title = s.Title
	u.VisitCount = s.VisitCount
	u.Tags = append([]string(nil), s.Tags...)
	u.ValidSince = s.ValidSince
	u.ValidUntil = s.ValidUntil
	u.MaxVisits = s.MaxVisits
	u.Crawlable = s.Crawlable
	u.ForwardQuery = s.ForwardQuery
	u.SyncedAt = &now
	u.UpdatedAt = now
}
