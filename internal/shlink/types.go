package shlink

import (
	"time"

	"github.com/avc-dev/shlink-dashboard/internal/model"
)

// Pagination блок пагинации ответа Shlink
type Pagination struct {
	CurrentPage        int `json:"currentPage"`
	PagesCount         int `json:"pagesCount"`
	ItemsPerPage       int `json:"itemsPerPage"`
	ItemsInCurrentPage int `json:"itemsInCurrentPage"`
	TotalItems         int `json:"totalItems"`
}

// HasNext сообщает, есть ли следующая страница
func (p Pagination) HasNext() bool {
	return p.CurrentPage < p.PagesCount
}

// VisitsSummary счетчики переходов
type VisitsSummary struct {
	Total   int `json:"total"`
	NonBots int `json:"nonBots"`
	Bots    int `json:"bots"`
}

// Meta ограничения короткой ссылки
type Meta struct {
	ValidSince *time.Time `json:"validSince"`
	ValidUntil *time.Time `json:"validUntil"`
	MaxVisits  *int       `json:"maxVisits"`
}

// ShortURL короткая ссылка в представлении Shlink
type ShortURL struct {
	ShortCode     string         `json:"shortCode"`
	ShortURL      string         `json:"shortUrl"`
	LongURL       string         `json:"longUrl"`
	DateCreated   time.Time      `json:"dateCreated"`
	VisitsSummary *VisitsSummary `json:"visitsSummary,omitempty"`
	VisitsCount   int            `json:"visitsCount"`
	Tags          []string       `json:"tags"`
	Meta          Meta           `json:"meta"`
	Domain        *string        `json:"domain"`
	Title         *string        `json:"title"`
	Crawlable     bool           `json:"crawlable"`
	ForwardQuery  bool           `json:"forwardQuery"`
}

// Visits возвращает общее число переходов; старые версии Shlink отдают только visitsCount
func (u ShortURL) Visits() int {
	if u.VisitsSummary != nil {
		return u.VisitsSummary.Total
	}
	return u.VisitsCount
}

// Snapshot переводит ссылку Shlink в поля локальной записи
func (u ShortURL) Snapshot() model.RemoteSnapshot {
	title := ""
	if u.Title != nil {
		title = *u.Title
	}
	return model.RemoteSnapshot{
		ShortURL:     u.ShortURL,
		LongURL:      u.LongURL,
		Title:        title,
		VisitCount:   u.Visits(),
		Tags:         u.Tags,
		ValidSince:   u.Meta.ValidSince,
		ValidUntil:   u.Meta.ValidUntil,
		MaxVisits:    u.Meta.MaxVisits,
		Crawlable:    u.Crawlable,
		ForwardQuery: u.ForwardQuery,
	}
}

// ShortURLList страница списка коротких ссылок
type ShortURLList struct {
	Data       []ShortURL `json:"data"`
	Pagination Pagination `json:"pagination"`
}

type shortURLListResponse struct {
	ShortURLs ShortURLList `json:"shortUrls"`
}

// VisitLocation геоданные перехода
type VisitLocation struct {
	CountryCode string `json:"countryCode"`
	CountryName string `json:"countryName"`
	CityName    string `json:"cityName"`
}

// Visit переход по ссылке
type Visit struct {
	Referer       string         `json:"referer"`
	Date          string         `json:"date"`
	UserAgent     string         `json:"userAgent"`
	VisitLocation *VisitLocation `json:"visitLocation"`
	PotentialBot  bool           `json:"potentialBot"`
	RemoteAddr    string         `json:"remoteAddr,omitempty"`
	VisitedURL    string         `json:"visitedUrl,omitempty"`
}

// Model переводит переход Shlink в доменную модель
func (v Visit) Model() model.Visit {
	out := model.Visit{
		Date:      v.Date,
		Referer:   v.Referer,
		UserAgent: v.UserAgent,
		IP:        v.RemoteAddr,
		Bot:       v.PotentialBot,
	}
	if v.VisitLocation != nil {
		out.Country = v.VisitLocation.CountryName
		out.City = v.VisitLocation.CityName
	}
	return out
}

// VisitList страница переходов
type VisitList struct {
	Data       []Visit    `json:"data"`
	Pagination Pagination `json:"pagination"`
}

type visitListResponse struct {
	Visits VisitList `json:"visits"`
}

// ListParams фильтры списка коротких ссылок
type ListParams struct {
	Page                    int
	ItemsPerPage            int
	SearchTerm              string
	Tags                    []string
	TagsMode                string
	OrderBy                 string
	StartDate               *time.Time
	EndDate                 *time.Time
	ExcludeMaxVisitsReached bool
	ExcludePastValidUntil   bool
}

// CreateParams параметры создания ссылки
type CreateParams struct {
	LongURL         string     `json:"longUrl"`
	CustomSlug      string     `json:"customSlug,omitempty"`
	Title           string     `json:"title,omitempty"`
	Tags            []string   `json:"tags,omitempty"`
	ValidSince      *time.Time `json:"validSince,omitempty"`
	ValidUntil      *time.Time `json:"validUntil,omitempty"`
	MaxVisits       *int       `json:"maxVisits,omitempty"`
	Crawlable       bool       `json:"crawlable"`
	ForwardQuery    bool       `json:"forwardQuery"`
	FindIfExists    bool       `json:"findIfExists"`
	ShortCodeLength int        `json:"shortCodeLength,omitempty"`
}

// UpdateParams частичное обновление ссылки; nil поля не отправляются
type UpdateParams struct {
	LongURL      *string    `json:"longUrl,omitempty"`
	Title        *string    `json:"title,omitempty"`
	Tags         *[]string  `json:"tags,omitempty"`
	ValidSince   *time.Time `json:"validSince,omitempty"`
	ValidUntil   *time.Time `json:"validUntil,omitempty"`
	MaxVisits    *int       `json:"maxVisits,omitempty"`
	Crawlable    *bool      `json:"crawlable,omitempty"`
	ForwardQuery *bool      `json:"forwardQuery,omitempty"`
}

// VisitsParams параметры выборки переходов
type VisitsParams struct {
	Page         int
	ItemsPerPage int
	StartDate    *time.Time
	EndDate      *time.Time
	ExcludeBots  bool
}

// RedirectCondition условие правила перенаправления
type RedirectCondition struct {
	Type       string  `json:"type"`
	MatchKey   *string `json:"matchKey"`
	MatchValue string  `json:"matchValue"`
}

// RedirectRule правило перенаправления
type RedirectRule struct {
	LongURL    string              `json:"longUrl"`
	Priority   int                 `json:"priority"`
	Conditions []RedirectCondition `json:"conditions"`
}

// RedirectRules правила перенаправления ссылки
type RedirectRules struct {
	DefaultLongURL string         `json:"defaultLongUrl"`
	RedirectRules  []RedirectRule `json:"redirectRules"`
}

// Health ответ проверки здоровья Shlink
type Health struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}
