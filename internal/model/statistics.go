package model

import "time"

// Series пара массивов подписей и значений для графика
type Series struct {
	Labels []string `json:"labels"`
	Values []int    `json:"values"`
}

// URLSummary краткая информация о ссылке для топа
type URLSummary struct {
	ShortCode  Code   `json:"short_code"`
	LongURL    string `json:"long_url"`
	Title      string `json:"title,omitempty"`
	VisitCount int    `json:"visit_count"`
}

// URLInfo метаданные ссылки для индивидуальной статистики
type URLInfo struct {
	ShortCode  Code      `json:"short_code"`
	ShortURL   string    `json:"short_url"`
	LongURL    string    `json:"long_url"`
	Title      string    `json:"title,omitempty"`
	Tags       []string  `json:"tags"`
	VisitCount int       `json:"visit_count"`
	CreatedAt  time.Time `json:"created_at"`
}

// VisitBreakdown разбивка переходов за период
type VisitBreakdown struct {
	DailyVisits    Series `json:"daily_visits"`
	HourlyVisits   Series `json:"hourly_visits"`
	Browsers       Series `json:"browsers"`
	Countries      Series `json:"countries"`
	Referrers      Series `json:"referrers"`
	UniqueVisitors int    `json:"unique_visitors"`
}

// OverallStatistics сводная статистика пользователя
type OverallStatistics struct {
	Period       string       `json:"period"`
	TotalURLs    int          `json:"total_urls"`
	TotalVisits  int          `json:"total_visits"`
	PeriodVisits int          `json:"period_visits"`
	TopURLs      []URLSummary `json:"top_urls"`
	VisitBreakdown
	GeneratedAt time.Time `json:"generated_at"`
}

// IndividualStatistics статистика одной ссылки
type IndividualStatistics struct {
	Period      string  `json:"period"`
	URL         URLInfo `json:"url"`
	TotalVisits int     `json:"total_visits"`
	VisitBreakdown
	GeneratedAt time.Time `json:"generated_at"`
}

// Visit переход по короткой ссылке
type Visit struct {
	Date      string `json:"date"`
	Referer   string `json:"referer"`
	UserAgent string `json:"userAgent"`
	IP        string `json:"remoteAddr,omitempty"`
	Country   string `json:"country"`
	City      string `json:"city"`
	Bot       bool   `json:"potentialBot"`
}
