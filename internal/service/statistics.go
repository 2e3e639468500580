package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/avc-dev/shlink-dashboard/internal/cache"
	"github.com/avc-dev/shlink-dashboard/internal/model"
	"github.com/avc-dev/shlink-dashboard/internal/shlink"
	"github.com/mssola/useragent"
	"go.uber.org/zap"
)

const (
	DefaultPeriod = "30d"

	overallCacheTTL    = time.Hour
	individualCacheTTL = 30 * time.Minute

	visitsPageSize = 1000
	topLimit       = 10
	dayLayout      = "2006-01-02"

	unknownLabel = "Unknown"
	directLabel  = "Direct"
)

var periodDays = map[string]int{
	"7d":   7,
	"30d":  30,
	"90d":  90,
	"365d": 365,
}

// NormalizePeriod возвращает допустимый период и число дней в нем
func NormalizePeriod(period string) (string, int) {
	if days, ok := periodDays[period]; ok {
		return period, days
	}
	return DefaultPeriod, periodDays[DefaultPeriod]
}

// StatisticsService собирает статистику переходов для графиков
type StatisticsService struct {
	urls     LocalShortURLs
	visits   VisitsFetcher
	cache    cache.Cache
	location LocationProvider
	logger   *zap.Logger
	now      func() time.Time
}

// NewStatisticsService создает новый StatisticsService
func NewStatisticsService(
	urls LocalShortURLs,
	visits VisitsFetcher,
	c cache.Cache,
	location LocationProvider,
	logger *zap.Logger,
) *StatisticsService {
	return &StatisticsService{
		urls:     urls,
		visits:   visits,
		cache:    c,
		location: location,
		logger:   logger,
		now:      time.Now,
	}
}

type window struct {
	start time.Time
	end   time.Time
	days  []string
	index map[string]int
}

func (s *StatisticsService) window(days int) window {
	loc := s.location.Location()
	now := s.now().In(loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	start := today.AddDate(0, 0, -(days - 1))

	w := window{
		start: start,
		end:   now,
		days:  make([]string, days),
		index: make(map[string]int, days),
	}
	for i := 0; i < days; i++ {
		label := start.AddDate(0, 0, i).Format(dayLayout)
		w.days[i] = label
		w.index[label] = i
	}
	return w
}

func (w window) today() string {
	return w.days[len(w.days)-1]
}

// Overall возвращает сводную статистику по всем активным ссылкам пользователя
func (s *StatisticsService) Overall(ctx context.Context, userID, period string) (model.OverallStatistics, error) {
	period, days := NormalizePeriod(period)
	w := s.window(days)
	key := fmt.Sprintf("statistics:overall:%s:%s:%s", userID, period, w.today())

	var cached model.OverallStatistics
	if err := s.cache.Get(ctx, key, &cached); err == nil {
		return cached, nil
	} else if !errors.Is(err, cache.ErrMiss) {
		s.logger.Warn("statistics cache read failed", zap.String("key", key), zap.Error(err))
	}

	urls, err := s.urls.ActiveByUser(ctx, userID)
	if err != nil {
		return model.OverallStatistics{}, fmt.Errorf("failed to load short URLs: %w", err)
	}

	stats := model.OverallStatistics{
		Period:      period,
		TotalURLs:   len(urls),
		TopURLs:     topURLs(urls),
		GeneratedAt: s.now(),
	}
	for _, u := range urls {
		stats.TotalVisits += u.VisitCount
	}

	codes := make([]model.Code, len(urls))
	for i, u := range urls {
		codes[i] = u.ShortCode
	}

	agg := newAggregator(w, s.location.Location())
	degraded := false
	received := 0
	for res := range s.fetchVisitsConcurrently(ctx, codes, w) {
		received++
		if res.err != nil {
			s.logger.Warn("failed to fetch visits, skipping short URL",
				zap.String("user_id", userID),
				zap.String("short_code", res.code.String()),
				zap.Error(res.err),
			)
			degraded = true
			continue
		}
		agg.addAll(res.visits)
	}

	stats.VisitBreakdown = agg.breakdown()
	stats.PeriodVisits = agg.counted

	// Отмененный запрос мог оборвать выборку: неполный результат не кэшируется
	if received != len(codes) || ctx.Err() != nil {
		degraded = true
	}
	if !degraded {
		s.store(ctx, key, stats, overallCacheTTL)
	}
	return stats, nil
}

// Individual возвращает статистику одной ссылки пользователя
func (s *StatisticsService) Individual(ctx context.Context, userID string, code model.Code, period string) (model.IndividualStatistics, error) {
	period, days := NormalizePeriod(period)
	w := s.window(days)

	u, err := s.urls.Get(ctx, code)
	if err != nil || u.UserID != userID || u.DeletedAt != nil {
		if err != nil {
			s.logger.Debug("short URL lookup failed", zap.String("short_code", code.String()), zap.Error(err))
		}
		return model.IndividualStatistics{}, fmt.Errorf("short code %s: %w", code, ErrShortURLNotFound)
	}

	key := fmt.Sprintf("statistics:individual:%s:%s:%s:%s", userID, code, period, w.today())

	var cached model.IndividualStatistics
	if err := s.cache.Get(ctx, key, &cached); err == nil {
		return cached, nil
	} else if !errors.Is(err, cache.ErrMiss) {
		s.logger.Warn("statistics cache read failed", zap.String("key", key), zap.Error(err))
	}

	stats := model.IndividualStatistics{
		Period: period,
		URL: model.URLInfo{
			ShortCode:  u.ShortCode,
			ShortURL:   u.ShortURL,
			LongURL:    u.LongURL,
			Title:      u.Title,
			Tags:       append([]string{}, u.Tags...),
			VisitCount: u.VisitCount,
			CreatedAt:  u.CreatedAt,
		},
		GeneratedAt: s.now(),
	}

	agg := newAggregator(w, s.location.Location())
	visits, err := s.fetchVisits(ctx, code, w)
	if err != nil {
		s.logger.Warn("failed to fetch visits, returning empty statistics",
			zap.String("user_id", userID),
			zap.String("short_code", code.String()),
			zap.Error(err),
		)
		stats.VisitBreakdown = agg.breakdown()
		return stats, nil
	}

	agg.addAll(visits)
	stats.VisitBreakdown = agg.breakdown()
	stats.TotalVisits = agg.counted

	s.store(ctx, key, stats, individualCacheTTL)
	return stats, nil
}

// Invalidate сбрасывает кэш статистики пользователя
func (s *StatisticsService) Invalidate(ctx context.Context, userID string) error {
	if err := s.cache.DeletePrefix(ctx, "statistics:overall:"+userID+":"); err != nil {
		return err
	}
	return s.cache.DeletePrefix(ctx, "statistics:individual:"+userID+":")
}

func (s *StatisticsService) store(ctx context.Context, key string, value any, ttl time.Duration) {
	if err := s.cache.Set(ctx, key, value, ttl); err != nil {
		s.logger.Warn("statistics cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func (s *StatisticsService) fetchVisits(ctx context.Context, code model.Code, w window) ([]model.Visit, error) {
	var visits []model.Visit

	start, end := w.start, w.end
	params := shlink.VisitsParams{
		Page:         1,
		ItemsPerPage: visitsPageSize,
		StartDate:    &start,
		EndDate:      &end,
	}
	for {
		page, err := s.visits.GetVisits(ctx, code.String(), params)
		if err != nil {
			return nil, err
		}
		for _, v := range page.Data {
			visits = append(visits, v.Model())
		}
		if len(page.Data) == 0 || !page.Pagination.HasNext() {
			return visits, nil
		}
		params.Page++
	}
}

func topURLs(urls []model.ShortURL) []model.URLSummary {
	sorted := append([]model.ShortURL(nil), urls...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].VisitCount != sorted[j].VisitCount {
			return sorted[i].VisitCount > sorted[j].VisitCount
		}
		return sorted[i].ShortCode < sorted[j].ShortCode
	})
	if len(sorted) > topLimit {
		sorted = sorted[:topLimit]
	}

	top := make([]model.URLSummary, len(sorted))
	for i, u := range sorted {
		top[i] = model.URLSummary{
			ShortCode:  u.ShortCode,
			LongURL:    u.LongURL,
			Title:      u.Title,
			VisitCount: u.VisitCount,
		}
	}
	return top
}

// aggregator раскладывает переходы по корзинам графиков
type aggregator struct {
	window   window
	location *time.Location

	daily     []int
	hourly    [24]int
	browsers  map[string]int
	countries map[string]int
	referrers map[string]int
	visitors  map[string]struct{}

	counted int
	// unknown переходы с неразбираемой датой; в подсчетах не участвуют
	unknown int
}

func newAggregator(w window, loc *time.Location) *aggregator {
	return &aggregator{
		window:    w,
		location:  loc,
		daily:     make([]int, len(w.days)),
		browsers:  make(map[string]int),
		countries: make(map[string]int),
		referrers: make(map[string]int),
		visitors:  make(map[string]struct{}),
	}
}

func (a *aggregator) addAll(visits []model.Visit) {
	for _, v := range visits {
		a.add(v)
	}
}

func (a *aggregator) add(v model.Visit) {
	at, err := time.Parse(time.RFC3339, v.Date)
	if err != nil {
		a.unknown++
		return
	}
	at = at.In(a.location)

	day, ok := a.window.index[at.Format(dayLayout)]
	if !ok {
		return
	}

	a.counted++
	a.daily[day]++
	a.hourly[at.Hour()]++
	a.browsers[browserName(v.UserAgent)]++
	a.countries[labelOr(v.Country, unknownLabel)]++
	a.referrers[refererHost(v.Referer)]++

	visitor := v.IP
	if visitor == "" {
		visitor = v.UserAgent
	}
	if visitor != "" {
		a.visitors[visitor] = struct{}{}
	}
}

func (a *aggregator) breakdown() model.VisitBreakdown {
	hourly := model.Series{Labels: make([]string, 24), Values: make([]int, 24)}
	for h := 0; h < 24; h++ {
		hourly.Labels[h] = strconv.Itoa(h)
		hourly.Values[h] = a.hourly[h]
	}

	return model.VisitBreakdown{
		DailyVisits: model.Series{
			Labels: append([]string{}, a.window.days...),
			Values: append([]int{}, a.daily...),
		},
		HourlyVisits:   hourly,
		Browsers:       top(a.browsers),
		Countries:      top(a.countries),
		Referrers:      top(a.referrers),
		UniqueVisitors: len(a.visitors),
	}
}

// top первые topLimit меток по убыванию счетчика, при равенстве по алфавиту
func top(counts map[string]int) model.Series {
	labels := make([]string, 0, len(counts))
	for label := range counts {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		if counts[labels[i]] != counts[labels[j]] {
			return counts[labels[i]] > counts[labels[j]]
		}
		return labels[i] < labels[j]
	})
	if len(labels) > topLimit {
		labels = labels[:topLimit]
	}

	values := make([]int, len(labels))
	for i, label := range labels {
		values[i] = counts[label]
	}
	return model.Series{Labels: labels, Values: values}
}

func browserName(ua string) string {
	if ua == "" {
		return unknownLabel
	}
	parsed := useragent.New(ua)
	if parsed.Bot() {
		return "Bot"
	}
	name, _ := parsed.Browser()
	return labelOr(name, unknownLabel)
}

func refererHost(referer string) string {
	if referer == "" {
		return directLabel
	}
	u, err := url.Parse(referer)
	if err != nil || u.Host == "" {
		return referer
	}
	return u.Host
}

func labelOr(label, fallback string) string {
	if label == "" {
		return fallback
	}
	return label
}
