package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/avc-dev/shlink-dashboard/internal/cache"
	"github.com/avc-dev/shlink-dashboard/internal/mocks"
	"github.com/avc-dev/shlink-dashboard/internal/model"
	"github.com/avc-dev/shlink-dashboard/internal/shlink"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	chromeUA  = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	firefoxUA = "Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0"
)

type fixedLocation struct {
	loc *time.Location
}

func (f fixedLocation) Location() *time.Location {
	return f.loc
}

var statsNow = time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)

func newTestStatistics(t *testing.T) (*StatisticsService, *mocks.MockLocalShortURLs, *mocks.MockVisitsFetcher) {
	t.Helper()

	urls := mocks.NewMockLocalShortURLs(t)
	visits := mocks.NewMockVisitsFetcher(t)
	s := NewStatisticsService(urls, visits, cache.NewMemoryCache(), fixedLocation{loc: time.UTC}, zap.NewNop())
	s.now = func() time.Time { return statsNow }
	return s, urls, visits
}

func visitPage(visits ...shlink.Visit) *shlink.VisitList {
	return &shlink.VisitList{
		Data:       visits,
		Pagination: shlink.Pagination{CurrentPage: 1, PagesCount: 1},
	}
}

func ownedURL(code model.Code, visits int) model.ShortURL {
	return model.ShortURL{ShortCode: code, UserID: "user-1", LongURL: "https://example.com/" + code.String(), VisitCount: visits}
}

func TestNormalizePeriod(t *testing.T) {
	tests := []struct {
		in         string
		wantPeriod string
		wantDays   int
	}{
		{"7d", "7d", 7},
		{"30d", "30d", 30},
		{"90d", "90d", 90},
		{"365d", "365d", 365},
		{"", "30d", 30},
		{"14d", "30d", 30},
		{"all", "30d", 30},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			period, days := NormalizePeriod(tt.in)
			assert.Equal(t, tt.wantPeriod, period)
			assert.Equal(t, tt.wantDays, days)
		})
	}
}

func TestOverall_UnknownPeriodUsesThirtyDays(t *testing.T) {
	s, urls, _ := newTestStatistics(t)
	urls.EXPECT().ActiveByUser(mock.Anything, "user-1").Return(nil, nil).Once()

	stats, err := s.Overall(context.Background(), "user-1", "bogus")

	require.NoError(t, err)
	assert.Equal(t, "30d", stats.Period)
	require.Len(t, stats.DailyVisits.Labels, 30)
	assert.Equal(t, "2025-02-09", stats.DailyVisits.Labels[0])
	assert.Equal(t, "2025-03-10", stats.DailyVisits.Labels[29])
}

func TestIndividual_SevenDaysWithoutVisits(t *testing.T) {
	s, urls, visits := newTestStatistics(t)
	urls.EXPECT().Get(mock.Anything, model.Code("abc")).Return(ownedURL("abc", 0), nil).Once()
	visits.EXPECT().GetVisits(mock.Anything, "abc", mock.Anything).Return(visitPage(), nil).Once()

	stats, err := s.Individual(context.Background(), "user-1", "abc", "7d")

	require.NoError(t, err)
	assert.Len(t, stats.DailyVisits.Labels, 7)
	assert.Equal(t, []int{0, 0, 0, 0, 0, 0, 0}, stats.DailyVisits.Values)
	assert.Equal(t, 0, stats.TotalVisits)
	assert.Len(t, stats.HourlyVisits.Labels, 24)
	assert.Equal(t, model.Code("abc"), stats.URL.ShortCode)
}

func TestOverall_TotalsFromLocalVisitCounts(t *testing.T) {
	s, urls, visits := newTestStatistics(t)
	urls.EXPECT().ActiveByUser(mock.Anything, "user-1").
		Return([]model.ShortURL{ownedURL("a", 10), ownedURL("b", 5), ownedURL("c", 100)}, nil).Once()
	visits.EXPECT().GetVisits(mock.Anything, mock.Anything, mock.Anything).Return(visitPage(), nil).Times(3)

	stats, err := s.Overall(context.Background(), "user-1", "30d")

	require.NoError(t, err)
	assert.Equal(t, 115, stats.TotalVisits)
	assert.Equal(t, 3, stats.TotalURLs)
	require.Len(t, stats.TopURLs, 3)
	assert.Equal(t, model.Code("c"), stats.TopURLs[0].ShortCode)
	assert.Equal(t, model.Code("b"), stats.TopURLs[2].ShortCode)
}

func TestIndividual_UnparsableDateIsExcluded(t *testing.T) {
	s, urls, visits := newTestStatistics(t)
	urls.EXPECT().Get(mock.Anything, model.Code("abc")).Return(ownedURL("abc", 2), nil).Once()
	visits.EXPECT().GetVisits(mock.Anything, "abc", mock.Anything).Return(visitPage(
		shlink.Visit{Date: "2025-03-10T10:15:00+00:00", UserAgent: chromeUA, RemoteAddr: "10.0.0.1"},
		shlink.Visit{Date: "not a date", UserAgent: firefoxUA, RemoteAddr: "10.0.0.2"},
	), nil).Once()

	stats, err := s.Individual(context.Background(), "user-1", "abc", "7d")

	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalVisits)
	assert.Equal(t, []int{0, 0, 0, 0, 0, 0, 1}, stats.DailyVisits.Values)
	assert.Equal(t, 1, stats.HourlyVisits.Values[10])
	assert.Equal(t, 1, stats.UniqueVisitors)
	assert.Equal(t, []string{"Chrome"}, stats.Browsers.Labels)
}

func TestIndividual_Breakdown(t *testing.T) {
	s, urls, visits := newTestStatistics(t)
	urls.EXPECT().Get(mock.Anything, model.Code("abc")).Return(ownedURL("abc", 4), nil).Once()
	visits.EXPECT().GetVisits(mock.Anything, "abc", mock.Anything).Return(visitPage(
		shlink.Visit{Date: "2025-03-09T08:00:00Z", UserAgent: chromeUA, RemoteAddr: "10.0.0.1", Referer: "https://news.example/a",
			VisitLocation: &shlink.VisitLocation{CountryName: "Germany"}},
		shlink.Visit{Date: "2025-03-09T08:30:00Z", UserAgent: chromeUA, RemoteAddr: "10.0.0.1", Referer: "https://news.example/b",
			VisitLocation: &shlink.VisitLocation{CountryName: "Germany"}},
		shlink.Visit{Date: "2025-03-10T09:00:00Z", UserAgent: firefoxUA, RemoteAddr: "10.0.0.2"},
		shlink.Visit{Date: "2025-03-10T09:10:00Z", UserAgent: firefoxUA},
	), nil).Once()

	stats, err := s.Individual(context.Background(), "user-1", "abc", "7d")

	require.NoError(t, err)
	assert.Equal(t, 4, stats.TotalVisits)
	assert.Equal(t, []int{0, 0, 0, 0, 0, 2, 2}, stats.DailyVisits.Values)
	assert.Equal(t, 2, stats.HourlyVisits.Values[8])
	assert.Equal(t, 2, stats.HourlyVisits.Values[9])
	assert.Equal(t, model.Series{Labels: []string{"Chrome", "Firefox"}, Values: []int{2, 2}}, stats.Browsers)
	assert.Equal(t, model.Series{Labels: []string{"Germany", "Unknown"}, Values: []int{2, 2}}, stats.Countries)
	assert.Equal(t, model.Series{Labels: []string{"Direct", "news.example"}, Values: []int{2, 2}}, stats.Referrers)
	// два IP и один посетитель без IP, опознанный по user agent
	assert.Equal(t, 3, stats.UniqueVisitors)
}

func TestIndividual_FetchesAllPages(t *testing.T) {
	s, urls, visits := newTestStatistics(t)
	urls.EXPECT().Get(mock.Anything, model.Code("abc")).Return(ownedURL("abc", 2), nil).Once()
	visits.EXPECT().GetVisits(mock.Anything, "abc", mock.MatchedBy(func(p shlink.VisitsParams) bool {
		return p.Page == 1 && p.ItemsPerPage == 1000
	})).Return(&shlink.VisitList{
		Data:       []shlink.Visit{{Date: "2025-03-10T01:00:00Z", RemoteAddr: "1.1.1.1"}},
		Pagination: shlink.Pagination{CurrentPage: 1, PagesCount: 2},
	}, nil).Once()
	visits.EXPECT().GetVisits(mock.Anything, "abc", mock.MatchedBy(func(p shlink.VisitsParams) bool {
		return p.Page == 2
	})).Return(&shlink.VisitList{
		Data:       []shlink.Visit{{Date: "2025-03-10T02:00:00Z", RemoteAddr: "2.2.2.2"}},
		Pagination: shlink.Pagination{CurrentPage: 2, PagesCount: 2},
	}, nil).Once()

	stats, err := s.Individual(context.Background(), "user-1", "abc", "7d")

	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalVisits)
}

func TestIndividual_NotOwned(t *testing.T) {
	s, urls, _ := newTestStatistics(t)
	foreign := ownedURL("abc", 1)
	foreign.UserID = "someone-else"
	urls.EXPECT().Get(mock.Anything, model.Code("abc")).Return(foreign, nil).Once()
	urls.EXPECT().Get(mock.Anything, model.Code("zzz")).Return(model.ShortURL{}, errors.New("not found")).Once()

	_, err := s.Individual(context.Background(), "user-1", "abc", "7d")
	assert.ErrorIs(t, err, ErrShortURLNotFound)

	_, err = s.Individual(context.Background(), "user-1", "zzz", "7d")
	assert.ErrorIs(t, err, ErrShortURLNotFound)
}

func TestIndividual_UpstreamFailureDegradesAndIsNotCached(t *testing.T) {
	s, urls, visits := newTestStatistics(t)
	urls.EXPECT().Get(mock.Anything, model.Code("abc")).Return(ownedURL("abc", 7), nil).Twice()
	visits.EXPECT().GetVisits(mock.Anything, "abc", mock.Anything).
		Return(nil, &shlink.APIError{Status: 502, Title: "Bad Gateway"}).Twice()

	for i := 0; i < 2; i++ {
		stats, err := s.Individual(context.Background(), "user-1", "abc", "30d")
		require.NoError(t, err)
		assert.Equal(t, 0, stats.TotalVisits)
		assert.Len(t, stats.DailyVisits.Values, 30)
		assert.Equal(t, 7, stats.URL.VisitCount)
	}
}

func TestOverall_PerURLFailureIsSkipped(t *testing.T) {
	s, urls, visits := newTestStatistics(t)
	urls.EXPECT().ActiveByUser(mock.Anything, "user-1").
		Return([]model.ShortURL{ownedURL("ok", 1), ownedURL("broken", 1)}, nil).Once()
	visits.EXPECT().GetVisits(mock.Anything, "ok", mock.Anything).
		Return(visitPage(shlink.Visit{Date: "2025-03-10T12:00:00Z", RemoteAddr: "1.1.1.1"}), nil).Once()
	visits.EXPECT().GetVisits(mock.Anything, "broken", mock.Anything).
		Return(nil, &shlink.APIError{Err: errors.New("timeout")}).Once()

	stats, err := s.Overall(context.Background(), "user-1", "7d")

	require.NoError(t, err)
	assert.Equal(t, 1, stats.PeriodVisits)
	assert.Equal(t, 2, stats.TotalVisits)
}

func TestOverall_CancelledFetchIsNotCached(t *testing.T) {
	s, urls, visits := newTestStatistics(t)

	owned := make([]model.ShortURL, 40)
	for i := range owned {
		owned[i] = ownedURL(model.Code(fmt.Sprintf("c%d", i)), 1)
	}
	urls.EXPECT().ActiveByUser(mock.Anything, "user-1").Return(owned, nil).Once()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var once sync.Once
	visits.EXPECT().GetVisits(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, string, shlink.VisitsParams) (*shlink.VisitList, error) {
			once.Do(cancel)
			return visitPage(shlink.Visit{Date: "2025-03-10T12:00:00Z", RemoteAddr: "1.1.1.1"}), nil
		}).Maybe()

	stats, err := s.Overall(ctx, "user-1", "7d")
	require.NoError(t, err)
	assert.Equal(t, 40, stats.TotalURLs)

	var cached model.OverallStatistics
	err = s.cache.Get(context.Background(), "statistics:overall:user-1:7d:2025-03-10", &cached)
	assert.ErrorIs(t, err, cache.ErrMiss)
}

func TestOverall_ResultIsCached(t *testing.T) {
	s, urls, visits := newTestStatistics(t)
	urls.EXPECT().ActiveByUser(mock.Anything, "user-1").Return([]model.ShortURL{ownedURL("a", 3)}, nil).Once()
	visits.EXPECT().GetVisits(mock.Anything, "a", mock.Anything).Return(visitPage(), nil).Once()

	first, err := s.Overall(context.Background(), "user-1", "7d")
	require.NoError(t, err)

	second, err := s.Overall(context.Background(), "user-1", "7d")
	require.NoError(t, err)
	assert.Equal(t, first.TotalVisits, second.TotalVisits)
	assert.Equal(t, first.DailyVisits, second.DailyVisits)

	require.NoError(t, s.Invalidate(context.Background(), "user-1"))
	urls.EXPECT().ActiveByUser(mock.Anything, "user-1").Return(nil, nil).Once()

	third, err := s.Overall(context.Background(), "user-1", "7d")
	require.NoError(t, err)
	assert.Equal(t, 0, third.TotalURLs)
}

func TestOverall_WindowFollowsLocation(t *testing.T) {
	s, urls, _ := newTestStatistics(t)
	tokyo := time.FixedZone("UTC+9", 9*60*60)
	s.location = fixedLocation{loc: tokyo}
	urls.EXPECT().ActiveByUser(mock.Anything, "user-1").Return(nil, nil).Once()

	stats, err := s.Overall(context.Background(), "user-1", "7d")

	require.NoError(t, err)
	// 15:00 UTC уже следующий день в UTC+9
	assert.Equal(t, "2025-03-11", stats.DailyVisits.Labels[6])
}
