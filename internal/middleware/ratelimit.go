package middleware

import (
	"encoding/json"
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const limiterIdleTTL = 3 * time.Minute

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimiter хранит отдельный token bucket для каждого IP
type IPRateLimiter struct {
	mu    sync.Mutex
	ips   map[string]*limiterEntry
	limit rate.Limit
	burst int
	now   func() time.Time
}

// NewIPRateLimiter создает лимитер: limit запросов в секунду, burst допустимый всплеск
func NewIPRateLimiter(limit rate.Limit, burst int) *IPRateLimiter {
	return &IPRateLimiter{
		ips:   make(map[string]*limiterEntry),
		limit: limit,
		burst: burst,
		now:   time.Now,
	}
}

// PerMinute переводит число запросов в минуту в rate.Limit
func PerMinute(n float64) rate.Limit {
	return rate.Limit(n / 60.0)
}

// GetLimiter возвращает лимитер для ip, создавая его при первом обращении
func (rl *IPRateLimiter) GetLimiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	entry, ok := rl.ips[ip]
	if !ok {
		entry = &limiterEntry{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.ips[ip] = entry
	}
	entry.lastSeen = now
	return entry.limiter
}

// Cleanup удаляет лимитеры IP, не обращавшихся дольше limiterIdleTTL
func (rl *IPRateLimiter) Cleanup() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	removed := 0
	cutoff := rl.now().Add(-limiterIdleTTL)
	for ip, entry := range rl.ips {
		if entry.lastSeen.Before(cutoff) {
			delete(rl.ips, ip)
			removed++
		}
	}
	return removed
}

// RunCleanup периодически чистит лимитеры до закрытия stop
func (rl *IPRateLimiter) RunCleanup(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			rl.Cleanup()
		case <-stop:
			return
		}
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// RateLimit отвечает 429, когда IP исчерпал свой лимит.
// Адрес берется из RemoteAddr, поэтому перед ним ставится chi middleware.RealIP.
func RateLimit(limiter *IPRateLimiter, logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)
			l := limiter.GetLimiter(ip)

			if !l.Allow() {
				logger.Warn("rate limit exceeded", zap.String("ip", ip), zap.String("path", r.URL.Path))

				retryAfter := 1
				if l.Limit() > 0 {
					retryAfter = int(math.Ceil(1 / float64(l.Limit())))
				}
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "too many requests"})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
