package handler

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"
)

type bucket struct {
	count   int
	resetAt time.Time
}

// RateLimiter 按API key的固定窗口限流，没有key时按客户端地址
type RateLimiter struct {
	capacity  int
	window    time.Duration
	now       func() time.Time
	logger    *slog.Logger
	mu        sync.Mutex
	buckets   map[string]*bucket
	lastSweep time.Time
}

// NewRateLimiter 每个key在 window 内最多 capacity 次请求
func NewRateLimiter(capacity int, window time.Duration, logger *slog.Logger) *RateLimiter {
	if logger == nil {
		logger = slog.Default()
	}
	return &RateLimiter{
		capacity: capacity,
		window:   window,
		now:      time.Now,
		logger:   logger,
		buckets:  make(map[string]*bucket),
	}
}

// allow 返回是否放行，以及被拒绝时距离窗口重置的时间
func (rl *RateLimiter) allow(key string) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if now.Sub(rl.lastSweep) > rl.window {
		for k, b := range rl.buckets {
			if !now.Before(b.resetAt) {
				delete(rl.buckets, k)
			}
		}
		rl.lastSweep = now
	}

	b, ok := rl.buckets[key]
	if !ok || !now.Before(b.resetAt) {
		rl.buckets[key] = &bucket{count: 1, resetAt: now.Add(rl.window)}
		return true, 0
	}
	if b.count >= rl.capacity {
		return false, b.resetAt.Sub(now)
	}
	b.count++
	return true, 0
}

// Middleware 超限返回429和 Retry-After
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" || r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		key := r.Header.Get(apiKeyHeader)
		if key == "" {
			key = r.RemoteAddr
		}

		ok, retry := rl.allow(key)
		if ok {
			next.ServeHTTP(w, r)
			return
		}

		rl.logger.Warn("rate limit exceeded", "path", r.URL.Path, "remote", r.RemoteAddr)
		w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(retry.Seconds()))))
		writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
	})
}
