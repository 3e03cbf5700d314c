package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" || cfg.APIKey != "changeme" {
		t.Errorf("port/key = %s/%s", cfg.Port, cfg.APIKey)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "chrome-extension://*" {
		t.Errorf("cors = %v", cfg.CORSAllowedOrigins)
	}
	if cfg.RateLimitCapacity != 30 || cfg.RateLimitWindow != time.Minute {
		t.Errorf("rate limit = %d/%s", cfg.RateLimitCapacity, cfg.RateLimitWindow)
	}
	if cfg.MarketIntelCacheTTL != 720*time.Hour || cfg.MarketIntelCacheSize != 200 {
		t.Errorf("market cache = %s/%d", cfg.MarketIntelCacheTTL, cfg.MarketIntelCacheSize)
	}
	if cfg.LLMTimeout != 40*time.Second || cfg.CacheBackend != "memory" {
		t.Errorf("llm timeout/backend = %s/%s", cfg.LLMTimeout, cfg.CacheBackend)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, chrome-extension://abc ,")
	t.Setenv("RATE_LIMIT_CAPACITY", "5")
	t.Setenv("WARMUP_INTERVAL", "30m")
	t.Setenv("CACHE_BACKEND", "Redis")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9000" || cfg.RateLimitCapacity != 5 || cfg.WarmupInterval != 30*time.Minute {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "chrome-extension://abc" {
		t.Errorf("cors = %q", cfg.CORSAllowedOrigins)
	}
	if cfg.CacheBackend != "redis" {
		t.Errorf("backend = %s", cfg.CacheBackend)
	}
}

func TestLoadInvalidValues(t *testing.T) {
	testCases := []struct {
		key, value string
	}{
		{"RATE_LIMIT_CAPACITY", "lots"},
		{"RATE_LIMIT_CAPACITY", "0"},
		{"LLM_TIMEOUT", "40"},
		{"MARKET_INTEL_CACHE_TTL", "-1h"},
		{"CACHE_BACKEND", "memcached"},
	}
	for _, tc := range testCases {
		t.Run(tc.key+"="+tc.value, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			if _, err := Load(); err == nil {
				t.Errorf("expected error for %s=%q", tc.key, tc.value)
			}
		})
	}
}
