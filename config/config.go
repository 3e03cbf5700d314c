package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config 应用配置
type Config struct {
	Port               string
	APIKey             string
	CORSAllowedOrigins []string
	RateLimitCapacity  int
	RateLimitWindow    time.Duration

	LLMProvider       string
	LLMModel          string
	LLMLanguage       string
	LLMTimeout        time.Duration
	OllamaBaseURL     string
	OpenRouterBaseURL string
	OpenRouterKey     string

	CacheBackend         string
	RedisURL             string
	DatabaseURL          string
	MarketIntelCacheTTL  time.Duration
	MarketIntelCacheSize int
	SuggestionCacheTTL   time.Duration
	WarmupInterval       time.Duration
}

// Load 从环境变量加载配置，数字或时长格式错误时直接返回错误
func Load() (*Config, error) {
	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		APIKey:             getEnv("API_KEY", "changeme"),
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "chrome-extension://*")),

		LLMProvider:       getEnv("LLM_PROVIDER", "ollama"),
		LLMModel:          getEnv("LLM_MODEL", "llama3:instruct"),
		LLMLanguage:       getEnv("LLM_LANGUAGE", "fr"),
		OllamaBaseURL:     getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
		OpenRouterBaseURL: getEnv("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1/chat/completions"),
		OpenRouterKey:     getEnv("OPENROUTER_API_KEY", ""),

		CacheBackend: strings.ToLower(getEnv("CACHE_BACKEND", "memory")),
		RedisURL:     getEnv("REDIS_URL", ""),
		DatabaseURL:  getEnv("DATABASE_URL", ""),
	}

	var err error
	if cfg.RateLimitCapacity, err = getInt("RATE_LIMIT_CAPACITY", 30); err != nil {
		return nil, err
	}
	if cfg.MarketIntelCacheSize, err = getInt("MARKET_INTEL_CACHE_SIZE", 200); err != nil {
		return nil, err
	}

	durations := []struct {
		key string
		def time.Duration
		dst *time.Duration
	}{
		{"RATE_LIMIT_WINDOW", time.Minute, &cfg.RateLimitWindow},
		{"LLM_TIMEOUT", 40 * time.Second, &cfg.LLMTimeout},
		{"MARKET_INTEL_CACHE_TTL", 30 * 24 * time.Hour, &cfg.MarketIntelCacheTTL},
		{"SUGGESTION_CACHE_TTL", 5 * time.Minute, &cfg.SuggestionCacheTTL},
		{"WARMUP_INTERVAL", 12 * time.Hour, &cfg.WarmupInterval},
	}
	for _, d := range durations {
		if *d.dst, err = getDuration(d.key, d.def); err != nil {
			return nil, err
		}
	}

	switch cfg.CacheBackend {
	case "memory", "redis", "postgres":
	default:
		return nil, fmt.Errorf("CACHE_BACKEND: unknown backend %q", cfg.CacheBackend)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%s: expected a positive integer, got %q", key, raw)
	}
	return v, nil
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%s: expected a positive duration, got %q", key, raw)
	}
	return v, nil
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
