package main

import (
	"context"
	"errors"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/naciro2010/ProfileForge/config"
	"github.com/naciro2010/ProfileForge/internal/cache"
	"github.com/naciro2010/ProfileForge/internal/fetcher"
	"github.com/naciro2010/ProfileForge/internal/handler"
	"github.com/naciro2010/ProfileForge/internal/model"
	"github.com/naciro2010/ProfileForge/internal/scheduler"
	"github.com/naciro2010/ProfileForge/internal/service"
)

// version 构建时通过 -ldflags "-X main.version=..." 注入
var version = "dev"

func main() {
	// 加载 .env 文件（如果存在）
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if cfg.APIKey == "changeme" {
		log.Println("Warning: API_KEY is the default value, set a real key before exposing the service")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	marketCache, closer := openMarketCache(ctx, cfg)
	if closer != nil {
		defer closer.Close()
	}

	defaultProvider, ok := fetcher.ParseLLMProvider(cfg.LLMProvider)
	if !ok {
		log.Printf("Warning: unknown LLM_PROVIDER %q, using ollama", cfg.LLMProvider)
		defaultProvider = fetcher.ProviderOllama
	}
	language, ok := model.ParseLanguage(cfg.LLMLanguage)
	if !ok {
		log.Printf("Warning: unknown LLM_LANGUAGE %q, using fr", cfg.LLMLanguage)
		language = model.LanguageFR
	}
	if cfg.OpenRouterKey == "" {
		log.Println("Warning: OPENROUTER_API_KEY not configured, OpenRouter requests will fail")
	}

	// 创建LLM客户端
	llm := fetcher.NewLLMRegistry(
		fetcher.NewOllamaClient(cfg.OllamaBaseURL, cfg.LLMTimeout),
		fetcher.NewOpenRouterClient(cfg.OpenRouterKey, cfg.OpenRouterBaseURL, cfg.LLMTimeout),
	)

	// 创建服务
	marketIntel := service.NewMarketIntelService(
		fetcher.DefaultMarketIntelProviders(time.Now),
		marketCache,
		cfg.MarketIntelCacheTTL,
		slog.Default(),
	)
	services := handler.Services{
		Score:        service.NewScoreService(),
		Compensation: service.NewCompensationService(fetcher.DefaultCompensationProviders(), slog.Default()),
		MarketIntel:  marketIntel,
		Suggestion: service.NewSuggestionService(fetcher.DefaultJobCatalog(), llm, service.SuggestionOptions{
			Provider: defaultProvider,
			Model:    cfg.LLMModel,
			Language: language,
			CacheTTL: cfg.SuggestionCacheTTL,
		}, slog.Default()),
	}

	// 预热任务
	warmup := scheduler.New(marketIntel, scheduler.DefaultTargets, cfg.WarmupInterval, slog.Default())
	if cleaner, ok := marketCache.(cache.ExpiredCleaner); ok {
		warmup.WithCleaner(cleaner)
	}
	if err := warmup.Start(ctx); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}
	defer warmup.Stop()

	router, err := handler.NewRouter(services, handler.Options{
		APIKey:            cfg.APIKey,
		AllowedOrigins:    cfg.CORSAllowedOrigins,
		RateLimitCapacity: cfg.RateLimitCapacity,
		RateLimitWindow:   cfg.RateLimitWindow,
		Version:           version,
		Logger:            slog.Default(),
	})
	if err != nil {
		log.Fatalf("Failed to build router: %v", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Graceful shutdown failed: %v", err)
	}
}

// openMarketCache 按 CACHE_BACKEND 选择缓存，外部存储连接失败时退回内存缓存
func openMarketCache(ctx context.Context, cfg *config.Config) (cache.Cache, io.Closer) {
	memory := func() (cache.Cache, io.Closer) {
		return cache.NewMemoryCache("market_intel", cfg.MarketIntelCacheSize), nil
	}

	switch cfg.CacheBackend {
	case "redis":
		if cfg.RedisURL == "" {
			log.Println("REDIS_URL not configured, using memory cache")
			return memory()
		}
		rc, err := cache.NewRedisCache(ctx, cfg.RedisURL, "market_intel", cfg.MarketIntelCacheSize)
		if err != nil {
			log.Printf("Warning: Failed to connect to Redis, using memory cache: %v", err)
			return memory()
		}
		log.Println("Using Redis cache")
		return rc, rc
	case "postgres":
		if cfg.DatabaseURL == "" {
			log.Println("DATABASE_URL not configured, using memory cache")
			return memory()
		}
		pc, err := cache.NewPostgresCache(ctx, cfg.DatabaseURL, "market_intel", cfg.MarketIntelCacheSize)
		if err != nil {
			log.Printf("Warning: Failed to connect to PostgreSQL, using memory cache: %v", err)
			return memory()
		}
		log.Println("Using PostgreSQL cache")
		return pc, pc
	}
	log.Println("Using memory cache")
	return memory()
}
