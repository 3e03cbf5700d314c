package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/naciro2010/ProfileForge/internal/cache"
	"github.com/naciro2010/ProfileForge/internal/fetcher"
	"github.com/naciro2010/ProfileForge/internal/model"
)

// ErrNoMarketData 没有任何数据源返回结果
var ErrNoMarketData = errors.New("no market intel provider returned data")

// MarketIntelService 市场情报聚合，缓存优先
type MarketIntelService struct {
	providers []fetcher.MarketIntelProvider
	cache     cache.Cache
	ttl       time.Duration
	now       func() time.Time
	logger    *slog.Logger
	group     singleflight.Group
}

// NewMarketIntelService 创建聚合服务，store 为 nil 时不缓存
func NewMarketIntelService(providers []fetcher.MarketIntelProvider, store cache.Cache, ttl time.Duration, logger *slog.Logger) *MarketIntelService {
	if logger == nil {
		logger = slog.Default()
	}
	return &MarketIntelService{
		providers: providers,
		cache:     store,
		ttl:       ttl,
		now:       time.Now,
		logger:    logger,
	}
}

type aggregateOutcome struct {
	result       *model.MarketIntelResult
	contributors int
}

// MarketIntel 缓存命中直接返回；未命中时同一键的并发请求只计算一次
func (s *MarketIntelService) MarketIntel(ctx context.Context, req model.MarketIntelRequest) *model.MarketIntelResult {
	result, _ := s.lookup(ctx, req)
	return result
}

// Warm 预热入口，与 MarketIntel 走同一条读路径
func (s *MarketIntelService) Warm(ctx context.Context, req model.MarketIntelRequest) error {
	_, contributors := s.lookup(ctx, req)
	if contributors == 0 {
		return ErrNoMarketData
	}
	return nil
}

// lookup 返回结果与贡献数据的数据源个数（缓存命中时视为1）
func (s *MarketIntelService) lookup(ctx context.Context, req model.MarketIntelRequest) (*model.MarketIntelResult, int) {
	key := req.CacheKey()

	if cached := s.fromCache(ctx, key); cached != nil {
		return cached, 1
	}

	v, _, _ := s.group.Do(key, func() (interface{}, error) {
		// 排队期间可能已被其他请求写入
		if cached := s.fromCache(ctx, key); cached != nil {
			return aggregateOutcome{result: cached, contributors: 1}, nil
		}
		result, contributors := s.aggregate(ctx, req)
		if contributors > 0 {
			s.store(ctx, key, result)
		}
		return aggregateOutcome{result: result, contributors: contributors}, nil
	})

	outcome := v.(aggregateOutcome)
	return outcome.result, outcome.contributors
}

func (s *MarketIntelService) fromCache(ctx context.Context, key string) *model.MarketIntelResult {
	if s.cache == nil {
		return nil
	}
	entry, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("market intel cache read failed", "key", key, "error", err)
		return nil
	}
	if entry == nil {
		return nil
	}
	var result model.MarketIntelResult
	if err := json.Unmarshal(entry.Data, &result); err != nil {
		s.logger.Warn("market intel cache entry unreadable", "key", key, "error", err)
		return nil
	}
	return &result
}

func (s *MarketIntelService) store(ctx context.Context, key string, result *model.MarketIntelResult) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(result)
	if err != nil {
		s.logger.Warn("market intel result not serializable", "key", key, "error", err)
		return
	}
	if err := s.cache.Set(ctx, key, data, s.ttl); err != nil {
		s.logger.Warn("market intel cache write failed", "key", key, "error", err)
	}
}

// aggregate 合并各数据源结果，单个数据源失败只记录并跳过
func (s *MarketIntelService) aggregate(ctx context.Context, req model.MarketIntelRequest) (*model.MarketIntelResult, int) {
	selected := make([]fetcher.MarketIntelProvider, 0, len(s.providers))
	for _, p := range s.providers {
		if p.Supports(req.Country) {
			selected = append(selected, p)
		}
	}
	if len(selected) == 0 {
		s.logger.Warn("no market intel provider for country, using all providers", "country", req.Country)
		selected = s.providers
	}

	var results []*model.ProviderResult
	for _, p := range selected {
		res, err := p.Fetch(ctx, req)
		if err != nil {
			s.logger.Warn("market intel provider failed", "provider", p.Name(), "error", err)
			continue
		}
		if res != nil {
			results = append(results, res)
		}
	}

	return mergeProviderResults(results, s.now()), len(results)
}

// mergeProviderResults 合并并去重：技能按名称小写，信号按陈述小写，来源按URL
func mergeProviderResults(results []*model.ProviderResult, now time.Time) *model.MarketIntelResult {
	merged := &model.MarketIntelResult{
		Skills:           []model.SkillInsight{},
		RecruiterSignals: []model.RecruiterSignal{},
		Sources:          []model.SourceAttribution{},
	}

	var sources []model.SourceAttribution
	seenSkills := make(map[string]bool)
	seenSignals := make(map[string]bool)

	for _, r := range results {
		if r.RefreshedAt.After(merged.RefreshedAt) {
			merged.RefreshedAt = r.RefreshedAt
		}
		for _, sk := range r.Skills {
			k := strings.ToLower(sk.Name)
			if seenSkills[k] {
				continue
			}
			seenSkills[k] = true
			merged.Skills = append(merged.Skills, sk)
		}
		for _, sig := range r.RecruiterSignals {
			k := strings.ToLower(sig.Statement)
			if seenSignals[k] {
				continue
			}
			seenSignals[k] = true
			merged.RecruiterSignals = append(merged.RecruiterSignals, sig)
		}
		sources = append(sources, r.Sources...)
	}

	if len(results) == 0 {
		merged.RefreshedAt = now
	}
	merged.RefreshedAt = merged.RefreshedAt.UTC().Round(0)
	merged.Sources = append(merged.Sources, model.DedupSources(sources)...)
	return merged
}
