package fetcher

import (
	"context"
	"strings"

	"github.com/naciro2010/ProfileForge/internal/model"
)

// CompensationProvider 按国家提供基准薪资
type CompensationProvider interface {
	Name() string
	Supports(country string) bool
	// Baseline 返回岗位在该地区的基准区间，无数据时返回false
	Baseline(role, region string) (model.BaselineCompensation, bool)
	DefaultCurrency(country string) string
	Sources() []model.SourceAttribution
}

// MarketIntelProvider 市场情报数据源
type MarketIntelProvider interface {
	Name() string
	Supports(country string) bool
	Fetch(ctx context.Context, req model.MarketIntelRequest) (*model.ProviderResult, error)
}

// LLMProvider LLM提供方
type LLMProvider string

const (
	ProviderOllama     LLMProvider = "OLLAMA"
	ProviderOpenRouter LLMProvider = "OPENROUTER"
)

// ParseLLMProvider 解析提供方名称，大小写不敏感
func ParseLLMProvider(s string) (LLMProvider, bool) {
	switch LLMProvider(strings.ToUpper(strings.TrimSpace(s))) {
	case ProviderOllama:
		return ProviderOllama, true
	case ProviderOpenRouter:
		return ProviderOpenRouter, true
	}
	return "", false
}

// LLMClient 文本补全客户端 (Ollama / OpenRouter)
type LLMClient interface {
	Provider() LLMProvider
	Generate(ctx context.Context, model, prompt string) (string, error)
}

// NormalizeCountry 国家代码大写，GB 视作 UK
func NormalizeCountry(country string) string {
	c := strings.ToUpper(strings.TrimSpace(country))
	if c == "GB" {
		return "UK"
	}
	return c
}
