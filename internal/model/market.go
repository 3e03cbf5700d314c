package model

import (
	"strings"
	"time"
)

// SkillCategory 技能分类
type SkillCategory string

const (
	SkillCore     SkillCategory = "CORE"
	SkillTrending SkillCategory = "TRENDING"
	SkillSoft     SkillCategory = "SOFT"
)

// MarketIntelRequest 市场情报请求，同时用作缓存键
type MarketIntelRequest struct {
	Role      string    `json:"role"`
	Country   string    `json:"country"`
	Seniority Seniority `json:"seniority,omitempty"`
	Industry  string    `json:"industry,omitempty"`
}

// CacheKey 归一化缓存键: role小写|country大写|seniority|industry小写
func (r MarketIntelRequest) CacheKey() string {
	return strings.Join([]string{
		strings.ToLower(strings.TrimSpace(r.Role)),
		strings.ToUpper(strings.TrimSpace(r.Country)),
		string(r.Seniority),
		strings.ToLower(strings.TrimSpace(r.Industry)),
	}, "|")
}

// SkillInsight 技能洞察
type SkillInsight struct {
	Name     string        `json:"name"`
	Category SkillCategory `json:"category"`
	Source   string        `json:"source"`
}

// RecruiterSignal 招聘方信号
type RecruiterSignal struct {
	Statement string `json:"statement"`
	Rationale string `json:"rationale"`
}

// ProviderResult 单个数据源的结果
type ProviderResult struct {
	RefreshedAt      time.Time
	Skills           []SkillInsight
	RecruiterSignals []RecruiterSignal
	Sources          []SourceAttribution
}

// MarketIntelResult 聚合后的市场情报
type MarketIntelResult struct {
	RefreshedAt      time.Time           `json:"refreshedAt"`
	Skills           []SkillInsight      `json:"skills"`
	RecruiterSignals []RecruiterSignal   `json:"recruiterSignals"`
	Sources          []SourceAttribution `json:"sources"`
}
