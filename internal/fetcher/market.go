package fetcher

import (
	"context"
	"strings"
	"time"

	"github.com/naciro2010/ProfileForge/internal/model"
)

// Clock 可注入的时钟，测试时固定时间
type Clock func() time.Time

func clockOrNow(c Clock) Clock {
	if c == nil {
		return time.Now
	}
	return c
}

// IndeedHiringLabProvider Indeed Hiring Lab 数据，按岗位分组给技能
type IndeedHiringLabProvider struct {
	now Clock
}

// NewIndeedHiringLabProvider 创建 Indeed 数据源
func NewIndeedHiringLabProvider(now Clock) *IndeedHiringLabProvider {
	return &IndeedHiringLabProvider{now: clockOrNow(now)}
}

func (p *IndeedHiringLabProvider) Name() string { return "Indeed Hiring Lab" }

func (p *IndeedHiringLabProvider) Supports(country string) bool {
	switch NormalizeCountry(country) {
	case "US", "FR", "UK", "CA", "DE":
		return true
	}
	return false
}

func (p *IndeedHiringLabProvider) Fetch(_ context.Context, req model.MarketIntelRequest) (*model.ProviderResult, error) {
	const label = "Indeed Hiring Lab"
	role := strings.ToLower(req.Role)

	var skills []model.SkillInsight
	switch {
	case strings.Contains(role, "data"):
		skills = []model.SkillInsight{
			{Name: "SQL", Category: model.SkillCore, Source: label},
			{Name: "Exploratory analysis", Category: model.SkillCore, Source: label},
			{Name: "Data storytelling", Category: model.SkillSoft, Source: label},
		}
	case strings.Contains(role, "product"):
		skills = []model.SkillInsight{
			{Name: "Discovery", Category: model.SkillCore, Source: label},
			{Name: "Cross-functional collaboration", Category: model.SkillSoft, Source: label},
			{Name: "Experimentation", Category: model.SkillTrending, Source: label},
		}
	default:
		skills = []model.SkillInsight{
			{Name: "Communication", Category: model.SkillSoft, Source: label},
			{Name: "Adaptability", Category: model.SkillSoft, Source: label},
			{Name: "Digital skills", Category: model.SkillCore, Source: label},
		}
	}

	return &model.ProviderResult{
		RefreshedAt: p.now(),
		Skills:      skills,
		RecruiterSignals: []model.RecruiterSignal{
			{
				Statement: "Quantify your impact within the first 90 days.",
				Rationale: "Indeed Hiring Lab sees a rise in postings that value measurable results.",
			},
			{
				Statement: "Highlight transferable skills.",
				Rationale: "Recruiters favour a skills-first approach.",
			},
		},
		Sources: []model.SourceAttribution{
			{Name: "Indeed Hiring Lab 2025", URL: "https://hiringlab.org"},
		},
	}, nil
}

// ShrmProvider SHRM 人才趋势，北美与英国
type ShrmProvider struct {
	now Clock
}

// NewShrmProvider 创建 SHRM 数据源
func NewShrmProvider(now Clock) *ShrmProvider {
	return &ShrmProvider{now: clockOrNow(now)}
}

func (p *ShrmProvider) Name() string { return "SHRM" }

func (p *ShrmProvider) Supports(country string) bool {
	switch NormalizeCountry(country) {
	case "US", "CA", "UK":
		return true
	}
	return false
}

func (p *ShrmProvider) Fetch(_ context.Context, _ model.MarketIntelRequest) (*model.ProviderResult, error) {
	return &model.ProviderResult{
		RefreshedAt: p.now().Add(-24 * time.Hour),
		Skills: []model.SkillInsight{
			{Name: "Collaborative soft skills", Category: model.SkillSoft, Source: "SHRM"},
			{Name: "Continuous upskilling", Category: model.SkillTrending, Source: "SHRM"},
		},
		RecruiterSignals: []model.RecruiterSignal{
			{Statement: "Mention your AI upskilling journey.", Rationale: "SHRM recommends proving adaptability."},
			{Statement: "Show cross-team collaboration.", Rationale: "US recruiters value this skill in 2025."},
		},
		Sources: []model.SourceAttribution{
			{Name: "SHRM Talent Trends 2025", URL: "https://www.shrm.org"},
		},
	}, nil
}

// PressInsightsProvider 财经媒体观察，全球通用兜底
type PressInsightsProvider struct {
	now Clock
}

// NewPressInsightsProvider 创建媒体数据源
func NewPressInsightsProvider(now Clock) *PressInsightsProvider {
	return &PressInsightsProvider{now: clockOrNow(now)}
}

func (p *PressInsightsProvider) Name() string { return "Press insights" }

func (p *PressInsightsProvider) Supports(string) bool { return true }

func (p *PressInsightsProvider) Fetch(_ context.Context, _ model.MarketIntelRequest) (*model.ProviderResult, error) {
	return &model.ProviderResult{
		RefreshedAt: p.now().Add(-48 * time.Hour),
		Skills: []model.SkillInsight{
			{Name: "AI literacy", Category: model.SkillTrending, Source: "Forbes"},
			{Name: "Communication", Category: model.SkillSoft, Source: "Axios"},
			{Name: "Resilience", Category: model.SkillSoft, Source: "Financial Times"},
		},
		RecruiterSignals: []model.RecruiterSignal{
			{
				Statement: "Prove hands-on mastery of generative AI.",
				Rationale: "Business press stresses that employers expect concrete command of AI tools.",
			},
		},
		Sources: []model.SourceAttribution{
			{Name: "Forbes - Skills on the Rise 2025", URL: "https://www.forbes.com"},
			{Name: "Axios - Soft Skills 2025", URL: "https://www.axios.com"},
		},
	}, nil
}

// DefaultMarketIntelProviders 默认数据源
func DefaultMarketIntelProviders(now Clock) []MarketIntelProvider {
	return []MarketIntelProvider{
		NewIndeedHiringLabProvider(now),
		NewShrmProvider(now),
		NewPressInsightsProvider(now),
	}
}
