package service

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/naciro2010/ProfileForge/internal/fetcher"
	"github.com/naciro2010/ProfileForge/internal/model"
	"github.com/naciro2010/ProfileForge/internal/utils"
)

const billableDaysPerYear = 218

// freelanceSources 自由职业日费率参考
var freelanceSources = []model.SourceAttribution{
	{Name: "BDM - Baromètre Freelance 2025", URL: "https://www.blogdumoderateur.com"},
	{Name: "Silkhom TJM 2024", URL: "https://www.silkhom.com"},
	{Name: "Hays Salary Guide 2025", URL: "https://www.hays.fr"},
}

var (
	seniorityMultipliers = map[model.Seniority]decimal.Decimal{
		model.SeniorityJunior: decimal.RequireFromString("0.85"),
		model.SeniorityMid:    decimal.NewFromInt(1),
		model.SenioritySenior: decimal.RequireFromString("1.15"),
		model.SeniorityLead:   decimal.RequireFromString("1.25"),
	}
	companyMultipliers = map[model.CompanyType]decimal.Decimal{
		model.CompanyStartup:    decimal.RequireFromString("0.95"),
		model.CompanySME:        decimal.NewFromInt(1),
		model.CompanyScaleup:    decimal.RequireFromString("1.05"),
		model.CompanyEnterprise: decimal.RequireFromString("1.10"),
	}
	dayRateCoefficients = map[string]decimal.Decimal{
		"FR": decimal.RequireFromString("1.9"),
		"UK": decimal.RequireFromString("1.7"),
		"US": decimal.RequireFromString("1.6"),
	}
	defaultDayRateCoefficient = decimal.RequireFromString("1.8")
)

// industryRule 行业关键词，按顺序第一个命中的生效
type industryRule struct {
	substrings []string
	words      []string // 短缩写按整词匹配
	multiplier decimal.Decimal
}

var industryRules = []industryRule{
	{substrings: []string{"data"}, multiplier: decimal.RequireFromString("1.05")},
	{substrings: []string{"cyber", "security", "sécurité"}, multiplier: decimal.RequireFromString("1.08")},
	{
		substrings: []string{"artificial intelligence", "intelligence artificielle", "machine learning"},
		words:      []string{"ai", "ia", "ml", "genai"},
		multiplier: decimal.RequireFromString("1.10"),
	},
}

// CompensationService 薪资估算，无状态可并发调用
type CompensationService struct {
	providers []fetcher.CompensationProvider
	logger    *slog.Logger
}

// NewCompensationService 创建薪资估算服务，providers 顺序即优先级
func NewCompensationService(providers []fetcher.CompensationProvider, logger *slog.Logger) *CompensationService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CompensationService{providers: providers, logger: logger}
}

// Estimate 估算薪资区间，永不失败
func (s *CompensationService) Estimate(req model.CompensationRequest) *model.CompensationResult {
	provider := s.selectProvider(req.Country)
	if provider == nil {
		s.logger.Warn("no compensation provider configured, returning defaults", "country", req.Country)
		return defaultCompensation(req, "EUR")
	}

	baseline, ok := provider.Baseline(req.Role, req.Region)
	if !ok {
		baseline, ok = provider.Baseline("generic", req.Region)
	}
	if !ok {
		s.logger.Warn("provider has no baseline, returning defaults", "provider", provider.Name(), "role", req.Role)
		return defaultCompensation(req, provider.DefaultCurrency(req.Country))
	}

	multiplier := computeMultiplier(req)
	low := baseline.P25.Mul(multiplier).Round(0)
	median := baseline.Median.Mul(multiplier).Round(0)
	high := baseline.P75.Mul(multiplier).Round(0)

	currency := baseline.Currency
	if currency == "" {
		currency = provider.DefaultCurrency(req.Country)
	}
	if req.Currency != "" {
		currency = strings.ToUpper(req.Currency)
	}

	justifications := buildJustifications(baseline.Notes, req)
	sources := provider.Sources()
	freelance := req.ContractType == model.ContractFreelance
	if freelance {
		sources = append(sources, freelanceSources...)
	}

	result := &model.CompensationResult{
		Currency:       currency,
		Period:         model.PeriodAnnual,
		Low:            low,
		Median:         median,
		High:           high,
		Justifications: justifications,
		Sources:        model.DedupSources(sources),
	}

	if freelance {
		coefficient := dayRateCoefficient(req.Country)
		result.Period = model.PeriodDaily
		result.Low = toDailyRate(low, coefficient)
		result.Median = toDailyRate(median, coefficient)
		result.High = toDailyRate(high, coefficient)
		result.Justifications = append(result.Justifications, "Daily rate conversion: employer overhead and time off taken into account")
	}
	return result
}

func (s *CompensationService) selectProvider(country string) fetcher.CompensationProvider {
	for _, p := range s.providers {
		if p.Supports(country) {
			return p
		}
	}
	if len(s.providers) > 0 {
		return s.providers[0]
	}
	return nil
}

func computeMultiplier(req model.CompensationRequest) decimal.Decimal {
	m := decimal.NewFromInt(1)
	if v, ok := seniorityMultipliers[req.Seniority]; ok {
		m = m.Mul(v)
	}
	if v, ok := companyMultipliers[req.CompanyType]; ok {
		m = m.Mul(v)
	}
	return m.Mul(industryMultiplier(req.Industry))
}

func industryMultiplier(industry string) decimal.Decimal {
	if isBlank(industry) {
		return decimal.NewFromInt(1)
	}
	for _, rule := range industryRules {
		if utils.ContainsAnyFold(industry, rule.substrings...) {
			return rule.multiplier
		}
		for _, w := range rule.words {
			if utils.ContainsWordFold(industry, w) {
				return rule.multiplier
			}
		}
	}
	return decimal.NewFromInt(1)
}

func dayRateCoefficient(country string) decimal.Decimal {
	if c, ok := dayRateCoefficients[fetcher.NormalizeCountry(country)]; ok {
		return c
	}
	return defaultDayRateCoefficient
}

// toDailyRate 年薪/218 保留两位，再乘系数取整，均为四舍五入
func toDailyRate(annual, coefficient decimal.Decimal) decimal.Decimal {
	perDay := annual.DivRound(decimal.NewFromInt(billableDaysPerYear), 2)
	return perDay.Mul(coefficient).Round(0)
}

func buildJustifications(notes string, req model.CompensationRequest) []string {
	reasons := []string{notes}

	switch req.Seniority {
	case model.SeniorityJunior:
		reasons = append(reasons, "Junior seniority: positioned below the market median")
	case model.SenioritySenior:
		reasons = append(reasons, "Senior seniority: positioned above the market median")
	case model.SeniorityLead:
		reasons = append(reasons, "Lead seniority: premium for team leadership")
	}

	switch req.CompanyType {
	case model.CompanyStartup:
		reasons = append(reasons, "Startup: lighter package, equity possible")
	case model.CompanyScaleup:
		reasons = append(reasons, "Scale-up: uplift to attract talent")
	case model.CompanyEnterprise:
		reasons = append(reasons, "Large company: uplift from structured salary grids")
	}

	if !isBlank(req.Industry) {
		reasons = append(reasons, fmt.Sprintf("Sector %s: market adjustment applied", strings.TrimSpace(req.Industry)))
	}
	return reasons
}

func defaultCompensation(req model.CompensationRequest, fallbackCurrency string) *model.CompensationResult {
	currency := fallbackCurrency
	if currency == "" {
		currency = "EUR"
	}
	if req.Currency != "" {
		currency = strings.ToUpper(req.Currency)
	}
	sources := make([]model.SourceAttribution, len(freelanceSources))
	copy(sources, freelanceSources)
	return &model.CompensationResult{
		Currency:       currency,
		Period:         model.PeriodAnnual,
		Low:            decimal.NewFromInt(45000),
		Median:         decimal.NewFromInt(55000),
		High:           decimal.NewFromInt(65000),
		Justifications: []string{"Default range: public benchmark data unavailable"},
		Sources:        sources,
	}
}
