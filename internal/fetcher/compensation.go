package fetcher

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/naciro2010/ProfileForge/internal/model"
)

// roleBand 岗位关键词对应的薪资区间，keywords 为空表示兜底
type roleBand struct {
	keywords []string
	p25      decimal.Decimal
	median   decimal.Decimal
	p75      decimal.Decimal
}

// regionFactor 地区系数
type regionFactor struct {
	keywords []string
	factor   decimal.Decimal
}

// BaselineTable 基于静态表的基准薪资数据源
type BaselineTable struct {
	name        string
	countries   map[string]bool
	currency    string
	notes       string
	bands       []roleBand
	regions     []regionFactor
	otherRegion decimal.Decimal // 非空但未命中任何地区时的系数
	sources     []model.SourceAttribution
}

func band(p25, median, p75 int64, keywords ...string) roleBand {
	return roleBand{
		keywords: keywords,
		p25:      decimal.NewFromInt(p25),
		median:   decimal.NewFromInt(median),
		p75:      decimal.NewFromInt(p75),
	}
}

// medianBand 只有中位数的数据：p25=0.8×中位数，p75=1.25×中位数
func medianBand(median int64, keywords ...string) roleBand {
	m := decimal.NewFromInt(median)
	return roleBand{
		keywords: keywords,
		p25:      m.Mul(decimal.RequireFromString("0.8")).Round(2),
		median:   m,
		p75:      m.Mul(decimal.RequireFromString("1.25")).Round(2),
	}
}

func region(factor string, keywords ...string) regionFactor {
	return regionFactor{keywords: keywords, factor: decimal.RequireFromString(factor)}
}

func countrySet(codes ...string) map[string]bool {
	m := make(map[string]bool, len(codes))
	for _, c := range codes {
		m[c] = true
	}
	return m
}

// NewApecInseeProvider 法国 (APEC 2024 / INSEE)
func NewApecInseeProvider() *BaselineTable {
	return &BaselineTable{
		name:      "APEC/INSEE",
		countries: countrySet("FR"),
		currency:  "EUR",
		notes:     "APEC 2024 & INSEE: digital managers baseline",
		bands: []roleBand{
			band(42000, 48000, 60000, "data"),
			band(45000, 55000, 68000, "product"),
			band(45000, 55000, 70000, "software", "ingénieur", "engineer"),
			band(38000, 46000, 58000),
		},
		regions: []regionFactor{
			region("1.12", "paris", "île-de-france", "ile-de-france"),
			region("1.05", "lyon"),
		},
		otherRegion: decimal.RequireFromString("0.95"),
		sources: []model.SourceAttribution{
			{Name: "APEC Baromètre 2024", URL: "https://corporate.apec.fr"},
			{Name: "INSEE Salaires", URL: "https://www.insee.fr"},
		},
	}
}

// NewOnsAsheProvider 英国 (ONS ASHE 2024)
func NewOnsAsheProvider() *BaselineTable {
	return &BaselineTable{
		name:      "ONS ASHE",
		countries: countrySet("UK"),
		currency:  "GBP",
		notes:     "ONS ASHE 2024: regional adjustment",
		bands: []roleBand{
			band(38000, 50000, 65000, "data"),
			band(45000, 62000, 80000, "product"),
			band(50000, 70000, 90000, "software"),
			band(35000, 45000, 55000),
		},
		regions: []regionFactor{
			region("1.25", "london"),
			region("0.92", "scotland"),
		},
		otherRegion: decimal.NewFromInt(1),
		sources: []model.SourceAttribution{
			{Name: "ONS ASHE 2024", URL: "https://www.ons.gov.uk/"},
			{Name: "London uplift 2024", URL: "https://www.ons.gov.uk/employmentandlabourmarket/"},
		},
	}
}

// NewBlsProvider 美国 (BLS OEWS 2024)
func NewBlsProvider() *BaselineTable {
	return &BaselineTable{
		name:      "BLS OEWS",
		countries: countrySet("US"),
		currency:  "USD",
		notes:     "BLS OEWS 2024: cost of living adjustment",
		bands: []roleBand{
			band(75000, 95000, 120000, "data"),
			band(90000, 120000, 150000, "product"),
			band(100000, 135000, 180000, "software", "engineer"),
			band(70000, 90000, 110000),
		},
		regions: []regionFactor{
			region("1.18", "california"),
			region("1.2", "new york"),
			region("0.95", "texas"),
		},
		otherRegion: decimal.NewFromInt(1),
		sources: []model.SourceAttribution{
			{Name: "Bureau of Labor Statistics OEWS 2024", URL: "https://www.bls.gov/oes/"},
			{Name: "Cost of Living adjustments", URL: "https://www.bls.gov/cpi/"},
		},
	}
}

// NewEurostatProvider 其他欧元区国家，只有中位数，不做地区调整
func NewEurostatProvider() *BaselineTable {
	return &BaselineTable{
		name:      "Eurostat",
		countries: countrySet("DE", "ES", "IT", "NL", "BE", "IE"),
		currency:  "EUR",
		notes:     "Eurostat Labour Cost Index 2024",
		bands: []roleBand{
			medianBand(52000, "data"),
			medianBand(58000, "product"),
			medianBand(62000, "software"),
			medianBand(46000),
		},
		otherRegion: decimal.NewFromInt(1),
		sources: []model.SourceAttribution{
			{Name: "Eurostat Earnings 2024", URL: "https://ec.europa.eu/eurostat"},
		},
	}
}

// DefaultCompensationProviders 默认注册顺序，国家都不支持时取第一个
func DefaultCompensationProviders() []CompensationProvider {
	return []CompensationProvider{
		NewApecInseeProvider(),
		NewOnsAsheProvider(),
		NewBlsProvider(),
		NewEurostatProvider(),
	}
}

func (t *BaselineTable) Name() string { return t.name }

func (t *BaselineTable) Supports(country string) bool {
	return t.countries[NormalizeCountry(country)]
}

func (t *BaselineTable) DefaultCurrency(string) string { return t.currency }

func (t *BaselineTable) Sources() []model.SourceAttribution {
	out := make([]model.SourceAttribution, len(t.sources))
	copy(out, t.sources)
	return out
}

// Baseline 按岗位关键词选区间，再乘地区系数
func (t *BaselineTable) Baseline(role, region string) (model.BaselineCompensation, bool) {
	lower := strings.ToLower(role)
	for _, b := range t.bands {
		if len(b.keywords) > 0 && !containsAny(lower, b.keywords) {
			continue
		}
		factor := t.regionFactor(region)
		return model.BaselineCompensation{
			P25:      b.p25.Mul(factor),
			Median:   b.median.Mul(factor),
			P75:      b.p75.Mul(factor),
			Currency: t.currency,
			Notes:    t.notes,
		}, true
	}
	return model.BaselineCompensation{}, false
}

func (t *BaselineTable) regionFactor(region string) decimal.Decimal {
	if strings.TrimSpace(region) == "" {
		return decimal.NewFromInt(1)
	}
	lower := strings.ToLower(region)
	for _, r := range t.regions {
		if containsAny(lower, r.keywords) {
			return r.factor
		}
	}
	return t.otherRegion
}

func containsAny(lower string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}
