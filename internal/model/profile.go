package model

import "strings"

// Seniority 资历级别
type Seniority string

const (
	SeniorityJunior Seniority = "JUNIOR"
	SeniorityMid    Seniority = "MID"
	SenioritySenior Seniority = "SENIOR"
	SeniorityLead   Seniority = "LEAD"
)

// CompanyType 公司类型
type CompanyType string

const (
	CompanyStartup    CompanyType = "STARTUP"
	CompanySME        CompanyType = "SME"
	CompanyScaleup    CompanyType = "SCALEUP"
	CompanyEnterprise CompanyType = "ENTERPRISE"
)

// ContractType 合同类型
type ContractType string

const (
	ContractPermanent ContractType = "PERMANENT"
	ContractFreelance ContractType = "FREELANCE"
)

// Language 文案语言
type Language string

const (
	LanguageFR Language = "FR"
	LanguageEN Language = "EN"
)

// ParseLanguage 解析语言，大小写不敏感，未知值返回false
func ParseLanguage(s string) (Language, bool) {
	switch Language(strings.ToUpper(strings.TrimSpace(s))) {
	case LanguageFR:
		return LanguageFR, true
	case LanguageEN:
		return LanguageEN, true
	}
	return "", false
}

// Experience 单段工作经历
type Experience struct {
	Role         string `json:"role"`
	Company      string `json:"company"`
	Timeframe    string `json:"timeframe,omitempty"`
	Achievements string `json:"achievements"`
}

// ProfileSnapshot 页面上采集到的个人资料快照
// 评分引擎只读，不做修改
type ProfileSnapshot struct {
	Headline    string       `json:"headline,omitempty"`
	About       string       `json:"about,omitempty"`
	Skills      []string     `json:"skills"`
	Experiences []Experience `json:"experiences"`
	Location    string       `json:"location,omitempty"`
	HasPhoto    *bool        `json:"hasPhoto,omitempty"`
	Seniority   Seniority    `json:"seniority,omitempty"`
	TargetRole  string       `json:"targetRole,omitempty"`
	Languages   []string     `json:"languages,omitempty"`
}

// PhotoPresent hasPhoto 明确为 true 时才算有头像
func (p *ProfileSnapshot) PhotoPresent() bool {
	return p.HasPhoto != nil && *p.HasPhoto
}

// SourceAttribution 数据来源
type SourceAttribution struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// DedupSources 按URL去重，保留首次出现的顺序
func DedupSources(sources []SourceAttribution) []SourceAttribution {
	seen := make(map[string]bool, len(sources))
	out := make([]SourceAttribution, 0, len(sources))
	for _, s := range sources {
		if seen[s.URL] {
			continue
		}
		seen[s.URL] = true
		out = append(out, s)
	}
	return out
}
