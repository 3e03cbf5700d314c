package model

import "github.com/shopspring/decimal"

func init() {
	// 金额以JSON数字输出，插件端直接做数值运算
	decimal.MarshalJSONWithoutQuotes = true
}

// CompensationPeriod 薪资周期
type CompensationPeriod string

const (
	PeriodAnnual CompensationPeriod = "ANNUAL"
	PeriodDaily  CompensationPeriod = "DAILY"
)

// CompensationRequest 薪资估算请求
type CompensationRequest struct {
	Role         string       `json:"role"`
	Country      string       `json:"country"`
	Region       string       `json:"region,omitempty"`
	Seniority    Seniority    `json:"seniority,omitempty"`
	CompanyType  CompanyType  `json:"companyType,omitempty"`
	ContractType ContractType `json:"contractType,omitempty"`
	Industry     string       `json:"industry,omitempty"`
	Currency     string       `json:"currency,omitempty"`
}

// BaselineCompensation 未经调整的市场薪资区间
type BaselineCompensation struct {
	P25      decimal.Decimal
	Median   decimal.Decimal
	P75      decimal.Decimal
	Currency string
	Notes    string
}

// CompensationResult 薪资估算结果
type CompensationResult struct {
	Currency       string              `json:"currency"`
	Period         CompensationPeriod  `json:"period"`
	Low            decimal.Decimal     `json:"low"`
	Median         decimal.Decimal     `json:"median"`
	High           decimal.Decimal     `json:"high"`
	Justifications []string            `json:"justifications"`
	Sources        []SourceAttribution `json:"sources"`
}
