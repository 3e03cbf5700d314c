package model

// SuggestRequest 文案建议请求
type SuggestRequest struct {
	Profile    ProfileSnapshot `json:"profile"`
	TargetRole string          `json:"targetRole,omitempty"`
	Language   string          `json:"language,omitempty"`
}

// CopyBlock 一段带标签的候选文案
type CopyBlock struct {
	Label   string `json:"label"`
	Content string `json:"content"`
}

// SkillSuggestions 技能分组
type SkillSuggestions struct {
	Core       []string `json:"core"`
	Trending   []string `json:"trending"`
	NiceToHave []string `json:"niceToHave"`
}

// ExperienceSuggestion 经历要点
type ExperienceSuggestion struct {
	Role    string   `json:"role"`
	Company string   `json:"company"`
	Bullets []string `json:"bullets"`
}

// SuggestionResult 文案建议结果
type SuggestionResult struct {
	Headline    []CopyBlock            `json:"headline"`
	About       []CopyBlock            `json:"about"`
	Skills      SkillSuggestions       `json:"skills"`
	Experiences []ExperienceSuggestion `json:"experiences"`
}

// RewriteRequest 面向目标岗位的整体改写请求
type RewriteRequest struct {
	Profile           ProfileSnapshot `json:"profile"`
	TargetRole        string          `json:"targetRole,omitempty"`
	TargetDescription string          `json:"targetDescription,omitempty"`
	Provider          string          `json:"provider,omitempty"`
	Model             string          `json:"model,omitempty"`
	Language          string          `json:"language,omitempty"`
}

// ExperienceBullets 改写后的经历要点
type ExperienceBullets struct {
	Company string   `json:"company"`
	Title   string   `json:"title"`
	Bullets []string `json:"bullets"`
}

// RewriteResult 改写结果
type RewriteResult struct {
	Headline          string              `json:"headline"`
	About             string              `json:"about"`
	Skills            []string            `json:"skills"`
	ExperienceBullets []ExperienceBullets `json:"experienceBullets"`
}
