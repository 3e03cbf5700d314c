package model

// Score breakdown keys
const (
	CategoryHeadline   = "headline"
	CategoryAbout      = "about"
	CategoryExperience = "experience"
	CategorySkills     = "skills"
	CategoryLocation   = "location"
	CategoryKeywords   = "keywords"
	CategoryPhoto      = "photo"
)

// ScoreRequest 评分请求
type ScoreRequest struct {
	Profile  ProfileSnapshot `json:"profile"`
	Keywords []string        `json:"keywords,omitempty"`
}

// ScoreResult 评分结果，Total 为各项之和截断到 [0,100]
type ScoreResult struct {
	Total     int            `json:"total"`
	Breakdown map[string]int `json:"breakdown"`
	Warnings  []string       `json:"warnings"`
}
