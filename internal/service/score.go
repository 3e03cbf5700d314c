package service

import (
	"math"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/naciro2010/ProfileForge/internal/model"
)

const (
	maxHeadlineLen      = 220
	maxExperiencePoints = 14
	maxExperienceTotal  = 28
	keywordPoints       = 15
	keywordWarnBelow    = 9
)

var numericRe = regexp.MustCompile(`\d+%?`)

// actionVerbs 成就描述中的动作动词（英法两种写法）
var actionVerbs = []string{
	"led", "built", "boosted", "created", "delivered", "scaled", "piloted", "improved",
	"piloté", "dirigé", "créé", "lancé", "optimisé", "amélioré", "déployé",
}

// ScoreService 资料评分，纯计算无IO，可并发调用
type ScoreService struct{}

// NewScoreService 创建评分服务
func NewScoreService() *ScoreService {
	return &ScoreService{}
}

// Score 计算总分、分项和提示
func (s *ScoreService) Score(profile model.ProfileSnapshot, keywords []string) *model.ScoreResult {
	breakdown := make(map[string]int, 7)
	var warnings []string
	total := 0

	add := func(category string, points int, warning string) {
		breakdown[category] = points
		total += points
		if warning != "" {
			warnings = append(warnings, warning)
		}
	}

	// headline
	switch {
	case isBlank(profile.Headline):
		add(model.CategoryHeadline, 0, "Add a clear headline (220 characters max).")
	case utf8.RuneCountInString(profile.Headline) > maxHeadlineLen:
		add(model.CategoryHeadline, 6, "Your headline exceeds 220 characters.")
	default:
		add(model.CategoryHeadline, 12, "")
	}

	// about
	aboutLen := utf8.RuneCountInString(profile.About)
	switch {
	case isBlank(profile.About):
		add(model.CategoryAbout, 0, "Write a structured About section (200+ characters).")
	case aboutLen < 400:
		add(model.CategoryAbout, 8, "")
	case aboutLen < 800:
		add(model.CategoryAbout, 12, "")
	default:
		add(model.CategoryAbout, 15, "")
	}

	// experience
	experience := 0
	for _, exp := range profile.Experiences {
		experience += scoreExperience(exp)
	}
	expWarning := ""
	if len(profile.Experiences) == 0 {
		expWarning = "Add at least one recent experience with metrics."
	}
	add(model.CategoryExperience, min(experience, maxExperienceTotal), expWarning)

	// skills
	switch n := len(profile.Skills); {
	case n == 0:
		add(model.CategorySkills, 0, "Add your key skills.")
	case n >= 12:
		add(model.CategorySkills, 15, "")
	case n >= 8:
		add(model.CategorySkills, 12, "")
	case n >= 5:
		add(model.CategorySkills, 8, "")
	default:
		add(model.CategorySkills, 5, "")
	}

	// location
	if isBlank(profile.Location) {
		add(model.CategoryLocation, 0, "Add your location to show up in local searches.")
	} else {
		add(model.CategoryLocation, 6, "")
	}

	// keywords
	kws := nonBlank(keywords)
	if len(kws) == 0 {
		add(model.CategoryKeywords, 6, "")
	} else {
		points := keywordScore(profile, kws)
		warning := ""
		if points < keywordWarnBelow {
			warning = "Work more of the target job's keywords into your profile."
		}
		add(model.CategoryKeywords, points, warning)
	}

	// photo
	if profile.PhotoPresent() {
		add(model.CategoryPhoto, 4, "")
	} else {
		add(model.CategoryPhoto, 0, "Add a professional photo.")
	}

	if warnings == nil {
		warnings = []string{}
	}
	return &model.ScoreResult{
		Total:     clamp(total, 0, 100),
		Breakdown: breakdown,
		Warnings:  warnings,
	}
}

func scoreExperience(exp model.Experience) int {
	points := 6
	lower := strings.ToLower(exp.Achievements)
	for _, verb := range actionVerbs {
		if strings.Contains(lower, verb) {
			points += 4
			break
		}
	}
	if numericRe.MatchString(exp.Achievements) {
		points += 4
	}
	return min(points, maxExperiencePoints)
}

// keywordScore 命中比例×15，四舍五入
func keywordScore(profile model.ProfileSnapshot, keywords []string) int {
	headline := strings.ToLower(profile.Headline)
	about := strings.ToLower(profile.About)
	skills := make([]string, len(profile.Skills))
	for i, sk := range profile.Skills {
		skills[i] = strings.ToLower(sk)
	}

	matched := 0
	for _, kw := range keywords {
		kw = strings.ToLower(kw)
		if strings.Contains(headline, kw) || strings.Contains(about, kw) || anyContains(skills, kw) {
			matched++
		}
	}
	ratio := float64(matched) / float64(len(keywords))
	return int(math.Floor(ratio*keywordPoints + 0.5))
}

func anyContains(items []string, needle string) bool {
	for _, it := range items {
		if strings.Contains(it, needle) {
			return true
		}
	}
	return false
}

func nonBlank(items []string) []string {
	var out []string
	for _, it := range items {
		if t := strings.TrimSpace(it); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
