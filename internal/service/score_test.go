package service

import (
	"strings"
	"testing"

	"github.com/naciro2010/ProfileForge/internal/model"
)

func boolPtr(b bool) *bool { return &b }

func sumBreakdown(b map[string]int) int {
	sum := 0
	for _, v := range b {
		sum += v
	}
	return sum
}

func completeProfile() model.ProfileSnapshot {
	return model.ProfileSnapshot{
		Headline: "Senior Data Analyst | SQL • Python • Analytics",
		About:    strings.Repeat("I turn raw data into decisions for product teams. ", 20),
		Skills: []string{
			"SQL", "Python", "Tableau", "Power BI", "dbt", "Looker",
			"Statistics", "A/B testing", "Excel", "Airflow", "Spark", "Storytelling",
		},
		Experiences: []model.Experience{
			{Role: "Data Analyst", Company: "Acme", Achievements: "Led the analytics migration and improved NPS by 18%"},
		},
		Location: "Paris, France",
		HasPhoto: boolPtr(true),
	}
}

func TestScoreEmptyProfile(t *testing.T) {
	svc := NewScoreService()
	res := svc.Score(model.ProfileSnapshot{}, nil)

	if res.Total >= 30 {
		t.Errorf("empty profile total = %d, want < 30", res.Total)
	}
	// 只有无关键词时的固定6分
	if res.Total != 6 {
		t.Errorf("empty profile total = %d, want 6", res.Total)
	}
	for _, want := range []string{"headline", "About", "skills", "location", "photo"} {
		found := false
		for _, w := range res.Warnings {
			if strings.Contains(w, want) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("warnings %q missing %q", res.Warnings, want)
		}
	}
	if res.Breakdown[model.CategoryPhoto] != 0 {
		t.Errorf("photo should be present with 0 points, got %v", res.Breakdown)
	}
}

func TestScoreCompleteProfile(t *testing.T) {
	svc := NewScoreService()
	res := svc.Score(completeProfile(), []string{"sql", "analytics", "python"})

	if res.Total < 70 {
		t.Errorf("complete profile total = %d, want >= 70 (breakdown %v)", res.Total, res.Breakdown)
	}
	want := map[string]int{
		"headline": 12, "about": 15, "experience": 14, "skills": 15,
		"location": 6, "keywords": 15, "photo": 4,
	}
	for k, v := range want {
		if res.Breakdown[k] != v {
			t.Errorf("breakdown[%s] = %d, want %d", k, res.Breakdown[k], v)
		}
	}
	if len(res.Warnings) != 0 {
		t.Errorf("unexpected warnings: %q", res.Warnings)
	}
}

func TestScoreTotalMatchesBreakdown(t *testing.T) {
	svc := NewScoreService()
	profiles := []model.ProfileSnapshot{
		{},
		completeProfile(),
		{Headline: strings.Repeat("x", 221), Skills: []string{"a", "b"}},
		{About: "short", Experiences: []model.Experience{{Achievements: "nothing measurable here"}}},
	}
	for i, p := range profiles {
		res := svc.Score(p, []string{"go"})
		if res.Total < 0 || res.Total > 100 {
			t.Errorf("profile %d: total %d out of range", i, res.Total)
		}
		if got := sumBreakdown(res.Breakdown); got != res.Total {
			t.Errorf("profile %d: breakdown sum %d != total %d", i, got, res.Total)
		}
		if len(res.Breakdown) != 7 {
			t.Errorf("profile %d: breakdown has %d categories", i, len(res.Breakdown))
		}
	}
}

func TestScoreHeadline(t *testing.T) {
	svc := NewScoreService()
	testCases := []struct {
		headline string
		want     int
	}{
		{"", 0},
		{"   ", 0},
		{"Data Analyst", 12},
		{strings.Repeat("é", 220), 12},
		{strings.Repeat("é", 221), 6},
	}
	for _, tc := range testCases {
		res := svc.Score(model.ProfileSnapshot{Headline: tc.headline}, nil)
		if got := res.Breakdown[model.CategoryHeadline]; got != tc.want {
			t.Errorf("headline len %d: got %d, want %d", len([]rune(tc.headline)), got, tc.want)
		}
	}
}

func TestScoreAboutAndSkillsThresholds(t *testing.T) {
	svc := NewScoreService()
	aboutCases := []struct {
		n    int
		want int
	}{{0, 0}, {399, 8}, {400, 12}, {799, 12}, {800, 15}}
	for _, tc := range aboutCases {
		res := svc.Score(model.ProfileSnapshot{About: strings.Repeat("a", tc.n)}, nil)
		if got := res.Breakdown[model.CategoryAbout]; got != tc.want {
			t.Errorf("about len %d: got %d, want %d", tc.n, got, tc.want)
		}
	}

	skillCases := []struct {
		n    int
		want int
	}{{0, 0}, {1, 5}, {4, 5}, {5, 8}, {7, 8}, {8, 12}, {11, 12}, {12, 15}, {30, 15}}
	for _, tc := range skillCases {
		skills := make([]string, tc.n)
		for i := range skills {
			skills[i] = "skill"
		}
		res := svc.Score(model.ProfileSnapshot{Skills: skills}, nil)
		if got := res.Breakdown[model.CategorySkills]; got != tc.want {
			t.Errorf("%d skills: got %d, want %d", tc.n, got, tc.want)
		}
	}
}

func TestScoreExperienceCaps(t *testing.T) {
	svc := NewScoreService()
	strong := model.Experience{Role: "r", Company: "c", Achievements: "Built a platform that scaled revenue by 40%"}
	plain := model.Experience{Role: "r", Company: "c", Achievements: "Responsible for reporting"}

	res := svc.Score(model.ProfileSnapshot{Experiences: []model.Experience{plain}}, nil)
	if got := res.Breakdown[model.CategoryExperience]; got != 6 {
		t.Errorf("plain experience = %d, want 6", got)
	}

	res = svc.Score(model.ProfileSnapshot{Experiences: []model.Experience{strong, strong, strong}}, nil)
	if got := res.Breakdown[model.CategoryExperience]; got != 28 {
		t.Errorf("three strong experiences = %d, want 28", got)
	}
}

func TestScoreKeywords(t *testing.T) {
	svc := NewScoreService()
	profile := model.ProfileSnapshot{Headline: "Product Manager", Skills: []string{"Roadmapping"}}

	testCases := []struct {
		keywords []string
		want     int
		warn     bool
	}{
		{nil, 6, false},
		{[]string{"", "  "}, 6, false},
		{[]string{"product"}, 15, false},
		{[]string{"product", "roadmap", "sql"}, 10, false},
		{[]string{"product", "sql"}, 8, true}, // 7.5 四舍五入为 8
		{[]string{"sql", "python", "go"}, 0, true},
	}
	for _, tc := range testCases {
		res := svc.Score(profile, tc.keywords)
		if got := res.Breakdown[model.CategoryKeywords]; got != tc.want {
			t.Errorf("keywords %q: got %d, want %d", tc.keywords, got, tc.want)
		}
		hasWarn := false
		for _, w := range res.Warnings {
			if strings.Contains(w, "keywords") {
				hasWarn = true
			}
		}
		if hasWarn != tc.warn {
			t.Errorf("keywords %q: warning = %v, want %v", tc.keywords, hasWarn, tc.warn)
		}
	}
}

func TestScorePhoto(t *testing.T) {
	svc := NewScoreService()
	for _, tc := range []struct {
		photo *bool
		want  int
	}{{nil, 0}, {boolPtr(false), 0}, {boolPtr(true), 4}} {
		res := svc.Score(model.ProfileSnapshot{HasPhoto: tc.photo}, nil)
		if got := res.Breakdown[model.CategoryPhoto]; got != tc.want {
			t.Errorf("photo %v: got %d, want %d", tc.photo, got, tc.want)
		}
	}
}

func TestScoreDoesNotMutateProfile(t *testing.T) {
	svc := NewScoreService()
	p := completeProfile()
	before := strings.Join(p.Skills, ",")
	svc.Score(p, []string{"SQL"})
	if after := strings.Join(p.Skills, ","); after != before {
		t.Errorf("skills mutated: %q -> %q", before, after)
	}
}
