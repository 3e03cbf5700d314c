package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/naciro2010/ProfileForge/internal/cache"
	"github.com/naciro2010/ProfileForge/internal/fetcher"
	"github.com/naciro2010/ProfileForge/internal/model"
	"github.com/naciro2010/ProfileForge/internal/service"
)

const testAPIKey = "secret"

func newTestRouter(t *testing.T, registry *fetcher.LLMRegistry, capacity int) http.Handler {
	t.Helper()
	if registry == nil {
		registry = fetcher.NewLLMRegistry(fetcher.LLMFunc{
			Name: fetcher.ProviderOllama,
			Fn: func(context.Context, string, string) (string, error) {
				return "ABOUT::Vision||Je relie la donnée aux décisions.", nil
			},
		})
	}
	svc := Services{
		Score:        service.NewScoreService(),
		Compensation: service.NewCompensationService(fetcher.DefaultCompensationProviders(), nil),
		MarketIntel: service.NewMarketIntelService(
			fetcher.DefaultMarketIntelProviders(nil), cache.NewMemoryCache("market_intel", 10), time.Hour, nil),
		Suggestion: service.NewSuggestionService(nil, registry, service.SuggestionOptions{}, nil),
	}
	router, err := NewRouter(svc, Options{
		APIKey:            testAPIKey,
		AllowedOrigins:    []string{"chrome-extension://*"},
		RateLimitCapacity: capacity,
		RateLimitWindow:   time.Minute,
		Version:           "test",
	})
	if err != nil {
		t.Fatalf("NewRouter: %v", err)
	}
	return router
}

func do(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apiKeyHeader, testAPIKey)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("response is not JSON: %v\n%s", err, rec.Body.String())
	}
}

const profileJSON = `{
  "headline": "Data Analyst | SQL",
  "about": "<p>I turn data into decisions.</p>",
  "skills": ["SQL", "Python"],
  "experiences": [{"role": "Data Analyst", "company": "Acme", "achievements": "<ul><li>Reduced churn by 18%</li></ul>"}],
  "location": "Paris",
  "hasPhoto": true,
  "languages": ["fr", "en-gb"]
}`

func TestHealthNeedsNoKey(t *testing.T) {
	router := newTestRouter(t, nil, 30)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string]string
	decodeBody(t, rec, &body)
	if body["status"] != "ok" || body["version"] != "test" {
		t.Errorf("body = %+v", body)
	}
}

func TestAPIKeyRequired(t *testing.T) {
	router := newTestRouter(t, nil, 30)
	for _, key := range []string{"", "wrong"} {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/score", strings.NewReader(`{"profile":{}}`))
		if key != "" {
			req.Header.Set(apiKeyHeader, key)
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("key %q: status = %d, want 401", key, rec.Code)
		}
	}
}

func TestCORSPreflight(t *testing.T) {
	router := newTestRouter(t, nil, 30)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/score", nil)
	req.Header.Set("Origin", "chrome-extension://abcdef")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("preflight status = %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "chrome-extension://abcdef" {
		t.Errorf("allow origin = %q", got)
	}

	req = httptest.NewRequest(http.MethodOptions, "/api/v1/score", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("foreign origin allowed: %q", got)
	}
}

func TestScoreEndpoint(t *testing.T) {
	router := newTestRouter(t, nil, 30)
	rec := do(router, http.MethodPost, "/api/v1/score", `{"profile":`+profileJSON+`,"keywords":["SQL"]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var res model.ScoreResult
	decodeBody(t, rec, &res)
	if res.Breakdown[model.CategoryHeadline] != 12 || res.Breakdown[model.CategoryPhoto] == 0 {
		t.Errorf("breakdown = %+v", res.Breakdown)
	}
	if res.Total <= 0 || res.Total > 100 {
		t.Errorf("total = %d", res.Total)
	}
}

func TestScoreKeepsPlainAngleBrackets(t *testing.T) {
	router := newTestRouter(t, nil, 30)
	body := `{"profile":{
  "headline": "Data Analyst | SQL",
  "about": "I compare p50 <p95 latency <and cost for every release.",
  "skills": ["SQL"],
  "experiences": [{"role": "SRE", "company": "Acme", "achievements": "Cut latency <p95 target by 40%"}]
},"keywords":["cost"]}`
	rec := do(router, http.MethodPost, "/api/v1/score", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var got model.ScoreResult
	decodeBody(t, rec, &got)

	want := service.NewScoreService().Score(model.ProfileSnapshot{
		Headline: "Data Analyst | SQL",
		About:    "I compare p50 <p95 latency <and cost for every release.",
		Skills:   []string{"SQL"},
		Experiences: []model.Experience{
			{Role: "SRE", Company: "Acme", Achievements: "Cut latency <p95 target by 40%"},
		},
	}, []string{"cost"})
	if got.Total != want.Total {
		t.Errorf("total = %d, want %d", got.Total, want.Total)
	}
	for cat, pts := range want.Breakdown {
		if got.Breakdown[cat] != pts {
			t.Errorf("breakdown[%s] = %d, want %d", cat, got.Breakdown[cat], pts)
		}
	}
}

func TestValidationErrors(t *testing.T) {
	router := newTestRouter(t, nil, 30)
	testCases := []struct {
		name, path, body string
	}{
		{"malformed json", "/api/v1/score", `{"profile":`},
		{"missing profile", "/api/v1/score", `{"keywords":["x"]}`},
		{"bad seniority", "/api/v1/score", `{"profile":{"seniority":"INTERN"}}`},
		{"bad language tag", "/api/v1/score", `{"profile":{"languages":["not a tag!"]}}`},
		{"country name", "/api/v1/compensation", `{"role":"Data Analyst","country":"France"}`},
		{"unknown currency", "/api/v1/compensation", `{"role":"Data Analyst","country":"FR","currency":"QQQ"}`},
		{"blank role", "/api/v1/market-intel", `{"role":"  ","country":"FR"}`},
		{"target without role", "/api/v1/target", `{"profile":{}}`},
		{"bad suggest language", "/api/v1/suggest", `{"profile":{},"language":"de"}`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(router, http.MethodPost, tc.path, tc.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400: %s", rec.Code, rec.Body.String())
			}
			var res ErrorResponse
			decodeBody(t, rec, &res)
			if res.Error == "" || len(res.Details) == 0 {
				t.Errorf("error body = %+v", res)
			}
		})
	}
}

func TestCompensationEndpoint(t *testing.T) {
	router := newTestRouter(t, nil, 30)
	rec := do(router, http.MethodPost, "/api/v1/compensation",
		`{"role":"Data Analyst","country":"fr","seniority":"SENIOR","companyType":"ENTERPRISE","currency":"jpy"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var res struct {
		Currency string  `json:"currency"`
		Period   string  `json:"period"`
		Median   float64 `json:"median"`
	}
	decodeBody(t, rec, &res)
	if res.Currency != "JPY" || res.Period != "ANNUAL" || res.Median != 60720 {
		t.Errorf("result = %+v", res)
	}
}

func TestMarketIntelEndpoint(t *testing.T) {
	router := newTestRouter(t, nil, 30)
	rec := do(router, http.MethodPost, "/api/v1/market-intel", `{"role":"Data Analyst","country":"FR"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var res model.MarketIntelResult
	decodeBody(t, rec, &res)
	if len(res.Skills) == 0 || len(res.Sources) == 0 || res.RefreshedAt.IsZero() {
		t.Errorf("result = %+v", res)
	}
	if !strings.Contains(rec.Body.String(), `"recruiterSignals"`) {
		t.Errorf("expected camelCase fields: %s", rec.Body.String())
	}
}

func TestSuggestEndpoint(t *testing.T) {
	router := newTestRouter(t, nil, 30)
	rec := do(router, http.MethodPost, "/api/v1/suggest", `{"profile":`+profileJSON+`,"language":"fr"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var res model.SuggestionResult
	decodeBody(t, rec, &res)
	if len(res.Headline) != 3 || len(res.About) != 3 {
		t.Errorf("headline %d / about %d", len(res.Headline), len(res.About))
	}
	if strings.Contains(res.About[0].Content, "<li>") {
		t.Errorf("markup should be stripped: %q", res.About[0].Content)
	}
	if got := res.Experiences[0].Bullets; len(got) != 1 || got[0] != "Reduced churn by 18%" {
		t.Errorf("bullets = %q", got)
	}
}

func TestSuggestWithoutLLMClient(t *testing.T) {
	router := newTestRouter(t, fetcher.NewLLMRegistry(), 30)
	rec := do(router, http.MethodPost, "/api/v1/suggest", `{"profile":{}}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}

func TestSuggestStreamEndpoint(t *testing.T) {
	router := newTestRouter(t, nil, 30)
	rec := do(router, http.MethodPost, "/api/v1/suggest/stream", `{"profile":`+profileJSON+`}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Errorf("content type = %q", ct)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"status":"completed"`) || !strings.Contains(body, `"heuristic"`) {
		t.Errorf("stream body = %s", body)
	}
}

func TestTargetAndRewriteEndpoints(t *testing.T) {
	registry := fetcher.NewLLMRegistry(fetcher.LLMFunc{
		Name: fetcher.ProviderOllama,
		Fn: func(context.Context, string, string) (string, error) {
			return `{"headline":"Lead Data Analyst | SQL","about":"Texte.","skills":["SQL"],"experienceBullets":[]}`, nil
		},
	})
	router := newTestRouter(t, registry, 30)

	rec := do(router, http.MethodPost, "/api/v1/target", `{"profile":`+profileJSON+`,"targetRole":"Lead Data Analyst"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("target status = %d: %s", rec.Code, rec.Body.String())
	}
	var res model.RewriteResult
	decodeBody(t, rec, &res)
	if res.Headline != "Lead Data Analyst | SQL" {
		t.Errorf("headline = %q", res.Headline)
	}

	rec = do(router, http.MethodPost, "/api/v1/rewrite", `{"profile":`+profileJSON+`,"provider":"openrouter"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("unregistered provider status = %d, want 500", rec.Code)
	}
}

func TestRateLimit(t *testing.T) {
	router := newTestRouter(t, nil, 2)
	for i := 0; i < 2; i++ {
		if rec := do(router, http.MethodPost, "/api/v1/score", `{"profile":{}}`); rec.Code != http.StatusOK {
			t.Fatalf("request %d status = %d", i, rec.Code)
		}
	}
	rec := do(router, http.MethodPost, "/api/v1/score", `{"profile":{}}`)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("missing Retry-After")
	}

	// health 不计入限流
	health := httptest.NewRecorder()
	router.ServeHTTP(health, httptest.NewRequest(http.MethodGet, "/health", nil))
	if health.Code != http.StatusOK {
		t.Errorf("health status = %d", health.Code)
	}
}

func TestRateLimiterWindowReset(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(1, time.Minute, nil)
	rl.now = func() time.Time { return now }

	if ok, _ := rl.allow("k"); !ok {
		t.Fatal("first request rejected")
	}
	ok, retry := rl.allow("k")
	if ok || retry != time.Minute {
		t.Errorf("second request: ok=%v retry=%s", ok, retry)
	}
	if ok, _ := rl.allow("other"); !ok {
		t.Error("keys should be independent")
	}

	now = now.Add(time.Minute)
	if ok, _ := rl.allow("k"); !ok {
		t.Error("window should have reset")
	}
}

func TestCleanProfile(t *testing.T) {
	p := model.ProfileSnapshot{
		About:       "<p>Hello</p><p>World</p>",
		Experiences: []model.Experience{{Achievements: "<ul><li>One</li><li>Two</li></ul>"}},
		Languages:   []string{"EN-us", "fr"},
	}
	if details := cleanProfile(&p); len(details) != 0 {
		t.Fatalf("unexpected details %q", details)
	}
	if p.About != "Hello\nWorld" {
		t.Errorf("about = %q", p.About)
	}
	if p.Experiences[0].Achievements != "• One\n• Two" {
		t.Errorf("achievements = %q", p.Experiences[0].Achievements)
	}
	if p.Languages[0] != "en-US" {
		t.Errorf("language = %q", p.Languages[0])
	}
}
