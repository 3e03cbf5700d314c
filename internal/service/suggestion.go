package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/naciro2010/ProfileForge/internal/cache"
	"github.com/naciro2010/ProfileForge/internal/fetcher"
	"github.com/naciro2010/ProfileForge/internal/model"
	"github.com/naciro2010/ProfileForge/internal/sse"
	"github.com/naciro2010/ProfileForge/internal/utils"
)

const (
	headlineMaxLen       = 220
	maxAboutParagraphs   = 5
	maxExperienceBullets = 3
	maxRewriteSkills     = 12
	maxRewriteBullets    = 5
	rewriteCacheSize     = 500
	fallbackRole         = "Professional"
	aboutLinePrefix      = "ABOUT::"
)

// metricRe 成就中的量化数字，如 "18%"、"1,5"、"120"
var metricRe = regexp.MustCompile(`\d+(?:[.,]\d+)?%?`)

// SuggestionOptions LLM默认参数
type SuggestionOptions struct {
	Provider fetcher.LLMProvider
	Model    string
	Language model.Language
	CacheTTL time.Duration
}

// SuggestionService 文案建议与目标岗位改写
type SuggestionService struct {
	catalog  *fetcher.JobCatalog
	llm      *fetcher.LLMRegistry
	opts     SuggestionOptions
	rewrites *cache.MemoryCache
	logger   *slog.Logger
}

// NewSuggestionService 创建文案服务，catalog 为 nil 时使用内置岗位表
func NewSuggestionService(catalog *fetcher.JobCatalog, llm *fetcher.LLMRegistry, opts SuggestionOptions, logger *slog.Logger) *SuggestionService {
	if catalog == nil {
		catalog = fetcher.DefaultJobCatalog()
	}
	if opts.Provider == "" {
		opts.Provider = fetcher.ProviderOllama
	}
	if opts.Model == "" {
		opts.Model = "llama3:instruct"
	}
	if opts.Language == "" {
		opts.Language = model.LanguageFR
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = 5 * time.Minute
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SuggestionService{
		catalog:  catalog,
		llm:      llm,
		opts:     opts,
		rewrites: cache.NewMemoryCache("rewrite", rewriteCacheSize),
		logger:   logger,
	}
}

// Suggest 启发式文案 + LLM补充的About段落
// LLM失败只记录日志；唯一的错误是默认提供方没有注册客户端
func (s *SuggestionService) Suggest(ctx context.Context, profile model.ProfileSnapshot, targetRole, language string) (*model.SuggestionResult, error) {
	client, err := s.llm.Client(s.opts.Provider)
	if err != nil {
		return nil, err
	}

	lang := s.language(language)
	result, role := s.draft(profile, targetRole, lang)

	blocks, err := s.aboutAddendum(ctx, client, profile, role, lang)
	if err != nil {
		s.logger.Warn("llm about addendum skipped", "provider", client.Provider(), "role", role, "error", err)
		return result, nil
	}
	result.About = append(result.About, blocks...)
	return result, nil
}

// SuggestWithSSE 先推送启发式结果，再推送带LLM段落的最终结果
func (s *SuggestionService) SuggestWithSSE(ctx context.Context, req model.SuggestRequest, w *sse.Writer) error {
	client, err := s.llm.Client(s.opts.Provider)
	if err != nil {
		_ = w.SendError(err.Error())
		return err
	}

	lang := s.language(req.Language)
	if err := w.SetAction(10, "Composing suggestions..."); err != nil {
		return err
	}
	draft, role := s.draft(req.Profile, req.TargetRole, lang)
	if err := w.SetStage(model.StageHeuristic, draft, "Heuristic suggestions ready"); err != nil {
		return err
	}

	// 客户端已断开时不再调用LLM
	if err := w.SetAction(60, "Generating about paragraphs..."); err != nil {
		return err
	}
	blocks, err := s.aboutAddendum(ctx, client, req.Profile, role, lang)
	if err != nil {
		s.logger.Warn("llm about addendum skipped", "stream_id", w.StreamID(), "error", err)
		if err := w.SetStageError(model.StageLLM, err.Error(), "LLM paragraphs unavailable"); err != nil {
			return err
		}
		return w.Done()
	}

	final := *draft
	final.About = append(append([]model.CopyBlock{}, draft.About...), blocks...)
	if err := w.SetStage(model.StageLLM, &final, "LLM paragraphs ready"); err != nil {
		return err
	}
	return w.Done()
}

func (s *SuggestionService) language(input string) model.Language {
	if lang, ok := model.ParseLanguage(input); ok {
		return lang
	}
	return s.opts.Language
}

// draft 纯启发式部分，返回结果与归一化后的岗位名
func (s *SuggestionService) draft(profile model.ProfileSnapshot, targetRole string, lang model.Language) (*model.SuggestionResult, string) {
	role := resolveRole(profile, targetRole)
	meta, matched := s.catalog.Lookup(role)

	normalized := utils.Sanitize(role)
	if matched {
		normalized = meta.Normalized
	}
	if normalized == "" {
		normalized = fallbackRole
	}

	skills := buildSkillBuckets(meta, profile.Skills)
	p := phrasesFor(lang)

	return &model.SuggestionResult{
		Headline: buildHeadlines(normalized, profile, skills, p),
		About:    buildAbout(normalized, profile, skills, p),
		Skills: model.SkillSuggestions{
			Core:       dedupSkills(skills.Core),
			Trending:   dedupSkills(skills.Trending),
			NiceToHave: dedupSkills(skills.NiceToHave),
		},
		Experiences: buildExperienceSuggestions(profile),
	}, normalized
}

// resolveRole 显式目标 → 资料中的目标岗位 → headline → 最近一段经历
func resolveRole(profile model.ProfileSnapshot, explicit string) string {
	candidates := []string{explicit, profile.TargetRole, profile.Headline}
	if len(profile.Experiences) > 0 {
		candidates = append(candidates, profile.Experiences[0].Role)
	}
	for _, c := range candidates {
		if !isBlank(c) {
			return c
		}
	}
	return ""
}

// buildSkillBuckets 命中岗位表时用岗位技能，否则切分资料里的技能（前6/接下来4/最后4）
func buildSkillBuckets(meta *fetcher.JobMetadata, profileSkills []string) model.SkillSuggestions {
	base := make([]string, 0, len(profileSkills))
	for _, sk := range profileSkills {
		if sk = utils.Sanitize(sk); sk != "" {
			base = append(base, sk)
		}
	}

	if meta != nil {
		core := meta.Core
		if len(core) == 0 {
			core = head(base, 6)
		}
		return model.SkillSuggestions{Core: core, Trending: meta.Trending, NiceToHave: meta.NiceToHave}
	}

	var trending []string
	if len(base) > 6 {
		trending = head(base[6:], 4)
	}
	return model.SkillSuggestions{
		Core:       head(base, 6),
		Trending:   trending,
		NiceToHave: tail(base, 4),
	}
}

func buildHeadlines(role string, profile model.ProfileSnapshot, skills model.SkillSuggestions, p phrases) []model.CopyBlock {
	impact := extractImpact(profile)
	top := head(distinct(append(append([]string{}, skills.Core...), skills.Trending...)), 3)

	impactLabel := p.defaultImpact
	if impact != "" {
		impactLabel = impact
	}
	pitch := []string{role}
	if len(top) > 0 {
		pitch = append(pitch, strings.Join(top, " • "))
	}
	pitch = append(pitch, "+"+impactLabel)

	positioning := []string{role}
	if loc := utils.Sanitize(profile.Location); loc != "" {
		positioning = append(positioning, loc)
	}
	if len(top) > 0 {
		positioning = append(positioning, top[0])
	}

	focus := p.defaultFocus
	if len(skills.Trending) > 0 {
		focus = skills.Trending[0]
	}
	proof := p.defaultProof
	if impact != "" {
		proof = impact
	}

	variants := []model.CopyBlock{
		{Label: p.pitchLabel, Content: strings.Join(pitch, " | ")},
		{Label: p.positioningLabel, Content: strings.Join(positioning, " • ")},
		{Label: p.valueLabel, Content: strings.Join([]string{role, focus, proof}, " | ")},
	}
	for i := range variants {
		variants[i].Content = utils.Truncate(variants[i].Content, headlineMaxLen)
	}
	return variants
}

func buildAbout(role string, profile model.ProfileSnapshot, skills model.SkillSuggestions, p phrases) []model.CopyBlock {
	var achievements []string
	for _, exp := range profile.Experiences {
		achievements = append(achievements, extractBullets(exp.Achievements)...)
	}
	var highlights []string
	for _, a := range achievements {
		if metricRe.MatchString(a) {
			highlights = append(highlights, a)
			if len(highlights) == 3 {
				break
			}
		}
	}

	expertise := p.defaultExpertise
	if len(skills.Core) > 0 {
		expertise = skills.Core[0]
	}
	story := []string{fmt.Sprintf(p.storyOpening, role, expertise)}
	if len(highlights) > 0 {
		story = append(story, fmt.Sprintf(p.storyImpact, strings.Join(highlights, " · ")))
	}
	if len(skills.Trending) > 0 {
		story = append(story, fmt.Sprintf(p.storyFocus, strings.Join(skills.Trending, ", ")))
	}
	if soft := head(skills.NiceToHave, 2); len(soft) > 0 {
		lowered := make([]string, len(soft))
		for i, s := range soft {
			lowered[i] = strings.ToLower(s)
		}
		story = append(story, fmt.Sprintf(p.storyReputation, strings.Join(lowered, " & ")))
	}

	direct := []string{p.directMission}
	if stack := head(skills.Core, 3); len(stack) > 0 {
		direct = append(direct, fmt.Sprintf(p.directStack, strings.Join(stack, ", ")))
	}
	if len(achievements) > 0 {
		direct = append(direct, strings.Join(head(achievements, 2), " "))
	}

	return []model.CopyBlock{
		{Label: p.storyLabel, Content: utils.EnforceParagraphCount(strings.Join(story, "\n\n"), maxAboutParagraphs)},
		{Label: p.directLabel, Content: utils.EnforceParagraphCount(strings.Join(direct, "\n\n"), maxAboutParagraphs)},
	}
}

func buildExperienceSuggestions(profile model.ProfileSnapshot) []model.ExperienceSuggestion {
	out := make([]model.ExperienceSuggestion, 0, len(profile.Experiences))
	for _, exp := range profile.Experiences {
		bullets := head(extractBullets(exp.Achievements), maxExperienceBullets)
		if bullets == nil {
			bullets = []string{}
		}
		out = append(out, model.ExperienceSuggestion{
			Role:    utils.Sanitize(exp.Role),
			Company: utils.Sanitize(exp.Company),
			Bullets: bullets,
		})
	}
	return out
}

// extractImpact 第一个出现的量化数字
func extractImpact(profile model.ProfileSnapshot) string {
	for _, exp := range profile.Experiences {
		if m := metricRe.FindString(exp.Achievements); m != "" {
			return m
		}
	}
	return ""
}

// extractBullets 按行和"•"切分，去掉行首的"-"/"*"，词内连字符保留
func extractBullets(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		for _, part := range strings.Split(line, "•") {
			part = strings.TrimLeft(strings.TrimSpace(part), "-*– ")
			if part = utils.Sanitize(part); part != "" {
				out = append(out, part)
			}
		}
	}
	if len(out) == 0 {
		if whole := utils.Sanitize(text); whole != "" {
			out = append(out, whole)
		}
	}
	return out
}

// dedupSkills 清洗、首字母大写后去重，保持顺序
func dedupSkills(items []string) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, it := range items {
		it = utils.CapitalizeFirst(utils.Sanitize(it))
		if it == "" || seen[it] {
			continue
		}
		seen[it] = true
		out = append(out, it)
	}
	return out
}

func distinct(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		if !seen[it] {
			seen[it] = true
			out = append(out, it)
		}
	}
	return out
}

func head(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}

func tail(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[len(items)-n:]
}

// aboutAddendum 让LLM写两段About，按 ABOUT::标题||正文 逐行解析
func (s *SuggestionService) aboutAddendum(ctx context.Context, client fetcher.LLMClient, profile model.ProfileSnapshot, role string, lang model.Language) ([]model.CopyBlock, error) {
	raw, err := client.Generate(ctx, s.opts.Model, buildAboutPrompt(profile, role, lang))
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(raw) == "" {
		return nil, errors.New("empty llm response")
	}
	blocks := parseAboutLines(raw)
	if len(blocks) == 0 {
		return nil, errors.New("llm response has no about lines")
	}
	return blocks, nil
}

func parseAboutLines(raw string) []model.CopyBlock {
	var blocks []model.CopyBlock
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, aboutLinePrefix) {
			continue
		}
		parts := strings.SplitN(strings.TrimPrefix(line, aboutLinePrefix), "||", 2)
		if len(parts) != 2 {
			continue
		}
		content := strings.TrimSpace(parts[1])
		if content == "" {
			continue
		}
		label := strings.TrimSpace(parts[0])
		if label == "" {
			label = "LLM"
		}
		blocks = append(blocks, model.CopyBlock{Label: label, Content: content})
	}
	return blocks
}

func buildAboutPrompt(profile model.ProfileSnapshot, role string, lang model.Language) string {
	var b strings.Builder
	if lang == model.LanguageEN {
		b.WriteString("You are a LinkedIn coach. Write in English.\n")
		fmt.Fprintf(&b, "Target role: %s\n", role)
		fmt.Fprintf(&b, "Current headline: %s\n", profile.Headline)
		fmt.Fprintf(&b, "Current about: %s\n", profile.About)
		fmt.Fprintf(&b, "Skills: %s\n", strings.Join(profile.Skills, ", "))
		b.WriteString("Experiences:\n")
		for _, exp := range profile.Experiences {
			fmt.Fprintf(&b, "- %s at %s: %s\n", exp.Role, exp.Company, exp.Achievements)
		}
		b.WriteString("Give 2 concise About paragraphs (3-5 sentences each). Format: ABOUT::title||text\n")
		return b.String()
	}

	b.WriteString("Tu es un coach LinkedIn. Tu écris en français.\n")
	fmt.Fprintf(&b, "Rôle ciblé : %s\n", role)
	fmt.Fprintf(&b, "Headline actuel : %s\n", profile.Headline)
	fmt.Fprintf(&b, "About actuel : %s\n", profile.About)
	fmt.Fprintf(&b, "Skills : %s\n", strings.Join(profile.Skills, ", "))
	b.WriteString("Expériences :\n")
	for _, exp := range profile.Experiences {
		fmt.Fprintf(&b, "- %s chez %s : %s\n", exp.Role, exp.Company, exp.Achievements)
	}
	b.WriteString("Donne 2 paragraphes About concis (3-5 phrases chacun). Format: ABOUT::titre||texte\n")
	return b.String()
}

// Rewrite 面向目标岗位整体改写，LLM返回严格JSON
// 输出不可解析时回显原资料；结果按资料摘要缓存
func (s *SuggestionService) Rewrite(ctx context.Context, req model.RewriteRequest) (*model.RewriteResult, error) {
	provider := s.opts.Provider
	if p, ok := fetcher.ParseLLMProvider(req.Provider); ok {
		provider = p
	}
	modelName := strings.TrimSpace(req.Model)
	if modelName == "" {
		modelName = s.opts.Model
	}
	lang := s.language(req.Language)

	key := rewriteCacheKey(req, provider, modelName, lang)
	if cached := s.cachedRewrite(ctx, key); cached != nil {
		return cached, nil
	}

	client, err := s.llm.Client(provider)
	if err != nil {
		return nil, err
	}

	raw, err := client.Generate(ctx, modelName, buildRewritePrompt(req, lang))
	if err != nil {
		s.logger.Warn("llm rewrite failed, echoing profile", "provider", provider, "model", modelName, "error", err)
		return parseRewrite("", req.Profile, lang), nil
	}

	result := parseRewrite(raw, req.Profile, lang)
	if data, err := json.Marshal(result); err == nil {
		_ = s.rewrites.Set(ctx, key, data, s.opts.CacheTTL)
	}
	return result, nil
}

func (s *SuggestionService) cachedRewrite(ctx context.Context, key string) *model.RewriteResult {
	entry, err := s.rewrites.Get(ctx, key)
	if err != nil || entry == nil {
		return nil
	}
	var result model.RewriteResult
	if err := json.Unmarshal(entry.Data, &result); err != nil {
		return nil
	}
	return &result
}

// rewriteCacheKey 资料内容 + 提供方 + 模型 + 语言 + 目标岗位的摘要
func rewriteCacheKey(req model.RewriteRequest, provider fetcher.LLMProvider, modelName string, lang model.Language) string {
	h := sha256.New()
	write := func(parts ...string) {
		for _, p := range parts {
			h.Write([]byte(p))
			h.Write([]byte{0})
		}
	}
	p := req.Profile
	write(p.Headline, p.About, p.Location, strings.Join(p.Skills, ","))
	for _, exp := range p.Experiences {
		write(exp.Role, exp.Company, exp.Timeframe, exp.Achievements)
	}
	write(string(provider), modelName, string(lang), req.TargetRole, req.TargetDescription)
	return hex.EncodeToString(h.Sum(nil))
}

type rewriteBullets struct {
	Company string   `json:"company"`
	Title   string   `json:"title"`
	Bullets []string `json:"bullets"`
}

type rewritePayload struct {
	Headline          *string          `json:"headline"`
	About             *string          `json:"about"`
	Skills            []string         `json:"skills"`
	ExperienceBullets []rewriteBullets `json:"experienceBullets"`
}

// parseRewrite 清洗LLM输出；JSON无效时回显资料的 headline/about/skills
func parseRewrite(raw string, profile model.ProfileSnapshot, lang model.Language) *model.RewriteResult {
	var payload rewritePayload
	if err := json.Unmarshal([]byte(fetcher.ExtractJSON(raw)), &payload); err != nil {
		payload = rewritePayload{Skills: profile.Skills}
	}

	headline := profile.Headline
	if payload.Headline != nil {
		headline = *payload.Headline
	}
	about := profile.About
	if payload.About != nil {
		about = *payload.About
	}

	result := &model.RewriteResult{
		Headline:          utils.Truncate(utils.Sanitize(headline), headlineMaxLen),
		About:             normalizeAbout(about),
		Skills:            []string{},
		ExperienceBullets: []model.ExperienceBullets{},
	}

	seen := make(map[string]bool)
	for _, sk := range payload.Skills {
		sk = utils.Sanitize(sk)
		if sk == "" || seen[strings.ToLower(sk)] {
			continue
		}
		seen[strings.ToLower(sk)] = true
		result.Skills = append(result.Skills, sk)
		if len(result.Skills) == maxRewriteSkills {
			break
		}
	}

	for _, eb := range payload.ExperienceBullets {
		bullets := []string{}
		for _, b := range eb.Bullets {
			if b = utils.Sanitize(b); b == "" {
				continue
			}
			bullets = append(bullets, ensureActionVerb(b, lang))
			if len(bullets) == maxRewriteBullets {
				break
			}
		}
		result.ExperienceBullets = append(result.ExperienceBullets, model.ExperienceBullets{
			Company: utils.Sanitize(eb.Company),
			Title:   utils.Sanitize(eb.Title),
			Bullets: bullets,
		})
	}
	return result
}

// normalizeAbout 最多5段，段内空白归一化
func normalizeAbout(about string) string {
	paragraphs := utils.SplitParagraphs(utils.EnforceParagraphCount(about, maxAboutParagraphs))
	for i, p := range paragraphs {
		paragraphs[i] = utils.Sanitize(p)
	}
	return strings.Join(paragraphs, "\n\n")
}

var (
	frenchActionVerbs  = []string{"Piloté", "Dirigé", "Optimisé", "Déployé", "Créé", "Développé", "Accéléré", "Lancé", "Conçu", "Réduit", "Augmenté", "Géré"}
	englishActionVerbs = []string{"Led", "Drove", "Optimized", "Deployed", "Built", "Created", "Developed", "Accelerated", "Launched", "Designed", "Delivered", "Reduced", "Increased", "Improved", "Managed"}
)

// ensureActionVerb 要点不以动作动词开头时补一个
func ensureActionVerb(bullet string, lang model.Language) string {
	first := strings.TrimRight(strings.SplitN(bullet, " ", 2)[0], ",.:;")
	for _, verbs := range [][]string{frenchActionVerbs, englishActionVerbs} {
		for _, v := range verbs {
			if strings.EqualFold(first, v) {
				return bullet
			}
		}
	}
	if lang == model.LanguageEN {
		return "Optimized " + bullet
	}
	return "Optimisé " + bullet
}

func buildRewritePrompt(req model.RewriteRequest, lang model.Language) string {
	p := req.Profile
	var b strings.Builder

	b.WriteString("Tu es un coach LinkedIn senior. ")
	if lang == model.LanguageEN {
		b.WriteString("Write in English.\n")
	} else {
		b.WriteString("Rédige en français.\n")
	}
	b.WriteString(`Génère une réponse JSON stricte avec le schéma suivant:
{
  "headline": "string <= 220 chars",
  "about": "3 à 5 paragraphes",
  "skills": ["mot-clé", ... 10 à 12 valeurs],
  "experienceBullets": [
    {"company": "nom", "title": "poste", "bullets": ["action + métrique", ...]}
  ]
}
Contraintes:
- Headline <= 220 caractères, ton concret, inclure compétences principales.
- Section About : 3 à 5 paragraphes, verbes d'action, résultats chiffrés.
- Skills : 5 à 12 mots-clés distincts.
- Chaque bullet d'expérience commence par un verbe d'action et inclut une métrique (%/€/chiffres) quand possible.
- Pas de markdown supplémentaire.
`)
	if !isBlank(req.TargetRole) {
		fmt.Fprintf(&b, "Cible métier: %s\n", req.TargetRole)
		fmt.Fprintf(&b, "Description du poste: %s\n", req.TargetDescription)
	}

	b.WriteString("\nProfil actuel:\n")
	fmt.Fprintf(&b, "Headline: %s\n", p.Headline)
	fmt.Fprintf(&b, "À propos: %s\n", p.About)
	fmt.Fprintf(&b, "Localisation: %s\n", p.Location)
	fmt.Fprintf(&b, "Compétences: %s\n", strings.Join(p.Skills, ", "))
	b.WriteString("Expériences:\n")
	for _, exp := range p.Experiences {
		fmt.Fprintf(&b, "- Titre: %s\n  Entreprise: %s\n  Période: %s\n  Description: %s\n",
			exp.Role, exp.Company, exp.Timeframe, exp.Achievements)
	}
	return b.String()
}

// phrases 启发式文案的固定措辞
type phrases struct {
	pitchLabel       string
	positioningLabel string
	valueLabel       string
	defaultImpact    string
	defaultFocus     string
	defaultProof     string
	storyLabel       string
	directLabel      string
	defaultExpertise string
	storyOpening     string
	storyImpact      string
	storyFocus       string
	storyReputation  string
	directMission    string
	directStack      string
}

var frenchPhrases = phrases{
	pitchLabel:       "Pitch orienté résultat",
	positioningLabel: "Positionnement marché",
	valueLabel:       "Approche valeur",
	defaultImpact:    "impact mesurable",
	defaultFocus:     "Focus data",
	defaultProof:     "ROI prouvé",
	storyLabel:       "Narratif orienté impact",
	directLabel:      "Résumé direct",
	defaultExpertise: "expertise multi-domaines",
	storyOpening:     "%s avec %s, j'aide les équipes à livrer des résultats mesurables.",
	storyImpact:      "Impact démontré : %s.",
	storyFocus:       "Priorités actuelles : %s pour accélérer les projets IA/data.",
	storyReputation:  "Ce que l'on dit de moi : %s.",
	directMission:    "Mission : transformer les données en décisions actionnables et fédérer les parties prenantes.",
	directStack:      "Stack privilégiée : %s.",
}

var englishPhrases = phrases{
	pitchLabel:       "Result-driven pitch",
	positioningLabel: "Market positioning",
	valueLabel:       "Value proposition",
	defaultImpact:    "measurable impact",
	defaultFocus:     "Data focus",
	defaultProof:     "Proven ROI",
	storyLabel:       "Impact narrative",
	directLabel:      "Straight summary",
	defaultExpertise: "cross-domain expertise",
	storyOpening:     "%s with %s, I help teams deliver measurable results.",
	storyImpact:      "Proven impact: %s.",
	storyFocus:       "Current focus: %s to accelerate AI and data projects.",
	storyReputation:  "What people say about me: %s.",
	directMission:    "Mission: turn data into actionable decisions and bring stakeholders together.",
	directStack:      "Preferred stack: %s.",
}

func phrasesFor(lang model.Language) phrases {
	if lang == model.LanguageEN {
		return englishPhrases
	}
	return frenchPhrases
}
