package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/naciro2010/ProfileForge/internal/fetcher"
	"github.com/naciro2010/ProfileForge/internal/model"
	"github.com/naciro2010/ProfileForge/internal/service"
	"github.com/naciro2010/ProfileForge/internal/sse"
)

// Services 路由依赖的业务服务
type Services struct {
	Score        *service.ScoreService
	Compensation *service.CompensationService
	MarketIntel  *service.MarketIntelService
	Suggestion   *service.SuggestionService
}

// Options 接入层参数
type Options struct {
	APIKey            string
	AllowedOrigins    []string
	RateLimitCapacity int
	RateLimitWindow   time.Duration
	Version           string
	Logger            *slog.Logger
}

// Handler HTTP处理器
type Handler struct {
	svc       Services
	validator *validator
	version   string
	logger    *slog.Logger
}

// NewRouter 组装路由和中间件
func NewRouter(svc Services, opts Options) (http.Handler, error) {
	v, err := newValidator()
	if err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	h := &Handler{svc: svc, validator: v, version: opts.Version, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(corsMiddleware(opts.AllowedOrigins))
	r.Use(apiKeyMiddleware(opts.APIKey, logger))
	r.Use(NewRateLimiter(opts.RateLimitCapacity, opts.RateLimitWindow, logger).Middleware)

	r.Get("/health", h.Health)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/score", h.Score)
		r.Post("/compensation", h.Compensation)
		r.Post("/market-intel", h.MarketIntel)
		r.Post("/suggest", h.Suggest)
		r.Post("/suggest/stream", h.SuggestStream)
		r.Post("/target", h.Target)
		r.Post("/rewrite", h.Rewrite)
	})
	return r, nil
}

// Health 健康检查
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "profileforge",
		"version": h.version,
	})
}

// Score POST /api/v1/score
func (h *Handler) Score(w http.ResponseWriter, r *http.Request) {
	var req model.ScoreRequest
	if !h.decode(w, r, schemaScore, &req) {
		return
	}
	if details := cleanProfile(&req.Profile); len(details) > 0 {
		writeError(w, http.StatusBadRequest, "validation failed", details...)
		return
	}
	writeJSON(w, http.StatusOK, h.svc.Score.Score(req.Profile, req.Keywords))
}

// Compensation POST /api/v1/compensation
func (h *Handler) Compensation(w http.ResponseWriter, r *http.Request) {
	var req model.CompensationRequest
	if !h.decode(w, r, schemaCompensation, &req) {
		return
	}
	code, err := normalizeCurrency(req.Currency)
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}
	req.Currency = code
	writeJSON(w, http.StatusOK, h.svc.Compensation.Estimate(req))
}

// MarketIntel POST /api/v1/market-intel
func (h *Handler) MarketIntel(w http.ResponseWriter, r *http.Request) {
	var req model.MarketIntelRequest
	if !h.decode(w, r, schemaMarketIntel, &req) {
		return
	}
	writeJSON(w, http.StatusOK, h.svc.MarketIntel.MarketIntel(r.Context(), req))
}

// Suggest POST /api/v1/suggest
func (h *Handler) Suggest(w http.ResponseWriter, r *http.Request) {
	var req model.SuggestRequest
	if !h.decode(w, r, schemaSuggest, &req) {
		return
	}
	if details := cleanProfile(&req.Profile); len(details) > 0 {
		writeError(w, http.StatusBadRequest, "validation failed", details...)
		return
	}
	res, err := h.svc.Suggestion.Suggest(r.Context(), req.Profile, req.TargetRole, req.Language)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// SuggestStream POST /api/v1/suggest/stream
// 先推启发式结果，LLM段落就绪后再推最终结果
func (h *Handler) SuggestStream(w http.ResponseWriter, r *http.Request) {
	var req model.SuggestRequest
	if !h.decode(w, r, schemaSuggest, &req) {
		return
	}
	if details := cleanProfile(&req.Profile); len(details) > 0 {
		writeError(w, http.StatusBadRequest, "validation failed", details...)
		return
	}

	writer, err := sse.NewWriter(w, uuid.NewString())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "streaming not supported")
		return
	}
	defer writer.StopHeartbeat()

	h.logger.Info("suggestion stream started", "stream_id", writer.StreamID(), "request_id", middleware.GetReqID(r.Context()))
	if err := h.svc.Suggestion.SuggestWithSSE(r.Context(), req, writer); err != nil {
		h.logger.Warn("suggestion stream failed", "stream_id", writer.StreamID(), "error", err)
		return
	}
	h.logger.Info("suggestion stream completed", "stream_id", writer.StreamID())
}

// Target POST /api/v1/target
func (h *Handler) Target(w http.ResponseWriter, r *http.Request) {
	h.rewrite(w, r, schemaTarget)
}

// Rewrite POST /api/v1/rewrite
func (h *Handler) Rewrite(w http.ResponseWriter, r *http.Request) {
	h.rewrite(w, r, schemaRewrite)
}

func (h *Handler) rewrite(w http.ResponseWriter, r *http.Request, schema string) {
	var req model.RewriteRequest
	if !h.decode(w, r, schema, &req) {
		return
	}
	if details := cleanProfile(&req.Profile); len(details) > 0 {
		writeError(w, http.StatusBadRequest, "validation failed", details...)
		return
	}
	res, err := h.svc.Suggestion.Rewrite(r.Context(), req)
	if err != nil {
		h.serviceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) serviceError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error("request failed", "path", r.URL.Path, "request_id", middleware.GetReqID(r.Context()), "error", err)
	if errors.Is(err, fetcher.ErrNoLLMClient) {
		writeError(w, http.StatusInternalServerError, "llm provider not configured", err.Error())
		return
	}
	writeError(w, http.StatusInternalServerError, "internal error")
}
