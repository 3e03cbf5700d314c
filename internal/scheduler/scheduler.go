// Package scheduler 定时预热市场情报缓存并清理过期条目
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/naciro2010/ProfileForge/internal/cache"
	"github.com/naciro2010/ProfileForge/internal/model"
)

// Warmer 市场情报服务实现此接口
type Warmer interface {
	Warm(ctx context.Context, req model.MarketIntelRequest) error
}

// DefaultTargets 常驻缓存的 (岗位, 国家) 组合
var DefaultTargets = []model.MarketIntelRequest{
	{Role: "Data Analyst", Country: "FR"},
	{Role: "Product Manager", Country: "US"},
	{Role: "Software Engineer", Country: "UK"},
}

// Scheduler 基于 robfig/cron 的预热调度器
type Scheduler struct {
	cron    *cron.Cron
	warmer  Warmer
	targets []model.MarketIntelRequest
	spec    string
	cleaner cache.ExpiredCleaner
	logger  *slog.Logger
	initial sync.WaitGroup // 启动时的首轮预热
}

// New 每隔 interval 依次预热 targets
func New(warmer Warmer, targets []model.MarketIntelRequest, interval time.Duration, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		cron: cron.New(cron.WithChain(
			cron.Recover(cron.DefaultLogger),
			cron.SkipIfStillRunning(cron.DefaultLogger),
		)),
		warmer:  warmer,
		targets: targets,
		spec:    fmt.Sprintf("@every %s", interval),
		logger:  logger,
	}
}

// WithCleaner 每小时清理一次过期条目，用于不会自行过期的存储
func (s *Scheduler) WithCleaner(c cache.ExpiredCleaner) *Scheduler {
	s.cleaner = c
	return s
}

// Start 注册任务并启动cron，同时在后台立即跑一轮预热
func (s *Scheduler) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.spec, func() { s.RunWarmup(ctx) }); err != nil {
		return fmt.Errorf("cron.AddFunc warmup: %w", err)
	}
	if s.cleaner != nil {
		if _, err := s.cron.AddFunc("@hourly", func() { s.runCleanup(ctx) }); err != nil {
			return fmt.Errorf("cron.AddFunc cleanup: %w", err)
		}
	}

	s.cron.Start()
	s.logger.Info("scheduler started", "spec", s.spec, "targets", len(s.targets))

	s.initial.Add(1)
	go func() {
		defer s.initial.Done()
		s.RunWarmup(ctx)
	}()
	return nil
}

// Stop 停止cron，等待正在执行的任务和首轮预热结束
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.initial.Wait()
	s.logger.Info("scheduler stopped")
}

// RunWarmup 顺序预热所有目标，单个目标失败或panic只记日志，返回失败数
func (s *Scheduler) RunWarmup(ctx context.Context) (failed int) {
	runID := uuid.NewString()
	started := time.Now()
	s.logger.Info("warmup sweep started", "run_id", runID)

	for _, target := range s.targets {
		if ctx.Err() != nil {
			s.logger.Warn("warmup sweep cancelled", "run_id", runID)
			return failed
		}
		if err := s.warmOne(ctx, target); err != nil {
			failed++
			s.logger.Warn("unable to warm market intel cache",
				"run_id", runID, "role", target.Role, "country", target.Country, "error", err)
		}
	}

	s.logger.Info("warmup sweep complete",
		"run_id", runID, "targets", len(s.targets), "failed", failed, "took", time.Since(started))
	return failed
}

func (s *Scheduler) warmOne(ctx context.Context, target model.MarketIntelRequest) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return s.warmer.Warm(ctx, target)
}

func (s *Scheduler) runCleanup(ctx context.Context) {
	removed, err := s.cleaner.CleanExpired(ctx)
	if err != nil {
		s.logger.Warn("cache cleanup failed", "error", err)
		return
	}
	s.logger.Info("cache cleanup complete", "removed", removed)
}
