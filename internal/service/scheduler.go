package service

import (
	"context"

	"github.com/robfig/cron/v3"

	"rkcp-score/config"
	"rkcp-score/internal/suggest"
	"rkcp-score/pkg/logger"
)

type SchedulerService interface {
	Start(ctx context.Context) error
	Stop()
}

// schedulerService keeps the suggestion candidate pool warm so the first
// keystroke after a quiet period does not pay for the upstream fetch.
type schedulerService struct {
	cfg    *config.Config
	log    *logger.Logger
	engine *suggest.Engine
	cron   *cron.Cron
}

func NewSchedulerService(cfg *config.Config, log *logger.Logger, engine *suggest.Engine) SchedulerService {
	return &schedulerService{
		cfg:    cfg,
		log:    log,
		engine: engine,
		cron:   cron.New(),
	}
}

func (s *schedulerService) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.cfg.Scheduler.PoolPrewarmSpec, func() {
		if err := s.engine.PrewarmPool(ctx); err != nil {
			s.log.WarnContext(ctx, "Candidate pool prewarm failed", logger.ErrorField(err))
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.log.InfoContext(ctx, "Scheduler started",
		logger.StringField("pool_prewarm_spec", s.cfg.Scheduler.PoolPrewarmSpec),
	)
	return nil
}

func (s *schedulerService) Stop() {
	<-s.cron.Stop().Done()
}
