package service

import (
	"rkcp-score/config"
	"rkcp-score/internal/repository"
	"rkcp-score/internal/suggest"
	"rkcp-score/pkg/cache"
	"rkcp-score/pkg/logger"
)

type Service struct {
	StockService     StockService
	SchedulerService SchedulerService
	SuggestEngine    *suggest.Engine
}

func NewService(
	cfg *config.Config,
	log *logger.Logger,
	repo *repository.Repository,
	inmemoryCache cache.Cache,
) *Service {
	engine := suggest.NewEngine(cfg, log, repo.RKCPAPIRepo, inmemoryCache)
	return &Service{
		StockService:     NewStockService(cfg, log, repo.RKCPAPIRepo, engine),
		SchedulerService: NewSchedulerService(cfg, log, engine),
		SuggestEngine:    engine,
	}
}
