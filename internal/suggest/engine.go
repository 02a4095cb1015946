// Package suggest implements the autocomplete path: a bounded candidate
// pool filtered by substring match, and a debounced session state machine
// for interactive clients. Suggestions are an enhancement over the explicit
// search submission, so every failure here degrades to an empty list.
package suggest

import (
	"context"
	"strings"

	"golang.org/x/sync/singleflight"

	"rkcp-score/config"
	"rkcp-score/internal/model"
	"rkcp-score/internal/normalize"
	"rkcp-score/internal/repository"
	"rkcp-score/pkg/cache"
	"rkcp-score/pkg/logger"
)

const poolCacheKey = "suggest:candidate-pool"

type Engine struct {
	cfg   *config.Config
	log   *logger.Logger
	repo  repository.RKCPAPIRepository
	cache cache.Cache
	group singleflight.Group
}

func NewEngine(cfg *config.Config, log *logger.Logger, repo repository.RKCPAPIRepository, c cache.Cache) *Engine {
	return &Engine{
		cfg:   cfg,
		log:   log,
		repo:  repo,
		cache: c,
	}
}

// Suggest returns up to limit candidates whose name or raw ticker contains
// the query, case-insensitive, in the pool's original order. Queries shorter
// than the minimum never touch the candidate pool.
func (e *Engine) Suggest(ctx context.Context, query string, limit int) []model.Suggestion {
	q := strings.ToLower(strings.TrimSpace(query))
	if len(q) < e.cfg.Suggest.MinQueryLen {
		return nil
	}
	if limit <= 0 {
		limit = e.cfg.Suggest.DefaultLimit
	}

	pool, err := e.candidatePool(ctx)
	if err != nil {
		// Silent degrade: the explicit search path is unaffected.
		e.log.DebugContext(ctx, "Suggestion pool unavailable",
			logger.StringField("query", q),
			logger.ErrorField(err),
		)
		return nil
	}

	out := make([]model.Suggestion, 0, limit)
	for _, rec := range pool {
		if len(out) == limit {
			break
		}
		if !matches(rec, q) {
			continue
		}
		out = append(out, model.Suggestion{
			Record:        rec,
			DisplayName:   normalize.Name(rec),
			DisplayTicker: normalize.TickerDisplay(rec),
		})
	}
	return out
}

func matches(rec *model.StockRecord, q string) bool {
	name := normalize.Name(rec)
	if name != normalize.NotAvailable && strings.Contains(strings.ToLower(name), q) {
		return true
	}
	if ticker, ok := normalize.Ticker(rec); ok {
		return strings.Contains(strings.ToLower(ticker), q)
	}
	return false
}

// candidatePool returns the first PoolSize records of the backing store,
// cached for PoolTTL. Concurrent cold-cache callers share one upstream
// fetch.
func (e *Engine) candidatePool(ctx context.Context) ([]*model.StockRecord, error) {
	if pool, ok := cache.GetTyped[[]*model.StockRecord](e.cache, poolCacheKey); ok {
		return pool, nil
	}

	v, err, _ := e.group.Do(poolCacheKey, func() (interface{}, error) {
		records, err := e.repo.FetchAll(ctx, e.cfg.Suggest.PoolSize, 0)
		if err != nil {
			return nil, err
		}
		e.cache.Set(poolCacheKey, records, e.cfg.Suggest.PoolTTL)
		return records, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]*model.StockRecord), nil
}

// PrewarmPool populates the candidate pool cache ahead of demand.
func (e *Engine) PrewarmPool(ctx context.Context) error {
	_, err := e.candidatePool(ctx)
	return err
}
