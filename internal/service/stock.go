package service

import (
	"context"

	"rkcp-score/config"
	"rkcp-score/internal/dto"
	"rkcp-score/internal/model"
	"rkcp-score/internal/normalize"
	"rkcp-score/internal/repository"
	"rkcp-score/internal/screener"
	"rkcp-score/internal/suggest"
	"rkcp-score/internal/trend"
	"rkcp-score/pkg/logger"
)

type StockService interface {
	GetByTicker(ctx context.Context, ticker string) (*dto.StockDetail, error)
	SearchByName(ctx context.Context, name string) (*dto.StockDetail, error)
	List(ctx context.Context, limit, skip int) (*dto.StockPage, error)
	Top(ctx context.Context) ([]dto.RankedStock, error)
	Suggest(ctx context.Context, query string, limit int) []model.Suggestion
	NewListSession() *ListSession
}

type stockService struct {
	cfg    *config.Config
	log    *logger.Logger
	repo   repository.RKCPAPIRepository
	engine *suggest.Engine
}

func NewStockService(cfg *config.Config, log *logger.Logger, repo repository.RKCPAPIRepository, engine *suggest.Engine) StockService {
	return &stockService{
		cfg:    cfg,
		log:    log,
		repo:   repo,
		engine: engine,
	}
}

func (s *stockService) GetByTicker(ctx context.Context, ticker string) (*dto.StockDetail, error) {
	rec, err := s.repo.FetchByTicker(ctx, ticker)
	if err != nil {
		return nil, err
	}
	detail := buildDetail(rec)
	return &detail, nil
}

func (s *stockService) SearchByName(ctx context.Context, name string) (*dto.StockDetail, error) {
	rec, err := s.repo.FetchByName(ctx, name)
	if err != nil {
		return nil, err
	}
	detail := buildDetail(rec)
	return &detail, nil
}

func (s *stockService) List(ctx context.Context, limit, skip int) (*dto.StockPage, error) {
	if limit <= 0 {
		limit = s.cfg.List.PageSize
	}
	records, err := s.repo.FetchAll(ctx, limit, skip)
	if err != nil {
		return nil, err
	}

	items := make([]dto.StockListItem, 0, len(records))
	for _, rec := range records {
		items = append(items, buildListItem(rec))
	}

	return &dto.StockPage{
		Items:    items,
		HasMore:  len(records) == limit,
		NextSkip: skip + limit,
	}, nil
}

func (s *stockService) Top(ctx context.Context) ([]dto.RankedStock, error) {
	records, err := s.repo.FetchTop(ctx)
	if err != nil {
		return nil, err
	}

	ranked := make([]dto.RankedStock, 0, len(records))
	for i, rec := range records {
		ranked = append(ranked, dto.RankedStock{
			Rank:  i + 1,
			Name:  normalize.Name(rec),
			Score: normalize.Score(rec),
			Trend: trend.Present(rec.Trend),
		})
	}
	return ranked, nil
}

func (s *stockService) Suggest(ctx context.Context, query string, limit int) []model.Suggestion {
	return s.engine.Suggest(ctx, query, limit)
}

func (s *stockService) NewListSession() *ListSession {
	return NewListSession(s.log, s.repo, s.cfg.List.PageSize)
}

// buildDetail derives the full details view from a raw record. Pure, no
// cached state; recomputed on every call.
func buildDetail(rec *model.StockRecord) dto.StockDetail {
	detail := dto.StockDetail{
		Name:   normalize.Name(rec),
		Ticker: normalize.TickerDisplay(rec),
		Score:  normalize.Score(rec),
		Trend:  trend.Present(rec.Trend),
	}

	if u, ok := screener.ProfileURL(rec); ok {
		detail.ScreenerURL = u
	}
	if u, ok := screener.SearchURL(rec); ok {
		detail.ScreenerSearchURL = u
	}

	visible := normalize.VisibleFields(rec)
	detail.Fields = make([]dto.FieldView, 0, len(visible))
	for _, f := range visible {
		detail.Fields = append(detail.Fields, dto.FieldView{
			Label: f.Key,
			Value: normalize.FormatValue(f.Value, f.Key),
		})
	}
	return detail
}

func buildListItem(rec *model.StockRecord) dto.StockListItem {
	item := dto.StockListItem{
		Name:   normalize.Name(rec),
		Ticker: normalize.TickerDisplay(rec),
	}
	if u, ok := screener.ProfileURL(rec); ok {
		item.ScreenerURL = u
	}
	if u, ok := screener.SearchURL(rec); ok {
		item.ScreenerSearchURL = u
	}
	return item
}
