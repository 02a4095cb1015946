package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"rkcp-score/config"
	"rkcp-score/internal/dto"
	"rkcp-score/internal/model"
	"rkcp-score/pkg/httpclient"
	"rkcp-score/pkg/logger"
)

// ErrNotFound marks a normal negative outcome: the upstream answered but had
// no matching record. Distinct from a transport failure.
var ErrNotFound = errors.New("stock not found")

type RKCPAPIRepository interface {
	FetchByTicker(ctx context.Context, ticker string) (*model.StockRecord, error)
	FetchByName(ctx context.Context, name string) (*model.StockRecord, error)
	FetchAll(ctx context.Context, limit, skip int) ([]*model.StockRecord, error)
	FetchTop(ctx context.Context) ([]*model.StockRecord, error)
	Health(ctx context.Context) (*dto.HealthEnvelope, error)
}

type rkcpAPIRepository struct {
	httpClient     httpclient.HTTPClient
	cfg            *config.Config
	log            *logger.Logger
	requestLimiter *rate.Limiter
}

// NewRKCPAPIRepository creates the client for the remote scoring API. The
// base URL is injected via config, resolved once at startup.
func NewRKCPAPIRepository(cfg *config.Config, log *logger.Logger) RKCPAPIRepository {
	secondsPerRequest := time.Minute / time.Duration(cfg.RKCP.MaxRequestPerMinute)
	return &rkcpAPIRepository{
		httpClient:     httpclient.New(log, cfg.RKCP.BaseURL, cfg.RKCP.Timeout),
		cfg:            cfg,
		log:            log,
		requestLimiter: rate.NewLimiter(rate.Every(secondsPerRequest), 1),
	}
}

// newWithClient is the test seam.
func newWithClient(cfg *config.Config, log *logger.Logger, client httpclient.HTTPClient) RKCPAPIRepository {
	return &rkcpAPIRepository{
		httpClient:     client,
		cfg:            cfg,
		log:            log,
		requestLimiter: rate.NewLimiter(rate.Inf, 1),
	}
}

func (r *rkcpAPIRepository) FetchByTicker(ctx context.Context, ticker string) (*model.StockRecord, error) {
	var envelope dto.StockEnvelope
	if err := r.get(ctx, "/api/stock/"+ticker, nil, &envelope); err != nil {
		return nil, err
	}
	return singleRecord(&envelope)
}

func (r *rkcpAPIRepository) FetchByName(ctx context.Context, name string) (*model.StockRecord, error) {
	var envelope dto.StockEnvelope
	if err := r.get(ctx, "/api/stock/search", map[string]string{"name": name}, &envelope); err != nil {
		return nil, err
	}
	return singleRecord(&envelope)
}

func (r *rkcpAPIRepository) FetchAll(ctx context.Context, limit, skip int) ([]*model.StockRecord, error) {
	queryParams := map[string]string{
		"limit": strconv.Itoa(limit),
		"skip":  strconv.Itoa(skip),
	}
	var envelope dto.StockListEnvelope
	if err := r.get(ctx, "/api/stock", queryParams, &envelope); err != nil {
		return nil, err
	}
	return recordList(&envelope)
}

func (r *rkcpAPIRepository) FetchTop(ctx context.Context) ([]*model.StockRecord, error) {
	var envelope dto.StockListEnvelope
	if err := r.get(ctx, "/api/stock/top10", nil, &envelope); err != nil {
		return nil, err
	}
	return recordList(&envelope)
}

func (r *rkcpAPIRepository) Health(ctx context.Context) (*dto.HealthEnvelope, error) {
	var health dto.HealthEnvelope
	if err := r.get(ctx, "/health", nil, &health); err != nil {
		return nil, err
	}
	return &health, nil
}

func (r *rkcpAPIRepository) get(ctx context.Context, endpoint string, queryParams map[string]string, result interface{}) error {
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return err
	}

	resp, err := r.httpClient.Get(ctx, endpoint, queryParams, nil, result)
	if err != nil {
		return fmt.Errorf("failed to reach rkcp api: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}

	if resp.StatusCode != http.StatusOK {
		r.log.ErrorContext(ctx, "RKCP API returned non-OK status",
			logger.IntField("status_code", resp.StatusCode),
			logger.StringField("endpoint", endpoint),
		)
		if msg := upstreamError(resp.Body); msg != "" {
			return fmt.Errorf("rkcp api returned status %d: %s", resp.StatusCode, msg)
		}
		return fmt.Errorf("rkcp api returned status %d", resp.StatusCode)
	}

	return nil
}

// upstreamError pulls the error message out of a non-2xx body, if there is
// one to pull.
func upstreamError(body []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Error
}

func singleRecord(envelope *dto.StockEnvelope) (*model.StockRecord, error) {
	if !envelope.Success || envelope.Data == nil {
		if envelope.Error != "" {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, envelope.Error)
		}
		return nil, ErrNotFound
	}
	return envelope.Data, nil
}

func recordList(envelope *dto.StockListEnvelope) ([]*model.StockRecord, error) {
	if !envelope.Success || envelope.Data == nil {
		if envelope.Error != "" {
			return nil, fmt.Errorf("rkcp api error: %s", envelope.Error)
		}
		return nil, errors.New("rkcp api response missing data")
	}
	return envelope.Data, nil
}
