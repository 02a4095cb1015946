package service

import (
	"context"
	"errors"
	"sync"

	"rkcp-score/internal/model"
	"rkcp-score/internal/repository"
	"rkcp-score/pkg/logger"
)

// ErrBusy reports a LoadMore call while a fetch is already in flight.
var ErrBusy = errors.New("load already in flight")

// ListSession accumulates pages of the record catalogue for one consumer,
// mirroring the lifetime of a list view: records live in memory for the life
// of the session and are appended without deduplication. A busy flag gates
// re-entrant LoadMore calls; there is no other shared state held across the
// fetch.
type ListSession struct {
	mu      sync.Mutex
	log     *logger.Logger
	repo    repository.RKCPAPIRepository
	limit   int
	skip    int
	records []*model.StockRecord
	hasMore bool
	loading bool
}

func NewListSession(log *logger.Logger, repo repository.RKCPAPIRepository, pageSize int) *ListSession {
	return &ListSession{
		log:     log,
		repo:    repo,
		limit:   pageSize,
		hasMore: true,
	}
}

// LoadMore fetches the next page and appends it. Returns the new page.
// A short page or an empty page flips hasMore off; an error leaves the
// accumulated records and the cursor untouched.
func (ls *ListSession) LoadMore(ctx context.Context) ([]*model.StockRecord, error) {
	ls.mu.Lock()
	if ls.loading {
		ls.mu.Unlock()
		return nil, ErrBusy
	}
	if !ls.hasMore {
		ls.mu.Unlock()
		return nil, nil
	}
	ls.loading = true
	skip := ls.skip
	ls.mu.Unlock()

	page, err := ls.repo.FetchAll(ctx, ls.limit, skip)

	ls.mu.Lock()
	defer ls.mu.Unlock()
	ls.loading = false

	if err != nil {
		ls.log.ErrorContext(ctx, "Failed to load stock page",
			logger.IntField("skip", skip),
			logger.ErrorField(err),
		)
		return nil, err
	}

	if len(page) == 0 {
		ls.hasMore = false
		return nil, nil
	}

	ls.records = append(ls.records, page...)
	ls.hasMore = len(page) == ls.limit
	ls.skip = skip + ls.limit
	return page, nil
}

// Records returns the accumulated sequence in fetch order.
func (ls *ListSession) Records() []*model.StockRecord {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	out := make([]*model.StockRecord, len(ls.records))
	copy(out, ls.records)
	return out
}

func (ls *ListSession) HasMore() bool {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	return ls.hasMore
}

func (ls *ListSession) Skip() int {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	return ls.skip
}
