package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rkcp-score/internal/dto"
	"rkcp-score/internal/model"
	"rkcp-score/pkg/logger"
)

const (
	testTimeout = time.Second
	testTick    = 2 * time.Millisecond
)

// stubRepo serves a fixed catalogue with window semantics matching the real
// API: FetchAll returns catalogue[skip : skip+limit].
type stubRepo struct {
	mu        sync.Mutex
	catalogue []*model.StockRecord
	top       []*model.StockRecord
	byTicker  map[string]*model.StockRecord
	failNext  bool
	block     chan struct{}
	fetchAll  int
}

func (s *stubRepo) FetchAll(ctx context.Context, limit, skip int) ([]*model.StockRecord, error) {
	s.mu.Lock()
	s.fetchAll++
	failNext, block := s.failNext, s.block
	s.failNext = false
	s.mu.Unlock()

	if block != nil {
		<-block
	}
	if failNext {
		return nil, errors.New("upstream down")
	}
	if skip >= len(s.catalogue) {
		return nil, nil
	}
	end := skip + limit
	if end > len(s.catalogue) {
		end = len(s.catalogue)
	}
	return s.catalogue[skip:end], nil
}

func (s *stubRepo) FetchByTicker(ctx context.Context, ticker string) (*model.StockRecord, error) {
	if rec, ok := s.byTicker[ticker]; ok {
		return rec, nil
	}
	return nil, errors.New("not found")
}

func (s *stubRepo) FetchByName(ctx context.Context, name string) (*model.StockRecord, error) {
	return nil, errors.New("not implemented")
}

func (s *stubRepo) FetchTop(ctx context.Context) ([]*model.StockRecord, error) {
	return s.top, nil
}

func (s *stubRepo) Health(ctx context.Context) (*dto.HealthEnvelope, error) {
	return &dto.HealthEnvelope{Status: "ok"}, nil
}

func (s *stubRepo) fetchAllCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fetchAll
}

func catalogue(n int) []*model.StockRecord {
	out := make([]*model.StockRecord, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, model.NewStockRecord().Set("Name", fmt.Sprintf("Company %03d", i)))
	}
	return out
}

func TestListSession_Pagination(t *testing.T) {
	repo := &stubRepo{catalogue: catalogue(120)}
	ls := NewListSession(logger.NewNop(), repo, 50)

	page, err := ls.LoadMore(context.Background())
	require.NoError(t, err)
	assert.Len(t, page, 50)
	assert.Equal(t, 50, ls.Skip())
	assert.True(t, ls.HasMore())

	page, err = ls.LoadMore(context.Background())
	require.NoError(t, err)
	assert.Len(t, page, 50)
	assert.Equal(t, 100, ls.Skip())
	assert.True(t, ls.HasMore())

	// Short final page flips hasMore off.
	page, err = ls.LoadMore(context.Background())
	require.NoError(t, err)
	assert.Len(t, page, 20)
	assert.False(t, ls.HasMore())
	assert.Len(t, ls.Records(), 120)

	// Exhausted session does not hit the repo again.
	calls := repo.fetchAllCalls()
	page, err = ls.LoadMore(context.Background())
	require.NoError(t, err)
	assert.Nil(t, page)
	assert.Equal(t, calls, repo.fetchAllCalls())
}

func TestListSession_EmptyPageEndsSession(t *testing.T) {
	repo := &stubRepo{catalogue: catalogue(100)}
	ls := NewListSession(logger.NewNop(), repo, 50)

	_, err := ls.LoadMore(context.Background())
	require.NoError(t, err)
	_, err = ls.LoadMore(context.Background())
	require.NoError(t, err)
	// A full second page leaves hasMore on; only the empty fetch ends it.
	assert.True(t, ls.HasMore())

	page, err := ls.LoadMore(context.Background())
	require.NoError(t, err)
	assert.Nil(t, page)
	assert.False(t, ls.HasMore())
	assert.Len(t, ls.Records(), 100)
}

func TestListSession_ErrorLeavesCursorUntouched(t *testing.T) {
	repo := &stubRepo{catalogue: catalogue(120)}
	ls := NewListSession(logger.NewNop(), repo, 50)

	_, err := ls.LoadMore(context.Background())
	require.NoError(t, err)

	repo.failNext = true
	_, err = ls.LoadMore(context.Background())
	require.Error(t, err)
	assert.Equal(t, 50, ls.Skip())
	assert.True(t, ls.HasMore())
	assert.Len(t, ls.Records(), 50)

	// The retry resumes from the same cursor.
	page, err := ls.LoadMore(context.Background())
	require.NoError(t, err)
	assert.Len(t, page, 50)
	assert.Equal(t, 100, ls.Skip())
}

func TestListSession_BusyGate(t *testing.T) {
	block := make(chan struct{})
	repo := &stubRepo{catalogue: catalogue(120), block: block}
	ls := NewListSession(logger.NewNop(), repo, 50)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := ls.LoadMore(context.Background())
		assert.NoError(t, err)
	}()

	// Wait until the first load holds the busy flag.
	require.Eventually(t, func() bool {
		return repo.fetchAllCalls() == 1
	}, testTimeout, testTick)

	_, err := ls.LoadMore(context.Background())
	assert.ErrorIs(t, err, ErrBusy)

	close(block)
	wg.Wait()

	// The gate lifts once the in-flight load finishes.
	repo.mu.Lock()
	repo.block = nil
	repo.mu.Unlock()
	page, err := ls.LoadMore(context.Background())
	require.NoError(t, err)
	assert.Len(t, page, 50)
}
