package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rkcp-score/config"
	"rkcp-score/pkg/httpclient"
	"rkcp-score/pkg/logger"
)

func newTestRepo(t *testing.T, handler http.HandlerFunc) RKCPAPIRepository {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	log := logger.NewNop()
	client := httpclient.New(log, server.URL, time.Second)
	return newWithClient(&config.Config{}, log, client)
}

func jsonHandler(t *testing.T, wantPath string, status int, body string) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, wantPath, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func TestFetchByTicker_Success(t *testing.T) {
	repo := newTestRepo(t, jsonHandler(t, "/api/stock/INFY", http.StatusOK,
		`{"success":true,"data":{"Name":"Infosys","Sector":"IT","Ticker":"INFY"}}`))

	rec, err := repo.FetchByTicker(context.Background(), "INFY")
	require.NoError(t, err)

	fields := rec.Fields()
	require.Len(t, fields, 3)
	assert.Equal(t, "Name", fields[0].Key)
	assert.Equal(t, "Infosys", fields[0].Value)
	assert.Equal(t, "Sector", fields[1].Key)
	assert.Equal(t, "Ticker", fields[2].Key)
}

func TestFetchByTicker_NotFoundStatus(t *testing.T) {
	repo := newTestRepo(t, jsonHandler(t, "/api/stock/NOPE", http.StatusNotFound,
		`{"success":false,"error":"Stock not found"}`))

	_, err := repo.FetchByTicker(context.Background(), "NOPE")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFetchByTicker_SuccessFalseIsNotFound(t *testing.T) {
	repo := newTestRepo(t, jsonHandler(t, "/api/stock/GONE", http.StatusOK,
		`{"success":false,"error":"no such stock"}`))

	_, err := repo.FetchByTicker(context.Background(), "GONE")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "no such stock")
}

func TestFetchByTicker_MissingDataIsNotFound(t *testing.T) {
	repo := newTestRepo(t, jsonHandler(t, "/api/stock/EMPTY", http.StatusOK,
		`{"success":true}`))

	_, err := repo.FetchByTicker(context.Background(), "EMPTY")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFetchByTicker_ServerErrorSurfacesBody(t *testing.T) {
	repo := newTestRepo(t, jsonHandler(t, "/api/stock/INFY", http.StatusInternalServerError,
		`{"error":"database unreachable"}`))

	_, err := repo.FetchByTicker(context.Background(), "INFY")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "500")
	assert.Contains(t, err.Error(), "database unreachable")
}

func TestFetchByName_QueryParam(t *testing.T) {
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/stock/search", r.URL.Path)
		assert.Equal(t, "Tata Motors", r.URL.Query().Get("name"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":{"Name":"Tata Motors"}}`))
	})

	rec, err := repo.FetchByName(context.Background(), "Tata Motors")
	require.NoError(t, err)
	name, ok := rec.Get("Name")
	require.True(t, ok)
	assert.Equal(t, "Tata Motors", name)
}

func TestFetchAll_Pagination(t *testing.T) {
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/stock", r.URL.Path)
		assert.Equal(t, "50", r.URL.Query().Get("limit"))
		assert.Equal(t, "100", r.URL.Query().Get("skip"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":[{"Name":"A"},{"Name":"B"}]}`))
	})

	records, err := repo.FetchAll(context.Background(), 50, 100)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestFetchAll_SuccessFalseIsError(t *testing.T) {
	repo := newTestRepo(t, jsonHandler(t, "/api/stock", http.StatusOK,
		`{"success":false,"error":"rate limited"}`))

	_, err := repo.FetchAll(context.Background(), 50, 0)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "rate limited")
}

func TestFetchTop(t *testing.T) {
	repo := newTestRepo(t, jsonHandler(t, "/api/stock/top10", http.StatusOK,
		`{"success":true,"data":[{"Name":"Infosys"},{"Name":"ITC"}]}`))

	records, err := repo.FetchTop(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestHealth(t *testing.T) {
	repo := newTestRepo(t, jsonHandler(t, "/health", http.StatusOK, `{"status":"ok"}`))

	health, err := repo.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", health.Status)
}

func TestFetchByTicker_TransportError(t *testing.T) {
	log := logger.NewNop()
	client := httpclient.New(log, "http://127.0.0.1:1", 100*time.Millisecond)
	repo := newWithClient(&config.Config{}, log, client)

	_, err := repo.FetchByTicker(context.Background(), "INFY")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}
