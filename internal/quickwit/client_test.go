package quickwit

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logsearch-gateway/config"
	"logsearch-gateway/internal/apperror"
	"logsearch-gateway/internal/dto"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, auth ...string) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.QuickwitConfig{
		BaseURL: srv.URL,
		IndexID: "logs",
		Timeout: 5 * time.Second,
	}
	if len(auth) == 2 {
		cfg.Username, cfg.Password = auth[0], auth[1]
	}
	return NewClient(cfg)
}

func TestClient_Search(t *testing.T) {
	var gotBody map[string]interface{}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/logs/search", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "reader", user)
		assert.Equal(t, "secret", pass)

		body, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(body, &gotBody))
		w.Write([]byte(`{"num_hits":1,"hits":[]}`))
	}, "reader", "secret")

	v, err := client.Search(context.Background(), SearchQuery{Query: "*", MaxHits: 5})
	require.NoError(t, err)
	assert.EqualValues(t, 1, v.GetUint64("num_hits"))
	assert.Equal(t, "*", gotBody["query"])
	assert.EqualValues(t, 5, gotBody["max_hits"])
}

func TestClient_SearchWithoutCredentials(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _, ok := r.BasicAuth()
		assert.False(t, ok)
		w.Write([]byte(`{"hits":[]}`))
	})

	_, err := client.Search(context.Background(), SearchQuery{Query: "*"})
	assert.NoError(t, err)
}

func TestClient_SearchNonSuccessStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`query parse error`))
	})

	_, err := client.Search(context.Background(), SearchQuery{Query: "level:("})
	require.Error(t, err)
	assert.Equal(t, apperror.KindBackend, apperror.KindOf(err))
	assert.Equal(t, "query parse error", apperror.MessageOf(err))

	var statusErr *HTTPStatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusBadRequest, statusErr.StatusCode)
}

func TestClient_SearchInvalidJSON(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>proxy error</html>`))
	})

	_, err := client.Search(context.Background(), SearchQuery{Query: "*"})
	require.Error(t, err)
	assert.Equal(t, apperror.KindBackend, apperror.KindOf(err))
}

func TestClient_SearchUnreachable(t *testing.T) {
	client := NewClient(config.QuickwitConfig{BaseURL: "http://127.0.0.1:1", IndexID: "logs", Timeout: time.Second})

	_, err := client.Search(context.Background(), SearchQuery{Query: "*"})
	require.Error(t, err)
	assert.Equal(t, apperror.KindBackend, apperror.KindOf(err))
}

func TestClient_Ping(t *testing.T) {
	healthy := true
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health/livez", r.URL.Path)
		if !healthy {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`true`))
	})

	assert.NoError(t, client.Ping(context.Background()))

	healthy = false
	var statusErr *HTTPStatusError
	assert.True(t, errors.As(client.Ping(context.Background()), &statusErr))
}

func TestWaitForBackend(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 2 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`true`))
	})

	require.NoError(t, WaitForBackend(context.Background(), client, 10*time.Second))
	assert.Equal(t, 2, calls)
}

func TestWaitForBackend_SingleAttempt(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	assert.Error(t, WaitForBackend(context.Background(), client, 0))
	assert.Equal(t, 1, calls)
}

func TestLogRepository_Search(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var q SearchQuery
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&q))
		assert.Equal(t, "service:api", q.Query)
		assert.Equal(t, 10, q.StartOffset)
		w.Write([]byte(`{"num_hits":11,"hits":[` + goodHit(1) + `]}`))
	})
	repo := NewQuickwitLogRepository(client)

	req := dto.NewSearchRequest()
	req.Filters = map[string]string{"service": "api"}
	req.Page = 2
	req.PageSize = 10

	resp, err := repo.Search(context.Background(), req, testRange)
	require.NoError(t, err)
	assert.EqualValues(t, 11, resp.Total)
	assert.Len(t, resp.Hits, 1)
	assert.Equal(t, 2, resp.Page)
}

func TestLogRepository_AggregateServices(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var q SearchQuery
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&q))
		assert.Equal(t, 0, q.MaxHits)
		assert.Contains(t, q.Aggs, "services")
		w.Write([]byte(`{"num_hits":0,"hits":[],"aggregations":{"services":{"buckets":[{"key":"api"}]}}}`))
	})

	keys, ok, err := NewQuickwitLogRepository(client).AggregateServices(context.Background(), testRange)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"api"}, keys)
}
