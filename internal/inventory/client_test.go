package inventory

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"dealership/internal/config"
	"dealership/internal/logger"
	"dealership/internal/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.Handler) (*Client, *metrics.Metrics) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	m := metrics.New()
	cfg := &config.Config{BackendURL: srv.URL + "/", SentimentURL: srv.URL + "/"}
	return New(cfg, logger.Discard(), m), m
}

func TestGet_OK(t *testing.T) {
	c, m := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/fetchDealers/Texas", r.URL.Path)
		assert.Equal(t, "a b&c", r.URL.Query().Get("q"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"full_name":"Best Cars"}]`))
	}))

	got := c.Get(context.Background(), "/fetchDealers/Texas", map[string]string{"q": "a b&c"})
	require.NotNil(t, got)
	assert.JSONEq(t, `[{"id":1,"full_name":"Best Cars"}]`, string(got))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.UpstreamRequests.WithLabelValues("backend", "ok")))
}

func TestGet_NonOKStatus(t *testing.T) {
	c, m := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"boom"}`))
	}))

	assert.Nil(t, c.Get(context.Background(), "/fetchDealers", nil))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.UpstreamRequests.WithLabelValues("backend", "status")))
}

func TestGet_InvalidJSON(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>nope</html>`))
	}))

	assert.Nil(t, c.Get(context.Background(), "/fetchDealers", nil))
}

func TestGet_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := New(&config.Config{BackendURL: url}, logger.Discard(), nil)
	assert.Nil(t, c.Get(context.Background(), "/fetchDealers", nil))
}

func TestPost_Success(t *testing.T) {
	for _, status := range []int{http.StatusCreated, http.StatusAccepted} {
		c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/review", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			body, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"review":"great"}`, string(body))
			w.WriteHeader(status)
			_, _ = w.Write([]byte(`{"id":42}`))
		}))

		res := c.Post(context.Background(), "/api/review", json.RawMessage(`{"review":"great"}`))
		assert.True(t, res.OK())
		assert.JSONEq(t, `{"id":42}`, string(res.Data))
	}
}

func TestPost_ErrorStatusWithJSON(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"missing name"}`))
	}))

	res := c.Post(context.Background(), "/api/review", json.RawMessage(`{}`))
	assert.False(t, res.OK())
	assert.Equal(t, PostError, res.Status)
	assert.JSONEq(t, `{"error":"missing name"}`, res.Message)
}

func TestPost_OKIsNotSuccess(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`plain`))
	}))

	res := c.Post(context.Background(), "/api/review", json.RawMessage(`{}`))
	assert.False(t, res.OK())
	assert.Equal(t, "Failed with status code 200", res.Message)
}

func TestPost_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := New(&config.Config{BackendURL: url}, logger.Discard(), nil)
	res := c.Post(context.Background(), "/api/review", json.RawMessage(`{}`))
	assert.Equal(t, PostError, res.Status)
	assert.Equal(t, "Network connection failed", res.Message)
}

func TestAnalyze(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/analyze/great service":
			_, _ = w.Write([]byte(`{"sentiment":"positive"}`))
		case "/analyze/no field":
			_, _ = w.Write([]byte(`{}`))
		case "/analyze/garbage":
			_, _ = w.Write([]byte(`not json`))
		default:
			w.WriteHeader(http.StatusServiceUnavailable)
		}
	}))

	ctx := context.Background()
	assert.Equal(t, "positive", c.Analyze(ctx, "great service"))
	assert.Equal(t, DefaultSentiment, c.Analyze(ctx, "no field"))
	assert.Equal(t, DefaultSentiment, c.Analyze(ctx, "garbage"))
	assert.Equal(t, DefaultSentiment, c.Analyze(ctx, "down"))
}
