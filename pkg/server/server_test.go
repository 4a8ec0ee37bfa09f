package server

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pario-ai/anggaran/pkg/budget"
	"github.com/pario-ai/anggaran/pkg/config"
	"github.com/pario-ai/anggaran/pkg/metrics"
	"github.com/pario-ai/anggaran/pkg/models"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestServer(t *testing.T) (*Server, *metrics.Metrics) {
	t.Helper()
	cfg := config.Default()
	m := metrics.New()
	return New(cfg, cfg.Mapper(), m, zap.NewNop()), m
}

func post(t *testing.T, s *Server, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestHandleHealth(t *testing.T) {
	s, _ := setupTestServer(t)

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestHandleExtract(t *testing.T) {
	t.Run("finds amount", func(t *testing.T) {
		s, m := setupTestServer(t)

		rec := post(t, s, "/api/v1/extract", `{"text":"anggaran 300 juta"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.ExtractResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Found)
		assert.Equal(t, "300000000", resp.Amount)
		assert.Equal(t, "Rp 300.000.000", resp.Formatted)
		assert.Equal(t, "million", resp.Pattern)
		assert.Equal(t, 1.0, testutil.ToFloat64(m.ExtractionsTotal.WithLabelValues("million")))
	})

	t.Run("reports not found", func(t *testing.T) {
		s, m := setupTestServer(t)

		rec := post(t, s, "/api/v1/extract", `{"text":"belum ada angka"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.ExtractResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.Found)
		assert.Empty(t, resp.Amount)
		assert.Equal(t, 1.0, testutil.ToFloat64(m.ExtractionsTotal.WithLabelValues(metrics.PatternNone)))
	})

	t.Run("rejects empty text", func(t *testing.T) {
		s, _ := setupTestServer(t)
		rec := post(t, s, "/api/v1/extract", `{"text":""}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), ErrEmptyText.Error())
	})

	t.Run("rejects malformed json", func(t *testing.T) {
		s, _ := setupTestServer(t)
		rec := post(t, s, "/api/v1/extract", `{"text":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleAnalyze(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		tier      models.Decision
		kind      models.Kind
		documents int
	}{
		{"tier b at threshold", `{"text":"pengadaan laptop 300jt"}`, models.DecisionB, models.KindPengadaan, 5},
		{"tier a below threshold", `{"text":"Rp 150.000.000 untuk lisensi"}`, models.DecisionA, models.KindLisensi, 4},
		{"not found", `{"text":"tolong bantu"}`, models.DecisionNone, models.KindPengadaan, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, m := setupTestServer(t)

			rec := post(t, s, "/api/v1/analyze", tt.body)
			require.Equal(t, http.StatusOK, rec.Code)

			var resp models.AnalyzeResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.tier, resp.Tier)
			assert.Equal(t, tt.kind, resp.Kind)
			assert.Len(t, resp.Documents, tt.documents)
			assert.NotEmpty(t, resp.Detected)
			assert.NotEmpty(t, resp.Decision)
			assert.Equal(t, 1.0, testutil.ToFloat64(m.DecisionsTotal.WithLabelValues(string(tt.tier))))
		})
	}
}

func TestHandleDocuments(t *testing.T) {
	s, _ := setupTestServer(t)

	get := func(target string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
		return rec
	}

	rec := get("/api/v1/documents?tier=b&q=rab")
	require.Equal(t, http.StatusOK, rec.Code)
	var resp models.DocumentsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, models.DecisionB, resp.Tier)
	assert.Equal(t, "RAB", resp.Match)
	assert.Len(t, resp.Documents, 5)

	assert.Equal(t, http.StatusBadRequest, get("/api/v1/documents").Code)
	assert.Equal(t, http.StatusBadRequest, get("/api/v1/documents?tier=c").Code)
	assert.Equal(t, http.StatusNotFound, get("/api/v1/documents?tier=a&q=nota").Code)
}

func TestMetricsEndpoint(t *testing.T) {
	s, _ := setupTestServer(t)
	post(t, s, "/api/v1/analyze", `{"text":"1 miliar"}`)

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `anggaran_decisions_total{tier="b"} 1`)
}

func TestMetricsDisabled(t *testing.T) {
	cfg := config.Default()
	cfg.Metrics.Enabled = false
	s := New(cfg, budget.Default(), metrics.New(), nil)

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListenAndServeShutdown(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	cfg := config.Default()
	cfg.Listen = addr
	s := New(cfg, cfg.Mapper(), nil, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/health")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
