// Package server exposes the budget extractor and checklist mapper over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pario-ai/anggaran/pkg/budget"
	"github.com/pario-ai/anggaran/pkg/config"
	"github.com/pario-ai/anggaran/pkg/extractor"
	"github.com/pario-ai/anggaran/pkg/metrics"
	"github.com/pario-ai/anggaran/pkg/models"
	"go.uber.org/zap"
)

// ErrEmptyText is returned when a request carries no text to analyze.
var ErrEmptyText = errors.New("text field is required")

// Server is the anggaran HTTP API.
type Server struct {
	cfg     *config.Config
	mapper  *budget.Mapper
	metrics *metrics.Metrics
	logger  *zap.Logger
	echo    *echo.Echo
}

// HealthResponse is the response body for GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// New creates a Server wired with all dependencies. A nil logger discards
// logs; nil metrics disables the counters and the metrics endpoint.
func New(cfg *config.Config, mapper *budget.Mapper, m *metrics.Metrics, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestLogger(logger))

	s := &Server{
		cfg:     cfg,
		mapper:  mapper,
		metrics: m,
		logger:  logger,
		echo:    e,
	}
	s.registerRoutes()
	return s
}

func requestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			logger.Info("http request",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Int("status", c.Response().Status),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			)
			return nil
		}
	}
}

func (s *Server) registerRoutes() {
	s.echo.GET("/health", s.handleHealth)

	v1 := s.echo.Group("/api/v1")
	v1.POST("/extract", s.handleExtract)
	v1.POST("/analyze", s.handleAnalyze)
	v1.GET("/documents", s.handleDocuments)

	if s.metrics != nil && s.cfg.Metrics.Enabled {
		s.echo.GET(s.cfg.Metrics.Path, echo.WrapHandler(s.metrics.Handler()))
	}
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

// ListenAndServe starts the server and shuts it down when ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("anggaran listening", zap.String("addr", s.cfg.Listen))
		errCh <- s.echo.Start(s.cfg.Listen)
	}()

	select {
	case <-ctx.Done():
		shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info("shutting down http server")
		return s.echo.Shutdown(shutCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

func (s *Server) bindText(c echo.Context) (string, error) {
	var req models.AnalyzeRequest
	if err := c.Bind(&req); err != nil {
		s.logger.Warn("invalid request body", zap.Error(err))
		return "", echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Text == "" {
		return "", echo.NewHTTPError(http.StatusBadRequest, ErrEmptyText.Error())
	}
	return req.Text, nil
}

func (s *Server) handleExtract(c echo.Context) error {
	text, err := s.bindText(c)
	if err != nil {
		return err
	}

	m, found := extractor.Explain(text)
	s.metrics.ObserveExtraction(m.Pattern)

	s.logger.Debug("extracted budget",
		zap.Bool("found", found),
		zap.String("pattern", m.Pattern),
		zap.String("amount", m.Amount.String()),
	)
	return c.JSON(http.StatusOK, budget.ExtractReport(m, found))
}

func (s *Server) handleAnalyze(c echo.Context) error {
	text, err := s.bindText(c)
	if err != nil {
		return err
	}

	a := s.mapper.Analyze(text)
	s.metrics.ObserveExtraction(a.Match.Pattern)
	s.metrics.ObserveDecision(a.Outcome.Decision())

	s.logger.Debug("analyzed request",
		zap.String("tier", string(a.Outcome.Decision())),
		zap.String("kind", string(a.Kind)),
	)
	return c.JSON(http.StatusOK, s.mapper.Report(a))
}

func (s *Server) handleDocuments(c echo.Context) error {
	tier := models.Decision(c.QueryParam("tier"))
	resp, err := s.mapper.Documents(tier, c.QueryParam("q"))
	switch {
	case errors.Is(err, budget.ErrUnknownTier):
		return echo.NewHTTPError(http.StatusBadRequest, "tier must be a or b")
	case errors.Is(err, budget.ErrNoDocument):
		return echo.NewHTTPError(http.StatusNotFound, "dokumen tidak ditemukan")
	case err != nil:
		return err
	}
	return c.JSON(http.StatusOK, resp)
}
