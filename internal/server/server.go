// Package server exposes the risk engine over HTTP: a JSON analyze
// endpoint, a plain-text file upload endpoint, and a health check.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/unbound-force/prodoc/internal/engine"
)

// maxUploadBytes bounds uploaded contract files.
const maxUploadBytes = 10 << 20

// Config holds HTTP server configuration.
type Config struct {
	Host string
	Port int
}

// Server serves the prodoc HTTP API.
type Server struct {
	echo   *echo.Echo
	engine *engine.Engine
	logger *charmlog.Logger
	config Config
}

// New creates the HTTP server around an engine.
func New(eng *engine.Engine, logger *charmlog.Logger, cfg Config) (*Server, error) {
	if eng == nil {
		return nil, fmt.Errorf("engine cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}
	if cfg.Host == "" {
		cfg.Host = "localhost"
	}
	if cfg.Port == 0 {
		cfg.Port = 8080
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			logger.Info("http request",
				"method", c.Request().Method,
				"uri", c.Request().RequestURI,
				"status", c.Response().Status,
				"duration", time.Since(start),
				"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
			)
			return err
		}
	})

	s := &Server{
		echo:   e,
		engine: eng,
		logger: logger,
		config: cfg,
	}
	s.registerRoutes()

	return s, nil
}

func (s *Server) registerRoutes() {
	s.echo.GET("/health", s.handleHealth)

	v1 := s.echo.Group("/api/v1")
	v1.POST("/analyze", s.handleAnalyze)
	v1.POST("/analyze/upload", s.handleUpload)
}

// AnalyzeRequest is the request body for POST /api/v1/analyze.
type AnalyzeRequest struct {
	ContractTitle string `json:"contract_title"`
	ContractText  string `json:"contract_text"`
}

// HealthResponse is the response body for GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// handleAnalyze runs the engine over contract text supplied as JSON.
func (s *Server) handleAnalyze(c echo.Context) error {
	var req AnalyzeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(req.ContractText) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "contract_text field is required")
	}
	if req.ContractTitle == "" {
		req.ContractTitle = "Untitled contract"
	}

	return s.analyze(c, req.ContractText, req.ContractTitle)
}

// handleUpload runs the engine over an uploaded plain-text contract.
// Only .txt files are accepted; binary formats need an extraction
// step upstream of this service.
func (s *Server) handleUpload(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file field is required")
	}
	if ext := strings.ToLower(filepath.Ext(fh.Filename)); ext != ".txt" {
		return echo.NewHTTPError(http.StatusBadRequest, "only .txt files are supported")
	}

	f, err := fh.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cannot open uploaded file")
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cannot read uploaded file")
	}
	if strings.TrimSpace(string(data)) == "" {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "no text could be extracted from the file")
	}

	return s.analyze(c, string(data), fh.Filename)
}

func (s *Server) analyze(c echo.Context, text, title string) error {
	result, err := s.engine.Analyze(c.Request().Context(), text, title)
	if err != nil {
		if errors.Is(err, engine.ErrNoClauses) {
			return echo.NewHTTPError(http.StatusUnprocessableEntity, "contract contains no usable clauses")
		}
		s.logger.Error("analysis failed", "title", title, "err", err)
		return echo.NewHTTPError(http.StatusBadGateway, "clause classification failed")
	}

	s.logger.Debug("contract analyzed",
		"title", title,
		"decision", result.Decision,
		"score", result.RiskScore,
		"highlights", len(result.Highlights),
	)

	return c.JSON(http.StatusOK, result)
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.logger.Info("starting http server", "addr", addr)
	return s.echo.Start(addr)
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.echo.Shutdown(ctx)
}

// Handler exposes the underlying handler for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}
