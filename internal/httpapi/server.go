// Package httpapi exposes the decoder over HTTP.
package httpapi

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/jRubio4/EW-Payload-Plotter/internal/config"
	"github.com/jRubio4/EW-Payload-Plotter/internal/metrics"
	"github.com/jRubio4/EW-Payload-Plotter/internal/ratelimit"
)

// Server wraps the gin engine and its http.Server.
type Server struct {
	srv     *http.Server
	cfg     *config.Config
	log     logrus.FieldLogger
	metrics *metrics.DecodeMetrics
	limiter *ratelimit.Limiter
}

// New builds the router: /healthz, the metrics endpoint when enabled, and
// the rate-limited /api/v1 decode routes.
func New(cfg *config.Config, logger logrus.FieldLogger) *Server {
	s := &Server{
		cfg:     cfg,
		log:     logger,
		limiter: ratelimit.New(cfg.HTTP.RatePerSecond, cfg.HTTP.Burst),
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestID(), s.accessLog())

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	if cfg.Metrics.Enable {
		reg := metrics.NewRegistry()
		s.metrics = metrics.NewDecodeMetrics(reg)
		path := cfg.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		r.GET(path, gin.WrapH(metrics.Handler(reg)))
	}

	api := r.Group("/api/v1", s.rateLimit())
	api.GET("/products", s.handleProducts)
	api.POST("/decode", s.handleDecode)
	api.POST("/batch", s.handleBatch)

	s.srv = &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      r,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}
	return s
}

// Handler returns the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// Metrics returns the decode metrics, or nil when metrics are disabled.
func (s *Server) Metrics() *metrics.DecodeMetrics {
	return s.metrics
}

// Limiter returns the request limiter guarding /api/v1.
func (s *Server) Limiter() *ratelimit.Limiter {
	return s.limiter
}

// Start blocks serving HTTP until Shutdown is called.
func (s *Server) Start() error {
	s.log.WithField("addr", s.srv.Addr).Info("decode service listening")
	return s.srv.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
