// Package gin exposes a shopinsight.InsightExtractor over HTTP using the
// Gin web framework.
package gin

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/fwojciec/shopinsight"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Defaults for Server.
const (
	DefaultAddr            = ":8000"
	DefaultShutdownTimeout = 10 * time.Second
)

// ExtractPath is the brand insight extraction route.
const ExtractPath = "/api/store/extract-brand-insights"

// Server serves brand insight extraction over HTTP.
type Server struct {
	extractor       shopinsight.InsightExtractor
	logger          *slog.Logger
	addr            string
	corsOrigins     []string
	metrics         http.Handler
	shutdownTimeout time.Duration

	engine *gin.Engine
}

// Option configures a Server.
type Option func(*Server)

// WithAddr sets the listen address.
func WithAddr(addr string) Option {
	return func(s *Server) {
		s.addr = addr
	}
}

// WithCORSOrigins restricts cross-origin requests to origins. Without it
// every origin is allowed.
func WithCORSOrigins(origins []string) Option {
	return func(s *Server) {
		s.corsOrigins = origins
	}
}

// WithMetricsHandler mounts h at GET /metrics.
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) {
		s.metrics = h
	}
}

// WithShutdownTimeout bounds how long Run waits for in-flight requests.
func WithShutdownTimeout(d time.Duration) Option {
	return func(s *Server) {
		s.shutdownTimeout = d
	}
}

// NewServer creates a Server and builds its routes.
func NewServer(extractor shopinsight.InsightExtractor, logger *slog.Logger, opts ...Option) *Server {
	s := &Server{
		extractor:       extractor,
		logger:          logger,
		addr:            DefaultAddr,
		shutdownTimeout: DefaultShutdownTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.engine = s.routes()
	return s
}

// Handler returns the HTTP handler with all routes and middleware.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) routes() *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(RequestID())
	router.Use(AccessLog(s.logger))
	router.Use(cors.New(s.corsConfig()))

	router.GET("/health", s.handleHealth)
	if s.metrics != nil {
		router.GET("/metrics", gin.WrapH(s.metrics))
	}
	router.POST(ExtractPath, s.handleExtract)

	return router
}

func (s *Server) corsConfig() cors.Config {
	config := cors.DefaultConfig()
	if len(s.corsOrigins) == 0 {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = s.corsOrigins
		config.AllowCredentials = true
	}
	config.AllowHeaders = append(config.AllowHeaders, RequestIDHeader)
	config.ExposeHeaders = []string{RequestIDHeader}
	config.MaxAge = 12 * time.Hour
	return config
}

// Run listens on the configured address until ctx is canceled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is like Run but accepts connections on ln.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
