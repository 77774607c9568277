package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	api "github.com/GriffinCanCode/mathops/internal/api/http"
	"github.com/GriffinCanCode/mathops/internal/api/middleware"
	"github.com/GriffinCanCode/mathops/internal/domain/service"
	"github.com/GriffinCanCode/mathops/internal/infrastructure/config"
	"github.com/GriffinCanCode/mathops/internal/infrastructure/logging"
	"github.com/GriffinCanCode/mathops/internal/infrastructure/monitoring"
	mathProvider "github.com/GriffinCanCode/mathops/internal/providers/math"
	"github.com/GriffinCanCode/mathops/internal/providers/math/operations"
	"github.com/GriffinCanCode/mathops/internal/providers/tabular"
)

// Server wraps the HTTP server and dependencies
type Server struct {
	router   *gin.Engine
	registry *service.Registry
	logger   *logging.Logger
	config   *config.Config
	metrics  *monitoring.Metrics
	http     *http.Server
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config) (*Server, error) {
	logger, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return newServer(cfg, logger)
}

func newServer(cfg *config.Config, logger *logging.Logger) (*Server, error) {
	logger.Info("Initializing math operations server",
		zap.String("addr", cfg.Server.Addr()),
		zap.String("data_dir", cfg.Data.Dir),
	)

	metrics := monitoring.NewMetrics()
	limits := operations.Limits(cfg.Limits)

	serviceRegistry := service.NewRegistry()
	if err := registerProviders(serviceRegistry, cfg, limits); err != nil {
		return nil, err
	}
	stats := serviceRegistry.Stats()
	logger.Info("Service providers registered",
		zap.Any("services", stats["total_services"]),
		zap.Any("tools", stats["total_tools"]),
	)

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not Found"})
	})
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"detail": "Method Not Allowed"})
	})

	// Add middleware
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.RequestID())
	router.Use(middleware.AccessLog(logger))
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.CORS(middleware.NewCORSConfig(cfg.CORS.Origins)))
	if cfg.RateLimit.Enabled {
		logger.Info("Rate limiting enabled",
			zap.Int("rps", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
		)
		rl := middleware.DefaultRateLimitConfig()
		rl.RequestsPerSecond = cfg.RateLimit.RequestsPerSecond
		rl.Burst = cfg.RateLimit.Burst
		router.Use(middleware.RateLimit(rl))
	}

	handlers := api.NewHandlers(serviceRegistry, limits, metrics, logger)
	handlers.Register(router)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	logger.Info("Server initialized successfully")

	return &Server{
		router:   router,
		registry: serviceRegistry,
		logger:   logger,
		config:   cfg,
		metrics:  metrics,
		http: &http.Server{
			Addr:    cfg.Server.Addr(),
			Handler: router,
		},
	}, nil
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// Registry returns the service registry
func (s *Server) Registry() *service.Registry {
	return s.registry
}

// Run serves until ctx is cancelled, then shuts down gracefully within the
// configured timeout.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting HTTP server", zap.String("addr", s.http.Addr))
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	return s.Close()
}

// Close gracefully shuts down the server
func (s *Server) Close() error {
	s.logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), s.config.Server.Shutdown())
	defer cancel()

	if err := s.http.Shutdown(ctx); err != nil {
		s.logger.Error("Graceful shutdown failed", zap.Error(err))
		return fmt.Errorf("failed to shut down http server: %w", err)
	}

	// Sync logger before exit
	_ = s.logger.Sync()

	return nil
}

func registerProviders(registry *service.Registry, cfg *config.Config, limits operations.Limits) error {
	if err := registry.Register(mathProvider.NewProvider(limits)); err != nil {
		return fmt.Errorf("failed to register math provider: %w", err)
	}
	if err := registry.Register(tabular.NewProvider(cfg.Data.Dir)); err != nil {
		return fmt.Errorf("failed to register data provider: %w", err)
	}
	return nil
}
