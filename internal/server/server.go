package server

import (
	"context"
	"log/slog"
	"net/http"

	appplayers "nba-fantasy-service/internal/app/players"
	"nba-fantasy-service/internal/config"
	httpserver "nba-fantasy-service/internal/http"
	"nba-fantasy-service/internal/http/handlers"
	"nba-fantasy-service/internal/http/middleware"
	"nba-fantasy-service/internal/logging"
	"nba-fantasy-service/internal/metrics"
	"nba-fantasy-service/internal/providers"
	"nba-fantasy-service/internal/refresher"
	"nba-fantasy-service/internal/stats"
	"nba-fantasy-service/internal/store"
)

var metricsSetup = metrics.Setup

// Refresher is the lifecycle contract the server needs from the refresh loop.
type Refresher interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	RefreshNow(ctx context.Context) error
	Status() refresher.Status
}

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	store         *store.PlayerStore
	service       *appplayers.Service
	httpServer    httpServer
	metricsServer httpServer
	refresher     Refresher
	metricsStop   func(context.Context) error
}

// New constructs a server with default provider and refresher wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithProvider(cfg, logger, nil)
}

func newServerWithProvider(cfg config.Config, logger *slog.Logger, provider providers.StatsProvider) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)

	if provider == nil {
		provider = newProviderFactory(logger, recorder).build(cfg)
	}

	playerStore := store.NewPlayerStore()
	service := appplayers.NewService(playerStore)
	pipeline := stats.NewPipeline(
		stats.TieBreak(cfg.Ranking.TieBreak),
		stats.DefaultScoringWeights(),
		nil,
	)
	rfr := refresher.New(provider, pipeline, playerStore, logger, recorder, cfg.RefreshInterval)
	httpSrv := buildHTTPServer(cfg, service, logger, recorder, rfr)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		store:         playerStore,
		service:       service,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		refresher:     rfr,
		metricsStop:   metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, service *appplayers.Service, httpSrv httpServer, rfr Refresher) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		service:    service,
		httpServer: httpSrv,
		refresher:  rfr,
	}
}

func buildHTTPServer(cfg config.Config, service *appplayers.Service, logger *slog.Logger, recorder *metrics.Recorder, rfr Refresher) httpServer {
	var statusFn func() refresher.Status
	if rfr != nil {
		statusFn = rfr.Status
	}

	handler := handlers.NewHandler(service, logger, statusFn, handlers.RankingDefaults{
		MinGames: cfg.Ranking.MinGames,
		Strategy: appplayers.RankStrategy(cfg.Ranking.Strategy),
	})
	router := httpserver.NewRouter(handler)

	// Mount the admin refresh endpoint only when a token is configured.
	if cfg.AdminToken != "" && rfr != nil {
		admin := handlers.NewAdminHandler(rfr.RefreshNow, cfg.AdminToken, logger)
		if mux, ok := router.(*http.ServeMux); ok {
			mux.HandleFunc("/admin/refresh", admin.Refresh)
		}
	}

	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the refresher and HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.refresher.Start(ctx)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.refresher.Stop(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("failed to stop refresher", "error", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "error", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
