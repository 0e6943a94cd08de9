// Package server wires configuration, logging, metrics, the ingestion
// engine, the feed client, and the HTTP surface into one runnable service.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/courtside-live/livestats/internal/compose"
	"github.com/courtside-live/livestats/internal/config"
	"github.com/courtside-live/livestats/internal/engine"
	"github.com/courtside-live/livestats/internal/feed"
	"github.com/courtside-live/livestats/internal/httpapi"
	"github.com/courtside-live/livestats/internal/logging"
	"github.com/courtside-live/livestats/internal/metrics"
	"github.com/courtside-live/livestats/internal/snapshot"
)

var metricsSetup = metrics.Setup

// Server owns the assembled service.
type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	engine        *engine.Engine
	snapshots     *snapshot.Store
	feedClient    *feed.Client
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New constructs a server. LineSink, when set, receives each composed
// play-by-play line (the CLI prints them).
func New(cfg config.Config, logger *slog.Logger, lineSink func(string)) *Server {
	recorder, promHandler, metricsShutdown, err := metricsSetup(context.Background(), metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	})
	if err != nil {
		logging.Error(logger, "metrics setup failed, continuing without export", err)
		recorder = metrics.NewRecorder()
		metricsShutdown = func(context.Context) error { return nil }
	}

	eng := engine.New(engine.Config{
		Logger:   logger,
		Metrics:  recorder,
		Debug:    cfg.Debug,
		Composer: compose.ActionMessage,
		LineSink: lineSink,
	})

	snapshots := snapshot.NewStore()
	eng.SubscribeAll(snapshots.Update)

	feedClient := feed.NewClient(cfg.Feed, eng, logger, recorder)

	handler := httpapi.NewHandler(snapshots, logger, feedClient.Connected)
	router := httpapi.LoggingMiddleware(logger, recorder, httpapi.NewRouter(handler))

	srv := &Server{
		cfg:         cfg,
		logger:      logger,
		metrics:     recorder,
		engine:      eng,
		snapshots:   snapshots,
		feedClient:  feedClient,
		metricsStop: metricsShutdown,
		httpServer: netHTTPServer{srv: &http.Server{
			Addr:         ":" + cfg.Port,
			Handler:      router,
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
			IdleTimeout:  idleTimeout,
		}},
	}

	if promHandler != nil {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promHandler)
		srv.metricsServer = netHTTPServer{srv: &http.Server{
			Addr:         ":" + cfg.Metrics.Port,
			Handler:      mux,
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
		}}
	}
	return srv
}

// Engine exposes the ingestion engine so callers can subscribe listeners
// before Run.
func (s *Server) Engine() *engine.Engine {
	return s.engine
}

// Run starts the feed client and HTTP servers and blocks until the context
// is cancelled, then shuts everything down.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	defer stop()

	go s.serve(s.httpServer, "http server")
	if s.metricsServer != nil {
		go s.serve(s.metricsServer, "metrics server")
	}

	feedDone := make(chan error, 1)
	go func() {
		feedDone <- s.feedClient.Run(ctx)
	}()

	select {
	case <-ctx.Done():
	case err := <-feedDone:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error(s.logger, "feed client stopped", err)
		}
	}

	s.shutdown()
}

func (s *Server) serve(srv httpServer, name string) {
	logging.Info(s.logger, name+" listening", "addr", srv.Addr())
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logging.Error(s.logger, name+" failed", err)
	}
}

func (s *Server) shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		logging.Warn(s.logger, "http server shutdown failed", "error", err)
	}
	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(ctx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}
	if s.metricsStop != nil {
		if err := s.metricsStop(ctx); err != nil {
			logging.Warn(s.logger, "metrics exporter shutdown failed", "error", err)
		}
	}
	logging.Info(s.logger, "server stopped")
}
