package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/elevenpool/league-console/internal/app/dashboard"
	appleagues "github.com/elevenpool/league-console/internal/app/leagues"
	appmatches "github.com/elevenpool/league-console/internal/app/matches"
	appplayers "github.com/elevenpool/league-console/internal/app/players"
	"github.com/elevenpool/league-console/internal/auth"
	"github.com/elevenpool/league-console/internal/config"
	httpserver "github.com/elevenpool/league-console/internal/http"
	"github.com/elevenpool/league-console/internal/http/handlers"
	"github.com/elevenpool/league-console/internal/logging"
	"github.com/elevenpool/league-console/internal/metrics"
	"github.com/elevenpool/league-console/internal/poller"
	"github.com/elevenpool/league-console/internal/providers"
	"github.com/elevenpool/league-console/internal/store"
	"github.com/elevenpool/league-console/internal/telemetry"
	"github.com/elevenpool/league-console/internal/timeutil"
)

var (
	metricsSetup   = metrics.Setup
	telemetrySetup = telemetry.New
)

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	reporter      *telemetry.Reporter
	services      handlers.Services
	httpServer    httpServer
	metricsServer httpServer
	poller        Poller
	metricsStop   func(context.Context) error
}

// New constructs a server with the configured league API backend.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithAPI(cfg, logger, nil, nil)
}

// newServerWithAPI wires the server around api; a nil api is selected from cfg.
func newServerWithAPI(cfg config.Config, logger *slog.Logger, api providers.LeagueAPI, recorder *metrics.Recorder) *Server {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{
			Level:   cfg.Logging.Level,
			Format:  cfg.Logging.Format,
			Service: cfg.Metrics.ServiceName,
			Version: cfg.Version,
		})
	}
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)
	reporter := buildReporter(cfg, logger)

	factory := newProviderFactory(logger, recorder)
	var be backend
	if api == nil {
		be = factory.build(cfg)
	} else {
		be = factory.wrap(cfg, api)
	}
	logging.Info(logger, "league api backend selected", logging.FieldProvider, be.name)

	svc := buildServices(cfg, be, reporter, recorder, logger)
	plr := buildPoller(cfg, svc, logger, recorder)
	httpSrv := buildHTTPServer(cfg, svc, logger, recorder, plr)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		reporter:      reporter,
		services:      svc,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		poller:        plr,
		metricsStop:   metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer, plr Poller) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
		poller:     plr,
	}
}

func buildServices(cfg config.Config, be backend, reporter *telemetry.Reporter, recorder *metrics.Recorder, logger *slog.Logger) handlers.Services {
	loc := timeutil.ResolveLocation(cfg.Timezone)
	views := store.NewMatchViews()
	matchSvc := appmatches.NewService(be.reader, be.writer, views, reporter, logger, loc)
	return handlers.Services{
		Dashboard: dashboard.NewService(be.reader, views, recorder, logger),
		Latest:    store.NewLatest[dashboard.Summary](),
		Leagues:   appleagues.NewService(be.reader, be.writer, matchSvc, reporter, logger, loc),
		Players:   appplayers.NewService(be.reader, be.writer, reporter, logger),
		Matches:   matchSvc,
	}
}

// buildPoller returns nil unless a service token lets the console call the API on its own.
func buildPoller(cfg config.Config, svc handlers.Services, logger *slog.Logger, recorder *metrics.Recorder) Poller {
	if cfg.LeagueAPI.ServiceToken == "" {
		logging.Info(logger, "dashboard refresh disabled, no service token configured")
		return nil
	}
	creds := auth.Credentials{Token: cfg.LeagueAPI.ServiceToken}
	return poller.New(svc.Dashboard, svc.Latest, creds, logger, recorder, cfg.Dashboard.RefreshInterval)
}

func buildReporter(cfg config.Config, logger *slog.Logger) *telemetry.Reporter {
	reporter, err := telemetrySetup(telemetry.Config{
		DSN:         cfg.Sentry.DSN,
		Environment: cfg.Sentry.Environment,
		Release:     cfg.Version,
		ServiceName: cfg.Metrics.ServiceName,
	})
	if err != nil {
		logging.Warn(logger, "sentry setup failed, continuing without error reporting", logging.FieldError, err)
		return nil
	}
	return reporter
}

func buildHTTPServer(cfg config.Config, svc handlers.Services, logger *slog.Logger, recorder *metrics.Recorder, plr Poller) httpServer {
	handler := handlers.NewHandler(svc, logger, statusSource(plr))
	router := httpserver.NewRouter(handler, logger, recorder, time.Now)
	return newAPIServer(":"+cfg.Port, router)
}

// Run starts the poller and HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	if s.poller != nil {
		s.poller.Start(ctx)
	}

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	logging.Info(s.logger, "http server starting", slog.String("addr", s.httpServer.Addr()))
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
	logging.Info(s.logger, "metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", logging.FieldError, err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", logging.FieldError, err)
		}
	}

	if s.poller != nil {
		if err := s.poller.Stop(shutdownCtx); err != nil {
			logging.Error(s.logger, "failed to stop poller", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	s.reporter.Flush()
	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", logging.FieldError, err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = newScrapeServer(cfg.Metrics.Addr(), handler)
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		logging.Info(logger, "starting "+name+" server", slog.String("addr", srv.Addr()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", logging.FieldError, err)
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
