package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/otel"
	"golang.org/x/text/language"

	"github.com/okian/tierboard/internal/adapters/http/api"
	"github.com/okian/tierboard/internal/adapters/http/site"
	"github.com/okian/tierboard/internal/adapters/http/swagger"
	"github.com/okian/tierboard/internal/adapters/source"
	service "github.com/okian/tierboard/internal/app"
	"github.com/okian/tierboard/internal/config"
	"github.com/okian/tierboard/internal/domain/ranking"
	"github.com/okian/tierboard/internal/gateway"
	"github.com/okian/tierboard/internal/i18n"
	"github.com/okian/tierboard/internal/scheduler"
	"github.com/okian/tierboard/pkg/logger"
	"github.com/okian/tierboard/pkg/metrics"
)

// HTTP server timeout constants.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 30 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 30 * time.Second
)

func main() {
	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		// Use fmt for initialization errors since logger isn't available yet
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	if err := logger.Init(logger.WithJSON(cfg.LogFormat == "json")); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()
	loggerInstance := logger.Get()

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		loggerInstance.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	if err := run(ctx, cfg, loggerInstance); err != nil {
		loggerInstance.Error(ctx, "server failed", logger.Error(err))
		os.Exit(1)
	}
}

// app holds everything run needs to serve and shut down.
type app struct {
	mux       *http.ServeMux
	svc       *service.Service
	scheduler *scheduler.Scheduler
}

// build wires the source, gateway, service and HTTP routes from cfg.
func build(ctx context.Context, cfg *config.Config, l logger.Logger) (*app, error) {
	fetcher, err := source.Resolve(
		source.Descriptor{URL: cfg.SourceURL, Path: cfg.SourcePath},
		&http.Client{},
		source.WithTimeout(cfg.FetchTimeout()),
	)
	if err != nil {
		return nil, err
	}

	tr, err := i18n.New()
	if err != nil {
		return nil, err
	}
	collation, err := language.Parse(cfg.CollationLocale)
	if err != nil {
		return nil, err
	}

	gw := gateway.New(fetcher,
		gateway.WithCacheTTL(cfg.CacheTTL()),
		gateway.WithRanker(ranking.New(ranking.WithLocale(collation))),
		gateway.WithTracer(otel.Tracer("tierboard/gateway")),
		gateway.WithLogger(l.Named("gateway")),
	)
	svc := service.New(gw,
		service.WithTranslator(tr),
		service.WithLanguage(tr.Match(cfg.Language)),
		service.WithActiveWindow(cfg.ActiveWindow()),
		service.WithLogger(l.Named("service")),
	)

	// HTTP mux and routes.
	mux := http.NewServeMux()

	// Register API docs under /api-docs
	swagger.Register(ctx, mux)

	// Register business API routes with the service dependency.
	api.NewServer(svc,
		api.WithMaxLimit(cfg.MaxLeaderboardLimit),
		api.WithRefreshRate(cfg.RefreshPerMinute, cfg.RefreshBurst),
		api.WithLogger(l.Named("api")),
	).Register(ctx, mux)

	// The browser view owns every path the API does not.
	site.Register(ctx, mux)

	a := &app{mux: mux, svc: svc}
	if interval := cfg.RefreshInterval(); interval > 0 {
		a.scheduler, err = scheduler.New(svc, interval, scheduler.WithLogger(l))
		if err != nil {
			return nil, err
		}
	}
	return a, nil
}

// run serves until ctx is cancelled, then shuts down gracefully.
func run(ctx context.Context, cfg *config.Config, l logger.Logger) error {
	a, err := build(ctx, cfg, l)
	if err != nil {
		return err
	}

	if err := a.svc.Start(ctx); err != nil {
		return err
	}
	defer a.svc.Stop()

	go metrics.RunSystemCollector(ctx)
	if a.scheduler != nil {
		go a.scheduler.Run(ctx)
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           a.mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		l.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// Wait for shutdown signal or a listener failure
	var listenErr error
	select {
	case <-ctx.Done():
	case listenErr = <-serveErr:
	}
	l.Info(ctx, "shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if a.scheduler != nil {
		if err := a.scheduler.Shutdown(shutdownCtx); err != nil {
			l.Warn(ctx, "scheduler shutdown failed", logger.Error(err))
		}
	}
	if listenErr != nil {
		return listenErr
	}
	if err := srv.Shutdown(shutdownCtx); err != nil {
		l.Error(ctx, "server shutdown failed", logger.Error(err))
	}

	l.Info(ctx, "server stopped")
	return nil
}
