package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"

	"github.com/YusovID/review-dashboard/internal/backend"
	"github.com/YusovID/review-dashboard/internal/config"
	"github.com/YusovID/review-dashboard/internal/diagram"
	"github.com/YusovID/review-dashboard/internal/gitlab"
	"github.com/YusovID/review-dashboard/internal/markdown"
	"github.com/YusovID/review-dashboard/internal/repository"
	"github.com/YusovID/review-dashboard/internal/repository/bolt"
	"github.com/YusovID/review-dashboard/internal/repository/postgres"
	"github.com/YusovID/review-dashboard/internal/service"
	myhttp "github.com/YusovID/review-dashboard/internal/transport/http"
	"github.com/YusovID/review-dashboard/pkg/logger/sl"
	"github.com/YusovID/review-dashboard/pkg/logger/slogpretty"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg := config.MustLoad()
	log := slogpretty.SetupLogger(cfg.Env)

	log.Info("starting review-dashboard", slog.String("env", cfg.Env))

	backendURL, err := url.Parse(cfg.Backend.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid backend base url: %w", err)
	}

	cache, closeCache, err := openRenderCache(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to init render cache: %w", err)
	}
	defer func() {
		if err := closeCache(); err != nil {
			log.Error("render cache close failed", sl.Err(err))
		}
	}()

	gl := gitlab.New(cfg.GitLab.BaseURL, gitlab.WithTimeout(cfg.GitLab.Timeout))
	be := backend.New(cfg.Backend.BaseURL, backend.WithTimeout(cfg.Backend.Timeout))
	base := service.NewBaseService(gl, be, log)

	documents := service.NewDocumentRenderer(markdown.NewRenderer(), newDiagramProcessor(cfg.Diagram, log), cache, log)
	projects := service.NewProjectService(base, service.NewTracker())
	notifications := service.NewNotificationService(base, service.NewDebouncer(cfg.Notifications.Debounce))

	srv := myhttp.NewServer(log, myhttp.Services{
		Auth:          service.NewAuthService(base),
		Projects:      projects,
		Binding:       service.NewBindingService(base, projects),
		Analysis:      service.NewAnalysisService(base, documents),
		Notifications: notifications,
	}, backendURL)

	httpServer := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		Handler:      srv.Routes(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errChan := make(chan error, 1)

	go startServer(log, httpServer, errChan)

	select {
	case err := <-errChan:
		return fmt.Errorf("http server error: %w", err)

	case <-ctx.Done():
		log.Info("stopping server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("error shutting down http server: %w", err)
	}

	// Settings still waiting out their debounce period are written now.
	notifications.Flush()

	return nil
}

func startServer(log *slog.Logger, httpServer *http.Server, errChan chan error) {
	defer close(errChan)

	log.Info("service started", slog.String("addr", httpServer.Addr))

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		errChan <- fmt.Errorf("error listening and serving: %w", err)
	}
}

// openRenderCache opens the render cache selected by cfg.Cache.Driver.
func openRenderCache(cfg *config.Config, log *slog.Logger) (repository.RenderCache, func() error, error) {
	switch cfg.Cache.Driver {
	case config.CachePostgres:
		db, err := postgres.NewDB(cfg.Postgres, log)
		if err != nil {
			return nil, nil, err
		}

		return postgres.NewRenderCache(db.DB(), log), db.Close, nil
	case config.CacheBolt:
		cache, err := bolt.Open(cfg.Cache.BoltPath)
		if err != nil {
			return nil, nil, err
		}

		log.Info("render cache opened", slog.String("path", cfg.Cache.BoltPath))

		return cache, cache.Close, nil
	default:
		return repository.NopCache{}, func() error { return nil }, nil
	}
}

// newDiagramProcessor returns nil when no renderer is configured, which
// leaves diagram blocks for the browser.
func newDiagramProcessor(cfg config.Diagram, log *slog.Logger) service.DiagramProcessor {
	if cfg.RendererURL == "" {
		return nil
	}

	renderer := diagram.NewKrokiRenderer(cfg.RendererURL, diagram.WithTimeout(cfg.Timeout))

	return diagram.NewPostRenderer(renderer, cfg.SettleDelay, log)
}
