// Package app wires the notes API, the access gate and the page into one HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/ferdiebergado/goexpress"
	"github.com/ferdiebergado/jobnotes/internal/access"
	"github.com/ferdiebergado/jobnotes/internal/config"
	"github.com/ferdiebergado/jobnotes/internal/middleware"
	"github.com/ferdiebergado/jobnotes/internal/note"
	"github.com/ferdiebergado/jobnotes/internal/page"
	"github.com/ferdiebergado/jobnotes/internal/platform/router"
	"github.com/ferdiebergado/jobnotes/internal/platform/validation"
	"github.com/ferdiebergado/jobnotes/internal/provider"
)

type App struct {
	server          *http.Server
	config          *config.Config
	middlewares     []func(http.Handler) http.Handler
	stop            context.CancelFunc
	shutdownTimeout time.Duration
	validator       validation.Validator
	router          router.Router
	notes           note.Repository
	gate            access.Gate
	page            *page.Page
	setupOnce       sync.Once
}

// DefaultMiddlewares returns the middleware chain applied to every request.
func DefaultMiddlewares(cfg *config.Server) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		middleware.InjectWriter,
		goexpress.RecoverFromPanic,
		middleware.LogRequest,
		middleware.CORS(cfg.CORSAllowedOrigin),
		middleware.ContextGuard,
	}
}

func (a *App) registerMiddlewares() {
	for _, mw := range a.middlewares {
		a.router.Use(mw)
	}
}

func (a *App) setupRoutes() {
	maxBodySize := a.config.Server.MaxBodyBytes

	mountPage(a.router, a.page)

	noteHandler := note.NewHandler(note.NewService(a.notes))
	mountNoteRoutes(a.router, noteHandler, a.validator, a.gate, maxBodySize)

	accessHandler := access.NewHandler(a.gate)
	mountAccessRoutes(a.router, accessHandler, a.validator, maxBodySize)
}

// Handler returns the fully routed handler. Routes are registered on first use.
func (a *App) Handler() http.Handler {
	a.setupOnce.Do(func() {
		a.registerMiddlewares()
		a.setupRoutes()
	})
	return a.router
}

func (a *App) Start(ctx context.Context) error {
	a.server.Handler = a.Handler()

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server listening...", "address", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("listen and serve: %w", err)
			return
		}
		slog.Info("Server has stopped.")
		serverErr <- nil
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received.")
		return nil
	case err := <-serverErr:
		return err
	}
}

func (a *App) Shutdown() error {
	slog.Info("Shutting down server...")
	a.stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
	defer cancel()
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}
	return nil
}

func New(p *provider.Provider, notes note.Repository, gate access.Gate, pg *page.Page, middlewares []func(http.Handler) http.Handler) *App {
	serverCtx, stop := context.WithCancel(context.Background())
	serverCfg := p.Cfg.Server
	server := &http.Server{
		Addr: fmt.Sprintf(":%d", serverCfg.Port),
		BaseContext: func(_ net.Listener) context.Context {
			return serverCtx
		},
		ReadTimeout:  serverCfg.ReadTimeout.Duration,
		WriteTimeout: serverCfg.WriteTimeout.Duration,
		IdleTimeout:  serverCfg.IdleTimeout.Duration,
	}

	return &App{
		config:          p.Cfg,
		validator:       p.Validator,
		router:          p.Router,
		notes:           notes,
		gate:            gate,
		page:            pg,
		server:          server,
		middlewares:     middlewares,
		stop:            stop,
		shutdownTimeout: serverCfg.ShutdownTimeout.Duration,
	}
}
