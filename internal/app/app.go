package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/ainotes/internal/adapter/provider/gemini"
	"github.com/heartmarshall/ainotes/internal/adapter/sqlstore"
	"github.com/heartmarshall/ainotes/internal/auth"
	"github.com/heartmarshall/ainotes/internal/config"
	"github.com/heartmarshall/ainotes/internal/metrics"
	"github.com/heartmarshall/ainotes/internal/service/export"
	"github.com/heartmarshall/ainotes/internal/transport/middleware"
	"github.com/heartmarshall/ainotes/internal/transport/rest"
	"github.com/heartmarshall/ainotes/internal/transport/web"

	noterepo "github.com/heartmarshall/ainotes/internal/adapter/sqlstore/note"
	userrepo "github.com/heartmarshall/ainotes/internal/adapter/sqlstore/user"
	authsvc "github.com/heartmarshall/ainotes/internal/service/auth"
	notesvc "github.com/heartmarshall/ainotes/internal/service/note"
	mcptransport "github.com/heartmarshall/ainotes/internal/transport/mcp"
)

// App is a fully wired server: store, services and the HTTP handler tree.
type App struct {
	cfg     *config.Config
	log     *slog.Logger
	db      *sqlstore.DB
	limiter *middleware.RateLimiter
	handler http.Handler
}

// New opens and migrates the store, bootstraps the default account and
// builds the HTTP handler. Call Close when done.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	if err := cfg.Auth.ValidateSecret(); err != nil {
		return nil, fmt.Errorf("app.New: %w", err)
	}

	db, err := sqlstore.Open(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("app.New: %w", err)
	}

	applied, err := db.Migrate(ctx)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("app.New: %w", err)
	}
	logger.Info("database ready",
		slog.String("driver", db.Driver()),
		slog.Int("migrations_applied", applied))

	users := authsvc.NewService(logger, userrepo.New(db), cfg.Auth.PasswordHashCost)
	created, err := users.EnsureDefaultUser(ctx, cfg.Auth.DefaultAdminUsername, cfg.Auth.DefaultAdminPassword)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("app.New: %w", err)
	}
	if created && cfg.Auth.UsesDefaultAdminPassword() {
		logger.Warn("default account uses the shipped password; set ADMIN_PASSWORD or change it",
			slog.String("username", cfg.Auth.DefaultAdminUsername))
	}

	ai := gemini.NewClient(cfg.Gemini, logger)
	if cfg.Gemini.APIKey == "" {
		logger.Warn("GEMINI_API_KEY is not set; summaries will record an error")
	}

	notes := notesvc.NewService(logger, noterepo.New(db), ai)
	exporter := export.NewService(logger, notes, cfg.Export)
	sessions := auth.NewSessionManager(cfg.Auth.SecretKey, cfg.Auth.Issuer, cfg.Auth.SessionTTL)
	m := metrics.New()

	pages, err := web.NewHandler(logger, web.Deps{
		Notes:    notes,
		Auth:     users,
		Export:   exporter,
		Sessions: sessions,
		Models:   ai,
		Metrics:  m,
	}, web.CookieOptions{Name: cfg.Auth.CookieName, Secure: cfg.Auth.CookieSecure})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("app.New: %w", err)
	}

	limiter := middleware.NewRateLimiter(time.Minute)

	mux := http.NewServeMux()
	pages.Routes(mux, middleware.RequireAuth(web.LoginPath), limiter.Limit(cfg.RateLimit.AuthPerMinute))

	health := rest.NewHealthHandler(BuildVersion(),
		rest.Check{Name: "database", Critical: true, Probe: db.PingContext},
		rest.Check{Name: "gemini", Probe: ai.CheckConfigured},
	)
	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	if cfg.Metrics.Enabled {
		mux.Handle("GET /metrics", m.Handler())
	}

	if cfg.MCP.Enabled {
		mcpHTTP := mcptransport.NewHandler(mcptransport.NewServer(notes, Version, logger))
		mux.Handle("POST /mcp", mcpHTTP)
		mux.Handle("GET /mcp", mcpHTTP)
		mux.Handle("DELETE /mcp", mcpHTTP)
	}

	// Logger and Metrics sit directly on the mux: they read r.Pattern,
	// which the mux sets on the request it receives.
	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.SecurityHeaders(),
		middleware.Session(cfg.Auth.CookieName, sessions, logger),
		middleware.Logger(logger),
		middleware.When(cfg.Metrics.Enabled, middleware.Metrics(m)),
	)(mux)

	return &App{
		cfg:     cfg,
		log:     logger,
		db:      db,
		limiter: limiter,
		handler: handler,
	}, nil
}

// Handler returns the root HTTP handler.
func (a *App) Handler() http.Handler { return a.handler }

// Close releases the store and background workers.
func (a *App) Close() error {
	a.limiter.Stop()
	return a.db.Close()
}

// Serve listens on the configured address until ctx is cancelled, then
// shuts down gracefully within the configured timeout.
func (a *App) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:         a.cfg.Server.Addr(),
		Handler:      a.handler,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("http server listening", slog.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("app.Serve: %w", err)
	case <-ctx.Done():
	}

	a.log.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("app.Serve shutdown: %w", err)
	}
	return nil
}

// Run is the server entry point: it wires the application from cfg and
// serves until ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("auth", cfg.Auth.String()),
	)

	a, err := New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	return a.Serve(ctx)
}
