package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/blogem/ptlog/authenticator"
	"github.com/blogem/ptlog/config"
	"github.com/blogem/ptlog/controllers"
	"github.com/blogem/ptlog/database"
	ptmiddleware "github.com/blogem/ptlog/middleware"
	"github.com/blogem/ptlog/repositories"
	"github.com/blogem/ptlog/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: config.ParseLogLevel(cfg.App.LogLevel),
	})).With("service", "ptlog", "env", cfg.App.Environment)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize database; bootstrap runs once here
	db, err := database.Open(ctx, cfg.Database)
	if err != nil {
		slog.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer db.CloseDB()

	repos := repositories.NewRepositories(db)
	srvs := services.NewServices(repos, logger)
	ctrl := controllers.NewControllers(srvs, db)

	var verifier authenticator.Verifier
	if cfg.Auth.Enabled() {
		verifier, err = authenticator.NewOpenIDVerifier(ctx, authenticator.Config{
			IssuerURL: cfg.Auth.IssuerURL,
			ClientID:  cfg.Auth.ClientID,
		})
		if err != nil {
			slog.Error("failed to initialize OIDC verifier", "error", err)
			os.Exit(1)
		}
		slog.Info("bearer authentication enabled", "issuer", cfg.Auth.IssuerURL)
	}

	r := setupRouter(ctrl, repos.Audit, verifier, cfg.Server.RequestTimeout)

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("PT-Log starting", "port", cfg.Server.Port, "backend", cfg.Database.Type, "version", cfg.App.Version)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("failed to shut down server", "error", err)
	}
	slog.Info("PT-Log stopped")
}

// setupRouter configures all routes. Mutating routes require a bearer token
// when verifier is non-nil and are recorded in the audit trail.
func setupRouter(ctrl *controllers.Controllers, auditRepo repositories.AuditRepository, verifier authenticator.Verifier, timeout time.Duration) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(ptmiddleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(timeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", ptmiddleware.RequestIDHeader},
		ExposedHeaders: []string{ptmiddleware.RequestIDHeader},
		MaxAge:         300,
	}))

	// PUBLIC ROUTES
	r.Get("/healthcheck", ctrl.Health.Healthcheck)
	r.Get("/getData", ctrl.Logs.GetData)
	r.Get("/populate", ctrl.Projects.Populate)
	r.Get("/projects", ctrl.Projects.List)
	r.Route("/diagnostics", func(r chi.Router) {
		r.Get("/pool", ctrl.Diagnostics.Pool)
		r.Get("/db", ctrl.Diagnostics.Database)
	})

	// MUTATING ROUTES
	r.Group(func(r chi.Router) {
		if verifier != nil {
			r.Use(ptmiddleware.RequireAuth(verifier))
		}
		r.Use(ptmiddleware.AuditLogger(auditRepo))

		r.Post("/createProject", ctrl.Projects.Create)
		r.Route("/projects/{name}", func(r chi.Router) {
			r.Put("/archive", ctrl.Projects.Archive)
			r.Put("/restore", ctrl.Projects.Restore)
			r.Delete("/", ctrl.Projects.Delete)
		})

		r.Post("/insert", ctrl.Logs.Insert)
		r.Post("/insertPacing", ctrl.Logs.InsertPacing)
		r.Post("/insertConfig", ctrl.Logs.InsertConfig)
		r.Put("/updateAnalys", ctrl.Logs.UpdateAnalys)
		r.Delete("/deleteLog", ctrl.Logs.DeleteLog)
	})

	return r
}
