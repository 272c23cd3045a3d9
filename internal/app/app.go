package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"pubsummary/internal/config"
	"pubsummary/internal/dataprocessing"
	apierrors "pubsummary/internal/errors"
	"pubsummary/internal/files"
	"pubsummary/internal/infrastructure"
	customMiddleware "pubsummary/internal/middleware"
	"pubsummary/internal/services"
	handlers "pubsummary/internal/transport/http"
	"pubsummary/internal/validation"
	"pubsummary/pkg/contracts"
)

// AppName is logged at startup.
const AppName = "Publication Summary Generator"

// formOverhead is the room left in the request body limit for multipart
// boundaries and the year fields.
const formOverhead = 1 << 20

// Application represents the main application container
type Application struct {
	Config         *config.Config
	Logger         *slog.Logger
	Paths          *config.Paths
	OTelProviders  *infrastructure.OTelProviders
	Metrics        *infrastructure.BusinessMetrics
	Files          *files.Manager
	SummaryService *services.SummaryService
	HealthService  *services.HealthService
	ErrorHandler   *apierrors.ErrorHandler
	Router         *chi.Mux
	Server         *http.Server
}

// NewApplication wires every component for cfg. Directories named in
// cfg.Paths are resolved against the working directory and created.
func NewApplication(cfg *config.Config, logger *slog.Logger) (*Application, error) {
	if logger == nil {
		logger = slog.Default()
	}

	version := contracts.GetVersionInfo()
	logger.Info("Application starting",
		slog.String("name", AppName),
		slog.String("version", version.Version),
		slog.String("git_commit", version.GitCommit))

	paths, err := config.ResolvePaths(cfg.Paths, cfg.Logging.FilePath, "")
	if err != nil {
		return nil, fmt.Errorf("failed to resolve paths: %w", err)
	}

	otelProviders, err := infrastructure.InitializeOTel(infrastructure.OTelConfigFromTelemetry(cfg.Telemetry), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize OpenTelemetry: %w", err)
	}

	metrics, err := infrastructure.CreateBusinessMetrics(otelProviders.Meter)
	if err != nil {
		otelProviders.Shutdown(context.Background())
		return nil, fmt.Errorf("failed to create business metrics: %w", err)
	}

	app := &Application{
		Config:        cfg,
		Logger:        logger,
		Paths:         paths,
		OTelProviders: otelProviders,
		Metrics:       metrics,
		ErrorHandler:  apierrors.NewErrorHandler(logger, false),
	}

	if err := app.initializeServices(); err != nil {
		otelProviders.Shutdown(context.Background())
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	if err := app.setupRouter(); err != nil {
		otelProviders.Shutdown(context.Background())
		return nil, fmt.Errorf("failed to set up router: %w", err)
	}

	app.createServer()

	return app, nil
}

// initializeServices initializes all application services
func (a *Application) initializeServices() error {
	a.Files = files.NewManager(a.Paths, a.Logger)
	if err := a.Files.EnsureDirectories(); err != nil {
		return err
	}
	a.Paths.LogPathResolution(a.Logger)

	validator := validation.NewFileValidator(a.Logger, a.Config.Server.MaxUploadBytes)

	summary, err := services.NewSummaryService(
		dataprocessing.NewLoader(a.Logger),
		a.Files,
		validator,
		services.SummaryOptions{
			Title:         a.Config.Report.Title,
			SummaryFormat: a.Config.Report.SummaryFormat,
			ExportFormat:  a.Config.Report.ExportFormat,
		},
		a.Logger,
	)
	if err != nil {
		return fmt.Errorf("failed to create summary service: %w", err)
	}
	a.SummaryService = summary.WithTelemetry(a.OTelProviders.Tracer, a.Metrics)

	a.HealthService = services.NewHealthService(contracts.GetVersionInfo(), a.Paths, validator, a.Logger)

	a.Logger.Info("Services initialized",
		slog.String("summary_format", a.Config.Report.SummaryFormat),
		slog.String("export_format", a.Config.Report.ExportFormat))
	return nil
}

// setupRouter builds the router. Middleware order: RequestID → RealIP →
// OTel → Logger → Recoverer → SecurityHeaders → CORS → RateLimit → Timeout.
func (a *Application) setupRouter() error {
	r := chi.NewRouter()
	r.NotFound(a.ErrorHandler.NotFound)
	r.MethodNotAllowed(a.ErrorHandler.MethodNotAllowed)

	r.Use(customMiddleware.RequestID)
	r.Use(customMiddleware.RealIP)

	otelMiddleware, err := customMiddleware.NewOTelMiddleware(a.OTelProviders, a.Metrics)
	if err != nil {
		return err
	}

	validator, err := customMiddleware.NewValidationMiddleware(a.Logger, a.ErrorHandler)
	if err != nil {
		return err
	}

	r.Group(func(r chi.Router) {
		r.Use(otelMiddleware.Handler)
		r.Use(customMiddleware.StructuredLogger(a.Logger))
		r.Use(customMiddleware.Recoverer(a.ErrorHandler))
		r.Use(customMiddleware.SecurityHeaders)

		if a.Config.Security.EnableCORS {
			r.Use(customMiddleware.CORS(a.getCORSConfig()))
		}

		if a.Config.Security.RateLimit.Enabled {
			r.Use(customMiddleware.NewRateLimiter(
				a.Config.Security.RateLimit.RPS,
				a.Config.Security.RateLimit.Burst,
				a.ErrorHandler,
				a.Logger,
			).Handler)
		}

		r.Use(customMiddleware.Timeout(a.Config.Server.RequestTimeout, a.Logger))
		r.Use(customMiddleware.MaxBodySize(a.Config.Server.MaxUploadBytes + formOverhead))
		r.Use(render.SetContentType(render.ContentTypeJSON))

		handlers.NewSummaryHandler(a.SummaryService, a.Files, validator, a.Logger, a.ErrorHandler).Routes(r)
		handlers.NewHealthHandler(a.HealthService, a.Logger, a.ErrorHandler).Routes(r)
	})

	// Outside the group so scrapes are neither rate limited nor counted.
	if a.OTelProviders.PrometheusHTTP != nil {
		r.Handle("/metrics", a.OTelProviders.PrometheusHTTP)
	}

	a.Router = r
	return nil
}

// getCORSConfig builds the CORS policy from configuration.
func (a *Application) getCORSConfig() customMiddleware.CORSConfig {
	return customMiddleware.CORSConfig{
		AllowedOrigins: a.Config.Security.AllowedOrigins,
		MaxAge:         300,
		Logger:         a.Logger,
	}
}

// createServer creates the HTTP server
func (a *Application) createServer() {
	a.Server = &http.Server{
		Addr:           fmt.Sprintf(":%d", a.Config.Server.Port),
		Handler:        a.Router,
		ReadTimeout:    a.Config.Server.ReadTimeout,
		WriteTimeout:   a.Config.Server.WriteTimeout,
		IdleTimeout:    a.Config.Server.IdleTimeout,
		MaxHeaderBytes: a.Config.Server.MaxHeaderBytes,
	}
}

// Serve accepts connections on l until ctx is cancelled or the server fails,
// then shuts down gracefully.
func (a *Application) Serve(ctx context.Context, l net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		if err := a.Server.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	a.performStartupHealthCheck(ctx)
	a.Logger.InfoContext(ctx, "Application started successfully",
		slog.String("address", l.Addr().String()))

	select {
	case err := <-errCh:
		if err != nil {
			a.Logger.ErrorContext(ctx, "Server error", slog.String("error", err.Error()))
			a.shutdownTelemetry(context.Background())
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	return a.Stop(context.Background())
}

// Run listens on the configured port and serves until SIGINT or SIGTERM.
func (a *Application) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	l, err := net.Listen("tcp", a.Server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", a.Server.Addr, err)
	}

	return a.Serve(ctx, l)
}

// Stop drains in-flight requests and flushes telemetry.
func (a *Application) Stop(ctx context.Context) error {
	a.Logger.InfoContext(ctx, "Shutting down application")

	shutdownCtx, cancel := context.WithTimeout(ctx, a.Config.Server.ShutdownTimeout)
	defer cancel()

	if err := a.Server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	a.shutdownTelemetry(shutdownCtx)

	a.Logger.InfoContext(ctx, "Application shutdown complete")
	return nil
}

func (a *Application) shutdownTelemetry(ctx context.Context) {
	if a.OTelProviders == nil {
		return
	}
	if err := a.OTelProviders.Shutdown(ctx); err != nil {
		a.Logger.ErrorContext(ctx, "Error shutting down OpenTelemetry", slog.String("error", err.Error()))
	}
}

// performStartupHealthCheck logs a warning for every directory that is not
// ready. Startup continues either way.
func (a *Application) performStartupHealthCheck(ctx context.Context) {
	status := a.HealthService.ReadinessCheck(ctx)
	if status.Status == "ready" {
		a.Logger.InfoContext(ctx, "Startup health check passed")
		return
	}
	for name, svc := range status.Services {
		if svc.Status != "ready" {
			a.Logger.WarnContext(ctx, "Startup health check warning",
				slog.String("service", name),
				slog.String("message", svc.Message))
		}
	}
}
