package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	"github.com/appointedtime/pressroom/config"
	"github.com/appointedtime/pressroom/internal/database"
	"github.com/appointedtime/pressroom/internal/domain"
	httpHandler "github.com/appointedtime/pressroom/internal/http"
	"github.com/appointedtime/pressroom/internal/http/middleware"
	"github.com/appointedtime/pressroom/internal/migrations"
	"github.com/appointedtime/pressroom/internal/repository"
	"github.com/appointedtime/pressroom/internal/service"
	"github.com/appointedtime/pressroom/pkg/logger"
)

// App encapsulates the application dependencies and configuration
type App struct {
	config *config.Config
	logger logger.Logger
	db     *sql.DB
	mux    *http.ServeMux
	server *http.Server

	// Repositories
	jobRepo     domain.JobRepository
	processRepo domain.JobProcessRepository
	loadRepo    domain.MachineLoadRepository

	// Services
	jobService     domain.JobService
	processService domain.JobProcessService
	loadService    domain.MachineLoadService
	plannerService domain.PlannerService

	// mockDB skips the real connection in tests
	mockDB bool
}

// AppOption defines a functional option for configuring the App
type AppOption func(*App)

// WithMockDB injects a database handle, skipping connection and schema setup
func WithMockDB(db *sql.DB) AppOption {
	return func(a *App) {
		a.db = db
		a.mockDB = true
	}
}

// WithLogger sets a custom logger
func WithLogger(logger logger.Logger) AppOption {
	return func(a *App) {
		a.logger = logger
	}
}

// NewApp creates a new application instance
func NewApp(cfg *config.Config, opts ...AppOption) *App {
	app := &App{
		config: cfg,
		mux:    http.NewServeMux(),
	}

	for _, opt := range opts {
		opt(app)
	}

	if app.logger == nil {
		app.logger = logger.NewLoggerWithLevel(cfg.LogLevel)
	}

	return app
}

// InitDB connects to Postgres, bootstraps the schema and runs migrations
func (a *App) InitDB() error {
	if a.mockDB {
		return nil
	}

	a.logger.WithFields(map[string]interface{}{
		"host":   a.config.Database.Host,
		"port":   a.config.Database.Port,
		"dbname": a.config.Database.DBName,
	}).Info("Connecting to database")

	db, err := database.Connect(&a.config.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.InitializeDatabase(db); err != nil {
		db.Close()
		return fmt.Errorf("failed to initialize database schema: %w", err)
	}

	migrationManager := migrations.NewManager(a.logger)
	if err := migrationManager.RunMigrations(context.Background(), a.config, db); err != nil {
		db.Close()
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	a.db = db
	return nil
}

// InitRepositories initializes the repositories
func (a *App) InitRepositories() error {
	a.jobRepo = repository.NewJobRepository(a.db)
	a.processRepo = repository.NewJobProcessRepository(a.db)
	a.loadRepo = repository.NewMachineLoadRepository(a.db)
	return nil
}

// InitServices initializes the services
func (a *App) InitServices() error {
	a.jobService = service.NewJobService(a.logger, a.jobRepo, a.config.Planner.AnnualRevenueTarget)
	a.processService = service.NewJobProcessService(a.logger, a.processRepo)
	a.loadService = service.NewMachineLoadService(a.logger, a.loadRepo)
	a.plannerService = service.NewPlannerService(a.logger, a.jobRepo, a.processRepo, a.loadRepo, a.config.Planner)
	return nil
}

// InitHandlers initializes the HTTP handlers and registers routes
func (a *App) InitHandlers() error {
	jobHandler := httpHandler.NewJobHandler(a.jobService, a.plannerService, a.logger)
	processHandler := httpHandler.NewJobProcessHandler(a.processService, a.logger)
	loadHandler := httpHandler.NewMachineLoadHandler(a.loadService, a.logger)

	jobHandler.RegisterRoutes(a.mux)
	processHandler.RegisterRoutes(a.mux)
	loadHandler.RegisterRoutes(a.mux)

	a.mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"status":"ok","version":%q}`, a.config.Version)
	})

	return nil
}

// Initialize runs all initialization steps in order
func (a *App) Initialize() error {
	if err := a.InitDB(); err != nil {
		return err
	}
	if err := a.InitRepositories(); err != nil {
		return err
	}
	if err := a.InitServices(); err != nil {
		return err
	}
	if err := a.InitHandlers(); err != nil {
		return err
	}

	// The row security policies installed by the schema allow every
	// role full access until per-user auth lands
	a.logger.Warn("Database row security policies are permissive placeholders")

	return nil
}

// Start runs the HTTP server; it blocks until the server stops
func (a *App) Start() error {
	var handler http.Handler = a.mux
	handler = middleware.CORSMiddleware(handler)

	addr := fmt.Sprintf("%s:%d", a.config.Server.Host, a.config.Server.Port)
	a.logger.WithField("address", addr).Info("Server starting")

	a.server = &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	return a.server.ListenAndServe()
}

// Shutdown gracefully stops the server and closes the database
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("Starting graceful shutdown...")

	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}

	if a.db != nil && !a.mockDB {
		if err := a.db.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	a.logger.Info("Shutdown complete")
	return nil
}

// GetConfig returns the application configuration
func (a *App) GetConfig() *config.Config {
	return a.config
}

// GetLogger returns the application logger
func (a *App) GetLogger() logger.Logger {
	return a.logger
}

// GetMux returns the HTTP request multiplexer
func (a *App) GetMux() *http.ServeMux {
	return a.mux
}

// GetDB returns the database connection
func (a *App) GetDB() *sql.DB {
	return a.db
}
