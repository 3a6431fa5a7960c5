package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	httpapi "hr-intake-backend/internal/api/http"
	"hr-intake-backend/internal/config"
	"hr-intake-backend/internal/database"
	"hr-intake-backend/internal/domain"
	"hr-intake-backend/internal/logger"
	"hr-intake-backend/internal/notify"
	"hr-intake-backend/internal/repository/sqldb"
	"hr-intake-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting HR intake backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "driver", cfg.Database.Driver, "host", cfg.Database.Host, "database", cfg.Database.Database, "path", cfg.Database.Path)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize Database
	if cfg.Database.Driver == database.DriverSQLite {
		if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
			log.Fatalf("Failed to create database directory: %v", err)
		}
	}
	db, err := database.Open(ctx, cfg.Database.Driver, cfg.DSN())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := sqldb.NewStore(db)
	defer store.Close()

	// Initialize notification transport
	sender, closeSender, err := notify.NewSender(ctx, cfg.Notify)
	if err != nil {
		logger.Error("Failed to initialize notifications", "driver", cfg.Notify.Driver, "error", err)
		log.Fatalf("Failed to initialize notifications: %v", err)
	}
	defer closeSender()
	dispatcher := notify.NewDispatcher(sender, store.Roles)

	// Initialize Services
	registrationSvc := service.NewRegistrationService(store.Participants, store.Tokens, store.Registrations)
	services := httpapi.Services{
		Participants:  service.NewParticipantService(store.Participants, store.Roles, dispatcher),
		Registrations: registrationSvc,
		Requests:      service.NewRequestService(store.Requests, store.Participants, dispatcher),
		Feedback:      service.NewFeedbackService(store.Feedback, store.Participants, dispatcher),
		History:       service.NewHistoryService(store.Requests, store.Feedback, store.Participants),
	}

	applyBootstrap(ctx, cfg.Bootstrap, registrationSvc)

	srv := &http.Server{
		Addr:              cfg.GetServerAddress(),
		Handler:           httpapi.NewRouter(services),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	// Graceful shutdown
	logger.Info("Shutting down HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
	logger.Info("Server stopped. Goodbye!")
}

// applyBootstrap creates the configured first elevated participant. It is a
// no-op once any elevated participant exists.
func applyBootstrap(ctx context.Context, cfg config.BootstrapConfig, svc service.RegistrationService) {
	if !cfg.Enabled() {
		return
	}
	profile := domain.Profile{FullName: cfg.FullName, Department: cfg.Department, Position: cfg.Position}
	p, err := svc.Bootstrap(ctx, cfg.ParticipantID, profile)
	switch {
	case errors.Is(err, domain.ErrAlreadyBootstrapped):
		logger.Info("Bootstrap skipped, an elevated participant already exists")
	case err != nil:
		logger.Error("Bootstrap failed", "participant_id", cfg.ParticipantID, "error", err)
	default:
		logger.Info("Bootstrapped first elevated participant", "participant_id", p.ID)
	}
}
