package main

import (
	"database/sql"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"atlasrent-backend/internal/config"
	"atlasrent-backend/internal/jobs"
	"atlasrent-backend/internal/logger"
	"atlasrent-backend/internal/repository/postgres"
	"atlasrent-backend/internal/scheduler"
	"atlasrent-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'activate-due', 'complete-finished', 'expire-pending', 'sync-vehicle-status', 'all-nightly')")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting AtlasRent Cronjob Runner...", "log_level", cfg.Log.Level)

	// Initialize Database
	logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Services
	emailSvc := service.NewEmailService(cfg.Email.SendGridAPIKey, cfg.Email.FromEmail, cfg.Email.FromName)
	bookingSvc := service.NewBookingService(
		store.ReservationRepository,
		store.VehicleRepository,
		store.PromotionRepository,
		store.LocationRepository,
		store.UserRepository,
		emailSvc,
	)

	// Initialize Job Runner
	jobRunner := jobs.NewJobRunner(db, store, &jobs.Services{
		Email:   emailSvc,
		Booking: bookingSvc,
	}, cfg)

	// Run-once mode for manual execution and debugging
	if *runOnce != "" {
		runSingleJob(jobRunner, *runOnce)
		return
	}

	// Scheduled mode
	cronScheduler := scheduler.NewScheduler(jobRunner)
	cronScheduler.Start()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutdown signal received")
	cronScheduler.Stop()
}

func runSingleJob(jobRunner *jobs.JobRunner, name string) {
	logger.Info("Running single job", "job", name)
	switch name {
	case "activate-due":
		jobRunner.ActivateDueReservations()
	case "complete-finished":
		jobRunner.CompleteFinishedReservations()
	case "expire-pending":
		jobRunner.ExpireStalePendingReservations()
	case "sync-vehicle-status":
		jobRunner.SyncVehicleStatus()
	case "all-nightly":
		jobRunner.RunAllNightlyJobs()
	default:
		logger.Error("Unknown job name", "job", name)
		os.Exit(1)
	}
}
