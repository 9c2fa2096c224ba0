package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	_ "github.com/lib/pq"

	httpapi "atlasrent-backend/internal/api/http"
	"atlasrent-backend/internal/config"
	"atlasrent-backend/internal/jobs"
	"atlasrent-backend/internal/logger"
	"atlasrent-backend/internal/repository/postgres"
	"atlasrent-backend/internal/scheduler"
	"atlasrent-backend/internal/security"
	"atlasrent-backend/internal/service"
	"atlasrent-backend/internal/storage"
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
	logger.Info("Starting AtlasRent Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
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

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Initialize Document Storage
	docStorage, err := storage.NewLocalDocumentStorage(cfg.Server.BaseURL, cfg.Storage.UploadDir)
	if err != nil {
		logger.Error("Failed to initialize document storage", "error", err)
		log.Fatalf("Failed to initialize document storage: %v", err)
	}
	logger.Info("Using local document storage", "upload_dir", cfg.Storage.UploadDir)

	// Initialize Services
	emailSvc := service.NewEmailService(cfg.Email.SendGridAPIKey, cfg.Email.FromEmail, cfg.Email.FromName)
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	bookingSvc := service.NewBookingService(
		store.ReservationRepository,
		store.VehicleRepository,
		store.PromotionRepository,
		store.LocationRepository,
		store.UserRepository,
		emailSvc,
	)
	fleetSvc := service.NewFleetService(store.VehicleRepository)
	promoSvc := service.NewPromotionService(store.PromotionRepository)
	contentSvc := service.NewContentService(store.ContentRepository, store.LocationRepository)
	reviewSvc := service.NewReviewService(store.ReviewRepository)
	docSvc := service.NewDocumentService(docStorage, cfg.Storage)

	// Initialize Scheduler
	jobRunner := jobs.NewJobRunner(db, store, &jobs.Services{
		Email:   emailSvc,
		Booking: bookingSvc,
	}, cfg)
	cronScheduler := scheduler.NewScheduler(jobRunner)
	cronScheduler.Start()
	defer cronScheduler.Stop()

	// Set up HTTP server
	router := httpapi.NewRouter(httpapi.RouterDeps{
		Tokens:      tokenManager,
		Auth:        authSvc,
		Booking:     bookingSvc,
		Fleet:       fleetSvc,
		Promotion:   promoSvc,
		Content:     contentSvc,
		Review:      reviewSvc,
		Document:    docSvc,
		MaxFileSize: cfg.Storage.MaxFileSizeMB << 20,
	})

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
