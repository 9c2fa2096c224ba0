package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"

	"atlasrent-backend/internal/jobs"
	"atlasrent-backend/internal/logger"
)

// Scheduler manages cron job scheduling
type Scheduler struct {
	cron *cron.Cron
	jobs *jobs.JobRunner
}

// NewScheduler creates a new scheduler with the provided job runner
func NewScheduler(jobRunner *jobs.JobRunner) *Scheduler {
	// Create cron with UTC timezone and seconds precision
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithSeconds(),
	)

	s := &Scheduler{
		cron: c,
		jobs: jobRunner,
	}

	s.registerJobs()
	return s
}

// registerJobs registers all scheduled jobs with the cron scheduler
func (s *Scheduler) registerJobs() {
	cfg := s.jobs.Config().Scheduler

	_, err := s.cron.AddFunc(cfg.ActivateDueReservations, s.jobs.ActivateDueReservations)
	if err != nil {
		logger.Error("Failed to register ActivateDueReservations job", "error", err)
	}

	_, err = s.cron.AddFunc(cfg.CompleteFinished, s.jobs.CompleteFinishedReservations)
	if err != nil {
		logger.Error("Failed to register CompleteFinishedReservations job", "error", err)
	}

	_, err = s.cron.AddFunc(cfg.ExpireStalePending, s.jobs.ExpireStalePendingReservations)
	if err != nil {
		logger.Error("Failed to register ExpireStalePendingReservations job", "error", err)
	}

	_, err = s.cron.AddFunc(cfg.SyncVehicleStatus, s.jobs.SyncVehicleStatus)
	if err != nil {
		logger.Error("Failed to register SyncVehicleStatus job", "error", err)
	}

	logger.Info("All cron jobs registered successfully")
}

// Start begins the cron scheduler
func (s *Scheduler) Start() {
	logger.Info("Starting cron scheduler...")
	s.cron.Start()
	logger.Info("Cron scheduler started successfully")
}

// Stop gracefully stops the cron scheduler
func (s *Scheduler) Stop() {
	logger.Info("Stopping cron scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info("Cron scheduler stopped")
}

// IsRunning returns true if the scheduler is running
func (s *Scheduler) IsRunning() bool {
	return len(s.cron.Entries()) > 0
}
