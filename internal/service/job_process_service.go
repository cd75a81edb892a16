package service

import (
	"context"

	"github.com/appointedtime/pressroom/internal/domain"
	"github.com/appointedtime/pressroom/pkg/logger"
)

// JobProcessService handles a job's production steps
type JobProcessService struct {
	logger logger.Logger
	repo   domain.JobProcessRepository
}

// NewJobProcessService creates a new job process service
func NewJobProcessService(logger logger.Logger, repo domain.JobProcessRepository) *JobProcessService {
	return &JobProcessService{
		logger: logger,
		repo:   repo,
	}
}

// CreateProcess validates and persists a production step. The referenced
// job must exist; the database rejects orphan steps.
func (s *JobProcessService) CreateProcess(ctx context.Context, process *domain.JobProcess) error {
	if err := process.Validate(); err != nil {
		s.logger.Error("Failed to validate job process")
		return err
	}

	if err := s.repo.CreateProcess(ctx, process); err != nil {
		s.logger.WithField("job_id", process.JobID).Error("Failed to create job process")
		return err
	}

	return nil
}

// GetProcessesByJobID retrieves a job's steps ordered by sequence
func (s *JobProcessService) GetProcessesByJobID(ctx context.Context, jobID string) ([]*domain.JobProcess, error) {
	return s.repo.GetProcessesByJobID(ctx, jobID)
}
