package service

import (
	"context"
	"fmt"

	"github.com/appointedtime/pressroom/internal/domain"
	"github.com/appointedtime/pressroom/pkg/logger"
)

// JobService handles job CRUD and revenue reporting
type JobService struct {
	logger       logger.Logger
	repo         domain.JobRepository
	annualTarget float64
}

// NewJobService creates a new job service
func NewJobService(logger logger.Logger, repo domain.JobRepository, annualTarget float64) *JobService {
	return &JobService{
		logger:       logger,
		repo:         repo,
		annualTarget: annualTarget,
	}
}

// CreateJob validates and persists a new job
func (s *JobService) CreateJob(ctx context.Context, job *domain.Job) error {
	if err := job.Validate(); err != nil {
		s.logger.Error("Failed to validate job")
		return err
	}

	if err := s.repo.CreateJob(ctx, job); err != nil {
		s.logger.WithField("job_name", job.Name).Error("Failed to create job")
		return err
	}

	return nil
}

// GetJobByID retrieves a job by ID
func (s *JobService) GetJobByID(ctx context.Context, id string) (*domain.Job, error) {
	return s.repo.GetJobByID(ctx, id)
}

// GetJobs retrieves jobs matching the filter, newest first
func (s *JobService) GetJobs(ctx context.Context, filter domain.JobFilter) ([]*domain.Job, error) {
	return s.repo.GetJobs(ctx, filter)
}

// UpdateJob validates and persists changes to an existing job
func (s *JobService) UpdateJob(ctx context.Context, job *domain.Job) error {
	if job.ID == "" {
		return fmt.Errorf("job id is required")
	}
	if err := job.Validate(); err != nil {
		s.logger.Error("Failed to validate job")
		return err
	}

	if err := s.repo.UpdateJob(ctx, job); err != nil {
		s.logger.WithField("job_id", job.ID).Error("Failed to update job")
		return err
	}

	return nil
}

// DeleteJob removes a job; its processes and machine loads go with it
func (s *JobService) DeleteJob(ctx context.Context, id string) error {
	if err := s.repo.DeleteJob(ctx, id); err != nil {
		return err
	}

	s.logger.WithField("job_id", id).Info("Deleted job")
	return nil
}

// RevenueSummary aggregates contract value by sales rep and measures
// progress against the annual revenue target
func (s *JobService) RevenueSummary(ctx context.Context, filter domain.JobFilter) (*domain.RevenueSummary, error) {
	reps, err := s.repo.RevenueBySalesRep(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to aggregate revenue")
		return nil, err
	}

	summary := &domain.RevenueSummary{
		Reps:         reps,
		AnnualTarget: s.annualTarget,
	}
	for _, rep := range reps {
		summary.TotalRevenue += rep.TotalRevenue
	}
	if s.annualTarget > 0 {
		summary.TargetPct = summary.TotalRevenue / s.annualTarget * 100
	}
	summary.RevenueGap = s.annualTarget - summary.TotalRevenue

	return summary, nil
}
