package service

import (
	"context"

	"github.com/appointedtime/pressroom/internal/domain"
	"github.com/appointedtime/pressroom/pkg/logger"
)

// MachineLoadService handles machine reservations and the machine catalog
type MachineLoadService struct {
	logger logger.Logger
	repo   domain.MachineLoadRepository
}

// NewMachineLoadService creates a new machine load service
func NewMachineLoadService(logger logger.Logger, repo domain.MachineLoadRepository) *MachineLoadService {
	return &MachineLoadService{
		logger: logger,
		repo:   repo,
	}
}

// CreateLoad validates and persists a machine reservation. The machine
// must be in the catalog and the referenced job must exist.
func (s *MachineLoadService) CreateLoad(ctx context.Context, load *domain.MachineLoad) error {
	if err := load.Validate(); err != nil {
		s.logger.Error("Failed to validate machine load")
		return err
	}
	if _, err := domain.LookupMachine(load.MachineName); err != nil {
		return err
	}

	if err := s.repo.CreateLoad(ctx, load); err != nil {
		s.logger.WithFields(map[string]interface{}{
			"machine": load.MachineName,
			"job_id":  load.JobID,
		}).Error("Failed to create machine load")
		return err
	}

	return nil
}

// GetLoads retrieves loads matching the filter, earliest start first
func (s *MachineLoadService) GetLoads(ctx context.Context, filter domain.MachineLoadFilter) ([]*domain.MachineLoad, error) {
	return s.repo.GetLoads(ctx, filter)
}

// GetMachines returns the shop's machine catalog
func (s *MachineLoadService) GetMachines(ctx context.Context) []*domain.Machine {
	return domain.MachineCatalog()
}
