package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/appointedtime/pressroom/config"
	"github.com/appointedtime/pressroom/internal/domain"
	"github.com/appointedtime/pressroom/pkg/logger"
)

// PlannerService schedules new jobs onto the shop floor. Each step is
// queued behind the last reservation on its machine, delayed by the
// machine's lead time, and clamped to the working shift unless the job
// runs on the night shift.
type PlannerService struct {
	logger      logger.Logger
	jobRepo     domain.JobRepository
	processRepo domain.JobProcessRepository
	loadRepo    domain.MachineLoadRepository
	cfg         config.PlannerConfig

	// now is swapped out in tests
	now func() time.Time
}

// NewPlannerService creates a new planner service
func NewPlannerService(
	logger logger.Logger,
	jobRepo domain.JobRepository,
	processRepo domain.JobProcessRepository,
	loadRepo domain.MachineLoadRepository,
	cfg config.PlannerConfig,
) *PlannerService {
	return &PlannerService{
		logger:      logger,
		jobRepo:     jobRepo,
		processRepo: processRepo,
		loadRepo:    loadRepo,
		cfg:         cfg,
		now:         time.Now,
	}
}

// PlanJob schedules the requested steps machine by machine and persists
// the job, its processes and its machine loads in one transaction.
func (s *PlannerService) PlanJob(ctx context.Context, req *domain.PlanJobRequest) (*domain.JobPlan, error) {
	job, err := req.Validate()
	if err != nil {
		s.logger.Error("Failed to validate plan request")
		return nil, err
	}

	revPerStep := job.ContractValue / float64(len(req.Steps))

	// Planning starts at today's shift start; queueing pushes each
	// step forward from there
	current := atHour(s.now().UTC(), s.cfg.ShiftStartHour)

	var processes []*domain.JobProcess
	var loads []*domain.MachineLoad

	for i, step := range req.Steps {
		machine, err := domain.LookupMachine(step)
		if err != nil {
			return nil, err
		}

		// Queue behind work already booked on this machine
		lastFinish, err := s.loadRepo.LastFinishTime(ctx, step)
		if err != nil {
			return nil, fmt.Errorf("failed to check machine queue: %w", err)
		}
		if lastFinish != nil && lastFinish.After(current) {
			current = *lastFinish
		}

		duration := s.cfg.SetupHours + float64(job.Impressions)/machine.RunRate

		// Dead time before the machine can start (die drying,
		// glue curing)
		if machine.LeadHours > 0 {
			current = current.Add(hours(machine.LeadHours))
		}

		if !req.NightShift {
			if current.Hour() >= s.cfg.ShiftEndHour {
				current = atHour(current.AddDate(0, 0, 1), s.cfg.ShiftStartHour)
			} else if current.Hour() < s.cfg.ShiftStartHour {
				current = atHour(current, s.cfg.ShiftStartHour)
			}
		}

		finish := current.Add(hours(duration))

		// Work that runs past the shift end rolls over to the next
		// morning
		if !req.NightShift && (finish.Hour() >= s.cfg.ShiftEndHour || finish.YearDay() != current.YearDay() || finish.Year() != current.Year()) {
			overtime := finish.Sub(atHour(current, s.cfg.ShiftEndHour))
			if overtime < 0 {
				overtime = 0
			}
			finish = atHour(current.AddDate(0, 0, 1), s.cfg.ShiftStartHour).Add(overtime)
		}

		processes = append(processes, &domain.JobProcess{
			ProcessName:   step,
			SequenceOrder: i + 1,
			StartTime:     current,
			EndTime:       finish,
			DurationHours: duration,
		})
		loads = append(loads, &domain.MachineLoad{
			MachineName:   step,
			StartTime:     current,
			EndTime:       finish,
			DurationHours: duration,
		})

		s.logger.WithFields(map[string]interface{}{
			"machine":        step,
			"start":          current.Format(time.RFC3339),
			"finish":         finish.Format(time.RFC3339),
			"duration_hours": duration,
			"step_value":     revPerStep,
		}).Debug("Scheduled production step")

		current = finish
	}

	err = s.jobRepo.WithTransaction(ctx, func(tx *sql.Tx) error {
		if err := s.jobRepo.CreateJobTx(ctx, tx, job); err != nil {
			return err
		}
		for _, process := range processes {
			process.JobID = job.ID
			if err := s.processRepo.CreateProcessTx(ctx, tx, process); err != nil {
				return err
			}
		}
		for _, load := range loads {
			load.JobID = job.ID
			if err := s.loadRepo.CreateLoadTx(ctx, tx, load); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.logger.WithField("job_name", job.Name).Error("Failed to persist job plan")
		return nil, fmt.Errorf("failed to persist job plan: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"job_id":      job.ID,
		"steps":       len(processes),
		"impressions": job.Impressions,
		"finish":      processes[len(processes)-1].EndTime.Format(time.RFC3339),
	}).Info("Planned job")

	return &domain.JobPlan{
		Job:       job,
		Processes: processes,
		Loads:     loads,
	}, nil
}

// atHour returns t's date at the given whole hour
func atHour(t time.Time, hour int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), hour, 0, 0, 0, t.Location())
}

// hours converts fractional hours to a duration
func hours(h float64) time.Duration {
	return time.Duration(h * float64(time.Hour))
}
